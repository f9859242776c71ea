// Package timeline derives stage boundaries and the active stage of a planting.
//
// Boundaries come from a cumulative walk over stage durations starting at the
// plant's creation time. A stage is Current on both of its boundary instants;
// when two stages share a boundary the earlier one wins.
package timeline

import (
	"time"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/models"
)

// Status classifies a stage relative to the evaluation instant.
type Status int

const (
	Upcoming Status = iota
	Current
	Completed
)

func (s Status) String() string {
	switch s {
	case Current:
		return config.StageCurrent
	case Completed:
		return config.StageCompleted
	default:
		return config.StageUpcoming
	}
}

// TimeRemaining is a clock-style breakdown of what is left in a stage.
type TimeRemaining struct {
	Days    int
	Hours   int
	Minutes int
}

// Breakdown splits d into whole days, hours and minutes, each floored.
func Breakdown(d time.Duration) TimeRemaining {
	if d < 0 {
		d = 0
	}
	return TimeRemaining{
		Days:    int(d / config.Day),
		Hours:   int(d % config.Day / config.Hour),
		Minutes: int(d % config.Hour / config.Minute),
	}
}

// Entry is one stage with its computed boundaries.
type Entry struct {
	Index  int
	Stage  models.Stage
	Start  time.Time
	End    time.Time
	Status Status
}

// IsFinal reports whether the entry is the last stage of the lifecycle.
func (e Entry) IsFinal(total int) bool {
	return e.Index == total-1
}

// StageTimeline is the derived view of a plant at one instant.
type StageTimeline struct {
	Now                 time.Time
	Start               time.Time
	Entries             []Entry
	ActiveIndex         int // -1 when no stage is current
	Remaining           *TimeRemaining
	IsLifecycleComplete bool
}

// Compute walks the stages in stage-number order and classifies each against now.
// An empty stage list yields a complete lifecycle with no current stage.
func Compute(createdAt time.Time, stages []models.Stage, now time.Time) StageTimeline {
	tl := StageTimeline{
		Now:         now,
		Start:       createdAt,
		ActiveIndex: -1,
	}
	if len(stages) == 0 {
		tl.IsLifecycleComplete = true
		return tl
	}

	ordered := models.SortStages(stages)
	tl.Entries = make([]Entry, len(ordered))
	cursor := createdAt
	for i, s := range ordered {
		end := cursor.Add(s.Duration())
		e := Entry{Index: i, Stage: s, Start: cursor, End: end}
		switch {
		case now.After(end):
			e.Status = Completed
		case now.Before(cursor):
			e.Status = Upcoming
		case tl.ActiveIndex < 0:
			e.Status = Current
			tl.ActiveIndex = i
			left := Breakdown(end.Sub(now))
			tl.Remaining = &left
		default:
			// shares its start instant with the end of the current stage
			e.Status = Upcoming
		}
		tl.Entries[i] = e
		cursor = end
	}
	tl.IsLifecycleComplete = now.After(tl.Entries[len(tl.Entries)-1].End)
	return tl
}

// ComputePlant is Compute over a plant's creation time and catalog stages.
func ComputePlant(p models.Plant, now time.Time) StageTimeline {
	return Compute(p.CreatedAt, p.Veggie.Stages, now)
}

// Active returns the current entry, if any.
func (tl StageTimeline) Active() (Entry, bool) {
	if tl.ActiveIndex < 0 || tl.ActiveIndex >= len(tl.Entries) {
		return Entry{}, false
	}
	return tl.Entries[tl.ActiveIndex], true
}

// End is the end of the last stage, or Start for an empty lifecycle.
func (tl StageTimeline) End() time.Time {
	if len(tl.Entries) == 0 {
		return tl.Start
	}
	return tl.Entries[len(tl.Entries)-1].End
}

// Progress is the elapsed fraction of the whole lifecycle in [0, 1].
func (tl StageTimeline) Progress() float64 {
	total := tl.End().Sub(tl.Start)
	if total <= 0 {
		if tl.IsLifecycleComplete {
			return 1
		}
		return 0
	}
	elapsed := tl.Now.Sub(tl.Start)
	switch {
	case elapsed <= 0:
		return 0
	case elapsed >= total:
		return 1
	}
	return float64(elapsed) / float64(total)
}

// Count returns how many entries carry the given status.
func (tl StageTimeline) Count(s Status) int {
	n := 0
	for _, e := range tl.Entries {
		if e.Status == s {
			n++
		}
	}
	return n
}
