// Package reminder keeps one pending notification per unfinished growth stage.
//
// Every Sync is a full reconciliation pass against the dispatcher: stale keys
// are cancelled first, then each stage that has not ended and is not already
// held by the session is scheduled for its end instant.
package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/sprout/internal/config"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/timeline"
	"github.com/akyairhashvil/sprout/internal/util"
)

// Dispatcher delivers local notifications. Cancel of an unknown key must succeed.
//
//go:generate mockgen -source=scheduler.go -destination=mock_dispatcher_test.go -package=reminder
type Dispatcher interface {
	ScheduleNotification(ctx context.Context, key string, fireAt time.Time, payload models.ReminderPayload) error
	CancelNotification(ctx context.Context, key string) error
}

type Op string

const (
	OpCancel   Op = "cancel"
	OpSchedule Op = "schedule"
)

// Result is the outcome of one dispatcher call.
type Result struct {
	Key    string
	Op     Op
	FireAt time.Time
	Err    error
}

type Scheduler struct {
	dispatcher Dispatcher
	now        func() time.Time
}

// NewScheduler builds a scheduler; a nil clock means time.Now.
func NewScheduler(d Dispatcher, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{dispatcher: d, now: now}
}

// Sync reconciles the reminders of one plant. Failures are isolated per key,
// logged, and reported in the returned results; they never stop the pass.
func (s *Scheduler) Sync(ctx context.Context, session *Session, plant models.Plant) []Result {
	now := s.now()
	tl := timeline.ComputePlant(plant, now)
	live := !plant.Status.Terminal()
	total := len(tl.Entries)
	var results []Result

	for _, e := range tl.Entries {
		key := models.ReminderKey(plant.ID, e.Index)
		if live && e.End.After(now) && session.fresh(key, e.End, payloadFor(plant, e, total)) {
			continue
		}
		results = append(results, s.cancel(ctx, session, key))
	}
	for _, key := range session.orphans(plant.ID, total) {
		results = append(results, s.cancel(ctx, session, key))
	}
	if !live {
		return results
	}

	for _, e := range tl.Entries {
		if !e.End.After(now) {
			continue
		}
		key := models.ReminderKey(plant.ID, e.Index)
		if session.Has(key) {
			continue
		}
		payload := payloadFor(plant, e, total)
		fireAt := s.fireTime(e.End)
		err := s.dispatcher.ScheduleNotification(ctx, key, fireAt, payload)
		if err != nil {
			util.LogError(fmt.Sprintf("schedule reminder %s", key), err)
		} else {
			session.mark(key, e.End, payload)
		}
		results = append(results, Result{Key: key, Op: OpSchedule, FireAt: fireAt, Err: err})
	}
	return results
}

func payloadFor(plant models.Plant, e timeline.Entry, total int) models.ReminderPayload {
	return models.ReminderPayload{
		PlantID:      plant.ID,
		StageIndex:   e.Index,
		StageTitle:   e.Stage.Title,
		VeggieName:   plant.Veggie.Name,
		IsFinalStage: e.IsFinal(total),
	}
}

func (s *Scheduler) cancel(ctx context.Context, session *Session, key string) Result {
	err := s.dispatcher.CancelNotification(ctx, key)
	util.LogError(fmt.Sprintf("cancel reminder %s", key), err)
	session.forget(key)
	return Result{Key: key, Op: OpCancel, Err: err}
}

// fireTime never lands in the past: a boundary crossed since the timeline was
// computed fires after MinReminderDelay.
func (s *Scheduler) fireTime(stageEnd time.Time) time.Time {
	at := s.now()
	if stageEnd.Sub(at) < config.MinReminderDelay {
		return at.Add(config.MinReminderDelay)
	}
	return stageEnd
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var out []Result
	for _, r := range results {
		if r.Err != nil {
			out = append(out, r)
		}
	}
	return out
}

// Scheduled returns the keys scheduled successfully.
func Scheduled(results []Result) []string {
	var keys []string
	for _, r := range results {
		if r.Op == OpSchedule && r.Err == nil {
			keys = append(keys, r.Key)
		}
	}
	return keys
}
