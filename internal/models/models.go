package models

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/akyairhashvil/sprout/internal/config"
)

// PlantStatus enumerates the lifecycle states of a planting.
type PlantStatus string

const (
	PlantOngoing  PlantStatus = config.StatusOngoing
	PlantDone     PlantStatus = config.StatusDone
	PlantCanceled PlantStatus = config.StatusCanceled
)

// Terminal reports whether no further transition is allowed.
func (s PlantStatus) Terminal() bool {
	return s == PlantDone || s == PlantCanceled
}

// CanTransition allows only ongoing -> done and ongoing -> canceled.
func (s PlantStatus) CanTransition(to PlantStatus) bool {
	if s != PlantOngoing {
		return false
	}
	return to == PlantDone || to == PlantCanceled
}

// ParsePlantStatus maps a stored value to a PlantStatus.
func ParsePlantStatus(v string) (PlantStatus, error) {
	switch s := PlantStatus(strings.ToLower(strings.TrimSpace(v))); s {
	case PlantOngoing, PlantDone, PlantCanceled:
		return s, nil
	default:
		return "", fmt.Errorf("unknown plant status %q", v)
	}
}

var (
	ErrStageNumber   = errors.New("stage number must be 1 or greater")
	ErrStageTitle    = errors.New("stage title is required")
	ErrStageDuration = errors.New("stage duration must be positive")
)

// Stage is one timed step in a vegetable's growth.
type Stage struct {
	StageNumber  int
	Title        string
	Description  string
	ImageURL     *string
	StageEndDays float64 // length of this stage, not cumulative
}

// NewStage builds a stage and enforces its invariants.
func NewStage(number int, title, description string, days float64) (Stage, error) {
	s := Stage{
		StageNumber:  number,
		Title:        strings.TrimSpace(title),
		Description:  strings.TrimSpace(description),
		StageEndDays: days,
	}
	return s, s.Validate()
}

func (s Stage) Validate() error {
	if s.StageNumber < 1 {
		return ErrStageNumber
	}
	if s.Title == "" {
		return ErrStageTitle
	}
	if !(s.StageEndDays > 0) {
		return ErrStageDuration
	}
	return nil
}

// Duration converts StageEndDays to wall-clock time.
func (s Stage) Duration() time.Duration {
	return time.Duration(s.StageEndDays * float64(config.Day))
}

// Veggie is a catalog vegetable.
type Veggie struct {
	ID          int64
	Name        string
	Description string
	Type        string
	Image       *string
	Stages      []Stage
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SortedStages returns a copy of the stages ordered by stage number.
func (v Veggie) SortedStages() []Stage {
	return SortStages(v.Stages)
}

// SortStages returns a copy ordered by StageNumber; ties keep input order.
func SortStages(stages []Stage) []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].StageNumber < out[j].StageNumber
	})
	return out
}

// TotalDays is the length of the whole lifecycle.
func (v Veggie) TotalDays() float64 {
	var total float64
	for _, s := range v.Stages {
		total += s.StageEndDays
	}
	return total
}

// ValidationError collects every problem found in a catalog entry.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return "invalid veggie: " + strings.Join(e.Problems, "; ")
}

// ValidateVeggie checks a catalog entry before it is stored.
func ValidateVeggie(v Veggie) error {
	var problems []string
	if strings.TrimSpace(v.Name) == "" {
		problems = append(problems, "name is required")
	}
	if strings.TrimSpace(v.Type) == "" {
		problems = append(problems, "type is required")
	}
	if len(v.Stages) == 0 {
		problems = append(problems, "at least one stage is required")
	}
	for i, s := range v.SortedStages() {
		if err := s.Validate(); err != nil {
			problems = append(problems, fmt.Sprintf("stage %d: %v", i+1, err))
		}
		if s.StageNumber != i+1 {
			problems = append(problems, fmt.Sprintf("stage %d: expected stage number %d, got %d", i+1, i+1, s.StageNumber))
		}
	}
	if len(problems) > 0 {
		return &ValidationError{Problems: problems}
	}
	return nil
}

// Plant is a user's planting of one catalog vegetable.
type Plant struct {
	ID        int64
	UserID    string
	VeggieID  int64
	CreatedAt time.Time // lifecycle start
	Status    PlantStatus
	Veggie    Veggie
}

// ReminderKey identifies the reminder for one stage of one plant.
func ReminderKey(plantID int64, stageIndex int) string {
	return fmt.Sprintf("%d-%d", plantID, stageIndex)
}

// ReminderPayload is what a delivered reminder tells the gardener.
type ReminderPayload struct {
	PlantID      int64
	StageIndex   int
	StageTitle   string
	VeggieName   string
	IsFinalStage bool
}

func (p ReminderPayload) Title() string {
	if p.IsFinalStage {
		return fmt.Sprintf("%s: growth complete", p.name())
	}
	return fmt.Sprintf("%s: next stage starting", p.name())
}

func (p ReminderPayload) Body() string {
	if p.IsFinalStage {
		return fmt.Sprintf("%q was the last stage. Time to harvest.", p.StageTitle)
	}
	return fmt.Sprintf("%q has ended.", p.StageTitle)
}

func (p ReminderPayload) name() string {
	if p.VeggieName == "" {
		return "Your plant"
	}
	return p.VeggieName
}

// Reminder is a row of the local notification queue.
type Reminder struct {
	Key            string
	NotificationID string
	FireAt         time.Time
	FiredAt        *time.Time
	CreatedAt      time.Time
	Payload        ReminderPayload
}
