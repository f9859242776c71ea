// Package engine runs one plant-detail evaluation: timeline, status update
// and reminder reconciliation, in that order, against a single load of the plant.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/akyairhashvil/sprout/internal/lifecycle"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/reminder"
	"github.com/akyairhashvil/sprout/internal/timeline"
	"github.com/akyairhashvil/sprout/internal/util"
)

// PlantStore loads plants and persists status changes.
//
//go:generate mockgen -source=engine.go -destination=mock_store_test.go -package=engine
type PlantStore interface {
	GetPlantByID(ctx context.Context, id int64) (models.Plant, error)
	ListPlantsByUser(ctx context.Context, userID string) ([]models.Plant, error)
	UpdatePlantStatus(ctx context.Context, plantID int64, status models.PlantStatus) error
}

// Evaluation is what a detail screen renders after one pass.
type Evaluation struct {
	Plant     models.Plant
	Timeline  timeline.StageTimeline
	Completed bool // this pass moved the plant to done
	Reminders []reminder.Result
	StatusErr error
}

// Summary is the timeline of one plant without side effects.
type Summary struct {
	Plant    models.Plant
	Timeline timeline.StageTimeline
}

type Engine struct {
	store     PlantStore
	updater   *lifecycle.Updater
	scheduler *reminder.Scheduler
	now       func() time.Time
}

// New wires the engine; a nil clock means time.Now.
func New(store PlantStore, dispatcher reminder.Dispatcher, now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{
		store:     store,
		updater:   lifecycle.NewUpdater(store),
		scheduler: reminder.NewScheduler(dispatcher, now),
		now:       now,
	}
}

// Evaluate loads the plant once and runs the status updater and the reminder
// sync on it. Only the load error is returned; collaborator failures are
// logged and reported in the Evaluation.
func (e *Engine) Evaluate(ctx context.Context, session *reminder.Session, plantID int64) (Evaluation, error) {
	plant, err := e.store.GetPlantByID(ctx, plantID)
	if err != nil {
		return Evaluation{}, fmt.Errorf("load plant %d: %w", plantID, err)
	}
	return e.evaluate(ctx, session, plant), nil
}

func (e *Engine) evaluate(ctx context.Context, session *reminder.Session, plant models.Plant) Evaluation {
	tl := timeline.ComputePlant(plant, e.now())
	ev := Evaluation{Timeline: tl}

	plant, ev.Completed, ev.StatusErr = e.updater.MaybeComplete(ctx, plant, tl)
	util.LogError("lifecycle update", ev.StatusErr)

	ev.Plant = plant
	ev.Reminders = e.scheduler.Sync(ctx, session, plant)
	return ev
}

// Cancel stops a growing plant and withdraws its reminders.
func (e *Engine) Cancel(ctx context.Context, session *reminder.Session, plantID int64) (Evaluation, error) {
	plant, err := e.store.GetPlantByID(ctx, plantID)
	if err != nil {
		return Evaluation{}, fmt.Errorf("load plant %d: %w", plantID, err)
	}
	if plant, err = e.updater.Cancel(ctx, plant); err != nil {
		return Evaluation{}, err
	}
	return e.evaluate(ctx, session, plant), nil
}

// Summaries computes the timeline of every plant of a user. Nothing is
// written, so list screens can call it freely.
func (e *Engine) Summaries(ctx context.Context, userID string) ([]Summary, error) {
	plants, err := e.store.ListPlantsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list garden of %s: %w", userID, err)
	}
	now := e.now()
	out := make([]Summary, 0, len(plants))
	for _, p := range plants {
		out = append(out, Summary{Plant: p, Timeline: timeline.ComputePlant(p, now)})
	}
	return out, nil
}
