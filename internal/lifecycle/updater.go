package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/timeline"
)

var ErrTerminalStatus = errors.New("plant is already done or canceled")

// StatusStore persists plant status transitions.
//
//go:generate mockgen -source=updater.go -destination=mock_store_test.go -package=lifecycle
type StatusStore interface {
	UpdatePlantStatus(ctx context.Context, plantID int64, status models.PlantStatus) error
}

// Updater drives the one-way ongoing -> done transition from timeline completion.
type Updater struct {
	store StatusStore
}

func NewUpdater(store StatusStore) *Updater {
	return &Updater{store: store}
}

// MaybeComplete marks an ongoing plant done once its last stage has ended.
// The returned bool reports whether a transition was persisted. On a store
// failure the plant comes back unchanged; the next evaluation tries again.
func (u *Updater) MaybeComplete(ctx context.Context, plant models.Plant, tl timeline.StageTimeline) (models.Plant, bool, error) {
	if !tl.IsLifecycleComplete || plant.Status != models.PlantOngoing {
		return plant, false, nil
	}
	if err := u.store.UpdatePlantStatus(ctx, plant.ID, models.PlantDone); err != nil {
		return plant, false, fmt.Errorf("complete plant %d: %w", plant.ID, err)
	}
	plant.Status = models.PlantDone
	return plant, true, nil
}

// Cancel is the user-driven ongoing -> canceled transition.
func (u *Updater) Cancel(ctx context.Context, plant models.Plant) (models.Plant, error) {
	if plant.Status.Terminal() {
		return plant, fmt.Errorf("cancel plant %d: %w", plant.ID, ErrTerminalStatus)
	}
	if err := u.store.UpdatePlantStatus(ctx, plant.ID, models.PlantCanceled); err != nil {
		return plant, fmt.Errorf("cancel plant %d: %w", plant.ID, err)
	}
	plant.Status = models.PlantCanceled
	return plant, nil
}
