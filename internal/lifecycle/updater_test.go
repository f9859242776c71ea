package lifecycle

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/testutil"
	"github.com/akyairhashvil/sprout/internal/timeline"
	"github.com/golang/mock/gomock"
)

func TestMaybeCompleteTransitionsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)
	ctx := context.Background()

	plant := testutil.NewPlant().WithID(7).WithStageDays(5).Build()
	tl := timeline.ComputePlant(plant, testutil.Days(5).Add(time.Minute))

	store.EXPECT().UpdatePlantStatus(gomock.Any(), int64(7), models.PlantDone).Return(nil).Times(1)

	u := NewUpdater(store)
	updated, changed, err := u.MaybeComplete(ctx, plant, tl)
	if err != nil {
		t.Fatalf("MaybeComplete failed: %v", err)
	}
	if !changed || updated.Status != models.PlantDone {
		t.Fatalf("expected plant to be done, got %q changed=%v", updated.Status, changed)
	}

	for i := 0; i < 3; i++ {
		again, changed, err := u.MaybeComplete(ctx, updated, tl)
		if err != nil || changed {
			t.Fatalf("repeat call should be a no-op, changed=%v err=%v", changed, err)
		}
		if again.Status != models.PlantDone {
			t.Fatalf("status drifted to %q", again.Status)
		}
	}
}

func TestMaybeCompleteNotYetComplete(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)

	plant := testutil.NewPlant().WithStageDays(5).Build()
	tl := timeline.ComputePlant(plant, testutil.Days(5))

	updated, changed, err := NewUpdater(store).MaybeComplete(context.Background(), plant, tl)
	if err != nil || changed {
		t.Fatalf("expected no transition on the boundary, changed=%v err=%v", changed, err)
	}
	if updated.Status != models.PlantOngoing {
		t.Fatalf("expected ongoing, got %q", updated.Status)
	}
}

func TestMaybeCompleteSkipsCanceledPlants(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)

	plant := testutil.NewPlant().WithStatus(models.PlantCanceled).WithStageDays(1).Build()
	tl := timeline.ComputePlant(plant, testutil.Days(30))

	updated, changed, err := NewUpdater(store).MaybeComplete(context.Background(), plant, tl)
	if err != nil || changed || updated.Status != models.PlantCanceled {
		t.Fatalf("expected canceled plant untouched, got %q changed=%v err=%v", updated.Status, changed, err)
	}
}

func TestMaybeCompleteStoreFailureKeepsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)
	boom := errors.New("backend unavailable")

	plant := testutil.NewPlant().WithID(3).WithStageDays(1).Build()
	tl := timeline.ComputePlant(plant, testutil.Days(2))

	gomock.InOrder(
		store.EXPECT().UpdatePlantStatus(gomock.Any(), int64(3), models.PlantDone).Return(boom),
		store.EXPECT().UpdatePlantStatus(gomock.Any(), int64(3), models.PlantDone).Return(nil),
	)

	u := NewUpdater(store)
	updated, changed, err := u.MaybeComplete(context.Background(), plant, tl)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
	if changed || updated.Status != models.PlantOngoing {
		t.Fatalf("status must not change optimistically, got %q", updated.Status)
	}

	updated, changed, err = u.MaybeComplete(context.Background(), updated, tl)
	if err != nil || !changed || updated.Status != models.PlantDone {
		t.Fatalf("expected retry on the next evaluation to succeed, got %q changed=%v err=%v", updated.Status, changed, err)
	}
}

func TestMaybeCompleteEmptyStages(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)
	store.EXPECT().UpdatePlantStatus(gomock.Any(), gomock.Any(), models.PlantDone).Return(nil)

	plant := testutil.NewPlant().WithStageDays().Build()
	tl := timeline.ComputePlant(plant, testutil.T0)
	if _, changed, err := NewUpdater(store).MaybeComplete(context.Background(), plant, tl); err != nil || !changed {
		t.Fatalf("expected empty lifecycle to complete, changed=%v err=%v", changed, err)
	}
}

func TestCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := NewMockStatusStore(ctrl)
	store.EXPECT().UpdatePlantStatus(gomock.Any(), int64(9), models.PlantCanceled).Return(nil)

	u := NewUpdater(store)
	plant := testutil.NewPlant().WithID(9).Build()
	canceled, err := u.Cancel(context.Background(), plant)
	if err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if canceled.Status != models.PlantCanceled {
		t.Fatalf("expected canceled, got %q", canceled.Status)
	}
	if _, err := u.Cancel(context.Background(), canceled); !errors.Is(err, ErrTerminalStatus) {
		t.Fatalf("expected ErrTerminalStatus, got %v", err)
	}
}
