package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/sprout/internal/lifecycle"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/reminder"
)

// CatalogRepository defines veggie catalog operations.
type CatalogRepository interface {
	AddVeggie(ctx context.Context, v models.Veggie) (int64, error)
	GetVeggie(ctx context.Context, id int64) (models.Veggie, error)
	ListVeggies(ctx context.Context) ([]models.Veggie, error)
	UpdateStageDuration(ctx context.Context, veggieID int64, stageNumber int, days float64) error
}

// GardenRepository defines plant instance operations.
type GardenRepository interface {
	AddPlant(ctx context.Context, userID string, veggieID int64) (int64, error)
	GetPlantByID(ctx context.Context, id int64) (models.Plant, error)
	ListPlantsByUser(ctx context.Context, userID string) ([]models.Plant, error)
	UpdatePlantStatus(ctx context.Context, plantID int64, status models.PlantStatus) error
	DeletePlant(ctx context.Context, plantID int64) error
}

// ReminderQueue defines the local notification queue.
type ReminderQueue interface {
	ScheduleNotification(ctx context.Context, key string, fireAt time.Time, payload models.ReminderPayload) error
	CancelNotification(ctx context.Context, key string) error
	DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error)
	PendingReminders(ctx context.Context, plantID int64) ([]models.Reminder, error)
	MarkReminderFired(ctx context.Context, key string, at time.Time) error
}

// Repository combines all repository interfaces.
type Repository interface {
	CatalogRepository
	GardenRepository
	ReminderQueue
}

var (
	_ Repository            = (*Database)(nil)
	_ reminder.Dispatcher   = (*Database)(nil)
	_ lifecycle.StatusStore = (*Database)(nil)
)
