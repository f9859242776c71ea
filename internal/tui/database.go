package tui

import (
	"context"

	"github.com/akyairhashvil/sprout/internal/database"
	"github.com/akyairhashvil/sprout/internal/engine"
	"github.com/akyairhashvil/sprout/internal/models"
	"github.com/akyairhashvil/sprout/internal/notify"
	"github.com/akyairhashvil/sprout/internal/reminder"
)

// Database defines the persistence methods the TUI requires.
type Database interface {
	GetSetting(ctx context.Context, key string) (string, bool, error)
	SetSetting(ctx context.Context, key, value string) error

	ListVeggies(ctx context.Context) ([]models.Veggie, error)
	AddPlant(ctx context.Context, userID string, veggieID int64) (int64, error)
	DeletePlant(ctx context.Context, plantID int64) error
	PendingReminders(ctx context.Context, plantID int64) ([]models.Reminder, error)

	engine.PlantStore
	reminder.Dispatcher
	notify.Queue
}

var _ Database = (*database.Database)(nil)
