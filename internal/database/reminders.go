package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"github.com/akyairhashvil/sprout/internal/models"
)

const reminderColumns = `key, notification_id, plant_id, stage_index, stage_title, veggie_name,
	final_stage, fire_at, fired_at, created_at`

// ScheduleNotification queues a reminder, replacing any row with the same key.
// Each (re)schedule gets a fresh notification id and clears fired_at.
func (d *Database) ScheduleNotification(ctx context.Context, key string, fireAt time.Time, payload models.ReminderPayload) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, `INSERT INTO reminders (`+reminderColumns+`)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, NULL, ?)
			ON CONFLICT(key) DO UPDATE SET
				notification_id = excluded.notification_id,
				plant_id = excluded.plant_id,
				stage_index = excluded.stage_index,
				stage_title = excluded.stage_title,
				veggie_name = excluded.veggie_name,
				final_stage = excluded.final_stage,
				fire_at = excluded.fire_at,
				fired_at = NULL,
				created_at = excluded.created_at`,
			key, uuid.NewString(), payload.PlantID, payload.StageIndex, payload.StageTitle, payload.VeggieName,
			payload.IsFinalStage, toMillis(fireAt), toMillis(d.now()))
		return wrapKeyErr(EntityReminder, "schedule", key, err)
	})
}

// CancelNotification drops a pending reminder. Unknown or already fired keys
// are not an error.
func (d *Database) CancelNotification(ctx context.Context, key string) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "DELETE FROM reminders WHERE key = ? AND fired_at IS NULL", key)
		return wrapKeyErr(EntityReminder, "cancel", key, err)
	})
}

// DueReminders lists unfired reminders whose fire time is at or before now.
func (d *Database) DueReminders(ctx context.Context, now time.Time) ([]models.Reminder, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Reminder, error) {
		out, err := d.queryReminders(ctx,
			"SELECT "+reminderColumns+" FROM reminders WHERE fired_at IS NULL AND fire_at <= ? ORDER BY fire_at, key",
			toMillis(now))
		return out, wrapErr(EntityReminder, "list due", 0, err)
	})
}

// PendingReminders lists the unfired reminders of one plant by fire time.
func (d *Database) PendingReminders(ctx context.Context, plantID int64) ([]models.Reminder, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Reminder, error) {
		out, err := d.queryReminders(ctx,
			"SELECT "+reminderColumns+" FROM reminders WHERE fired_at IS NULL AND plant_id = ? ORDER BY fire_at, key",
			plantID)
		return out, wrapErr(EntityReminder, "list pending", plantID, err)
	})
}

// MarkReminderFired records delivery. Marking an already fired or missing
// reminder returns ErrNotFound.
func (d *Database) MarkReminderFired(ctx context.Context, key string, at time.Time) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE reminders SET fired_at = ? WHERE key = ? AND fired_at IS NULL",
			toMillis(at), key)
		if err != nil {
			return wrapKeyErr(EntityReminder, "mark fired", key, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return wrapKeyErr(EntityReminder, "mark fired", key, err)
		}
		if n == 0 {
			return wrapKeyErr(EntityReminder, "mark fired", key, ErrNotFound)
		}
		return nil
	})
}

func (d *Database) queryReminders(ctx context.Context, query string, args ...interface{}) ([]models.Reminder, error) {
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Reminder
	for rows.Next() {
		var r models.Reminder
		var final bool
		var fireAt, created int64
		var fired sql.NullInt64
		if err := rows.Scan(&r.Key, &r.NotificationID, &r.Payload.PlantID, &r.Payload.StageIndex,
			&r.Payload.StageTitle, &r.Payload.VeggieName, &final, &fireAt, &fired, &created); err != nil {
			return nil, err
		}
		r.Payload.IsFinalStage = final
		r.FireAt = fromMillis(fireAt)
		r.FiredAt = fromNullMillis(fired)
		r.CreatedAt = fromMillis(created)
		out = append(out, r)
	}
	return out, rows.Err()
}
