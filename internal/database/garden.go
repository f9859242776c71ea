package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprout/internal/models"
)

// AddPlant plants a catalog veggie for a user. A user can have one ongoing
// planting per veggie at a time.
func (d *Database) AddPlant(ctx context.Context, userID string, veggieID int64) (int64, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return 0, wrapErr(EntityPlant, "add", 0, errors.New("user id is required"))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		var id int64
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			var existing int
			if err := tx.QueryRowContext(ctx,
				"SELECT COUNT(1) FROM garden WHERE user_id = ? AND veggie_id = ? AND status = ?",
				userID, veggieID, string(models.PlantOngoing)).Scan(&existing); err != nil {
				return err
			}
			if existing > 0 {
				return ErrAlreadyPlanted
			}
			var known int
			if err := tx.QueryRowContext(ctx, "SELECT COUNT(1) FROM veggies WHERE id = ?", veggieID).Scan(&known); err != nil {
				return err
			}
			if known == 0 {
				return fmt.Errorf("veggie %d: %w", veggieID, ErrNotFound)
			}
			now := toMillis(d.now())
			res, err := tx.ExecContext(ctx,
				"INSERT INTO garden (user_id, veggie_id, status, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
				userID, veggieID, string(models.PlantOngoing), now, now)
			if err != nil {
				return err
			}
			id, err = res.LastInsertId()
			return err
		})
		if err != nil {
			return 0, wrapErr(EntityPlant, "add", 0, err)
		}
		return id, nil
	})
}

// GetPlantByID loads a plant joined with its veggie and ordered stages.
func (d *Database) GetPlantByID(ctx context.Context, id int64) (models.Plant, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Plant, error) {
		plants, err := d.queryPlants(ctx, NewPlantQuery().WhereID(id))
		if err != nil {
			return models.Plant{}, wrapErr(EntityPlant, "get", id, err)
		}
		if len(plants) == 0 {
			return models.Plant{}, wrapErr(EntityPlant, "get", id, ErrNotFound)
		}
		return plants[0], nil
	})
}

// ListPlantsByUser returns a user's garden, newest first.
func (d *Database) ListPlantsByUser(ctx context.Context, userID string) ([]models.Plant, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Plant, error) {
		plants, err := d.queryPlants(ctx, NewPlantQuery().WhereUser(userID))
		return plants, wrapErr(EntityPlant, "list", 0, err)
	})
}

// ListOngoingPlants returns every ongoing plant across users.
func (d *Database) ListOngoingPlants(ctx context.Context) ([]models.Plant, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Plant, error) {
		plants, err := d.queryPlants(ctx, NewPlantQuery().WhereStatus(string(models.PlantOngoing)).OrderBy("g.id ASC"))
		return plants, wrapErr(EntityPlant, "list ongoing", 0, err)
	})
}

func (d *Database) queryPlants(ctx context.Context, q *PlantQuery) ([]models.Plant, error) {
	query, args := q.Build()
	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	var plants []models.Plant
	for rows.Next() {
		var p models.Plant
		var status string
		var created int64
		if err := rows.Scan(&p.ID, &p.UserID, &p.VeggieID, &status, &created); err != nil {
			rows.Close()
			return nil, err
		}
		if p.Status, err = models.ParsePlantStatus(status); err != nil {
			rows.Close()
			return nil, fmt.Errorf("plant %d: %w", p.ID, err)
		}
		p.CreatedAt = fromMillis(created)
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	veggies := make(map[int64]models.Veggie)
	for i := range plants {
		v, ok := veggies[plants[i].VeggieID]
		if !ok {
			if v, err = d.GetVeggie(ctx, plants[i].VeggieID); err != nil {
				return nil, err
			}
			veggies[v.ID] = v
		}
		plants[i].Veggie = v
	}
	return plants, nil
}

// UpdatePlantStatus persists a status transition. Only ongoing -> done and
// ongoing -> canceled are accepted; setting the current status again is a no-op.
func (d *Database) UpdatePlantStatus(ctx context.Context, plantID int64, status models.PlantStatus) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntityPlant, "update status", plantID, d.WithTx(ctx, func(tx *sql.Tx) error {
			var raw string
			err := tx.QueryRowContext(ctx, "SELECT status FROM garden WHERE id = ?", plantID).Scan(&raw)
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			if err != nil {
				return err
			}
			current, err := models.ParsePlantStatus(raw)
			if err != nil {
				return err
			}
			if current == status {
				return nil
			}
			if !current.CanTransition(status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidStatus, current, status)
			}
			_, err = tx.ExecContext(ctx, "UPDATE garden SET status = ?, updated_at = ? WHERE id = ?",
				string(status), toMillis(d.now()), plantID)
			return err
		}))
	})
}

// DeletePlant removes a planting and its queued reminders.
func (d *Database) DeletePlant(ctx context.Context, plantID int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntityPlant, "delete", plantID, d.WithTx(ctx, func(tx *sql.Tx) error {
			if _, err := tx.ExecContext(ctx, "DELETE FROM reminders WHERE plant_id = ?", plantID); err != nil {
				return err
			}
			res, err := tx.ExecContext(ctx, "DELETE FROM garden WHERE id = ?", plantID)
			if err != nil {
				return err
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return ErrNotFound
			}
			return nil
		}))
	})
}
