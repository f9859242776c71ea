package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprout/internal/models"
)

// AddVeggie validates a catalog entry and stores it with its stages.
func (d *Database) AddVeggie(ctx context.Context, v models.Veggie) (int64, error) {
	if err := models.ValidateVeggie(v); err != nil {
		return 0, wrapErr(EntityVeggie, "add", 0, fmt.Errorf("%w: %v", ErrInvalidVeggie, err))
	}
	return withDBContextResult(d, ctx, func(ctx context.Context) (int64, error) {
		var id int64
		err := d.WithTx(ctx, func(tx *sql.Tx) error {
			now := toMillis(d.now())
			res, err := tx.ExecContext(ctx,
				"INSERT INTO veggies (name, description, type, image, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
				strings.TrimSpace(v.Name), v.Description, strings.TrimSpace(v.Type), nullableString(v.Image), now, now)
			if err != nil {
				return err
			}
			if id, err = res.LastInsertId(); err != nil {
				return err
			}
			return insertStages(ctx, tx, id, v.SortedStages())
		})
		if err != nil {
			return 0, wrapErr(EntityVeggie, "add", 0, err)
		}
		return id, nil
	})
}

func insertStages(ctx context.Context, tx *sql.Tx, veggieID int64, stages []models.Stage) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO stages (veggie_id, stage_number, title, description, image_url, stage_end_days)
		VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()
	for _, s := range stages {
		if _, err := stmt.ExecContext(ctx, veggieID, s.StageNumber, s.Title, s.Description, nullableString(s.ImageURL), s.StageEndDays); err != nil {
			return fmt.Errorf("insert stage %d: %w", s.StageNumber, err)
		}
	}
	return nil
}

// GetVeggie loads one catalog entry with its stages in stage order.
func (d *Database) GetVeggie(ctx context.Context, id int64) (models.Veggie, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Veggie, error) {
		var v models.Veggie
		var image sql.NullString
		var created, updated int64
		err := d.DB.QueryRowContext(ctx,
			"SELECT id, name, description, type, image, created_at, updated_at FROM veggies WHERE id = ?", id).
			Scan(&v.ID, &v.Name, &v.Description, &v.Type, &image, &created, &updated)
		if errors.Is(err, sql.ErrNoRows) {
			return v, wrapErr(EntityVeggie, "get", id, ErrNotFound)
		}
		if err != nil {
			return v, wrapErr(EntityVeggie, "get", id, err)
		}
		v.Image = stringPtr(image)
		v.CreatedAt, v.UpdatedAt = fromMillis(created), fromMillis(updated)
		if v.Stages, err = d.stagesFor(ctx, id); err != nil {
			return v, wrapErr(EntityVeggie, "get", id, err)
		}
		return v, nil
	})
}

// ListVeggies returns the whole catalog ordered by name.
func (d *Database) ListVeggies(ctx context.Context) ([]models.Veggie, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Veggie, error) {
		rows, err := d.DB.QueryContext(ctx,
			"SELECT id, name, description, type, image, created_at, updated_at FROM veggies ORDER BY name COLLATE NOCASE ASC")
		if err != nil {
			return nil, wrapErr(EntityVeggie, "list", 0, err)
		}
		var out []models.Veggie
		for rows.Next() {
			var v models.Veggie
			var image sql.NullString
			var created, updated int64
			if err := rows.Scan(&v.ID, &v.Name, &v.Description, &v.Type, &image, &created, &updated); err != nil {
				rows.Close()
				return nil, wrapErr(EntityVeggie, "list", 0, err)
			}
			v.Image = stringPtr(image)
			v.CreatedAt, v.UpdatedAt = fromMillis(created), fromMillis(updated)
			out = append(out, v)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, wrapErr(EntityVeggie, "list", 0, err)
		}
		rows.Close()

		for i := range out {
			if out[i].Stages, err = d.stagesFor(ctx, out[i].ID); err != nil {
				return nil, wrapErr(EntityVeggie, "list", out[i].ID, err)
			}
		}
		return out, nil
	})
}

func (d *Database) stagesFor(ctx context.Context, veggieID int64) ([]models.Stage, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT stage_number, title, description, image_url, stage_end_days
		FROM stages WHERE veggie_id = ? ORDER BY stage_number ASC`, veggieID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stages []models.Stage
	for rows.Next() {
		var s models.Stage
		var image sql.NullString
		if err := rows.Scan(&s.StageNumber, &s.Title, &s.Description, &image, &s.StageEndDays); err != nil {
			return nil, err
		}
		s.ImageURL = stringPtr(image)
		stages = append(stages, s)
	}
	return stages, rows.Err()
}

// UpdateStageDuration changes the length of one stage of a catalog entry.
// Plants already growing pick up the new boundaries on their next evaluation.
func (d *Database) UpdateStageDuration(ctx context.Context, veggieID int64, stageNumber int, days float64) error {
	if !(days > 0) {
		return wrapErr(EntityStage, "update duration", veggieID, models.ErrStageDuration)
	}
	return d.withDBContext(ctx, func(ctx context.Context) error {
		return wrapErr(EntityStage, "update duration", veggieID, d.WithTx(ctx, func(tx *sql.Tx) error {
			res, err := tx.ExecContext(ctx,
				"UPDATE stages SET stage_end_days = ? WHERE veggie_id = ? AND stage_number = ?", days, veggieID, stageNumber)
			if err != nil {
				return err
			}
			if n, err := res.RowsAffected(); err != nil {
				return err
			} else if n == 0 {
				return ErrNotFound
			}
			_, err = tx.ExecContext(ctx, "UPDATE veggies SET updated_at = ? WHERE id = ?", toMillis(d.now()), veggieID)
			return err
		}))
	})
}

// CountVeggies is the catalog size.
func (d *Database) CountVeggies(ctx context.Context) (int, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (int, error) {
		var n int
		err := d.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM veggies").Scan(&n)
		return n, wrapErr(EntityVeggie, "count", 0, err)
	})
}
