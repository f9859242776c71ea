package database

import (
	"fmt"
	"strings"
)

const plantColumns = "g.id, g.user_id, g.veggie_id, g.status, g.created_at"

// PlantQuery builds SELECTs over the garden table.
type PlantQuery struct {
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewPlantQuery() *PlantQuery {
	return &PlantQuery{orderBy: "g.created_at DESC, g.id DESC"}
}

func (q *PlantQuery) Where(filter string, args ...interface{}) *PlantQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *PlantQuery) WhereID(id int64) *PlantQuery {
	return q.Where("g.id = ?", id)
}

func (q *PlantQuery) WhereUser(userID string) *PlantQuery {
	return q.Where("g.user_id = ?", userID)
}

func (q *PlantQuery) WhereStatus(status string) *PlantQuery {
	return q.Where("g.status = ?", status)
}

func (q *PlantQuery) OrderBy(orderBy string) *PlantQuery {
	q.orderBy = orderBy
	return q
}

func (q *PlantQuery) Limit(limit int) *PlantQuery {
	q.limit = limit
	return q
}

func (q *PlantQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM garden g", plantColumns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
