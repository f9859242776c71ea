package testutil

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/sprout/internal/models"
)

// T0 is a fixed lifecycle start used across tests.
var T0 = time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)

// Stages builds numbered stages with the given durations in days.
func Stages(days ...float64) []models.Stage {
	out := make([]models.Stage, 0, len(days))
	for i, d := range days {
		out = append(out, models.Stage{
			StageNumber:  i + 1,
			Title:        fmt.Sprintf("Stage %d", i+1),
			Description:  fmt.Sprintf("Description %d", i+1),
			StageEndDays: d,
		})
	}
	return out
}

// VeggieBuilder provides fluent API for creating test veggies.
type VeggieBuilder struct {
	veggie models.Veggie
}

func NewVeggie() *VeggieBuilder {
	return &VeggieBuilder{
		veggie: models.Veggie{
			Name:        "Test Veggie",
			Description: "Grown in tests",
			Type:        "leafy",
			Stages:      Stages(2, 3, 4),
		},
	}
}

func (b *VeggieBuilder) WithName(name string) *VeggieBuilder {
	b.veggie.Name = name
	return b
}

func (b *VeggieBuilder) WithID(id int64) *VeggieBuilder {
	b.veggie.ID = id
	return b
}

func (b *VeggieBuilder) WithStageDays(days ...float64) *VeggieBuilder {
	b.veggie.Stages = Stages(days...)
	return b
}

func (b *VeggieBuilder) Build() models.Veggie {
	return b.veggie
}

// PlantBuilder provides fluent API for creating test plants.
type PlantBuilder struct {
	plant models.Plant
}

func NewPlant() *PlantBuilder {
	veggie := NewVeggie().WithID(1).Build()
	return &PlantBuilder{
		plant: models.Plant{
			ID:        1,
			UserID:    "tester",
			VeggieID:  veggie.ID,
			CreatedAt: T0,
			Status:    models.PlantOngoing,
			Veggie:    veggie,
		},
	}
}

func (b *PlantBuilder) WithID(id int64) *PlantBuilder {
	b.plant.ID = id
	return b
}

func (b *PlantBuilder) WithStatus(s models.PlantStatus) *PlantBuilder {
	b.plant.Status = s
	return b
}

func (b *PlantBuilder) CreatedAt(at time.Time) *PlantBuilder {
	b.plant.CreatedAt = at
	return b
}

func (b *PlantBuilder) WithStageDays(days ...float64) *PlantBuilder {
	b.plant.Veggie.Stages = Stages(days...)
	return b
}

func (b *PlantBuilder) WithVeggie(v models.Veggie) *PlantBuilder {
	b.plant.Veggie = v
	b.plant.VeggieID = v.ID
	return b
}

func (b *PlantBuilder) Build() models.Plant {
	return b.plant
}

// Days returns T0 shifted by the given number of days.
func Days(n float64) time.Time {
	return T0.Add(time.Duration(n * float64(24*time.Hour)))
}
