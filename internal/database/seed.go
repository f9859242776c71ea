package database

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/sprout/internal/models"
)

// DefaultCatalog is planted into an empty database on first start.
var DefaultCatalog = []models.Veggie{
	{
		Name:        "Lettuce",
		Type:        "leafy",
		Description: "Fast loose-leaf lettuce for balcony boxes.",
		Stages: []models.Stage{
			{StageNumber: 1, Title: "Germination", Description: "Keep the soil moist until sprouts show.", StageEndDays: 7},
			{StageNumber: 2, Title: "Seedling", Description: "Thin to one plant every 10 cm.", StageEndDays: 14},
			{StageNumber: 3, Title: "Leaf growth", Description: "Water daily, partial sun is enough.", StageEndDays: 24},
		},
	},
	{
		Name:        "Cherry tomato",
		Type:        "fruit",
		Description: "Compact tomato that grows well in a 20 l pot.",
		Stages: []models.Stage{
			{StageNumber: 1, Title: "Germination", Description: "Warm spot, 22-28 °C.", StageEndDays: 10},
			{StageNumber: 2, Title: "Seedling", Description: "Move to full sun once true leaves appear.", StageEndDays: 25},
			{StageNumber: 3, Title: "Vegetative", Description: "Stake the stem and pinch side shoots.", StageEndDays: 35},
			{StageNumber: 4, Title: "Flowering", Description: "Shake flowers gently to help pollination.", StageEndDays: 20},
			{StageNumber: 5, Title: "Fruiting", Description: "Harvest when fruit turns fully red.", StageEndDays: 25},
		},
	},
	{
		Name:        "Spinach",
		Type:        "leafy",
		Description: "Cool season green, bolts in hot weather.",
		Stages: []models.Stage{
			{StageNumber: 1, Title: "Germination", StageEndDays: 8},
			{StageNumber: 2, Title: "Rosette", StageEndDays: 20},
			{StageNumber: 3, Title: "Harvest window", StageEndDays: 12},
		},
	},
	{
		Name:        "Chili pepper",
		Type:        "fruit",
		Description: "Slow starter, very productive once warm.",
		Stages: []models.Stage{
			{StageNumber: 1, Title: "Germination", StageEndDays: 14},
			{StageNumber: 2, Title: "Seedling", StageEndDays: 30},
			{StageNumber: 3, Title: "Vegetative", StageEndDays: 30},
			{StageNumber: 4, Title: "Flowering and fruit set", StageEndDays: 40},
		},
	},
	{
		Name:        "Radish",
		Type:        "root",
		Description: "Ready in about a month.",
		Stages: []models.Stage{
			{StageNumber: 1, Title: "Germination", StageEndDays: 4},
			{StageNumber: 2, Title: "Root swelling", StageEndDays: 24},
		},
	},
}

// SeedCatalog inserts DefaultCatalog when the catalog is empty and reports
// how many veggies were added.
func (d *Database) SeedCatalog(ctx context.Context) (int, error) {
	n, err := d.CountVeggies(ctx)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, nil
	}
	for i, v := range DefaultCatalog {
		if _, err := d.AddVeggie(ctx, v); err != nil {
			return i, fmt.Errorf("seed %s: %w", v.Name, err)
		}
	}
	return len(DefaultCatalog), nil
}
