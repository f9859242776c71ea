package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/akyairhashvil/sprout/internal/testutil"
)

type TestDataBuilder struct {
	t         *testing.T
	ctx       context.Context
	db        *Database
	user      string
	veggieIDs []int64
	plantIDs  []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db, user: "tester"}
}

func (b *TestDataBuilder) WithVeggies(count int, days ...float64) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		v := testutil.NewVeggie().WithName(fmt.Sprintf("Veggie %d", len(b.veggieIDs)+1))
		if len(days) > 0 {
			v = v.WithStageDays(days...)
		}
		id, err := b.db.AddVeggie(b.ctx, v.Build())
		if err != nil {
			b.t.Fatalf("AddVeggie failed: %v", err)
		}
		b.veggieIDs = append(b.veggieIDs, id)
	}
	return b
}

// WithPlants plants every veggie added so far for the builder's user.
func (b *TestDataBuilder) WithPlants() *TestDataBuilder {
	b.t.Helper()
	for _, vid := range b.veggieIDs {
		id, err := b.db.AddPlant(b.ctx, b.user, vid)
		if err != nil {
			b.t.Fatalf("AddPlant failed: %v", err)
		}
		b.plantIDs = append(b.plantIDs, id)
	}
	return b
}

func (b *TestDataBuilder) Build() (*Database, []int64, []int64) {
	return b.db, b.veggieIDs, b.plantIDs
}

func TestTestDataBuilder(t *testing.T) {
	db, veggies, plants := NewTestDataBuilder(t).WithVeggies(3).WithPlants().Build()
	if len(veggies) != 3 || len(plants) != 3 {
		t.Fatalf("expected 3 veggies and plants, got %d/%d", len(veggies), len(plants))
	}
	listed, err := db.ListPlantsByUser(context.Background(), "tester")
	if err != nil {
		t.Fatalf("ListPlantsByUser failed: %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("expected 3 plants, got %d", len(listed))
	}
}
