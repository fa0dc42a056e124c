package trip

import (
	"context"
	"errors"
	"os"
	"reflect"
	"testing"

	"atlas/internal/infra"
)

// Round-trip and deletion tests against a real database. Requires the trips
// and trip_days tables to exist.
func TestStore_RoundTrip(t *testing.T) {
	dsn := os.Getenv("ATLAS_DB_DSN")
	if dsn == "" {
		t.Skip("ATLAS_DB_DSN not set; skipping integration test")
	}

	ctx := context.Background()
	db, err := infra.NewDB(ctx, dsn)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	store := NewStore(db)

	total, perPerson := 480.0, 240.0
	lat, lng := 35.0116, 135.7681
	weather := "Current weather: clear sky, 21.0°C (feels like 20.0°C)"

	plan := &Plan{
		Destination: "Kyoto",
		Days:        2,
		BudgetLevel: "medium",
		Overview:    "Temples and tea.",
		DailyPlan: []DayPlan{
			{Day: 1, Title: "East side", Summary: "Shrines.", Places: []string{"Fushimi Inari", "Kiyomizu-dera"}},
			{Day: 2, Title: "Arashiyama", Summary: "Bamboo grove,\nriver walk.", Places: []string{"Bamboo Grove"}},
		},
		Tips:                 []string{"Get an IC card", "Carry cash"},
		EstimatedTotalBudget: &total,
		EstimatedPerPerson:   &perPerson,
		BudgetBreakdown:      Breakdown{"accommodation": 200, "food": 150},
		Lat:                  &lat,
		Lng:                  &lng,
		WeatherSummary:       &weather,
		Events:               []map[string]any{{"title": "not persisted"}},
	}
	req := Request{Destination: "Kyoto", Days: 2, BudgetLevel: "medium", Travelers: 2, UserID: "store-test-user"}

	id, err := store.Save(ctx, plan, req)
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, owner, err := store.Load(ctx, id)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if owner != req.UserID {
		t.Errorf("owner = %q, want %q", owner, req.UserID)
	}

	// Field-for-field equivalence, except enrichment lists which are not
	// persisted and the id assigned on save.
	want := *plan
	want.ID = &id
	want.Events = nil
	loaded.Events = nil
	if !reflect.DeepEqual(loaded, &want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", loaded, &want)
	}

	if err := store.Delete(ctx, id); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, _, err := store.Load(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestStore_LoadMissing(t *testing.T) {
	dsn := os.Getenv("ATLAS_DB_DSN")
	if dsn == "" {
		t.Skip("ATLAS_DB_DSN not set; skipping integration test")
	}

	ctx := context.Background()
	db, err := infra.NewDB(ctx, dsn)
	if err != nil {
		t.Fatalf("db connect: %v", err)
	}
	defer db.Close()

	store := NewStore(db)
	if _, _, err := store.Load(ctx, -1); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
