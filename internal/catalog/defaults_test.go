package catalog

import (
	"context"
	"testing"
)

func TestSeedDefaultsIsIdempotent(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer db.Close()
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx := context.Background()
	if err := SeedDefaults(ctx, db); err != nil {
		t.Fatalf("seed: %v", err)
	}
	categories, err := NewCategoryRepo(db).List(ctx)
	if err != nil || len(categories) == 0 {
		t.Fatalf("categories after seed = %v (%v)", categories, err)
	}
	products, err := NewProductRepo(db).ListAll(ctx)
	if err != nil || len(products) == 0 {
		t.Fatalf("products after seed = %v (%v)", products, err)
	}

	if err := SeedDefaults(ctx, db); err != nil {
		t.Fatalf("reseed: %v", err)
	}
	again, err := NewCategoryRepo(db).List(ctx)
	if err != nil || len(again) != len(categories) {
		t.Fatalf("reseed changed the catalog: %d -> %d (%v)", len(categories), len(again), err)
	}
}
