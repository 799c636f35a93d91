package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

// SeedDefaults ensures a demo catalog exists for new databases. It is
// idempotent and writes in one transaction, so a partial catalog can never
// be observed.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	existing, err := NewCategoryRepo(db).List(ctx)
	if err == nil && len(existing) > 0 {
		return nil
	}

	return WithTx(db, func(tx *sql.Tx) error {
		catRepo := NewCategoryRepo(tx)
		categories := []string{"Coffee", "Brewing Gear", "Mugs"}
		catIDs := map[string]string{}
		for idx, name := range categories {
			id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("cat:"+name)).String()
			catIDs[name] = id
			if err := catRepo.Upsert(ctx, Category{ID: id, Name: name, SortOrder: idx}); err != nil {
				return err
			}
		}

		prodRepo := NewProductRepo(tx)
		products := []Product{
			{SKU: "CF-ESP-250", CategoryID: catIDs["Coffee"], Name: "Espresso Blend 250g", Description: "Dark roast, chocolate and hazelnut.", PriceCents: 1450, Stock: 24},
			{SKU: "CF-ETH-250", CategoryID: catIDs["Coffee"], Name: "Ethiopia Single Origin 250g", Description: "Washed, floral, bergamot.", PriceCents: 1650, Stock: 12},
			{SKU: "CF-DEC-250", CategoryID: catIDs["Coffee"], Name: "Decaf Colombia 250g", Description: "Sugarcane process, caramel.", PriceCents: 1550, Stock: 0},
			{SKU: "BG-V60-02", CategoryID: catIDs["Brewing Gear"], Name: "V60 Dripper 02", Description: "Ceramic, two cup.", PriceCents: 2900, Stock: 8},
			{SKU: "BG-SCALE", CategoryID: catIDs["Brewing Gear"], Name: "Pocket Brew Scale", Description: "0.1g resolution, timer.", PriceCents: 4200, Stock: 5},
			{SKU: "MG-DINER", CategoryID: catIDs["Mugs"], Name: "Diner Mug", Description: "Stoneware, 300ml.", PriceCents: 1200, Stock: 30},
		}
		for _, p := range products {
			if err := prodRepo.Upsert(ctx, p); err != nil {
				return err
			}
		}
		return nil
	})
}
