package app

import "shopfront/internal/catalog"

// StoreData is the catalog snapshot the UI renders from, loaded once at
// startup by cmd/shopfront.
type StoreData struct {
	Categories []catalog.Category
	Products   []catalog.Product
}

func (d StoreData) CategoryByID(id string) (catalog.Category, bool) {
	for _, c := range d.Categories {
		if c.ID == id {
			return c, true
		}
	}
	return catalog.Category{}, false
}

func (d StoreData) ProductBySKU(sku string) (catalog.Product, bool) {
	for _, p := range d.Products {
		if p.SKU == sku {
			return p, true
		}
	}
	return catalog.Product{}, false
}

func (d StoreData) ProductsIn(categoryID string) []catalog.Product {
	var out []catalog.Product
	for _, p := range d.Products {
		if p.CategoryID == categoryID {
			out = append(out, p)
		}
	}
	return out
}
