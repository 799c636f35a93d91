package catalog

// Category groups products on the shop's home screen.
type Category struct {
	ID        string
	Name      string
	SortOrder int
}

// Product is one sellable item.
type Product struct {
	SKU         string
	CategoryID  string
	Name        string
	Description string
	PriceCents  int64
	Stock       int
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool {
	return p.Stock > 0
}
