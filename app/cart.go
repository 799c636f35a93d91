package app

import (
	"fmt"

	"shopfront/internal/catalog"
)

// CartLine is one product with a quantity.
type CartLine struct {
	Product catalog.Product
	Qty     int
}

// Cart is the in-memory order being assembled. It lives on the shop
// coordinator and survives any amount of navigation.
type Cart struct {
	lines []CartLine
}

func NewCart() *Cart {
	return &Cart{}
}

// Add puts one unit of p in the cart, merging with an existing line.
func (c *Cart) Add(p catalog.Product) {
	for i := range c.lines {
		if c.lines[i].Product.SKU == p.SKU {
			c.lines[i].Qty++
			return
		}
	}
	c.lines = append(c.lines, CartLine{Product: p, Qty: 1})
}

// Remove drops a whole line by SKU.
func (c *Cart) Remove(sku string) {
	for i := range c.lines {
		if c.lines[i].Product.SKU == sku {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

func (c *Cart) Lines() []CartLine {
	return c.lines
}

// Count returns total units across all lines.
func (c *Cart) Count() int {
	n := 0
	for _, l := range c.lines {
		n += l.Qty
	}
	return n
}

func (c *Cart) TotalCents() int64 {
	var total int64
	for _, l := range c.lines {
		total += l.Product.PriceCents * int64(l.Qty)
	}
	return total
}

func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Clear() {
	c.lines = nil
}

func formatCents(symbol string, cents int64) string {
	return fmt.Sprintf("%s%d.%02d", symbol, cents/100, cents%100)
}
