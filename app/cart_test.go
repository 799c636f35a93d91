package app

import (
	"testing"

	"shopfront/internal/catalog"
)

func TestCartMergesLines(t *testing.T) {
	c := NewCart()
	p := catalog.Product{SKU: "CF-ESP-250", Name: "Espresso", PriceCents: 1450, Stock: 5}
	c.Add(p)
	c.Add(p)
	if len(c.Lines()) != 1 {
		t.Fatalf("same SKU should merge into one line")
	}
	if c.Count() != 2 {
		t.Fatalf("count = %d, want 2", c.Count())
	}
	if c.TotalCents() != 2900 {
		t.Fatalf("total = %d, want 2900", c.TotalCents())
	}
}

func TestCartRemoveAndClear(t *testing.T) {
	c := NewCart()
	c.Add(catalog.Product{SKU: "A", PriceCents: 100})
	c.Add(catalog.Product{SKU: "B", PriceCents: 200})
	c.Remove("A")
	if len(c.Lines()) != 1 || c.Lines()[0].Product.SKU != "B" {
		t.Fatalf("remove should drop the whole line")
	}
	c.Clear()
	if !c.Empty() {
		t.Fatalf("clear should empty the cart")
	}
}

func TestFormatCents(t *testing.T) {
	if got := formatCents("$", 1450); got != "$14.50" {
		t.Fatalf("formatCents = %q", got)
	}
	if got := formatCents("$", 5); got != "$0.05" {
		t.Fatalf("formatCents = %q", got)
	}
}
