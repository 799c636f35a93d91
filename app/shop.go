package app

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/catalog"
	"shopfront/nav"
)

// ShopCoordinator is the root of the navigation tree: it owns the category
// and product push stack and presents the cart, checkout and search flows.
type ShopCoordinator struct {
	*nav.Coordinator
	reg      *nav.Registry
	data     StoreData
	cart     *Cart
	currency string
}

func NewShopCoordinator(reg *nav.Registry, data StoreData, currency string) *ShopCoordinator {
	return &ShopCoordinator{
		Coordinator: reg.NewCoordinator("shop"),
		reg:         reg,
		data:        data,
		cart:        NewCart(),
		currency:    currency,
	}
}

func (s *ShopCoordinator) Cart() *Cart {
	return s.cart
}

func (s *ShopCoordinator) OpenCategory(c catalog.Category) {
	s.Push(categoryScreen{ID: c.ID, Name: c.Name})
}

func (s *ShopCoordinator) OpenProduct(sku string) {
	s.Push(productScreen{SKU: sku})
}

// AddToCart adds the product and queues a confirmation alert. The message is
// deferred so it reports the cart size at display time.
func (s *ShopCoordinator) AddToCart(p catalog.Product) {
	s.cart.Add(p)
	s.Alert("Added to cart",
		func() string {
			return fmt.Sprintf("%s\nCart now holds %d item(s).", p.Name, s.cart.Count())
		},
		func() []nav.AlertAction {
			return []nav.AlertAction{
				{Label: "View cart", Do: func() tea.Msg { return openCartMsg{} }},
				{Label: "Keep shopping"},
			}
		})
}

// OpenCart presents the cart sheet over whatever is topmost.
func (s *ShopCoordinator) OpenCart() tea.Cmd {
	return s.Present(nav.Presentation{
		Flow:    flowCart,
		Content: s.renderCart,
	}, nav.OverAll)
}

// OpenSearch presents the search overlay.
func (s *ShopCoordinator) OpenSearch(content func() string) tea.Cmd {
	return s.Present(nav.Presentation{
		Flow:    flowSearch,
		Content: content,
	}, nav.OverAll)
}

// OpenCheckout replaces the current modal (normally the cart sheet) with the
// full-screen checkout flow. The returned command carries the settle-delay
// retry and must reach the runtime.
func (s *ShopCoordinator) OpenCheckout() (*CheckoutCoordinator, tea.Cmd) {
	co := NewCheckoutCoordinator(s.reg, s.Handle(), s.cart, s.currency)
	cmd := s.Present(nav.Presentation{
		Flow:    flowCheckout,
		Child:   co.Coordinator,
		Content: co.Render,
	}, nav.ReplaceCurrent)
	return co, cmd
}

// RenderScreen maps the top of the push stack to its content. This is the
// pure screen-to-content mapping the view layer consumes.
func (s *ShopCoordinator) RenderScreen(cursor int) string {
	switch scr := s.Top().(type) {
	case nil:
		return s.renderHome(cursor)
	case categoryScreen:
		return s.renderCategory(scr, cursor)
	case productScreen:
		return s.renderProduct(scr)
	default:
		return "unknown screen"
	}
}

// ItemsOnScreen returns how many rows the current screen's cursor can visit.
func (s *ShopCoordinator) ItemsOnScreen() int {
	switch scr := s.Top().(type) {
	case nil:
		return len(s.data.Categories)
	case categoryScreen:
		return len(s.data.ProductsIn(scr.ID))
	default:
		return 0
	}
}

// Select activates the row under the cursor on the current screen.
func (s *ShopCoordinator) Select(cursor int) {
	switch scr := s.Top().(type) {
	case nil:
		if cursor >= 0 && cursor < len(s.data.Categories) {
			s.OpenCategory(s.data.Categories[cursor])
		}
	case categoryScreen:
		products := s.data.ProductsIn(scr.ID)
		if cursor >= 0 && cursor < len(products) {
			s.OpenProduct(products[cursor].SKU)
		}
	case productScreen:
		if p, ok := s.data.ProductBySKU(scr.SKU); ok && p.InStock() {
			s.AddToCart(p)
		}
	}
}

// Breadcrumb renders the push stack for the header.
func (s *ShopCoordinator) Breadcrumb() string {
	parts := []string{"Home"}
	for _, scr := range s.Path() {
		switch v := scr.(type) {
		case categoryScreen:
			parts = append(parts, v.Name)
		case productScreen:
			if p, ok := s.data.ProductBySKU(v.SKU); ok {
				parts = append(parts, p.Name)
			}
		}
	}
	return strings.Join(parts, " › ")
}

func (s *ShopCoordinator) renderHome(cursor int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Departments") + "\n\n")
	for i, c := range s.data.Categories {
		line := fmt.Sprintf("%s (%d)", c.Name, len(s.data.ProductsIn(c.ID)))
		b.WriteString(listLine(line, i == cursor) + "\n")
	}
	return b.String()
}

func (s *ShopCoordinator) renderCategory(scr categoryScreen, cursor int) string {
	products := s.data.ProductsIn(scr.ID)
	var b strings.Builder
	b.WriteString(titleStyle.Render(scr.Name) + "\n\n")
	if len(products) == 0 {
		b.WriteString(mutedStyle.Render("Nothing here yet.") + "\n")
	}
	for i, p := range products {
		price := formatCents(s.currency, p.PriceCents)
		line := fmt.Sprintf("%-34s %8s", p.Name, price)
		if !p.InStock() {
			line += mutedStyle.Render("  sold out")
		}
		b.WriteString(listLine(line, i == cursor) + "\n")
	}
	return b.String()
}

func (s *ShopCoordinator) renderProduct(scr productScreen) string {
	p, ok := s.data.ProductBySKU(scr.SKU)
	if !ok {
		return mutedStyle.Render("Product no longer available.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(p.Name) + "\n")
	if c, ok := s.data.CategoryByID(p.CategoryID); ok {
		b.WriteString(mutedStyle.Render(c.Name) + "\n")
	}
	b.WriteString("\n" + p.Description + "\n\n")
	b.WriteString("Price  " + priceStyle.Render(formatCents(s.currency, p.PriceCents)) + "\n")
	if p.InStock() {
		b.WriteString(fmt.Sprintf("Stock  %d\n\n", p.Stock))
		b.WriteString(mutedStyle.Render("enter adds this to your cart"))
	} else {
		b.WriteString(errorStyle.Render("Sold out") + "\n")
	}
	return b.String()
}

func (s *ShopCoordinator) renderCart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your cart") + "\n\n")
	if s.cart.Empty() {
		b.WriteString(mutedStyle.Render("Cart is empty.") + "\n")
		return b.String()
	}
	for _, l := range s.cart.Lines() {
		price := formatCents(s.currency, l.Product.PriceCents*int64(l.Qty))
		b.WriteString(fmt.Sprintf("%dx %-30s %8s\n", l.Qty, l.Product.Name, price))
	}
	b.WriteString("\nTotal " + priceStyle.Render(formatCents(s.currency, s.cart.TotalCents())) + "\n")
	b.WriteString(mutedStyle.Render("enter checks out · d removes last · esc closes"))
	return b.String()
}

func listLine(text string, selected bool) string {
	if selected {
		return selectedLineStyle.Render("▸ " + text)
	}
	return "  " + text
}
