package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/nav"
)

// CheckoutCoordinator owns the checkout flow presented as a cover modal. It
// has its own push stack (address form, then confirmation) so the flow can
// navigate internally and dismiss itself through its presenter link.
type CheckoutCoordinator struct {
	*nav.Coordinator
	// shop is a weak handle to the presenting coordinator, so the flow can
	// reset the ancestor's stack after ordering without retaining it.
	shop     *nav.Handle
	cart     *Cart
	currency string
	inputs   []textinput.Model
	focus    int
}

var checkoutFields = []string{"Name", "Street", "City"}

func NewCheckoutCoordinator(reg *nav.Registry, shop *nav.Handle, cart *Cart, currency string) *CheckoutCoordinator {
	inputs := make([]textinput.Model, 0, len(checkoutFields))
	for i, label := range checkoutFields {
		inp := textinput.New()
		inp.Placeholder = label
		inp.CharLimit = 64
		inp.Width = 32
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &CheckoutCoordinator{
		Coordinator: reg.NewCoordinator("checkout"),
		shop:        shop,
		cart:        cart,
		currency:    currency,
		inputs:      inputs,
	}
}

// HandleKey drives the flow while the cover modal is topmost. It reports
// whether the key was consumed.
func (c *CheckoutCoordinator) HandleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	onConfirm := c.Top() == checkoutConfirm
	switch msg.String() {
	case "esc":
		if onConfirm {
			c.Pop()
			return nil, true
		}
		c.Dismiss()
		return nil, true
	case "tab", "down":
		if !onConfirm {
			c.cycleFocus(1)
			return nil, true
		}
	case "shift+tab", "up":
		if !onConfirm {
			c.cycleFocus(-1)
			return nil, true
		}
	case "enter":
		if !onConfirm {
			if c.addressComplete() {
				c.Push(checkoutConfirm)
			}
			return nil, true
		}
		return c.placeOrder(), true
	}
	if onConfirm {
		return nil, true
	}
	var cmd tea.Cmd
	c.inputs[c.focus], cmd = c.inputs[c.focus].Update(msg)
	return cmd, true
}

func (c *CheckoutCoordinator) cycleFocus(dir int) {
	c.inputs[c.focus].Blur()
	c.focus = (c.focus + dir + len(c.inputs)) % len(c.inputs)
	c.inputs[c.focus].Focus()
}

func (c *CheckoutCoordinator) addressComplete() bool {
	for _, inp := range c.inputs {
		if strings.TrimSpace(inp.Value()) == "" {
			return false
		}
	}
	return true
}

// placeOrder finishes the flow: empty the cart, dismiss the cover, and send
// the shopper back to the ancestor's home screen through the weak handle.
func (c *CheckoutCoordinator) placeOrder() tea.Cmd {
	total := formatCents(c.currency, c.cart.TotalCents())
	count := c.cart.Count()
	c.cart.Clear()
	c.Dismiss()
	if c.shop != nil && c.shop.Live() {
		c.shop.Get().PopToRoot()
	}
	return func() tea.Msg {
		return orderPlacedMsg{Items: count, Total: total}
	}
}

// Render maps the checkout stack to content.
func (c *CheckoutCoordinator) Render() string {
	if c.Top() == checkoutConfirm {
		return c.renderConfirm()
	}
	return c.renderAddress()
}

func (c *CheckoutCoordinator) renderAddress() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Checkout: delivery address") + "\n\n")
	for i, inp := range c.inputs {
		label := checkoutFields[i]
		if i == c.focus {
			b.WriteString(selectedLineStyle.Render(label) + "\n")
		} else {
			b.WriteString(mutedStyle.Render(label) + "\n")
		}
		b.WriteString(inp.View() + "\n\n")
	}
	b.WriteString(mutedStyle.Render("enter continues · esc cancels"))
	return b.String()
}

func (c *CheckoutCoordinator) renderConfirm() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Confirm order") + "\n\n")
	for _, l := range c.cart.Lines() {
		b.WriteString(strings.TrimSpace(l.Product.Name) + "\n")
	}
	b.WriteString("\nTotal " + priceStyle.Render(formatCents(c.currency, c.cart.TotalCents())) + "\n\n")
	for i, inp := range c.inputs {
		b.WriteString(mutedStyle.Render(checkoutFields[i]+": ") + inp.Value() + "\n")
	}
	b.WriteString("\n" + mutedStyle.Render("enter places the order · esc goes back"))
	return b.String()
}
