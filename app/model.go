package app

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"shopfront/internal/catalog"
	"shopfront/nav"
)

// Model is the Bubble Tea program. It owns no navigation state itself; it
// routes input to the right coordinator and renders whatever the tree says.
type Model struct {
	reg       *nav.Registry
	shop      *ShopCoordinator
	checkout  *CheckoutCoordinator
	search    *searchBox
	storeName string
	width     int
	height    int
	status    string
	statusErr bool
	cursor    int
	quitting  bool
}

// searchBox is shared by pointer so the registry's focus hook can blur the
// input from outside the model value.
type searchBox struct {
	input   textinput.Model
	results []catalog.Product
	cursor  int
}

func (s *searchBox) blur() {
	s.input.Blur()
}

func NewModel(reg *nav.Registry, shop *ShopCoordinator, storeName string) Model {
	inp := textinput.New()
	inp.Placeholder = "Search products"
	inp.CharLimit = 48
	inp.Width = 32
	sb := &searchBox{input: inp}
	// "dismiss the keyboard" collaborator: any navigation drops input focus.
	reg.OnNavigate = sb.blur
	return Model{
		reg:       reg,
		shop:      shop,
		search:    sb,
		storeName: storeName,
		status:    "Ready",
		width:     100,
		height:    32,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd, ok := m.reg.Route(msg); ok {
		return m, cmd
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case openCartMsg:
		return m, m.shop.OpenCart()
	case orderPlacedMsg:
		m.status = fmt.Sprintf("Order placed: %d item(s), %s. Thank you!", msg.Items, msg.Total)
		m.statusErr = false
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The alert on the topmost coordinator captures input before anything else.
	top := topmostCoordinator(m.shop.Coordinator)
	if alert, ok := top.CurrentAlert(); ok {
		switch msg.String() {
		case "enter":
			top.DismissAlert()
			if alert.Actions != nil {
				if acts := alert.Actions(); len(acts) > 0 && acts[0].Do != nil {
					return m, tea.Cmd(acts[0].Do)
				}
			}
		case "esc":
			top.DismissAlert()
		}
		return m, nil
	}
	if p := activePresentation(m.shop.Coordinator); p != nil {
		return m.handleModalKey(p, msg)
	}
	return m.handleScreenKey(msg)
}

func (m Model) handleModalKey(p *nav.Presentation, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch p.Flow.FlowID() {
	case flowCart.id:
		switch msg.String() {
		case "esc":
			p.Child.Dismiss()
		case "d":
			lines := m.shop.Cart().Lines()
			if len(lines) == 0 {
				return m, nil
			}
			last := lines[len(lines)-1]
			m.shop.Cart().Remove(last.Product.SKU)
			return m, StatusCmd("Removed " + last.Product.Name)
		case "enter":
			if m.shop.Cart().Empty() {
				return m, StatusCmd("Cart is empty")
			}
			// A dismissed checkout flow is only reachable from here, so
			// reclaim its coordinator before starting a fresh one.
			if m.checkout != nil {
				m.reg.Destroy(m.checkout.Coordinator)
			}
			co, cmd := m.shop.OpenCheckout()
			m.checkout = co
			return m, cmd
		}
		return m, nil
	case flowCheckout.id:
		if m.checkout == nil {
			return m, nil
		}
		cmd, _ := m.checkout.HandleKey(msg)
		return m, cmd
	case flowSearch.id:
		return m.handleSearchKey(p, msg)
	}
	return m, nil
}

func (m Model) handleSearchKey(p *nav.Presentation, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sb := m.search
	switch msg.String() {
	case "esc":
		p.Child.Dismiss()
		return m, nil
	case "up":
		if sb.cursor > 0 {
			sb.cursor--
		}
		return m, nil
	case "down":
		if sb.cursor < len(sb.results)-1 {
			sb.cursor++
		}
		return m, nil
	case "enter":
		if sb.cursor >= 0 && sb.cursor < len(sb.results) {
			sku := sb.results[sb.cursor].SKU
			p.Child.Dismiss()
			m.shop.OpenProduct(sku)
			m.cursor = 0
		}
		return m, nil
	}
	var cmd tea.Cmd
	sb.input, cmd = sb.input.Update(msg)
	sb.results = catalog.Search(m.shop.data.Products, sb.input.Value())
	if sb.cursor >= len(sb.results) {
		sb.cursor = 0
	}
	return m, cmd
}

func (m Model) handleScreenKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	shop := m.shop
	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < shop.ItemsOnScreen()-1 {
			m.cursor++
		}
	case "enter":
		shop.Select(m.cursor)
		m.cursor = 0
	case "esc":
		shop.Pop()
		m.cursor = 0
	case "H":
		shop.PopToRoot()
		m.cursor = 0
	case "/":
		sb := m.search
		sb.input.Reset()
		sb.results = nil
		sb.cursor = 0
		return m, tea.Batch(
			shop.OpenSearch(sb.render),
			sb.input.Focus(),
		)
	case "c":
		return m, shop.OpenCart()
	}
	return m, nil
}

// topmostCoordinator follows the presentation chain to the deepest live node.
func topmostCoordinator(c *nav.Coordinator) *nav.Coordinator {
	for {
		p := c.Presented()
		if p == nil || p.Child == nil {
			return c
		}
		c = p.Child
	}
}

// activePresentation returns the presentation the user is interacting with.
func activePresentation(c *nav.Coordinator) *nav.Presentation {
	p := c.Presented()
	if p == nil {
		return nil
	}
	for p.Child != nil && p.Child.Presented() != nil {
		p = p.Child.Presented()
	}
	return p
}
