package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderFooter() string {
	bindings := m.contextBindings()
	bg := colorMantle
	keyStyle := lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Background(bg)
	descStyle := lipgloss.NewStyle().Foreground(colorMuted).Background(bg)
	space := lipgloss.NewStyle().Background(bg).Render(" ")
	sep := lipgloss.NewStyle().Background(bg).Render("  ")

	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		parts = append(parts, keyStyle.Render(h.Key)+space+descStyle.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = lipgloss.NewStyle().Foreground(colorMuted).Background(bg).Render("No shortcuts")
	}
	return renderBar(footerStyle, max(1, m.width), line)
}

// contextBindings returns the hints for whatever currently captures input.
func (m Model) contextBindings() []key.Binding {
	top := topmostCoordinator(m.shop.Coordinator)
	if _, ok := top.CurrentAlert(); ok {
		return []key.Binding{
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		}
	}
	if p := activePresentation(m.shop.Coordinator); p != nil {
		switch p.Flow.FlowID() {
		case flowCart.id:
			return []key.Binding{
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "checkout")),
				key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "remove last")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
			}
		case flowCheckout.id:
			return []key.Binding{
				key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
			}
		case flowSearch.id:
			return []key.Binding{
				key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
				key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
				key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
			}
		}
	}
	return []key.Binding{
		key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "move")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
		key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "cart")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}
