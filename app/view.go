package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"shopfront/nav"
	"shopfront/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Thanks for stopping by\n"
	}
	header := m.renderHeader()
	status := m.renderStatusBar()
	footer := m.renderFooter()
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	body := m.renderBody(max(1, m.width-2), available)
	main := strings.TrimSuffix(strings.Join([]string{header, status, body}, "\n"), "\n")
	main = fitHeight(main, lipgloss.Height(header)+lipgloss.Height(status)+available)
	view := strings.Join([]string{main, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

// renderBody draws the base screen, then composites every active modal in
// presentation order, then the topmost coordinator's alert.
func (m Model) renderBody(width, height int) string {
	if height <= 0 {
		return ""
	}
	body := m.shop.RenderScreen(m.cursor)
	for c := m.shop.Coordinator; ; {
		p := c.Presented()
		if p == nil {
			break
		}
		content := ""
		if p.Content != nil {
			content = p.Content()
		}
		switch p.Flow.Style() {
		case nav.StyleSheet:
			body = widgets.RenderSheet(body, content, width, height)
		case nav.StyleCover:
			body = widgets.RenderCover(content, width, height)
		case nav.StyleOverlay:
			body = widgets.RenderPopup(body, content, width, height)
		}
		c = p.Child
	}
	top := topmostCoordinator(m.shop.Coordinator)
	if alert, ok := top.CurrentAlert(); ok {
		body = widgets.RenderPopup(body, renderAlert(alert), width, height)
	}
	return fitHeight(body, height)
}

func (m Model) renderHeader() string {
	left := headerAppStyle.Render(m.storeName) + "  " + mutedStyle.Render(m.shop.Breadcrumb())
	right := fmt.Sprintf("Cart: %d", m.shop.Cart().Count())
	left = ansi.Truncate(left, max(1, m.width), "…")
	gap := 1
	if w := ansi.StringWidth(left) + ansi.StringWidth(right); w+1 < m.width {
		gap = m.width - w
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right)
}

func (m Model) renderStatusBar() string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(statusErrBarStyle, max(1, m.width), msg)
	}
	return renderBar(statusBarStyle, max(1, m.width), msg)
}

func renderAlert(alert nav.Alert) string {
	var b strings.Builder
	b.WriteString(alertTitleStyle.Render(alert.Title) + "\n\n")
	if alert.Message != nil {
		b.WriteString(alert.Message() + "\n")
	}
	if alert.Actions != nil {
		labels := make([]string, 0, 2)
		for i, a := range alert.Actions() {
			if i == 0 {
				labels = append(labels, alertActionStyle.Render("[enter] "+a.Label))
			} else {
				labels = append(labels, mutedStyle.Render("[esc] "+a.Label))
			}
		}
		b.WriteString("\n" + strings.Join(labels, "   "))
	} else {
		b.WriteString("\n" + mutedStyle.Render("[enter] OK"))
	}
	return b.String()
}

func (s *searchBox) render() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Search") + "\n\n")
	b.WriteString(s.input.View() + "\n\n")
	if len(s.results) == 0 {
		b.WriteString(mutedStyle.Render("Type to search the catalog."))
		return b.String()
	}
	for i, p := range s.results {
		b.WriteString(listLine(p.Name, i == s.cursor) + "\n")
	}
	return b.String()
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += strings.Repeat(" ", width-lineW)
	}
	return style.Width(width).MaxWidth(width).Render(line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
