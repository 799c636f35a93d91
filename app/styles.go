package app

import "github.com/charmbracelet/lipgloss"

var (
	appStyle = lipgloss.NewStyle().Foreground(colorText)

	headerAppStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().
			Background(colorMantle).
			Foreground(colorText)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Background(colorSurface0)
	statusErrBarStyle = lipgloss.NewStyle().
				Foreground(colorError).
				Background(colorSurface0)
	footerStyle = lipgloss.NewStyle().
			Background(colorMantle)

	titleStyle        = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	errorStyle        = lipgloss.NewStyle().Foreground(colorError)
	priceStyle        = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
	selectedLineStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	alertTitleStyle   = lipgloss.NewStyle().Foreground(colorError).Bold(true)
	alertActionStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
)
