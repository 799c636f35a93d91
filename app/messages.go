package app

import tea "github.com/charmbracelet/bubbletea"

type StatusMsg struct {
	Text  string
	IsErr bool
}

// openCartMsg is produced by the "View cart" alert action.
type openCartMsg struct{}

// orderPlacedMsg is produced when checkout completes.
type orderPlacedMsg struct {
	Items int
	Total string
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}
