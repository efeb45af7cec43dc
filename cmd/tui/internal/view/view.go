package view

import (
	tea "github.com/charmbracelet/bubbletea"
)

// View is one console screen: the transfers queue, the discrepancy
// review, or the inventory browser. The menu model switches between
// them and renders Title and ShortHelp around the active view.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel carries the terminal size every view needs for layout.
type CommonModel struct {
	Width  int
	Height int
}

// BackMsg returns control to the main menu.
type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}
