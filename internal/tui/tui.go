package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pcs-pro/internal/store"
)

func Run(dir string, db *store.DB) error {
	applyColorProfilePreference()
	applyThemePreference()
	m := newAppModel(dir, db)
	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if am, ok := final.(appModel); ok {
		am.persistTUIState()
	}
	return nil
}
