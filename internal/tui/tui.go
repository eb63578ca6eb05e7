// Package tui is the interactive terminal client: login, the three-tab record
// browser, and the five-step reframing wizard.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"reframe-cli/internal/config"
	"reframe-cli/internal/session"
)

// Run starts the TUI and blocks until the user quits.
func Run(cfg config.Config, sess *session.Store) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(cfg, sess), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
