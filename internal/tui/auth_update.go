package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateAuth(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "up", "down":
			if m.authFocus == 0 {
				m.authFocus = 1
				m.userInput.Blur()
				return m, m.passInput.Focus()
			}
			m.authFocus = 0
			m.passInput.Blur()
			return m, m.userInput.Focus()

		case "ctrl+t":
			if m.authMode == authLogin {
				m.authMode = authRegister
			} else {
				m.authMode = authLogin
			}
			m.authErr = ""
			return m, nil

		case "enter":
			if m.authBusy {
				return m, nil
			}
			userID := strings.TrimSpace(m.userInput.Value())
			password := m.passInput.Value()
			m.authBusy = true
			m.authErr = ""
			return m, m.authCmd(m.authMode == authRegister, userID, password)
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.userInput, cmd = m.userInput.Update(msg)
	cmds = append(cmds, cmd)
	m.passInput, cmd = m.passInput.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}
