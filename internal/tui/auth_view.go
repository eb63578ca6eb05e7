package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m appModel) viewAuthScreen() string {
	var b strings.Builder
	b.WriteString(m.header("cognitive reframing journal"))
	b.WriteString("\n")

	mode := "Log in"
	other := "register"
	if m.authMode == authRegister {
		mode = "Create an account"
		other = "log in"
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Render(mode) + "\n\n")

	label := func(s string, focused bool) string {
		st := styleMuted()
		if focused {
			st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
		}
		return st.Render(s)
	}
	b.WriteString(label("User ID", m.authFocus == 0) + "\n")
	b.WriteString(m.userInput.View() + "\n\n")
	b.WriteString(label("Password", m.authFocus == 1) + "\n")
	b.WriteString(m.passInput.View() + "\n")

	if m.authMode == authRegister {
		b.WriteString("\n" + styleMuted().Render("user id: at least 4 characters, password: at least 6") + "\n")
	}
	if m.authBusy {
		b.WriteString("\n" + styleMuted().Render("contacting server...") + "\n")
	}
	if m.authErr != "" {
		b.WriteString("\n" + styleError().Render(m.authErr) + "\n")
	}

	b.WriteString(m.footer("enter: submit   tab: switch field   ctrl+t: " + other + " instead   esc: quit"))
	return b.String()
}
