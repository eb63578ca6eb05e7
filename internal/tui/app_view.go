package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var styleAppTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

func (m appModel) View() string {
	var body string
	switch m.view {
	case viewAuth:
		body = m.viewAuthScreen()
	case viewWizard:
		body = m.viewWizardScreen()
	default:
		body = m.viewBrowseScreen()
	}

	if m.modal != modalNone {
		return placeCentered(m.width, m.height, m.viewModal())
	}
	return body
}

func (m appModel) header(subtitle string) string {
	title := styleAppTitle.Render("reframe")
	if subtitle != "" {
		title += "  " + styleMuted().Render(subtitle)
	}
	return title + "\n"
}

func (m appModel) footer(help string) string {
	return "\n" + styleMuted().Render(help)
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalConfirmDelete:
		body := "Delete this record?\n\n" + sanitizeText(m.deleteTitle)
		return renderConfirmModal(m.width, "Delete record", body, "Delete", "Cancel", m.modalFocus)
	case modalConfirmClearAll:
		body := "This removes every record on this account, across all three tabs.\nThere is no undo."
		return renderConfirmModal(m.width, "Delete all records", body, "Delete everything", "Cancel", m.modalFocus)
	case modalFilterDate:
		var b strings.Builder
		b.WriteString("Show records from one day (applies to the next load only).\n\n")
		b.WriteString(m.filterInput.View())
		if m.filterErrMsg != "" {
			b.WriteString("\n" + styleError().Render(m.filterErrMsg))
		}
		b.WriteString("\n\n" + styleMuted().Render("enter: apply   esc: cancel"))
		return renderModalBox(m.width, "Filter by date", b.String())
	}
	return ""
}
