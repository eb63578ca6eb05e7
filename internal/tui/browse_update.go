package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.modal != modalNone {
		return m.updateModal(msg)
	}

	key, isKey := msg.(tea.KeyMsg)
	if !isKey || m.listFiltering() {
		return m, m.updateCurrentList(msg)
	}

	switch key.String() {
	case "q":
		return m, tea.Quit

	// Tab switches are pure view changes; the three lists were populated by
	// the last load, so no refetch happens here.
	case "1":
		m.tab = tabMind
		return m, nil
	case "2":
		m.tab = tabPositive
		return m, nil
	case "3":
		m.tab = tabMeditation
		return m, nil
	case "tab":
		m.tab = (m.tab + 1) % tabCount
		return m, nil
	case "shift+tab":
		m.tab = (m.tab + tabCount - 1) % tabCount
		return m, nil

	case "n":
		m.resetWizard()
		m.view = viewWizard
		return m, nil

	case "r":
		m.notice = ""
		m.loading = true
		return m, m.loadRecordsCmd()

	case "f":
		m.modal = modalFilterDate
		m.filterErrMsg = ""
		m.filterInput.SetValue("")
		m.filterInput.Focus()
		return m, nil

	case "s":
		if rec, ok := m.selectedRecord(); ok {
			k := expandKey(rec)
			m.expanded[k] = !m.expanded[k]
		}
		return m, nil

	case "d":
		rec, ok := m.selectedRecord()
		if !ok {
			return m, nil
		}
		if rec.Key() == "" {
			m.notice = "this record has no server id and cannot be deleted"
			return m, nil
		}
		m.modal = modalConfirmDelete
		m.modalFocus = confirmFocusCancel
		m.deleteID = rec.Key()
		m.deleteTitle = rec.Describe().Title()
		return m, nil

	case "D":
		m.modal = modalConfirmClearAll
		m.modalFocus = confirmFocusCancel
		return m, nil

	case "ctrl+l":
		if err := m.session.Clear(); err != nil {
			m.notice = "logout failed: " + err.Error()
			return m, nil
		}
		m.goToAuth("logged out")
		return m, nil
	}

	return m, m.updateCurrentList(msg)
}

func (m appModel) updateModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, isKey := msg.(tea.KeyMsg)

	if m.modal == modalFilterDate {
		if isKey {
			switch key.String() {
			case "esc":
				m.modal = modalNone
				m.filterInput.Blur()
				return m, nil
			case "enter":
				date := strings.TrimSpace(m.filterInput.Value())
				if err := m.session.SetFilterDate(date); err != nil {
					m.filterErrMsg = err.Error()
					return m, nil
				}
				m.modal = modalNone
				m.filterInput.Blur()
				m.notice = ""
				m.loading = true
				return m, m.loadRecordsCmd()
			}
		}
		var cmd tea.Cmd
		m.filterInput, cmd = m.filterInput.Update(msg)
		return m, cmd
	}

	if !isKey {
		return m, nil
	}
	switch key.String() {
	case "tab", "shift+tab", "left", "right":
		if m.modalFocus == confirmFocusConfirm {
			m.modalFocus = confirmFocusCancel
		} else {
			m.modalFocus = confirmFocusConfirm
		}
		return m, nil
	case "esc":
		m.modal = modalNone
		return m, nil
	case "enter":
		confirmed := m.modalFocus == confirmFocusConfirm
		kind := m.modal
		m.modal = modalNone
		if !confirmed {
			return m, nil
		}
		if kind == modalConfirmDelete {
			return m, m.deleteCmd(m.deleteID)
		}
		return m, m.clearAllCmd()
	}
	return m, nil
}
