package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"reframe-cli/internal/model"
	"reframe-cli/internal/wizard"
)

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case authResultMsg:
		return m.onAuthResult(msg)
	case recordsLoadedMsg:
		return m.onRecordsLoaded(msg)
	case deleteDoneMsg:
		return m.onDeleteDone(msg)
	case clearAllDoneMsg:
		return m.onClearAllDone(msg)
	case saveDoneMsg:
		return m.onSaveDone(msg)
	case hintDoneMsg:
		return m.onHintDone(msg)
	case summaryDoneMsg:
		return m.onSummaryDone(msg)
	case summarySavedMsg:
		return m.onSummarySaved(msg)
	}

	switch m.view {
	case viewAuth:
		return m.updateAuth(msg)
	case viewWizard:
		return m.updateWizard(msg)
	default:
		return m.updateBrowse(msg)
	}
}

// goToAuth drops back to the login screen with empty fields.
func (m *appModel) goToAuth(notice string) {
	m.view = viewAuth
	m.authMode = authLogin
	m.authBusy = false
	m.authErr = notice
	m.userInput.SetValue("")
	m.passInput.SetValue("")
	m.authFocus = 0
	m.userInput.Focus()
	m.passInput.Blur()
}

func (m appModel) onAuthResult(msg authResultMsg) (tea.Model, tea.Cmd) {
	m.authBusy = false
	if msg.err != nil {
		m.authErr = msg.err.Error()
		return m, nil
	}
	if err := m.session.SetToken(msg.token); err != nil {
		m.authErr = "storing session: " + err.Error()
		return m, nil
	}
	m.authErr = ""
	m.view = viewBrowse
	m.loading = true
	if msg.register {
		m.notice = "account created"
	} else {
		m.notice = ""
	}
	return m, m.loadRecordsCmd()
}

func (m appModel) onRecordsLoaded(msg recordsLoadedMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.sessionExpired {
		m.goToAuth("session expired, log in again")
		return m, nil
	}
	m.filterDate = msg.filterDate
	m.expanded = map[string]bool{}
	m.setRecords(msg.records)
	return m, nil
}

func (m appModel) onDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "delete failed: " + msg.err.Error()
		return m, nil
	}
	m.notice = "record deleted"
	m.loading = true
	return m, m.loadRecordsCmd()
}

func (m appModel) onClearAllDone(msg clearAllDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.notice = "clearing records failed: " + msg.err.Error()
		return m, nil
	}
	m.notice = fmt.Sprintf("deleted %d records", msg.count)
	m.loading = true
	return m, m.loadRecordsCmd()
}

// onSaveDone runs the strict save-then-summarize ordering: the summary call
// only ever fires for a record that is already persisted.
func (m appModel) onSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	m.saving = false
	if msg.err != nil {
		m.wizErr = "saving failed: " + msg.err.Error()
		return m, nil
	}
	d, err := wizard.Finish(m.draft)
	if err != nil {
		m.wizErr = err.Error()
		return m, nil
	}
	m.draft = d
	m.wizErr = ""
	m.savedID = msg.id
	m.savedRecord = wizard.BuildRecord(m.draft)
	m.summaryBusy = true
	return m, m.summaryCmd(m.savedRecord)
}

func (m appModel) onHintDone(msg hintDoneMsg) (tea.Model, tea.Cmd) {
	m.hintBusy[msg.resource] = false
	if msg.err != nil {
		m.hintNote = "hint unavailable: " + msg.err.Error()
		return m, nil
	}
	m.hints[msg.resource] = strings.TrimSpace(msg.advice)
	m.hintNote = ""
	return m, nil
}

// onSummaryDone patches the generated summary into the saved record. A failed
// or empty generation is non-fatal: the record stays saved with the failure
// sentinel shown locally, and nothing retries.
func (m appModel) onSummaryDone(msg summaryDoneMsg) (tea.Model, tea.Cmd) {
	m.summaryBusy = false
	if msg.err != nil {
		m.summaryText = model.SummaryFailed
		m.summaryNote = "the record was saved, but generating its summary failed"
		m.wizardDone = true
		return m, nil
	}
	m.summaryText = msg.summary
	m.savedRecord.Summary = msg.summary
	if m.savedID == "" || !m.savedRecord.HasSummary() {
		m.summaryNote = "summary shown locally only"
		m.wizardDone = true
		return m, nil
	}
	m.savedRecord.MongoID = model.ID(m.savedID)
	return m, m.updateRecordCmd(m.savedRecord)
}

func (m appModel) onSummarySaved(msg summarySavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.summaryNote = "summary generated but not persisted: " + msg.err.Error()
	}
	m.wizardDone = true
	return m, nil
}

// updateCurrentList forwards a message to the active tab's list.
func (m *appModel) updateCurrentList(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	m.lists[m.tab], cmd = m.lists[m.tab].Update(msg)
	return cmd
}

func (m appModel) listFiltering() bool {
	return m.lists[m.tab].FilterState() == list.Filtering
}
