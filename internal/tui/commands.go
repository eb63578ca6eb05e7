package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

// The network commands below all resolve to exactly one result message.
// They capture what they need by value before running so the model can
// keep mutating freely while a request is in flight.

func (m appModel) authCmd(register bool, userID, password string) tea.Cmd {
	auth := m.auth
	return func() tea.Msg {
		var token string
		var err error
		if register {
			token, err = auth.Register(context.Background(), userID, password)
		} else {
			token, err = auth.Login(context.Background(), userID, password)
		}
		return authResultMsg{register: register, token: token, err: err}
	}
}

// loadRecordsCmd consumes the one-shot filter date (if any) before the
// request goes out, so a crash mid-load still leaves the filter cleared.
func (m appModel) loadRecordsCmd() tea.Cmd {
	records := m.records
	date := m.session.TakeFilterDate()
	return func() tea.Msg {
		recs, err := records.List(context.Background())
		if errors.Is(err, apperr.ErrSessionExpired) {
			return recordsLoadedMsg{sessionExpired: true}
		}
		if date != "" {
			recs = model.FilterByLocalDate(recs, date)
		}
		return recordsLoadedMsg{records: recs, filterDate: date}
	}
}

func (m appModel) deleteCmd(id string) tea.Cmd {
	records := m.records
	return func() tea.Msg {
		err := records.Remove(context.Background(), id)
		return deleteDoneMsg{id: id, err: err}
	}
}

func (m appModel) clearAllCmd() tea.Cmd {
	records := m.records
	return func() tea.Msg {
		count, err := records.ClearAll(context.Background())
		return clearAllDoneMsg{count: count, err: err}
	}
}

func (m appModel) saveRecordCmd(rec model.Record) tea.Cmd {
	records := m.records
	return func() tea.Msg {
		id, err := records.Save(context.Background(), rec)
		return saveDoneMsg{id: id, err: err}
	}
}

func (m appModel) hintCmd(fact, rootThought string, resource model.ResourceType) tea.Cmd {
	ai := m.ai
	return func() tea.Msg {
		advice, err := ai.Hint(context.Background(), fact, rootThought, resource)
		return hintDoneMsg{resource: resource, advice: advice, err: err}
	}
}

func (m appModel) summaryCmd(rec model.Record) tea.Cmd {
	ai := m.ai
	return func() tea.Msg {
		summary, err := ai.Summary(context.Background(), rec)
		return summaryDoneMsg{summary: summary, err: err}
	}
}

func (m appModel) updateRecordCmd(rec model.Record) tea.Cmd {
	records := m.records
	return func() tea.Msg {
		return summarySavedMsg{err: records.Update(context.Background(), rec)}
	}
}
