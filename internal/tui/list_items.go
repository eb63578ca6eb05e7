package tui

import (
	"github.com/charmbracelet/bubbles/list"

	"reframe-cli/internal/model"
)

type recordItem struct {
	rec  model.Record
	desc model.Descriptor
}

func newRecordItem(rec model.Record) recordItem {
	return recordItem{rec: rec, desc: rec.Describe()}
}

func (i recordItem) FilterValue() string { return sanitizeText(i.rec.Fact) }

func (i recordItem) Title() string {
	if i.desc == nil {
		return "(unknown record)"
	}
	return sanitizeText(i.desc.Title())
}

func (i recordItem) Description() string {
	if i.desc == nil {
		return ""
	}
	return i.desc.Badge() + " | " + formatRecordDate(i.rec)
}

func newList(title, help string, items []list.Item) list.Model {
	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = title
	// We render our own header/tab bar + footer, so keep list chrome minimal.
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("record", "records")
	// Bubble list defaults to quitting on ESC; here ESC is "back/cancel".
	l.KeyMap.Quit.SetKeys("q")
	// Emacs-style navigation aliases (common muscle memory).
	cursorUpKeys := append([]string{}, l.KeyMap.CursorUp.Keys()...)
	cursorUpKeys = append(cursorUpKeys, "ctrl+p")
	l.KeyMap.CursorUp.SetKeys(cursorUpKeys...)

	cursorDownKeys := append([]string{}, l.KeyMap.CursorDown.Keys()...)
	cursorDownKeys = append(cursorDownKeys, "ctrl+n")
	l.KeyMap.CursorDown.SetKeys(cursorDownKeys...)
	return l
}
