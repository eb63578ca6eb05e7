package tui

import (
	"reframe-cli/internal/model"
)

type view int

const (
	viewAuth view = iota
	viewBrowse
	viewWizard
)

type authMode int

const (
	authLogin authMode = iota
	authRegister
)

type tab int

const (
	tabMind tab = iota
	tabPositive
	tabMeditation
	tabCount
)

func (t tab) kind() model.Kind {
	switch t {
	case tabPositive:
		return model.KindPositive
	case tabMeditation:
		return model.KindMeditation
	default:
		return model.KindMind
	}
}

func (t tab) label() string {
	switch t {
	case tabPositive:
		return "Positive"
	case tabMeditation:
		return "Meditation"
	default:
		return "Reframing"
	}
}

// emptyLabel is the type-specific empty-state wording.
func (t tab) emptyLabel() string {
	switch t {
	case tabPositive:
		return "positive journal"
	case tabMeditation:
		return "meditation training"
	default:
		return "reframing training"
	}
}

type modalKind int

const (
	modalNone modalKind = iota
	modalConfirmDelete
	modalConfirmClearAll
	modalFilterDate
)

type confirmModalFocus int

const (
	confirmFocusConfirm confirmModalFocus = iota
	confirmFocusCancel
)

// Result messages for the async network commands. Every user action resolves
// to exactly one of these; nothing retries.
type (
	authResultMsg struct {
		register bool
		token    string
		err      error
	}

	recordsLoadedMsg struct {
		records        []model.Record
		filterDate     string // non-empty when this load consumed the one-shot filter
		sessionExpired bool
	}

	deleteDoneMsg struct {
		id  string
		err error
	}

	clearAllDoneMsg struct {
		count int
		err   error
	}

	saveDoneMsg struct {
		id  string
		err error
	}

	hintDoneMsg struct {
		resource model.ResourceType
		advice   string
		err      error
	}

	summaryDoneMsg struct {
		summary string
		err     error
	}

	summarySavedMsg struct {
		err error
	}
)
