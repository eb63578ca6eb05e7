package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"reframe-cli/internal/api"
	"reframe-cli/internal/config"
	"reframe-cli/internal/model"
	"reframe-cli/internal/session"
	"reframe-cli/internal/wizard"
)

type appModel struct {
	cfg     config.Config
	session *session.Store

	auth    *api.AuthClient
	records *api.RecordClient
	ai      *api.AIClient

	width  int
	height int

	view view

	// Auth view.
	authMode  authMode
	userInput textinput.Model
	passInput textinput.Model
	authFocus int // 0 = user id, 1 = password
	authBusy  bool
	authErr   string

	// Record browser.
	tab        tab
	lists      [tabCount]list.Model
	counts     [tabCount]int
	loading    bool
	filterDate string // non-empty while showing a filtered load
	notice     string // transient status line (deleted counts, failures)
	expanded   map[string]bool

	modal        modalKind
	modalFocus   confirmModalFocus
	deleteID     string
	deleteTitle  string
	filterInput  textinput.Model
	filterErrMsg string

	// Wizard.
	draft        wizard.Draft
	factArea     textarea.Model
	emotionArea  textarea.Model
	rootArea     textarea.Model
	skillArea    textarea.Model
	relationArea textarea.Model
	lessonArea   textarea.Model
	wizFocus     int
	wizErr       string
	hintBusy     map[model.ResourceType]bool
	hints        map[model.ResourceType]string
	hintNote     string
	saving       bool
	savedID      string
	savedRecord  model.Record
	summaryText  string
	summaryBusy  bool
	summaryNote  string
	wizardDone   bool
}

func newAppModel(cfg config.Config, sess *session.Store) appModel {
	client := api.NewClient(cfg.APIBaseURL)
	m := appModel{
		cfg:     cfg,
		session: sess,
		auth:    api.NewAuthClient(client),
		records: api.NewRecordClient(client, sess),
		ai:      api.NewAIClient(client),
	}

	m.userInput = textinput.New()
	m.userInput.Placeholder = "user id"
	m.userInput.CharLimit = 64
	m.userInput.Width = 32
	m.userInput.Focus()

	m.passInput = textinput.New()
	m.passInput.Placeholder = "password"
	m.passInput.CharLimit = 128
	m.passInput.Width = 32
	m.passInput.EchoMode = textinput.EchoPassword

	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "YYYY-MM-DD"
	m.filterInput.CharLimit = 10
	m.filterInput.Width = 14

	for t := tabMind; t < tabCount; t++ {
		m.lists[t] = newList(t.label(), "Browse records", nil)
	}

	m.expanded = map[string]bool{}
	m.hintBusy = map[model.ResourceType]bool{}
	m.resetWizard()

	// A stored token is trusted at startup; staleness surfaces as a 401 on the
	// first list call and drops us back to the auth view.
	if sess.Active() {
		m.view = viewBrowse
		m.loading = true
	} else {
		m.view = viewAuth
	}
	return m
}

func (m *appModel) resetWizard() {
	newArea := func(placeholder string) textarea.Model {
		ta := textarea.New()
		ta.Placeholder = placeholder
		ta.CharLimit = 0
		ta.SetWidth(64)
		ta.SetHeight(5)
		ta.ShowLineNumbers = false
		return ta
	}
	m.draft = wizard.New()
	m.factArea = newArea("What happened? Stick to the facts.")
	m.emotionArea = newArea("What emotion came up?")
	m.rootArea = newArea("What underlying thought produced it?")
	m.skillArea = newArea("What skill could this grow into?")
	m.relationArea = newArea("What does it teach you about relationships?")
	m.lessonArea = newArea("What life lesson does it hold?")
	m.factArea.Focus()
	m.wizFocus = 0
	m.wizErr = ""
	m.hintBusy = map[model.ResourceType]bool{}
	m.hints = map[model.ResourceType]string{}
	m.hintNote = ""
	m.saving = false
	m.savedID = ""
	m.savedRecord = model.Record{}
	m.summaryText = ""
	m.summaryBusy = false
	m.summaryNote = ""
	m.wizardDone = false
}

func (m appModel) Init() tea.Cmd {
	if m.view == viewBrowse {
		return m.loadRecordsCmd()
	}
	return textinput.Blink
}

// setRecords partitions, sorts and installs a fresh load into the tab lists.
func (m *appModel) setRecords(records []model.Record) {
	model.SortByDateDesc(records)
	mind, positive, meditation := model.Partition(records)

	install := func(t tab, recs []model.Record) {
		items := make([]list.Item, 0, len(recs))
		for _, r := range recs {
			items = append(items, newRecordItem(r))
		}
		m.lists[t].SetItems(items)
		m.counts[t] = len(recs)
	}
	install(tabMind, mind)
	install(tabPositive, positive)
	install(tabMeditation, meditation)
}

// expandKey identifies a record in the expanded-summary set. Unsaved or
// legacy rows without a server id fall back to the client timestamp id.
func expandKey(r model.Record) string {
	if k := r.Key(); k != "" {
		return k
	}
	return strconv.FormatInt(r.TempID, 10)
}

func (m appModel) selectedRecord() (model.Record, bool) {
	if it, ok := m.lists[m.tab].SelectedItem().(recordItem); ok {
		return it.rec, true
	}
	return model.Record{}, false
}

func (m *appModel) resizeLists() {
	// Leave room for header, tab bar and footer; the browse view is split.
	h := m.height - 8
	if h < 8 {
		h = 8
	}
	w := m.width / 2
	if w < 40 {
		w = 40
	}
	for t := tabMind; t < tabCount; t++ {
		m.lists[t].SetSize(w, h)
	}
}
