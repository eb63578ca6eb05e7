package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"reframe-cli/internal/model"
	"reframe-cli/internal/wizard"
)

// stepAreas returns the editable text areas of the current wizard step,
// in focus order.
func (m *appModel) stepAreas() []*textarea.Model {
	switch m.draft.Step {
	case wizard.StepFact:
		return []*textarea.Model{&m.factArea}
	case wizard.StepEmotion:
		return []*textarea.Model{&m.emotionArea, &m.rootArea}
	case wizard.StepResources:
		return []*textarea.Model{&m.skillArea, &m.relationArea, &m.lessonArea}
	}
	return nil
}

func (m *appModel) focusWizardArea(i int) tea.Cmd {
	areas := m.stepAreas()
	if len(areas) == 0 {
		m.wizFocus = 0
		return nil
	}
	if i < 0 {
		i = len(areas) - 1
	}
	i %= len(areas)
	m.wizFocus = i
	var cmd tea.Cmd
	for j, ta := range areas {
		if j == i {
			cmd = ta.Focus()
		} else {
			ta.Blur()
		}
	}
	return cmd
}

// focusedResource maps the focused resources-step area to its category.
func (m appModel) focusedResource() model.ResourceType {
	switch m.wizFocus {
	case 1:
		return model.ResourceRelation
	case 2:
		return model.ResourceLesson
	default:
		return model.ResourceSkill
	}
}

func (m appModel) leaveWizard() (tea.Model, tea.Cmd) {
	m.view = viewBrowse
	m.tab = tabMind
	m.loading = true
	return m, m.loadRecordsCmd()
}

func (m appModel) updateWizard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		// A save in flight must resolve before anything else happens.
		if m.saving {
			return m, nil
		}

		switch m.draft.Step {
		case wizard.StepReview:
			switch key.String() {
			case "enter", "ctrl+s":
				m.saving = true
				m.wizErr = ""
				return m, m.saveRecordCmd(wizard.BuildRecord(m.draft))
			case "esc":
				return m.leaveWizard()
			}
			return m, nil

		case wizard.StepSummary:
			if m.summaryBusy {
				return m, nil
			}
			switch key.String() {
			case "enter", "esc", "q":
				return m.leaveWizard()
			}
			return m, nil
		}

		switch key.String() {
		case "esc":
			// Drafts are not persisted; leaving the flow discards everything.
			return m.leaveWizard()

		case "tab":
			return m, m.focusWizardArea(m.wizFocus + 1)
		case "shift+tab":
			return m, m.focusWizardArea(m.wizFocus - 1)

		case "ctrl+a":
			if m.draft.Step != wizard.StepResources {
				return m, nil
			}
			if err := wizard.HintReady(m.draft); err != nil {
				m.wizErr = err.Error()
				return m, nil
			}
			res := m.focusedResource()
			if m.hintBusy[res] {
				return m, nil
			}
			m.hintBusy[res] = true
			m.wizErr = ""
			return m, m.hintCmd(m.draft.Fact, m.draft.RootThought, res)

		case "ctrl+s":
			return m.advanceStep()
		}
	}

	var cmds []tea.Cmd
	for _, ta := range m.stepAreas() {
		var cmd tea.Cmd
		*ta, cmd = ta.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m appModel) advanceStep() (tea.Model, tea.Cmd) {
	var (
		d   wizard.Draft
		err error
	)
	switch m.draft.Step {
	case wizard.StepFact:
		d, err = wizard.SubmitFact(m.draft, m.factArea.Value())
	case wizard.StepEmotion:
		d, err = wizard.SubmitEmotion(m.draft, m.emotionArea.Value(), m.rootArea.Value())
	case wizard.StepResources:
		d, err = wizard.SubmitResources(m.draft, m.skillArea.Value(), m.relationArea.Value(), m.lessonArea.Value())
	default:
		return m, nil
	}
	if err != nil {
		m.wizErr = err.Error()
		return m, nil
	}
	m.draft = d
	m.wizErr = ""
	m.hintNote = ""
	return m, m.focusWizardArea(0)
}
