package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/lipgloss"

	"reframe-cli/internal/model"
	"reframe-cli/internal/wizard"
)

func (m appModel) viewWizardScreen() string {
	var b strings.Builder
	b.WriteString(m.header("reframing exercise"))
	b.WriteString(styleMuted().Render(fmt.Sprintf("step %d/5: %s", m.draft.Step, m.draft.Step)) + "\n\n")

	switch m.draft.Step {
	case wizard.StepFact:
		b.WriteString(m.areaField("What happened?", &m.factArea, m.wizFocus == 0))
		b.WriteString(styleMuted().Render("Stick to what actually happened; feelings come next.") + "\n")

	case wizard.StepEmotion:
		b.WriteString(m.areaField("The emotion that came up", &m.emotionArea, m.wizFocus == 0))
		b.WriteString(m.areaField("The root thought behind it", &m.rootArea, m.wizFocus == 1))

	case wizard.StepResources:
		b.WriteString(m.resourceField("Turn it into a skill", &m.skillArea, model.ResourceSkill, m.wizFocus == 0))
		b.WriteString(m.resourceField("Turn it into relationships", &m.relationArea, model.ResourceRelation, m.wizFocus == 1))
		b.WriteString(m.resourceField("Turn it into a life lesson", &m.lessonArea, model.ResourceLesson, m.wizFocus == 2))

	case wizard.StepReview:
		b.WriteString(m.reviewBody())

	case wizard.StepSummary:
		b.WriteString(m.summaryBody())
	}

	if m.hintNote != "" {
		b.WriteString("\n" + styleMuted().Render(m.hintNote) + "\n")
	}
	if m.wizErr != "" {
		b.WriteString("\n" + styleError().Render(m.wizErr) + "\n")
	}
	b.WriteString(m.footer(m.wizardHelp()))
	return b.String()
}

func (m appModel) areaField(label string, ta *textarea.Model, focused bool) string {
	st := styleMuted()
	if focused {
		st = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	}
	return st.Render(label) + "\n" + ta.View() + "\n\n"
}

// resourceField renders one resources-step question with its AI hint, if one
// has been fetched.
func (m appModel) resourceField(label string, ta *textarea.Model, res model.ResourceType, focused bool) string {
	out := m.areaField(label, ta, focused)
	if m.hintBusy[res] {
		return out + styleMuted().Render("asking for a hint...") + "\n\n"
	}
	if hint := m.hints[res]; hint != "" {
		header := lipgloss.NewStyle().Foreground(colorSummary).Render("hint: ")
		return out + header + sanitizeText(hint) + "\n\n"
	}
	return out
}

func (m appModel) reviewBody() string {
	rec := wizard.BuildRecord(m.draft)
	desc := rec.Describe()

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Review before saving") + "\n\n")
	for _, line := range desc.DetailLines() {
		b.WriteString(sanitizeText(line) + "\n")
	}
	if m.saving {
		b.WriteString("\n" + styleMuted().Render("saving...") + "\n")
	}
	return b.String()
}

func (m appModel) summaryBody() string {
	var b strings.Builder
	if m.summaryBusy {
		b.WriteString(styleMuted().Render("the record is saved; generating its AI summary...") + "\n")
		return b.String()
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorSummary).Render("AI summary") + "\n")
	width := m.width - 4
	if width < 40 || width > 100 {
		width = 72
	}
	b.WriteString(renderMarkdown(sanitizeText(m.summaryText), width) + "\n")
	if m.summaryNote != "" {
		b.WriteString(styleMuted().Render(m.summaryNote) + "\n")
	}
	return b.String()
}

func (m appModel) wizardHelp() string {
	switch m.draft.Step {
	case wizard.StepReview:
		return "enter: save   esc: discard and leave"
	case wizard.StepSummary:
		if m.summaryBusy {
			return "waiting for the summary..."
		}
		return "enter: back to your records"
	case wizard.StepResources:
		return "ctrl+s: continue   ctrl+a: AI hint for the focused question   tab: next field   esc: discard"
	case wizard.StepEmotion:
		return "ctrl+s: continue   tab: next field   esc: discard"
	default:
		return "ctrl+s: continue   esc: discard"
	}
}
