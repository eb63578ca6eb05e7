package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"reframe-cli/internal/model"
)

func (m appModel) viewBrowseScreen() string {
	var b strings.Builder
	b.WriteString(m.header("record browser"))
	b.WriteString(m.tabBar() + "\n")
	b.WriteString(m.statusLine() + "\n")

	listPane := m.lists[m.tab].View()
	detailPane := m.detailPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, listPane, "  ", detailPane))

	b.WriteString(m.footer("1/2/3 tab: switch   s: summary   d: delete   D: delete all   f: filter   r: reload   n: new   ctrl+l: logout   q: quit"))
	return b.String()
}

func (m appModel) tabBar() string {
	var parts []string
	for t := tabMind; t < tabCount; t++ {
		label := fmt.Sprintf(" %s (%d) ", t.label(), m.counts[t])
		st := styleMuted()
		if t == m.tab {
			st = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorSelectedFg).
				Background(colorSelectedBg).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(kindAccent(string(t.kind())))
		}
		parts = append(parts, st.Render(label))
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}

func (m appModel) statusLine() string {
	switch {
	case m.loading:
		return styleMuted().Render("loading records...")
	case m.filterDate != "":
		return lipgloss.NewStyle().Foreground(colorAccent).
			Render("showing "+formatFilterDate(m.filterDate)) +
			styleMuted().Render("   (r reloads everything)")
	case m.notice != "":
		return styleMuted().Render(m.notice)
	}
	return ""
}

func (m appModel) detailPaneSize() (int, int) {
	w := m.width - m.width/2 - 4
	if w < 32 {
		w = 32
	}
	h := m.height - 8
	if h < 8 {
		h = 8
	}
	return w, h
}

func (m appModel) detailPane() string {
	w, h := m.detailPaneSize()

	rec, ok := m.selectedRecord()
	if !ok {
		return normalizePane(m.emptyState(), w, h)
	}
	desc := rec.Describe()
	if desc == nil {
		return normalizePane(styleMuted().Render("this record could not be classified"), w, h)
	}

	var b strings.Builder
	badge := lipgloss.NewStyle().
		Bold(true).
		Foreground(kindAccent(string(rec.Kind()))).
		Render(desc.Badge())
	b.WriteString(badge + "  " + styleMuted().Render(formatRecordDate(rec)) + "\n\n")
	for _, line := range desc.DetailLines() {
		b.WriteString(sanitizeText(line) + "\n")
	}

	if rec.Kind() == model.KindMind {
		b.WriteString("\n" + m.summarySection(rec, w))
	}
	return normalizePane(b.String(), w, h)
}

// summarySection is the collapsible AI-summary panel under a reframing record.
func (m appModel) summarySection(rec model.Record, width int) string {
	header := lipgloss.NewStyle().Bold(true).Foreground(colorSummary).Render("AI summary")
	if !m.expanded[expandKey(rec)] {
		return header + " " + styleMuted().Render("(s to expand)")
	}
	body := renderMarkdown(sanitizeText(rec.SummaryPanel()), width-2)
	return header + "\n" + body
}

func (m appModel) emptyState() string {
	if m.loading {
		return ""
	}
	if m.filterDate != "" {
		return styleMuted().Render(fmt.Sprintf(
			"No %s records on %s.\n\nPress r to load everything again,\nor f to pick another day.",
			m.tab.emptyLabel(), formatFilterDate(m.filterDate)))
	}
	hint := "They are created outside this client."
	if m.tab == tabMind {
		hint = "Press n to start a reframing exercise."
	}
	return styleMuted().Render(fmt.Sprintf("No %s records yet.\n\n%s", m.tab.emptyLabel(), hint))
}
