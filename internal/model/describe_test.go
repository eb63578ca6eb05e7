package model

import (
	"strings"
	"testing"
)

func TestDescribe_TitleTruncatesAtFiftyRunes(t *testing.T) {
	long := strings.Repeat("あ", 60)
	r := Record{Type: KindMind, Fact: long}
	title := r.Describe().Title()
	if !strings.HasSuffix(title, "...") {
		t.Fatalf("long title should end with ..., got %q", title)
	}
	if !strings.Contains(title, strings.Repeat("あ", 50)) {
		t.Fatalf("truncation should keep 50 runes, got %q", title)
	}
	if strings.Contains(title, strings.Repeat("あ", 51)) {
		t.Fatalf("truncation kept too many runes: %q", title)
	}

	short := Record{Type: KindMind, Fact: "short fact"}
	if got := short.Describe().Title(); strings.HasSuffix(got, "...") {
		t.Fatalf("short title must not be truncated, got %q", got)
	}
}

func TestDescribe_UnclassifiedRecordHasNoDescriptor(t *testing.T) {
	if (Record{}).Describe() != nil {
		t.Fatalf("unclassified record should describe to nil")
	}
}

func TestPositiveDescriptor_Labels(t *testing.T) {
	r := Record{Type: KindPositive, Fact: "got promoted", Origin: "effort", Intensity: "high"}
	lines := r.Describe().DetailLines()
	if len(lines) != 2 {
		t.Fatalf("got %d detail lines", len(lines))
	}
	if !strings.Contains(lines[1], "effort/action") {
		t.Fatalf("origin label missing: %q", lines[1])
	}
	if !strings.Contains(lines[1], "large") {
		t.Fatalf("intensity label missing: %q", lines[1])
	}

	bare := Record{Type: KindPositive}
	lines = bare.Describe().DetailLines()
	if !strings.Contains(lines[1], "not selected") || !strings.Contains(lines[1], "not recorded") {
		t.Fatalf("missing fields should render placeholders: %q", lines[1])
	}
}

func TestMeditationDescriptor_TitleAndMindset(t *testing.T) {
	r := Record{Type: KindMeditation, Duration: 245, Mindset: "very_calm"}
	d := r.Describe()
	if !strings.Contains(d.Title(), "4m05s") {
		t.Fatalf("title should show duration, got %q", d.Title())
	}
	lines := d.DetailLines()
	if !strings.Contains(lines[1], "very calm (5)") {
		t.Fatalf("mindset label missing: %q", lines[1])
	}
}

func TestMindDescriptor_DetailLinesAndAssessment(t *testing.T) {
	r := Record{
		Type:        KindMind,
		Fact:        "missed the deadline",
		Emotion:     "shame",
		RootThought: "I always fail",
		Answers: []Answer{
			{Type: ResourceSkill, Answer: "plan buffers"},
			{Type: ResourceLesson, Answer: "deadlines slip"},
		},
	}
	lines := r.Describe().DetailLines()
	if len(lines) != 6 {
		t.Fatalf("without an assessment there should be 6 lines, got %d", len(lines))
	}
	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "plan buffers") || !strings.Contains(joined, "deadlines slip") {
		t.Fatalf("answers missing from detail: %q", joined)
	}
	// The relation answer was never given.
	if !strings.Contains(lines[4], "not recorded") {
		t.Fatalf("missing relation answer should render a placeholder: %q", lines[4])
	}

	r.ThoughtAssessment = "bad_to_positive"
	lines = r.Describe().DetailLines()
	if len(lines) != 7 {
		t.Fatalf("with an assessment there should be 7 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[6], "a little more positive") {
		t.Fatalf("assessment label missing: %q", lines[6])
	}

	r.ThoughtAssessment = "something_new"
	lines = r.Describe().DetailLines()
	if !strings.Contains(lines[6], "not recorded") {
		t.Fatalf("unknown assessment should render a placeholder: %q", lines[6])
	}
}

func TestSummaryPanel_Placeholder(t *testing.T) {
	if got := (Record{Summary: SummaryPending}).SummaryPanel(); !strings.Contains(got, "not been generated") {
		t.Fatalf("pending summary should show the placeholder, got %q", got)
	}
	if got := (Record{}).SummaryPanel(); !strings.Contains(got, "not been generated") {
		t.Fatalf("empty summary should show the placeholder, got %q", got)
	}
	if got := (Record{Summary: "well done"}).SummaryPanel(); got != "well done" {
		t.Fatalf("real summary should pass through, got %q", got)
	}
}
