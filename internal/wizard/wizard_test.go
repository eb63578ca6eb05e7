package wizard

import (
	"errors"
	"strings"
	"testing"
	"time"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

func completeDraft(t *testing.T) Draft {
	t.Helper()
	d := New()
	d, err := SubmitFact(d, "missed the release deadline")
	if err != nil {
		t.Fatalf("SubmitFact: %v", err)
	}
	d, err = SubmitEmotion(d, "shame", "I always fail under pressure")
	if err != nil {
		t.Fatalf("SubmitEmotion: %v", err)
	}
	d, err = SubmitResources(d, "plan explicit buffers", "ask for help earlier", "deadlines are estimates")
	if err != nil {
		t.Fatalf("SubmitResources: %v", err)
	}
	return d
}

func TestSubmitFact_StampsTimestampAndAdvances(t *testing.T) {
	before := time.Now().UnixMilli()
	d, err := SubmitFact(New(), "  something happened  ")
	if err != nil {
		t.Fatalf("SubmitFact: %v", err)
	}
	after := time.Now().UnixMilli()

	if d.Step != StepEmotion {
		t.Fatalf("step = %v, want StepEmotion", d.Step)
	}
	if d.Fact != "something happened" {
		t.Fatalf("fact should be trimmed, got %q", d.Fact)
	}
	if d.TempID < before || d.TempID > after {
		t.Fatalf("temp id %d outside [%d, %d]", d.TempID, before, after)
	}
	if _, err := time.Parse(time.RFC3339, d.Date); err != nil {
		t.Fatalf("date %q is not RFC3339: %v", d.Date, err)
	}
}

func TestSubmitFact_EmptyFactIsValidationError(t *testing.T) {
	orig := New()
	d, err := SubmitFact(orig, "   ")
	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("err = %v, want a validation error", err)
	}
	if d != orig {
		t.Fatalf("failed transition must leave the draft untouched")
	}
}

func TestTransitions_RejectWrongStep(t *testing.T) {
	d := New()
	if _, err := SubmitEmotion(d, "fear", "x"); err == nil {
		t.Fatalf("emotion before fact should fail")
	}
	if _, err := SubmitResources(d, "a", "b", "c"); err == nil {
		t.Fatalf("resources before fact should fail")
	}
	if _, err := Finish(d); err == nil {
		t.Fatalf("finish before review should fail")
	}

	done := completeDraft(t)
	if _, err := SubmitFact(done, "again"); err == nil {
		t.Fatalf("fact step must not be repeatable")
	}
}

func TestSubmitEmotion_RequiresBothFields(t *testing.T) {
	d, _ := SubmitFact(New(), "fact")
	if _, err := SubmitEmotion(d, "shame", ""); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing root thought: err = %v", err)
	}
	if _, err := SubmitEmotion(d, "", "thought"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing emotion: err = %v", err)
	}
}

func TestSubmitResources_RequiresAllThree(t *testing.T) {
	d, _ := SubmitFact(New(), "fact")
	d, _ = SubmitEmotion(d, "shame", "thought")
	if _, err := SubmitResources(d, "a", "", "c"); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("missing relation answer: err = %v", err)
	}
}

func TestHintReady(t *testing.T) {
	if err := HintReady(New()); !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("empty draft: err = %v", err)
	}
	d, _ := SubmitFact(New(), "fact")
	if err := HintReady(d); err == nil {
		t.Fatalf("no root thought yet, hint should not be ready")
	}
	d, _ = SubmitEmotion(d, "shame", "thought")
	if err := HintReady(d); err != nil {
		t.Fatalf("hint should be ready: %v", err)
	}
}

func TestBuildRecord(t *testing.T) {
	d := completeDraft(t)
	rec := BuildRecord(d)

	if rec.Type != model.KindMind {
		t.Fatalf("type = %q", rec.Type)
	}
	if rec.TempID != d.TempID || rec.Date != d.Date {
		t.Fatalf("record must carry the draft's id and timestamp")
	}
	if rec.Summary != model.SummaryPending {
		t.Fatalf("summary = %q, want the pending sentinel", rec.Summary)
	}
	if len(rec.Answers) != 3 {
		t.Fatalf("got %d answers", len(rec.Answers))
	}
	for rt, want := range map[model.ResourceType]string{
		model.ResourceSkill:    "plan explicit buffers",
		model.ResourceRelation: "ask for help earlier",
		model.ResourceLesson:   "deadlines are estimates",
	} {
		got, ok := rec.AnswerFor(rt)
		if !ok || got != want {
			t.Fatalf("answer for %q = %q (ok=%v), want %q", rt, got, ok, want)
		}
	}
}

func TestFinish_AdvancesToSummary(t *testing.T) {
	d := completeDraft(t)
	if d.Step != StepReview {
		t.Fatalf("completed draft should be at review, got %v", d.Step)
	}
	d, err := Finish(d)
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	if d.Step != StepSummary {
		t.Fatalf("step = %v, want StepSummary", d.Step)
	}
}

func TestStepString(t *testing.T) {
	if s := StepResources.String(); !strings.Contains(s, "resources") {
		t.Fatalf("got %q", s)
	}
	if Step(99).String() != "unknown" {
		t.Fatalf("out-of-range step should stringify as unknown")
	}
}
