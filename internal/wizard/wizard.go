package wizard

import (
	"fmt"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"reframe-cli/internal/apperr"
	"reframe-cli/internal/model"
)

// Step is the wizard position. Transitions are linear and forward-only;
// abandoning the flow discards the draft.
type Step int

const (
	StepFact Step = iota + 1
	StepEmotion
	StepResources
	StepReview
	StepSummary
)

func (s Step) String() string {
	switch s {
	case StepFact:
		return "record the fact"
	case StepEmotion:
		return "emotion and thought pattern"
	case StepResources:
		return "convert into resources"
	case StepReview:
		return "review"
	case StepSummary:
		return "AI summary"
	}
	return "unknown"
}

// Draft is the in-progress reframing exercise. Transitions take a Draft by
// value and return the advanced copy, so each step is independently testable
// and a failed transition leaves the caller's draft untouched.
type Draft struct {
	Step Step

	TempID int64
	Date   string

	Fact        string
	Emotion     string
	RootThought string

	SkillAnswer    string
	RelationAnswer string
	LessonAnswer   string
}

// New starts an empty draft at the first step.
func New() Draft {
	return Draft{Step: StepFact}
}

func invalid(msg string) error {
	return fmt.Errorf("%w: %s", apperr.ErrValidation, msg)
}

// SubmitFact records the triggering event and stamps the draft's temporary id
// and creation timestamp. The timestamp is immutable from here on.
func SubmitFact(d Draft, fact string) (Draft, error) {
	if d.Step != StepFact {
		return d, fmt.Errorf("fact step already completed")
	}
	fact = strings.TrimSpace(fact)
	if err := validation.Validate(fact,
		validation.Required.Error("record what happened, as a fact, before continuing"),
	); err != nil {
		return d, invalid(err.Error())
	}
	now := time.Now()
	d.Fact = fact
	d.TempID = now.UnixMilli()
	d.Date = now.Format(time.RFC3339)
	d.Step = StepEmotion
	return d, nil
}

// SubmitEmotion records the surfaced emotion and the root thought behind it.
func SubmitEmotion(d Draft, emotion, rootThought string) (Draft, error) {
	if d.Step != StepEmotion {
		return d, fmt.Errorf("wizard is at %q, not the emotion step", d.Step)
	}
	emotion = strings.TrimSpace(emotion)
	rootThought = strings.TrimSpace(rootThought)
	if emotion == "" || rootThought == "" {
		return d, invalid("enter both the emotion and the root thought behind it")
	}
	d.Emotion = emotion
	d.RootThought = rootThought
	d.Step = StepResources
	return d, nil
}

// SubmitResources records the three conversions; all are required.
func SubmitResources(d Draft, skill, relation, lesson string) (Draft, error) {
	if d.Step != StepResources {
		return d, fmt.Errorf("wizard is at %q, not the resources step", d.Step)
	}
	skill = strings.TrimSpace(skill)
	relation = strings.TrimSpace(relation)
	lesson = strings.TrimSpace(lesson)
	if skill == "" || relation == "" || lesson == "" {
		return d, invalid("answer all three resource questions before continuing")
	}
	d.SkillAnswer = skill
	d.RelationAnswer = relation
	d.LessonAnswer = lesson
	d.Step = StepReview
	return d, nil
}

// HintReady reports whether the draft has enough context for an AI hint
// (fact and root thought both captured).
func HintReady(d Draft) error {
	if strings.TrimSpace(d.Fact) == "" || strings.TrimSpace(d.RootThought) == "" {
		return invalid("complete the fact and thought-pattern steps before asking for a hint")
	}
	return nil
}

// Finish marks the review as accepted. The caller persists BuildRecord(d)
// and only advances to the summary step once the save succeeds.
func Finish(d Draft) (Draft, error) {
	if d.Step != StepReview {
		return d, fmt.Errorf("wizard is at %q, not the review step", d.Step)
	}
	d.Step = StepSummary
	return d, nil
}

// BuildRecord assembles the persistable payload. The summary starts at the
// pending sentinel; the AI call patches it in after the save.
func BuildRecord(d Draft) model.Record {
	return model.Record{
		TempID:      d.TempID,
		Type:        model.KindMind,
		Date:        d.Date,
		Fact:        d.Fact,
		Emotion:     d.Emotion,
		RootThought: d.RootThought,
		Answers: []model.Answer{
			{Type: model.ResourceSkill, Answer: d.SkillAnswer},
			{Type: model.ResourceRelation, Answer: d.RelationAnswer},
			{Type: model.ResourceLesson, Answer: d.LessonAnswer},
		},
		Summary: model.SummaryPending,
	}
}
