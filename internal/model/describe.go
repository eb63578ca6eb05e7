package model

import (
	"fmt"
	"strings"
)

// Descriptor is the rendering capability of one record kind. List views stay
// ignorant of the union: they ask the record to describe itself instead of
// switching on the type tag at every call site.
type Descriptor interface {
	// Title is the one-line list entry (primary text truncated to 50 runes).
	Title() string
	// Badge is the localized kind label shown next to the record date.
	Badge() string
	// DetailLines is the expanded body, one logical line per entry. Lines may
	// contain embedded newlines from user text.
	DetailLines() []string
}

const titleRuneLimit = 50

// Describe returns the kind-specific descriptor, or nil for records that
// classify as no known kind.
func (r Record) Describe() Descriptor {
	switch r.Kind() {
	case KindMind:
		return mindDescriptor{r}
	case KindPositive:
		return positiveDescriptor{r}
	case KindMeditation:
		return meditationDescriptor{r}
	}
	return nil
}

func truncateTitle(s string) string {
	s = strings.TrimSpace(s)
	runes := []rune(s)
	if len(runes) <= titleRuneLimit {
		return s
	}
	return string(runes[:titleRuneLimit]) + "..."
}

func factOrPlaceholder(r Record) string {
	if strings.TrimSpace(r.Fact) != "" {
		return r.Fact
	}
	return "no event recorded"
}

const notRecorded = "not recorded"

type positiveDescriptor struct{ r Record }

func (d positiveDescriptor) Title() string {
	return "🌟 " + truncateTitle(factOrPlaceholder(d.r))
}

func (d positiveDescriptor) Badge() string { return "Positive journal" }

func originLabel(origin string) string {
	switch origin {
	case "effort":
		return "effort/action"
	case "luck":
		return "luck/other people"
	default:
		return "not selected"
	}
}

func intensityLabel(intensity string) string {
	switch intensity {
	case "low":
		return "small"
	case "medium":
		return "medium"
	case "high":
		return "large"
	default:
		return notRecorded
	}
}

func (d positiveDescriptor) DetailLines() []string {
	return []string{
		"Event: " + factOrPlaceholder(d.r),
		fmt.Sprintf("Cause: %s | Intensity: %s", originLabel(d.r.Origin), intensityLabel(d.r.Intensity)),
	}
}

type meditationDescriptor struct{ r Record }

func (d meditationDescriptor) Title() string {
	return fmt.Sprintf("🧘 Meditation complete (%s)", FormatDuration(d.r.Duration))
}

func (d meditationDescriptor) Badge() string { return "Meditation training" }

func mindsetLabel(mindset string) string {
	switch mindset {
	case "very_calm":
		return "very calm (5)"
	case "calm":
		return "calm (4)"
	case "normal":
		return "normal (3)"
	case "restless":
		return "slightly restless (2)"
	case "very_restless":
		return "very restless (1)"
	default:
		return notRecorded
	}
}

func (d meditationDescriptor) DetailLines() []string {
	return []string{
		"Completed: " + FormatDuration(d.r.Duration),
		"State of mind afterwards: " + mindsetLabel(d.r.Mindset),
	}
}

type mindDescriptor struct{ r Record }

func (d mindDescriptor) Title() string {
	return "🔄 " + truncateTitle(factOrPlaceholder(d.r))
}

func (d mindDescriptor) Badge() string { return "Reframing training" }

// thoughtAssessmentLabels maps the final-assessment enum the backend may
// attach to reframing records. Older clients never set it.
var thoughtAssessmentLabels = map[string]string{
	"bad_to_positive":       "felt unlucky, but came out a little more positive",
	"bad_to_negative":       "felt unlucky, and it still hurts",
	"neutral_to_positive":   "luck played no part, but came out a little more positive",
	"neutral_to_neutral":    "luck played no part, and nothing much changed",
	"neutral_to_negative":   "luck played no part, and it still hurts",
	"good_to_more_positive": "a lucky event, and came out even more positive",
	"good_to_anxious":       "a lucky event, but now worried something bad is coming",
}

func (d mindDescriptor) DetailLines() []string {
	answer := func(rt ResourceType) string {
		if a, ok := d.r.AnswerFor(rt); ok {
			return a
		}
		return notRecorded
	}

	emotion := d.r.Emotion
	if strings.TrimSpace(emotion) == "" {
		emotion = notRecorded
	}
	root := d.r.RootThought
	if strings.TrimSpace(root) == "" {
		root = notRecorded
	}

	lines := []string{
		"Original fact: " + factOrPlaceholder(d.r),
		"Emotion that surfaced: " + emotion,
		"Thought pattern: " + root,
		"Turned into a skill: " + answer(ResourceSkill),
		"Turned into relationships: " + answer(ResourceRelation),
		"Turned into a lesson: " + answer(ResourceLesson),
	}
	if d.r.ThoughtAssessment != "" {
		label, ok := thoughtAssessmentLabels[d.r.ThoughtAssessment]
		if !ok {
			label = notRecorded
		}
		lines = append(lines, "Final assessment: "+label)
	}
	return lines
}

// SummaryPanel returns the collapsible AI-summary body for mind records, with
// a placeholder when no summary has been generated yet.
func (r Record) SummaryPanel() string {
	if strings.TrimSpace(r.Summary) == "" || r.Summary == SummaryPending {
		return "The AI summary has not been generated yet."
	}
	return r.Summary
}
