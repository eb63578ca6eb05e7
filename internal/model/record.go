package model

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
	"time"
)

type Kind string

const (
	KindMind       Kind = "mindRecord"
	KindPositive   Kind = "positive"
	KindMeditation Kind = "meditation"
)

type ResourceType string

const (
	ResourceSkill    ResourceType = "skill"
	ResourceRelation ResourceType = "relation"
	ResourceLesson   ResourceType = "lesson"
)

// Summary sentinels. The backend stores these verbatim, so they double as
// "do not PUT this back" markers after the AI call resolves.
const (
	SummaryPending = "not yet generated"
	SummaryFailed  = "summary generation failed"
)

// ID tolerates both JSON strings and numbers; the records backend has returned
// numeric ids from older deployments and Mongo object-id strings from newer ones.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		*id = ""
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return err
		}
		*id = ID(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

type Answer struct {
	Type   ResourceType `json:"type"`
	Answer string       `json:"answer"`
}

// Record is the wire shape shared by all three journal entry kinds. The
// backend stores records as one flat document; Kind() and Describe() recover
// the per-variant view.
type Record struct {
	ID      ID     `json:"id,omitempty"`
	MongoID ID     `json:"_id,omitempty"`
	TempID  int64  `json:"tempId,omitempty"`
	Type    Kind   `json:"type,omitempty"`
	Date    string `json:"date,omitempty"`
	Summary string `json:"summary,omitempty"`

	// mindRecord fields.
	Fact              string   `json:"fact,omitempty"`
	Emotion           string   `json:"emotion,omitempty"`
	RootThought       string   `json:"rootThought,omitempty"`
	Answers           []Answer `json:"answers,omitempty"`
	ThoughtAssessment string   `json:"thoughtAssessment,omitempty"`

	// positive fields.
	Origin    string `json:"origin,omitempty"`
	Intensity string `json:"intensity,omitempty"`

	// meditation fields.
	Duration int    `json:"duration,omitempty"`
	Mindset  string `json:"mindset,omitempty"`
}

// Key returns the server-assigned identifier used for update/delete.
// Mongo-backed deployments return `_id`; it wins over `id` when both are set.
func (r Record) Key() string {
	if r.MongoID != "" {
		return string(r.MongoID)
	}
	return string(r.ID)
}

// Kind classifies a record. Legacy records predating the type field are
// treated as mind records when they carry both emotion and root thought.
func (r Record) Kind() Kind {
	switch r.Type {
	case KindMind, KindPositive, KindMeditation:
		return r.Type
	}
	if r.Type == "" && r.Emotion != "" && r.RootThought != "" {
		return KindMind
	}
	return ""
}

// AnswerFor looks up the answer for one resource category. Missing entries
// are normal (older records, partial saves) and yield ok=false.
func (r Record) AnswerFor(rt ResourceType) (string, bool) {
	for _, a := range r.Answers {
		if a.Type == rt && strings.TrimSpace(a.Answer) != "" {
			return a.Answer, true
		}
	}
	return "", false
}

// Time parses the creation timestamp. Records with unparseable dates sort last.
func (r Record) Time() time.Time {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(r.Date))
	if err != nil {
		return time.Time{}
	}
	return t
}

// LocalDate converts the creation timestamp to the local calendar date
// (YYYY-MM-DD). The date filter compares against this, so a record created
// late at night UTC lands on the user's local day, not the server's.
func (r Record) LocalDate() string {
	t := r.Time()
	if t.IsZero() {
		return ""
	}
	return t.Local().Format("2006-01-02")
}

func (r Record) HasSummary() bool {
	s := strings.TrimSpace(r.Summary)
	return s != "" && s != SummaryPending && s != SummaryFailed
}

// SortByDateDesc orders newest-first, in place.
func SortByDateDesc(records []Record) {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Time().After(records[j].Time())
	})
}

// FilterByLocalDate keeps records whose local calendar date equals date
// (YYYY-MM-DD). Records without a parseable timestamp never match.
func FilterByLocalDate(records []Record, date string) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		if r.LocalDate() == date {
			out = append(out, r)
		}
	}
	return out
}

// Partition splits records into the three browser tabs. Records that match no
// kind (malformed backend rows) are dropped.
func Partition(records []Record) (mind, positive, meditation []Record) {
	for _, r := range records {
		switch r.Kind() {
		case KindMind:
			mind = append(mind, r)
		case KindPositive:
			positive = append(positive, r)
		case KindMeditation:
			meditation = append(meditation, r)
		}
	}
	return mind, positive, meditation
}

// FormatDuration renders meditation seconds as "4m05s".
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	m := seconds / 60
	s := seconds % 60
	return strconv.Itoa(m) + "m" + pad2(s) + "s"
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
