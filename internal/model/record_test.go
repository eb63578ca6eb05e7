package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestIDUnmarshal_AcceptsStringNumberAndNull(t *testing.T) {
	var rec Record
	if err := json.Unmarshal([]byte(`{"id":"abc123"}`), &rec); err != nil {
		t.Fatalf("string id: %v", err)
	}
	if rec.ID != "abc123" {
		t.Fatalf("string id: got %q", rec.ID)
	}

	rec = Record{}
	if err := json.Unmarshal([]byte(`{"id":1756400000000}`), &rec); err != nil {
		t.Fatalf("numeric id: %v", err)
	}
	if rec.ID != "1756400000000" {
		t.Fatalf("numeric id: got %q", rec.ID)
	}

	rec = Record{}
	if err := json.Unmarshal([]byte(`{"id":null}`), &rec); err != nil {
		t.Fatalf("null id: %v", err)
	}
	if rec.ID != "" {
		t.Fatalf("null id: got %q", rec.ID)
	}
}

func TestKey_MongoIDWinsOverID(t *testing.T) {
	r := Record{ID: "legacy", MongoID: "64f1c0ffee"}
	if got := r.Key(); got != "64f1c0ffee" {
		t.Fatalf("got %q, want the _id value", got)
	}
	r = Record{ID: "legacy"}
	if got := r.Key(); got != "legacy" {
		t.Fatalf("got %q, want the id value", got)
	}
	if (Record{}).Key() != "" {
		t.Fatalf("empty record should have no key")
	}
}

func TestKind_LegacyMindRecordDetection(t *testing.T) {
	legacy := Record{Emotion: "shame", RootThought: "I always mess up"}
	if legacy.Kind() != KindMind {
		t.Fatalf("typeless record with emotion+rootThought should classify as mind, got %q", legacy.Kind())
	}

	// Missing either field means we cannot classify it.
	if (Record{Emotion: "shame"}).Kind() != "" {
		t.Fatalf("record with only an emotion should not classify")
	}
	if (Record{RootThought: "x"}).Kind() != "" {
		t.Fatalf("record with only a root thought should not classify")
	}

	// An explicit type always wins, even with mind fields present.
	typed := Record{Type: KindPositive, Emotion: "joy", RootThought: "n/a"}
	if typed.Kind() != KindPositive {
		t.Fatalf("explicit type should win, got %q", typed.Kind())
	}
}

func TestLocalDate_UsesLocalCalendarDay(t *testing.T) {
	ts := time.Date(2026, 8, 29, 23, 30, 0, 0, time.UTC)
	r := Record{Date: ts.Format(time.RFC3339)}
	want := ts.Local().Format("2006-01-02")
	if got := r.LocalDate(); got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if (Record{Date: "not a date"}).LocalDate() != "" {
		t.Fatalf("unparseable date should yield empty local date")
	}
}

func TestFilterByLocalDate(t *testing.T) {
	day := time.Date(2026, 8, 29, 12, 0, 0, 0, time.Local)
	other := day.AddDate(0, 0, -1)
	records := []Record{
		{ID: "a", Date: day.Format(time.RFC3339)},
		{ID: "b", Date: other.Format(time.RFC3339)},
		{ID: "c", Date: "garbage"},
	}
	got := FilterByLocalDate(records, day.Format("2006-01-02"))
	if len(got) != 1 || got[0].ID != "a" {
		t.Fatalf("got %+v, want only record a", got)
	}
}

func TestSortByDateDesc_NewestFirstUnparseableLast(t *testing.T) {
	records := []Record{
		{ID: "old", Date: "2026-08-01T10:00:00Z"},
		{ID: "bad", Date: ""},
		{ID: "new", Date: "2026-08-29T10:00:00Z"},
	}
	SortByDateDesc(records)
	if records[0].ID != "new" || records[1].ID != "old" || records[2].ID != "bad" {
		t.Fatalf("got order %q %q %q", records[0].ID, records[1].ID, records[2].ID)
	}
}

func TestPartition_DropsUnclassifiedRecords(t *testing.T) {
	records := []Record{
		{ID: "m", Type: KindMind},
		{ID: "p", Type: KindPositive},
		{ID: "d", Type: KindMeditation},
		{ID: "legacy", Emotion: "fear", RootThought: "x"},
		{ID: "junk"},
	}
	mind, positive, meditation := Partition(records)
	if len(mind) != 2 || mind[0].ID != "m" || mind[1].ID != "legacy" {
		t.Fatalf("mind partition: %+v", mind)
	}
	if len(positive) != 1 || positive[0].ID != "p" {
		t.Fatalf("positive partition: %+v", positive)
	}
	if len(meditation) != 1 || meditation[0].ID != "d" {
		t.Fatalf("meditation partition: %+v", meditation)
	}
}

func TestHasSummary_SentinelsDoNotCount(t *testing.T) {
	if (Record{Summary: SummaryPending}).HasSummary() {
		t.Fatalf("pending sentinel should not count as a summary")
	}
	if (Record{Summary: SummaryFailed}).HasSummary() {
		t.Fatalf("failed sentinel should not count as a summary")
	}
	if (Record{Summary: "  "}).HasSummary() {
		t.Fatalf("whitespace should not count as a summary")
	}
	if !(Record{Summary: "You handled this well."}).HasSummary() {
		t.Fatalf("real summary should count")
	}
}

func TestFormatDuration(t *testing.T) {
	if got := FormatDuration(245); got != "4m05s" {
		t.Fatalf("got %q, want 4m05s", got)
	}
	if got := FormatDuration(0); got != "0m00s" {
		t.Fatalf("got %q, want 0m00s", got)
	}
	if got := FormatDuration(-5); got != "0m00s" {
		t.Fatalf("negative durations clamp to zero, got %q", got)
	}
}
