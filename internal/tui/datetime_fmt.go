package tui

import (
	"strings"
	"time"

	"reframe-cli/internal/model"
)

// formatRecordDate matches the original browser rendering: "2025/8/29 14:03"
// in local time. Unparseable dates fall back to the raw string.
func formatRecordDate(r model.Record) string {
	t := r.Time()
	if t.IsZero() {
		return strings.TrimSpace(r.Date)
	}
	return t.Local().Format("2006/1/2 15:04")
}

// formatFilterDate renders a YYYY-MM-DD filter as a friendly header label.
func formatFilterDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("Jan 2, 2006")
}
