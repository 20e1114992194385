package analysis

import (
	"time"

	"github.com/KaramelBytes/csvreport-cli/internal/table"
)

// DateLayout is the only accepted date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// DateReport is the outcome of the optional date stage.
type DateReport struct {
	Column string
	// Err is set when the stage could not run, e.g. the column is missing.
	// It does not affect the numeric results.
	Err      error
	Oldest   time.Time
	Newest   time.Time
	Valid    int
	Warnings []Warning
}

// ParseDate parses s with DateLayout.
func ParseDate(s string) (time.Time, bool) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return d, true
}

func reportDates(t *table.Table, column string) *DateReport {
	dr := &DateReport{Column: column}
	idx, ok := t.Index(column)
	if !ok {
		dr.Err = &table.ColumnNotFoundError{Column: column, Stage: "date"}
		return dr
	}
	for i, raw := range t.Column(idx) {
		if raw == "" {
			dr.Warnings = append(dr.Warnings, Warning{Kind: WarnEmptyDate, Column: column, Row: i + 1})
			continue
		}
		d, ok := ParseDate(raw)
		if !ok {
			dr.Warnings = append(dr.Warnings, Warning{Kind: WarnBadDate, Column: column, Row: i + 1, Value: raw})
			continue
		}
		if dr.Valid == 0 || d.Before(dr.Oldest) {
			dr.Oldest = d
		}
		if dr.Valid == 0 || d.After(dr.Newest) {
			dr.Newest = d
		}
		dr.Valid++
	}
	if dr.Valid == 0 {
		dr.Warnings = append(dr.Warnings, Warning{Kind: WarnNoDates, Column: column})
	}
	return dr
}
