package analysis

import (
	"fmt"
	"strconv"
	"strings"
)

// Outcome tells whether a report ran to completion.
type Outcome int

const (
	OutcomeCompleted Outcome = iota
	OutcomeAborted
)

func (o Outcome) String() string {
	if o == OutcomeAborted {
		return "aborted"
	}
	return "completed"
}

// WarningKind classifies a per-value problem that was skipped.
type WarningKind int

const (
	WarnBadNumber WarningKind = iota
	WarnEmptyColumn
	WarnEmptyDate
	WarnBadDate
	WarnNoDates
)

// Warning is a data point excluded from an aggregate. Row is the 1-based
// data row after filtering and sorting, or 0 when the warning is column-wide.
type Warning struct {
	Kind   WarningKind
	Column string
	Row    int
	Value  string
}

func (w Warning) String() string {
	switch w.Kind {
	case WarnBadNumber:
		return fmt.Sprintf("non-numeric value '%s' in column '%s' (row %d), value skipped", w.Value, w.Column, w.Row)
	case WarnEmptyColumn:
		return fmt.Sprintf("column '%s' has no numeric values after skipping invalid entries", w.Column)
	case WarnEmptyDate:
		return fmt.Sprintf("missing date in column '%s' (row %d), row skipped", w.Column, w.Row)
	case WarnBadDate:
		return fmt.Sprintf("invalid date '%s' in column '%s' (row %d), expected YYYY-MM-DD, row skipped", w.Value, w.Column, w.Row)
	case WarnNoDates:
		return fmt.Sprintf("no valid dates to analyze in column '%s'", w.Column)
	}
	return "unknown warning"
}

// ColumnReport is the result for one numeric column. Stats is nil when no
// value in the column could be parsed.
type ColumnReport struct {
	Name     string
	Index    int
	Stats    *Stats
	Warnings []Warning
}

// Report is the result of one analysis run.
type Report struct {
	ID           string
	Name         string
	FilterColumn string
	FilterValue  string
	SortColumn   string
	DateColumn   string

	Header   []string
	Rows     int // rows loaded
	Analyzed int // rows left after filtering

	Outcome Outcome
	// Abort holds the reason for an aborted report.
	Abort   error
	Columns []ColumnReport
	Dates   *DateReport
}

func (r *Report) abort(err error) {
	r.Outcome = OutcomeAborted
	r.Abort = err
}

// Aborted reports whether the run stopped before producing statistics.
func (r *Report) Aborted() bool { return r.Outcome == OutcomeAborted }

// Warnings returns every warning in output order.
func (r *Report) Warnings() []Warning {
	var out []Warning
	for _, c := range r.Columns {
		out = append(out, c.Warnings...)
	}
	if r.Dates != nil {
		out = append(out, r.Dates.Warnings...)
	}
	return out
}

// Column returns the report for the named column.
func (r *Report) Column(name string) (ColumnReport, bool) {
	for _, c := range r.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return ColumnReport{}, false
}

// Level is the severity of an output line.
type Level int

const (
	LevelInfo Level = iota
	LevelWarn
	LevelError
)

// Line is one line of console output.
type Line struct {
	Level Level
	Text  string
}

func (l Line) String() string {
	switch l.Level {
	case LevelWarn:
		return "Warning: " + l.Text
	case LevelError:
		return "Error: " + l.Text
	}
	return l.Text
}

// Lines renders the report in output order: each column's warnings before
// its statistics, then the date stage.
func (r *Report) Lines() []Line {
	if r.Aborted() {
		return []Line{{Level: LevelError, Text: r.Abort.Error()}}
	}
	var out []Line
	for _, c := range r.Columns {
		for _, w := range c.Warnings {
			out = append(out, Line{Level: LevelWarn, Text: w.String()})
		}
		if c.Stats != nil {
			out = append(out, Line{Level: LevelInfo, Text: statsLine(c.Name, c.Stats)})
		}
	}
	if d := r.Dates; d != nil {
		if d.Err != nil {
			out = append(out, Line{Level: LevelError, Text: d.Err.Error()})
			return out
		}
		for _, w := range d.Warnings {
			out = append(out, Line{Level: LevelWarn, Text: w.String()})
		}
		if d.Valid > 0 {
			out = append(out, Line{Level: LevelInfo, Text: fmt.Sprintf("Column '%s': oldest = %s, newest = %s",
				d.Column, d.Oldest.Format(DateLayout), d.Newest.Format(DateLayout))})
		}
	}
	return out
}

// Text renders the report as plain console text.
func (r *Report) Text() string {
	var b strings.Builder
	for _, l := range r.Lines() {
		b.WriteString(l.String())
		b.WriteString("\n")
	}
	return b.String()
}

func statsLine(name string, s *Stats) string {
	return fmt.Sprintf("Column '%s': mean = %s, min = %s, max = %s, median = %s, mode = %s, stdev = %s",
		name, FormatNumber(s.Mean), FormatNumber(s.Min), FormatNumber(s.Max), FormatNumber(s.Median),
		modeText(s), stdText(s))
}

func modeText(s *Stats) string {
	if !s.HasMode {
		return "no mode"
	}
	return FormatNumber(s.Mode)
}

func stdText(s *Stats) string {
	if !s.HasStd {
		return "n/a"
	}
	return FormatNumber(s.Std)
}

// FormatNumber prints the shortest decimal that round-trips to v.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Markdown renders a sectioned summary suitable for pasting into docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	if r.Aborted() {
		b.WriteString("\n[ERROR]\n- ")
		b.WriteString(r.Abort.Error())
		b.WriteString("\n")
		return b.String()
	}
	if r.Analyzed < r.Rows {
		b.WriteString(fmt.Sprintf("Rows: %d (analyzed %d)\n", r.Rows, r.Analyzed))
	} else {
		b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	}
	b.WriteString(fmt.Sprintf("Columns: %d (numeric %d)\n", len(r.Header), len(r.Columns)))
	if r.FilterColumn != "" && r.FilterValue != "" {
		b.WriteString(fmt.Sprintf("Filter: %s = %s\n", safeVal(r.FilterColumn), safeVal(r.FilterValue)))
	}
	if r.SortColumn != "" {
		b.WriteString(fmt.Sprintf("Sorted by: %s\n", safeVal(r.SortColumn)))
	}

	b.WriteString("\n[NUMERIC COLUMNS]\n")
	for _, c := range r.Columns {
		if c.Stats == nil {
			b.WriteString(fmt.Sprintf("- %s: no valid values\n", safeName(c.Name)))
			continue
		}
		s := c.Stats
		b.WriteString(fmt.Sprintf("- %s (n=%d): mean %s, min %s, max %s, median %s, mode %s, std %s\n",
			safeName(c.Name), s.Count, FormatNumber(s.Mean), FormatNumber(s.Min), FormatNumber(s.Max),
			FormatNumber(s.Median), modeText(s), stdText(s)))
	}

	if d := r.Dates; d != nil {
		b.WriteString("\n[DATES]\n")
		switch {
		case d.Err != nil:
			b.WriteString(fmt.Sprintf("- %s: %s\n", safeName(d.Column), d.Err.Error()))
		case d.Valid == 0:
			b.WriteString(fmt.Sprintf("- %s: no valid dates\n", safeName(d.Column)))
		default:
			b.WriteString(fmt.Sprintf("- %s (n=%d): oldest %s, newest %s\n", safeName(d.Column), d.Valid,
				d.Oldest.Format(DateLayout), d.Newest.Format(DateLayout)))
		}
	}

	if ws := r.Warnings(); len(ws) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range ws {
			b.WriteString("- ")
			b.WriteString(safeVal(w.String()))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(s, "\n", " ") }
