package analysis

import (
	"errors"
	"strings"
	"testing"

	"github.com/KaramelBytes/csvreport-cli/internal/table"
)

func TestMarkdownSections(t *testing.T) {
	tbl := &table.Table{
		Name:   "sales.csv",
		Header: []string{"Date", "Region", "Units", "Price"},
		Rows: [][]string{
			{"2024-01-02", "north", "5", "2.5"},
			{"2024-01-09", "south", "5", "n/a"},
			{"2024-01-03", "north", "7", "3"},
			{"bad", "north", "9", "4"},
		},
	}
	rep := AnalyzeTable(tbl, Request{FilterColumn: "Region", FilterValue: "north", SortColumn: "Date", DateColumn: "Date"})
	md := rep.Markdown()
	for _, want := range []string{
		"[DATASET SUMMARY]",
		"File: sales.csv",
		"Rows: 4 (analyzed 3)",
		"Columns: 4 (numeric 2)",
		"Filter: Region = north",
		"Sorted by: Date",
		"[NUMERIC COLUMNS]",
		"- Units (n=3): mean 7, min 5, max 9, median 7, mode no mode, std 2",
		"- Price (n=3): mean 3.1666666666666665",
		"[DATES]",
		"- Date (n=2): oldest 2024-01-02, newest 2024-01-03",
		"[NOTES]",
		"invalid date 'bad'",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestMarkdownAborted(t *testing.T) {
	rep := &Report{Name: "x.csv", Outcome: OutcomeAborted, Abort: ErrNoNumericColumns}
	md := rep.Markdown()
	if !strings.Contains(md, "[ERROR]\n- no numeric columns to analyze") {
		t.Fatalf("markdown = %s", md)
	}
	if strings.Contains(md, "[NUMERIC COLUMNS]") {
		t.Fatalf("aborted markdown must not list columns: %s", md)
	}
}

func TestWarningStrings(t *testing.T) {
	cases := []struct {
		w    Warning
		want string
	}{
		{Warning{Kind: WarnBadNumber, Column: "Age", Row: 2, Value: "abc"}, "non-numeric value 'abc' in column 'Age' (row 2), value skipped"},
		{Warning{Kind: WarnEmptyColumn, Column: "Age"}, "column 'Age' has no numeric values after skipping invalid entries"},
		{Warning{Kind: WarnEmptyDate, Column: "Date", Row: 4}, "missing date in column 'Date' (row 4), row skipped"},
		{Warning{Kind: WarnBadDate, Column: "Date", Row: 1, Value: "x"}, "invalid date 'x' in column 'Date' (row 1), expected YYYY-MM-DD, row skipped"},
		{Warning{Kind: WarnNoDates, Column: "Date"}, "no valid dates to analyze in column 'Date'"},
	}
	for _, c := range cases {
		if got := c.w.String(); got != c.want {
			t.Errorf("got %q, want %q", got, c.want)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	rep := &Report{}
	if rep.Aborted() || rep.Outcome.String() != "completed" {
		t.Fatalf("zero report must be completed")
	}
	rep.abort(errors.New("boom"))
	if !rep.Aborted() || rep.Outcome.String() != "aborted" {
		t.Fatalf("outcome = %v", rep.Outcome)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := map[float64]string{
		25:        "25",
		27.5:      "27.5",
		-0.125:    "-0.125",
		1e21:      "1000000000000000000000",
		1.0 / 3.0: "0.3333333333333333",
	}
	for in, want := range cases {
		if got := FormatNumber(in); got != want {
			t.Errorf("FormatNumber(%v) = %q, want %q", in, got, want)
		}
	}
}
