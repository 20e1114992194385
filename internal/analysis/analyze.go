package analysis

import (
	"errors"
	"path/filepath"
	"time"

	"github.com/KaramelBytes/csvreport-cli/internal/table"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrNoNumericColumns aborts a report whose first data row has no numeric cell.
var ErrNoNumericColumns = errors.New("no numeric columns to analyze")

// Request selects the optional stages of a report. Empty fields disable
// the corresponding stage; filtering needs both FilterColumn and FilterValue.
type Request struct {
	FilterColumn string
	FilterValue  string
	SortColumn   string
	DateColumn   string
	Load         table.LoadOptions
	// Logger receives stage events at debug level. Nil disables logging.
	Logger *zerolog.Logger
}

func (r Request) logger() zerolog.Logger {
	if r.Logger == nil {
		return zerolog.Nop()
	}
	return *r.Logger
}

// Analyze loads the file at path and reports on it.
// A missing file aborts the report; the returned error is reserved for
// failures that are not part of the report, such as malformed CSV.
func Analyze(path string, req Request) (*Report, error) {
	start := time.Now()
	t, err := table.Load(path, req.Load)
	if err != nil {
		if errors.Is(err, table.ErrFileNotFound) {
			rep := newReport(filepath.Base(path), req)
			rep.abort(err)
			return rep, nil
		}
		return nil, err
	}
	log := req.logger()
	log.Debug().Str("file", t.Name).Int("rows", len(t.Rows)).Int("cols", len(t.Header)).
		Dur("elapsed", time.Since(start)).Msg("table loaded")
	return AnalyzeTable(t, req), nil
}

// AnalyzeTable runs the filter, sort, numeric and date stages on t.
// Filter and sort modify t in place.
func AnalyzeTable(t *table.Table, req Request) *Report {
	rep := newReport(t.Name, req)
	rep.Header = t.Header
	rep.Rows = len(t.Rows)
	log := req.logger().With().Str("run_id", rep.ID).Str("file", t.Name).Logger()

	if req.FilterColumn != "" && req.FilterValue != "" {
		if err := t.Filter(req.FilterColumn, req.FilterValue); err != nil {
			rep.abort(err)
			return rep
		}
		log.Debug().Str("column", req.FilterColumn).Int("kept", len(t.Rows)).Msg("filter applied")
	}
	if req.SortColumn != "" {
		if err := t.SortBy(req.SortColumn); err != nil {
			rep.abort(err)
			return rep
		}
		log.Debug().Str("column", req.SortColumn).Msg("rows sorted")
	}
	rep.Analyzed = len(t.Rows)

	numeric := NumericColumns(t)
	if len(numeric) == 0 {
		rep.abort(ErrNoNumericColumns)
		return rep
	}
	log.Debug().Ints("columns", numeric).Msg("numeric columns detected")

	for _, idx := range numeric {
		cr := summarizeColumn(t, idx)
		log.Debug().Str("column", cr.Name).Int("warnings", len(cr.Warnings)).Bool("reported", cr.Stats != nil).
			Msg("column summarized")
		rep.Columns = append(rep.Columns, cr)
	}

	if req.DateColumn != "" {
		rep.Dates = reportDates(t, req.DateColumn)
		log.Debug().Str("column", req.DateColumn).Int("valid", rep.Dates.Valid).AnErr("error", rep.Dates.Err).
			Msg("dates reported")
	}
	return rep
}

// NumericColumns returns the indices whose value in the first data row
// parses as a number. A table without rows has no numeric columns.
func NumericColumns(t *table.Table) []int {
	if len(t.Rows) == 0 {
		return nil
	}
	first := t.Rows[0]
	var out []int
	for i := range t.Header {
		if i >= len(first) {
			break
		}
		if _, ok := ParseNumber(first[i]); ok {
			out = append(out, i)
		}
	}
	return out
}

func summarizeColumn(t *table.Table, idx int) ColumnReport {
	cr := ColumnReport{Name: t.Header[idx], Index: idx}
	vals := make([]float64, 0, len(t.Rows))
	for i, raw := range t.Column(idx) {
		x, ok := ParseNumber(raw)
		if !ok {
			cr.Warnings = append(cr.Warnings, Warning{Kind: WarnBadNumber, Column: cr.Name, Row: i + 1, Value: raw})
			continue
		}
		vals = append(vals, x)
	}
	if s, ok := Summarize(vals); ok {
		cr.Stats = &s
	} else {
		cr.Warnings = append(cr.Warnings, Warning{Kind: WarnEmptyColumn, Column: cr.Name})
	}
	return cr
}

func newReport(name string, req Request) *Report {
	return &Report{
		ID:           uuid.NewString(),
		Name:         name,
		FilterColumn: req.FilterColumn,
		FilterValue:  req.FilterValue,
		SortColumn:   req.SortColumn,
		DateColumn:   req.DateColumn,
	}
}
