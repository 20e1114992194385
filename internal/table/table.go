package table

import (
	"sort"

	"github.com/samber/lo"
)

// Table is an in-memory delimited dataset. Rows are aligned positionally to
// Header and are never shorter than it.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
}

// Index returns the position of the first header cell equal to name.
func (t *Table) Index(name string) (int, bool) {
	i := lo.IndexOf(t.Header, name)
	return i, i >= 0
}

// Cell returns the value at column idx of row, or "" when the row is short.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// Filter keeps only the rows whose cell in column is exactly value.
func (t *Table) Filter(column, value string) error {
	idx, ok := t.Index(column)
	if !ok {
		return &ColumnNotFoundError{Column: column, Stage: "filter"}
	}
	t.Rows = lo.Filter(t.Rows, func(row []string, _ int) bool {
		return Cell(row, idx) == value
	})
	return nil
}

// SortBy orders rows ascending by the raw string value in column.
// Ties keep their original relative order.
func (t *Table) SortBy(column string) error {
	idx, ok := t.Index(column)
	if !ok {
		return &ColumnNotFoundError{Column: column, Stage: "sort"}
	}
	sort.SliceStable(t.Rows, func(i, j int) bool {
		return Cell(t.Rows[i], idx) < Cell(t.Rows[j], idx)
	})
	return nil
}

// Column returns the values of column idx in row order.
func (t *Table) Column(idx int) []string {
	out := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		out[i] = Cell(row, idx)
	}
	return out
}

// pad extends rec to n cells so every header position is addressable.
func pad(rec []string, n int) []string {
	if len(rec) >= n {
		return rec
	}
	tmp := make([]string, n)
	copy(tmp, rec)
	return tmp
}
