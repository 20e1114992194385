package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func peopleTable() *Table {
	return &Table{
		Name:   "people.csv",
		Header: []string{"Name", "City", "Age"},
		Rows: [][]string{
			{"Alice", "NewYork", "30"},
			{"Bob", "NewYork", "25"},
			{"Carol", "Boston", "40"},
		},
	}
}

func names(t *Table) []string {
	return t.Column(0)
}

func TestIndex(t *testing.T) {
	tbl := peopleTable()
	idx, ok := tbl.Index("Age")
	assert.True(t, ok)
	assert.Equal(t, 2, idx)

	_, ok = tbl.Index("age")
	assert.False(t, ok, "lookup is case-sensitive")
}

func TestIndexFirstDuplicateWins(t *testing.T) {
	tbl := &Table{Header: []string{"a", "b", "a"}}
	idx, ok := tbl.Index("a")
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestFilterExactMatch(t *testing.T) {
	tbl := peopleTable()
	require.NoError(t, tbl.Filter("City", "NewYork"))
	assert.Equal(t, []string{"Alice", "Bob"}, names(tbl))

	tbl = peopleTable()
	require.NoError(t, tbl.Filter("City", "newyork"))
	assert.Empty(t, tbl.Rows)
}

func TestFilterIsIdempotent(t *testing.T) {
	once := peopleTable()
	require.NoError(t, once.Filter("City", "NewYork"))
	twice := peopleTable()
	require.NoError(t, twice.Filter("City", "NewYork"))
	require.NoError(t, twice.Filter("City", "NewYork"))
	assert.Equal(t, once.Rows, twice.Rows)
}

func TestFilterMissingColumn(t *testing.T) {
	tbl := peopleTable()
	err := tbl.Filter("Country", "US")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrColumnNotFound)
	var cnf *ColumnNotFoundError
	require.ErrorAs(t, err, &cnf)
	assert.Equal(t, "filter", cnf.Stage)
	assert.Equal(t, "column 'Country' not found", err.Error())
	assert.Len(t, tbl.Rows, 3, "rows untouched on error")
}

func TestSortByIsLexicographic(t *testing.T) {
	tbl := &Table{
		Header: []string{"id", "n"},
		Rows:   [][]string{{"a", "2"}, {"b", "10"}, {"c", "1"}},
	}
	require.NoError(t, tbl.SortBy("n"))
	assert.Equal(t, []string{"1", "10", "2"}, tbl.Column(1))
}

func TestSortByIsStable(t *testing.T) {
	tbl := &Table{
		Header: []string{"id", "k"},
		Rows:   [][]string{{"1", "b"}, {"2", "a"}, {"3", "b"}, {"4", "a"}},
	}
	require.NoError(t, tbl.SortBy("k"))
	assert.Equal(t, []string{"2", "4", "1", "3"}, tbl.Column(0))

	before := append([][]string(nil), tbl.Rows...)
	require.NoError(t, tbl.SortBy("k"))
	assert.Equal(t, before, tbl.Rows, "sorting sorted rows is a no-op")
}

func TestSortByMissingColumn(t *testing.T) {
	tbl := peopleTable()
	err := tbl.SortBy("Salary")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestCell(t *testing.T) {
	row := []string{"x", "y"}
	assert.Equal(t, "y", Cell(row, 1))
	assert.Equal(t, "", Cell(row, 2))
	assert.Equal(t, "", Cell(row, -1))
}
