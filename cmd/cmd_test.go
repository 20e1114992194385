package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/csvreport-cli/internal/table"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCmd executes the root command with args and returns what it printed.
func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()
	// Reset sticky flags that may persist Changed state across invocations
	for _, c := range []*cobra.Command{rootCmd, analyzeCmd, analyzeBatchCmd} {
		for _, fs := range []*pflag.FlagSet{c.Flags(), c.PersistentFlags()} {
			fs.VisitAll(func(fl *pflag.Flag) {
				_ = fl.Value.Set(fl.DefValue)
				fl.Changed = false
			})
		}
	}
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append(args, "--no-color"))
	err := rootCmd.Execute()
	return out.String(), err
}

func isolateHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, k := range []string{"CSVREPORT_FORMAT", "CSVREPORT_DELIMITER", "CSVREPORT_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	return home
}

func writeCSV(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(strings.Join(lines, "\n")+"\n"), 0o644))
	return p
}

var people = []string{
	"Name,City,Age,Joined",
	"Alice,NewYork,30,2023-03-10",
	"Bob,NewYork,25,2023-01-05",
	"Carol,Boston,40,2022-11-30",
}

func TestAnalyzeFilterSortDates(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "people.csv", people...)

	out, err := runCmd(t, "analyze", p,
		"--filter-column", "City", "--filter-value", "NewYork",
		"--sort-column", "Age", "--date-column", "Joined")
	require.NoError(t, err)
	assert.Contains(t, out, "Column 'Age': mean = 27.5, min = 25, max = 30, median = 27.5, mode = no mode, stdev = 3.5355339")
	assert.Contains(t, out, "Column 'Joined': oldest = 2023-01-05, newest = 2023-03-10")
	assert.NotContains(t, out, "Warning")
}

func TestAnalyzeMissingSortColumn(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "people.csv", people...)

	out, err := runCmd(t, "analyze", p, "--sort-column", "Salary")
	require.Error(t, err)
	assert.ErrorIs(t, err, table.ErrColumnNotFound)
	assert.Contains(t, out, "✗ Error: column 'Salary' not found")
	assert.NotContains(t, out, "Column '")

	var stderr bytes.Buffer
	printError(&stderr, err)
	assert.Empty(t, stderr.String())
}

func TestPrintErrorReportsUnprintedFailures(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("no input files matched"))
	assert.Contains(t, buf.String(), "✗ Error: no input files matched")
}

func TestAnalyzeWarnsOnBadValues(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "scores.csv", "Score", "10", "abc", "30")

	out, err := runCmd(t, "analyze", p)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "⚠ Warning: non-numeric value 'abc' in column 'Score' (row 2), value skipped", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "Column 'Score': mean = 20, min = 10, max = 30"), lines[1])
}

func TestAnalyzeMarkdownAndFormatValidation(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "people.csv", people...)

	out, err := runCmd(t, "analyze", p, "--format", "markdown")
	require.NoError(t, err)
	assert.Contains(t, out, "[DATASET SUMMARY]")
	assert.Contains(t, out, "File: people.csv")
	assert.Contains(t, out, "- Age (n=3)")

	_, err = runCmd(t, "analyze", p, "--format", "html")
	assert.ErrorContains(t, err, "unsupported --format")
}

func TestAnalyzeDelimiterFromConfig(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "semi.csv", "a;b", "1;x", "3;y")

	_, err := runCmd(t, "config", "set", "delimiter", ";")
	require.NoError(t, err)

	out, err := runCmd(t, "analyze", p)
	require.NoError(t, err)
	assert.Contains(t, out, "Column 'a': mean = 2")

	out, err = runCmd(t, "analyze", p, "--delimiter", ",")
	require.Error(t, err)
	assert.Contains(t, out, "no numeric columns to analyze")
}

func TestAnalyzeMissingFile(t *testing.T) {
	home := isolateHome(t)
	out, err := runCmd(t, "analyze", filepath.Join(home, "nope.csv"))
	assert.ErrorIs(t, err, table.ErrFileNotFound)
	assert.Contains(t, out, "nope.csv' not found")
}

func TestAnalyzeBatchContinuesAfterAbort(t *testing.T) {
	home := isolateHome(t)
	d1 := filepath.Join(home, "d1")
	d2 := filepath.Join(home, "d2")
	require.NoError(t, os.MkdirAll(d1, 0o755))
	require.NoError(t, os.MkdirAll(d2, 0o755))
	writeCSV(t, d1, "metrics.csv", "col1,col2", "A,1", "B,2", "C,3")
	writeCSV(t, d2, "metrics.csv", "col1,col2", "A,x", "B,y")

	out, err := runCmd(t, "analyze-batch", filepath.Join(home, "d*", "metrics.csv"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 file(s) aborted")
	assert.Contains(t, out, "[1/2] Processing metrics.csv...")
	assert.Contains(t, out, "[2/2] Processing metrics.csv...")
	assert.Contains(t, out, "Column 'col2': mean = 2")
	assert.Contains(t, out, "✗ Error: no numeric columns to analyze")
}

func TestAnalyzeBatchQuiet(t *testing.T) {
	home := isolateHome(t)
	p := writeCSV(t, home, "one.csv", "v", "1", "2")

	out, err := runCmd(t, "analyze-batch", p, "--quiet")
	require.NoError(t, err)
	assert.NotContains(t, out, "Processing")
	assert.NotContains(t, out, "✓ Analyzed")
	assert.Contains(t, out, "Column 'v'")
}

func TestConfigSetAndShow(t *testing.T) {
	home := isolateHome(t)

	_, err := runCmd(t, "config", "set", "format", "md")
	require.NoError(t, err)
	_, err = runCmd(t, "config", "set", "sheet_index", "2")
	require.NoError(t, err)
	_, err = runCmd(t, "config", "set", "no_color", "yes")
	assert.Error(t, err)
	_, err = runCmd(t, "config", "set", "log_level", "loud")
	assert.Error(t, err)
	_, err = runCmd(t, "config", "set", "colour", "red")
	assert.ErrorContains(t, err, "unknown key")

	out, err := runCmd(t, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "format: markdown")
	assert.Contains(t, out, "sheet_index: 2")

	_, err = os.Stat(filepath.Join(home, ".csvreport", "config.yaml"))
	assert.NoError(t, err)
}
