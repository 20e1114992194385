package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/KaramelBytes/csvreport-cli/internal/analysis"
	"github.com/KaramelBytes/csvreport-cli/internal/table"
	"github.com/fatih/color"
)

var (
	warnColor = color.New(color.FgYellow)
	errColor  = color.New(color.FgRed, color.Bold)
)

func validateFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return "text", nil
	case "markdown", "md":
		return "markdown", nil
	default:
		return "", fmt.Errorf("unsupported --format: %s (use text|markdown)", format)
	}
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case "\t", "tab":
		return '\t', nil
	case ";":
		return ';', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// printReport writes rep to w. Warnings and errors are colored when color
// output is enabled.
func printReport(w io.Writer, rep *analysis.Report, format string) {
	if format == "markdown" {
		fmt.Fprintln(w, rep.Markdown())
		return
	}
	for _, ln := range rep.Lines() {
		switch ln.Level {
		case analysis.LevelWarn:
			_, _ = warnColor.Fprintln(w, "⚠ "+ln.String())
		case analysis.LevelError:
			_, _ = errColor.Fprintln(w, "✗ "+ln.String())
		default:
			fmt.Fprintln(w, ln.String())
		}
	}
}

// loadOptions merges flag values with the configured defaults.
func loadOptions(delimFlag string, delimChanged bool, sheetName string, sheetIndex int, sheetChanged bool) (table.LoadOptions, error) {
	c := config()
	d := c.Delimiter
	if delimChanged {
		d = delimFlag
	}
	var opt table.LoadOptions
	// a comma default defers to the extension rule so .tsv stays tab-separated
	if delimChanged || (d != "" && d != ",") {
		r, err := parseDelimiter(d)
		if err != nil {
			return opt, err
		}
		opt.Delimiter = r
	}
	opt.SheetName = sheetName
	opt.SheetIndex = c.SheetIndex
	if sheetChanged {
		opt.SheetIndex = sheetIndex
	}
	return opt, nil
}
