package cmd

import (
	"fmt"

	"github.com/KaramelBytes/csvreport-cli/internal/analysis"
	"github.com/spf13/cobra"
)

var (
	anaFilterColumn string
	anaFilterValue  string
	anaSortColumn   string
	anaDateColumn   string
	anaDelimiter    string
	anaSheetName    string
	anaSheetIndex   int
	anaFormat       string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Print column statistics for a CSV/TSV/XLSX file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := config().Format
		if cmd.Flags().Changed("format") {
			format = anaFormat
		}
		format, err := validateFormat(format)
		if err != nil {
			return err
		}
		req, err := buildRequest(cmd, anaFilterColumn, anaFilterValue, anaSortColumn, anaDateColumn, anaDelimiter, anaSheetName, anaSheetIndex)
		if err != nil {
			return err
		}
		rep, err := analysis.Analyze(args[0], req)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), rep, format)
		if rep.Aborted() {
			return reportedError{fmt.Errorf("analysis of %s aborted: %w", rep.Name, rep.Abort)}
		}
		logger.Debug().Str("run_id", rep.ID).Int("warnings", len(rep.Warnings())).Msg("analysis completed")
		return nil
	},
}

func buildRequest(cmd *cobra.Command, filterCol, filterVal, sortCol, dateCol, delim, sheetName string, sheetIndex int) (analysis.Request, error) {
	f := cmd.Flags()
	opt, err := loadOptions(delim, f.Changed("delimiter"), sheetName, sheetIndex, f.Changed("sheet-index"))
	if err != nil {
		return analysis.Request{}, err
	}
	return analysis.Request{
		FilterColumn: filterCol,
		FilterValue:  filterVal,
		SortColumn:   sortCol,
		DateColumn:   dateCol,
		Load:         opt,
		Logger:       &logger,
	}, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVar(&anaFilterColumn, "filter-column", "", "keep only rows whose value in this column equals --filter-value")
	analyzeCmd.Flags().StringVar(&anaFilterValue, "filter-value", "", "exact value to keep (used with --filter-column)")
	analyzeCmd.Flags().StringVar(&anaSortColumn, "sort-column", "", "sort rows by this column (string order, stable)")
	analyzeCmd.Flags().StringVar(&anaDateColumn, "date-column", "", "report the oldest/newest YYYY-MM-DD date in this column")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().StringVar(&anaFormat, "format", "text", "output format: text | markdown")
}
