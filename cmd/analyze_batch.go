package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/csvreport-cli/internal/analysis"
	"github.com/KaramelBytes/csvreport-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	abFilterColumn string
	abFilterValue  string
	abSortColumn   string
	abDateColumn   string
	abDelimiter    string
	abSheetName    string
	abSheetIndex   int
	abFormat       string
	abQuiet        bool
)

var analyzeBatchCmd = &cobra.Command{
	Use:   "analyze-batch <files...>",
	Short: "Analyze multiple CSV/TSV/XLSX files with the same options",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files := utils.ExpandInputs(args)
		if len(files) == 0 {
			return fmt.Errorf("no input files matched")
		}
		format := config().Format
		if cmd.Flags().Changed("format") {
			format = abFormat
		}
		format, err := validateFormat(format)
		if err != nil {
			return err
		}
		req, err := buildRequest(cmd, abFilterColumn, abFilterValue, abSortColumn, abDateColumn, abDelimiter, abSheetName, abSheetIndex)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		total := len(files)
		aborted := 0
		for i, path := range files {
			if !abQuiet {
				fmt.Fprintf(out, "[%d/%d] Processing %s...\n", i+1, total, filepath.Base(path))
			}
			rep, err := analysis.Analyze(path, req)
			if err != nil {
				return fmt.Errorf("%s: %w", filepath.Base(path), err)
			}
			printReport(out, rep, format)
			if rep.Aborted() {
				aborted++
				logger.Warn().Str("file", path).Err(rep.Abort).Msg("analysis aborted")
			}
		}
		if aborted > 0 {
			return fmt.Errorf("%d of %d file(s) aborted", aborted, total)
		}
		if !abQuiet {
			fmt.Fprintf(out, "✓ Analyzed %d file(s)\n", total)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeBatchCmd)
	analyzeBatchCmd.Flags().StringVar(&abFilterColumn, "filter-column", "", "keep only rows whose value in this column equals --filter-value")
	analyzeBatchCmd.Flags().StringVar(&abFilterValue, "filter-value", "", "exact value to keep (used with --filter-column)")
	analyzeBatchCmd.Flags().StringVar(&abSortColumn, "sort-column", "", "sort rows by this column (string order, stable)")
	analyzeBatchCmd.Flags().StringVar(&abDateColumn, "date-column", "", "report the oldest/newest YYYY-MM-DD date in this column")
	analyzeBatchCmd.Flags().StringVar(&abDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeBatchCmd.Flags().StringVar(&abSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeBatchCmd.Flags().IntVar(&abSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeBatchCmd.Flags().StringVar(&abFormat, "format", "text", "output format: text | markdown")
	analyzeBatchCmd.Flags().BoolVar(&abQuiet, "quiet", false, "suppress progress and non-essential output")
}
