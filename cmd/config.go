package cmd

import (
	"fmt"
	"strings"

	cfgpkg "github.com/KaramelBytes/csvreport-cli/internal/config"
	"github.com/KaramelBytes/csvreport-cli/internal/logging"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set csvreport configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := config()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "delimiter: %s\n", c.Delimiter)
		fmt.Fprintf(out, "format: %s\n", c.Format)
		fmt.Fprintf(out, "no_color: %t\n", c.NoColor)
		fmt.Fprintf(out, "log_level: %s\n", c.LogLevel)
		fmt.Fprintf(out, "sheet_index: %d\n", c.SheetIndex)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c := config()
		switch key {
		case "delimiter":
			if _, err := parseDelimiter(val); err != nil || val == "" {
				return fmt.Errorf("invalid delimiter: %q (use ',' | ';' | 'tab')", val)
			}
			c.Delimiter = val
		case "format":
			f, err := validateFormat(val)
			if err != nil {
				return err
			}
			c.Format = f
		case "no_color":
			b, err := cast.ToBoolE(val)
			if err != nil {
				return fmt.Errorf("invalid bool for no_color: %w", err)
			}
			c.NoColor = b
		case "log_level":
			lvl := strings.ToLower(strings.TrimSpace(val))
			if logging.ParseLevel(lvl).String() != lvl {
				return fmt.Errorf("invalid log_level: %s (use debug|info|warn|error)", val)
			}
			c.LogLevel = lvl
		case "sheet_index":
			i, err := cast.ToIntE(val)
			if err != nil || i < 1 {
				return fmt.Errorf("invalid int for sheet_index: %v", val)
			}
			c.SheetIndex = i
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		cfg = c
		fmt.Fprintln(cmd.OutOrStdout(), "✓ Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
