package demoapp

import (
	"fmt"

	"github.com/BRAVO68WEB/demoapp/pkg/output"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the configuration demoapp would start with",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, _ := cmd.Flags().GetString("format")
		return handleConfig(cmd, format)
	},
}

func init() {
	configCmd.Flags().StringP("format", "f", "table", "Output format (table, json)")
}

func handleConfig(cmd *cobra.Command, format string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return output.PrintError("Failed to load config: " + err.Error())
	}

	if format != "json" {
		output.PrintInfo("demoapp configuration")
		if path, _ := cmd.Flags().GetString("config"); path != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "  Config file: %s\n", path)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  Listen URL:  %s\n\n", cfg.URL())
	}
	if err := output.PrintConfig(cmd.OutOrStdout(), cfg.Redacted(), format); err != nil {
		return output.PrintError(err.Error())
	}
	return nil
}
