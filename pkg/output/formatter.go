package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BRAVO68WEB/demoapp/internal/config"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
)

func PrintSuccess(msg string) {
	color.Green(msg)
}

func PrintError(msg string) error {
	color.Red("❌ " + msg)
	return fmt.Errorf("%s", msg)
}

func PrintInfo(msg string) {
	color.Cyan(msg)
}

// PrintConfig writes cfg as a key/value table, or as JSON when format is
// "json". Callers pass a redacted snapshot.
func PrintConfig(w io.Writer, cfg config.Config, format string) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "", "table":
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Key", "Env", "Value"})
	table.SetAutoWrapText(false)
	table.Append([]string{"App name", "-", cfg.AppName})
	table.Append([]string{"Port", "PORT", cfg.Port})
	table.Append([]string{"Environment", "NODE_ENV", cfg.Environment})
	table.Append([]string{"AWS access key", "AWS_ACCESS_KEY", orUnset(cfg.AWSAccessKey)})
	table.Append([]string{"AWS secret key", "AWS_SECRET_KEY", orUnset(cfg.AWSSecretKey)})
	table.Append([]string{"DB connection", "DB_CONNECTION", orUnset(cfg.DBConnection)})
	table.Render()
	return nil
}

func orUnset(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
