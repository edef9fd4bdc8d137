package demoapp

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/BRAVO68WEB/demoapp/pkg/output"
	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check that a running demoapp answers on its root URL",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, _ := cmd.Flags().GetString("url")
		return handleHealth(cmd, url)
	},
}

func init() {
	healthCmd.Flags().String("url", "", "Service URL (default http://localhost:$PORT)")
}

func handleHealth(cmd *cobra.Command, url string) error {
	if url == "" {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return output.PrintError("Failed to load config: " + err.Error())
		}
		url = cfg.URL()
	}

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Head(strings.TrimSuffix(url, "/") + "/")
	if err != nil {
		return output.PrintError("Cannot reach service: " + err.Error())
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return output.PrintError(fmt.Sprintf("Service at %s answered %s", url, resp.Status))
	}

	output.PrintSuccess(fmt.Sprintf("✅ Service at %s is up", url))
	return nil
}
