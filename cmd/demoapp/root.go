package demoapp

import (
	"context"
	"os"

	"github.com/BRAVO68WEB/demoapp/internal/config"
	"github.com/spf13/cobra"
)

// version is set at build time via -ldflags "-X github.com/BRAVO68WEB/demoapp/cmd/demoapp.version=..."
var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "demoapp",
	Short: "Minimal HTTP service answering GET / with a greeting",
	Long: `demoapp serves "Hello World!" on GET /. Settings come from PORT, NODE_ENV,
AWS_ACCESS_KEY, AWS_SECRET_KEY and DB_CONNECTION. Running demoapp with no
subcommand is the same as "demoapp serve".`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Optional TOML config file; environment variables override it")
	rootCmd.PersistentFlags().Bool("access-log", false, "Log one line per request")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig builds the snapshot from the environment, layered over the
// --config file when one is given.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		return config.FromEnv(), nil
	}
	return config.LoadFile(path, os.Getenv)
}
