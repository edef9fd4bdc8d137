package demoapp

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/BRAVO68WEB/demoapp/internal/server"
	"github.com/BRAVO68WEB/demoapp/pkg/output"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP service",
	Long:  `Start the HTTP service on PORT (default 3000). Stops gracefully on SIGINT or SIGTERM.`,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return output.PrintError("Failed to load config: " + err.Error())
	}
	accessLog, _ := cmd.Flags().GetBool("access-log")

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg,
		server.WithLogger(newLogger()),
		server.WithAccessLog(accessLog),
	)
	return srv.Run(ctx)
}

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l
}
