package main

import (
	"github.com/spf13/cobra"

	"github.com/gbmviz/gbm-visualizer/internal/server"
	"github.com/gbmviz/gbm-visualizer/pkg/logger"
)

var serveFlags struct {
	addr     string
	logLevel string
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	Long: `Start the web dashboard: a chart page plus a JSON API. The server
owns the session seed; POST /api/seed regenerates it, mirroring the
"Generate New Paths" button.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := logger.New(logger.Level(serveFlags.logLevel))
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		return server.New(log).Run(serveFlags.addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveFlags.addr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveFlags.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
}
