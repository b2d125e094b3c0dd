package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/nivahq/niva/internal/app"
	"github.com/nivahq/niva/internal/config"
	"github.com/nivahq/niva/internal/logging"
	"github.com/nivahq/niva/internal/server"
)

func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Long: `Start the HTTP server and block until SIGINT or SIGTERM.

Configuration is read from the environment and an optional .env file.
The --addr flag overrides APP_ADDR.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			slog.SetDefault(logging.New(cfg.LogFormat, cfg.LogLevel))

			s, err := server.New(cfg, app.NewModules(cfg))
			if err != nil {
				return fmt.Errorf("create server: %w", err)
			}
			return s.Start(cmd.Context())
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address, e.g. :8080")
	return cmd
}
