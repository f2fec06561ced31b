package main

import (
	"github.com/spf13/cobra"

	"labfixture/internal/app/server"
	"labfixture/internal/platform/config"
	"labfixture/internal/platform/logging"
)

type serveOptions struct {
	addr      string
	logLevel  string
	logFormat string
}

// apply overrides environment values with flags the user actually set.
func (o *serveOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("addr") {
		cfg.Addr = o.addr
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
	}
}

func NewServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the fixture server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			opts.apply(cmd, &cfg)
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.New(logging.Config{
				Level:  logging.ParseLevel(cfg.LogLevel),
				Format: logging.Format(cfg.LogFormat),
				Output: cmd.ErrOrStderr(),
			})
			app, err := server.New(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}
			return app.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", ":8000", "listen address (overrides APP_ADDR)")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error (overrides LOG_LEVEL)")
	cmd.Flags().StringVar(&opts.logFormat, "log-format", "json", "log format: json or text (overrides LOG_FORMAT)")
	return cmd
}
