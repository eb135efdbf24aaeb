package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/buildlens/buildlens/internal/server"
	"github.com/buildlens/buildlens/pkg/config"
)

// ServeOptions holds command-line options for the serve command.
type ServeOptions struct {
	Addr       string
	ConfigFile string
}

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	opts := &ServeOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the buildlens HTTP API",
		Long: `Start the HTTP API server.

Endpoints:
  POST /api/analyze   Analyze a build log
  GET  /api/formats   List recognized log formats
  GET  /health        Liveness check
  GET  /metrics       Prometheus metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Addr, "addr", "", "Listen address (overrides config)")
	cmd.Flags().StringVarP(&opts.ConfigFile, "config", "c", "", "Config file")

	return cmd
}

func runServe(cmd *cobra.Command, opts *ServeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := config.Load(ctx, opts.ConfigFile)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Server.Addr = opts.Addr
	}

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return server.Run(ctx, cfg)
}
