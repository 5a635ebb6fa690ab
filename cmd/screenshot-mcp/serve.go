package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"
	"github.com/spf13/cobra"
	"github.com/tkuutti/screenshot-mcp/mcp"
)

func serveCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the tools over MCP stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := f.load()
			if err != nil {
				return err
			}

			d, err := newDispatcher(cfg)
			if err != nil {
				return err
			}

			srv, err := mcp.New(cfg.ServiceName, version, d)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.KV(xlog.INFO,
				"status", "starting",
				"service", cfg.ServiceName,
				"version", version,
				"tools", len(d.Tools()),
			)

			err = srv.Listen(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil && !errors.Is(err, context.Canceled) {
				logger.KV(xlog.ERROR, "status", "stopped", "err", err.Error())
				return err
			}
			logger.KV(xlog.INFO, "status", "stopped")
			return nil
		},
	}
}
