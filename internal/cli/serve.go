package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/example/skylark/internal/adapters/httpapi"
	"github.com/example/skylark/internal/config"
	"github.com/example/skylark/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the dispatch HTTP API",
		Long: `Load the catalog and serve the dispatch API until interrupted.

Endpoints: POST /assign, GET /pilots, GET /drones,
POST /pilots/{id}/status, POST /reload.

Examples:
  skylark serve
  skylark serve --listen 0.0.0.0:9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			cfg := wire.Config()
			logger := newLogger(cfg.Log)
			slog.SetDefault(logger)

			resp, err := wire.LoadCatalog(ctx)
			if err != nil {
				return fmt.Errorf("failed to load catalog: %w", err)
			}
			logger.Info("catalog loaded",
				"pilots", resp.Pilots, "drones", resp.Drones, "missions", resp.Missions)

			addr, _ := cmd.Flags().GetString("listen")
			if addr == "" {
				addr = cfg.ListenAddr
			}

			srv := httpapi.NewServer(addr,
				wire.DispatchService(), wire.QueryService(), wire.RosterService(),
				httpapi.WithReload(wire.LoadCatalog),
				httpapi.WithLogger(logger),
			)
			if err := srv.Start(); err != nil {
				return fmt.Errorf("failed to start server: %w", err)
			}

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
			<-stop

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().String("listen", "", "Listen address (overrides config)")

	return cmd
}

func newLogger(lc config.LogConfig) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(lc.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if lc.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}
