package main

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/cobra"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/linoMlv/abacus/internal/api"
	"github.com/linoMlv/abacus/internal/auth"
	"github.com/linoMlv/abacus/internal/config"
	"github.com/linoMlv/abacus/internal/observability"
	"github.com/linoMlv/abacus/internal/service"
	"github.com/linoMlv/abacus/internal/storage/sqlite"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the ledger HTTP server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			store, err := sqlite.New(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("failed to initialize storage: %w", err)
			}
			defer store.Close()
			slog.Info("storage initialized", "database", cfg.DBPath)

			logger := slog.Default()
			jwtManager := auth.NewJWTManager(cfg.Secret, cfg.TokenTTL())
			authService := service.NewAuthService(store, jwtManager, logger)
			ledgerService := service.NewLedgerService(store, logger)
			metrics := observability.NewMetrics()

			server := api.NewServer(authService, ledgerService, jwtManager, store, metrics)
			server.StaticDir = cfg.StaticDir
			server.CORSOrigins = cfg.CORSOrigins

			// h2c allows HTTP/2 without TLS behind a terminating proxy.
			handler := h2c.NewHandler(server.Handler(), &http2.Server{})

			slog.Info("server starting", "addr", cfg.Addr)
			if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
				return fmt.Errorf("server failed: %w", err)
			}
			return nil
		},
	}
}
