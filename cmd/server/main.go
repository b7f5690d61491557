// Command server runs the wanderlist REST backend.
//
// Configuration is layered: built-in defaults, an optional YAML file
// (-config flag, WANDERLIST_CONFIG env, ./config.yaml), then environment
// variable overrides:
//
//	WANDERLIST_JWT_SECRET - token signing secret (required)
//	WANDERLIST_PORT       - listen port (default: 8080)
//	WANDERLIST_STORAGE    - storage type: "memory" or "postgres" (default: "memory")
//	WANDERLIST_DSN        - PostgreSQL connection string (for storage=postgres)
//	WANDERLIST_TOKEN_TTL  - session token lifetime (default: 1h)
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/wanderlist-dev/wanderlist/pkg/account"
	"github.com/wanderlist-dev/wanderlist/pkg/auth"
	"github.com/wanderlist-dev/wanderlist/pkg/auth/token"
	"github.com/wanderlist-dev/wanderlist/pkg/config"
	"github.com/wanderlist-dev/wanderlist/pkg/storage"
	"github.com/wanderlist-dev/wanderlist/pkg/storage/memory"
	"github.com/wanderlist-dev/wanderlist/pkg/storage/postgres"
	transporthttp "github.com/wanderlist-dev/wanderlist/pkg/transport/http"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	// Token service. A missing secret already failed validation, so this
	// only guards against programming errors.
	tokens, err := token.NewService(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	if err != nil {
		return fmt.Errorf("creating token service: %w", err)
	}

	// Storage.
	var store storage.Store
	switch cfg.Storage.Type {
	case "postgres":
		pg, err := postgres.New(context.Background(), postgres.Config{
			DSN:            cfg.Storage.Postgres.DSN,
			MaxConns:       cfg.Storage.Postgres.MaxConns,
			MigrateOnStart: cfg.Storage.Postgres.MigrateOnStart,
		})
		if err != nil {
			return fmt.Errorf("creating postgres store: %w", err)
		}
		defer pg.Close()
		store = pg
		slog.Info("storage enabled", "type", "postgres")
	default:
		store = memory.New()
		slog.Info("storage enabled", "type", "memory")
	}

	accounts := account.NewService(store, tokens)

	chain := &auth.Chain{
		Authenticators: []auth.Authenticator{token.NewAuthenticator(tokens)},
	}

	adapter := transporthttp.NewAdapter(accounts, store, transporthttp.DefaultConfig())

	srv := transporthttp.NewServer(adapter, chain,
		transporthttp.WithAddr(fmt.Sprintf(":%d", cfg.Server.Port)),
		transporthttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithMetrics(cfg.Observability.Metrics.Enabled, cfg.Observability.Metrics.Path),
	)

	return srv.ListenAndServe()
}
