package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/finflow/finflow/infra"
	infrarepo "github.com/finflow/finflow/infra/repository"
	"github.com/finflow/finflow/pkg/catalog"
	"github.com/finflow/finflow/pkg/config"
	"github.com/finflow/finflow/pkg/service/account"
	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/finflow/finflow/pkg/service/category"
	"github.com/finflow/finflow/pkg/service/transaction"
	"github.com/finflow/finflow/pkg/service/user"
	"github.com/finflow/finflow/webapi"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	logger := slog.Default()
	cfg, err := config.LoadAppConfig(logger)
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := infra.Migrate(db, logger); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	uow := infrarepo.NewUoW(db)
	categorySvc := category.New(uow, logger)
	if _, err := categorySvc.Seed(context.Background(), catalog.SeedTier(cfg.Seed.Tier)); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}

	app := webapi.NewApp(webapi.Services{
		Auth:        auth.New(uow, cfg.Auth, logger),
		User:        user.New(uow, logger),
		Account:     account.New(uow, logger),
		Transaction: transaction.New(uow, logger),
		Category:    categorySvc,
	}, cfg.RateLimit)

	logger.Info("Starting server", "env", cfg.Env, "address", cfg.HTTP.Addr)
	return app.Listen(cfg.HTTP.Addr)
}
