package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/fatih/color"
	"github.com/finflow/finflow/infra"
	infrarepo "github.com/finflow/finflow/infra/repository"
	"github.com/finflow/finflow/pkg/catalog"
	"github.com/finflow/finflow/pkg/config"
	"github.com/finflow/finflow/pkg/service/auth"
	"github.com/finflow/finflow/pkg/service/category"
	"github.com/finflow/finflow/pkg/service/user"
	"golang.org/x/term"
	"gorm.io/gorm"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: cli <command> [arguments]")
		fmt.Println("Commands: migrate, seed [extended], create-user <name> <email>, purge-sessions")
		return
	}
	cmd := os.Args[1]

	logger := slog.Default()
	cfg, err := config.LoadAppConfig(logger)
	if err != nil {
		color.Red("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		color.Red("Failed to connect to database: %v", err)
		os.Exit(1)
	}

	ctx := context.Background()
	switch cmd {
	case "migrate":
		if err := infra.Migrate(db, logger); err != nil {
			color.Red("Migration failed: %v", err)
			os.Exit(1)
		}
		color.Green("Migration complete")
	case "seed":
		runSeed(ctx, db, logger)
	case "create-user":
		runCreateUser(ctx, db, logger)
	case "purge-sessions":
		runPurgeSessions(ctx, db, cfg, logger)
	default:
		fmt.Println("Unknown command:", cmd)
		os.Exit(1)
	}
}

func runSeed(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	tier := catalog.SeedTierDefault
	if len(os.Args) > 2 && (os.Args[2] == "extended" || os.Args[2] == "-extended") {
		tier = catalog.SeedTierExtended
	}
	svc := category.New(infrarepo.NewUoW(db), logger)
	created, err := svc.Seed(ctx, tier)
	if err != nil {
		color.Red("Seeding failed: %v", err)
		os.Exit(1)
	}
	color.Green("Seeded %d categories (tier %s)", created, tier)
}

func runCreateUser(ctx context.Context, db *gorm.DB, logger *slog.Logger) {
	if len(os.Args) < 4 {
		fmt.Println("Usage: create-user <name> <email>")
		os.Exit(1)
	}
	name, email := os.Args[2], os.Args[3]
	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		color.Red("Failed to read password: %v", err)
		os.Exit(1)
	}
	svc := user.New(infrarepo.NewUoW(db), logger)
	u, err := svc.CreateUser(ctx, name, email, string(password))
	if err != nil {
		color.Red("Failed to create user: %v", err)
		os.Exit(1)
	}
	color.Green("User created: ID=%s Email=%s", u.ID, u.Email)
}

func runPurgeSessions(ctx context.Context, db *gorm.DB, cfg *config.AppConfig, logger *slog.Logger) {
	svc := auth.New(infrarepo.NewUoW(db), cfg.Auth, logger)
	n, err := svc.PurgeExpiredSessions(ctx)
	if err != nil {
		color.Red("Failed to purge sessions: %v", err)
		os.Exit(1)
	}
	color.Green("Purged %d expired sessions", n)
}
