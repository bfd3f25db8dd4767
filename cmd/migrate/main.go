package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/nando-castro/api-financas/internal/config"
	"github.com/nando-castro/api-financas/internal/database"
)

const usage = "usage: migrate <up|down [steps]|status|seed>"

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	runner := database.NewMigrationRunner(db, cfg.Database.MigrationsPath, cfg.Database.SeedsPath)
	if err := runner.WaitForDatabase(); err != nil {
		logger.Error("database not reachable", "error", err)
		os.Exit(1)
	}

	if err := run(runner, os.Args[1:]); err != nil {
		logger.Error("migrate failed", "command", os.Args[1], "error", err)
		os.Exit(1)
	}
}

func run(runner *database.MigrationRunner, args []string) error {
	switch args[0] {
	case "up":
		return runner.RunMigrations()
	case "down":
		steps := 1
		if len(args) > 1 {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid steps %q: %w", args[1], err)
			}
			steps = n
		}
		return runner.Down(steps)
	case "status":
		version, dirty, err := runner.GetMigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)
		return nil
	case "seed":
		return runner.LoadSeeds()
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}
