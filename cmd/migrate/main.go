package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	"github.com/google/subcommands"

	"investwelth/internal/config"
	"investwelth/internal/database"
	"investwelth/internal/logger"
	"investwelth/internal/seed"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	commander := subcommands.NewCommander(flag.CommandLine, "migrate")
	commander.Register(commander.HelpCommand(), "")
	commander.Register(&upCmd{}, "")
	commander.Register(&downCmd{}, "")
	commander.Register(&versionCmd{}, "")
	commander.Register(&seedCmd{}, "")
	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// withManager loads configuration, opens the database and runs fn.
func withManager(fn func(cfg *config.Config, m *database.Manager) error) subcommands.ExitStatus {
	cfg, err := config.Load()
	if err != nil {
		logger.Get().Errorf("failed to load config: %v", err)
		return subcommands.ExitFailure
	}
	m, err := database.NewManager(cfg.Database)
	if err != nil {
		logger.Get().Errorf("%v", err)
		return subcommands.ExitFailure
	}
	defer func() {
		if err := m.Close(); err != nil {
			logger.Get().Warnf("database close error: %v", err)
		}
	}()

	if err := fn(cfg, m); err != nil {
		logger.Get().Errorf("%v", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// withMigrator is withManager plus a golang-migrate instance.
func withMigrator(fn func(mig *migrate.Migrate) error) subcommands.ExitStatus {
	return withManager(func(cfg *config.Config, m *database.Manager) error {
		mig, err := m.Migrator(cfg.MigrationsPath)
		if err != nil {
			return err
		}
		defer database.CloseMigrator(mig)
		return fn(mig)
	})
}

type upCmd struct{}

func (*upCmd) Name() string           { return "up" }
func (*upCmd) Synopsis() string       { return "apply all pending migrations" }
func (*upCmd) Usage() string          { return "up\n" }
func (*upCmd) SetFlags(*flag.FlagSet) {}

func (*upCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withMigrator(func(mig *migrate.Migrate) error {
		if err := mig.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration up failed: %w", err)
		}
		logger.Get().Info("Migrations applied successfully")
		return nil
	})
}

type downCmd struct{}

func (*downCmd) Name() string           { return "down" }
func (*downCmd) Synopsis() string       { return "roll back migrations" }
func (*downCmd) Usage() string          { return "down [N]\n  Roll back N migrations (default 1).\n" }
func (*downCmd) SetFlags(*flag.FlagSet) {}

func (*downCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	steps := 1
	if f.NArg() > 0 {
		n, err := strconv.Atoi(f.Arg(0))
		if err != nil || n < 1 {
			fmt.Fprintf(os.Stderr, "invalid step count %q\n", f.Arg(0))
			return subcommands.ExitUsageError
		}
		steps = n
	}
	return withMigrator(func(mig *migrate.Migrate) error {
		if err := mig.Steps(-steps); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return fmt.Errorf("migration down failed: %w", err)
		}
		logger.Get().Infof("Rolled back %d migration(s)", steps)
		return nil
	})
}

type versionCmd struct{}

func (*versionCmd) Name() string           { return "version" }
func (*versionCmd) Synopsis() string       { return "print the current migration version" }
func (*versionCmd) Usage() string          { return "version\n" }
func (*versionCmd) SetFlags(*flag.FlagSet) {}

func (*versionCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withMigrator(func(mig *migrate.Migrate) error {
		version, dirty, err := mig.Version()
		if err != nil {
			return fmt.Errorf("failed to get version: %w", err)
		}
		logger.Get().Infof("Version: %d, Dirty: %v", version, dirty)
		return nil
	})
}

type seedCmd struct{}

func (*seedCmd) Name() string           { return "seed" }
func (*seedCmd) Synopsis() string       { return "load the demo dataset into an empty database" }
func (*seedCmd) Usage() string          { return "seed\n" }
func (*seedCmd) SetFlags(*flag.FlagSet) {}

func (*seedCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return withManager(func(_ *config.Config, m *database.Manager) error {
		return seed.Seed(ctx, m.DB())
	})
}
