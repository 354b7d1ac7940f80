package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking-system/internal/app"
	"github.com/metinatakli/cinema-booking-system/internal/repository"
	"github.com/metinatakli/cinema-booking-system/internal/seed"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	_ = godotenv.Load()

	fs := flag.NewFlagSet("seed", flag.ContinueOnError)

	fixturePath := fs.String("fixture", "seed.yaml", "YAML fixture to load")
	runMigrations := fs.Bool("migrate", false, "Apply pending migrations before seeding")
	migrationsURL := fs.String("migrations", "file://migrations", "Migration source URL")

	cfg, _, err := app.ParseConfig(fs, os.Args[1:])
	if err != nil {
		return err
	}

	if *runMigrations {
		if err := seed.Migrate(cfg.DB.DSN, *migrationsURL); err != nil {
			return err
		}

		logger.Info("migrations applied", "source", *migrationsURL)
	}

	file, err := os.Open(*fixturePath)
	if err != nil {
		return fmt.Errorf("open fixture: %w", err)
	}
	defer file.Close()

	fixture, err := seed.Load(file, validator.NewValidator())
	if err != nil {
		return err
	}

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	res, err := seed.Apply(ctx, seed.Repositories{
		Halls:      repository.NewPostgresHallRepository(db),
		Movies:     repository.NewPostgresMovieRepository(db),
		Screenings: repository.NewPostgresScreeningRepository(db),
	}, fixture, logger)
	if err != nil {
		return err
	}

	logger.Info("fixture loaded",
		"halls", res.Halls,
		"movies", res.Movies,
		"screenings", res.Screenings,
		"skipped", res.Skipped,
	)

	return nil
}
