package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking-system/internal/app"
	"github.com/metinatakli/cinema-booking-system/internal/events"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	if err := run(logger); err != nil {
		logger.Error("worker exited", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	_ = godotenv.Load()

	cfg, _, err := app.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	consumer, err := events.NewConsumer(cfg.Events, logger)
	if err != nil {
		return err
	}
	defer consumer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("consuming booking events", "broker", cfg.Events.Broker, "topic", cfg.Events.Topic)

	err = consumer.Run(ctx, events.AuditHandler(logger))
	if errors.Is(err, context.Canceled) {
		logger.Info("worker stopped")
		return nil
	}

	return err
}
