package integration_test

import (
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/metinatakli/cinema-booking-system/internal/app"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/repository"
	"github.com/metinatakli/cinema-booking-system/internal/storage"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
)

type TestApp struct {
	App       *app.Application
	DB        *pgxpool.Pool
	Publisher *mocks.MockPublisher
}

func newTestApp(cfg app.Config) (*TestApp, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	validator := appvalidator.NewValidator()
	publisher := mocks.NewMockPublisher()

	db, err := app.NewDatabasePool(cfg)
	if err != nil {
		return nil, err
	}

	redisClient, err := app.NewRedisClient(cfg)
	if err != nil {
		db.Close()
		return nil, err
	}

	sessionManager := app.NewSessionManager(redisClient)

	posters, err := storage.NewLocalPosterStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.MaxBytes)
	if err != nil {
		db.Close()
		return nil, err
	}

	hallRepo := repository.NewPostgresHallRepository(db)
	movieRepo := repository.NewPostgresMovieRepository(db)
	screeningRepo := repository.NewPostgresScreeningRepository(db)
	bookingRepo := repository.NewPostgresBookingRepository(db)

	application := app.NewApp(
		cfg,
		logger,
		db,
		validator,
		sessionManager,
		hallRepo,
		movieRepo,
		screeningRepo,
		bookingRepo,
		posters,
		publisher,
	)

	return &TestApp{
		App:       application,
		DB:        db,
		Publisher: publisher,
	}, nil
}
