package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/alexedwards/scs/goredisstore"
	"github.com/alexedwards/scs/v2"
	"github.com/exaring/otelpgx"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/metinatakli/cinema-booking-system/internal/events"
	"github.com/metinatakli/cinema-booking-system/internal/repository"
	"github.com/metinatakli/cinema-booking-system/internal/storage"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
	"github.com/metinatakli/cinema-booking-system/internal/vcs"
	"github.com/redis/go-redis/extra/redisotel/v9"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/bridges/otelslog"
)

const serviceName = "cinema-booking-api"

var (
	version = vcs.Version()
)

type Application struct {
	config         Config
	logger         *slog.Logger
	db             *pgxpool.Pool
	validator      *validator.Validate
	sessionManager *scs.SessionManager
	admin          domain.AdminCredentials
	metrics        *appMetrics

	hallRepo      domain.HallRepository
	movieRepo     domain.MovieRepository
	screeningRepo domain.ScreeningRepository
	bookingRepo   domain.BookingRepository

	posters   domain.PosterStore
	publisher events.Publisher

	wg sync.WaitGroup
}

func NewApp(
	cfg Config,
	logger *slog.Logger,
	db *pgxpool.Pool,
	validator *validator.Validate,
	sessionManager *scs.SessionManager,
	hallRepo domain.HallRepository,
	movieRepo domain.MovieRepository,
	screeningRepo domain.ScreeningRepository,
	bookingRepo domain.BookingRepository,
	posters domain.PosterStore,
	publisher events.Publisher) *Application {

	return &Application{
		config:         cfg,
		logger:         logger,
		db:             db,
		validator:      validator,
		sessionManager: sessionManager,
		admin: domain.AdminCredentials{
			Username:     cfg.Admin.Username,
			PasswordHash: []byte(cfg.Admin.PasswordHash),
		},
		metrics:       newAppMetrics(),
		hallRepo:      hallRepo,
		movieRepo:     movieRepo,
		screeningRepo: screeningRepo,
		bookingRepo:   bookingRepo,
		posters:       posters,
		publisher:     publisher,
	}
}

func Run() error {
	// a missing .env file is fine, flags and the real environment still apply
	_ = godotenv.Load()

	cfg, displayVersion, err := ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		return err
	}

	if displayVersion {
		fmt.Printf("Version:\t%s\n", version)
		os.Exit(0)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	app := &Application{config: cfg, logger: logger}

	shutdownTelemetry, err := app.InitTelemetry()
	if err != nil {
		return err
	}
	defer shutdownTelemetry(context.Background())

	if cfg.OtelCollectorUrl != "" {
		logger = slog.New(NewMultiHandler(logger.Handler(), otelslog.NewHandler(serviceName)))
	}

	if cfg.Admin.PasswordHash == "" {
		logger.Warn("admin password hash is not set, back-office login is disabled")
	}

	db, err := NewDatabasePool(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	redisClient, err := NewRedisClient(cfg)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	posters, err := storage.NewLocalPosterStore(cfg.Uploads.Dir, cfg.Uploads.URLPrefix, cfg.Uploads.MaxBytes)
	if err != nil {
		return err
	}

	publisher, err := events.NewPublisher(cfg.Events)
	if err != nil {
		return err
	}
	defer publisher.Close()

	app = NewApp(
		cfg,
		logger,
		db,
		appvalidator.NewValidator(),
		NewSessionManager(redisClient),
		repository.NewPostgresHallRepository(db),
		repository.NewPostgresMovieRepository(db),
		repository.NewPostgresScreeningRepository(db),
		repository.NewPostgresBookingRepository(db),
		posters,
		publisher,
	)

	return app.run()
}

func NewSessionManager(client *redis.Client) *scs.SessionManager {
	sessionManager := scs.New()

	sessionManager.Store = goredisstore.New(client)
	sessionManager.IdleTimeout = 30 * time.Minute
	sessionManager.Lifetime = 12 * time.Hour
	sessionManager.Cookie.Name = "session_id"
	sessionManager.Cookie.HttpOnly = true
	sessionManager.Cookie.SameSite = http.SameSiteLaxMode

	return sessionManager
}

func NewRedisClient(cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:            cfg.Redis.URL,
		MaxIdleConns:    cfg.Redis.MaxIdleConns,
		MaxActiveConns:  cfg.Redis.MaxOpenConns,
		ConnMaxIdleTime: cfg.Redis.MaxIdleTime,
	})

	err := redisotel.InstrumentTracing(rdb)
	if err != nil {
		rdb.Close()
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = rdb.Ping(ctx).Err()
	if err != nil {
		rdb.Close()
		return nil, err
	}

	return rdb, nil
}

func NewDatabasePool(cfg Config) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(cfg.DB.DSN)
	if err != nil {
		return nil, err
	}

	config.MaxConnIdleTime = cfg.DB.MaxIdleTime
	config.MaxConns = int32(cfg.DB.MaxOpenConns)
	config.ConnConfig.Tracer = otelpgx.NewTracer()

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = db.Ping(ctx)
	if err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Wait blocks until every background task, such as event publishing, has finished.
func (app *Application) Wait() {
	app.wg.Wait()
}

func (app *Application) run() error {
	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%d", app.config.Port),
		Handler:      app.Routes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(app.logger.Handler(), slog.LevelDebug),
	}

	shutdownError := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		app.logger.Info("shutting down server", "signal", s.String())

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		err := srv.Shutdown(ctx)
		if err != nil {
			shutdownError <- err
			return
		}

		app.logger.Info("completing background tasks", "addr", srv.Addr)

		app.Wait()
		shutdownError <- nil
	}()

	app.logger.Info(
		"starting server",
		"addr", srv.Addr,
		"env", app.config.Env,
		"booking_atomic", app.config.Booking.Atomic,
		"booking_strict_pricing", app.config.Booking.StrictPricing,
		"events_broker", app.config.Events.Broker,
	)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdownError
	if err != nil {
		return err
	}

	app.logger.Info("stopped server", "addr", srv.Addr)

	return nil
}
