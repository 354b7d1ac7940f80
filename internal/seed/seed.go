// Package seed loads YAML fixtures of halls, movies and screenings into the
// store through the regular repositories.
package seed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type Fixture struct {
	Halls      []HallFixture      `yaml:"halls" validate:"dive"`
	Movies     []MovieFixture     `yaml:"movies" validate:"dive"`
	Screenings []ScreeningFixture `yaml:"screenings" validate:"dive"`
}

type HallFixture struct {
	Name          string  `yaml:"name" validate:"required,max=255"`
	Rows          int     `yaml:"rows" validate:"required,min=1,max=20"`
	SeatsPerRow   int     `yaml:"seats_per_row" validate:"required,min=1,max=15"`
	StandardPrice *string `yaml:"standard_price"`
	VIPPrice      *string `yaml:"vip_price"`
	Inactive      bool    `yaml:"inactive"`
	// Layout rows hold either bare seat types or {type, price} maps.
	Layout [][]any `yaml:"layout"`
}

type MovieFixture struct {
	Title     string  `yaml:"title" validate:"required,max=255"`
	PosterUrl *string `yaml:"poster_url"`
	Synopsis  string  `yaml:"synopsis" validate:"required"`
	Duration  int     `yaml:"duration" validate:"required,min=1"`
	Origin    string  `yaml:"origin" validate:"required,max=255"`
}

// ScreeningFixture refers to its movie by title and its hall by name.
type ScreeningFixture struct {
	Movie     string `yaml:"movie" validate:"required"`
	Hall      string `yaml:"hall" validate:"required"`
	Date      string `yaml:"date" validate:"required"`
	StartTime string `yaml:"start_time" validate:"required,time_of_day"`
}

type Repositories struct {
	Halls      domain.HallRepository
	Movies     domain.MovieRepository
	Screenings domain.ScreeningRepository
}

type Result struct {
	Halls      int
	Movies     int
	Screenings int
	Skipped    int
}

// Load decodes and validates a fixture. Unknown keys are rejected.
func Load(r io.Reader, v *validator.Validate) (*Fixture, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}

		return nil, fmt.Errorf("decode fixture: %w", err)
	}

	if err := v.Struct(f); err != nil {
		return nil, fmt.Errorf("invalid fixture: %w", err)
	}

	return &f, nil
}

func (h HallFixture) toDomain() (*domain.Hall, error) {
	hall := &domain.Hall{
		Name:          h.Name,
		Rows:          h.Rows,
		SeatsPerRow:   h.SeatsPerRow,
		StandardPrice: domain.DefaultStandardPrice,
		VIPPrice:      domain.DefaultVIPPrice,
		IsActive:      !h.Inactive,
	}

	var err error

	if h.StandardPrice != nil {
		if hall.StandardPrice, err = decimal.NewFromString(*h.StandardPrice); err != nil {
			return nil, fmt.Errorf("hall %q: standard_price: %w", h.Name, err)
		}
		if !domain.ValidPrice(hall.StandardPrice) {
			return nil, fmt.Errorf("hall %q: standard_price: %w", h.Name, domain.ErrInvalidPrice)
		}
	}
	if h.VIPPrice != nil {
		if hall.VIPPrice, err = decimal.NewFromString(*h.VIPPrice); err != nil {
			return nil, fmt.Errorf("hall %q: vip_price: %w", h.Name, err)
		}
		if !domain.ValidPrice(hall.VIPPrice) {
			return nil, fmt.Errorf("hall %q: vip_price: %w", h.Name, domain.ErrInvalidPrice)
		}
	}

	if h.Layout != nil {
		raw, err := json.Marshal(h.Layout)
		if err != nil {
			return nil, fmt.Errorf("hall %q: layout: %w", h.Name, err)
		}

		if hall.Layout, err = domain.ParseLayout(raw); err != nil {
			return nil, fmt.Errorf("hall %q: layout: %w", h.Name, err)
		}

		for _, row := range hall.Layout {
			for _, cell := range row {
				if !cell.Type.Valid() {
					return nil, fmt.Errorf("hall %q: unknown seat type %q", h.Name, cell.Type)
				}
				if cell.Price != nil && !domain.ValidPrice(*cell.Price) {
					return nil, fmt.Errorf("hall %q: seat price: %w", h.Name, domain.ErrInvalidPrice)
				}
			}
		}
	}

	if err := hall.Validate(); err != nil {
		return nil, fmt.Errorf("hall %q: %w", h.Name, err)
	}

	return hall, nil
}

// Apply inserts the fixture in dependency order. Screenings whose slot is
// already taken are skipped so a fixture can be applied more than once.
func Apply(ctx context.Context, repos Repositories, f *Fixture, logger *slog.Logger) (Result, error) {
	var res Result

	hallIDs := make(map[string]int, len(f.Halls))
	for _, h := range f.Halls {
		hall, err := h.toDomain()
		if err != nil {
			return res, err
		}

		if err := repos.Halls.Create(ctx, hall); err != nil {
			return res, fmt.Errorf("create hall %q: %w", h.Name, err)
		}

		hallIDs[h.Name] = hall.ID
		res.Halls++

		logger.Info("hall created", "hall_id", hall.ID, "name", hall.Name)
	}

	movieIDs := make(map[string]int, len(f.Movies))
	for _, m := range f.Movies {
		movie := &domain.Movie{
			Title:     m.Title,
			PosterUrl: m.PosterUrl,
			Synopsis:  m.Synopsis,
			Duration:  m.Duration,
			Origin:    m.Origin,
		}

		if err := repos.Movies.Create(ctx, movie); err != nil {
			return res, fmt.Errorf("create movie %q: %w", m.Title, err)
		}

		movieIDs[m.Title] = movie.ID
		res.Movies++

		logger.Info("movie created", "movie_id", movie.ID, "title", movie.Title)
	}

	for _, s := range f.Screenings {
		movieID, ok := movieIDs[s.Movie]
		if !ok {
			return res, fmt.Errorf("screening references unknown movie %q", s.Movie)
		}

		hallID, ok := hallIDs[s.Hall]
		if !ok {
			return res, fmt.Errorf("screening references unknown hall %q", s.Hall)
		}

		date, err := time.Parse(domain.DateFormat, s.Date)
		if err != nil {
			return res, fmt.Errorf("screening date %q: %w", s.Date, err)
		}

		screening := &domain.Screening{
			MovieID:   movieID,
			HallID:    hallID,
			Date:      date,
			StartTime: s.StartTime,
		}

		err = repos.Screenings.Create(ctx, screening)
		if errors.Is(err, domain.ErrScheduleConflict) {
			logger.Warn("screening slot already taken", "hall", s.Hall, "date", s.Date, "start_time", s.StartTime)
			res.Skipped++
			continue
		}
		if err != nil {
			return res, fmt.Errorf("create screening: %w", err)
		}

		res.Screenings++
	}

	return res, nil
}
