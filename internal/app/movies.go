package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const DefaultMovieSort = "title"

func (app *Application) ListMovies(w http.ResponseWriter, r *http.Request, params api.ListMoviesParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movies, err := app.movieRepo.GetAll(r.Context(), toMovieFilters(params))
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.MovieResponse, len(movies))
	for i, movie := range movies {
		resp[i] = toMovieResponse(movie)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieFilters(params api.ListMoviesParams) domain.MovieFilters {
	filters := domain.MovieFilters{
		Sort: DefaultMovieSort,
	}

	if params.Term != nil {
		filters.Term = *params.Term
	}
	if params.Sort != nil {
		filters.Sort = *params.Sort
	}

	return filters
}

func (app *Application) CreateMovie(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie := &domain.Movie{
		Title:     input.Title,
		PosterUrl: input.PosterUrl,
		Synopsis:  input.Synopsis,
		Duration:  input.Duration,
		Origin:    input.Origin,
	}

	err = app.movieRepo.Create(r.Context(), movie)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("movie created", "movie_id", movie.ID)

	err = app.writeJSON(w, http.StatusCreated, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetMovie(w http.ResponseWriter, r *http.Request, id int) {
	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PatchMovie(w http.ResponseWriter, r *http.Request, id int) {
	app.UpdateMovie(w, r, id)
}

func (app *Application) UpdateMovie(w http.ResponseWriter, r *http.Request, id int) {
	var input api.UpdateMovieRequest

	err := app.readJSON(w, r, &input)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(input)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	movie, err := app.movieRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.Title != nil {
		movie.Title = *input.Title
	}
	if input.PosterUrl != nil {
		movie.PosterUrl = input.PosterUrl
	}
	if input.Synopsis != nil {
		movie.Synopsis = *input.Synopsis
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Origin != nil {
		movie.Origin = *input.Origin
	}

	err = app.movieRepo.Update(r.Context(), movie)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toMovieResponse(movie), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteMovie(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	err := app.movieRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("movie deleted", "movie_id", id)

	err = app.writeMessage(w, http.StatusOK, "Movie deleted successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toMovieResponse(movie *domain.Movie) api.MovieResponse {
	return api.MovieResponse{
		Id:        movie.ID,
		Title:     movie.Title,
		PosterUrl: movie.PosterUrl,
		Synopsis:  movie.Synopsis,
		Duration:  movie.Duration,
		Origin:    movie.Origin,
		CreatedAt: movie.CreatedAt,
		UpdatedAt: movie.UpdatedAt,
	}
}
