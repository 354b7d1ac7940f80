package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
	"github.com/oapi-codegen/runtime/types"
)

const ErrMissingReference = "The referenced movie or cinema hall does not exist"

func (app *Application) ListScreenings(w http.ResponseWriter, r *http.Request, params api.ListScreeningsParams) {
	err := app.validator.Struct(params)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	var filters domain.ScreeningFilters

	if params.Date != nil {
		filters.Date = &params.Date.Time
	}
	if params.MovieId != nil {
		filters.MovieID = *params.MovieId
	}
	if params.HallId != nil {
		filters.HallID = *params.HallId
	}

	screenings, err := app.screeningRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.ScreeningResponse, len(screenings))
	for i, screening := range screenings {
		resp[i] = toScreeningResponse(screening)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateScreening(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateScreeningRequest

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

	screening := &domain.Screening{
		MovieID:   input.MovieId,
		HallID:    input.CinemaHallId,
		Date:      input.Date.Time,
		StartTime: input.StartTime,
	}

	if !app.prepareScreeningWrite(w, r, screening) {
		return
	}

	err = app.screeningRepo.Create(r.Context(), screening)
	if err != nil {
		app.handleScreeningWriteError(w, r, screening, err)
		return
	}

	logger.Info(
		"screening created",
		"screening_id", screening.ID,
		"hall_id", screening.HallID,
		"date", screening.Date.Format(domain.DateFormat),
		"start_time", screening.StartTime,
	)

	err = app.writeJSON(w, http.StatusCreated, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetScreening(w http.ResponseWriter, r *http.Request, id int) {
	screening, ok := app.findScreening(w, r, id)
	if !ok {
		return
	}

	err := app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) PatchScreening(w http.ResponseWriter, r *http.Request, id int) {
	app.UpdateScreening(w, r, id)
}

func (app *Application) UpdateScreening(w http.ResponseWriter, r *http.Request, id int) {
	var input api.UpdateScreeningRequest

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

	screening, ok := app.findScreening(w, r, id)
	if !ok {
		return
	}

	if input.MovieId != nil {
		screening.MovieID = *input.MovieId
	}
	if input.CinemaHallId != nil {
		screening.HallID = *input.CinemaHallId
	}
	if input.Date != nil {
		screening.Date = input.Date.Time
	}
	if input.StartTime != nil {
		screening.StartTime = *input.StartTime
	}

	if !app.prepareScreeningWrite(w, r, screening) {
		return
	}

	err = app.screeningRepo.Update(r.Context(), screening)
	if err != nil {
		app.handleScreeningWriteError(w, r, screening, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toScreeningResponse(screening), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) DeleteScreening(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	err := app.screeningRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("screening deleted", "screening_id", id)

	err = app.writeMessage(w, http.StatusOK, "Screening deleted successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// GetBookedSeats lists the seat identifiers held by confirmed bookings of the screening.
func (app *Application) GetBookedSeats(w http.ResponseWriter, r *http.Request, id int) {
	if _, ok := app.findScreening(w, r, id); !ok {
		return
	}

	seats, err := app.bookingRepo.GetBookedSeats(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if seats == nil {
		seats = []string{}
	}

	err = app.writeJSON(w, http.StatusOK, seats, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetSeatMap(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	screening, ok := app.findScreening(w, r, id)
	if !ok {
		return
	}

	hall, err := app.hallRepo.GetById(r.Context(), screening.HallID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	booked, err := app.bookingRepo.GetBookedSeats(r.Context(), id)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	grid := domain.ResolveSeatGrid(hall, booked)
	if grid.State == domain.GridNotConfigured {
		logger.Warn("seat layout not configured for hall", "hall_id", hall.ID, "layout_malformed", hall.LayoutMalformed)
	}

	resp := api.SeatMapResponse{
		ScreeningId: id,
		HallId:      hall.ID,
		State:       string(grid.State),
		BookedCount: len(booked),
		Rows:        toSeatRows(grid),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// canScheduleScreening reports whether the exact hall, date and start time
// slot is free. Screenings are not checked for overlapping durations.
func (app *Application) canScheduleScreening(
	ctx context.Context,
	hallID int,
	date time.Time,
	startTime string,
	excludeID int) (bool, error) {

	taken, err := app.screeningRepo.SlotTaken(ctx, hallID, date, startTime, excludeID)
	if err != nil {
		return false, err
	}

	return !taken, nil
}

// prepareScreeningWrite verifies the referenced movie and hall and the free
// slot, filling the read-only fields of screening. It writes the error
// response itself and reports whether the write may proceed.
func (app *Application) prepareScreeningWrite(w http.ResponseWriter, r *http.Request, screening *domain.Screening) bool {
	var fieldErrs []api.ValidationError

	movie, err := app.movieRepo.GetById(r.Context(), screening.MovieID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		fieldErrs = append(fieldErrs, api.ValidationError{Field: "movie_id", Issue: ErrDoesNotExist})
	case err != nil:
		app.serverErrorResponse(w, r, err)
		return false
	}

	hall, err := app.hallRepo.GetById(r.Context(), screening.HallID)
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		fieldErrs = append(fieldErrs, api.ValidationError{Field: "cinema_hall_id", Issue: ErrDoesNotExist})
	case err != nil:
		app.serverErrorResponse(w, r, err)
		return false
	}

	if len(fieldErrs) > 0 {
		app.fieldErrorsResponse(w, r, fieldErrs...)
		return false
	}

	ok, err := app.canScheduleScreening(r.Context(), screening.HallID, screening.Date, screening.StartTime, screening.ID)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return false
	}

	if !ok {
		app.scheduleConflictResponse(w, r, screening)
		return false
	}

	screening.MovieTitle = movie.Title
	screening.MovieDuration = movie.Duration
	screening.HallName = hall.Name

	return true
}

func (app *Application) handleScreeningWriteError(w http.ResponseWriter, r *http.Request, screening *domain.Screening, err error) {
	switch {
	case errors.Is(err, domain.ErrScheduleConflict):
		app.scheduleConflictResponse(w, r, screening)
	case errors.Is(err, domain.ErrReferenceNotFound):
		app.conflictResponse(w, r, ErrMissingReference)
	case errors.Is(err, domain.ErrRecordNotFound):
		app.notFoundResponse(w, r)
	default:
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) scheduleConflictResponse(w http.ResponseWriter, r *http.Request, screening *domain.Screening) {
	app.metrics.scheduleConflicts.Add(r.Context(), 1)

	app.contextGetLogger(r).Warn(
		"screening slot already taken",
		"hall_id", screening.HallID,
		"date", screening.Date.Format(domain.DateFormat),
		"start_time", screening.StartTime,
	)

	app.conflictResponse(w, r, ErrScheduleConflict)
}

func (app *Application) findScreening(w http.ResponseWriter, r *http.Request, id int) (*domain.Screening, bool) {
	screening, err := app.screeningRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return nil, false
	}

	return screening, true
}

func toScreeningResponse(screening *domain.Screening) api.ScreeningResponse {
	resp := api.ScreeningResponse{
		Id:           screening.ID,
		MovieId:      screening.MovieID,
		CinemaHallId: screening.HallID,
		Date:         types.Date{Time: screening.Date},
		StartTime:    screening.StartTime,
	}

	if screening.MovieTitle != "" {
		resp.Movie = &api.ScreeningMovie{
			Id:       screening.MovieID,
			Title:    screening.MovieTitle,
			Duration: screening.MovieDuration,
		}
	}

	if screening.HallName != "" {
		resp.CinemaHall = &api.ScreeningHall{
			Id:   screening.HallID,
			Name: screening.HallName,
		}
	}

	return resp
}

func toSeatRows(grid domain.SeatGrid) [][]api.SeatView {
	rows := make([][]api.SeatView, len(grid.Rows))

	for i, row := range grid.Rows {
		seats := make([]api.SeatView, len(row))

		for j, seat := range row {
			seats[j] = api.SeatView{
				Type:   string(seat.Type),
				Row:    seat.Row,
				Number: seat.Number,
				Price:  seat.Price,
			}
		}

		rows[i] = seats
	}

	return rows
}
