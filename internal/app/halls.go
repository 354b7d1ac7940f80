package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

func (app *Application) ListHalls(w http.ResponseWriter, r *http.Request, params api.ListHallsParams) {
	filters := domain.HallFilters{
		ActiveOnly: params.Active != nil && *params.Active,
	}

	halls, err := app.hallRepo.GetAll(r.Context(), filters)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.HallResponse, len(halls))
	for i, hall := range halls {
		resp[i] = toHallResponse(hall)
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHall(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.CreateHallRequest

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

	hall := &domain.Hall{
		Name:          input.Name,
		Rows:          input.Rows,
		SeatsPerRow:   input.SeatsPerRow,
		Layout:        input.Layout,
		StandardPrice: domain.DefaultStandardPrice,
		VIPPrice:      domain.DefaultVIPPrice,
		IsActive:      true,
	}

	if input.StandardPrice != nil {
		hall.StandardPrice = *input.StandardPrice
	}
	if input.VIPPrice != nil {
		hall.VIPPrice = *input.VIPPrice
	}
	if input.IsActive != nil {
		hall.IsActive = *input.IsActive
	}

	if err := hall.Validate(); err != nil {
		app.fieldErrorsResponse(w, r, api.ValidationError{Field: "layout", Issue: err.Error()})
		return
	}

	err = app.hallRepo.Create(r.Context(), hall)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	logger.Info("cinema hall created", "hall_id", hall.ID)

	err = app.writeJSON(w, http.StatusCreated, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHall(w http.ResponseWriter, r *http.Request, id int) {
	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// PatchHall applies a partial update. Absent fields keep their values.
func (app *Application) PatchHall(w http.ResponseWriter, r *http.Request, id int) {
	app.UpdateHall(w, r, id)
}

func (app *Application) UpdateHall(w http.ResponseWriter, r *http.Request, id int) {
	var input api.UpdateHallRequest

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

	hall, err := app.hallRepo.GetById(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if input.Name != nil {
		hall.Name = *input.Name
	}
	if input.Rows != nil {
		hall.Rows = *input.Rows
	}
	if input.SeatsPerRow != nil {
		hall.SeatsPerRow = *input.SeatsPerRow
	}
	if input.Layout != nil {
		hall.Layout = *input.Layout
		hall.LayoutMalformed = false
	}
	if input.StandardPrice != nil {
		hall.StandardPrice = *input.StandardPrice
	}
	if input.VIPPrice != nil {
		hall.VIPPrice = *input.VIPPrice
	}
	if input.IsActive != nil {
		hall.IsActive = *input.IsActive
	}

	if err := hall.Validate(); err != nil {
		app.fieldErrorsResponse(w, r, api.ValidationError{Field: "layout", Issue: err.Error()})
		return
	}

	err = app.hallRepo.Update(r.Context(), hall)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toHallResponse(hall), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// DeleteHall removes the hall together with its screenings and their bookings.
func (app *Application) DeleteHall(w http.ResponseWriter, r *http.Request, id int) {
	logger := app.contextGetLogger(r)

	err := app.hallRepo.Delete(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	logger.Info("cinema hall deleted", "hall_id", id)

	err = app.writeMessage(w, http.StatusOK, "Cinema hall deleted successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toHallResponse(hall *domain.Hall) api.HallResponse {
	return api.HallResponse{
		Id:            hall.ID,
		Name:          hall.Name,
		Rows:          hall.Rows,
		SeatsPerRow:   hall.SeatsPerRow,
		Layout:        hall.Layout,
		StandardPrice: hall.StandardPrice,
		VIPPrice:      hall.VIPPrice,
		IsActive:      hall.IsActive,
		CreatedAt:     hall.CreatedAt,
		UpdatedAt:     hall.UpdatedAt,
	}
}
