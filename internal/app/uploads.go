package app

import (
	"errors"
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const (
	posterFormField = "poster"

	// multipart framing allowance on top of the file limit
	multipartOverhead = 1 << 20
)

func (app *Application) UploadPoster(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	maxBytes := app.config.Uploads.MaxBytes

	r.Body = http.MaxBytesReader(w, r.Body, maxBytes+multipartOverhead)

	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		var maxBytesErr *http.MaxBytesError

		switch {
		case errors.As(err, &maxBytesErr):
			app.uploadErrorResponse(w, r, domain.ErrUploadTooLarge)
		default:
			app.badRequestResponse(w, r, errors.New("request must be a multipart form"))
		}

		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(posterFormField)
	if err != nil {
		app.fieldErrorsResponse(w, r, api.ValidationError{Field: posterFormField, Issue: "is required"})
		return
	}
	defer file.Close()

	url, err := app.posters.Save(r.Context(), header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnsupportedUpload), errors.Is(err, domain.ErrUploadTooLarge):
			logger.Warn("poster rejected", "filename", header.Filename, "size", header.Size, "error", err)
			app.uploadErrorResponse(w, r, err)
		default:
			logger.Error("failed to store poster", "error", err)
			app.errorResponse(w, r, http.StatusInternalServerError, ErrUploadFailed)
		}

		return
	}

	logger.Info("poster uploaded", "url", url, "size", header.Size)

	err = app.writeJSON(w, http.StatusCreated, api.UploadPosterResponse{Url: url}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) uploadErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.fieldErrorsResponse(w, r, api.ValidationError{Field: posterFormField, Issue: err.Error()})
}
