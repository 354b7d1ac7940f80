package app

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-booking-system/api"
	appvalidator "github.com/metinatakli/cinema-booking-system/internal/validator"
)

const (
	ErrInternalServer     = "The server encountered a problem and could not process your request"
	ErrNotFound           = "The requested resource not found"
	ErrMethodNotAllowed   = "The requested method is not supported for this resource"
	ErrFailedValidation   = "One or more fields are invalid"
	ErrUnauthorizedAccess = "You must be logged in as an administrator to access this resource"
	ErrInvalidCredentials = "Invalid username or password"
	ErrScheduleConflict   = "This hall is already booked for the selected time"
	ErrUploadFailed       = "The file could not be stored"
	ErrDoesNotExist       = "does not exist"
)

func (app *Application) logError(r *http.Request, err error) {
	app.contextGetLogger(r).Error(err.Error())
}

// errorResponse sends a failure envelope with the given status code.
func (app *Application) errorResponse(w http.ResponseWriter, r *http.Request, status int, message string) {
	resp := api.Response{
		Success:   false,
		Message:   message,
		RequestId: middleware.GetReqID(r.Context()),
	}

	err := app.writeEnvelope(w, status, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func (app *Application) serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.logError(r, err)

	app.errorResponse(w, r, http.StatusInternalServerError, ErrInternalServer)
}

func (app *Application) notFoundResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusNotFound, ErrNotFound)
}

func (app *Application) methodNotAllowedResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusMethodNotAllowed, ErrMethodNotAllowed)
}

func (app *Application) badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	app.errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func (app *Application) unauthorizedAccessResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrUnauthorizedAccess)
}

func (app *Application) invalidCredentialsResponse(w http.ResponseWriter, r *http.Request) {
	app.errorResponse(w, r, http.StatusUnauthorized, ErrInvalidCredentials)
}

// conflictResponse reports a schedule or seat collision. Collisions are caller
// input problems and share the validation status code.
func (app *Application) conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	app.errorResponse(w, r, http.StatusUnprocessableEntity, message)
}

func (app *Application) failedValidationResponse(w http.ResponseWriter, r *http.Request, err error) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		app.serverErrorResponse(w, r, err)
		return
	}

	fieldErrs := make([]api.ValidationError, len(validationErrs))
	for i, fe := range validationErrs {
		fieldErrs[i] = api.ValidationError{
			Field: fieldPath(fe),
			Issue: appvalidator.ValidationMessage(fe),
		}
	}

	app.fieldErrorsResponse(w, r, fieldErrs...)
}

// fieldErrorsResponse sends a 422 carrying field level issues found outside
// the struct validator, such as references to missing records.
func (app *Application) fieldErrorsResponse(w http.ResponseWriter, r *http.Request, fieldErrs ...api.ValidationError) {
	resp := api.Response{
		Success:   false,
		Message:   ErrFailedValidation,
		Errors:    fieldErrs,
		RequestId: middleware.GetReqID(r.Context()),
	}

	err := app.writeEnvelope(w, http.StatusUnprocessableEntity, resp, nil)
	if err != nil {
		app.logError(r, err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

// fieldPath strips the top level struct name from the namespace,
// "CreateBookingRequest.seats[0]" becomes "seats[0]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()

	for i := 0; i < len(ns); i++ {
		if ns[i] == '.' {
			return ns[i+1:]
		}
	}

	return fe.Field()
}
