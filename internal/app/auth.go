package app

import (
	"net/http"

	"github.com/metinatakli/cinema-booking-system/api"
)

func (app *Application) Login(w http.ResponseWriter, r *http.Request) {
	logger := app.contextGetLogger(r)

	var input api.LoginRequest

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

	ok, err := app.admin.Matches(input.Username, input.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !ok {
		logger.Warn("failed admin login attempt", "username", input.Username)
		app.invalidCredentialsResponse(w, r)
		return
	}

	// new token on privilege change to prevent session fixation
	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyAdmin.String(), input.Username)

	logger.Info("admin logged in", "username", input.Username)

	err = app.writeJSON(w, http.StatusOK, api.AdminResponse{Username: input.Username}, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) Logout(w http.ResponseWriter, r *http.Request) {
	err := app.sessionManager.Destroy(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeMessage(w, http.StatusOK, "Logged out successfully")
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetCurrentAdmin(w http.ResponseWriter, r *http.Request) {
	resp := api.AdminResponse{
		Username: app.contextGetAdmin(r),
	}

	err := app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
