package app

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/metinatakli/cinema-booking-system/api"
)

var openAPIDocument = sync.OnceValues(func() ([]byte, error) {
	swagger, err := api.GetSwagger()
	if err != nil {
		return nil, err
	}

	return json.Marshal(swagger)
})

// GetOpenAPISpec serves the embedded API description as plain JSON.
func (app *Application) GetOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	js, err := openAPIDocument()
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(js)
}
