package app

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/riandyrn/otelchi"
)

var _ api.ServerInterface = (*Application)(nil)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)
	r.MethodNotAllowed(app.methodNotAllowedResponse)

	r.Use(otelchi.Middleware(serviceName, otelchi.WithChiRoutes(r)))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(app.requestLogger)
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	api.HandlerWithOptions(app, api.ChiServerOptions{
		BaseRouter:       r,
		Middlewares:      []api.MiddlewareFunc{app.requireAdminScope},
		ErrorHandlerFunc: app.badRequestResponse,
	})

	r.Get("/openapi.json", app.GetOpenAPISpec)

	posterPrefix := strings.TrimSuffix(app.config.Uploads.URLPrefix, "/") + "/"
	r.Handle(posterPrefix+"*", http.StripPrefix(posterPrefix, http.FileServer(http.Dir(app.config.Uploads.Dir))))

	return r
}
