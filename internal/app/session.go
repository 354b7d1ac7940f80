package app

import (
	"context"
	"log/slog"
	"net/http"
)

type sessionKey string

const (
	SessionKeyAdmin = sessionKey("adminUsername")
)

func (s sessionKey) String() string {
	return string(s)
}

type contextKey string

const loggerContextKey = contextKey("logger")

func contextSetLogger(r *http.Request, logger *slog.Logger) *http.Request {
	ctx := context.WithValue(r.Context(), loggerContextKey, logger)
	return r.WithContext(ctx)
}

// contextGetLogger returns the request scoped logger, falling back to the
// application logger for requests that did not pass the logging middleware.
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	return app.loggerFromContext(r.Context())
}

func (app *Application) loggerFromContext(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}

func (app *Application) contextGetAdmin(r *http.Request) string {
	return app.sessionManager.GetString(r.Context(), SessionKeyAdmin.String())
}
