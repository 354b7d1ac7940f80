package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/metinatakli/cinema-booking-system/api"
)

const maxJSONBodyBytes = 1 << 20

// writeJSON wraps data in a success envelope.
func (app *Application) writeJSON(w http.ResponseWriter, status int, data any, headers http.Header) error {
	return app.writeEnvelope(w, status, api.Response{Success: true, Data: data}, headers)
}

func (app *Application) writeMessage(w http.ResponseWriter, status int, message string) error {
	return app.writeEnvelope(w, status, api.Response{Success: true, Message: message}, nil)
}

func (app *Application) writeEnvelope(w http.ResponseWriter, status int, resp api.Response, headers http.Header) error {
	js, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

// readJSON decodes a single JSON value from the request body and turns
// decoder failures into messages that are safe to return to clients.
func (app *Application) readJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var (
			syntaxError           *json.SyntaxError
			unmarshalTypeError    *json.UnmarshalTypeError
			invalidUnmarshalError *json.InvalidUnmarshalError
			maxBytesError         *http.MaxBytesError
		)

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)

		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")

		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)

		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")

		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)

		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytesError.Limit)

		case errors.As(err, &invalidUnmarshalError):
			panic(err)

		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

// background runs fn in a goroutine tracked by the shutdown wait group.
// Panics are logged instead of crashing the server.
func (app *Application) background(ctx context.Context, fn func(ctx context.Context)) {
	// detached from the request lifetime but keeps its trace and logger
	ctx = context.WithoutCancel(ctx)

	app.wg.Add(1)

	go func() {
		defer app.wg.Done()

		defer func() {
			if err := recover(); err != nil {
				app.loggerFromContext(ctx).Error("panic in background task", "panic", fmt.Sprint(err))
			}
		}()

		ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		fn(ctx)
	}()
}
