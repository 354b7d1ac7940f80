package app

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/alexedwards/scs/v2"
	"github.com/metinatakli/cinema-booking-system/api"
	"github.com/metinatakli/cinema-booking-system/internal/mocks"
	"github.com/metinatakli/cinema-booking-system/internal/validator"
)

func newTestApplication(opts ...func(*Application)) *Application {
	app := &Application{
		config: Config{
			Env:        "test",
			CinemaName: "Test Cinema",
			Uploads: UploadsConfig{
				Dir:       "testdata",
				URLPrefix: "/images/posters",
				MaxBytes:  1 << 20,
			},
		},
		validator:      validator.NewValidator(),
		logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		sessionManager: scs.New(),
		metrics:        newAppMetrics(),
		hallRepo:       &mocks.MockHallRepo{},
		movieRepo:      &mocks.MockMovieRepo{},
		screeningRepo:  &mocks.MockScreeningRepo{},
		bookingRepo:    &mocks.MockBookingRepo{},
		posters:        &mocks.MockPosterStore{},
		publisher:      mocks.NewMockPublisher(),
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// setupTestSession loads an empty session into the request context and
// optionally signs the admin in.
func setupTestSession(t *testing.T, app *Application, r *http.Request, admin string) *http.Request {
	ctx, err := app.sessionManager.Load(r.Context(), "")
	if err != nil {
		t.Fatalf("Failed to load session: %v", err)
	}

	if admin != "" {
		app.sessionManager.Put(ctx, SessionKeyAdmin.String(), admin)
	}

	return r.WithContext(ctx)
}

func executeRequest(t *testing.T, method, url string, body any) (*httptest.ResponseRecorder, *http.Request) {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
		reader = http.NoBody
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		jsonData, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(jsonData)
	}

	r := httptest.NewRequest(method, url, reader)
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	return w, r
}

func checkErrorResponse(t *testing.T, w *httptest.ResponseRecorder, tt struct {
	wantStatus     int
	wantErrMessage string
}) {
	t.Helper()

	if tt.wantStatus >= 200 && tt.wantStatus < 300 {
		return
	}

	var resp api.Response
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode error response: %v", err)
	}

	if resp.Success {
		t.Errorf("Expected success to be false for status %d", tt.wantStatus)
	}

	if tt.wantErrMessage == "" {
		return
	}

	if resp.Message == tt.wantErrMessage {
		return
	}

	for _, vErr := range resp.Errors {
		if vErr.Issue == tt.wantErrMessage {
			return
		}
	}

	t.Errorf("Error message %q not found in response (message = %q, errors = %v)", tt.wantErrMessage, resp.Message, resp.Errors)
}

// decodeData unmarshals the data member of a success envelope into dst.
func decodeData(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}

	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Fatalf("Expected success envelope")
	}

	if err := json.Unmarshal(resp.Data, dst); err != nil {
		t.Fatalf("Failed to decode response data: %v", err)
	}
}

func ptr[T any](v T) *T {
	return &v
}
