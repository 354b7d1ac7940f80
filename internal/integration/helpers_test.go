package integration_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// keysToIgnore holds response members that differ between runs.
var keysToIgnore = map[string]struct{}{
	"request_id":   {},
	"created_at":   {},
	"updated_at":   {},
	"booking_code": {},
	"qr_code_url":  {},
}

func prepareRequest(method, path string, body io.Reader, headers map[string]string) (*http.Request, error) {
	req := httptest.NewRequest(method, path, body)

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req, nil
}

func compareResponse(t testing.TB, body io.Reader, expectedResponse string) {
	t.Helper()

	var actual map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&actual))

	cleanValue(actual)

	var expected map[string]any
	require.NoError(t, json.Unmarshal([]byte(expectedResponse), &expected))

	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("response mismatch (-want +got):\n%s", diff)
	}
}

func cleanValue(v any) {
	switch val := v.(type) {
	case map[string]any:
		for k := range val {
			if _, ok := keysToIgnore[k]; ok {
				delete(val, k)
				continue
			}
			cleanValue(val[k])
		}
	case []any:
		for _, item := range val {
			cleanValue(item)
		}
	}
}

// decodeData unmarshals the data member of a success envelope.
func decodeData(t testing.TB, body io.Reader, dst any) {
	t.Helper()

	var resp struct {
		Success bool            `json:"success"`
		Data    json.RawMessage `json:"data"`
	}

	require.NoError(t, json.NewDecoder(body).Decode(&resp))
	require.True(t, resp.Success, "expected a success envelope")
	require.NoError(t, json.Unmarshal(resp.Data, dst))
}

// loginAdmin signs the configured admin in and returns the session cookies.
func loginAdmin(t testing.TB, app *TestApp) []*http.Cookie {
	t.Helper()

	body := fmt.Sprintf(`{"username": %q, "password": %q}`, TestAdminUsername, TestAdminPassword)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, "admin login failed: %s", rec.Body.String())

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)

	return cookies
}

// doRequest sends a JSON request through the router outside of a scenario.
func doRequest(t testing.TB, app *TestApp, method, path, body string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req, err := prepareRequest(method, path, reader, nil)
	require.NoError(t, err)

	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	app.App.Routes().ServeHTTP(rec, req)

	return rec
}

func truncateAll(t testing.TB, db *pgxpool.Pool) {
	t.Helper()

	_, err := db.Exec(context.Background(), `
		TRUNCATE TABLE bookings, screenings, movies, cinema_halls RESTART IDENTITY CASCADE
	`)
	require.NoError(t, err)
}

func insertTestHall(t testing.TB, db *pgxpool.Pool, name, layout string) int {
	t.Helper()

	var layoutArg any
	if layout != "" {
		layoutArg = layout
	}

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO cinema_halls (name, rows, seats_per_row, layout)
		VALUES ($1, $2, $3, $4::jsonb)
		RETURNING id
	`, name, TestHallRows, TestHallSeatsPerRow, layoutArg).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestMovie(t testing.TB, db *pgxpool.Pool, title string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO movies (title, synopsis, duration, origin)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, title, TestMovieSynopsis, TestMovieDuration, TestMovieOrigin).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestScreening(t testing.TB, db *pgxpool.Pool, movieID, hallID int, date, startTime string) int {
	t.Helper()

	var id int
	err := db.QueryRow(context.Background(), `
		INSERT INTO screenings (movie_id, cinema_hall_id, date, start_time)
		VALUES ($1, $2, $3::date, $4::time)
		RETURNING id
	`, movieID, hallID, date, startTime).Scan(&id)
	require.NoError(t, err)

	return id
}

func insertTestBooking(t testing.TB, db *pgxpool.Pool, screeningID int, code string, seats []string, status string) {
	t.Helper()

	seatsJSON, err := json.Marshal(seats)
	require.NoError(t, err)

	_, err = db.Exec(context.Background(), `
		INSERT INTO bookings (screening_id, booking_code, seats, total_price, status)
		VALUES ($1, $2, $3::jsonb, $4, $5)
	`, screeningID, code, string(seatsJSON), 500*len(seats), status)
	require.NoError(t, err)
}

// seedScreening truncates every table and inserts one hall, one movie and one
// screening using the test constants.
func seedScreening(t testing.TB, db *pgxpool.Pool) int {
	t.Helper()

	truncateAll(t, db)

	hallID := insertTestHall(t, db, TestHallName, TestHallLayout)
	movieID := insertTestMovie(t, db, TestMovieTitle)

	return insertTestScreening(t, db, movieID, hallID, TestScreeningDate, TestScreeningTime)
}

func countRows(t testing.TB, db *pgxpool.Pool, table string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM "+table).Scan(&n)
	require.NoError(t, err)

	return n
}
