package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadJSON(t *testing.T) {
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "valid body", body: `{"name": "a", "count": 1}`},
		{name: "empty body", body: ``, wantErr: "body must not be empty"},
		{name: "badly formed", body: `{"name": "a",}`, wantErr: "body contains badly-formed JSON (at character"},
		{name: "truncated", body: `{"name": "a"`, wantErr: "body contains badly-formed JSON"},
		{name: "wrong type", body: `{"count": "one"}`, wantErr: `body contains incorrect JSON type for field "count"`},
		{name: "unknown key", body: `{"name": "a", "extra": true}`, wantErr: `body contains unknown key "extra"`},
		{name: "two values", body: `{"name": "a"} {"name": "b"}`, wantErr: "body must only contain a single JSON value"},
		{name: "too large", body: `{"name": "` + strings.Repeat("a", maxJSONBodyBytes) + `"}`, wantErr: "body must not be larger than 1048576 bytes"},
	}

	app := newTestApplication()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))

			var dst payload
			err := app.readJSON(w, r, &dst)

			if tt.wantErr == "" {
				assert.NoError(t, err)
				assert.Equal(t, payload{Name: "a", Count: 1}, dst)
				return
			}

			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestBackgroundRecoversPanics(t *testing.T) {
	app := newTestApplication()

	done := false

	app.background(context.Background(), func(ctx context.Context) {
		panic("boom")
	})
	app.background(context.Background(), func(ctx context.Context) {
		done = true
	})

	app.wg.Wait()

	assert.True(t, done)
}
