package mocks

import (
	"context"
	"io"
)

// MockPosterStore returns URL for every upload unless SaveFunc is set.
type MockPosterStore struct {
	URL      string
	SaveFunc func(ctx context.Context, filename string, r io.Reader) (string, error)
}

func (m *MockPosterStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, filename, r)
	}

	_, err := io.Copy(io.Discard, r)
	if err != nil {
		return "", err
	}

	return m.URL, nil
}
