package domain

import (
	"context"
	"io"
)

// PosterStore persists uploaded poster images and returns their public URL.
type PosterStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
