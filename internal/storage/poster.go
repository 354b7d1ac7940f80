package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/metinatakli/cinema-booking-system/internal/domain"
)

const DefaultMaxPosterBytes = 5 << 20

var (
	allowedMimeTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
	}

	allowedExtensions = map[string]struct{}{
		".jpeg": {},
		".jpg":  {},
		".png":  {},
		".gif":  {},
	}
)

// LocalPosterStore writes posters to a directory served under urlPrefix.
type LocalPosterStore struct {
	dir       string
	urlPrefix string
	maxBytes  int64
}

func NewLocalPosterStore(dir, urlPrefix string, maxBytes int64) (*LocalPosterStore, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create poster directory: %w", err)
	}

	if maxBytes <= 0 {
		maxBytes = DefaultMaxPosterBytes
	}

	return &LocalPosterStore{
		dir:       dir,
		urlPrefix: strings.TrimSuffix(urlPrefix, "/"),
		maxBytes:  maxBytes,
	}, nil
}

// Save validates the upload by extension and sniffed content, then stores it
// under a generated name. The returned URL is relative to the API root.
func (s *LocalPosterStore) Save(ctx context.Context, filename string, r io.Reader) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	if _, ok := allowedExtensions[ext]; !ok {
		return "", domain.ErrUnsupportedUpload
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read upload: %w", err)
	}

	if int64(len(data)) > s.maxBytes {
		return "", domain.ErrUploadTooLarge
	}

	detected := mimetype.Detect(data)

	storedExt, ok := allowedMimeTypes[detected.String()]
	if !ok {
		return "", domain.ErrUnsupportedUpload
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	name := id.String() + storedExt

	f, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("create poster file: %w", err)
	}

	_, err = io.Copy(f, bytes.NewReader(data))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(filepath.Join(s.dir, name))
		return "", fmt.Errorf("write poster file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}
