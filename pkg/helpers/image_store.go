package helpers

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// ImageStore persists an uploaded image and returns the URL it is served at.
type ImageStore interface {
	Save(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// LocalStore writes images below Dir; they are served statically at BaseURL.
type LocalStore struct {
	Dir     string
	BaseURL string
}

func (s *LocalStore) Save(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	clean := filepath.Clean("/" + objectPath)
	dst := filepath.Join(s.Dir, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(dst)
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}
	return strings.TrimRight(s.BaseURL, "/") + filepath.ToSlash(clean), nil
}
