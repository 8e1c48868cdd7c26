package helpers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// artworkCacheControl lets browsers and CDNs keep images; object names are
// random so a replaced image always gets a new URL.
const artworkCacheControl = "public, max-age=31536000, immutable"

// GCSStore puts artwork images into a bucket and returns their public URL.
// PublicBase overrides the storage.googleapis.com host, e.g. for a CDN.
type GCSStore struct {
	Client     *storage.Client
	Bucket     string
	PublicBase string
}

func (s *GCSStore) Save(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = artworkCacheControl
	wc.ChunkSize = 0 // images are capped well below the chunk size
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	if s.PublicBase != "" {
		return strings.TrimRight(s.PublicBase, "/") + "/" + objectPath, nil
	}
	return PublicURL(s.Bucket, objectPath), nil
}

// PublicURL builds the public URL of an object in a publicly readable bucket.
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
