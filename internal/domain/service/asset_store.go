package service

import (
	"context"
	"io"
	"time"

	"matjip/internal/errors"
)

// ErrAssetNotFound is returned when no object exists under a key.
var ErrAssetNotFound = errors.New("asset not found")

// ErrAssetExists is returned when a non-overwriting upload hits an existing key.
var ErrAssetExists = errors.New("asset already exists")

// UploadOptions controls how an asset is written.
type UploadOptions struct {
	Overwrite    bool   // Replace an existing object under the same key.
	ContentType  string // MIME type stored with the object.
	CacheControl string // Cache-Control header stored with the object.
}

// AssetObject is a stored asset opened for reading. The caller closes Body.
type AssetObject struct {
	Body         io.ReadCloser
	ContentType  string
	CacheControl string
	Size         int64
	ModTime      time.Time
}

// AssetStore defines the interface for storing listing images.
type AssetStore interface {
	// Upload writes payload under key and returns the stored key.
	// Fails when the key exists and opts.Overwrite is false.
	Upload(ctx context.Context, key string, payload []byte, opts UploadOptions) (string, error)

	// PublicURL returns the public retrieval URL for key.
	PublicURL(ctx context.Context, key string) (string, error)

	// Open returns a reader for the object under key.
	Open(ctx context.Context, key string) (*AssetObject, error)

	// Delete removes the object under key.
	Delete(ctx context.Context, key string) error
}
