// Package storage implements the listing image store on gocloud.dev/blob buckets.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"matjip/config"
	"matjip/internal/domain/service"
	"matjip/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/gcsblob"  // gs:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	_ "gocloud.dev/blob/s3blob"   // s3:// buckets
	"gocloud.dev/gcerrors"
)

// blobStore implements AssetStore on top of a portable blob bucket.
type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// BlobStoreParams holds dependencies for the blob asset store, injected by Fx.
type BlobStoreParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobStore opens the configured bucket and registers its shutdown hook.
func NewBlobStore(params BlobStoreParams) (service.AssetStore, error) {
	cfg := params.Config.Storage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", redactURL(cfg.BucketURL))
	}

	params.Logger.Info("Asset bucket opened", slog.String("bucket", redactURL(cfg.BucketURL)))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing asset bucket")

			return errors.WithStack(bucket.Close())
		},
	})

	return NewBucketStore(bucket, cfg.PublicBaseURL, params.Logger), nil
}

// NewBucketStore wraps an already opened bucket.
func NewBucketStore(bucket *blob.Bucket, publicBaseURL string, logger *slog.Logger) service.AssetStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Upload writes payload under key. Without opts.Overwrite an existing key is an error.
func (s *blobStore) Upload(ctx context.Context, key string, payload []byte, opts service.UploadOptions) (string, error) {
	if key == "" {
		return "", errors.New("asset key is required")
	}

	if !opts.Overwrite {
		exists, err := s.bucket.Exists(ctx, key)
		if err != nil {
			return "", errors.Wrapf(err, "failed to check asset %s", key)
		}
		if exists {
			return "", errors.Wrap(service.ErrAssetExists, key)
		}
	}

	err := s.bucket.WriteAll(ctx, key, payload, &blob.WriterOptions{
		ContentType:  opts.ContentType,
		CacheControl: opts.CacheControl,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to write asset %s", key)
	}

	s.logger.Debug("Asset written",
		slog.String("key", key),
		slog.Int("size", len(payload)),
		slog.Bool("overwrite", opts.Overwrite),
	)

	return key, nil
}

// PublicURL joins the configured public base URL with key.
func (s *blobStore) PublicURL(_ context.Context, key string) (string, error) {
	if s.publicBaseURL == "" {
		return "", errors.New("storage public base URL is not configured")
	}

	u, err := url.JoinPath(s.publicBaseURL, key)
	if err != nil {
		return "", errors.Wrap(err, "failed to build public URL")
	}

	return u, nil
}

// Open returns a reader for key.
func (s *blobStore) Open(ctx context.Context, key string) (*service.AssetObject, error) {
	reader, err := s.bucket.NewReader(ctx, key, nil)
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil, errors.Wrap(service.ErrAssetNotFound, key)
		}

		return nil, errors.Wrapf(err, "failed to open asset %s", key)
	}

	attrs, err := s.bucket.Attributes(ctx, key)
	if err != nil {
		reader.Close()

		return nil, errors.Wrapf(err, "failed to read attributes of asset %s", key)
	}

	return &service.AssetObject{
		Body:         reader,
		ContentType:  reader.ContentType(),
		CacheControl: attrs.CacheControl,
		Size:         reader.Size(),
		ModTime:      reader.ModTime(),
	}, nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *blobStore) Delete(ctx context.Context, key string) error {
	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrapf(err, "failed to delete asset %s", key)
	}

	return nil
}

// redactURL drops credentials and query parameters from a bucket URL before logging it.
func redactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return strings.SplitN(raw, "?", 2)[0]
	}
	u.User = nil
	u.RawQuery = ""

	return u.String()
}
