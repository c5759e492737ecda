// Package storage implements the object store on gocloud.dev buckets.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"kasa/config"
	domainerrors "kasa/internal/domain/errors"
	"kasa/internal/domain/service"
	"kasa/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

// DownloadRoute serves documents of buckets that cannot sign URLs.
const DownloadRoute = "/api/v1/documents/"

// Params defines the parameters required for the object store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

type blobStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	signedExpiry  time.Duration
}

// New opens the configured bucket and closes it when the application stops.
func New(params Params) (service.ObjectStore, error) {
	bucketURL := params.Config.Storage.URL
	if bucketURL == "" {
		return nil, errors.New("storage url is not configured")
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	params.Logger.Info("Object store opened", slog.String("url", bucketURL))

	return NewBlobStore(bucket, params.Config.Storage), nil
}

// NewBlobStore wraps an open bucket.
func NewBlobStore(bucket *blob.Bucket, cfg config.StorageConfig) service.ObjectStore {
	return &blobStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		signedExpiry:  cfg.SignedURLExpiry,
	}
}

// Upload overwrites any object already stored at path.
func (s *blobStore) Upload(ctx context.Context, path string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}
	if err := s.bucket.WriteAll(ctx, path, data, opts); err != nil {
		return domainerrors.NewCollaboratorError(domainerrors.CollaboratorObjectStore, errors.Wrap(err, "upload"))
	}

	return nil
}

// PublicURL prefers the configured public base URL, then a signed URL,
// then the application's own download route.
func (s *blobStore) PublicURL(ctx context.Context, path string) (string, error) {
	if s.publicBaseURL != "" {
		publicURL, err := url.JoinPath(s.publicBaseURL, path)
		if err != nil {
			return "", errors.Wrap(err, "join public url")
		}

		return publicURL, nil
	}

	signed, err := s.bucket.SignedURL(ctx, path, &blob.SignedURLOptions{Expiry: s.signedExpiry})
	if err == nil {
		return signed, nil
	}
	if gcerrors.Code(err) == gcerrors.Unimplemented {
		return DownloadRoute + path, nil
	}

	return "", domainerrors.NewCollaboratorError(domainerrors.CollaboratorObjectStore, errors.Wrap(err, "sign url"))
}

func (s *blobStore) Download(ctx context.Context, path string) (*service.StoredObject, error) {
	attrs, err := s.bucket.Attributes(ctx, path)
	if err != nil {
		return nil, s.readError(err)
	}

	data, err := s.bucket.ReadAll(ctx, path)
	if err != nil {
		return nil, s.readError(err)
	}

	return &service.StoredObject{Data: data, ContentType: attrs.ContentType}, nil
}

func (s *blobStore) readError(err error) error {
	if gcerrors.Code(err) == gcerrors.NotFound {
		return domainerrors.ErrDocumentNotFound
	}

	return domainerrors.NewCollaboratorError(domainerrors.CollaboratorObjectStore, errors.Wrap(err, "download"))
}
