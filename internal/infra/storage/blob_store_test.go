package storage

import (
	"context"
	"testing"
	"time"

	"kasa/config"
	domainerrors "kasa/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStore_UploadAndDownload(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket, config.StorageConfig{})

	pdf := []byte("%PDF-1.3 test")
	require.NoError(t, store.Upload(ctx, "owner/quittance.pdf", pdf, "application/pdf"))

	obj, err := store.Download(ctx, "owner/quittance.pdf")
	require.NoError(t, err)
	assert.Equal(t, pdf, obj.Data)
	assert.Equal(t, "application/pdf", obj.ContentType)

	// Upload replaces.
	require.NoError(t, store.Upload(ctx, "owner/quittance.pdf", []byte("v2"), "application/pdf"))
	obj, err = store.Download(ctx, "owner/quittance.pdf")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), obj.Data)
}

func TestBlobStore_DownloadMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewBlobStore(bucket, config.StorageConfig{})

	_, err := store.Download(context.Background(), "owner/missing.pdf")
	assert.ErrorIs(t, err, domainerrors.ErrDocumentNotFound)
}

func TestBlobStore_PublicURL(t *testing.T) {
	ctx := context.Background()
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	public := NewBlobStore(bucket, config.StorageConfig{PublicBaseURL: "https://files.example.com/documents/"})
	got, err := public.PublicURL(ctx, "owner/quittance.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://files.example.com/documents/owner/quittance.pdf", got)

	// memblob cannot sign URLs.
	private := NewBlobStore(bucket, config.StorageConfig{SignedURLExpiry: time.Minute})
	got, err = private.PublicURL(ctx, "owner/quittance.pdf")
	require.NoError(t, err)
	assert.Equal(t, DownloadRoute+"owner/quittance.pdf", got)
}
