package service

import "context"

// StoredObject is a downloaded blob with its content type.
type StoredObject struct {
	Data        []byte
	ContentType string
}

// ObjectStore is binary blob storage addressed by path.
type ObjectStore interface {
	// Upload writes data at path, replacing any existing object.
	Upload(ctx context.Context, path string, data []byte, contentType string) error

	// PublicURL returns a retrievable URL for path.
	PublicURL(ctx context.Context, path string) (string, error)

	// Download reads the object stored at path.
	Download(ctx context.Context, path string) (*StoredObject, error)
}
