package filestorage

import (
	"context"
	"io"
	"mime/multipart"
)

// Object describes a stored object
type Object struct {
	Key      string // Path of the object inside the store, always slash separated
	URL      string // Public URL the object is served from
	Filename string // Original filename
	Size     int64  // Size in bytes
	MimeType string
}

// ObjectStore is an object store keyed by path
type ObjectStore interface {
	// Put writes r under key, replacing any existing object
	Put(ctx context.Context, key string, r io.Reader) (int64, error)

	// Delete removes the object. Deleting a missing object is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns the public URL of key
	URL(key string) string
}

// Uploader stores multipart uploads under a generated key
type Uploader interface {
	ObjectStore

	// SaveUpload stores the upload under prefix with a unique name
	SaveUpload(ctx context.Context, fileHeader *multipart.FileHeader, prefix string) (*Object, error)
}
