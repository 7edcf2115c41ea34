package service

import "context"

// StoredImage describes an image persisted by the store.
type StoredImage struct {
	Key string // Object key within the bucket.
	URL string // Public URL for the object, when the backend has one.
}

// ImageStore is the narrow interface to the image upload collaborator.
// Content validation and blob placement live behind it; its failure modes
// (unsupported type, size limit) are its own, distinct from the core
// error taxonomy.
type ImageStore interface {
	// Store validates and persists the image bytes and returns where they
	// ended up. The store chooses the object key.
	Store(ctx context.Context, data []byte, contentType string) (*StoredImage, error)

	// Remove deletes a stored image. Removing a missing key is not an error.
	Remove(ctx context.Context, key string) error
}
