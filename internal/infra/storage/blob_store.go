// Package storage implements the image store over a gocloud.dev blob bucket,
// so the same code serves local directories in development and object
// storage in production.
package storage

import (
	"context"
	"log/slog"
	"net/http"

	"roost/config"
	domainerrors "roost/internal/domain/errors"
	"roost/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // register file:// bucket URLs
	_ "gocloud.dev/blob/memblob"  // register mem:// bucket URLs
	"gocloud.dev/gcerrors"
)

// defaultMaxSizeBytes matches the original deployment's upload limit.
const defaultMaxSizeBytes = 6 << 20

var allowedContentTypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
}

// blobImageStore implements service.ImageStore over a blob bucket.
type blobImageStore struct {
	bucket  *blob.Bucket
	maxSize int64
	logger  *slog.Logger
}

// Params defines the required parameters.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured bucket and returns the image store.
func New(params Params) (service.ImageStore, error) {
	bucketURL := params.Config.Upload.BucketURL
	if bucketURL == "" {
		bucketURL = "mem://"
	}

	bucket, err := blob.OpenBucket(context.Background(), bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open image bucket %s", bucketURL)
	}

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return bucket.Close()
		},
	})

	maxSize := params.Config.Upload.MaxSizeBytes
	if maxSize <= 0 {
		maxSize = defaultMaxSizeBytes
	}

	return &blobImageStore{
		bucket:  bucket,
		maxSize: maxSize,
		logger:  params.Logger,
	}, nil
}

// NewWithBucket wires the store over an already open bucket. Tests use this
// with a memblob bucket.
func NewWithBucket(bucket *blob.Bucket, maxSize int64, logger *slog.Logger) service.ImageStore {
	if maxSize <= 0 {
		maxSize = defaultMaxSizeBytes
	}

	return &blobImageStore{bucket: bucket, maxSize: maxSize, logger: logger}
}

// Store validates and writes the image. The declared content type is checked
// against the sniffed one so a renamed file cannot slip through.
func (s *blobImageStore) Store(ctx context.Context, data []byte, contentType string) (*service.StoredImage, error) {
	if int64(len(data)) > s.maxSize {
		return nil, domainerrors.ErrImageTooLarge
	}

	ext, ok := allowedContentTypes[contentType]
	if !ok {
		return nil, domainerrors.ErrUnsupportedImage
	}
	if sniffed := http.DetectContentType(data); sniffed != contentType {
		return nil, domainerrors.ErrUnsupportedImage
	}

	key := uuid.New().String() + ext
	if err := s.bucket.WriteAll(ctx, key, data, &blob.WriterOptions{ContentType: contentType}); err != nil {
		return nil, errors.Wrap(err, "failed to write image")
	}

	s.logger.Debug("stored image", slog.String("key", key), slog.Int("bytes", len(data)))

	// Not every backend can sign URLs; the key alone is enough for callers
	// that serve the bytes themselves.
	url, err := s.bucket.SignedURL(ctx, key, nil)
	if err != nil {
		url = key
	}

	return &service.StoredImage{Key: key, URL: url}, nil
}

// Remove deletes a stored image. A missing key is treated as already removed.
func (s *blobImageStore) Remove(ctx context.Context, key string) error {
	if key == "" {
		return nil
	}

	if err := s.bucket.Delete(ctx, key); err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return nil
		}

		return errors.Wrap(err, "failed to delete image")
	}

	return nil
}
