package storage

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	domainerrors "roost/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

var pngBytes = append([]byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a}, make([]byte, 16)...)

func newTestStore(maxSize int64) *blobImageStore {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewWithBucket(memblob.OpenBucket(nil), maxSize, logger).(*blobImageStore)
}

func TestBlobImageStore_StoreAndRemove(t *testing.T) {
	store := newTestStore(0)
	ctx := context.Background()

	stored, err := store.Store(ctx, pngBytes, "image/png")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(stored.Key, ".png"))
	assert.NotEmpty(t, stored.URL)

	data, err := store.bucket.ReadAll(ctx, stored.Key)
	require.NoError(t, err)
	assert.Equal(t, pngBytes, data)

	require.NoError(t, store.Remove(ctx, stored.Key))

	exists, err := store.bucket.Exists(ctx, stored.Key)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestBlobImageStore_RejectsUndeclaredType(t *testing.T) {
	store := newTestStore(0)

	_, err := store.Store(context.Background(), pngBytes, "image/gif")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
}

func TestBlobImageStore_RejectsMismatchedContent(t *testing.T) {
	store := newTestStore(0)

	// Declared png, but the bytes are plain text.
	_, err := store.Store(context.Background(), []byte("plain text body"), "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrUnsupportedImage)
}

func TestBlobImageStore_RejectsOversizedImage(t *testing.T) {
	store := newTestStore(8)

	_, err := store.Store(context.Background(), pngBytes, "image/png")
	assert.ErrorIs(t, err, domainerrors.ErrImageTooLarge)
}

func TestBlobImageStore_RemoveMissingKeyIsNoop(t *testing.T) {
	store := newTestStore(0)

	assert.NoError(t, store.Remove(context.Background(), "never-stored.png"))
	assert.NoError(t, store.Remove(context.Background(), ""))
}
