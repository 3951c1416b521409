package storage

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"testing"

	"parkpulse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func testImage(t *testing.T) []byte {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 8), G: uint8(y * 8), B: 90, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func TestUploadDogPhoto_CompressesAndReturnsPublicURL(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewPhotoStore(PhotoStoreParams{
		Bucket: bucket,
		Config: &config.Config{
			Storage: &config.StorageConfig{
				BucketURL:     "mem://",
				PublicBaseURL: "https://photos.example.com/",
			},
		},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	ctx := context.Background()
	url, err := store.UploadDogPhoto(ctx, "uid-1", "dog-1", testImage(t))
	require.NoError(t, err)
	assert.Equal(t, "https://photos.example.com/dog_images/uid-1/dog-1/profile.jpg", url)

	// The stored object is a decodable JPEG regardless of the input format.
	stored, err := bucket.ReadAll(ctx, "dog_images/uid-1/dog-1/profile.jpg")
	require.NoError(t, err)
	_, err = jpeg.Decode(bytes.NewReader(stored))
	require.NoError(t, err)

	attrs, err := bucket.Attributes(ctx, "dog_images/uid-1/dog-1/profile.jpg")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", attrs.ContentType)
}

func TestUploadDogPhoto_RejectsGarbageInput(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { _ = bucket.Close() })

	store := NewPhotoStore(PhotoStoreParams{
		Bucket: bucket,
		Config: &config.Config{Storage: &config.StorageConfig{BucketURL: "mem://"}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	_, err := store.UploadDogPhoto(context.Background(), "uid-1", "dog-1", []byte("not an image"))
	require.Error(t, err)
}
