// Package storage implements dog photo uploads on a gocloud blob bucket.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"strings"
	"time"

	_ "image/gif"
	_ "image/png"

	"parkpulse/config"
	"parkpulse/internal/domain/service"
	"parkpulse/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket drivers used in production and development.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
)

// jpegQuality is the fixed compression applied to every upload. Uploads are
// always re-encoded; callers never control the quality.
const jpegQuality = 40

// signedURLExpiry bounds download URLs when no public base URL is configured.
const signedURLExpiry = 24 * time.Hour

// OpenBucket opens the configured photo bucket.
func OpenBucket(ctx context.Context, cfg *config.Config) (*blob.Bucket, error) {
	if cfg.Storage == nil || cfg.Storage.BucketURL == "" {
		return nil, errors.New("storage bucket URL is required")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.Storage.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", cfg.Storage.BucketURL)
	}

	return bucket, nil
}

// photoStore implements service.PhotoStore.
type photoStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// PhotoStoreParams holds dependencies for the photo store.
type PhotoStoreParams struct {
	fx.In

	Bucket *blob.Bucket
	Config *config.Config
	Logger *slog.Logger
}

// NewPhotoStore creates a photo store over the given bucket.
func NewPhotoStore(params PhotoStoreParams) service.PhotoStore {
	publicBaseURL := ""
	if params.Config.Storage != nil {
		publicBaseURL = strings.TrimRight(params.Config.Storage.PublicBaseURL, "/")
	}

	return &photoStore{
		bucket:        params.Bucket,
		publicBaseURL: publicBaseURL,
		logger:        params.Logger,
	}
}

// UploadDogPhoto re-encodes the image as JPEG at the fixed quality and
// writes it to dog_images/{userId}/{dogId}/profile.jpg. The returned URL is
// what gets persisted on the DogProfile.
func (s *photoStore) UploadDogPhoto(ctx context.Context, userID, dogID string, imageData []byte) (string, error) {
	decoded, _, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return "", errors.Wrap(err, "failed to decode image")
	}

	var compressed bytes.Buffer
	if err := jpeg.Encode(&compressed, decoded, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return "", errors.Wrap(err, "failed to compress image")
	}

	key := fmt.Sprintf("dog_images/%s/%s/profile.jpg", userID, dogID)

	writeOpts := &blob.WriterOptions{ContentType: "image/jpeg"}
	if err := s.bucket.WriteAll(ctx, key, compressed.Bytes(), writeOpts); err != nil {
		return "", errors.Wrapf(err, "failed to upload %s", key)
	}

	s.logger.Debug("dog photo uploaded",
		slog.String("key", key),
		slog.Int("bytes", compressed.Len()),
	)

	return s.downloadURL(ctx, key)
}

// downloadURL prefers the configured public base; otherwise it asks the
// bucket for a signed URL.
func (s *photoStore) downloadURL(ctx context.Context, key string) (string, error) {
	if s.publicBaseURL != "" {
		return s.publicBaseURL + "/" + key, nil
	}

	signed, err := s.bucket.SignedURL(ctx, key, &blob.SignedURLOptions{Expiry: signedURLExpiry})
	if err != nil {
		return "", errors.Wrapf(err, "failed to sign URL for %s", key)
	}

	return signed, nil
}
