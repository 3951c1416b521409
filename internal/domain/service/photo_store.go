package service

import "context"

// PhotoStore uploads dog profile photos to object storage. Images are
// re-encoded as JPEG at a fixed quality before transfer; the returned URL
// is persisted on the DogProfile.
type PhotoStore interface {
	UploadDogPhoto(ctx context.Context, userID, dogID string, image []byte) (string, error)
}
