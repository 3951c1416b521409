package usecase

import (
	"context"

	"parkpulse/internal/domain/entity"
)

// AddDogInput represents the input for adding a dog to a profile.
type AddDogInput struct {
	Name  string `json:"name" validate:"required,max=60"`
	Breed string `json:"breed" validate:"max=80"`
	Age   int    `json:"age" validate:"gte=0,lte=30"`

	// Photo is the raw image to upload, if any. The upload happens before
	// the profile mutation; an upload failure aborts the whole operation.
	Photo []byte `json:"-"`
}

// UpdateDogInput represents the input for updating an existing dog.
// Nil fields are left unchanged.
type UpdateDogInput struct {
	DogID string  `json:"dog_id" validate:"required"`
	Name  *string `json:"name,omitempty" validate:"omitempty,max=60"`
	Breed *string `json:"breed,omitempty" validate:"omitempty,max=80"`
	Age   *int    `json:"age,omitempty" validate:"omitempty,gte=0,lte=30"`
	Photo []byte  `json:"-"`
}

// ProfileUsecase manages the user profile aggregate: identity fields, the
// embedded dog list and the favorite park ids. Every mutation requires an
// existing profile and returns the updated aggregate.
type ProfileUsecase interface {
	// GetOrCreateProfile fetches the user's profile, creating and
	// persisting a fresh one when none exists yet.
	GetOrCreateProfile(ctx context.Context, userID, email, displayName string) (*entity.UserProfile, error)

	// UpdateDisplayName changes the user's display name.
	UpdateDisplayName(ctx context.Context, userID, displayName string) (*entity.UserProfile, error)

	// Dog management
	AddDog(ctx context.Context, userID string, input *AddDogInput) (*entity.UserProfile, error)
	UpdateDog(ctx context.Context, userID string, input *UpdateDogInput) (*entity.UserProfile, error)
	RemoveDog(ctx context.Context, userID, dogID string) (*entity.UserProfile, error)

	// SetMainPhotoFromDog copies (or clears, when the dog has no photo)
	// the profile avatar from one of the user's dogs.
	SetMainPhotoFromDog(ctx context.Context, userID, dogID string) (*entity.UserProfile, error)

	// Favorite management
	AddFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error)
	RemoveFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error)
	ToggleFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error)
}
