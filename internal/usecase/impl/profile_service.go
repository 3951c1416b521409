// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	"parkpulse/internal/domain/entity"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/repository"
	"parkpulse/internal/domain/service"
	"parkpulse/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	profileRepo repository.ProfileRepository
	photoStore  service.PhotoStore
	validate    *validator.Validate
	logger      *slog.Logger
	now         func() time.Time
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	profileRepo repository.ProfileRepository,
	photoStore service.PhotoStore,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		profileRepo: profileRepo,
		photoStore:  photoStore,
		validate:    validator.New(validator.WithRequiredStructEnabled()),
		logger:      logger,
		now:         time.Now,
	}
}

// GetOrCreateProfile fetches the user's profile, creating a fresh one when
// none exists yet.
func (srv *profileService) GetOrCreateProfile(ctx context.Context, userID, email, displayName string) (*entity.UserProfile, error) {
	srv.logger.Debug("Loading profile", "userID", userID)

	profile, err := srv.profileRepo.GetProfile(ctx, userID)
	if err == nil {
		return profile, nil
	}
	if !errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(err, "failed to load profile")
	}

	srv.logger.Info("Creating profile for new user", "userID", userID)

	profile = entity.NewUserProfile(userID, email, displayName, srv.now())
	if err := srv.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to create profile")
	}

	return profile, nil
}

// UpdateDisplayName changes the user's display name.
func (srv *profileService) UpdateDisplayName(ctx context.Context, userID, displayName string) (*entity.UserProfile, error) {
	if displayName == "" {
		return nil, domainerrors.NewValidation("displayName", "must not be empty")
	}

	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		profile.DisplayName = displayName

		return nil
	})
}

// AddDog validates the input, uploads the photo when one was given, and
// appends the dog to the profile. The upload happens first so a storage
// failure never leaves a dog without its promised photo.
func (srv *profileService) AddDog(ctx context.Context, userID string, input *usecase.AddDogInput) (*entity.UserProfile, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.NewValidation("dog", err.Error())
	}

	dog := entity.NewDogProfile(input.Name, input.Breed, input.Age)

	if len(input.Photo) > 0 {
		url, err := srv.photoStore.UploadDogPhoto(ctx, userID, dog.ID, input.Photo)
		if err != nil {
			return nil, errors.Wrap(err, "failed to upload dog photo")
		}
		dog.PhotoURL = url
	}

	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		profile.Dogs = append(profile.Dogs, dog)

		return nil
	})
}

// UpdateDog applies the non-nil fields of input to an existing dog. The dog
// id is resolved before any photo upload, so an unknown id never leaves an
// orphaned object in the bucket.
func (srv *profileService) UpdateDog(ctx context.Context, userID string, input *usecase.UpdateDogInput) (*entity.UserProfile, error) {
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.NewValidation("dog", err.Error())
	}

	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		idx := profile.DogIndex(input.DogID)
		if idx < 0 {
			return domainerrors.NewValidation("dogId", "no such dog")
		}

		dog := &profile.Dogs[idx]
		if input.Name != nil {
			dog.Name = *input.Name
		}
		if input.Breed != nil {
			dog.Breed = *input.Breed
		}
		if input.Age != nil {
			dog.Age = *input.Age
		}
		if len(input.Photo) > 0 {
			url, err := srv.photoStore.UploadDogPhoto(ctx, userID, input.DogID, input.Photo)
			if err != nil {
				return errors.Wrap(err, "failed to upload dog photo")
			}
			dog.PhotoURL = url
		}

		return nil
	})
}

// RemoveDog drops the dog from the profile. Removing an unknown dog id is
// rejected. The avatar is cleared when it was borrowed from the removed dog.
func (srv *profileService) RemoveDog(ctx context.Context, userID, dogID string) (*entity.UserProfile, error) {
	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		idx := profile.DogIndex(dogID)
		if idx < 0 {
			return domainerrors.NewValidation("dogId", "no such dog")
		}

		if profile.PhotoURL != "" && profile.PhotoURL == profile.Dogs[idx].PhotoURL {
			profile.PhotoURL = ""
		}
		profile.Dogs = append(profile.Dogs[:idx], profile.Dogs[idx+1:]...)

		return nil
	})
}

// SetMainPhotoFromDog copies the avatar from one of the user's dogs.
func (srv *profileService) SetMainPhotoFromDog(ctx context.Context, userID, dogID string) (*entity.UserProfile, error) {
	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		idx := profile.DogIndex(dogID)
		if idx < 0 {
			return domainerrors.NewValidation("dogId", "no such dog")
		}

		profile.PhotoURL = profile.Dogs[idx].PhotoURL

		return nil
	})
}

// AddFavorite appends a park to the favorites list. Adding a park that is
// already a favorite is a no-op.
func (srv *profileService) AddFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error) {
	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		profile.AddFavorite(parkID)

		return nil
	})
}

// RemoveFavorite drops a park from the favorites list.
func (srv *profileService) RemoveFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error) {
	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		profile.RemoveFavorite(parkID)

		return nil
	})
}

// ToggleFavorite flips a park's favorite state.
func (srv *profileService) ToggleFavorite(ctx context.Context, userID, parkID string) (*entity.UserProfile, error) {
	return srv.mutate(ctx, userID, func(profile *entity.UserProfile) error {
		if profile.HasFavorite(parkID) {
			profile.RemoveFavorite(parkID)
		} else {
			profile.AddFavorite(parkID)
		}

		return nil
	})
}

// mutate loads the profile, applies fn, and persists the result. A missing
// profile surfaces as ErrProfileRequired: mutations never create profiles
// implicitly.
func (srv *profileService) mutate(ctx context.Context, userID string, fn func(*entity.UserProfile) error) (*entity.UserProfile, error) {
	profile, err := srv.profileRepo.GetProfile(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, domainerrors.ErrProfileRequired
		}

		return nil, errors.Wrap(err, "failed to load profile")
	}

	if err := fn(profile); err != nil {
		return nil, err
	}

	if err := srv.profileRepo.UpsertProfile(ctx, profile); err != nil {
		return nil, errors.Wrap(err, "failed to save profile")
	}

	return profile, nil
}
