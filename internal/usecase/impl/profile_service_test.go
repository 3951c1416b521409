package impl

import (
	"context"
	"testing"
	"time"

	"parkpulse/internal/domain/entity"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/repository"
	mockRepo "parkpulse/internal/mocks/repository"
	mockSvc "parkpulse/internal/mocks/service"
	"parkpulse/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_GetOrCreateProfile_Existing(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil)

	profile, err := service.GetOrCreateProfile(ctx, "user-1", "a@b.com", "Alice")
	require.NoError(t, err)
	assert.Same(t, existing, profile)
}

func TestProfileService_GetOrCreateProfile_CreatesWhenMissing(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := service.GetOrCreateProfile(ctx, "user-1", "a@b.com", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "user-1", profile.ID)
	assert.Equal(t, "a@b.com", profile.Email)
	assert.Equal(t, "Alice", profile.DisplayName)
	assert.False(t, profile.CreatedAt.IsZero())
	assert.Empty(t, profile.Dogs)
}

func TestProfileService_MutationRequiresProfile(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(nil, repository.ErrProfileNotFound)

	_, err := service.AddFavorite(ctx, "user-1", "park-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrProfileRequired)
}

func TestProfileService_AddDog_UploadsPhotoFirst(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())

	photoStore.EXPECT().
		UploadDogPhoto(ctx, "user-1", mock.AnythingOfType("string"), []byte("jpeg-bytes")).
		Return("https://cdn.example.com/rex.jpg", nil)

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil)

	profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := service.AddDog(ctx, "user-1", &usecase.AddDogInput{
		Name:  "Rex",
		Breed: "Boxer",
		Age:   3,
		Photo: []byte("jpeg-bytes"),
	})
	require.NoError(t, err)
	require.Len(t, profile.Dogs, 1)
	assert.Equal(t, "Rex", profile.Dogs[0].Name)
	assert.Equal(t, "https://cdn.example.com/rex.jpg", profile.Dogs[0].PhotoURL)
	assert.NotEmpty(t, profile.Dogs[0].ID)
}

func TestProfileService_AddDog_UploadFailureAborts(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()

	photoStore.EXPECT().
		UploadDogPhoto(ctx, "user-1", mock.AnythingOfType("string"), []byte("jpeg-bytes")).
		Return("", errors.New("bucket unavailable"))

	_, err := service.AddDog(ctx, "user-1", &usecase.AddDogInput{
		Name:  "Rex",
		Photo: []byte("jpeg-bytes"),
	})
	require.Error(t, err)
	profileRepo.AssertNotCalled(t, "UpsertProfile", mock.Anything, mock.Anything)
}

func TestProfileService_AddDog_RejectsInvalidInput(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	_, err := service.AddDog(context.Background(), "user-1", &usecase.AddDogInput{
		Name: "",
		Age:  3,
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}

func TestProfileService_UpdateDog_UnknownDogSkipsUpload(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil)

	_, err := service.UpdateDog(ctx, "user-1", &usecase.UpdateDogInput{
		DogID: "missing-dog",
		Photo: []byte("jpeg-bytes"),
	})
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
	photoStore.AssertNotCalled(t, "UploadDogPhoto", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestProfileService_RemoveDog_ClearsBorrowedAvatar(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())
	dog := entity.NewDogProfile("Rex", "Boxer", 3)
	dog.PhotoURL = "https://cdn.example.com/rex.jpg"
	existing.Dogs = append(existing.Dogs, dog)
	existing.PhotoURL = dog.PhotoURL

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil)

	profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil)

	profile, err := service.RemoveDog(ctx, "user-1", dog.ID)
	require.NoError(t, err)
	assert.Empty(t, profile.Dogs)
	assert.Empty(t, profile.PhotoURL)
}

func TestProfileService_ToggleFavorite(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())
	existing.FavoriteParkIDs = []string{"park-1"}

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil).
		Twice()

	profileRepo.EXPECT().
		UpsertProfile(ctx, mock.AnythingOfType("*entity.UserProfile")).
		Return(nil).
		Twice()

	profile, err := service.ToggleFavorite(ctx, "user-1", "park-1")
	require.NoError(t, err)
	assert.False(t, profile.HasFavorite("park-1"))

	profile, err = service.ToggleFavorite(ctx, "user-1", "park-2")
	require.NoError(t, err)
	assert.True(t, profile.HasFavorite("park-2"))
}

func TestProfileService_SetMainPhotoFromDog_UnknownDog(t *testing.T) {
	profileRepo := mockRepo.NewMockProfileRepository(t)
	photoStore := mockSvc.NewMockPhotoStore(t)
	service := NewProfileService(profileRepo, photoStore, newDiscardLogger())

	ctx := context.Background()
	existing := entity.NewUserProfile("user-1", "a@b.com", "Alice", time.Now())

	profileRepo.EXPECT().
		GetProfile(ctx, "user-1").
		Return(existing, nil)

	_, err := service.SetMainPhotoFromDog(ctx, "user-1", "missing-dog")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindValidation))
}
