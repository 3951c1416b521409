package impl

import (
	"context"
	"testing"

	mockSvc "parkpulse/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBreedService_ListBreeds_Memoizes(t *testing.T) {
	directory := mockSvc.NewMockBreedDirectory(t)
	service := NewBreedService(directory, newDiscardLogger())

	ctx := context.Background()

	directory.EXPECT().
		ListBreeds(ctx).
		Return([]string{"Akita", "Boxer"}, nil).
		Once()

	breeds, err := service.ListBreeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Akita", "Boxer"}, breeds)

	// Served from memory; the mock would fail on a second fetch.
	breeds, err = service.ListBreeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Akita", "Boxer"}, breeds)
}

func TestBreedService_ListBreeds_RetriesAfterFailure(t *testing.T) {
	directory := mockSvc.NewMockBreedDirectory(t)
	service := NewBreedService(directory, newDiscardLogger())

	ctx := context.Background()

	directory.EXPECT().
		ListBreeds(ctx).
		Return(nil, errors.New("api down")).
		Once()

	_, err := service.ListBreeds(ctx)
	require.Error(t, err)

	directory.EXPECT().
		ListBreeds(ctx).
		Return([]string{"Akita"}, nil).
		Once()

	breeds, err := service.ListBreeds(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Akita"}, breeds)
}
