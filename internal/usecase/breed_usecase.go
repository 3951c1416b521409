package usecase

import "context"

// BreedUsecase exposes the dog breed directory used by profile forms.
type BreedUsecase interface {
	// ListBreeds returns the full breed list, alphabetically sorted.
	// The list is fetched once and memoized; later calls are served from
	// memory.
	ListBreeds(ctx context.Context) ([]string, error)
}
