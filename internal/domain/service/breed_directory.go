package service

import "context"

// BreedDirectory lists known dog breeds for the add-dog flow. The list is
// transient: fetched per session, never persisted.
type BreedDirectory interface {
	// ListBreeds returns display-ready breed names, sorted alphabetically.
	ListBreeds(ctx context.Context) ([]string, error)
}
