// Package service defines interfaces for external collaborators that are
// not persistence: the places provider, the breed directory, photo storage
// and identity verification.
package service

import (
	"context"

	"parkpulse/internal/domain/entity"
)

// PlacesService wraps the remote place-search API. All operations fail with
// a transport error on network failure, a decode error on a malformed
// payload, and a provider error when the remote reports non-success status.
// Search results are post-filtered to dog-park candidates; provider order
// is preserved.
type PlacesService interface {
	// SearchByText runs a free-text search for dog parks.
	SearchByText(ctx context.Context, query string) ([]entity.Park, error)

	// SearchNearby finds dog parks around a coordinate. Results carry their
	// distance from the origin.
	SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]entity.Park, error)

	// FetchDetails resolves a single place id to a full park record.
	FetchDetails(ctx context.Context, placeID string) (entity.Park, error)
}
