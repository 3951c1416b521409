// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpulse/internal/domain/entity"
	"parkpulse/internal/errors"
)

// ErrProfileNotFound is returned when no profile document exists for a user.
// Callers treat this as a valid empty state, not a failure.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines document-store operations for user profiles.
type ProfileRepository interface {
	// GetProfile retrieves the profile aggregate for a user.
	// Returns ErrProfileNotFound when no document exists.
	GetProfile(ctx context.Context, userID string) (*entity.UserProfile, error)

	// UpsertProfile writes the profile with create-or-merge semantics.
	// Fields absent from the aggregate are never clobbered in storage.
	UpsertProfile(ctx context.Context, profile *entity.UserProfile) error
}
