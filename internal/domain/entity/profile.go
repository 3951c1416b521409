// Package entity contains the core business objects of the project.
package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// UserProfile is the per-user aggregate stored in the document store.
// Identity is the auth-provider user id. The dog list is owned exclusively
// by its parent profile; dogs have no independent lifecycle.
type UserProfile struct {
	ID              string       // The auth-provider user id.
	Email           string       // The user's contact email, if the provider supplied one.
	DisplayName     string       // The user's display name.
	PhotoURL        string       // Avatar URL; usually borrowed from one of the user's dogs.
	CreatedAt       time.Time    // Timestamp of when this profile was first created.
	FavoriteParkIDs []string     // Ordered favorite park ids. Duplicates are tolerated in storage.
	Dogs            []DogProfile // Embedded dog records.
}

// NewUserProfile builds a fresh profile for a newly seen user. The creation
// time is a parameter so construction stays deterministic under test.
func NewUserProfile(userID, email, displayName string, createdAt time.Time) *UserProfile {
	return &UserProfile{
		ID:          userID,
		Email:       email,
		DisplayName: displayName,
		CreatedAt:   createdAt,
	}
}

// HasFavorite reports whether parkID is on the favorites list.
func (p *UserProfile) HasFavorite(parkID string) bool {
	return slices.Contains(p.FavoriteParkIDs, parkID)
}

// AddFavorite appends parkID unless it is already present.
func (p *UserProfile) AddFavorite(parkID string) {
	if !p.HasFavorite(parkID) {
		p.FavoriteParkIDs = append(p.FavoriteParkIDs, parkID)
	}
}

// RemoveFavorite drops every occurrence of parkID.
func (p *UserProfile) RemoveFavorite(parkID string) {
	p.FavoriteParkIDs = slices.DeleteFunc(p.FavoriteParkIDs, func(id string) bool {
		return id == parkID
	})
}

// DogIndex returns the position of the dog with the given id, or -1.
func (p *UserProfile) DogIndex(dogID string) int {
	return slices.IndexFunc(p.Dogs, func(d DogProfile) bool {
		return d.ID == dogID
	})
}

// DogProfile describes one of a user's dogs.
type DogProfile struct {
	ID       string // Locally generated unique id.
	Name     string
	Breed    string
	Age      int    // 0 when unknown.
	PhotoURL string // Set after the photo upload completes; empty when no photo.
}

// NewDogProfile builds a dog record with a freshly generated id.
func NewDogProfile(name, breed string, age int) DogProfile {
	return DogProfile{
		ID:    uuid.NewString(),
		Name:  name,
		Breed: breed,
		Age:   age,
	}
}
