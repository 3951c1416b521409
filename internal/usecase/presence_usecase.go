package usecase

import (
	"context"

	"parkpulse/internal/domain/entity"
)

// PresenceSnapshot is a live view of one park's check-in state. The
// check-ins have already been filtered by the freshness window, so
// TrafficCount and Busyness are derived from the visible set only.
type PresenceSnapshot struct {
	CheckIns     []entity.CheckIn
	TrafficCount int
	Busyness     entity.BusynessLevel

	// Err is set when the underlying stream reported a failure. The last
	// good check-in state is carried alongside, never blanked. The channel
	// closes after an errored snapshot when the failure was terminal.
	Err error
}

// ParkWatch is a live subscription to one park's presence. Snapshots()
// yields a fresh PresenceSnapshot for every remote change; the channel is
// closed after Close is called, the context is cancelled, or the stream
// fails terminally.
type ParkWatch interface {
	Snapshots() <-chan PresenceSnapshot
	Close()
}

// PresenceUsecase covers checking in and out of parks and observing park
// presence live.
type PresenceUsecase interface {
	// CheckIn records the user's presence at a park. Checking in again
	// overwrites the previous record for the same user, refreshing its
	// timestamp.
	CheckIn(ctx context.Context, parkID, userID, displayName string, dogCount int) error

	// CheckOut removes the user's check-in record. Checking out of a park
	// the user is not checked into is a no-op.
	CheckOut(ctx context.Context, parkID, userID string) error

	// WatchPark opens a live presence subscription for one park.
	WatchPark(ctx context.Context, parkID string) (ParkWatch, error)

	// UserIsCheckedIn reports whether userID appears in the given
	// check-in set with a fresh timestamp.
	UserIsCheckedIn(checkIns []entity.CheckIn, userID string) bool
}
