// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"parkpulse/internal/domain/entity"
)

// CheckInUpdate is one emission from a park's live check-in stream: either
// the full current set of check-in documents or a listener error. Consumers
// keep their previous good set when Err is set.
type CheckInUpdate struct {
	CheckIns []entity.CheckIn
	Err      error
}

// PresenceRepository defines document-store operations for park check-ins.
type PresenceRepository interface {
	// CheckIn writes the record under the park's check-in collection, keyed
	// by the user id. A second call for the same (user, park) overwrites the
	// prior record, so at most one concurrent check-in exists per pair.
	CheckIn(ctx context.Context, parkID string, checkIn entity.CheckIn) error

	// CheckOut deletes the user's check-in record at the park. Deleting a
	// record that does not exist is not an error.
	CheckOut(ctx context.Context, parkID, userID string) error

	// SubscribeCheckIns opens a live stream of the park's check-in set.
	// Every remote change produces a CheckInUpdate on the channel. The
	// stream ends when the returned cancel function runs, ctx is done, or
	// the listener fails terminally (the error is emitted first); the
	// channel is closed on the way out.
	SubscribeCheckIns(ctx context.Context, parkID string) (<-chan CheckInUpdate, func(), error)
}
