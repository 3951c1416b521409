// Package usecase defines the interfaces for the application's use cases.
package usecase

import (
	"parkpulse/internal/domain/entity"
)

// SearchSnapshot is one immutable view of the aggregated park list. The
// slices are display-ready: favorites are sorted alphabetically by name and
// filtered by the active query; nearby results keep provider order with
// favorite ids excluded.
type SearchSnapshot struct {
	Query     string
	Nearby    []entity.Park
	Favorites []entity.Park
	Searching bool

	// Err is the single user-facing failure from the most recent
	// operation. Last-good data is always preserved alongside it.
	Err error
}

// ParkSearchUsecase is the aggregation engine: it turns free-text input,
// device location and the remote favorite-id list into one consistent,
// de-duplicated park list.
//
// All input methods are non-blocking; results arrive through snapshots.
type ParkSearchUsecase interface {
	// UpdateLocation records a location fix. The first fix triggers a
	// nearby search; later fixes only update the remembered location.
	UpdateLocation(lat, lng float64)

	// SetQuery records typed text. After the debounce quiet period, text
	// longer than the minimum issues a text search with the final value;
	// shorter text falls back to the nearby view, and empty text re-issues
	// a nearby search from the remembered location.
	SetQuery(text string)

	// SetFavorites replaces the favorite park id list. When the list
	// changes by value, details are fetched concurrently for every unique
	// id and the merged result is published once the whole batch settles.
	SetFavorites(ids []string)

	// Snapshot returns the current aggregated view.
	Snapshot() SearchSnapshot

	// Subscribe registers a listener for every published snapshot and
	// returns its unsubscribe function.
	Subscribe(listener func(SearchSnapshot)) (unsubscribe func())

	// Close stops the debouncer and drops all listeners. In-flight
	// responses arriving after Close are discarded.
	Close()
}
