// Package entity contains the core business objects of the project.
package entity

import (
	"time"
)

// DefaultFreshnessWindow is how long a check-in counts toward live traffic.
const DefaultFreshnessWindow = 2 * time.Hour

// CheckIn is an ephemeral presence record asserting that a user, with some
// number of dogs, is currently at a park. Identity is the (park id, user id)
// pair; the user id doubles as the document key within the park's check-in
// collection, so a repeat check-in overwrites the previous record.
// There is no stored "active" flag: staleness is a read-time filter.
type CheckIn struct {
	UserID      string    // The checked-in user's id, also the document key.
	DisplayName string    // Display name snapshot taken at check-in time.
	Timestamp   time.Time // Server-assigned check-in time.
	DogCount    int       // Number of dogs the user brought.
}

// NewCheckIn builds a check-in record. The timestamp is a parameter so
// construction stays deterministic under test.
func NewCheckIn(userID, displayName string, dogCount int, at time.Time) CheckIn {
	return CheckIn{
		UserID:      userID,
		DisplayName: displayName,
		Timestamp:   at,
		DogCount:    dogCount,
	}
}

// Active reports whether the check-in is inside the freshness window
// relative to now.
func (c CheckIn) Active(now time.Time, window time.Duration) bool {
	return c.Timestamp.After(now.Add(-window))
}

// ActiveCheckIns filters to records inside the freshness window.
func ActiveCheckIns(checkIns []CheckIn, now time.Time, window time.Duration) []CheckIn {
	active := make([]CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if c.Active(now, window) {
			active = append(active, c)
		}
	}

	return active
}

// TrafficCount sums DogCount over the check-ins inside the freshness window.
// It is recomputed on every call; staleness is never cached across reads.
func TrafficCount(checkIns []CheckIn, now time.Time, window time.Duration) int {
	total := 0
	for _, c := range checkIns {
		if c.Active(now, window) {
			total += c.DogCount
		}
	}

	return total
}
