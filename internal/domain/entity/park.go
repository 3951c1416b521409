// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// maxBusynessReports bounds the free-text report list carried on a park.
const maxBusynessReports = 20

// Park is a point-of-interest sourced from the places provider.
// Identity is the provider's place id; it never changes after creation,
// and equality is id-based rather than structural.
type Park struct {
	ID             string    // The provider-assigned place id.
	Name           string    // The park's display name.
	Address        string    // Formatted address, or the provider's vicinity string.
	Location       orb.Point // Geographic coordinate (lng, lat order, as orb uses).
	ImageURL       string    // Derived photo URL; empty when the place has no photo.
	PhotoReference string    // The raw provider photo reference, if any.
	Types          []string  // Provider type tags (e.g. "park", "point_of_interest").
	Amenities      []string  // Amenity list, populated from details or user input.
	OperatingHours string    // Free-text operating hours.
	DistanceMeters float64   // Distance from the search origin; zero for text search results.

	Busyness BusynessLevel    // Locally computed busyness, updated from live check-ins.
	Reports  []BusynessReport // Bounded, most-recent-first report list.
}

// Equal reports whether two parks refer to the same place.
func (p Park) Equal(other Park) bool {
	return p.ID == other.ID
}

// Lat returns the park's latitude.
func (p Park) Lat() float64 {
	return p.Location.Lat()
}

// Lng returns the park's longitude.
func (p Park) Lng() float64 {
	return p.Location.Lon()
}

// AddReport prepends a report, keeping at most maxBusynessReports entries.
func (p *Park) AddReport(report BusynessReport) {
	p.Reports = append([]BusynessReport{report}, p.Reports...)
	if len(p.Reports) > maxBusynessReports {
		p.Reports = p.Reports[:maxBusynessReports]
	}
}

// BusynessLevel classifies how crowded a park currently is.
type BusynessLevel string

const (
	BusynessEmpty    BusynessLevel = "empty"
	BusynessQuiet    BusynessLevel = "quiet"     // 1-3 dogs
	BusynessModerate BusynessLevel = "moderate"  // 4-7 dogs
	BusynessBusy     BusynessLevel = "busy"      // 8-11 dogs
	BusynessVeryBusy BusynessLevel = "very_busy" // 12+ dogs
)

// BusynessForCount maps a live dog count to a busyness level.
func BusynessForCount(dogs int) BusynessLevel {
	switch {
	case dogs <= 0:
		return BusynessEmpty
	case dogs <= 3:
		return BusynessQuiet
	case dogs <= 7:
		return BusynessModerate
	case dogs <= 11:
		return BusynessBusy
	default:
		return BusynessVeryBusy
	}
}

// BusynessReport is a timestamped free-text busyness observation left by a user.
type BusynessReport struct {
	ID          string
	Level       BusynessLevel
	Comment     string
	DogsInGroup int // 0 when the reporter did not say.
	ReportedAt  time.Time
}

// NewBusynessReport builds a report. The timestamp is a parameter so
// construction stays deterministic under test.
func NewBusynessReport(level BusynessLevel, comment string, dogsInGroup int, reportedAt time.Time) BusynessReport {
	return BusynessReport{
		ID:          uuid.NewString(),
		Level:       level,
		Comment:     comment,
		DogsInGroup: dogsInGroup,
		ReportedAt:  reportedAt,
	}
}
