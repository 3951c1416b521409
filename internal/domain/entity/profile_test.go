package entity

import (
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestUserProfile_Favorites(t *testing.T) {
	profile := NewUserProfile("uid-1", "a@example.com", "Alice", time.Now())

	profile.AddFavorite("park-a")
	profile.AddFavorite("park-b")
	profile.AddFavorite("park-a") // no-op
	assert.Equal(t, []string{"park-a", "park-b"}, profile.FavoriteParkIDs)
	assert.True(t, profile.HasFavorite("park-a"))

	profile.RemoveFavorite("park-a")
	assert.Equal(t, []string{"park-b"}, profile.FavoriteParkIDs)
	assert.False(t, profile.HasFavorite("park-a"))
}

func TestUserProfile_DogIndex(t *testing.T) {
	profile := NewUserProfile("uid-1", "", "Alice", time.Now())
	dog := NewDogProfile("Rex", "Boxer", 3)
	profile.Dogs = append(profile.Dogs, dog)

	assert.Equal(t, 0, profile.DogIndex(dog.ID))
	assert.Equal(t, -1, profile.DogIndex("missing"))
}

func TestPark_EqualityIsIdentityBased(t *testing.T) {
	a := Park{ID: "place-1", Name: "Wiggly Field"}
	b := Park{ID: "place-1", Name: "Renamed Park", Location: orb.Point{-87.6190, 41.8860}}
	c := Park{ID: "place-2", Name: "Wiggly Field"}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
}

func TestPark_AddReportBounded(t *testing.T) {
	now := time.Now()
	var park Park
	for i := 0; i < maxBusynessReports+5; i++ {
		park.AddReport(NewBusynessReport(BusynessQuiet, "", 1, now))
	}

	assert.Len(t, park.Reports, maxBusynessReports)
}
