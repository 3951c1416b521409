package firestore

import (
	"time"

	"parkpulse/internal/domain/entity"
)

// profileDocument is the wire shape of a user profile document.
type profileDocument struct {
	Email           string        `firestore:"email"`
	DisplayName     string        `firestore:"displayName"`
	PhotoURL        string        `firestore:"photoURL"`
	CreatedAt       time.Time     `firestore:"createdAt"`
	FavoriteParkIDs []string      `firestore:"favoriteParkIDs"`
	Dogs            []dogDocument `firestore:"dogProfiles"`
}

// dogDocument is the embedded wire shape of one dog record.
type dogDocument struct {
	ID       string `firestore:"id"`
	Name     string `firestore:"name"`
	Breed    string `firestore:"breed"`
	Age      int    `firestore:"age"`
	PhotoURL string `firestore:"photoURL"`
}

// checkInDocument is the wire shape of a check-in record. The timestamp is
// assigned by the server on write.
type checkInDocument struct {
	UserID          string    `firestore:"userId"`
	UserDisplayName string    `firestore:"userDisplayName"`
	Timestamp       time.Time `firestore:"timestamp,serverTimestamp"`
	DogCount        int       `firestore:"dogCount"`
}

func (d *profileDocument) toEntity(userID string) *entity.UserProfile {
	profile := &entity.UserProfile{
		ID:              userID,
		Email:           d.Email,
		DisplayName:     d.DisplayName,
		PhotoURL:        d.PhotoURL,
		CreatedAt:       d.CreatedAt,
		FavoriteParkIDs: d.FavoriteParkIDs,
	}
	for _, dog := range d.Dogs {
		profile.Dogs = append(profile.Dogs, entity.DogProfile(dog))
	}

	return profile
}

// profileMergeData flattens the aggregate into the map form required for a
// merge write: fields not present in the map are left untouched in storage.
func profileMergeData(profile *entity.UserProfile) map[string]any {
	dogs := make([]map[string]any, 0, len(profile.Dogs))
	for _, dog := range profile.Dogs {
		dogs = append(dogs, map[string]any{
			"id":       dog.ID,
			"name":     dog.Name,
			"breed":    dog.Breed,
			"age":      dog.Age,
			"photoURL": dog.PhotoURL,
		})
	}

	favorites := profile.FavoriteParkIDs
	if favorites == nil {
		favorites = []string{}
	}

	return map[string]any{
		"email":           profile.Email,
		"displayName":     profile.DisplayName,
		"photoURL":        profile.PhotoURL,
		"createdAt":       profile.CreatedAt,
		"favoriteParkIDs": favorites,
		"dogProfiles":     dogs,
	}
}

func (d *checkInDocument) toEntity() entity.CheckIn {
	return entity.CheckIn{
		UserID:      d.UserID,
		DisplayName: d.UserDisplayName,
		Timestamp:   d.Timestamp,
		DogCount:    d.DogCount,
	}
}
