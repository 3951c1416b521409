package places

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parkpulse/config"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) (service.PlacesService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := &config.Config{
		Places: &config.PlacesConfig{
			APIKey:             "test-key",
			BaseURL:            server.URL,
			PhotoMaxWidth:      600,
			NearbyRadiusMeters: 5000,
			Timeout:            5 * time.Second,
		},
	}

	client := NewClient(Params{
		Config: cfg,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return client, server
}

const nearbyBody = `{
	"status": "OK",
	"results": [
		{
			"place_id": "p1",
			"name": "Montgomery Ward Park",
			"vicinity": "630 N Kingsbury St",
			"types": ["park", "point_of_interest"],
			"geometry": {"location": {"lat": 41.8901, "lng": -87.6412}},
			"photos": [{"photo_reference": "ref-1"}]
		},
		{
			"place_id": "p2",
			"name": "Happy Bark Park",
			"vicinity": "1 Dog Way",
			"types": ["point_of_interest"],
			"geometry": {"location": {"lat": 41.8800, "lng": -87.6200}}
		},
		{
			"place_id": "p3",
			"name": "Deep Dish Pizza",
			"vicinity": "2 Pie St",
			"types": ["restaurant"],
			"geometry": {"location": {"lat": 41.8810, "lng": -87.6210}}
		}
	]
}`

func TestSearchNearby_FiltersToDogParkCandidates(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_, _ = io.WriteString(w, nearbyBody)
	}))

	parks, err := client.SearchNearby(context.Background(), 41.8860, -87.6190, 5000)
	require.NoError(t, err)

	// The pizza place matches neither the type tag nor the name heuristic.
	require.Len(t, parks, 2)
	assert.Equal(t, "p1", parks[0].ID)
	assert.Equal(t, "p2", parks[1].ID)

	assert.Contains(t, gotQuery, "radius=5000")
	assert.Contains(t, gotQuery, "keyword=dog+park")
	assert.Contains(t, gotQuery, "type=park")

	// Nearby results carry distance from the origin.
	assert.Greater(t, parks[0].DistanceMeters, 0.0)
	assert.Greater(t, parks[1].DistanceMeters, 0.0)
	// p2 sits a few hundred meters from the origin, p1 about 2km.
	assert.Less(t, parks[1].DistanceMeters, parks[0].DistanceMeters)
}

func TestSearchNearby_MapsPhotoAndAddress(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, nearbyBody)
	}))

	parks, err := client.SearchNearby(context.Background(), 41.8860, -87.6190, 5000)
	require.NoError(t, err)

	withPhoto := parks[0]
	assert.Equal(t, "ref-1", withPhoto.PhotoReference)
	assert.Contains(t, withPhoto.ImageURL, server.URL+"/photo?")
	assert.Contains(t, withPhoto.ImageURL, "maxwidth=600")
	assert.Contains(t, withPhoto.ImageURL, "photoreference=ref-1")
	assert.Equal(t, "630 N Kingsbury St", withPhoto.Address)

	// No photo means no image URL, not an error.
	assert.Empty(t, parks[1].ImageURL)
	assert.Empty(t, parks[1].PhotoReference)
}

func TestSearchByText_PrefixesQuery(t *testing.T) {
	var gotQuery string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		_, _ = io.WriteString(w, `{"status": "OK", "results": []}`)
	}))

	_, err := client.SearchByText(context.Background(), "lincoln")
	require.NoError(t, err)
	assert.Equal(t, "dog park lincoln", gotQuery)
}

func TestSearch_ZeroResultsIsEmptyNotError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "ZERO_RESULTS", "results": []}`)
	}))

	parks, err := client.SearchByText(context.Background(), "nowhere")
	require.NoError(t, err)
	assert.Empty(t, parks)
}

func TestSearch_ProviderErrorCarriesStatusAndMessage(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid.", "results": []}`)
	}))

	_, err := client.SearchByText(context.Background(), "lincoln")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindProvider))

	var provErr *domainerrors.ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, "REQUEST_DENIED", provErr.Status)
	assert.Equal(t, "The provided API key is invalid.", provErr.Detail)
}

func TestSearch_MalformedBodyIsDecodeError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "OK", "results": [`)
	}))

	_, err := client.SearchByText(context.Background(), "lincoln")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindDecode))
}

func TestSearch_HTTPErrorStatusIsProviderError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = io.WriteString(w, `<html>service unavailable</html>`)
	}))

	_, err := client.SearchByText(context.Background(), "lincoln")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindProvider))
	assert.False(t, domainerrors.IsKind(err, domainerrors.KindDecode))
}

func TestSearch_NetworkFailureIsTransportError(t *testing.T) {
	client, server := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	_, err := client.SearchByText(context.Background(), "lincoln")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindTransport))
}

func TestFetchDetails_MapsResult(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "p1", r.URL.Query().Get("place_id"))
		assert.NotEmpty(t, r.URL.Query().Get("fields"))
		_, _ = io.WriteString(w, `{
			"status": "OK",
			"result": {
				"place_id": "p1",
				"name": "Wiggly Field",
				"formatted_address": "2645 N Sheffield Ave, Chicago",
				"types": ["park"],
				"geometry": {"location": {"lat": 41.9296, "lng": -87.6537}},
				"opening_hours": {"weekday_text": ["Monday: 6AM-11PM", "Tuesday: 6AM-11PM"]}
			}
		}`)
	}))

	park, err := client.FetchDetails(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "p1", park.ID)
	assert.Equal(t, "Wiggly Field", park.Name)
	assert.Equal(t, "2645 N Sheffield Ave, Chicago", park.Address)
	assert.Equal(t, "Monday: 6AM-11PM\nTuesday: 6AM-11PM", park.OperatingHours)
	assert.InDelta(t, 41.9296, park.Lat(), 1e-6)
	assert.InDelta(t, -87.6537, park.Lng(), 1e-6)
	assert.Empty(t, park.ImageURL)
}

func TestFetchDetails_NotFoundStatusIsProviderError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"status": "NOT_FOUND", "result": {}}`)
	}))

	_, err := client.FetchDetails(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, domainerrors.IsKind(err, domainerrors.KindProvider))
}
