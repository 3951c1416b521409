// Package places implements the places provider client over its REST API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"parkpulse/config"
	"parkpulse/internal/domain/entity"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/service"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.uber.org/fx"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	// detailFields is the fixed field mask requested from the details endpoint.
	detailFields = "place_id,name,formatted_address,vicinity,geometry,photo,opening_hours,type"
)

// client implements service.PlacesService against the provider's three
// REST endpoints: text search, nearby search and place details.
type client struct {
	apiKey        string
	baseURL       string
	photoMaxWidth int
	httpClient    *http.Client
	logger        *slog.Logger
}

// Params holds dependencies for the places client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a places client from configuration.
func NewClient(params Params) service.PlacesService {
	cfg := params.Config.Places

	return &client{
		apiKey:        cfg.APIKey,
		baseURL:       strings.TrimRight(cfg.BaseURL, "/"),
		photoMaxWidth: cfg.PhotoMaxWidth,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

// place is the provider's wire representation of a single result.
type place struct {
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	FormattedAddress string   `json:"formatted_address"`
	Vicinity         string   `json:"vicinity"`
	Types            []string `json:"types"`
	Geometry         struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Photos []struct {
		PhotoReference string `json:"photo_reference"`
	} `json:"photos"`
	OpeningHours *struct {
		WeekdayText []string `json:"weekday_text"`
	} `json:"opening_hours"`
}

// searchResponse is the envelope shared by both search endpoints.
type searchResponse struct {
	Results      []place `json:"results"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
}

// detailResponse is the envelope of the details endpoint.
type detailResponse struct {
	Result       place  `json:"result"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// SearchByText runs a free-text search, biased toward dog parks by
// prefixing the query and constraining the place type.
func (c *client) SearchByText(ctx context.Context, query string) ([]entity.Park, error) {
	params := url.Values{}
	params.Set("query", "dog park "+query)
	params.Set("type", "park")
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/textsearch/json?" + params.Encode()

	return c.search(ctx, "text search", endpoint, nil)
}

// SearchNearby finds dog parks around a coordinate.
func (c *client) SearchNearby(ctx context.Context, lat, lng float64, radiusMeters int) ([]entity.Park, error) {
	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", lat, lng))
	params.Set("radius", fmt.Sprintf("%d", radiusMeters))
	params.Set("type", "park")
	params.Set("keyword", "dog park")
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/nearbysearch/json?" + params.Encode()
	origin := orb.Point{lng, lat}

	return c.search(ctx, "nearby search", endpoint, &origin)
}

// FetchDetails resolves a single place id to a full park record.
func (c *client) FetchDetails(ctx context.Context, placeID string) (entity.Park, error) {
	const op = "place details"

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailFields)
	params.Set("key", c.apiKey)

	endpoint := c.baseURL + "/details/json?" + params.Encode()

	var decoded detailResponse
	if err := c.get(ctx, op, endpoint, &decoded); err != nil {
		return entity.Park{}, err
	}

	if decoded.Status != statusOK {
		return entity.Park{}, domainerrors.NewProvider(op, decoded.Status, decoded.ErrorMessage)
	}

	return c.mapPlace(decoded.Result, nil), nil
}

// search runs one of the two list endpoints and post-filters the results to
// dog-park candidates, preserving provider order.
func (c *client) search(ctx context.Context, op, endpoint string, origin *orb.Point) ([]entity.Park, error) {
	var decoded searchResponse
	if err := c.get(ctx, op, endpoint, &decoded); err != nil {
		return nil, err
	}

	switch decoded.Status {
	case statusOK:
	case statusZeroResults:
		return []entity.Park{}, nil
	default:
		return nil, domainerrors.NewProvider(op, decoded.Status, decoded.ErrorMessage)
	}

	parks := make([]entity.Park, 0, len(decoded.Results))
	for _, result := range decoded.Results {
		if !isDogParkCandidate(result) {
			continue
		}
		parks = append(parks, c.mapPlace(result, origin))
	}

	c.logger.Debug("places search completed",
		slog.String("op", op),
		slog.Int("provider_results", len(decoded.Results)),
		slog.Int("kept", len(parks)),
	)

	return parks, nil
}

// get performs the HTTP round trip and JSON decode for one call.
func (c *client) get(ctx context.Context, op, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domainerrors.NewTransport(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domainerrors.NewTransport(op, err)
	}
	defer resp.Body.Close()

	// A non-200 carries an HTML error page, not the JSON envelope.
	if resp.StatusCode != http.StatusOK {
		return domainerrors.NewProvider(op, resp.Status, "")
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domainerrors.NewDecode(op, err)
	}

	return nil
}

// isDogParkCandidate keeps a result when its type tags include "park" or
// its name suggests a dog park. Everything else from the provider is noise
// for this application and is dropped before returning.
func isDogParkCandidate(p place) bool {
	for _, t := range p.Types {
		if t == "park" {
			return true
		}
	}

	name := strings.ToLower(p.Name)

	return strings.Contains(name, "dog park") || strings.Contains(name, "bark park")
}

// mapPlace converts a wire result into a Park, deriving the photo URL and,
// when an origin is given, the distance from it.
func (c *client) mapPlace(p place, origin *orb.Point) entity.Park {
	park := entity.Park{
		ID:       p.PlaceID,
		Name:     p.Name,
		Address:  p.FormattedAddress,
		Location: orb.Point{p.Geometry.Location.Lng, p.Geometry.Location.Lat},
		Types:    p.Types,
		Busyness: entity.BusynessEmpty,
	}
	if park.Address == "" {
		park.Address = p.Vicinity
	}

	if len(p.Photos) > 0 && p.Photos[0].PhotoReference != "" {
		park.PhotoReference = p.Photos[0].PhotoReference
		park.ImageURL = c.photoURL(p.Photos[0].PhotoReference)
	}

	if p.OpeningHours != nil {
		park.OperatingHours = strings.Join(p.OpeningHours.WeekdayText, "\n")
	}

	if origin != nil {
		park.DistanceMeters = geo.Distance(*origin, park.Location)
	}

	return park
}

// photoURL builds the deterministic photo URL for a reference. Absence of a
// photo yields an empty URL upstream, never an error.
func (c *client) photoURL(reference string) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprintf("%d", c.photoMaxWidth))
	params.Set("photoreference", reference)
	params.Set("key", c.apiKey)

	return c.baseURL + "/photo?" + params.Encode()
}
