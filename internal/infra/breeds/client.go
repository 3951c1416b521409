// Package breeds implements the dog breed directory over the dog.ceo API.
package breeds

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sort"
	"strings"

	"parkpulse/config"
	domainerrors "parkpulse/internal/domain/errors"
	"parkpulse/internal/domain/service"

	"go.uber.org/fx"
)

// client implements service.BreedDirectory.
type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// Params holds dependencies for the breed directory client.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// NewClient creates a breed directory client from configuration.
func NewClient(params Params) service.BreedDirectory {
	cfg := params.Config.Breeds

	return &client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: params.Logger,
	}
}

// breedListResponse maps main breeds to their sub-breed names.
type breedListResponse struct {
	Message map[string][]string `json:"message"`
	Status  string              `json:"status"`
}

// ListBreeds fetches the full breed list and flattens it into sorted,
// display-ready names ("Golden Retriever" rather than retriever/golden).
func (c *client) ListBreeds(ctx context.Context) ([]string, error) {
	const op = "breed list"

	endpoint := c.baseURL + "/breeds/list/all"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domainerrors.NewTransport(op, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewTransport(op, err)
	}
	defer resp.Body.Close()

	var decoded breedListResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domainerrors.NewDecode(op, err)
	}

	if decoded.Status != "success" {
		return nil, domainerrors.NewProvider(op, decoded.Status, "")
	}

	breeds := make([]string, 0, len(decoded.Message))
	for mainBreed, subBreeds := range decoded.Message {
		if len(subBreeds) == 0 {
			breeds = append(breeds, title(mainBreed))

			continue
		}
		for _, subBreed := range subBreeds {
			breeds = append(breeds, title(subBreed)+" "+title(mainBreed))
		}
	}
	sort.Strings(breeds)

	c.logger.Debug("breed list fetched", slog.Int("count", len(breeds)))

	return breeds, nil
}

// title upper-cases the first letter of a lowercase breed token.
func title(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
