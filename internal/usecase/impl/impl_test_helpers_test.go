package impl

import (
	"io"
	"log/slog"
	"time"

	"parkpulse/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Places: &config.PlacesConfig{
			NearbyRadiusMeters: 5000,
		},
		Search: &config.SearchConfig{
			DebounceInterval: 20 * time.Millisecond,
			MinQueryLength:   3,
			FreshnessWindow:  2 * time.Hour,
		},
	}
}
