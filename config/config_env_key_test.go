package config

import "testing"

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"places": map[string]any{
			"apiKey":        "",
			"photoMaxWidth": 600,
		},
		"firestore": map[string]any{
			"projectId": "",
		},
		"search": map[string]any{
			"debounceInterval": "750ms",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "PLACES_APIKEY", want: "places.apiKey"},
		{envKey: "PLACES_PHOTOMAXWIDTH", want: "places.photoMaxWidth"},
		{envKey: "FIRESTORE_PROJECTID", want: "firestore.projectId"},
		{envKey: "SEARCH_DEBOUNCEINTERVAL", want: "search.debounceInterval"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_RequiresAPIKey(t *testing.T) {
	cfg := &Config{}
	if err := cfg.applyDefaults(); err == nil {
		t.Fatal("expected error for missing places API key")
	}

	cfg.Places = &PlacesConfig{APIKey: "YOUR_API_KEY_HERE"}
	if err := cfg.applyDefaults(); err == nil {
		t.Fatal("expected error for placeholder places API key")
	}
}

func TestApplyDefaults_FillsSearchKnobs(t *testing.T) {
	cfg := &Config{Places: &PlacesConfig{APIKey: "key"}}
	if err := cfg.applyDefaults(); err != nil {
		t.Fatalf("applyDefaults: %v", err)
	}

	if cfg.Search.DebounceInterval != defaultDebounceInterval {
		t.Fatalf("debounce interval = %v, want %v", cfg.Search.DebounceInterval, defaultDebounceInterval)
	}
	if cfg.Search.MinQueryLength != defaultMinQueryLength {
		t.Fatalf("min query length = %d, want %d", cfg.Search.MinQueryLength, defaultMinQueryLength)
	}
	if cfg.Search.FreshnessWindow != defaultFreshnessWindow {
		t.Fatalf("freshness window = %v, want %v", cfg.Search.FreshnessWindow, defaultFreshnessWindow)
	}
	if cfg.Places.BaseURL != defaultPlacesBaseURL {
		t.Fatalf("places base URL = %q", cfg.Places.BaseURL)
	}
}
