package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	defaultPlacesBaseURL      = "https://maps.googleapis.com/maps/api/place"
	defaultPhotoMaxWidth      = 600
	defaultNearbyRadiusMeters = 5000
	defaultBreedsBaseURL      = "https://dog.ceo/api"

	defaultDebounceInterval = 750 * time.Millisecond
	defaultMinQueryLength   = 3
	defaultFreshnessWindow  = 2 * time.Hour
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	// Places configures the geographic places provider.
	Places *PlacesConfig `json:"places" yaml:"places"`

	// Firestore configures the document store used for profiles and check-ins.
	Firestore *FirestoreConfig `json:"firestore" yaml:"firestore"`

	// Storage configures the object storage bucket for dog photos.
	Storage *StorageConfig `json:"storage" yaml:"storage"`

	// Search configures the park search aggregation engine.
	Search *SearchConfig `json:"search" yaml:"search"`

	// Breeds configures the dog breed directory API.
	Breeds *BreedsConfig `json:"breeds" yaml:"breeds"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// PlacesConfig defines the places provider endpoints and credentials.
type PlacesConfig struct {
	// APIKey is required. Startup aborts when it is missing or a placeholder.
	APIKey string `json:"apiKey" yaml:"apiKey"`

	// BaseURL is the root of the places REST API.
	BaseURL string `json:"baseUrl" yaml:"baseUrl"`

	// PhotoMaxWidth is the fixed max width used when building photo URLs.
	PhotoMaxWidth int `json:"photoMaxWidth" yaml:"photoMaxWidth"`

	// NearbyRadiusMeters is the default radius for nearby searches.
	NearbyRadiusMeters int `json:"nearbyRadiusMeters" yaml:"nearbyRadiusMeters"`

	// Timeout bounds a single request to the provider.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// FirestoreConfig defines the document store connection and namespace.
type FirestoreConfig struct {
	ProjectID       string `json:"projectId" yaml:"projectId"`
	CredentialsPath string `json:"credentialsPath" yaml:"credentialsPath"`

	// AppID namespaces all document paths (artifacts/{appId}/...).
	AppID string `json:"appId" yaml:"appId"`
}

// StorageConfig defines the photo upload bucket.
type StorageConfig struct {
	// BucketURL is a gocloud.dev bucket URL, e.g. "gs://dogpark-photos".
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`

	// PublicBaseURL is the base under which uploaded objects are readable.
	PublicBaseURL string `json:"publicBaseUrl" yaml:"publicBaseUrl"`
}

// SearchConfig defines the aggregation engine's tuning knobs.
type SearchConfig struct {
	// DebounceInterval is the quiet period required before a typed query
	// is sent to the provider.
	DebounceInterval time.Duration `json:"debounceInterval" yaml:"debounceInterval"`

	// MinQueryLength is the minimum trimmed query length that triggers a
	// text search. Shorter queries fall back to the nearby view.
	MinQueryLength int `json:"minQueryLength" yaml:"minQueryLength"`

	// FreshnessWindow is how long a check-in counts toward live traffic.
	FreshnessWindow time.Duration `json:"freshnessWindow" yaml:"freshnessWindow"`
}

// BreedsConfig defines the breed directory API.
type BreedsConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: PLACES_APIKEY -> places.apiKey (not places.apikey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	if err := cfg.applyDefaults(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyDefaults fills optional knobs and rejects unusable credentials.
// A missing or placeholder places API key is fatal: operating with an
// invalid key would turn every search into a provider error.
func (cfg *Config) applyDefaults() error {
	if cfg.Places == nil || strings.TrimSpace(cfg.Places.APIKey) == "" {
		return errors.New("places API key is required")
	}
	if strings.HasPrefix(cfg.Places.APIKey, "YOUR_") {
		return errors.Errorf("places API key is a placeholder: %s", cfg.Places.APIKey)
	}
	if cfg.Places.BaseURL == "" {
		cfg.Places.BaseURL = defaultPlacesBaseURL
	}
	if cfg.Places.PhotoMaxWidth == 0 {
		cfg.Places.PhotoMaxWidth = defaultPhotoMaxWidth
	}
	if cfg.Places.NearbyRadiusMeters == 0 {
		cfg.Places.NearbyRadiusMeters = defaultNearbyRadiusMeters
	}
	if cfg.Places.Timeout == 0 {
		cfg.Places.Timeout = 30 * time.Second
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.DebounceInterval == 0 {
		cfg.Search.DebounceInterval = defaultDebounceInterval
	}
	if cfg.Search.MinQueryLength == 0 {
		cfg.Search.MinQueryLength = defaultMinQueryLength
	}
	if cfg.Search.FreshnessWindow == 0 {
		cfg.Search.FreshnessWindow = defaultFreshnessWindow
	}

	if cfg.Breeds == nil {
		cfg.Breeds = &BreedsConfig{}
	}
	if cfg.Breeds.BaseURL == "" {
		cfg.Breeds.BaseURL = defaultBreedsBaseURL
	}
	if cfg.Breeds.Timeout == 0 {
		cfg.Breeds.Timeout = 30 * time.Second
	}

	return nil
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
