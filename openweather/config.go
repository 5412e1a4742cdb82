package openweather

import (
	"os"
	"strings"
	"time"

	"tokyo-weather/models"
)

const (
	// DefaultBaseURL is the root of the provider's v2.5 API family.
	DefaultBaseURL = "https://api.openweathermap.org/data/2.5"

	// DefaultCity is the city every request reports on.
	DefaultCity = "Tokyo"

	// APIKeyEnv is the environment variable holding the provider API key.
	APIKeyEnv = "OPENWEATHER_API_KEY"

	defaultTimeout = 10 * time.Second
)

// OpenWeatherMap's free tier allows 60 calls/minute. One request per second
// with a small burst stays inside it.
const (
	defaultRequestsPerSecond = 1.0
	defaultBurst             = 5
)

// Config holds the client configuration. Values are fixed at client
// construction and never change afterwards.
type Config struct {
	// APIKey authenticates requests to the provider. Required.
	APIKey string

	// BaseURL is the API root. Overridable for testing.
	BaseURL string

	// City is the location sent with every request.
	City string

	// Units and Lang are the defaults applied when a query leaves them unset.
	Units models.Units
	Lang  string

	// Timeout bounds each HTTP request.
	Timeout time.Duration

	// RequestsPerSecond throttles outbound calls. Zero disables throttling;
	// when set, Burst must be at least 1.
	RequestsPerSecond float64
	Burst             int
}

// DefaultConfig returns the configuration used when no overrides are given.
// The API key is left empty; LoadConfig fills it from the environment.
func DefaultConfig() Config {
	return Config{
		BaseURL:           DefaultBaseURL,
		City:              DefaultCity,
		Units:             models.UnitsMetric,
		Lang:              "ja",
		Timeout:           defaultTimeout,
		RequestsPerSecond: defaultRequestsPerSecond,
		Burst:             defaultBurst,
	}
}

// LoadConfig returns the default configuration with the API key read from
// the environment. A missing or blank key fails with a *ConfigError.
func LoadConfig() (Config, error) {
	key := strings.TrimSpace(os.Getenv(APIKeyEnv))
	if key == "" {
		return Config{}, &ConfigError{Reason: APIKeyEnv + " is not set"}
	}

	cfg := DefaultConfig()
	cfg.APIKey = key
	return cfg, nil
}
