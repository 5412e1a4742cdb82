package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"tokyo-weather/models"

	"golang.org/x/time/rate"
)

// Query carries the optional per-call parameters. Zero values fall back to
// the configured defaults.
type Query struct {
	Units models.Units
	Lang  string
}

// withDefaults fills unset fields from the configuration.
func (q Query) withDefaults(cfg Config) Query {
	if q.Units == "" {
		q.Units = cfg.Units
	}
	if q.Lang == "" {
		q.Lang = cfg.Lang
	}
	return q
}

// Client fetches current weather conditions for the configured city.
// It is safe for concurrent use: the configuration is read-only and the
// underlying HTTP client and rate limiter handle their own locking.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client from an explicit configuration. Zero-valued
// optional fields are replaced with defaults; a missing API key fails with
// a *ConfigError.
func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, &ConfigError{Reason: "API key is required"}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.City == "" {
		cfg.City = DefaultCity
	}
	if cfg.Units == "" {
		cfg.Units = models.UnitsMetric
	}
	if cfg.Lang == "" {
		cfg.Lang = "ja"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	client := &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
	if cfg.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst)
	}
	return client, nil
}

// NewClientFromEnv creates a client from the defaults and the environment.
// It fails with a *ConfigError before any request when OPENWEATHER_API_KEY
// is not set.
func NewClientFromEnv() (*Client, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewClient(cfg)
}

// currentResponse mirrors the part of the provider's current-weather schema
// this client consumes. Pointers mark the fields whose absence makes a
// response unusable.
type currentResponse struct {
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		TempMin   *float64 `json:"temp_min"`
		TempMax   *float64 `json:"temp_max"`
		Humidity  *int     `json:"humidity"`
	} `json:"main"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description *string `json:"description"`
	} `json:"weather"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// errorResponse is the provider's error body. Cod arrives as a number or a
// string depending on the failure, so it is decoded loosely.
type errorResponse struct {
	Cod     any    `json:"cod"`
	Message string `json:"message"`
}

// GetCurrentWeather performs one GET against the current-weather endpoint
// and returns the parsed result. Failures are reported as *NetworkError
// (transport), *APIError (non-200 status) or *ParseError (unusable 200
// body); nothing is retried.
func (c *Client) GetCurrentWeather(ctx context.Context, q Query) (models.Report, error) {
	q = q.withDefaults(c.cfg)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return models.Report{}, &NetworkError{Err: fmt.Errorf("rate limit wait: %w", err)}
		}
	}

	endpoint := fmt.Sprintf("%s/weather", c.cfg.BaseURL)
	params := url.Values{}
	params.Add("q", c.cfg.City)
	params.Add("appid", c.cfg.APIKey)
	params.Add("units", string(q.Units))
	params.Add("lang", q.Lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.Report{}, &NetworkError{Err: fmt.Errorf("create request: %w", err)}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Report{}, &NetworkError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.Report{}, &NetworkError{Err: fmt.Errorf("read response body: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		return models.Report{}, apiError(resp.StatusCode, body)
	}

	return parseCurrent(body, q)
}

// GetFormattedWeather fetches the current weather and renders it as
// human-readable text in the query's language. Errors from
// GetCurrentWeather pass through unchanged.
func (c *Client) GetFormattedWeather(ctx context.Context, q Query) (string, error) {
	report, err := c.GetCurrentWeather(ctx, q)
	if err != nil {
		return "", err
	}
	return Format(report), nil
}

// apiError builds an *APIError from a non-200 response, preferring the
// provider's structured error body over raw text.
func apiError(status int, body []byte) *APIError {
	var er errorResponse
	if err := json.Unmarshal(body, &er); err == nil && er.Message != "" {
		code := ""
		if er.Cod != nil {
			code = fmt.Sprint(er.Cod)
		}
		return &APIError{StatusCode: status, Code: code, Message: er.Message}
	}
	return &APIError{StatusCode: status, Message: strings.TrimSpace(string(body))}
}

// parseCurrent decodes a 200 body and validates the fields the schema
// guarantees before producing a report.
func parseCurrent(body []byte, q Query) (models.Report, error) {
	var cur currentResponse
	if err := json.Unmarshal(body, &cur); err != nil {
		return models.Report{}, &ParseError{Err: err}
	}

	switch {
	case cur.Main == nil:
		return models.Report{}, missingField("main")
	case cur.Main.Temp == nil:
		return models.Report{}, missingField("main.temp")
	case cur.Main.Humidity == nil:
		return models.Report{}, missingField("main.humidity")
	case cur.Wind == nil:
		return models.Report{}, missingField("wind")
	case cur.Wind.Speed == nil:
		return models.Report{}, missingField("wind.speed")
	case len(cur.Weather) == 0:
		return models.Report{}, missingField("weather")
	case cur.Weather[0].Description == nil:
		return models.Report{}, missingField("weather[0].description")
	case cur.Name == "":
		return models.Report{}, missingField("name")
	}

	report := models.Report{
		City:        cur.Name,
		Country:     cur.Sys.Country,
		Description: *cur.Weather[0].Description,
		Temperature: *cur.Main.Temp,
		FeelsLike:   cur.Main.FeelsLike,
		TempMin:     cur.Main.TempMin,
		TempMax:     cur.Main.TempMax,
		Humidity:    *cur.Main.Humidity,
		WindSpeed:   *cur.Wind.Speed,
		Units:       q.Units,
		Lang:        q.Lang,
	}
	if cur.Dt > 0 {
		report.Timestamp = time.Unix(cur.Dt, 0)
	}
	return report, nil
}

func missingField(path string) *ParseError {
	return &ParseError{Err: fmt.Errorf("missing field %q", path)}
}
