package openweather

import (
	"fmt"
)

// ConfigError reports unusable client configuration, such as a missing API key.
// It is returned before any request is made.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// NetworkError reports a transport-level failure: the request never produced
// an HTTP response (connection refused, timeout, canceled context).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "request failed: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// APIError reports a non-200 response from the provider. Code and Message
// come from the provider's error body when it is decodable; otherwise
// Message holds the raw body text.
type APIError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error (HTTP %d)", e.StatusCode)
	}
	return fmt.Sprintf("API error (HTTP %d): %s", e.StatusCode, e.Message)
}

// ParseError reports a 200 response whose body could not be decoded or is
// missing fields the current-weather schema guarantees.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return "unexpected response: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
