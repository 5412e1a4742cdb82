package models

import (
	"time"
)

// Report represents the current weather conditions parsed from one provider response
type Report struct {
	City        string    `json:"city"`
	Country     string    `json:"country,omitempty"`
	Description string    `json:"description"` // localized conditions text
	Temperature float64   `json:"temperature"`
	FeelsLike   *float64  `json:"feelsLike,omitempty"` // nil when the provider omits it
	TempMin     *float64  `json:"tempMin,omitempty"`
	TempMax     *float64  `json:"tempMax,omitempty"`
	Humidity    int       `json:"humidity"` // percentage
	WindSpeed   float64   `json:"windSpeed"`
	Units       Units     `json:"units"`
	Lang        string    `json:"lang"`
	Timestamp   time.Time `json:"timestamp"` // provider observation time, zero when not reported
}
