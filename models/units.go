package models

// Units identifies the measurement system requested from the provider.
type Units string

// Measurement systems understood by the provider.
const (
	UnitsMetric   Units = "metric"   // Celsius, m/s
	UnitsImperial Units = "imperial" // Fahrenheit, mph
	UnitsStandard Units = "standard" // Kelvin, m/s
)

// Valid reports whether u is one of the documented measurement systems.
func (u Units) Valid() bool {
	switch u {
	case UnitsMetric, UnitsImperial, UnitsStandard:
		return true
	}
	return false
}

// TempSuffix returns the temperature suffix for this unit system.
// The provider falls back to Kelvin for anything it does not recognize,
// so unknown values get the Kelvin suffix as well.
func (u Units) TempSuffix() string {
	switch u {
	case UnitsMetric:
		return "°C"
	case UnitsImperial:
		return "°F"
	default:
		return "K"
	}
}

// WindSuffix returns the wind speed suffix for this unit system.
func (u Units) WindSuffix() string {
	if u == UnitsImperial {
		return "mph"
	}
	return "m/s"
}
