package schema

import (
	"fmt"
	"math"
	"strings"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Units is the unit system used when requesting weather
type Units string

// WeatherRecord is the normalized current weather for a location
type WeatherRecord struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	TempMin     float64 `json:"temp_min"`
	TempMax     float64 `json:"temp_max"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
	Units       string  `json:"units"`
}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	UnitsImperial Units = "imperial"
	UnitsMetric   Units = "metric"
)

const (
	// DefaultUnits is used when no unit system is requested
	DefaultUnits = UnitsImperial
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ParseUnits returns the unit system for a string, or DefaultUnits when
// the string is empty
func ParseUnits(v string) (Units, error) {
	switch Units(strings.ToLower(strings.TrimSpace(v))) {
	case "":
		return DefaultUnits, nil
	case UnitsImperial:
		return UnitsImperial, nil
	case UnitsMetric:
		return UnitsMetric, nil
	default:
		return "", fmt.Errorf("unsupported units %q (expected %q or %q)", v, UnitsImperial, UnitsMetric)
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Label returns the display label for temperatures in this unit system
func (u Units) Label() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

// Round rounds a value to two decimal places
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (u Units) String() string {
	return string(u)
}

func (w WeatherRecord) String() string {
	return types.Stringify(w)
}
