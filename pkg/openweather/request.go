package openweather

import (
	"encoding/json"
	"net/url"
	"strings"

	// Packages
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// REQUEST TYPES

// CurrentWeatherRequest defines the input for the current weather query
type CurrentWeatherRequest struct {
	Location string `json:"location" jsonschema:"The city name, e.g. 'Syracuse, NY, US' or 'Lima, Peru'. Default to 'Syracuse, NY, US' if no location is provided."`
	Units    string `json:"units,omitempty" jsonschema:"Temperature units. Default is 'imperial' (Fahrenheit)."`
}

///////////////////////////////////////////////////////////////////////////////
// RESPONSE TYPES

type currentResponse struct {
	Name string `json:"name"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type errorResponse struct {
	Code    any    `json:"cod"`
	Message string `json:"message"`
}

///////////////////////////////////////////////////////////////////////////////
// METHODS

// Values converts CurrentWeatherRequest to URL query parameters
func (r *CurrentWeatherRequest) Values(apiKey string) url.Values {
	result := url.Values{}
	result.Set("q", r.Location)
	result.Set("appid", apiKey)
	if r.Units != "" {
		result.Set("units", r.Units)
	} else {
		result.Set("units", string(schema.DefaultUnits))
	}
	return result
}

// Record normalizes a response into a WeatherRecord for the requested location
func (r *currentResponse) Record(location string, units schema.Units) schema.WeatherRecord {
	record := schema.WeatherRecord{
		Location:    location,
		Temperature: schema.Round(r.Main.Temp),
		FeelsLike:   schema.Round(r.Main.FeelsLike),
		TempMin:     schema.Round(r.Main.TempMin),
		TempMax:     schema.Round(r.Main.TempMax),
		Humidity:    schema.Round(r.Main.Humidity),
		Units:       units.Label(),
	}
	if len(r.Weather) > 0 {
		record.Description = r.Weather[0].Description
	}
	return record
}

// messageFrom returns the "message" field of the first JSON object
// embedded in text, or an empty string
func messageFrom(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start < 0 || end < start {
		return ""
	}
	var body errorResponse
	if err := json.Unmarshal([]byte(text[start:end+1]), &body); err != nil {
		return ""
	}
	return strings.TrimSpace(body.Message)
}
