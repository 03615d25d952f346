package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	tool "github.com/mutablelogic/go-wearbot/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type currentWeather struct {
	weather     wearbot.WeatherFetcher
	defaultCity string
}

var _ tool.Tool = (*currentWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ToolName    = "get_current_weather"
	DefaultCity = "Syracuse, NY, US"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewTool returns the current weather tool for use with a model. A missing
// location falls back to defaultCity, which is DefaultCity when empty.
func NewTool(weather wearbot.WeatherFetcher, defaultCity string) (tool.Tool, error) {
	if weather == nil {
		return nil, wearbot.ErrBadParameter.With("missing weather client")
	}
	if defaultCity = strings.TrimSpace(defaultCity); defaultCity == "" {
		defaultCity = DefaultCity
	}
	return &currentWeather{weather: weather, defaultCity: defaultCity}, nil
}

///////////////////////////////////////////////////////////////////////////////
// CURRENT WEATHER

func (*currentWeather) Name() string {
	return ToolName
}

func (*currentWeather) Description() string {
	return "Get the current weather for a given city. Use this whenever weather information is needed."
}

// Return the JSON schema for the tool input
func (c *currentWeather) Schema() (*jsonschema.Schema, error) {
	s, err := jsonschema.For[CurrentWeatherRequest](nil)
	if err != nil {
		return nil, err
	}

	// A missing location is filled from the default before validation
	s.Required = []string{"location"}
	if location, ok := s.Properties["location"]; ok && location != nil {
		location.Description = fmt.Sprintf("The city name, e.g. 'Syracuse, NY, US' or 'Lima, Peru'. Default to '%s' if no location is provided.", c.defaultCity)
		location.Default = jsonValue(c.defaultCity)
	}
	if units, ok := s.Properties["units"]; ok && units != nil {
		units.Enum = []any{string(schema.UnitsImperial), string(schema.UnitsMetric)}
		units.Default = jsonValue(string(schema.DefaultUnits))
	}

	return s, nil
}

// Run the tool with the given input
func (c *currentWeather) Run(ctx context.Context, input json.RawMessage) (any, error) {
	var req CurrentWeatherRequest

	// Unmarshal JSON input if provided
	if len(input) > 0 {
		if err := json.Unmarshal(input, &req); err != nil {
			return nil, wearbot.ErrBadParameter.Withf("failed to unmarshal input: %v", err)
		}
	}

	// Set defaults
	location := strings.TrimSpace(req.Location)
	if location == "" {
		location = c.defaultCity
	}
	units, err := schema.ParseUnits(req.Units)
	if err != nil {
		return nil, wearbot.ErrBadParameter.With(err)
	}

	return c.weather.Current(ctx, location, units)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func jsonValue(v string) json.RawMessage {
	data, _ := json.Marshal(v)
	return data
}
