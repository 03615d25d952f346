package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// AdviceRequest represents a request for clothing and activity advice
type AdviceRequest struct {
	City string `json:"city,omitempty" arg:"" optional:"" help:"City name, e.g. 'Syracuse, NY, US' or 'Tokyo, Japan'"`
}

// AdviceResponse represents the advice for a city
type AdviceResponse struct {
	Id     string `json:"id"`
	City   string `json:"city"`
	Advice string `json:"advice"`
}

// WeatherRequest represents a request for the current weather
type WeatherRequest struct {
	Location string `json:"location" arg:"" optional:"" help:"City name, e.g. 'Lima, Peru'"`
	Units    string `json:"units,omitempty" help:"Temperature units (imperial or metric)" enum:"imperial,metric," default:""`
}

// ListToolsResponse represents the tools offered to the model
type ListToolsResponse struct {
	Count uint             `json:"count"`
	Body  []ToolDefinition `json:"body,omitzero"`
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (r AdviceRequest) String() string {
	return types.Stringify(r)
}

func (r AdviceResponse) String() string {
	return types.Stringify(r)
}

func (r WeatherRequest) String() string {
	return types.Stringify(r)
}

func (r ListToolsResponse) String() string {
	return types.Stringify(r)
}
