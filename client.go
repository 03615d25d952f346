package wearbot

import (
	"context"

	// Packages
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Generator is the interface for a chat completion service
type Generator interface {
	// Return the provider name
	Name() string

	// Generate the next assistant turn for the conversation. The result is
	// either plain text or a request to invoke one or more tools.
	Generate(ctx context.Context, conversation *schema.Conversation, opts ...opt.Opt) (schema.Completion, error)
}

// WeatherFetcher returns current weather conditions for a location
type WeatherFetcher interface {
	// Current returns the weather for the location in the given unit system
	Current(ctx context.Context, location string, units schema.Units) (schema.WeatherRecord, error)
}

// Logger has the same call shape as the server logger, so that the
// command line and server can share one implementation
type Logger interface {
	// Print a log message
	Print(ctx context.Context, args ...any)

	// Print a formatted log message
	Printf(ctx context.Context, format string, args ...any)
}
