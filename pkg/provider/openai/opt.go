package openai

import (
	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
)

///////////////////////////////////////////////////////////////////////////////
// GENERATION OPTIONS
//
// See: https://platform.openai.com/docs/api-reference/chat/create

// WithTemperature sets the temperature for the request (0.0 to 2.0).
// Higher values produce more random output, lower values more deterministic.
func WithTemperature(value float64) opt.Opt {
	if value < 0 || value > 2 {
		return opt.Error(wearbot.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	return opt.SetFloat64(opt.TemperatureKey, value)
}

// WithMaxTokens sets the maximum number of tokens to generate (minimum 1).
func WithMaxTokens(value uint) opt.Opt {
	if value < 1 {
		return opt.Error(wearbot.ErrBadParameter.With("max_tokens must be at least 1"))
	}
	return opt.SetUint(opt.MaxTokensKey, value)
}
