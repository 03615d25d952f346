package main

import (
	"log/slog"
	"os"

	// Packages
	client "github.com/mutablelogic/go-client"
	advisor "github.com/mutablelogic/go-wearbot/pkg/advisor"
	config "github.com/mutablelogic/go-wearbot/pkg/config"
	openweather "github.com/mutablelogic/go-wearbot/pkg/openweather"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	openai "github.com/mutablelogic/go-wearbot/pkg/provider/openai"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Weather returns a weather client configured from the globals
func (g *Globals) Weather(cfg config.Config) (*openweather.Client, error) {
	opts := g.clientOpts(cfg)
	if cfg.WeatherEndpoint != "" {
		opts = append(opts, client.OptEndpoint(cfg.WeatherEndpoint))
	}
	return openweather.New(cfg.WeatherKey, opts...)
}

// Generator returns a completion client configured from the globals
func (g *Globals) Generator(cfg config.Config) (*openai.Client, error) {
	opts := g.clientOpts(cfg)
	if cfg.OpenAIEndpoint != "" {
		opts = append(opts, client.OptEndpoint(cfg.OpenAIEndpoint))
	}
	return openai.New(cfg.OpenAIKey, cfg.Model, opts...)
}

// Advisor returns an advisor and the weather client it uses. Both API
// keys are required.
func (g *Globals) Advisor() (*advisor.Advisor, *openweather.Client, error) {
	cfg, err := g.Configuration()
	if err != nil {
		return nil, nil, err
	} else if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	// Create the clients
	weather, err := g.Weather(cfg)
	if err != nil {
		return nil, nil, err
	}
	generator, err := g.Generator(cfg)
	if err != nil {
		return nil, nil, err
	}

	// Generation options
	var generateOpts []opt.Opt
	if cfg.Temperature != nil {
		generateOpts = append(generateOpts, openai.WithTemperature(*cfg.Temperature))
	}
	if cfg.MaxTokens > 0 {
		generateOpts = append(generateOpts, openai.WithMaxTokens(cfg.MaxTokens))
	}

	// Create the advisor
	advisor, err := advisor.New(generator, weather,
		advisor.WithDefaultCity(cfg.DefaultCity),
		advisor.WithTracer(g.tracer),
		advisor.WithLogger(g.logger.WithLevel(slog.LevelDebug)),
		advisor.WithGenerateOpts(generateOpts...),
	)
	if err != nil {
		return nil, nil, err
	}

	// Return success
	return advisor, weather, nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// clientOpts returns the options shared by all outgoing clients
func (g *Globals) clientOpts(cfg config.Config) []client.ClientOpt {
	opts := []client.ClientOpt{}
	if g.Debug || g.Verbose {
		opts = append(opts, client.OptTrace(os.Stderr, g.Verbose))
	}
	if g.tracer != nil {
		opts = append(opts, client.OptTracer(g.tracer))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, client.OptTimeout(cfg.Timeout))
	}
	return opts
}
