package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	config "github.com/mutablelogic/go-wearbot/pkg/config"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration file
	Config string `name:"config" env:"WEARBOT_CONFIG" type:"existingfile" help:"Path to YAML configuration file"`

	// Services
	OpenAI      `embed:"" help:"OpenAI configuration"`
	OpenWeather `embed:"" help:"OpenWeather configuration"`

	// Defaults
	DefaultCity  string `name:"default-city" env:"WEARBOT_DEFAULT_CITY" help:"City used when none is given"`
	DefaultUnits string `name:"default-units" env:"WEARBOT_UNITS" enum:"imperial,metric," default:"" help:"Units used when none are given"`

	// Open Telemetry
	OTel struct {
		Endpoint string `name:"endpoint" env:"OTEL_EXPORTER_OTLP_ENDPOINT" help:"OTLP/HTTP endpoint for traces"`
		Name     string `name:"name" env:"OTEL_SERVICE_NAME" help:"Service name for traces"`
	} `embed:"" prefix:"otel."`

	// HTTP server and client options
	HTTP struct {
		Addr    string        `name:"addr" env:"WEARBOT_ADDR" default:"localhost:8084" help:"HTTP listen address"`
		Prefix  string        `name:"prefix" default:"/api" help:"HTTP path prefix"`
		Origin  string        `name:"origin" default:"" help:"CORS origin, or empty to disable"`
		Timeout time.Duration `name:"timeout" default:"0s" help:"Timeout for requests to the weather and completion services"`
	} `embed:"" prefix:"http."`

	// Context
	ctx      context.Context
	execName string
	tracer   trace.Tracer
	logger   *Logger
}

type OpenAI struct {
	OpenAIKey      string   `name:"openai-key" env:"OPENAI_API_KEY" help:"OpenAI API key"`
	OpenAIEndpoint string   `name:"openai-endpoint" env:"OPENAI_BASE_URL" help:"OpenAI-compatible API endpoint"`
	Model          string   `name:"model" env:"WEARBOT_MODEL" help:"Model used for advice"`
	Temperature    *float64 `name:"temperature" help:"Sampling temperature (0.0 to 2.0)"`
	MaxTokens      uint     `name:"max-tokens" help:"Maximum number of tokens in each completion"`
}

type OpenWeather struct {
	WeatherKey      string `name:"openweather-key" env:"OPENWEATHER_API_KEY" help:"OpenWeather API key"`
	WeatherEndpoint string `name:"openweather-endpoint" env:"OPENWEATHER_URL" help:"OpenWeather API endpoint"`
}

type CLI struct {
	Globals

	// Commands
	Advice  AdviceCommand  `cmd:"" name:"advice" help:"Recommend clothing and outdoor activities for a city." group:"ADVICE"`
	Weather WeatherCommand `cmd:"" name:"weather" help:"Get the current weather for a location." group:"ADVICE"`
	ServerCommands
	Version VersionCommand `cmd:"" name:"version" help:"Print version information."`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("What to wear today, based on the current weather"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	// Create a context
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx
	cli.Globals.execName = execName()

	// Create a logger
	cli.Globals.logger = NewLogger(os.Stderr, cli.Debug)

	// Create a tracer, which exports spans when an endpoint is set
	cli.Globals.tracer = noop.NewTracerProvider().Tracer(cli.Globals.execName)
	if cli.OTel.Endpoint != "" {
		name := cli.OTel.Name
		if name == "" {
			name = cli.Globals.execName
		}
		provider, err := NewTracerProvider(ctx, cli.OTel.Endpoint, name)
		cmd.FatalIfErrorf(err)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := provider.Shutdown(shutdownCtx); err != nil {
				cli.Globals.logger.Printf(shutdownCtx, "tracer shutdown: %v", err)
			}
		}()
		cli.Globals.tracer = provider.Tracer(name)
	}

	// Run the command
	if err := cmd.Run(&cli.Globals); err != nil {
		cmd.FatalIfErrorf(err)
		return
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Configuration returns the defaults, overlaid with the configuration file
// and then the command line flags and environment
func (g *Globals) Configuration() (config.Config, error) {
	cfg := config.Default()
	if g.Config != "" {
		if file, err := config.LoadFile(g.Config); err != nil {
			return config.Config{}, err
		} else {
			cfg = file
		}
	}
	cfg.Override(config.Config{
		OpenAIKey:       g.OpenAIKey,
		WeatherKey:      g.WeatherKey,
		Model:           g.Model,
		DefaultCity:     g.DefaultCity,
		Units:           schema.Units(g.DefaultUnits),
		OpenAIEndpoint:  g.OpenAIEndpoint,
		WeatherEndpoint: g.WeatherEndpoint,
		Timeout:         g.HTTP.Timeout,
		Temperature:     g.Temperature,
		MaxTokens:       g.MaxTokens,
	})
	return cfg, nil
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	} else {
		return filepath.Base(name)
	}
}
