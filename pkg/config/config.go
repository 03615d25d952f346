/*
config holds the settings shared by the weather client, the completion
client and the advisor. Settings are read from an optional YAML file and
can then be overridden by command line flags or environment variables.
*/
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"
	"time"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
	yaml "gopkg.in/yaml.v3"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Config is passed explicitly to each component at construction
type Config struct {
	OpenAIKey       string        `yaml:"openai_key,omitempty" json:"-"`
	WeatherKey      string        `yaml:"openweather_key,omitempty" json:"-"`
	Model           string        `yaml:"model,omitempty" json:"model,omitempty"`
	DefaultCity     string        `yaml:"default_city,omitempty" json:"default_city,omitempty"`
	Units           schema.Units  `yaml:"units,omitempty" json:"units,omitempty"`
	OpenAIEndpoint  string        `yaml:"openai_endpoint,omitempty" json:"openai_endpoint,omitempty"`
	WeatherEndpoint string        `yaml:"openweather_endpoint,omitempty" json:"openweather_endpoint,omitempty"`
	Timeout         time.Duration `yaml:"timeout,omitempty" json:"timeout,omitempty"`
	Temperature     *float64      `yaml:"temperature,omitempty" json:"temperature,omitempty"`
	MaxTokens       uint          `yaml:"max_tokens,omitempty" json:"max_tokens,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	DefaultModel   = "gpt-4o-mini"
	DefaultCity    = "Syracuse, NY, US"
	DefaultTimeout = 30 * time.Second
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Default returns the configuration used when nothing else is set. API
// keys have no default, and temperature and max tokens are left to the
// completion service.
func Default() Config {
	return Config{
		Model:       DefaultModel,
		DefaultCity: DefaultCity,
		Units:       schema.DefaultUnits,
		Timeout:     DefaultTimeout,
	}
}

// LoadFile returns the default configuration overlaid with the settings
// in a YAML file. Unknown keys are rejected.
func LoadFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, err
	}
	defer f.Close()
	return Read(f)
}

// Read returns the default configuration overlaid with YAML from r
func Read(r io.Reader) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}

	// Decode the file
	var file Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, wearbot.ErrBadParameter.Withf("config: %v", err)
	}

	// Overlay onto the defaults
	result := Default()
	result.Override(file)

	// Return success
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Override replaces each setting with the value in other, where that value
// is set
func (c *Config) Override(other Config) {
	overrideString(&c.OpenAIKey, other.OpenAIKey)
	overrideString(&c.WeatherKey, other.WeatherKey)
	overrideString(&c.Model, other.Model)
	overrideString(&c.DefaultCity, other.DefaultCity)
	overrideString(&c.OpenAIEndpoint, other.OpenAIEndpoint)
	overrideString(&c.WeatherEndpoint, other.WeatherEndpoint)
	if units := strings.TrimSpace(string(other.Units)); units != "" {
		c.Units = schema.Units(units)
	}
	if other.Timeout != 0 {
		c.Timeout = other.Timeout
	}
	if other.Temperature != nil {
		c.Temperature = types.Ptr(*other.Temperature)
	}
	if other.MaxTokens != 0 {
		c.MaxTokens = other.MaxTokens
	}
}

// Validate returns an error if a required setting is missing or a setting
// is out of range. Units are normalized.
func (c *Config) Validate() error {
	var result error
	if c.OpenAIKey == "" {
		result = errors.Join(result, wearbot.ErrBadParameter.With("missing OpenAI API key"))
	}
	if c.WeatherKey == "" {
		result = errors.Join(result, wearbot.ErrBadParameter.With("missing OpenWeather API key"))
	}
	if units, err := schema.ParseUnits(string(c.Units)); err != nil {
		result = errors.Join(result, wearbot.ErrBadParameter.With(err))
	} else {
		c.Units = units
	}
	if c.Timeout < 0 {
		result = errors.Join(result, wearbot.ErrBadParameter.With("timeout cannot be negative"))
	}
	if c.Temperature != nil && (*c.Temperature < 0 || *c.Temperature > 2) {
		result = errors.Join(result, wearbot.ErrBadParameter.With("temperature must be between 0.0 and 2.0"))
	}
	if strings.TrimSpace(c.DefaultCity) == "" {
		c.DefaultCity = DefaultCity
	}
	return result
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Config) String() string {
	return types.Stringify(c)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func overrideString(dest *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dest = value
	}
}
