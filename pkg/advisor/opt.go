package advisor

import (
	"strings"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	trace "go.opentelemetry.io/otel/trace"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Opt is a functional option for configuring an advisor
type Opt func(*Advisor) error

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	toolChoiceAuto = "auto"
)

///////////////////////////////////////////////////////////////////////////////
// ADVISOR OPTIONS

// WithDefaultCity sets the city used when none is given
func WithDefaultCity(city string) Opt {
	return func(a *Advisor) error {
		if city = strings.TrimSpace(city); city == "" {
			return wearbot.ErrBadParameter.With("default city is required")
		}
		a.defaultCity = city
		return nil
	}
}

// WithTracer sets the tracer for advice spans
func WithTracer(tracer trace.Tracer) Opt {
	return func(a *Advisor) error {
		if tracer == nil {
			return nil
		}
		a.tracer = tracer
		return nil
	}
}

// WithLogger sets the logger for phase transitions and tool failures
func WithLogger(logger wearbot.Logger) Opt {
	return func(a *Advisor) error {
		if logger == nil {
			return wearbot.ErrBadParameter.With("logger is required")
		}
		a.logger = logger
		return nil
	}
}

// WithGenerateOpts adds options to every completion request, for example
// the model or temperature
func WithGenerateOpts(opts ...opt.Opt) Opt {
	return func(a *Advisor) error {
		a.opts = append(a.opts, opts...)
		return nil
	}
}
