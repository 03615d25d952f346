/*
advisor answers "what should I wear today" for a city. It offers the
current weather tool to a completion service, runs the tool calls the
model asks for, and returns the model's final advice.
*/
package advisor

import (
	"context"
	"errors"
	"fmt"
	"strings"

	// Packages
	otel "github.com/mutablelogic/go-client/pkg/otel"
	wearbot "github.com/mutablelogic/go-wearbot"
	openweather "github.com/mutablelogic/go-wearbot/pkg/openweather"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	tool "github.com/mutablelogic/go-wearbot/pkg/tool"
	attribute "go.opentelemetry.io/otel/attribute"
	trace "go.opentelemetry.io/otel/trace"
	noop "go.opentelemetry.io/otel/trace/noop"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Advisor is safe for concurrent use. Each call to Advice owns its
// conversation.
type Advisor struct {
	generator   wearbot.Generator
	toolkit     *tool.Toolkit
	defaultCity string
	opts        []opt.Opt
	tracer      trace.Tracer
	logger      wearbot.Logger
}

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	systemPrompt = "You are a helpful fashion and outdoor-activities assistant. " +
		"When given a city, fetch the current weather and then recommend appropriate " +
		"clothing and outdoor activities for the day. If no city is given, default to %s."
	userPrompt = "What should I wear today in %s?"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates an advisor which uses the generator for completions and the
// weather client to answer tool calls
func New(generator wearbot.Generator, weather wearbot.WeatherFetcher, opts ...Opt) (*Advisor, error) {
	if generator == nil {
		return nil, wearbot.ErrBadParameter.With("generator is required")
	} else if weather == nil {
		return nil, wearbot.ErrBadParameter.With("weather client is required")
	}

	// Apply options
	self := &Advisor{
		generator:   generator,
		defaultCity: openweather.DefaultCity,
		tracer:      noop.NewTracerProvider().Tracer("advisor"),
		logger:      nopLogger{},
	}
	for _, fn := range opts {
		if err := fn(self); err != nil {
			return nil, err
		}
	}

	// The only tool offered is the current weather
	weatherTool, err := openweather.NewTool(weather, self.defaultCity)
	if err != nil {
		return nil, err
	}
	toolkit, err := tool.NewToolkit(weatherTool)
	if err != nil {
		return nil, err
	} else {
		self.toolkit = toolkit
	}

	// Return success
	return self, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// DefaultCity returns the city used when none is given
func (a *Advisor) DefaultCity() string {
	return a.defaultCity
}

// Toolkit returns the tools offered to the model
func (a *Advisor) Toolkit() *tool.Toolkit {
	return a.toolkit
}

// City returns the city which Advice uses for the given input
func (a *Advisor) City(city string) string {
	if city = strings.TrimSpace(city); city == "" {
		return a.defaultCity
	}
	return city
}

// Advice returns clothing and outdoor activity recommendations for a city,
// as markdown. A blank city is replaced by the default city. Errors from
// the completion service are returned; weather errors are passed to the
// model instead.
func (a *Advisor) Advice(ctx context.Context, city string) (result string, err error) {
	city = a.City(city)

	// Otel span
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "Advice",
		attribute.String("city", city),
		attribute.String("provider", a.generator.Name()),
	)
	defer func() { endSpan(err) }()

	// Create the conversation
	conversation, err := a.conversation(city)
	if err != nil {
		return "", err
	}

	// Intent phase: the model may ask for the weather
	a.logger.Printf(ctx, "advice for %q: requesting completion", city)
	completion, err := a.generate(ctx, "Intent", conversation, a.intentOpts()...)
	if err != nil {
		return "", err
	}

	switch completion := completion.(type) {
	case schema.PlainText:
		a.logger.Printf(ctx, "advice for %q: answered without tools", city)
		return completion.Text, nil
	case schema.ToolRequest:
		if err := a.resolve(ctx, conversation, completion); err != nil {
			return "", err
		}
	default:
		return "", wearbot.ErrInternalServerError.Withf("unexpected completion %T", completion)
	}

	// Final phase: no tools are offered
	a.logger.Printf(ctx, "advice for %q: requesting final completion", city)
	completion, err = a.generate(ctx, "Final", conversation, a.opts...)
	if err != nil {
		return "", err
	}
	if text := completion.Message().Text; text != "" {
		return text, nil
	} else if _, ok := completion.(schema.ToolRequest); ok {
		return "", wearbot.ErrInternalServerError.With("model requested tools when none were offered")
	} else {
		return "", nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// conversation returns a new conversation with the system and user prompts
func (a *Advisor) conversation(city string) (*schema.Conversation, error) {
	conversation := new(schema.Conversation)
	if err := conversation.Append(schema.NewMessage(schema.RoleSystem, fmt.Sprintf(systemPrompt, a.defaultCity))); err != nil {
		return nil, wearbot.ErrInternalServerError.With(err)
	}
	if err := conversation.Append(schema.NewMessage(schema.RoleUser, fmt.Sprintf(userPrompt, city))); err != nil {
		return nil, wearbot.ErrInternalServerError.With(err)
	}
	return conversation, nil
}

// intentOpts returns the options for the first completion, which offers
// the toolkit and lets the model decide whether to use it
func (a *Advisor) intentOpts() []opt.Opt {
	return append([]opt.Opt{
		tool.WithToolkit(a.toolkit),
		opt.SetString(opt.ToolChoiceKey, toolChoiceAuto),
	}, a.opts...)
}

// generate calls the completion service within a span
func (a *Advisor) generate(ctx context.Context, phase string, conversation *schema.Conversation, opts ...opt.Opt) (completion schema.Completion, err error) {
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, phase,
		attribute.Int("messages", len(*conversation)),
	)
	defer func() { endSpan(err) }()

	// Text cut short at the token limit is still returned
	completion, err = a.generator.Generate(ctx, conversation, opts...)
	if text, ok := completion.(schema.PlainText); ok && errors.Is(err, wearbot.ErrMaxTokens) {
		a.logger.Printf(ctx, "%s: response truncated at the token limit", phase)
		return text, nil
	}
	return completion, err
}

// resolve appends the assistant turn and then the result of each tool call,
// in the order requested. Tool failures are sent back as {"error": "..."}.
func (a *Advisor) resolve(ctx context.Context, conversation *schema.Conversation, request schema.ToolRequest) error {
	if err := conversation.Append(request.Message()); err != nil {
		return wearbot.ErrInternalServerError.With(err)
	}
	for _, call := range request.Calls {
		if err := conversation.Append(a.call(ctx, call)); err != nil {
			return wearbot.ErrInternalServerError.With(err)
		}
	}
	return nil
}

// call runs one tool call and returns the tool turn for it
func (a *Advisor) call(ctx context.Context, call schema.ToolCall) (message schema.Message) {
	var err error
	ctx, endSpan := otel.StartSpan(a.tracer, ctx, "Tool",
		attribute.String("name", call.Name),
		attribute.String("id", call.ID),
	)
	defer func() { endSpan(err) }()

	a.logger.Printf(ctx, "tool %s(%s)", call.Name, string(call.Input))
	result, err := a.toolkit.Call(ctx, call)
	if err != nil {
		a.logger.Printf(ctx, "tool %s failed: %v", call.Name, err)
		return schema.NewToolError(call, err)
	}
	return schema.NewToolResult(call, result)
}
