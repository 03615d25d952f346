package tool

import (
	"context"
	"encoding/json"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

// Toolkit is a collection of tools with unique names, kept in the order
// in which they were registered
type Toolkit struct {
	tools map[string]Tool
	names []string
}

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewToolkit creates a new toolkit with the given tools.
// Returns an error if any tool has an invalid or duplicate name.
func NewToolkit(tools ...Tool) (*Toolkit, error) {
	tk := &Toolkit{
		tools: make(map[string]Tool),
	}
	if err := tk.Register(tools...); err != nil {
		return nil, err
	}
	return tk, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Tools returns all tools in the toolkit, in registration order
func (tk *Toolkit) Tools() []Tool {
	result := make([]Tool, 0, len(tk.names))
	for _, name := range tk.names {
		result = append(result, tk.tools[name])
	}
	return result
}

// Len returns the number of tools in the toolkit
func (tk *Toolkit) Len() int {
	return len(tk.names)
}

// Register adds one or more tools to the toolkit.
// Returns an error if any tool has an invalid or duplicate name.
func (tk *Toolkit) Register(tools ...Tool) error {
	for _, t := range tools {
		if t == nil {
			return wearbot.ErrBadParameter.With("tool cannot be nil")
		}
		name := t.Name()
		if !types.IsIdentifier(name) {
			return wearbot.ErrBadParameter.Withf("invalid tool name: %q", name)
		}
		if _, exists := tk.tools[name]; exists {
			return wearbot.ErrConflict.Withf("duplicate tool name: %q", name)
		}
		tk.tools[name] = t
		tk.names = append(tk.names, name)
	}
	return nil
}

// Lookup returns a tool by name, or nil if not found
func (tk *Toolkit) Lookup(name string) Tool {
	return tk.tools[name]
}

// Definitions returns the provider-agnostic definitions of all tools
func (tk *Toolkit) Definitions() ([]schema.ToolDefinition, error) {
	result := make([]schema.ToolDefinition, 0, len(tk.names))
	for _, t := range tk.Tools() {
		s, err := t.Schema()
		if err != nil {
			return nil, wearbot.ErrInternalServerError.Withf("tool %q: schema generation failed: %v", t.Name(), err)
		}
		result = append(result, schema.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: s,
		})
	}
	return result, nil
}

// Run executes a tool by name with the given input.
// The input should be json.RawMessage or nil. Properties missing from the
// input are set from their schema default before the input is validated.
// Returns an error if the tool is not found, the input does not match the schema,
// or the tool execution fails.
func (tk *Toolkit) Run(ctx context.Context, name string, input json.RawMessage) (any, error) {
	// Lookup the tool
	tool := tk.Lookup(name)
	if tool == nil {
		return nil, wearbot.ErrNotFound.Withf("tool not found: %q", name)
	}

	// Apply defaults and validate input against the schema
	input, err := validate(tool, input)
	if err != nil {
		return nil, err
	}

	// Run the tool with raw JSON
	return tool.Run(ctx, input)
}

// Call executes the tool call requested by a model
func (tk *Toolkit) Call(ctx context.Context, call schema.ToolCall) (any, error) {
	return tk.Run(ctx, call.Name, call.Input)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// validate returns the input with defaults applied, or an error if the
// input does not match the tool schema
func validate(tool Tool, input json.RawMessage) (json.RawMessage, error) {
	s, err := tool.Schema()
	if err != nil {
		return nil, wearbot.ErrBadParameter.Withf("schema generation failed: %v", err)
	} else if s == nil {
		return input, nil
	}

	// Unmarshal into a map for validation
	var mapInput map[string]any
	if len(input) > 0 {
		if err := json.Unmarshal(input, &mapInput); err != nil {
			return nil, wearbot.ErrBadParameter.Withf("failed to unmarshal JSON input: %v", err)
		}
	}
	if mapInput == nil {
		mapInput = make(map[string]any)
	}

	// Set missing properties which have a default, including required ones
	defaults := false
	for name, property := range s.Properties {
		if _, exists := mapInput[name]; exists || property == nil || len(property.Default) == 0 {
			continue
		}
		var value any
		if err := json.Unmarshal(property.Default, &value); err != nil {
			return nil, wearbot.ErrBadParameter.Withf("property %q: invalid default: %v", name, err)
		}
		mapInput[name] = value
		defaults = true
	}

	// Validate against schema
	resolved, err := s.Resolve(nil)
	if err != nil {
		return nil, wearbot.ErrBadParameter.Withf("schema resolution failed: %v", err)
	}
	if err := resolved.Validate(mapInput); err != nil {
		return nil, wearbot.ErrBadParameter.Withf("input validation failed: %v", err)
	}

	// Return the input with any defaults
	if !defaults {
		return input, nil
	}
	data, err := json.Marshal(mapInput)
	if err != nil {
		return nil, wearbot.ErrInternalServerError.With(err)
	}
	return data, nil
}

///////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (tk *Toolkit) String() string {
	defs, err := tk.Definitions()
	if err != nil {
		return err.Error()
	}
	return types.Stringify(defs)
}
