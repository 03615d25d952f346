package schema

import (
	"encoding/json"
	"fmt"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Message is a single role-tagged turn of a conversation
type Message struct {
	Role       string     `json:"role"`                   // "system", "user", "assistant", "tool"
	Text       string     `json:"text,omitempty"`         // Text content, or the JSON result for a tool turn
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`   // Assistant only
	ToolCallID string     `json:"tool_call_id,omitempty"` // Tool only, matches a ToolCall ID
	Name       string     `json:"name,omitempty"`         // Tool only, the tool function name
}

// ToolCall represents a tool invocation requested by the model
type ToolCall struct {
	ID    string          `json:"id"`              // Provider-assigned call ID
	Name  string          `json:"name"`            // Tool function name
	Input json.RawMessage `json:"input,omitempty"` // JSON-encoded arguments
}

// ToolError is the payload sent back to the model in place of a tool
// result when the tool could not run
type ToolError struct {
	Error string `json:"error"`
}

////////////////////////////////////////////////////////////////////////////////
// CONSTANTS

// Message role constants
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// NewMessage creates a message with the given role and text content
func NewMessage(role, text string) Message {
	return Message{
		Role: role,
		Text: text,
	}
}

// NewToolResult creates a tool turn which carries the JSON-encoded value.
// If the value cannot be encoded, the encoding error is sent instead.
func NewToolResult(call ToolCall, v any) Message {
	data, err := json.Marshal(v)
	if err != nil {
		return NewToolError(call, err)
	}
	return Message{
		Role:       RoleTool,
		Text:       string(data),
		ToolCallID: call.ID,
		Name:       call.Name,
	}
}

// NewToolError creates a tool turn with content {"error": "<message>"}
func NewToolError(call ToolCall, err error) Message {
	data, _ := json.Marshal(ToolError{Error: err.Error()})
	return Message{
		Role:       RoleTool,
		Text:       string(data),
		ToolCallID: call.ID,
		Name:       call.Name,
	}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Arguments decodes the call input as a JSON object. Empty input
// returns an empty map.
func (c ToolCall) Arguments() (map[string]any, error) {
	result := make(map[string]any)
	if len(c.Input) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(c.Input, &result); err != nil {
		return nil, fmt.Errorf("tool %q: invalid arguments: %w", c.Name, err)
	}
	if result == nil {
		result = make(map[string]any)
	}
	return result, nil
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (m Message) String() string {
	return types.Stringify(m)
}

func (c ToolCall) String() string {
	return types.Stringify(c)
}
