package schema

import (
	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Completion is the result of one call to a completion service. It is
// either PlainText or ToolRequest.
type Completion interface {
	// Message returns the assistant turn to append to the conversation
	Message() Message

	completion()
}

// PlainText is a completion with text content only
type PlainText struct {
	Text  string `json:"text"`
	Usage Usage  `json:"usage"`
}

// ToolRequest is a completion which asks the caller to invoke one or
// more tools, in order, and send back the results
type ToolRequest struct {
	Text  string     `json:"text,omitempty"` // Any text emitted with the calls
	Calls []ToolCall `json:"calls"`
	Usage Usage      `json:"usage"`
}

// Usage reports token counts for a completion
type Usage struct {
	InputTokens  uint `json:"input_tokens,omitempty"`
	OutputTokens uint `json:"output_tokens,omitempty"`
}

var _ Completion = PlainText{}
var _ Completion = ToolRequest{}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (PlainText) completion()   {}
func (ToolRequest) completion() {}

func (c PlainText) Message() Message {
	return NewMessage(RoleAssistant, c.Text)
}

func (c ToolRequest) Message() Message {
	return Message{
		Role:      RoleAssistant,
		Text:      c.Text,
		ToolCalls: c.Calls,
	}
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c PlainText) String() string {
	return types.Stringify(c)
}

func (c ToolRequest) String() string {
	return types.Stringify(c)
}
