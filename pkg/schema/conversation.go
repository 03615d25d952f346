package schema

import (
	"fmt"
	"slices"

	// Packages
	types "github.com/mutablelogic/go-server/pkg/types"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Conversation is an append-only sequence of messages exchanged with a
// completion service. A tool turn must answer a call of the assistant turn
// it follows, and only other tool turns may sit between the two.
type Conversation []*Message

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Append adds a message to the conversation, returning an error if the
// message would break tool call correspondence
func (c *Conversation) Append(message Message) error {
	switch message.Role {
	case RoleSystem, RoleUser:
		// No constraints
	case RoleAssistant:
		for _, call := range message.ToolCalls {
			if call.ID == "" {
				return fmt.Errorf("tool call %q has no id", call.Name)
			}
		}
	case RoleTool:
		pending := c.Pending()
		if !slices.ContainsFunc(pending, func(call ToolCall) bool {
			return call.ID == message.ToolCallID
		}) {
			return fmt.Errorf("tool result %q does not answer a pending tool call", message.ToolCallID)
		}
	default:
		return fmt.Errorf("unsupported role %q", message.Role)
	}

	// Append the message
	*c = append(*c, types.Ptr(message))

	// Return success
	return nil
}

// Pending returns the tool calls of the most recent assistant turn which
// have not yet been answered. Returns nil if the conversation does not end
// with an assistant tool call turn followed only by tool turns.
func (c Conversation) Pending() []ToolCall {
	answered := make(map[string]bool)
	for i := len(c) - 1; i >= 0; i-- {
		switch msg := c[i]; msg.Role {
		case RoleTool:
			answered[msg.ToolCallID] = true
		case RoleAssistant:
			var result []ToolCall
			for _, call := range msg.ToolCalls {
				if !answered[call.ID] {
					result = append(result, call)
				}
			}
			return result
		default:
			return nil
		}
	}
	return nil
}

// Validate returns an error if the conversation cannot be sent to a
// completion service: it must be non-empty and every tool call must be
// answered
func (c Conversation) Validate() error {
	if len(c) == 0 {
		return fmt.Errorf("conversation is empty")
	}
	if pending := c.Pending(); len(pending) > 0 {
		return fmt.Errorf("tool call %q has no result", pending[0].ID)
	}
	return nil
}

// Last returns the most recent message, or nil if the conversation is empty
func (c Conversation) Last() *Message {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

////////////////////////////////////////////////////////////////////////////////
// STRINGIFY

func (c Conversation) String() string {
	return types.Stringify(c)
}
