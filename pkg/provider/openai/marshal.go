package openai

import (
	"encoding/json"

	// Packages
	uuid "github.com/google/uuid"
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	tool "github.com/mutablelogic/go-wearbot/pkg/tool"
	types "github.com/mutablelogic/go-server/pkg/types"
)

///////////////////////////////////////////////////////////////////////////////
// CONVERSATION → OPENAI MESSAGES

// openaiMessagesFromConversation converts a schema.Conversation to OpenAI
// message format. Each tool turn carries exactly one tool_call_id.
func openaiMessagesFromConversation(conversation *schema.Conversation) ([]openaiMessage, error) {
	if conversation == nil {
		return nil, nil
	}
	messages := make([]openaiMessage, 0, len(*conversation))
	for _, msg := range *conversation {
		if msg == nil {
			continue
		}
		mm, err := openaiMessageFromMessage(msg)
		if err != nil {
			return nil, err
		}
		messages = append(messages, mm)
	}
	return messages, nil
}

// openaiMessageFromMessage converts a single schema.Message
func openaiMessageFromMessage(msg *schema.Message) (openaiMessage, error) {
	switch msg.Role {
	case schema.RoleSystem, schema.RoleUser:
		return openaiMessage{
			Role:    msg.Role,
			Content: types.Ptr(msg.Text),
		}, nil
	case schema.RoleAssistant:
		mm := openaiMessage{
			Role: roleAssistant,
		}
		if msg.Text != "" || len(msg.ToolCalls) == 0 {
			mm.Content = types.Ptr(msg.Text)
		}
		for _, call := range msg.ToolCalls {
			tc := openaiToolCall{
				Id:   call.ID,
				Type: toolTypeFunction,
				Function: openaiFunction{
					Name:      call.Name,
					Arguments: "{}",
				},
			}
			if len(call.Input) > 0 {
				tc.Function.Arguments = string(call.Input)
			}
			mm.ToolCalls = append(mm.ToolCalls, tc)
		}
		return mm, nil
	case schema.RoleTool:
		if msg.ToolCallID == "" {
			return openaiMessage{}, wearbot.ErrBadParameter.With("tool result has no tool_call_id")
		}
		return openaiMessage{
			Role:       roleTool,
			Content:    types.Ptr(msg.Text),
			ToolCallID: msg.ToolCallID,
			Name:       msg.Name,
		}, nil
	default:
		return openaiMessage{}, wearbot.ErrBadParameter.Withf("unsupported role %q", msg.Role)
	}
}

///////////////////////////////////////////////////////////////////////////////
// TOOLKIT → OPENAI TOOL DEFINITIONS

// openaiToolsFromToolkit converts the tools in a toolkit to OpenAI
// function definitions, in registration order
func openaiToolsFromToolkit(tk *tool.Toolkit) ([]toolDefinition, error) {
	defs, err := tk.Definitions()
	if err != nil {
		return nil, err
	}
	result := make([]toolDefinition, 0, len(defs))
	for _, def := range defs {
		fn := toolFunctionDef{
			Name:        def.Name,
			Description: def.Description,
		}
		if def.InputSchema != nil {
			data, err := json.Marshal(def.InputSchema)
			if err != nil {
				return nil, wearbot.ErrInternalServerError.Withf("tool %q: %v", def.Name, err)
			}
			fn.Parameters = data
		} else {
			fn.Parameters = json.RawMessage(`{"type":"object","properties":{}}`)
		}
		result = append(result, toolDefinition{
			Type:     toolTypeFunction,
			Function: fn,
		})
	}
	return result, nil
}

///////////////////////////////////////////////////////////////////////////////
// OPENAI RESPONSE → COMPLETION

// completionFromResponse converts the first choice of a response into
// either a schema.ToolRequest or schema.PlainText
func completionFromResponse(response *chatCompletionResponse) (schema.Completion, error) {
	if response == nil || len(response.Choices) == 0 {
		return nil, wearbot.ErrInternalServerError.With("no choices in response")
	}
	message := response.Choices[0].Message
	usage := schema.Usage{
		InputTokens:  uint(max(response.Usage.PromptTokens, 0)),
		OutputTokens: uint(max(response.Usage.CompletionTokens, 0)),
	}

	// Text content
	var text string
	if message.Content != nil {
		text = *message.Content
	}

	// Plain text
	if len(message.ToolCalls) == 0 {
		return schema.PlainText{Text: text, Usage: usage}, nil
	}

	// Tool request, where each call has a distinct id so that every
	// result answers exactly one call
	calls := make([]schema.ToolCall, 0, len(message.ToolCalls))
	ids := make(map[string]bool, len(message.ToolCalls))
	for _, tc := range message.ToolCalls {
		call, err := toolCallFromOpenAI(tc)
		if err != nil {
			return nil, err
		}
		if ids[call.ID] {
			call.ID = newToolCallID()
		}
		ids[call.ID] = true
		calls = append(calls, call)
	}
	return schema.ToolRequest{Text: text, Calls: calls, Usage: usage}, nil
}

// toolCallFromOpenAI converts a single tool call. A missing id is
// replaced with a generated one so the result can be correlated.
func toolCallFromOpenAI(tc openaiToolCall) (schema.ToolCall, error) {
	if tc.Function.Name == "" {
		return schema.ToolCall{}, wearbot.ErrInternalServerError.With("tool call has no function name")
	}
	call := schema.ToolCall{
		ID:   tc.Id,
		Name: tc.Function.Name,
	}
	if call.ID == "" {
		call.ID = newToolCallID()
	}
	if tc.Function.Arguments != "" {
		call.Input = json.RawMessage(tc.Function.Arguments)
	}
	return call, nil
}

func newToolCallID() string {
	return "call_" + uuid.New().String()
}
