package openai

import (
	"encoding/json"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES
//
// Reference: https://platform.openai.com/docs/api-reference/chat/create

///////////////////////////////////////////////////////////////////////////////
// CHAT COMPLETIONS REQUEST

// chatCompletionRequest is the request body for POST /v1/chat/completions.
type chatCompletionRequest struct {
	Model       string           `json:"model"`
	Messages    []openaiMessage  `json:"messages"`
	Temperature *float64         `json:"temperature,omitempty"`
	MaxTokens   *uint            `json:"max_completion_tokens,omitempty"`
	Tools       []toolDefinition `json:"tools,omitempty"`
	ToolChoice  any              `json:"tool_choice,omitempty"`
}

///////////////////////////////////////////////////////////////////////////////
// CHAT COMPLETIONS RESPONSE

// chatCompletionResponse is the response body from POST /v1/chat/completions.
type chatCompletionResponse struct {
	Id      string       `json:"id"`
	Object  string       `json:"object"`
	Created int64        `json:"created"`
	Model   string       `json:"model"`
	Choices []chatChoice `json:"choices"`
	Usage   chatUsage    `json:"usage"`
}

// chatChoice is one element of the choices array.
type chatChoice struct {
	Index        int           `json:"index"`
	Message      openaiMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

// chatUsage reports token counts for a chat completion request.
type chatUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

///////////////////////////////////////////////////////////////////////////////
// MESSAGES

// openaiMessage represents a single turn in a conversation. Content is
// null for an assistant turn which only carries tool calls.
type openaiMessage struct {
	Role       string           `json:"role"`
	Content    *string          `json:"content"`
	ToolCalls  []openaiToolCall `json:"tool_calls,omitempty"`   // assistant only
	ToolCallID string           `json:"tool_call_id,omitempty"` // tool role only
	Name       string           `json:"name,omitempty"`         // tool role only
}

///////////////////////////////////////////////////////////////////////////////
// TOOL CALLS

// openaiToolCall represents a tool invocation in an assistant message.
type openaiToolCall struct {
	Id       string         `json:"id"`
	Type     string         `json:"type"` // always "function"
	Function openaiFunction `json:"function"`
}

// openaiFunction carries the function name and JSON-encoded arguments
// within a tool call.
type openaiFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON string
}

///////////////////////////////////////////////////////////////////////////////
// TOOL DEFINITIONS

// toolDefinition describes a tool the model may call.
type toolDefinition struct {
	Type     string          `json:"type"` // always "function"
	Function toolFunctionDef `json:"function"`
}

// toolFunctionDef describes the function signature for a tool definition.
type toolFunctionDef struct {
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Parameters  json.RawMessage `json:"parameters,omitempty"` // JSON Schema
}

///////////////////////////////////////////////////////////////////////////////
// FINISH REASON CONSTANTS

const (
	finishReasonStop          = "stop"
	finishReasonToolCalls     = "tool_calls"
	finishReasonLength        = "length"
	finishReasonContentFilter = "content_filter"
)

///////////////////////////////////////////////////////////////////////////////
// ROLE CONSTANTS

const (
	roleSystem    = "system"
	roleUser      = "user"
	roleAssistant = "assistant"
	roleTool      = "tool"
)

const (
	toolTypeFunction = "function"
)
