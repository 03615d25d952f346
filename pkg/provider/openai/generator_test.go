package openai

import (
	"context"
	"encoding/json"
	"testing"

	// Packages
	jsonschema "github.com/google/jsonschema-go/jsonschema"
	wearbot "github.com/mutablelogic/go-wearbot"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	tool "github.com/mutablelogic/go-wearbot/pkg/tool"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

type weatherTool struct{}

func (weatherTool) Name() string        { return "get_current_weather" }
func (weatherTool) Description() string { return "Get the current weather" }
func (weatherTool) Schema() (*jsonschema.Schema, error) {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"location": {Type: "string"},
		},
	}, nil
}
func (weatherTool) Run(context.Context, json.RawMessage) (any, error) { return nil, nil }

func userConversation(t *testing.T, text string) *schema.Conversation {
	t.Helper()
	var conversation schema.Conversation
	if err := conversation.Append(schema.NewMessage(schema.RoleUser, text)); err != nil {
		t.Fatal(err)
	}
	return &conversation
}

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS generateRequestFromOpts

func Test_generateRequest_001(t *testing.T) {
	// Test minimal request with a single user message
	assert := assert.New(t)

	o, err := opt.Apply()
	assert.NoError(err)

	req, err := generateRequestFromOpts(DefaultModel, userConversation(t, "Hello"), o)
	assert.NoError(err)
	assert.NotNil(req)
	assert.Equal("gpt-4o-mini", req.Model)
	assert.Len(req.Messages, 1)
	assert.Equal("user", req.Messages[0].Role)
	if assert.NotNil(req.Messages[0].Content) {
		assert.Equal("Hello", *req.Messages[0].Content)
	}
	assert.Nil(req.Temperature)
	assert.Nil(req.MaxTokens)
	assert.Nil(req.Tools)
	assert.Nil(req.ToolChoice)
}

func Test_generateRequest_002(t *testing.T) {
	// Test system turns in the conversation are sent first
	assert := assert.New(t)

	conversation := new(schema.Conversation)
	assert.NoError(conversation.Append(schema.NewMessage(schema.RoleSystem, "You are a helpful assistant.")))
	assert.NoError(conversation.Append(schema.NewMessage(schema.RoleUser, "Hi")))
	o, err := opt.Apply()
	assert.NoError(err)

	req, err := generateRequestFromOpts(DefaultModel, conversation, o)
	assert.NoError(err)
	if assert.Len(req.Messages, 2) {
		assert.Equal(roleSystem, req.Messages[0].Role)
		assert.Equal("You are a helpful assistant.", *req.Messages[0].Content)
		assert.Equal(roleUser, req.Messages[1].Role)
	}
}

func Test_generateRequest_003(t *testing.T) {
	// Test scalar options
	assert := assert.New(t)

	o, err := opt.Apply(WithTemperature(0.7), WithMaxTokens(200), opt.SetString(opt.ModelKey, "gpt-4o"))
	assert.NoError(err)

	req, err := generateRequestFromOpts(DefaultModel, userConversation(t, "Hi"), o)
	assert.NoError(err)
	assert.Equal("gpt-4o", req.Model)
	if assert.NotNil(req.Temperature) {
		assert.InDelta(0.7, *req.Temperature, 1e-9)
	}
	if assert.NotNil(req.MaxTokens) {
		assert.Equal(uint(200), *req.MaxTokens)
	}
}

func Test_generateRequest_004(t *testing.T) {
	// Test invalid options
	assert := assert.New(t)

	_, err := opt.Apply(WithTemperature(2.5))
	assert.ErrorIs(err, wearbot.ErrBadParameter)
	_, err = opt.Apply(WithTemperature(-0.1))
	assert.ErrorIs(err, wearbot.ErrBadParameter)
	_, err = opt.Apply(WithMaxTokens(0))
	assert.ErrorIs(err, wearbot.ErrBadParameter)
}

func Test_generateRequest_005(t *testing.T) {
	// Test tools and tool choice
	assert := assert.New(t)

	tk, err := tool.NewToolkit(weatherTool{})
	assert.NoError(err)
	o, err := opt.Apply(tool.WithToolkit(tk), opt.SetString(opt.ToolChoiceKey, "auto"))
	assert.NoError(err)

	req, err := generateRequestFromOpts(DefaultModel, userConversation(t, "Weather?"), o)
	assert.NoError(err)
	if assert.Len(req.Tools, 1) {
		assert.Equal("function", req.Tools[0].Type)
		assert.Equal("get_current_weather", req.Tools[0].Function.Name)
		assert.Equal("Get the current weather", req.Tools[0].Function.Description)
		assert.JSONEq(`{"type":"object","properties":{"location":{"type":"string"}}}`, string(req.Tools[0].Function.Parameters))
	}
	assert.Equal("auto", req.ToolChoice)
}

func Test_generateRequest_006(t *testing.T) {
	// Test tool choice is dropped when no tools are offered
	assert := assert.New(t)

	tk, err := tool.NewToolkit()
	assert.NoError(err)
	for _, opts := range [][]opt.Opt{
		{opt.SetString(opt.ToolChoiceKey, "required")},
		{tool.WithToolkit(tk), opt.SetString(opt.ToolChoiceKey, "none")},
	} {
		o, err := opt.Apply(opts...)
		assert.NoError(err)
		req, err := generateRequestFromOpts(DefaultModel, userConversation(t, "Hi"), o)
		assert.NoError(err)
		assert.Nil(req.Tools)
		assert.Nil(req.ToolChoice)
	}
}

func Test_generateRequest_007(t *testing.T) {
	// Test assistant tool calls and tool results
	assert := assert.New(t)

	conversation := userConversation(t, "What should I wear today in Tokyo?")
	call := schema.ToolCall{ID: "call_1", Name: "get_current_weather", Input: json.RawMessage(`{"location":"Tokyo"}`)}
	assert.NoError(conversation.Append(schema.ToolRequest{Calls: []schema.ToolCall{call}}.Message()))
	assert.NoError(conversation.Append(schema.NewToolResult(call, map[string]any{"temperature": 20})))

	o, err := opt.Apply()
	assert.NoError(err)
	req, err := generateRequestFromOpts(DefaultModel, conversation, o)
	assert.NoError(err)
	if !assert.Len(req.Messages, 3) {
		t.FailNow()
	}

	// Assistant turn has null content and one tool call
	assistant := req.Messages[1]
	assert.Equal(roleAssistant, assistant.Role)
	assert.Nil(assistant.Content)
	if assert.Len(assistant.ToolCalls, 1) {
		assert.Equal("call_1", assistant.ToolCalls[0].Id)
		assert.Equal("function", assistant.ToolCalls[0].Type)
		assert.Equal("get_current_weather", assistant.ToolCalls[0].Function.Name)
		assert.Equal(`{"location":"Tokyo"}`, assistant.ToolCalls[0].Function.Arguments)
	}

	// Tool turn correlates by id and carries the tool name
	result := req.Messages[2]
	assert.Equal(roleTool, result.Role)
	assert.Equal("call_1", result.ToolCallID)
	assert.Equal("get_current_weather", result.Name)
	assert.JSONEq(`{"temperature":20}`, *result.Content)

	// Wire encoding keeps the null content
	data, err := json.Marshal(assistant)
	assert.NoError(err)
	assert.Contains(string(data), `"content":null`)
}

///////////////////////////////////////////////////////////////////////////////
// UNIT TESTS processResponse

func Test_processResponse_001(t *testing.T) {
	assert := assert.New(t)

	_, err := processResponse(&chatCompletionResponse{})
	assert.ErrorIs(err, wearbot.ErrInternalServerError)
}

func Test_processResponse_002(t *testing.T) {
	assert := assert.New(t)

	text := "Wear a light jacket."
	completion, err := processResponse(&chatCompletionResponse{
		Choices: []chatChoice{{Message: openaiMessage{Role: roleAssistant, Content: &text}, FinishReason: finishReasonStop}},
		Usage:   chatUsage{PromptTokens: 12, CompletionTokens: 5},
	})
	assert.NoError(err)
	assert.Equal(schema.PlainText{Text: text, Usage: schema.Usage{InputTokens: 12, OutputTokens: 5}}, completion)
}

func Test_processResponse_003(t *testing.T) {
	assert := assert.New(t)

	completion, err := processResponse(&chatCompletionResponse{
		Choices: []chatChoice{{
			Message: openaiMessage{Role: roleAssistant, ToolCalls: []openaiToolCall{
				{Id: "call_a", Type: "function", Function: openaiFunction{Name: "get_current_weather", Arguments: `{"location":"Tokyo"}`}},
				{Type: "function", Function: openaiFunction{Name: "get_current_weather"}},
			}},
			FinishReason: finishReasonToolCalls,
		}},
	})
	assert.NoError(err)
	req, ok := completion.(schema.ToolRequest)
	if !assert.True(ok) {
		t.FailNow()
	}
	assert.Len(req.Calls, 2)
	assert.Equal("call_a", req.Calls[0].ID)
	assert.JSONEq(`{"location":"Tokyo"}`, string(req.Calls[0].Input))
	assert.NotEmpty(req.Calls[1].ID)
	assert.Nil(req.Calls[1].Input)
}

func Test_processResponse_004(t *testing.T) {
	assert := assert.New(t)

	text := "Wear a"
	completion, err := processResponse(&chatCompletionResponse{
		Choices: []chatChoice{{Message: openaiMessage{Role: roleAssistant, Content: &text}, FinishReason: finishReasonLength}},
	})
	assert.ErrorIs(err, wearbot.ErrMaxTokens)
	assert.Equal(schema.PlainText{Text: text}, completion)
}

func Test_processResponse_005(t *testing.T) {
	assert := assert.New(t)

	_, err := processResponse(&chatCompletionResponse{
		Choices: []chatChoice{{Message: openaiMessage{Role: roleAssistant, ToolCalls: []openaiToolCall{{Id: "x"}}}}},
	})
	assert.ErrorIs(err, wearbot.ErrInternalServerError)
}

func Test_processResponse_006(t *testing.T) {
	// Repeated tool call ids are replaced, so each result answers one call
	assert := assert.New(t)

	completion, err := processResponse(&chatCompletionResponse{
		Choices: []chatChoice{{
			Message: openaiMessage{Role: roleAssistant, ToolCalls: []openaiToolCall{
				{Id: "c1", Type: "function", Function: openaiFunction{Name: "get_current_weather", Arguments: `{"location":"Tokyo"}`}},
				{Id: "c1", Type: "function", Function: openaiFunction{Name: "get_current_weather", Arguments: `{"location":"Paris"}`}},
			}},
			FinishReason: finishReasonToolCalls,
		}},
	})
	assert.NoError(err)
	req, ok := completion.(schema.ToolRequest)
	if !assert.True(ok) || !assert.Len(req.Calls, 2) {
		t.FailNow()
	}
	assert.Equal("c1", req.Calls[0].ID)
	assert.NotEqual("c1", req.Calls[1].ID)
	assert.NotEmpty(req.Calls[1].ID)
	assert.JSONEq(`{"location":"Paris"}`, string(req.Calls[1].Input))

	conversation := new(schema.Conversation)
	assert.NoError(conversation.Append(schema.NewMessage(schema.RoleUser, "What should I wear?")))
	assert.NoError(conversation.Append(req.Message()))
	for _, call := range req.Calls {
		assert.NoError(conversation.Append(schema.NewToolResult(call, "ok")))
	}
	assert.NoError(conversation.Validate())
}
