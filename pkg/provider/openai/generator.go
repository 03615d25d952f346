package openai

import (
	"context"

	// Packages
	client "github.com/mutablelogic/go-client"
	wearbot "github.com/mutablelogic/go-wearbot"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	tool "github.com/mutablelogic/go-wearbot/pkg/tool"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Generate sends the conversation and returns the next assistant turn,
// which is either plain text or a request to call tools. The conversation
// is not modified.
func (c *Client) Generate(ctx context.Context, conversation *schema.Conversation, opts ...opt.Opt) (schema.Completion, error) {
	if conversation == nil {
		return nil, wearbot.ErrBadParameter.With("conversation is required")
	} else if err := conversation.Validate(); err != nil {
		return nil, wearbot.ErrBadParameter.With(err)
	}

	// Apply options
	options, err := opt.Apply(opts...)
	if err != nil {
		return nil, err
	}

	// Build request
	request, err := generateRequestFromOpts(c.model, conversation, options)
	if err != nil {
		return nil, err
	}

	// Create JSON payload
	payload, err := client.NewJSONRequest(request)
	if err != nil {
		return nil, err
	}

	// Request -> Response
	var response chatCompletionResponse
	if err := c.DoWithContext(ctx, payload, &response, client.OptPath("chat", "completions")); err != nil {
		return nil, err
	}

	return processResponse(&response)
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// processResponse converts a response to a completion, and returns an
// error alongside it for finish reasons that need caller attention
func processResponse(response *chatCompletionResponse) (schema.Completion, error) {
	completion, err := completionFromResponse(response)
	if err != nil {
		return nil, err
	}
	if _, ok := completion.(schema.PlainText); ok {
		switch response.Choices[0].FinishReason {
		case finishReasonLength:
			return completion, wearbot.ErrMaxTokens
		case finishReasonContentFilter:
			return completion, wearbot.ErrInternalServerError.With("response withheld by content filter")
		}
	}
	return completion, nil
}

///////////////////////////////////////////////////////////////////////////////
// REQUEST BUILDING

// generateRequestFromOpts builds a chatCompletionRequest from the
// conversation and applied options
func generateRequestFromOpts(model string, conversation *schema.Conversation, options *opt.Options) (*chatCompletionRequest, error) {
	// Convert conversation to OpenAI message format
	messages, err := openaiMessagesFromConversation(conversation)
	if err != nil {
		return nil, err
	}

	// Model
	if m := options.GetString(opt.ModelKey); m != "" {
		model = m
	}
	request := &chatCompletionRequest{
		Model:    model,
		Messages: messages,
	}

	// Temperature
	if options.Has(opt.TemperatureKey) {
		v := options.GetFloat64(opt.TemperatureKey)
		request.Temperature = &v
	}

	// Max tokens
	if options.Has(opt.MaxTokensKey) {
		v := options.GetUint(opt.MaxTokensKey)
		request.MaxTokens = &v
	}

	// Tools from toolkit, with tool choice only when tools are offered
	if tk := tool.ToolkitFrom(options); tk != nil {
		tools, err := openaiToolsFromToolkit(tk)
		if err != nil {
			return nil, err
		}
		if len(tools) > 0 {
			request.Tools = tools
			if tc := options.GetString(opt.ToolChoiceKey); tc != "" {
				request.ToolChoice = tc
			}
		}
	}

	return request, nil
}
