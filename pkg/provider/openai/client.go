/*
openai implements a chat completion client for OpenAI and
OpenAI-compatible APIs.
https://platform.openai.com/docs/api-reference/chat
*/
package openai

import (
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	wearbot "github.com/mutablelogic/go-wearbot"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	model string
}

var _ wearbot.Generator = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint     = "https://api.openai.com/v1"
	defaultName  = "openai"
	DefaultModel = "gpt-4o-mini"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// New creates a new client with the given API key and default model. The
// endpoint can be replaced with client.OptEndpoint in opts, for any
// OpenAI-compatible service.
func New(apiKey, model string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if strings.TrimSpace(apiKey) == "" {
		return nil, wearbot.ErrBadParameter.With("missing API key")
	}
	if model = strings.TrimSpace(model); model == "" {
		model = DefaultModel
	}

	// Create client
	opts = append([]client.ClientOpt{
		client.OptEndpoint(endPoint),
		client.OptReqToken(client.Token{Scheme: client.Bearer, Value: apiKey}),
	}, opts...)
	if c, err := client.New(opts...); err != nil {
		return nil, err
	} else {
		return &Client{c, model}, nil
	}
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Name returns the provider name
func (*Client) Name() string {
	return defaultName
}

// Model returns the default model name
func (c *Client) Model() string {
	return c.model
}
