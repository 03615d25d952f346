/*
openweather implements an API client for the OpenWeather current weather API
https://openweathermap.org/current
*/
package openweather

import (
	"context"
	"errors"
	"net/http"
	"strings"

	// Packages
	client "github.com/mutablelogic/go-client"
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// TYPES

type Client struct {
	*client.Client
	key string
}

var _ wearbot.WeatherFetcher = (*Client)(nil)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	endPoint = "https://api.openweathermap.org"
)

///////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// Create a new client. The default endpoint can be replaced with
// client.OptEndpoint in opts.
func New(ApiKey string, opts ...client.ClientOpt) (*Client, error) {
	// Check for missing API key
	if strings.TrimSpace(ApiKey) == "" {
		return nil, wearbot.ErrBadParameter.With("missing API key")
	}

	// Create client
	opts = append([]client.ClientOpt{client.OptEndpoint(endPoint)}, opts...)
	client, err := client.New(opts...)
	if err != nil {
		return nil, err
	}

	// Return the client
	return &Client{
		Client: client,
		key:    ApiKey,
	}, nil
}

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Current returns the current weather for a location in the given units
func (c *Client) Current(ctx context.Context, location string, units schema.Units) (schema.WeatherRecord, error) {
	var response currentResponse

	// Set defaults
	if units == "" {
		units = schema.DefaultUnits
	}
	req := CurrentWeatherRequest{Location: location, Units: string(units)}

	// Request -> Response
	if err := c.DoWithContext(ctx, nil, &response, client.OptPath("data", "2.5", "weather"), client.OptQuery(req.Values(c.key))); err != nil {
		return schema.WeatherRecord{}, classify(err)
	}

	// Return the normalized record
	return response.Record(location, units), nil
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// classify converts a non-success response into an *Error. Transport
// failures are returned unchanged.
func classify(err error) error {
	var status int
	var message string
	var httpErr httpresponse.Err
	var response httpresponse.ErrResponse
	switch {
	case errors.As(err, &response):
		// The body was JSON with a code matching the status
		status, message = response.Code, response.Reason
		if message == "" {
			if detail, ok := response.Detail.(string); ok {
				message = detail
			}
		}
	case errors.As(err, &httpErr):
		status, message = int(httpErr), messageFrom(err.Error())
	default:
		return err
	}

	switch status {
	case http.StatusUnauthorized:
		return newError(wearbot.ErrUnauthorized, status, "invalid API key")
	case http.StatusNotFound:
		if message = strings.TrimSpace(message); message == "" {
			message = "City not found"
		}
		return newError(wearbot.ErrNotFound, status, message)
	default:
		return newError(wearbot.ErrUpstream, status, http.StatusText(status))
	}
}
