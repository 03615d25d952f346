package httphandler

import (
	"errors"

	// Package
	wearbot "github.com/mutablelogic/go-wearbot"
	advisor "github.com/mutablelogic/go-wearbot/pkg/advisor"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
)

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	tag = "wearbot"
)

///////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// RegisterHandlers registers the advice, weather and tool handlers under the
// router prefix
func RegisterHandlers(advisor *advisor.Advisor, weather wearbot.WeatherFetcher, router *httprouter.Router) error {
	var result error

	// Convenience function to register a handler and accumulate any errors
	register := func(path string, item httprequest.PathItem) {
		result = errors.Join(result, router.RegisterPath(path, nil, item))
	}

	// Register handlers
	register(AdviceHandler(advisor))
	register(WeatherHandler(weather, advisor.DefaultCity()))
	register(ToolListHandler(advisor))

	// Return any errors
	return result
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// httpErr converts a wearbot.Err to an httpresponse.Err, preserving the
// original error message. Failures of the weather or completion service
// map to 502, and unknown error codes map to 500.
func httpErr(err error) error {
	var code wearbot.Err
	if !errors.As(err, &code) {
		var upstream httpresponse.Err
		var response httpresponse.ErrResponse
		if errors.As(err, &upstream) || errors.As(err, &response) {
			return httpresponse.ErrGatewayError.With(err)
		}
		return err
	}
	switch code {
	case wearbot.ErrNotFound:
		return httpresponse.ErrNotFound.With(err)
	case wearbot.ErrBadParameter:
		return httpresponse.ErrBadRequest.With(err)
	case wearbot.ErrConflict:
		return httpresponse.ErrConflict.With(err)
	case wearbot.ErrNotImplemented:
		return httpresponse.ErrNotImplemented.With(err)
	case wearbot.ErrUnauthorized, wearbot.ErrUpstream, wearbot.ErrMaxTokens:
		return httpresponse.ErrGatewayError.With(err)
	default:
		return httpresponse.ErrInternalError.With(err)
	}
}
