package httphandler

import (
	"net/http"
	"strings"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: weather
func WeatherHandler(weather wearbot.WeatherFetcher, defaultCity string) (string, httprequest.PathItem) {
	return "weather", httprequest.NewPathItem("Weather", "Current weather conditions", tag).
		Get(func(w http.ResponseWriter, r *http.Request) {
			var req schema.WeatherRequest
			if err := httprequest.Query(r.URL.Query(), &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			location := strings.TrimSpace(req.Location)
			if location == "" {
				location = defaultCity
			}
			units, err := schema.ParseUnits(req.Units)
			if err != nil {
				_ = httpresponse.Error(w, httpresponse.ErrBadRequest.With(err))
				return
			}

			// Perform operation and return response
			resp, err := weather.Current(r.Context(), location, units)
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), resp)
		}, "Get the current weather for a location")
}
