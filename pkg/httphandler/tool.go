package httphandler

import (
	"net/http"

	// Packages
	advisor "github.com/mutablelogic/go-wearbot/pkg/advisor"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: tool
func ToolListHandler(advisor *advisor.Advisor) (string, httprequest.PathItem) {
	return "tool", httprequest.NewPathItem("Tools", "Tools offered to the model", tag).
		Get(func(w http.ResponseWriter, r *http.Request) {
			defs, err := advisor.Toolkit().Definitions()
			if err != nil {
				_ = httpresponse.Error(w, httpErr(err))
				return
			}
			_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.ListToolsResponse{
				Count: uint(len(defs)),
				Body:  defs,
			})
		}, "List the tools offered to the model")
}
