package httphandler

import (
	"net/http"

	// Packages
	uuid "github.com/google/uuid"
	advisor "github.com/mutablelogic/go-wearbot/pkg/advisor"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	httprequest "github.com/mutablelogic/go-server/pkg/httprequest"
	httpresponse "github.com/mutablelogic/go-server/pkg/httpresponse"
)

///////////////////////////////////////////////////////////////////////////////
// HANDLER FUNCTIONS

// Path: advice
func AdviceHandler(advisor *advisor.Advisor) (string, httprequest.PathItem) {
	return "advice", httprequest.NewPathItem("Advice", "Clothing and outdoor activity advice for a city", tag).
		Get(func(w http.ResponseWriter, r *http.Request) {
			var req schema.AdviceRequest
			if err := httprequest.Query(r.URL.Query(), &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			advice(w, r, advisor, req)
		}, "Recommend clothing and outdoor activities for the city in the query").
		Post(func(w http.ResponseWriter, r *http.Request) {
			var req schema.AdviceRequest
			if err := httprequest.Read(r, &req); err != nil {
				_ = httpresponse.Error(w, err)
				return
			}
			advice(w, r, advisor, req)
		}, "Recommend clothing and outdoor activities for the city in the request body")
}

///////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func advice(w http.ResponseWriter, r *http.Request, advisor *advisor.Advisor, req schema.AdviceRequest) {
	city := advisor.City(req.City)
	advice, err := advisor.Advice(r.Context(), city)
	if err != nil {
		_ = httpresponse.Error(w, httpErr(err))
		return
	}
	_ = httpresponse.JSON(w, http.StatusOK, httprequest.Indent(r), schema.AdviceResponse{
		Id:     uuid.New().String(),
		City:   city,
		Advice: advice,
	})
}
