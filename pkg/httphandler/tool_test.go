package httphandler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	// Packages
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// TOOL LIST TESTS

func TestToolList_OK(t *testing.T) {
	assert := assert.New(t)
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/tool", nil)
	mux.ServeHTTP(w, r)

	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}
	resp := decode[schema.ListToolsResponse](t, w.Body.Bytes())
	assert.Equal(uint(1), resp.Count)
	if assert.Len(resp.Body, 1) {
		assert.Equal("get_current_weather", resp.Body[0].Name)
		assert.NotEmpty(resp.Body[0].Description)
		if assert.NotNil(resp.Body[0].InputSchema) {
			assert.Contains(resp.Body[0].InputSchema.Properties, "location")
		}
	}
}

func TestToolList_MethodNotAllowed(t *testing.T) {
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/tool", nil)
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
