package httphandler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
	assert "github.com/stretchr/testify/assert"
)

///////////////////////////////////////////////////////////////////////////////
// ADVICE TESTS

func TestAdvice_Get(t *testing.T) {
	assert := assert.New(t)
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/advice?city=Tokyo", nil)
	mux.ServeHTTP(w, r)

	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}
	resp := decode[schema.AdviceResponse](t, w.Body.Bytes())
	assert.NotEmpty(resp.Id)
	assert.Equal("Tokyo", resp.City)
	assert.True(strings.HasPrefix(resp.Advice, "advice: "))
	assert.Contains(resp.Advice, `"units":"°F"`)
}

func TestAdvice_DefaultCity(t *testing.T) {
	assert := assert.New(t)
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/advice", nil)
	mux.ServeHTTP(w, r)

	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}
	resp := decode[schema.AdviceResponse](t, w.Body.Bytes())
	assert.Equal("Syracuse, NY, US", resp.City)
	assert.Contains(resp.Advice, "Syracuse, NY, US")
}

func TestAdvice_Post(t *testing.T) {
	assert := assert.New(t)
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/advice", strings.NewReader(`{"city":"Lima, Peru"}`))
	r.Header.Set("Content-Type", "application/json")
	mux.ServeHTTP(w, r)

	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}
	resp := decode[schema.AdviceResponse](t, w.Body.Bytes())
	assert.Equal("Lima, Peru", resp.City)
}

func TestAdvice_MethodNotAllowed(t *testing.T) {
	weather := &mockWeather{}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodDelete, "/advice", nil)
	mux.ServeHTTP(w, r)
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestAdvice_WeatherFailure(t *testing.T) {
	// Weather failures are passed to the model, not the caller
	assert := assert.New(t)
	weather := &mockWeather{err: wearbot.ErrUpstream.With("status 503")}
	mux := serveMux(newTestAdvisor(t, &mockGenerator{}, weather), weather)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/advice?city=Tokyo", nil)
	mux.ServeHTTP(w, r)

	if !assert.Equal(http.StatusOK, w.Code) {
		t.FailNow()
	}
	resp := decode[schema.AdviceResponse](t, w.Body.Bytes())
	assert.Contains(resp.Advice, `"error"`)
}

func TestAdvice_CompletionFailure(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{wearbot.ErrMaxTokens, http.StatusBadGateway},
		{wearbot.ErrUpstream.With("timeout"), http.StatusBadGateway},
		{wearbot.ErrBadParameter.With("bad"), http.StatusBadRequest},
		{wearbot.ErrInternalServerError.With("boom"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			weather := &mockWeather{}
			mux := serveMux(newTestAdvisor(t, &mockGenerator{err: tt.err}, weather), weather)

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/advice?city=Tokyo", nil)
			mux.ServeHTTP(w, r)
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
