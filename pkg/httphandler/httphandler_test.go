package httphandler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	// Packages
	wearbot "github.com/mutablelogic/go-wearbot"
	advisor "github.com/mutablelogic/go-wearbot/pkg/advisor"
	httphandler "github.com/mutablelogic/go-wearbot/pkg/httphandler"
	httprouter "github.com/mutablelogic/go-server/pkg/httprouter"
	opt "github.com/mutablelogic/go-wearbot/pkg/opt"
	schema "github.com/mutablelogic/go-wearbot/pkg/schema"
)

///////////////////////////////////////////////////////////////////////////////
// MOCK GENERATOR

// mockGenerator asks for the weather in the city of the user prompt, and
// then returns the tool result as the advice
type mockGenerator struct {
	err error
}

func (g *mockGenerator) Name() string { return "mock" }

func (g *mockGenerator) Generate(_ context.Context, conversation *schema.Conversation, _ ...opt.Opt) (schema.Completion, error) {
	if g.err != nil {
		return nil, g.err
	}
	last := conversation.Last()
	if last.Role == schema.RoleTool {
		return schema.PlainText{Text: "advice: " + last.Text}, nil
	}
	return schema.ToolRequest{Calls: []schema.ToolCall{{ID: "call_1", Name: "get_current_weather"}}}, nil
}

///////////////////////////////////////////////////////////////////////////////
// MOCK WEATHER

type mockWeather struct {
	err error
}

func (m *mockWeather) Current(_ context.Context, location string, units schema.Units) (schema.WeatherRecord, error) {
	if m.err != nil {
		return schema.WeatherRecord{}, m.err
	}
	return schema.WeatherRecord{Location: location, Temperature: 12.5, Units: units.Label()}, nil
}

var _ wearbot.WeatherFetcher = (*mockWeather)(nil)

///////////////////////////////////////////////////////////////////////////////
// HELPERS

func newTestAdvisor(t *testing.T, generator wearbot.Generator, weather wearbot.WeatherFetcher) *advisor.Advisor {
	t.Helper()
	a, err := advisor.New(generator, weather)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func serveMux(advisor *advisor.Advisor, weather wearbot.WeatherFetcher) http.Handler {
	router, err := httprouter.NewRouter(context.Background(), http.NewServeMux(), "/", "", "test", "v0")
	if err != nil {
		panic(err)
	}
	if err := httphandler.RegisterHandlers(advisor, weather, router); err != nil {
		panic(err)
	}
	return router
}

func decode[T any](t *testing.T, data []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		t.Fatal(err)
	}
	return v
}
