package opt

///////////////////////////////////////////////////////////////////////////////
// GLOBALS

// Well-known option keys shared between the advisor and providers
const (
	ModelKey       = "model"
	TemperatureKey = "temperature"
	MaxTokensKey   = "max-tokens"
	ToolChoiceKey  = "tool-choice"
	ToolkitKey     = "toolkit"
)
