package llm

// ModelCost is USD per million tokens.
type ModelCost struct {
	InputPerMTok  float64
	OutputPerMTok float64
}

// Cost prices a token count.
func (c ModelCost) Cost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens)*c.InputPerMTok/1_000_000 +
		float64(outputTokens)*c.OutputPerMTok/1_000_000
}

// LookupCost returns the price for a model id, or nil if unknown.
func LookupCost(modelID string) *ModelCost {
	if c, ok := modelCosts[modelID]; ok {
		return &c
	}
	return nil
}

// modelCosts covers the default line models per backend, plus the
// common alternates. Last updated: 2026-09-30.
var modelCosts = map[string]ModelCost{
	"claude-haiku-4-5":        {1, 5},
	"claude-sonnet-4-5":       {3, 15},
	"claude-3-5-haiku-latest": {0.8, 4},

	"gpt-4o-mini":  {0.15, 0.6},
	"gpt-4.1-mini": {0.4, 1.6},
	"gpt-4.1-nano": {0.1, 0.4},

	"gemini-2.0-flash":             {0.1, 0.4},
	"gemini-2.5-flash":             {0.3, 2.5},
	"gemini-2.5-flash-lite":        {0.1, 0.4},
	"google/gemini-2.5-flash-lite": {0.1, 0.4},
}
