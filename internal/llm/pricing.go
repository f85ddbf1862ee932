package llm

// Price is USD per million tokens.
type Price struct {
	Input  float64
	Output float64
}

// Cost estimates the USD cost of u.
func (p Price) Cost(u Usage) float64 {
	return (float64(u.InputTokens)*p.Input + float64(u.OutputTokens)*p.Output) / 1e6
}

// PriceOf looks up a model ID; aliases are resolved first.
func PriceOf(model string) (Price, bool) {
	if id, ok := aliases[model]; ok {
		model = id
	}
	p, ok := prices[model]
	return p, ok
}

// Only the small models a counselor note is sized for.
var prices = map[string]Price{
	"claude-haiku-4-5-20251001":   {1, 5},
	"claude-3-5-haiku-20241022":   {0.8, 4},
	"gpt-4o-mini":                 {0.15, 0.6},
	"gpt-4.1-mini":                {0.4, 1.6},
	"gpt-4.1-nano":                {0.1, 0.4},
	"gemini-2.0-flash":            {0.1, 0.4},
	"gemini-2.5-flash":            {0.3, 2.5},
	"gemini-2.5-flash-lite":       {0.1, 0.4},
	"google/gemini-2.0-flash-001": {0.1, 0.4},
	"openai/gpt-4o-mini":          {0.15, 0.6},
}
