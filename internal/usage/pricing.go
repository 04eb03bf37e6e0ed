package usage

// ModelPrice is the per-million-token price for one model.
type ModelPrice struct {
	InputPerM  float64
	OutputPerM float64
}

// prices is the fixed model price table, in USD per million tokens.
// Lookup is by exact model name; unknown models fall back to defaultPrice.
var prices = map[string]ModelPrice{
	"claude-opus-4":    {InputPerM: 15.0, OutputPerM: 75.0},
	"claude-sonnet-4":  {InputPerM: 3.0, OutputPerM: 15.0},
	"claude-haiku-3-5": {InputPerM: 0.80, OutputPerM: 4.0},
	"gpt-4o":           {InputPerM: 2.50, OutputPerM: 10.0},
	"gpt-4o-mini":      {InputPerM: 0.15, OutputPerM: 0.60},
	"gemini-2.5-pro":   {InputPerM: 1.25, OutputPerM: 10.0},
}

// defaultPrice applies to models missing from the table.
var defaultPrice = ModelPrice{InputPerM: 3.0, OutputPerM: 15.0}

// PriceFor returns the price for a model name.
func PriceFor(model string) ModelPrice {
	if p, ok := prices[model]; ok {
		return p
	}
	return defaultPrice
}

// Cost computes the dollar cost of one usage entry.
func Cost(model string, inputTokens, outputTokens int) float64 {
	p := PriceFor(model)
	return float64(inputTokens)/1e6*p.InputPerM + float64(outputTokens)/1e6*p.OutputPerM
}
