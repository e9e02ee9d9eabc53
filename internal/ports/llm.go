package ports

import "context"

// EmbellishInput holds the rendered dish the LLM may expand on.
type EmbellishInput struct {
	Title       string
	Description string
	LoreTitle   string
	Lore        string
	Nations     []string
	Ingredients []string
	Theme       string
}

// EmbellishOutput is the structured reply returned by the LLM.
type EmbellishOutput struct {
	Lore  string `json:"lore"`
	Model string `json:"-"`
}

// Embellisher rewrites a dish's lore into a longer passage via an LLM.
// It is optional: the template output is always complete without it.
type Embellisher interface {
	Embellish(ctx context.Context, in EmbellishInput) (EmbellishOutput, error)
}
