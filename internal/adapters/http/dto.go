package http

// DishResponse is the JSON shape returned by GET /v1/dish.
type DishResponse struct {
	Name        string          `json:"name"`
	FlavorText  string          `json:"flavor_text"`
	Description string          `json:"description"`
	Lore        LoreResponse    `json:"lore"`
	Dish        ContextResponse `json:"dish"`
	Meta        MetaResp        `json:"meta"`
}

type LoreResponse struct {
	Title       string `json:"title"`
	Text        string `json:"text"`
	Embellished bool   `json:"embellished"`
}

type ContextResponse struct {
	Type        string               `json:"type"`
	Theme       string               `json:"theme"`
	Nations     []string             `json:"nations"`
	Style       string               `json:"style"`
	Ingredients []IngredientResponse `json:"ingredients"`
}

type IngredientResponse struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Flavor   string `json:"flavor"`
	Rarity   string `json:"rarity"`
	Nation   string `json:"nation"`
}

// RulesResp names the rule behind each part; empty means a fallback was used.
type RulesResp struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Lore        string `json:"lore,omitempty"`
}

type MetaResp struct {
	Seed      *uint64   `json:"seed,omitempty"`
	Rules     RulesResp `json:"rules"`
	Model     string    `json:"model,omitempty"`
	RequestID string    `json:"request_id"`
	LatencyMS int64     `json:"latency_ms"`
}

type NationResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Emoji string `json:"emoji,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
