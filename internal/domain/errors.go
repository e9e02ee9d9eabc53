package domain

import "errors"

var (
	ErrUnknownNation         = errors.New("unknown nation")
	ErrTooManyNations        = errors.New("at most 4 nations can be combined")
	ErrInvalidDishType       = errors.New("invalid dish type")
	ErrInvalidTheme          = errors.New("invalid theme")
	ErrInvalidRarity         = errors.New("invalid rarity")
	ErrNoIngredients         = errors.New("no ingredients available for the selected nations")
	ErrUnresolvedPlaceholder = errors.New("unresolved placeholder")
	ErrUpstreamLLM           = errors.New("upstream LLM failure")
	ErrInvalidLLMJSON        = errors.New("LLM returned invalid JSON after retry")
)
