package domain

import "slices"

// BaseScore is what a compatible rule with no matching field scores.
const BaseScore = 1.0

// HighSynergy is the affinity above which pairing rules earn a bonus.
const HighSynergy = 5

// Default bonus magnitudes. Exact matches on the primary ingredient and its
// nation outrank broader matches such as theme or ingredient count.
const (
	DefaultBonusCategory       = 20
	DefaultBonusFlavor         = 20
	DefaultBonusIngredient     = 20
	DefaultBonusStyle          = 15
	DefaultBonusTheme          = 15
	DefaultBonusDishType       = 10
	DefaultBonusNation         = 25
	DefaultBonusRarity         = 10
	DefaultBonusIngredientSpan = 8
	DefaultBonusFusion         = 18
	DefaultBonusSynergy        = 15
)

// Bonuses is the additive weight table of one engine.
type Bonuses struct {
	Category       float64
	Flavor         float64
	Ingredient     float64
	Style          float64
	Theme          float64
	DishType       float64
	Nation         float64
	Rarity         float64
	IngredientSpan float64 // per satisfied min/max ingredient bound
	Fusion         float64
	Synergy        float64
	// Fresh is added when the rule id is absent from history.
	Fresh float64
}

// DefaultBonuses is the table used for descriptions.
func DefaultBonuses() Bonuses {
	return Bonuses{
		Category:       DefaultBonusCategory,
		Flavor:         DefaultBonusFlavor,
		Ingredient:     DefaultBonusIngredient,
		Style:          DefaultBonusStyle,
		Theme:          DefaultBonusTheme,
		DishType:       DefaultBonusDishType,
		Nation:         DefaultBonusNation,
		Rarity:         DefaultBonusRarity,
		IngredientSpan: DefaultBonusIngredientSpan,
		Fusion:         DefaultBonusFusion,
		Synergy:        DefaultBonusSynergy,
	}
}

// NamingBonuses favours nation and fusion names and rewards unused rules
// additively.
func NamingBonuses() Bonuses {
	b := DefaultBonuses()
	b.Nation = 22
	b.Fusion = 20
	b.Fresh = 6
	return b
}

// LoreBonuses leans on nation and theme; lore rarely keys on ingredient shape.
func LoreBonuses() Bonuses {
	b := DefaultBonuses()
	b.Nation = 25
	b.Theme = 15
	b.IngredientSpan = 5
	return b
}

// Score rates how well a compatible rule fits dc. It never returns less
// than BaseScore, and adding a matching field never lowers it.
func Score(w Weighting, dc DishContext, b Bonuses) float64 {
	score := BaseScore

	if slices.Contains(w.Categories, dc.Primary.Category) {
		score += b.Category
	}
	if slices.Contains(w.FlavorProfiles, dc.Primary.FlavorProfile) {
		score += b.Flavor
	}
	if slices.Contains(w.Ingredients, dc.Primary.Name) || slices.Contains(w.Ingredients, dc.Secondary.Name) {
		score += b.Ingredient
	}
	if slices.Contains(w.Styles, dc.CookingStyle.Name) {
		score += b.Style
	}
	if slices.Contains(w.Themes, dc.Theme) {
		score += b.Theme
	}
	if slices.Contains(w.DishTypes, dc.DishType) {
		score += b.DishType
	}
	if home := dc.Primary.Nation; home != "" && (slices.Contains(w.Nations, home) || w.NationFlags[home]) {
		score += b.Nation
	}
	if w.MinRarity != RarityUnknown && dc.MaxRarity().Rank() >= w.MinRarity.Rank() {
		score += b.Rarity
	}

	count := len(dc.AllIngredients)
	if w.MinIngredients > 0 && count >= w.MinIngredients {
		score += b.IngredientSpan
	}
	if w.MaxIngredients > 0 && count <= w.MaxIngredients {
		score += b.IngredientSpan
	}

	if (w.Fusion && dc.IsFusion()) || (w.MinNations > 0 && dc.NationCount() >= w.MinNations) {
		score += b.Fusion
	}
	if w.Pairing && dc.Synergy() > HighSynergy {
		score += b.Synergy
	}
	return score
}
