package domain

import "slices"

// Weighting is the predicate half of a rule. Every field is optional: an
// absent field never excludes a rule, though present fields may still earn
// scoring bonuses. The same record serves naming, description and lore rules.
type Weighting struct {
	// Nations must all be selected.
	Nations []string `yaml:"nations,omitempty" json:"nations,omitempty"`
	// NationFlags is satisfied when any selected nation maps to true.
	NationFlags map[string]bool `yaml:"nation_flags,omitempty" json:"nationFlags,omitempty"`
	MinNations  int             `yaml:"min_nations,omitempty" json:"minNations,omitempty"`
	MaxNations  int             `yaml:"max_nations,omitempty" json:"maxNations,omitempty"`
	// Fusion requires at least two selected nations.
	Fusion bool `yaml:"fusion,omitempty" json:"fusion,omitempty"`

	DishTypes       []DishType `yaml:"dish_types,omitempty" json:"dishTypes,omitempty"`
	Styles          []string   `yaml:"styles,omitempty" json:"styles,omitempty"`
	CompatibleForms []string   `yaml:"forms,omitempty" json:"compatibleForms,omitempty"`
	Themes          []Theme    `yaml:"themes,omitempty" json:"themes,omitempty"`

	// Scoring only.
	Categories     []string `yaml:"categories,omitempty" json:"categories,omitempty"`
	FlavorProfiles []string `yaml:"flavors,omitempty" json:"flavorProfiles,omitempty"`
	Ingredients    []string `yaml:"ingredients,omitempty" json:"ingredients,omitempty"`
	// Pairing marks rules that talk about how the two main ingredients
	// combine; they earn the synergy bonus.
	Pairing bool `yaml:"pairing,omitempty" json:"pairing,omitempty"`

	MinIngredients int    `yaml:"min_ingredients,omitempty" json:"minIngredients,omitempty"`
	MaxIngredients int    `yaml:"max_ingredients,omitempty" json:"maxIngredients,omitempty"`
	MinRarity      Rarity `yaml:"min_rarity,omitempty" json:"minRarity,omitempty"`
	NoMeat         bool   `yaml:"no_meat,omitempty" json:"noMeat,omitempty"`

	// Condition is an extra hard constraint, typically compiled from a
	// rule-pool expression.
	Condition func(DishContext) bool `yaml:"-" json:"-"`
}

// IsCompatible reports whether every present constraint of w holds for dc.
// It has no side effects.
//
// Soup bases are not required to be liquid-like and desserts do not need a
// sweet primary; the flavor bonus already favours sweet desserts.
func IsCompatible(w Weighting, dc DishContext) bool {
	if len(w.DishTypes) > 0 && !slices.Contains(w.DishTypes, dc.DishType) {
		return false
	}
	if len(w.Styles) > 0 && !slices.Contains(w.Styles, dc.CookingStyle.Name) {
		return false
	}
	if len(w.CompatibleForms) > 0 && !slices.Contains(w.CompatibleForms, dc.CookingStyle.Form) {
		return false
	}
	if len(w.Themes) > 0 && !slices.Contains(w.Themes, dc.Theme) {
		return false
	}

	for _, n := range w.Nations {
		if !dc.HasNation(n) {
			return false
		}
	}
	if len(w.NationFlags) > 0 && !anyNationFlagged(w.NationFlags, dc) {
		return false
	}

	nations := dc.NationCount()
	if w.Fusion && nations < 2 {
		return false
	}
	if w.MinNations > 0 && nations < w.MinNations {
		return false
	}
	if w.MaxNations > 0 && nations > w.MaxNations {
		return false
	}

	count := len(dc.AllIngredients)
	if w.MinIngredients > 0 && count < w.MinIngredients {
		return false
	}
	if w.MaxIngredients > 0 && count > w.MaxIngredients {
		return false
	}

	if w.MinRarity != RarityUnknown && dc.MaxRarity().Rank() < w.MinRarity.Rank() {
		return false
	}
	if w.NoMeat && dc.HasMeat() {
		return false
	}
	if w.Condition != nil && !w.Condition(dc) {
		return false
	}
	return true
}

func anyNationFlagged(flags map[string]bool, dc DishContext) bool {
	for _, n := range dc.Fusion.SelectedNations {
		if flags[n] {
			return true
		}
	}
	return false
}

// IsEmpty reports whether w carries no constraint and no scoring hint.
func (w Weighting) IsEmpty() bool {
	return len(w.Nations) == 0 && len(w.NationFlags) == 0 && w.MinNations == 0 &&
		w.MaxNations == 0 && !w.Fusion && len(w.DishTypes) == 0 && len(w.Styles) == 0 &&
		len(w.CompatibleForms) == 0 && len(w.Themes) == 0 && len(w.Categories) == 0 &&
		len(w.FlavorProfiles) == 0 && len(w.Ingredients) == 0 && !w.Pairing &&
		w.MinIngredients == 0 && w.MaxIngredients == 0 && w.MinRarity == RarityUnknown &&
		!w.NoMeat && w.Condition == nil
}
