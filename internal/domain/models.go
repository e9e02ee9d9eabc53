package domain

import (
	"fmt"
	"strings"
)

// DishType is the course a dish is served as.
type DishType string

const (
	MainCourse DishType = "main-course"
	SideDish   DishType = "side-dish"
	Snack      DishType = "snack"
	Dessert    DishType = "dessert"
	SoupStew   DishType = "soup-stew"
	Salad      DishType = "salad"
	Beverage   DishType = "beverage"
)

// DishTypes lists every dish type in display order.
var DishTypes = []DishType{MainCourse, SideDish, Snack, Dessert, SoupStew, Salad, Beverage}

// Valid reports whether t is one of DishTypes.
func (t DishType) Valid() bool {
	for _, d := range DishTypes {
		if d == t {
			return true
		}
	}
	return false
}

// ParseDishType accepts "soup-stew", "Soup Stew" or "soup_stew".
func ParseDishType(s string) (DishType, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer(" ", "-", "_", "-").Replace(norm)
	t := DishType(norm)
	if !t.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidDishType, s)
	}
	return t, nil
}

// Theme is the narrative mood of a dish.
type Theme string

const (
	ThemeHumble       Theme = "Humble & Meditative"
	ThemeCeremonial   Theme = "Ceremonial & Celebratory"
	ThemeInvigorating Theme = "Invigorating & Playful"
	ThemeAncient      Theme = "Ancient & Traditional"
)

// Themes lists every theme.
var Themes = []Theme{ThemeHumble, ThemeCeremonial, ThemeInvigorating, ThemeAncient}

// ParseTheme accepts the full theme name or its first word ("ceremonial").
func ParseTheme(s string) (Theme, error) {
	s = strings.TrimSpace(s)
	for _, t := range Themes {
		if strings.EqualFold(string(t), s) {
			return t, nil
		}
		head, _, _ := strings.Cut(string(t), " ")
		if strings.EqualFold(head, s) {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

// Ingredient is a single pantry item.
type Ingredient struct {
	Name          string         `yaml:"name" json:"name"`
	Category      string         `yaml:"category" json:"category"`
	FlavorProfile string         `yaml:"flavor" json:"flavorProfile"`
	Rarity        Rarity         `yaml:"rarity" json:"rarity"`
	Nation        string         `yaml:"nation" json:"nation"`
	Synergies     map[string]int `yaml:"synergies,omitempty" json:"synergies,omitempty"`
	Location      string         `yaml:"location,omitempty" json:"location,omitempty"`
}

// IsMeat reports whether the ingredient counts as meat for noMeat rules.
// Neutral-flavored proteins (tofu, beans) do not.
func (i Ingredient) IsMeat() bool {
	return i.Category == "protein" && i.FlavorProfile != "neutral"
}

// CookingStyle describes how the dish is prepared.
type CookingStyle struct {
	Name        string     `yaml:"name" json:"name"`
	DishSubtype string     `yaml:"subtype" json:"dishSubtype"`
	Form        string     `yaml:"form,omitempty" json:"form,omitempty"`
	Description string     `yaml:"description" json:"description"`
	DishTypes   []DishType `yaml:"dish_types,omitempty" json:"dishTypes,omitempty"`
}

// FusionData carries the selected nations and the naming pools shared
// between them.
type FusionData struct {
	SelectedNations []string          `json:"selectedNations"`
	NationNames     map[string]string `json:"nationNames,omitempty"`
	Adjectives      []string          `json:"adjectives,omitempty"`
	Emoji           []string          `json:"emoji,omitempty"`
}

// DishContext is the read-only input of every engine.
type DishContext struct {
	DishType       DishType     `json:"dishType"`
	Theme          Theme        `json:"theme"`
	Primary        Ingredient   `json:"primaryIngredient"`
	Secondary      Ingredient   `json:"secondaryIngredient"`
	AllIngredients []Ingredient `json:"allIngredients"`
	CookingStyle   CookingStyle `json:"cookingStyle"`
	Fusion         FusionData   `json:"fusionData"`
}

// Normalize fills the fields engines rely on so a partially built context
// never fails selection: Secondary falls back to Primary, AllIngredients is
// never empty and at least one nation is selected.
func (dc DishContext) Normalize() DishContext {
	if dc.Primary.Name == "" && len(dc.AllIngredients) > 0 {
		dc.Primary = dc.AllIngredients[0]
	}
	if dc.Primary.Name == "" {
		dc.Primary = Ingredient{Name: "ingredient", Category: "staple", FlavorProfile: "neutral", Rarity: Common}
	}
	if dc.Secondary.Name == "" {
		if len(dc.AllIngredients) > 1 {
			dc.Secondary = dc.AllIngredients[1]
		} else {
			dc.Secondary = dc.Primary
		}
	}
	if len(dc.AllIngredients) == 0 {
		dc.AllIngredients = []Ingredient{dc.Primary}
		if dc.Secondary.Name != dc.Primary.Name {
			dc.AllIngredients = append(dc.AllIngredients, dc.Secondary)
		}
	}
	if len(dc.Fusion.SelectedNations) == 0 && dc.Primary.Nation != "" {
		dc.Fusion.SelectedNations = []string{dc.Primary.Nation}
	}
	return dc
}

// NationCount is the number of selected nations.
func (dc DishContext) NationCount() int { return len(dc.Fusion.SelectedNations) }

// IsFusion reports whether more than one nation is selected.
func (dc DishContext) IsFusion() bool { return dc.NationCount() >= 2 }

// HasNation reports whether id is among the selected nations.
func (dc DishContext) HasNation(id string) bool {
	for _, n := range dc.Fusion.SelectedNations {
		if n == id {
			return true
		}
	}
	return false
}

// MaxRarity is the highest rarity among all ingredients.
func (dc DishContext) MaxRarity() Rarity {
	max := RarityUnknown
	for _, i := range dc.AllIngredients {
		if i.Rarity > max {
			max = i.Rarity
		}
	}
	return max
}

// HasMeat reports whether any ingredient is a non-neutral protein.
func (dc DishContext) HasMeat() bool {
	for _, i := range dc.AllIngredients {
		if i.IsMeat() {
			return true
		}
	}
	return false
}

// NationName returns the display name of a nation id, falling back to the id.
func (dc DishContext) NationName(id string) string {
	if name, ok := dc.Fusion.NationNames[id]; ok && name != "" {
		return name
	}
	return id
}

// Synergy returns the primary ingredient's declared affinity with the
// secondary one, or 0.
func (dc DishContext) Synergy() int {
	return dc.Primary.Synergies[dc.Secondary.Name]
}
