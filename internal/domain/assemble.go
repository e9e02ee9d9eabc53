package domain

import (
	"fmt"
	"slices"
)

// MaxFusionNations caps how many nations one dish can combine.
const MaxFusionNations = 4

// Nation is a culinary tradition in the catalog.
type Nation struct {
	ID         string   `yaml:"id" json:"id"`
	Name       string   `yaml:"name" json:"name"`
	Emoji      string   `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	Adjectives []string `yaml:"adjectives,omitempty" json:"adjectives,omitempty"`
}

// Catalog is everything a dish can be assembled from.
type Catalog struct {
	Nations     []Nation       `yaml:"nations" json:"nations"`
	Ingredients []Ingredient   `yaml:"ingredients" json:"ingredients"`
	Styles      []CookingStyle `yaml:"styles" json:"styles"`
}

// Nation looks a nation up by id.
func (c Catalog) Nation(id string) (Nation, bool) {
	for _, n := range c.Nations {
		if n.ID == id {
			return n, true
		}
	}
	return Nation{}, false
}

// DishRequest is what a caller may pin down; empty fields are drawn at random.
type DishRequest struct {
	Nations  []string
	DishType DishType
	Theme    Theme
}

// AssembleDish builds a DishContext from the catalog using rng.
// Each selected nation contributes at least one ingredient when it has any;
// the dish holds 2–4 ingredients in total when the pool allows it.
func AssembleDish(c Catalog, req DishRequest, rng RNG) (DishContext, error) {
	nations, err := resolveNations(c, req.Nations, rng)
	if err != nil {
		return DishContext{}, err
	}

	dishType := req.DishType
	if dishType == "" {
		dishType = DishTypes[rng.Intn(len(DishTypes))]
	} else if !dishType.Valid() {
		return DishContext{}, fmt.Errorf("%w: %q", ErrInvalidDishType, dishType)
	}

	theme := req.Theme
	if theme == "" {
		theme = Themes[rng.Intn(len(Themes))]
	} else if !slices.Contains(Themes, theme) {
		return DishContext{}, fmt.Errorf("%w: %q", ErrInvalidTheme, theme)
	}

	var pool []Ingredient
	for _, ing := range c.Ingredients {
		if slices.Contains(nations, ing.Nation) {
			pool = append(pool, ing)
		}
	}
	if len(pool) == 0 {
		return DishContext{}, ErrNoIngredients
	}

	ingredients := drawIngredients(pool, nations, rng)
	dc := DishContext{
		DishType:       dishType,
		Theme:          theme,
		Primary:        ingredients[0],
		Secondary:      ingredients[0],
		AllIngredients: ingredients,
		CookingStyle:   pickStyle(c.Styles, dishType, rng),
		Fusion:         fusionData(c, nations, rng),
	}
	if len(ingredients) > 1 {
		dc.Secondary = ingredients[1]
	}
	return dc, nil
}

func resolveNations(c Catalog, requested []string, rng RNG) ([]string, error) {
	if len(requested) == 0 {
		if len(c.Nations) == 0 {
			return nil, ErrNoIngredients
		}
		return []string{c.Nations[rng.Intn(len(c.Nations))].ID}, nil
	}
	var out []string
	for _, id := range requested {
		if _, ok := c.Nation(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownNation, id)
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	if len(out) > MaxFusionNations {
		return nil, ErrTooManyNations
	}
	return out, nil
}

func drawIngredients(pool []Ingredient, nations []string, rng RNG) []Ingredient {
	want := 2 + rng.Intn(3)
	want = min(max(want, len(nations)), MaxFusionNations, len(pool))

	// Fisher-Yates over indices, then take one per nation first.
	indices := make([]int, len(pool))
	for i := range indices {
		indices[i] = i
	}
	for i := len(indices) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		indices[i], indices[j] = indices[j], indices[i]
	}

	taken := make([]bool, len(pool))
	out := make([]Ingredient, 0, want)
	for _, n := range nations {
		for _, idx := range indices {
			if !taken[idx] && pool[idx].Nation == n {
				taken[idx] = true
				out = append(out, pool[idx])
				break
			}
		}
	}
	for _, idx := range indices {
		if len(out) >= want {
			break
		}
		if !taken[idx] {
			taken[idx] = true
			out = append(out, pool[idx])
		}
	}
	return out
}

func pickStyle(styles []CookingStyle, dt DishType, rng RNG) CookingStyle {
	var fit []CookingStyle
	for _, s := range styles {
		if len(s.DishTypes) == 0 || slices.Contains(s.DishTypes, dt) {
			fit = append(fit, s)
		}
	}
	if len(fit) == 0 {
		fit = styles
	}
	if len(fit) == 0 {
		return CookingStyle{Name: "home-cooked", DishSubtype: "dish", Description: "prepared the way it always has been"}
	}
	return fit[rng.Intn(len(fit))]
}

func fusionData(c Catalog, nations []string, rng RNG) FusionData {
	fd := FusionData{
		SelectedNations: nations,
		NationNames:     make(map[string]string, len(nations)),
	}
	for _, id := range nations {
		n, _ := c.Nation(id)
		fd.NationNames[id] = n.Name
		if n.Emoji != "" {
			fd.Emoji = append(fd.Emoji, n.Emoji)
		}
		fd.Adjectives = append(fd.Adjectives, n.Adjectives...)
	}
	for i := len(fd.Adjectives) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		fd.Adjectives[i], fd.Adjectives[j] = fd.Adjectives[j], fd.Adjectives[i]
	}
	return fd
}
