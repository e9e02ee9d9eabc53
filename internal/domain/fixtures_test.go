package domain_test

import (
	"strconv"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

// deterministicRNG returns values from pre-set sequences. Intn falls back
// to 0 and Float64 to 0.0 when their sequence is empty.
type deterministicRNG struct {
	ints   []int
	floats []float64
	ii, fi int
}

func (r *deterministicRNG) Intn(n int) int {
	if len(r.ints) == 0 {
		return 0
	}
	v := r.ints[r.ii%len(r.ints)] % n
	r.ii++
	return v
}

func (r *deterministicRNG) Float64() float64 {
	if len(r.floats) == 0 {
		return 0
	}
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

// testRule is a minimal domain.Rule.
type testRule struct {
	id string
	w  domain.Weighting
}

func (r testRule) RuleID() string                  { return r.id }
func (r testRule) RuleWeighting() domain.Weighting { return r.w }

func plainRules(n int) []testRule {
	rules := make([]testRule, n)
	for i := range n {
		rules[i] = testRule{id: "rule-" + strconv.Itoa(i)}
	}
	return rules
}

var (
	moonPeach = domain.Ingredient{
		Name: "Moon Peach", Category: "fruit", FlavorProfile: "sweet", Rarity: domain.Rare, Nation: "air-nomads",
		Synergies: map[string]int{"Sky Bison Milk": 8},
	}
	bisonMilk = domain.Ingredient{
		Name: "Sky Bison Milk", Category: "dairy", FlavorProfile: "creamy", Rarity: domain.Uncommon, Nation: "air-nomads",
	}
	seaPrunes = domain.Ingredient{
		Name: "Sea Prunes", Category: "vegetable", FlavorProfile: "salty", Rarity: domain.Common, Nation: "water-tribe",
	}
	komodoChicken = domain.Ingredient{
		Name: "Komodo Chicken", Category: "protein", FlavorProfile: "savory", Rarity: domain.Common, Nation: "fire-nation",
	}
	fireFlakes = domain.Ingredient{
		Name: "Fire Flakes", Category: "snack", FlavorProfile: "spicy", Rarity: domain.Common, Nation: "fire-nation",
	}
	tofu = domain.Ingredient{
		Name: "Tofu", Category: "protein", FlavorProfile: "neutral", Rarity: domain.Common, Nation: "earth-kingdom",
	}
	cabbage = domain.Ingredient{
		Name: "Cabbage", Category: "vegetable", FlavorProfile: "earthy", Rarity: domain.Common, Nation: "earth-kingdom",
	}
)

// dessertContext is a single-nation Air Nomad dessert led by Moon Peach.
func dessertContext() domain.DishContext {
	return domain.DishContext{
		DishType:       domain.Dessert,
		Theme:          domain.ThemeHumble,
		Primary:        moonPeach,
		Secondary:      bisonMilk,
		AllIngredients: []domain.Ingredient{moonPeach, bisonMilk},
		CookingStyle:   domain.CookingStyle{Name: "Steamed", DishSubtype: "pudding", Form: "bowl"},
		Fusion: domain.FusionData{
			SelectedNations: []string{"air-nomads"},
			NationNames:     map[string]string{"air-nomads": "Air Nomads"},
		},
	}
}

// fusionContext combines the Water Tribe and the Fire Nation.
func fusionContext() domain.DishContext {
	return domain.DishContext{
		DishType:       domain.MainCourse,
		Theme:          domain.ThemeCeremonial,
		Primary:        seaPrunes,
		Secondary:      komodoChicken,
		AllIngredients: []domain.Ingredient{seaPrunes, komodoChicken, fireFlakes},
		CookingStyle:   domain.CookingStyle{Name: "Flame-Seared", DishSubtype: "skewer"},
		Fusion: domain.FusionData{
			SelectedNations: []string{"water-tribe", "fire-nation"},
			NationNames:     map[string]string{"water-tribe": "Water Tribe", "fire-nation": "Fire Nation"},
			Adjectives:      []string{"tidal", "blazing"},
			Emoji:           []string{"🌊", "🔥"},
		},
	}
}

func testCatalog() domain.Catalog {
	return domain.Catalog{
		Nations: []domain.Nation{
			{ID: "air-nomads", Name: "Air Nomads", Emoji: "🌀", Adjectives: []string{"airy"}},
			{ID: "water-tribe", Name: "Water Tribe", Emoji: "🌊", Adjectives: []string{"tidal"}},
			{ID: "earth-kingdom", Name: "Earth Kingdom", Emoji: "⛰️", Adjectives: []string{"steadfast"}},
			{ID: "fire-nation", Name: "Fire Nation", Emoji: "🔥", Adjectives: []string{"blazing"}},
			{ID: "sun-warriors", Name: "Sun Warriors"},
		},
		Ingredients: []domain.Ingredient{moonPeach, bisonMilk, seaPrunes, komodoChicken, fireFlakes, tofu, cabbage},
		Styles: []domain.CookingStyle{
			{Name: "Steamed", DishSubtype: "pudding", DishTypes: []domain.DishType{domain.Dessert}},
			{Name: "Flame-Seared", DishSubtype: "skewer", DishTypes: []domain.DishType{domain.MainCourse, domain.Snack}},
			{Name: "Simmered", DishSubtype: "stew", DishTypes: []domain.DishType{domain.SoupStew}},
		},
	}
}
