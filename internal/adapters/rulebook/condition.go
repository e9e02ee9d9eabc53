package rulebook

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

// IngredientEnv is an ingredient as seen by `when` expressions.
type IngredientEnv struct {
	Name     string
	Category string
	Flavor   string
	Rarity   int
	Nation   string
}

// Env is the expression environment of a rule's `when` condition, e.g.
//
//	when: 'Fusion && Primary.Category == "protein" && Synergy > 3'
type Env struct {
	DishType        string
	Theme           string
	Nations         []string
	NationCount     int
	Fusion          bool
	Primary         IngredientEnv
	Secondary       IngredientEnv
	Ingredients     []string
	IngredientCount int
	MaxRarity       int
	Style           string
	Form            string
	Synergy         int
	HasMeat         bool
}

// Has reports whether an ingredient with that name is in the dish.
func (e Env) Has(name string) bool {
	return slices.ContainsFunc(e.Ingredients, func(s string) bool {
		return strings.EqualFold(s, name)
	})
}

// Rank converts a rarity name to the number compared against MaxRarity.
func (e Env) Rank(rarity string) int {
	r, err := domain.ParseRarity(rarity)
	if err != nil {
		return 0
	}
	return r.Rank()
}

func newEnv(dc domain.DishContext) Env {
	names := make([]string, len(dc.AllIngredients))
	for i, ing := range dc.AllIngredients {
		names[i] = ing.Name
	}
	return Env{
		DishType:        string(dc.DishType),
		Theme:           string(dc.Theme),
		Nations:         dc.Fusion.SelectedNations,
		NationCount:     dc.NationCount(),
		Fusion:          dc.IsFusion(),
		Primary:         ingredientEnv(dc.Primary),
		Secondary:       ingredientEnv(dc.Secondary),
		Ingredients:     names,
		IngredientCount: len(dc.AllIngredients),
		MaxRarity:       dc.MaxRarity().Rank(),
		Style:           dc.CookingStyle.Name,
		Form:            dc.CookingStyle.Form,
		Synergy:         dc.Synergy(),
		HasMeat:         dc.HasMeat(),
	}
}

func ingredientEnv(i domain.Ingredient) IngredientEnv {
	return IngredientEnv{
		Name:     i.Name,
		Category: i.Category,
		Flavor:   i.FlavorProfile,
		Rarity:   i.Rarity.Rank(),
		Nation:   i.Nation,
	}
}

// compileCondition turns a `when` source into a weighting predicate. A
// runtime error makes the rule incompatible for that context.
func compileCondition(ruleID, src string, logger *slog.Logger) (func(domain.DishContext) bool, error) {
	prog, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile condition of %q: %w", ruleID, err)
	}
	return func(dc domain.DishContext) bool {
		out, err := vm.Run(prog, newEnv(dc))
		if err != nil {
			logger.Warn("rule condition error", "rule", ruleID, "error", err)
			return false
		}
		match, _ := out.(bool)
		return match
	}, nil
}
