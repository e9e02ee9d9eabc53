package compose_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/AustroMelee/avatar-culinary-generator/internal/compose"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func soloContext() domain.DishContext {
	peach := domain.Ingredient{Name: "Moon Peach", Category: "fruit", FlavorProfile: "sweet", Rarity: domain.Rare, Nation: "air-nomads"}
	return domain.DishContext{
		DishType:       domain.Dessert,
		Theme:          domain.ThemeHumble,
		Primary:        peach,
		Secondary:      peach,
		AllIngredients: []domain.Ingredient{peach},
		CookingStyle:   domain.CookingStyle{Name: "Steamed", DishSubtype: "pudding", Form: "bowl"},
		Fusion: domain.FusionData{
			SelectedNations: []string{"air-nomads"},
			NationNames:     map[string]string{"air-nomads": "Air Nomads"},
		},
	}
}

func fusionContext() domain.DishContext {
	prunes := domain.Ingredient{Name: "Sea Prunes", Category: "vegetable", FlavorProfile: "salty", Rarity: domain.Common, Nation: "water-tribe"}
	flakes := domain.Ingredient{Name: "Fire Flakes", Category: "snack", FlavorProfile: "spicy", Rarity: domain.Common, Nation: "fire-nation"}
	return domain.DishContext{
		DishType:       domain.Snack,
		Theme:          domain.ThemeInvigorating,
		Primary:        prunes,
		Secondary:      flakes,
		AllIngredients: []domain.Ingredient{prunes, flakes},
		CookingStyle:   domain.CookingStyle{Name: "Flame-Seared", DishSubtype: "skewer"},
		Fusion: domain.FusionData{
			SelectedNations: []string{"water-tribe", "fire-nation"},
			NationNames:     map[string]string{"water-tribe": "Water Tribe", "fire-nation": "Fire Nation"},
		},
	}
}

func TestNameEngine_EmptyPoolFallsBack(t *testing.T) {
	e := compose.NewNameEngine(nil, quietLogger())
	h := domain.NewHistory(8)

	name, id, next := e.Generate(soloContext(), h, domain.NewSeededRNG(1))
	if name.Title != compose.FallbackTitle || id != "" {
		t.Errorf("got %q from %q, want fallback", name.Title, id)
	}
	if name.FlavorText != "" {
		t.Errorf("single-nation dish got flavor text %q", name.FlavorText)
	}
	if next.Len() != 0 {
		t.Errorf("fallback recorded history: %v", next.IDs())
	}

	name, _, _ = e.Generate(fusionContext(), h, domain.NewSeededRNG(1))
	if want := "A meeting of Water Tribe and Fire Nation traditions on a single plate."; name.FlavorText != want {
		t.Errorf("fusion fallback flavor = %q, want %q", name.FlavorText, want)
	}
}

func TestNameEngine_BrokenRuleFallsBack(t *testing.T) {
	tests := []struct {
		name string
		fn   domain.TextFunc
	}{
		{"panics", func(domain.DishContext) (string, error) { panic("boom") }},
		{"errors", func(domain.DishContext) (string, error) { return "", errors.New("nope") }},
		{"empty", func(domain.DishContext) (string, error) { return "   ", nil }},
		{"unknown placeholder", domain.TemplateText("{missing} stew")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := compose.NewNameEngine([]domain.NamingRule{{ID: "broken", Title: tt.fn}}, quietLogger())
			name, id, next := e.Generate(soloContext(), domain.NewHistory(8), domain.NewSeededRNG(1))
			if name.Title != compose.FallbackTitle {
				t.Errorf("title = %q, want fallback", name.Title)
			}
			if id != "broken" || next.Last() != "broken" {
				t.Errorf("selected rule not reported: id=%q history=%v", id, next.IDs())
			}
		})
	}
}

func TestNameEngine_PolishesOutput(t *testing.T) {
	rules := []domain.NamingRule{{ID: "plain", Title: domain.TemplateText("a  {adjective}   {primary} {subtype}")}}
	name, _, _ := compose.NewNameEngine(rules, quietLogger()).Generate(soloContext(), domain.NewHistory(8), domain.NewSeededRNG(1))
	if want := "A storied Moon Peach pudding"; name.Title != want {
		t.Errorf("title = %q, want %q", name.Title, want)
	}
}

func TestNameEngine_FusionRules(t *testing.T) {
	rules := []domain.NamingRule{
		{
			ID:        "fusion-tide-flame",
			Weighting: domain.Weighting{Nations: []string{"water-tribe", "fire-nation"}, Fusion: true},
			Title:     domain.TemplateText("Tide and Flame {primary}"),
			Flavor:    domain.TemplateText("Steam rises where {nations} meet."),
		},
		{
			ID:        "earth-only",
			Weighting: domain.Weighting{Nations: []string{"earth-kingdom"}},
			Title:     domain.TemplateText("Earthen {primary}"),
		},
		{
			ID:        "solo",
			Weighting: domain.Weighting{MaxNations: 1},
			Title:     domain.TemplateText("Solo {primary}"),
		},
	}
	e := compose.NewNameEngine(rules, quietLogger())
	h := domain.NewHistory(8)
	rng := domain.NewSeededRNG(9)
	for range 20 {
		name, id, next := e.Generate(fusionContext(), h, rng)
		if id != "fusion-tide-flame" {
			t.Fatalf("picked %q for a water/fire fusion", id)
		}
		if name.FlavorText != "Steam rises where Water Tribe and Fire Nation meet." {
			t.Errorf("flavor = %q", name.FlavorText)
		}
		h = next
	}

	name, _, _ := e.Generate(soloContext(), domain.NewHistory(8), rng)
	if name.Title != "Solo Moon Peach" || name.FlavorText != "" {
		t.Errorf("solo dish got %+v", name)
	}
}

func TestDescriptionEngine_Fallback(t *testing.T) {
	e := compose.NewDescriptionEngine([]domain.DescriptionRule{
		{ID: "mains", Weighting: domain.Weighting{DishTypes: []domain.DishType{domain.MainCourse}}, Text: domain.TemplateText("hearty")},
	}, quietLogger())
	text, id, _ := e.Generate(soloContext(), domain.NewHistory(8), domain.NewSeededRNG(1))
	if text != compose.FallbackDescription || id != "" {
		t.Errorf("got %q from %q, want fallback", text, id)
	}
}

func TestLoreEngine_SkipsToldEntries(t *testing.T) {
	entries := []domain.LoreEntry{
		{ID: "lore-a", Text: domain.TemplateText("a")},
		{ID: "lore-b", Text: domain.TemplateText("b")},
		{ID: "lore-c", Title: domain.TemplateText("The {primary}"), Text: domain.TemplateText("c")},
	}
	e := compose.NewLoreEngine(entries, quietLogger())
	h := domain.NewHistory(8).Record("lore-a").Record("lore-b")

	lore, id, next := e.Generate(soloContext(), h, domain.NewSeededRNG(4))
	if id != "lore-c" {
		t.Fatalf("picked %q, want the untold entry", id)
	}
	if lore.Title != "The Moon Peach" || lore.Text != "C" {
		t.Errorf("lore = %+v", lore)
	}
	if next.Last() != "lore-c" {
		t.Errorf("history = %v", next.IDs())
	}
}

func TestLoreEngine_UntitledEntryGetsDefaultTitle(t *testing.T) {
	e := compose.NewLoreEngine([]domain.LoreEntry{{ID: "only", Text: domain.TemplateText("told by {nation} monks")}}, quietLogger())
	lore, _, _ := e.Generate(soloContext(), domain.NewHistory(8), domain.NewSeededRNG(1))
	if lore.Title != compose.FallbackLoreTitle || lore.Text != "Told by Air Nomads monks" {
		t.Errorf("lore = %+v", lore)
	}
}
