package domain_test

import (
	"errors"
	"testing"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

func TestParseDishType(t *testing.T) {
	for _, in := range []string{"soup-stew", "Soup Stew", "soup_stew", "  SOUP-STEW "} {
		got, err := domain.ParseDishType(in)
		if err != nil || got != domain.SoupStew {
			t.Errorf("ParseDishType(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := domain.ParseDishType("brunch"); !errors.Is(err, domain.ErrInvalidDishType) {
		t.Errorf("expected ErrInvalidDishType, got %v", err)
	}
}

func TestParseTheme(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Theme
	}{
		{"ceremonial", domain.ThemeCeremonial},
		{"Ancient & Traditional", domain.ThemeAncient},
		{"HUMBLE", domain.ThemeHumble},
	}
	for _, tt := range tests {
		got, err := domain.ParseTheme(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTheme(%q) = %q, %v", tt.in, got, err)
		}
	}
	if _, err := domain.ParseTheme("gloomy"); !errors.Is(err, domain.ErrInvalidTheme) {
		t.Errorf("expected ErrInvalidTheme, got %v", err)
	}
}

func TestParseRarity(t *testing.T) {
	got, err := domain.ParseRarity("legendary")
	if err != nil || got != domain.Legendary {
		t.Errorf("ParseRarity = %v, %v", got, err)
	}
	if _, err := domain.ParseRarity("mythic"); !errors.Is(err, domain.ErrInvalidRarity) {
		t.Errorf("expected ErrInvalidRarity, got %v", err)
	}
	if !(domain.Common.Rank() < domain.Uncommon.Rank() && domain.Uncommon.Rank() < domain.Rare.Rank() && domain.Rare.Rank() < domain.Legendary.Rank()) {
		t.Error("rarity ranks out of order")
	}
}

func TestDishContext_Normalize(t *testing.T) {
	dc := domain.DishContext{Primary: moonPeach}.Normalize()
	if dc.Secondary.Name != moonPeach.Name {
		t.Errorf("secondary = %q, want primary", dc.Secondary.Name)
	}
	if len(dc.AllIngredients) != 1 {
		t.Errorf("all ingredients = %d, want 1", len(dc.AllIngredients))
	}
	if !dc.HasNation("air-nomads") {
		t.Errorf("nations = %v, want primary nation", dc.Fusion.SelectedNations)
	}

	empty := domain.DishContext{}.Normalize()
	if empty.Primary.Name == "" || len(empty.AllIngredients) == 0 {
		t.Error("empty context not filled")
	}
}
