package domain_test

import (
	"errors"
	"testing"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

func TestRender(t *testing.T) {
	tests := []struct {
		tpl  string
		dc   domain.DishContext
		want string
	}{
		{"{primary} and {secondary}", dessertContext(), "Moon Peach and Sky Bison Milk"},
		{"a {nation} {subtype}", dessertContext(), "a Air Nomads pudding"},
		{"{nations} meet over {ingredients}", fusionContext(), "Water Tribe and Fire Nation meet over Sea Prunes, Komodo Chicken and Fire Flakes"},
		{"{adjective} {emoji}", fusionContext(), "tidal 🌊🔥"},
		{"{dish_type}, {theme}", fusionContext(), "main course, ceremonial & celebratory"},
		{"{rarity} {location}", dessertContext(), "rare distant hills"},
		{"no placeholders", dessertContext(), "no placeholders"},
	}
	for _, tt := range tests {
		t.Run(tt.tpl, func(t *testing.T) {
			got, err := domain.Render(tt.tpl, tt.dc)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRender_Unresolved(t *testing.T) {
	for _, tpl := range []string{"{bogus} stew", "open {primary"} {
		_, err := domain.Render(tpl, dessertContext())
		if !errors.Is(err, domain.ErrUnresolvedPlaceholder) {
			t.Errorf("Render(%q) error = %v, want ErrUnresolvedPlaceholder", tpl, err)
		}
	}
}

func TestCheckTemplate(t *testing.T) {
	for _, p := range domain.Placeholders() {
		if err := domain.CheckTemplate("{" + p + "}"); err != nil {
			t.Errorf("placeholder %s rejected: %v", p, err)
		}
	}
	if err := domain.CheckTemplate("{nope}"); err == nil {
		t.Error("expected error for unknown placeholder")
	}
}

func TestPolish(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"a apple tart", "An apple tart"},
		{"A orange glaze", "An orange glaze"},
		{"an unique broth", "A unique broth"},
		{"a hour-long simmer", "An hour-long simmer"},
		{"served  with\ta   smile", "Served with a smile"},
		{"an Air Nomads pudding", "An Air Nomads pudding"},
		{"a Air Nomads pudding", "An Air Nomads pudding"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := domain.Polish(tt.in); got != tt.want {
			t.Errorf("Polish(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestJoinList(t *testing.T) {
	tests := []struct {
		in   []string
		want string
	}{
		{nil, ""},
		{[]string{"rice"}, "rice"},
		{[]string{"rice", "tea"}, "rice and tea"},
		{[]string{"rice", "tea", "plums"}, "rice, tea and plums"},
	}
	for _, tt := range tests {
		if got := domain.JoinList(tt.in); got != tt.want {
			t.Errorf("JoinList(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
