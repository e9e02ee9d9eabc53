package compose_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/AustroMelee/avatar-culinary-generator/internal/compose"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

func testPools() compose.Pools {
	var p compose.Pools
	for _, id := range []string{"n1", "n2", "n3", "n4", "n5"} {
		p.Naming = append(p.Naming, domain.NamingRule{ID: id, Title: domain.TemplateText(id + " {primary}")})
		p.Description = append(p.Description, domain.DescriptionRule{ID: "d-" + id, Text: domain.TemplateText("described " + id)})
		p.Lore = append(p.Lore, domain.LoreEntry{ID: "l-" + id, Text: domain.TemplateText("told " + id)})
	}
	return p
}

func TestComposer_HistoriesAreSeparate(t *testing.T) {
	c := compose.NewComposer(testPools(), quietLogger())
	dish, h := c.Compose(soloContext(), compose.NewHistories(8), domain.NewSeededRNG(1))

	if h.Name.Last() != dish.Picks.Name || h.Description.Last() != dish.Picks.Description || h.Lore.Last() != dish.Picks.Lore {
		t.Errorf("histories %+v do not match picks %+v", h, dish.Picks)
	}
	if h.Name.Len() != 1 || h.Description.Len() != 1 || h.Lore.Len() != 1 {
		t.Error("each engine should record exactly one pick")
	}
}

func TestComposer_Deterministic(t *testing.T) {
	run := func() []compose.Dish {
		c := compose.NewComposer(testPools(), quietLogger())
		h := compose.NewHistories(8)
		rng := domain.NewSeededRNG(77)
		var out []compose.Dish
		for range 10 {
			var d compose.Dish
			d, h = c.Compose(fusionContext(), h, rng)
			out = append(out, d)
		}
		return out
	}
	if diff := cmp.Diff(run(), run()); diff != "" {
		t.Errorf("same seed produced different dishes (-first +second):\n%s", diff)
	}
}

func TestComposer_NoImmediateRepeats(t *testing.T) {
	c := compose.NewComposer(testPools(), quietLogger())
	h := compose.NewHistories(8)
	rng := domain.NewSeededRNG(5)

	var prev compose.Picks
	for i := range 100 {
		var d compose.Dish
		d, h = c.Compose(soloContext(), h, rng)
		if d.Picks.Name == prev.Name || d.Picks.Description == prev.Description || d.Picks.Lore == prev.Lore {
			t.Fatalf("dish %d repeated a pick: %+v after %+v", i, d.Picks, prev)
		}
		prev = d.Picks
	}
}

func TestComposer_NormalizesContext(t *testing.T) {
	c := compose.NewComposer(compose.Pools{}, quietLogger())
	dish, _ := c.Compose(domain.DishContext{}, compose.NewHistories(8), domain.NewSeededRNG(1))
	want := compose.Dish{
		Name:        compose.DishName{Title: compose.FallbackTitle},
		Description: compose.FallbackDescription,
		Lore:        compose.Lore{Title: compose.FallbackLoreTitle, Text: compose.FallbackLore},
	}
	if diff := cmp.Diff(want, dish); diff != "" {
		t.Errorf("dish mismatch (-want +got):\n%s", diff)
	}
}
