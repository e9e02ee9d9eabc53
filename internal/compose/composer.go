package compose

import (
	"log/slog"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

// Pools holds the three rule pools.
type Pools struct {
	Naming      []domain.NamingRule
	Description []domain.DescriptionRule
	Lore        []domain.LoreEntry
}

// Histories is the recency state of all three engines. Engines never share
// a history.
type Histories struct {
	Name        domain.History
	Description domain.History
	Lore        domain.History
}

// NewHistories returns empty histories of the given capacity.
func NewHistories(capacity int) Histories {
	return Histories{
		Name:        domain.NewHistory(capacity),
		Description: domain.NewHistory(capacity),
		Lore:        domain.NewHistory(capacity),
	}
}

// Picks records which rule produced each part; empty means fallback.
type Picks struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Lore        string `json:"lore,omitempty"`
}

// Dish is the rendered output for one context.
type Dish struct {
	Name        DishName `json:"name"`
	Description string   `json:"description"`
	Lore        Lore     `json:"lore"`
	Picks       Picks    `json:"picks"`
}

// Composer runs the three engines in order. It holds no mutable state.
type Composer struct {
	name        *NameEngine
	description *DescriptionEngine
	lore        *LoreEngine
}

func NewComposer(p Pools, logger *slog.Logger) *Composer {
	return &Composer{
		name:        NewNameEngine(p.Naming, logger),
		description: NewDescriptionEngine(p.Description, logger),
		lore:        NewLoreEngine(p.Lore, logger),
	}
}

// Compose normalizes dc and runs naming, description and lore, threading
// each engine's own history through. The same dc, histories and RNG
// sequence always produce the same Dish.
func (c *Composer) Compose(dc domain.DishContext, h Histories, rng domain.RNG) (Dish, Histories) {
	dc = dc.Normalize()

	var d Dish
	d.Name, d.Picks.Name, h.Name = c.name.Generate(dc, h.Name, rng)
	d.Description, d.Picks.Description, h.Description = c.description.Generate(dc, h.Description, rng)
	d.Lore, d.Picks.Lore, h.Lore = c.lore.Generate(dc, h.Lore, rng)
	return d, h
}
