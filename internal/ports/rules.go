package ports

import (
	"context"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

// RuleStore provides the naming, description and lore rule pools.
type RuleStore interface {
	NamingRules(ctx context.Context) ([]domain.NamingRule, error)
	DescriptionRules(ctx context.Context) ([]domain.DescriptionRule, error)
	LoreEntries(ctx context.Context) ([]domain.LoreEntry, error)
}

// Pantry provides the nations, ingredients and cooking styles dishes are
// assembled from.
type Pantry interface {
	Catalog(ctx context.Context) (domain.Catalog, error)
}
