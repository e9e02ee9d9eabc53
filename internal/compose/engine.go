// Package compose runs the naming, description and lore selectors over a
// dish context and turns the chosen rules into text.
package compose

import (
	"fmt"
	"log/slog"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

// Neutral fallbacks returned when nothing is compatible or a rule fails.
const (
	FallbackTitle       = "House Special"
	FallbackDescription = "A simple and satisfying dish, prepared with care and served warm."
	FallbackLoreTitle   = "An Untold Tale"
	FallbackLore        = "Few stories are told about this dish, yet everyone who tastes it remembers the table it was shared at."

	defaultFusionFlavor = "A meeting of {nations} traditions on a single plate."
)

// loreTierSize is how many of the best lore entries are drawn from uniformly.
const loreTierSize = 5

// DishName is the naming engine's output. FlavorText is empty unless the
// dish combines several nations.
type DishName struct {
	Title      string `json:"title"`
	FlavorText string `json:"flavorText"`
}

// Lore is the lore engine's output.
type Lore struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NameEngine selects naming rules.
type NameEngine struct {
	rules  []domain.NamingRule
	sel    domain.Selector[domain.NamingRule]
	logger *slog.Logger
}

func NewNameEngine(rules []domain.NamingRule, logger *slog.Logger) *NameEngine {
	return &NameEngine{
		rules: rules,
		sel: domain.NewSelector[domain.NamingRule](domain.SelectorConfig{
			Bonuses: domain.NamingBonuses(),
			Penalty: domain.DefaultPenalty(),
			Tiers:   domain.DefaultTiers(),
		}),
		logger: orDefault(logger),
	}
}

// Generate picks a name for dc and returns the updated history.
func (e *NameEngine) Generate(dc domain.DishContext, h domain.History, rng domain.RNG) (DishName, string, domain.History) {
	picked, next, ok := e.sel.Select(e.rules, dc, h, rng)
	if !ok {
		e.logger.Debug("no compatible naming rule", "dish_type", dc.DishType, "nations", dc.Fusion.SelectedNations)
		return DishName{Title: FallbackTitle, FlavorText: fusionFlavor(dc, nil, e.logger, "")}, "", h
	}
	rule := picked.Rule
	e.logger.Debug("naming rule selected", "rule", rule.ID, "score", picked.Score)

	title := invoke(e.logger, rule.ID, rule.Title, dc, FallbackTitle)
	return DishName{Title: title, FlavorText: fusionFlavor(dc, rule.Flavor, e.logger, rule.ID)}, rule.ID, next
}

func fusionFlavor(dc domain.DishContext, fn domain.TextFunc, logger *slog.Logger, ruleID string) string {
	if !dc.IsFusion() {
		return ""
	}
	generic := domain.TemplateText(defaultFusionFlavor)
	if fn == nil {
		fn = generic
	}
	fallback, _ := generic(dc)
	return invoke(logger, ruleID, fn, dc, fallback)
}

// DescriptionEngine selects description rules.
type DescriptionEngine struct {
	rules  []domain.DescriptionRule
	sel    domain.Selector[domain.DescriptionRule]
	logger *slog.Logger
}

func NewDescriptionEngine(rules []domain.DescriptionRule, logger *slog.Logger) *DescriptionEngine {
	return &DescriptionEngine{
		rules: rules,
		sel: domain.NewSelector[domain.DescriptionRule](domain.SelectorConfig{
			Bonuses: domain.DefaultBonuses(),
			Penalty: domain.DefaultPenalty(),
			Tiers:   domain.DefaultTiers(),
		}),
		logger: orDefault(logger),
	}
}

func (e *DescriptionEngine) Generate(dc domain.DishContext, h domain.History, rng domain.RNG) (string, string, domain.History) {
	picked, next, ok := e.sel.Select(e.rules, dc, h, rng)
	if !ok {
		e.logger.Debug("no compatible description rule", "dish_type", dc.DishType, "theme", dc.Theme)
		return FallbackDescription, "", h
	}
	e.logger.Debug("description rule selected", "rule", picked.Rule.ID, "score", picked.Score)
	return invoke(e.logger, picked.Rule.ID, picked.Rule.Text, dc, FallbackDescription), picked.Rule.ID, next
}

// LoreEngine is the simpler variant: recently told entries are skipped
// outright rather than down-weighted, and the pick is uniform over the top
// five.
type LoreEngine struct {
	entries []domain.LoreEntry
	sel     domain.Selector[domain.LoreEntry]
	logger  *slog.Logger
}

func NewLoreEngine(entries []domain.LoreEntry, logger *slog.Logger) *LoreEngine {
	return &LoreEngine{
		entries: entries,
		sel: domain.NewSelector[domain.LoreEntry](domain.SelectorConfig{
			Bonuses: domain.LoreBonuses(),
			Penalty: domain.Penalty{ExcludeRecent: 32, MinRemaining: 1},
			Tiers:   domain.TopTier(loreTierSize),
		}),
		logger: orDefault(logger),
	}
}

func (e *LoreEngine) Generate(dc domain.DishContext, h domain.History, rng domain.RNG) (Lore, string, domain.History) {
	picked, next, ok := e.sel.Select(e.entries, dc, h, rng)
	if !ok {
		e.logger.Debug("no compatible lore entry", "nations", dc.Fusion.SelectedNations)
		return Lore{Title: FallbackLoreTitle, Text: FallbackLore}, "", h
	}
	entry := picked.Rule
	e.logger.Debug("lore entry selected", "rule", entry.ID, "score", picked.Score)

	title := FallbackLoreTitle
	if entry.Title != nil {
		title = invoke(e.logger, entry.ID, entry.Title, dc, FallbackLoreTitle)
	}
	return Lore{Title: title, Text: invoke(e.logger, entry.ID, entry.Text, dc, FallbackLore)}, entry.ID, next
}

// invoke runs a rule's text function. Errors, panics and empty output all
// yield fallback; the rule id is logged so broken templates can be found.
func invoke(logger *slog.Logger, ruleID string, fn domain.TextFunc, dc domain.DishContext, fallback string) (out string) {
	if fn == nil {
		return fallback
	}
	defer func() {
		if r := recover(); r != nil {
			logger.Error("rule text panicked", "rule", ruleID, "panic", fmt.Sprint(r))
			out = fallback
		}
	}()
	text, err := fn(dc)
	if err != nil {
		logger.Warn("rule text failed", "rule", ruleID, "error", err)
		return fallback
	}
	text = domain.Polish(text)
	if text == "" {
		logger.Warn("rule text empty", "rule", ruleID)
		return fallback
	}
	return text
}

func orDefault(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.Default()
	}
	return l
}
