package domain

// TextFunc renders one phrasing for a context.
type TextFunc func(DishContext) (string, error)

// TemplateText returns a TextFunc rendering tpl with Render.
func TemplateText(tpl string) TextFunc {
	return func(dc DishContext) (string, error) { return Render(tpl, dc) }
}

// NamingRule produces a dish title and, for fusion dishes, flavor text.
type NamingRule struct {
	ID        string
	Weighting Weighting
	Title     TextFunc
	// Flavor is optional; fusion dishes without one get a generic line.
	Flavor TextFunc
}

func (r NamingRule) RuleID() string          { return r.ID }
func (r NamingRule) RuleWeighting() Weighting { return r.Weighting }

// DescriptionRule produces the sensory description.
type DescriptionRule struct {
	ID        string
	Weighting Weighting
	Text      TextFunc
}

func (r DescriptionRule) RuleID() string          { return r.ID }
func (r DescriptionRule) RuleWeighting() Weighting { return r.Weighting }

// LoreEntry produces a titled lore snippet.
type LoreEntry struct {
	ID        string
	Weighting Weighting
	Title     TextFunc
	Text      TextFunc
}

func (r LoreEntry) RuleID() string          { return r.ID }
func (r LoreEntry) RuleWeighting() Weighting { return r.Weighting }
