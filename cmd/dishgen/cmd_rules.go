package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/wiring"
)

var rulesFlags struct {
	pool     string
	markdown bool
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the rules of each pool with their constraints",
	RunE:  runRules,
}

func init() {
	f := rulesCmd.Flags()
	f.StringVarP(&rulesFlags.pool, "pool", "p", "", "Only list one pool: naming, description or lore")
	f.BoolVar(&rulesFlags.markdown, "markdown", false, "Render Markdown tables")
}

type ruleRow struct {
	id string
	w  domain.Weighting
}

type poolSection struct {
	name string
	rows []ruleRow
}

func runRules(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	pools, err := app.LoadPools(cmd.Context(), wiring.RuleStore(rootFlags.rulesDir, logger))
	if err != nil {
		return err
	}

	sections := []poolSection{
		{"naming", rows(pools.Naming)},
		{"description", rows(pools.Description)},
		{"lore", rows(pools.Lore)},
	}
	if rulesFlags.pool != "" && !slices.ContainsFunc(sections, func(s poolSection) bool { return s.name == rulesFlags.pool }) {
		return fmt.Errorf("unknown pool %q (want naming, description or lore)", rulesFlags.pool)
	}

	out := cmd.OutOrStdout()
	for _, s := range sections {
		if rulesFlags.pool != "" && s.name != rulesFlags.pool {
			continue
		}
		t := table.NewWriter()
		t.SetOutputMirror(out)
		t.SetStyle(table.StyleLight)
		t.SetTitle(fmt.Sprintf("%s (%d)", s.name, len(s.rows)))
		t.AppendHeader(table.Row{"ID", "Constraints", "Scoring"})
		for _, r := range s.rows {
			t.AppendRow(table.Row{r.id, constraints(r.w), scoring(r.w)})
		}
		if rulesFlags.markdown {
			t.RenderMarkdown()
		} else {
			t.Render()
		}
		fmt.Fprintln(out)
	}
	return nil
}

func rows[R domain.Rule](rules []R) []ruleRow {
	out := make([]ruleRow, len(rules))
	for i, r := range rules {
		out[i] = ruleRow{id: r.RuleID(), w: r.RuleWeighting()}
	}
	return out
}

func constraints(w domain.Weighting) string {
	var parts []string
	add := func(label string, items []string) {
		if len(items) > 0 {
			parts = append(parts, label+"="+strings.Join(items, ","))
		}
	}
	add("nations", w.Nations)
	if len(w.NationFlags) > 0 {
		var flagged []string
		for n, on := range w.NationFlags {
			if on {
				flagged = append(flagged, n)
			}
		}
		slices.Sort(flagged)
		add("any-of", flagged)
	}
	if w.Fusion {
		parts = append(parts, "fusion")
	}
	if w.MinNations > 0 || w.MaxNations > 0 {
		parts = append(parts, fmt.Sprintf("nations[%d..%d]", w.MinNations, w.MaxNations))
	}
	add("types", toStrings(w.DishTypes))
	add("themes", toStrings(w.Themes))
	add("styles", w.Styles)
	add("forms", w.CompatibleForms)
	if w.MinIngredients > 0 || w.MaxIngredients > 0 {
		parts = append(parts, fmt.Sprintf("ingredients[%d..%d]", w.MinIngredients, w.MaxIngredients))
	}
	if w.MinRarity != domain.RarityUnknown {
		parts = append(parts, "rarity>="+w.MinRarity.String())
	}
	if w.NoMeat {
		parts = append(parts, "no-meat")
	}
	if w.Condition != nil {
		parts = append(parts, "when")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, " ")
}

func scoring(w domain.Weighting) string {
	var parts []string
	parts = append(parts, w.Categories...)
	parts = append(parts, w.FlavorProfiles...)
	parts = append(parts, w.Ingredients...)
	if w.Pairing {
		parts = append(parts, "pairing")
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ",")
}

func toStrings[S ~string](items []S) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = string(s)
	}
	return out
}
