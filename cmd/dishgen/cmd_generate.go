package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/wiring"
)

var generateFlags struct {
	nations []string
	dish    string
	theme   string
	seed    uint64
	count   int
	history int
	json    bool
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one or more dishes",
	Long: "Generate dishes in sequence. Consecutive dishes share engine histories,\n" +
		"so a run of --count dishes avoids repeating the same phrasing.\n" +
		"With --seed the whole run is reproducible.",
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringSliceVarP(&generateFlags.nations, "nation", "n", nil, "Nation id (repeatable, up to 4; default: one at random)")
	f.StringVarP(&generateFlags.dish, "type", "t", "", "Dish type, e.g. main-course, dessert (default: random)")
	f.StringVar(&generateFlags.theme, "theme", "", "Theme, e.g. humble, ceremonial (default: random)")
	f.Uint64Var(&generateFlags.seed, "seed", 0, "Seed for a reproducible run")
	f.IntVarP(&generateFlags.count, "count", "c", 1, "Number of dishes to generate")
	f.IntVar(&generateFlags.history, "history", domain.DefaultHistorySize, "Engine history size")
	f.BoolVar(&generateFlags.json, "json", false, "Print dishes as JSON lines")
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if generateFlags.count < 1 {
		return fmt.Errorf("--count must be at least 1")
	}
	if generateFlags.history < 1 || generateFlags.history > 32 {
		return fmt.Errorf("--history must be between 1 and 32")
	}
	logger, err := newLogger()
	if err != nil {
		return err
	}

	rules := wiring.RuleStore(rootFlags.rulesDir, logger)
	if err := rules.Load(); err != nil {
		return fmt.Errorf("load rules: %w", err)
	}

	// A seeded run drives one RNG through every dish instead of reseeding
	// each request, so histories still evolve across the run.
	rng := domain.NewRandomRNG()
	if cmd.Flags().Changed("seed") {
		rng = domain.NewSeededRNG(generateFlags.seed)
	}
	svc := app.NewDishService(wiring.Pantry(rootFlags.pantryDir), rules, nil, rng, generateFlags.history, logger)

	req := app.GenerateRequest{
		Nations:  generateFlags.nations,
		DishType: generateFlags.dish,
		Theme:    generateFlags.theme,
	}
	out := cmd.OutOrStdout()
	enc := json.NewEncoder(out)
	for i := range generateFlags.count {
		resp, err := svc.Generate(cmd.Context(), req)
		if err != nil {
			return err
		}
		if generateFlags.json {
			if err := enc.Encode(resp); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printDish(out, resp)
	}
	return nil
}

func printDish(w io.Writer, r app.GenerateResponse) {
	dc := r.Context
	fmt.Fprintln(w, text.Bold.Sprint(r.Dish.Name.Title))
	if r.Dish.Name.FlavorText != "" {
		fmt.Fprintln(w, text.Italic.Sprint(r.Dish.Name.FlavorText))
	}

	names := make([]string, len(dc.AllIngredients))
	for i, ing := range dc.AllIngredients {
		names[i] = ing.Name
	}
	nations := make([]string, len(dc.Fusion.SelectedNations))
	for i, n := range dc.Fusion.SelectedNations {
		nations[i] = dc.NationName(n)
	}
	fmt.Fprintf(w, "%s %s · %s · %s\n", strings.Join(dc.Fusion.Emoji, ""), dc.DishType, dc.Theme, strings.Join(nations, " + "))
	fmt.Fprintf(w, "Style:       %s\n", dc.CookingStyle.Name)
	fmt.Fprintf(w, "Ingredients: %s\n", domain.JoinList(names))
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.WrapSoft(r.Dish.Description, 78))
	fmt.Fprintln(w)
	fmt.Fprintln(w, text.Underline.Sprint(r.Dish.Lore.Title))
	fmt.Fprintln(w, text.WrapSoft(r.Dish.Lore.Text, 78))
	fmt.Fprintln(w, text.Faint.Sprintf("rules: name=%s description=%s lore=%s",
		orFallback(r.Dish.Picks.Name), orFallback(r.Dish.Picks.Description), orFallback(r.Dish.Picks.Lore)))
}

func orFallback(id string) string {
	if id == "" {
		return "(fallback)"
	}
	return id
}
