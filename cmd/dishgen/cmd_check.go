package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/wiring"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the rule pools and the ingredient catalog",
	Long:  "Load the rule pools and the catalog and report every validation error:\nduplicate ids, unknown placeholders, bad dish types or themes, and\nwhen-expressions that do not compile.",
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	rules := wiring.RuleStore(rootFlags.rulesDir, logger)
	if err := rules.Load(); err != nil {
		return fmt.Errorf("rules: %w", err)
	}
	pools, err := app.LoadPools(cmd.Context(), rules)
	if err != nil {
		return err
	}

	catalog, err := wiring.Pantry(rootFlags.pantryDir).Catalog(cmd.Context())
	if err != nil {
		return fmt.Errorf("catalog: %w", err)
	}

	fmt.Fprintf(out, "rules ok: %d naming, %d description, %d lore\n", len(pools.Naming), len(pools.Description), len(pools.Lore))
	fmt.Fprintf(out, "catalog ok: %d nations, %d ingredients, %d styles\n", len(catalog.Nations), len(catalog.Ingredients), len(catalog.Styles))
	return nil
}
