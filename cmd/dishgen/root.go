package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/AustroMelee/avatar-culinary-generator/internal/config"
)

// version is set at build time via -ldflags.
var version = "dev"

var rootFlags struct {
	rulesDir  string
	pantryDir string
	logLevel  string
}

var rootCmd = &cobra.Command{
	Use:   "dishgen",
	Short: "Generate dishes from the Four Nations pantry",
	Long:  "dishgen assembles dishes from the ingredient catalog and names,\ndescribes and tells the lore of each one using the rule pools.",
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},
	SilenceUsage: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootFlags.rulesDir, "rules-dir", os.Getenv("RULES_DIR"), "Directory with naming.yaml, description.yaml and lore.yaml (default: embedded pools)")
	pf.StringVar(&rootFlags.pantryDir, "pantry-dir", os.Getenv("PANTRY_DIR"), "Directory with catalog.yaml (default: embedded catalog)")
	pf.StringVar(&rootFlags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(rulesCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.Version = version
}

// newLogger writes text logs to stderr so stdout stays clean for --json.
func newLogger() (*slog.Logger, error) {
	level, err := config.ParseLogLevel(rootFlags.logLevel)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
