// Package wiring builds a DishService from configuration. Every entrypoint
// (daemon, CLI, lambda) goes through it so they share one composition.
package wiring

import (
	"log/slog"
	"net/http"

	"github.com/AustroMelee/avatar-culinary-generator/internal/adapters/llm/openrouter"
	"github.com/AustroMelee/avatar-culinary-generator/internal/adapters/pantry"
	"github.com/AustroMelee/avatar-culinary-generator/internal/adapters/rulebook"
	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/config"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/ports"
)

// RuleStore returns the directory store when dir is set, else the embedded pools.
func RuleStore(dir string, logger *slog.Logger) *rulebook.Store {
	if dir != "" {
		return rulebook.NewDirStore(dir, logger)
	}
	return rulebook.NewEmbeddedStore(logger)
}

// Pantry returns the directory catalog when dir is set, else the embedded one.
func Pantry(dir string) *pantry.Store {
	if dir != "" {
		return pantry.NewDirStore(dir)
	}
	return pantry.NewEmbeddedStore()
}

// Embellisher returns nil unless an LLM provider is configured.
func Embellisher(cfg config.Config, logger *slog.Logger) ports.Embellisher {
	if cfg.LLMProvider != config.ProviderOpenRouter {
		return nil
	}
	return openrouter.NewClient(
		&http.Client{Timeout: cfg.LLMTimeout},
		cfg.OpenRouterAPIKey,
		cfg.OpenRouterBaseURL,
		cfg.LLMModel,
		cfg.LLMFallbackModels,
		logger,
	)
}

// NewService wires stores, the optional embellisher and a concurrency-safe RNG.
// Rule pools are loaded eagerly so a broken rules directory fails at startup.
func NewService(cfg config.Config, logger *slog.Logger) (*app.DishService, error) {
	rules := RuleStore(cfg.RulesDir, logger)
	if err := rules.Load(); err != nil {
		return nil, err
	}
	return app.NewDishService(
		Pantry(cfg.PantryDir),
		rules,
		Embellisher(cfg, logger),
		domain.NewRandomRNG(),
		cfg.HistorySize,
		logger,
	), nil
}
