package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/AustroMelee/avatar-culinary-generator/internal/compose"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/ports"
)

// GenerateRequest is the application-level input (no HTTP types).
type GenerateRequest struct {
	Nations  []string
	DishType string
	Theme    string
	// Seed makes the request reproducible: the same seed and inputs always
	// produce the same dish, independent of earlier requests.
	Seed      *uint64
	Embellish bool
}

// GenerateResponse is the application-level output.
type GenerateResponse struct {
	Context     domain.DishContext
	Dish        compose.Dish
	Seed        *uint64
	Embellished bool
	Model       string
	LatencyMS   int64
}

// DishService assembles dish contexts and runs the three text engines.
// Unseeded requests share one set of engine histories so consecutive dishes
// avoid repeating phrasings; the histories live only as long as the service.
type DishService struct {
	pantry      ports.Pantry
	rules       ports.RuleStore
	embellisher ports.Embellisher
	rng         domain.RNG
	historySize int
	logger      *slog.Logger

	mu        sync.Mutex
	composer  *compose.Composer
	histories compose.Histories
}

// NewDishService wires the service. embellisher may be nil; rng must be
// safe for concurrent use when the service is shared between requests.
func NewDishService(p ports.Pantry, rs ports.RuleStore, emb ports.Embellisher, rng domain.RNG, historySize int, logger *slog.Logger) *DishService {
	if logger == nil {
		logger = slog.Default()
	}
	return &DishService{
		pantry:      p,
		rules:       rs,
		embellisher: emb,
		rng:         rng,
		historySize: historySize,
		logger:      logger,
		histories:   compose.NewHistories(historySize),
	}
}

func (s *DishService) Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error) {
	dishReq, err := parseRequest(req)
	if err != nil {
		return GenerateResponse{}, err
	}

	catalog, err := s.pantry.Catalog(ctx)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("load catalog: %w", err)
	}
	composer, err := s.loadComposer(ctx)
	if err != nil {
		return GenerateResponse{}, err
	}

	rng := s.rng
	if req.Seed != nil {
		rng = domain.NewSeededRNG(*req.Seed)
	}

	dc, err := domain.AssembleDish(catalog, dishReq, rng)
	if err != nil {
		return GenerateResponse{}, fmt.Errorf("assemble dish: %w", err)
	}

	var dish compose.Dish
	if req.Seed != nil {
		dish, _ = composer.Compose(dc, compose.NewHistories(s.historySize), rng)
	} else {
		s.mu.Lock()
		dish, s.histories = composer.Compose(dc, s.histories, rng)
		s.mu.Unlock()
	}

	resp := GenerateResponse{Context: dc, Dish: dish, Seed: req.Seed}
	if req.Embellish && s.embellisher != nil {
		s.embellish(ctx, &resp)
	}
	return resp, nil
}

// embellish replaces the lore text with the LLM's version. Failures keep the
// template lore; generation never fails because of the LLM.
func (s *DishService) embellish(ctx context.Context, resp *GenerateResponse) {
	ingredients := make([]string, len(resp.Context.AllIngredients))
	for i, ing := range resp.Context.AllIngredients {
		ingredients[i] = ing.Name
	}
	nations := make([]string, len(resp.Context.Fusion.SelectedNations))
	for i, n := range resp.Context.Fusion.SelectedNations {
		nations[i] = resp.Context.NationName(n)
	}

	in := ports.EmbellishInput{
		Title:       resp.Dish.Name.Title,
		Description: resp.Dish.Description,
		LoreTitle:   resp.Dish.Lore.Title,
		Lore:        resp.Dish.Lore.Text,
		Nations:     nations,
		Ingredients: ingredients,
		Theme:       string(resp.Context.Theme),
	}

	start := time.Now()
	out, err := s.embellisher.Embellish(ctx, in)
	resp.LatencyMS = time.Since(start).Milliseconds()
	if err != nil {
		s.logger.WarnContext(ctx, "embellish failed, keeping template lore", "lore_rule", resp.Dish.Picks.Lore, "error", err)
		return
	}
	resp.Dish.Lore.Text = out.Lore
	resp.Embellished = true
	resp.Model = out.Model
}

func (s *DishService) loadComposer(ctx context.Context) (*compose.Composer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.composer != nil {
		return s.composer, nil
	}
	pools, err := LoadPools(ctx, s.rules)
	if err != nil {
		return nil, err
	}
	s.composer = compose.NewComposer(pools, s.logger)
	return s.composer, nil
}

// LoadPools reads all three rule pools from rs.
func LoadPools(ctx context.Context, rs ports.RuleStore) (compose.Pools, error) {
	naming, err := rs.NamingRules(ctx)
	if err != nil {
		return compose.Pools{}, fmt.Errorf("load naming rules: %w", err)
	}
	description, err := rs.DescriptionRules(ctx)
	if err != nil {
		return compose.Pools{}, fmt.Errorf("load description rules: %w", err)
	}
	lore, err := rs.LoreEntries(ctx)
	if err != nil {
		return compose.Pools{}, fmt.Errorf("load lore entries: %w", err)
	}
	return compose.Pools{Naming: naming, Description: description, Lore: lore}, nil
}

// Nations lists the catalog's nations.
func (s *DishService) Nations(ctx context.Context) ([]domain.Nation, error) {
	catalog, err := s.pantry.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog.Nations, nil
}

// Histories returns a snapshot of the session histories.
func (s *DishService) Histories() compose.Histories {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.histories
}

func parseRequest(req GenerateRequest) (domain.DishRequest, error) {
	out := domain.DishRequest{Nations: req.Nations}
	if req.DishType != "" {
		dt, err := domain.ParseDishType(req.DishType)
		if err != nil {
			return domain.DishRequest{}, err
		}
		out.DishType = dt
	}
	if req.Theme != "" {
		th, err := domain.ParseTheme(req.Theme)
		if err != nil {
			return domain.DishRequest{}, err
		}
		out.Theme = th
	}
	return out, nil
}
