package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
)

type Handler struct {
	svc *app.DishService
}

func NewHandler(svc *app.DishService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/healthz", h.Healthz)
	e.GET("/v1/dish", h.GenerateDish)
	e.GET("/v1/nations", h.ListNations)
}

func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (h *Handler) GenerateDish(c echo.Context) error {
	req := app.GenerateRequest{
		Nations:  splitList(c.QueryParams()["nations"]),
		DishType: c.QueryParam("type"),
		Theme:    c.QueryParam("theme"),
	}
	if len(req.Nations) > domain.MaxFusionNations {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: domain.ErrTooManyNations.Error()})
	}

	if raw := c.QueryParam("seed"); raw != "" {
		seed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "seed must be a non-negative integer"})
		}
		req.Seed = &seed
	}
	if raw := c.QueryParam("embellish"); raw != "" {
		on, err := strconv.ParseBool(raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "embellish must be a boolean"})
		}
		req.Embellish = on
	}

	resp, err := h.svc.Generate(c.Request().Context(), req)
	if err != nil {
		return mapError(c, err)
	}

	requestID, _ := c.Get("request_id").(string)

	return c.JSON(http.StatusOK, toResponse(resp, requestID))
}

func (h *Handler) ListNations(c echo.Context) error {
	nations, err := h.svc.Nations(c.Request().Context())
	if err != nil {
		return mapError(c, err)
	}
	out := make([]NationResponse, len(nations))
	for i, n := range nations {
		out[i] = NationResponse{ID: n.ID, Name: n.Name, Emoji: n.Emoji}
	}
	return c.JSON(http.StatusOK, out)
}

// splitList accepts both ?nations=a,b and ?nations=a&nations=b.
func splitList(values []string) []string {
	var out []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func toResponse(r app.GenerateResponse, requestID string) DishResponse {
	ingredients := make([]IngredientResponse, len(r.Context.AllIngredients))
	for i, ing := range r.Context.AllIngredients {
		ingredients[i] = IngredientResponse{
			Name:     ing.Name,
			Category: ing.Category,
			Flavor:   ing.FlavorProfile,
			Rarity:   ing.Rarity.String(),
			Nation:   ing.Nation,
		}
	}
	return DishResponse{
		Name:        r.Dish.Name.Title,
		FlavorText:  r.Dish.Name.FlavorText,
		Description: r.Dish.Description,
		Lore: LoreResponse{
			Title:       r.Dish.Lore.Title,
			Text:        r.Dish.Lore.Text,
			Embellished: r.Embellished,
		},
		Dish: ContextResponse{
			Type:        string(r.Context.DishType),
			Theme:       string(r.Context.Theme),
			Nations:     r.Context.Fusion.SelectedNations,
			Style:       r.Context.CookingStyle.Name,
			Ingredients: ingredients,
		},
		Meta: MetaResp{
			Seed:      r.Seed,
			Rules:     RulesResp(r.Dish.Picks),
			Model:     r.Model,
			RequestID: requestID,
			LatencyMS: r.LatencyMS,
		},
	}
}

func mapError(c echo.Context, err error) error {
	requestID, _ := c.Get("request_id").(string)

	switch {
	case errors.Is(err, domain.ErrUnknownNation),
		errors.Is(err, domain.ErrTooManyNations),
		errors.Is(err, domain.ErrInvalidDishType),
		errors.Is(err, domain.ErrInvalidTheme):
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, domain.ErrNoIngredients):
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		slog.Error("internal error", "request_id", requestID, "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
