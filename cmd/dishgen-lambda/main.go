//go:build lambda

package main

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tidwall/gjson"

	"github.com/AustroMelee/avatar-culinary-generator/internal/app"
	"github.com/AustroMelee/avatar-culinary-generator/internal/config"
	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/wiring"
)

var jsonHeader = map[string]string{
	"Content-Type": "application/json",
}

type dishResult struct {
	Name        string   `json:"name"`
	FlavorText  string   `json:"flavorText,omitempty"`
	Description string   `json:"description"`
	LoreTitle   string   `json:"loreTitle"`
	Lore        string   `json:"lore"`
	Type        string   `json:"type"`
	Theme       string   `json:"theme"`
	Nations     []string `json:"nations"`
	Ingredients []string `json:"ingredients"`
	Seed        *uint64  `json:"seed,omitempty"`
	Embellished bool     `json:"embellished"`
}

type handler struct {
	svc    *app.DishService
	logger *slog.Logger
}

func (h handler) handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	body := event.Body
	if event.IsBase64Encoded {
		decoded, err := base64.StdEncoding.DecodeString(body)
		if err != nil {
			return errResp(http.StatusBadRequest, "invalid base64 body")
		}
		body = string(decoded)
	}
	req, err := parseRequest(body)
	if err != nil {
		return errResp(http.StatusBadRequest, err.Error())
	}

	resp, err := h.svc.Generate(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUnknownNation),
			errors.Is(err, domain.ErrTooManyNations),
			errors.Is(err, domain.ErrInvalidDishType),
			errors.Is(err, domain.ErrInvalidTheme):
			return errResp(http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrNoIngredients):
			return errResp(http.StatusUnprocessableEntity, err.Error())
		}
		h.logger.ErrorContext(ctx, "generate failed", "error", err)
		return errResp(http.StatusInternalServerError, "internal error")
	}

	dc := resp.Context
	result := dishResult{
		Name:        resp.Dish.Name.Title,
		FlavorText:  resp.Dish.Name.FlavorText,
		Description: resp.Dish.Description,
		LoreTitle:   resp.Dish.Lore.Title,
		Lore:        resp.Dish.Lore.Text,
		Type:        string(dc.DishType),
		Theme:       string(dc.Theme),
		Nations:     dc.Fusion.SelectedNations,
		Seed:        resp.Seed,
		Embellished: resp.Embellished,
	}
	for _, ing := range dc.AllIngredients {
		result.Ingredients = append(result.Ingredients, ing.Name)
	}

	out, _ := json.Marshal(result)
	return events.LambdaFunctionURLResponse{
		StatusCode: http.StatusOK,
		Headers:    jsonHeader,
		Body:       string(out),
	}, nil
}

// parseRequest reads a generate request from a JSON body; an empty body
// asks for a fully random dish.
func parseRequest(body string) (app.GenerateRequest, error) {
	if body != "" && !gjson.Valid(body) {
		return app.GenerateRequest{}, errors.New("invalid JSON body")
	}

	req := app.GenerateRequest{
		DishType:  gjson.Get(body, "type").String(),
		Theme:     gjson.Get(body, "theme").String(),
		Embellish: gjson.Get(body, "embellish").Bool(),
	}
	for _, n := range gjson.Get(body, "nations").Array() {
		req.Nations = append(req.Nations, n.String())
	}
	if seed := gjson.Get(body, "seed"); seed.Exists() {
		if seed.Type != gjson.Number || seed.Num < 0 || seed.Num != math.Trunc(seed.Num) {
			return app.GenerateRequest{}, errors.New("seed must be a non-negative integer")
		}
		v := seed.Uint()
		req.Seed = &v
	}
	return req, nil
}

func errResp(code int, msg string) (events.LambdaFunctionURLResponse, error) {
	body, _ := json.Marshal(map[string]string{"error": msg})
	return events.LambdaFunctionURLResponse{
		StatusCode: code,
		Headers:    jsonHeader,
		Body:       string(body),
	}, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	svc, err := wiring.NewService(cfg, logger)
	if err != nil {
		logger.Error("failed to load rule pools", "error", err)
		os.Exit(1)
	}
	lambda.Start(handler{svc: svc, logger: logger}.handle)
}
