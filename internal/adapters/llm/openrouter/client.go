package openrouter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/AustroMelee/avatar-culinary-generator/internal/domain"
	"github.com/AustroMelee/avatar-culinary-generator/internal/ports"
)

// Client implements ports.Embellisher via the OpenRouter API.
type Client struct {
	httpClient     *http.Client
	apiKey         string
	baseURL        string
	model          string
	fallbackModels []string
	logger         *slog.Logger
}

func NewClient(httpClient *http.Client, apiKey, baseURL, model string, fallbackModels []string, logger *slog.Logger) *Client {
	return &Client{
		httpClient:     httpClient,
		apiKey:         apiKey,
		baseURL:        strings.TrimRight(baseURL, "/"),
		model:          model,
		fallbackModels: fallbackModels,
		logger:         logger,
	}
}

// chatRequest / chatResponse mirror the OpenAI-compatible API shapes.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) Embellish(ctx context.Context, in ports.EmbellishInput) (ports.EmbellishOutput, error) {
	models := make([]string, 0, 1+len(c.fallbackModels))
	models = append(models, c.model)
	models = append(models, c.fallbackModels...)

	var lastErr error
	for _, model := range models {
		out, err := c.embellishWithModel(ctx, in, model)
		if err == nil {
			return out, nil
		}
		lastErr = err
		if len(models) > 1 {
			c.logger.WarnContext(ctx, "model failed, trying next", "model", model, "error", err)
		}
	}

	return ports.EmbellishOutput{}, lastErr
}

func (c *Client) embellishWithModel(ctx context.Context, in ports.EmbellishInput, model string) (ports.EmbellishOutput, error) {
	userPrompt := buildUserPrompt(in)

	content, err := c.callLLM(ctx, model, systemPrompt, userPrompt)
	if err != nil {
		return ports.EmbellishOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
	}

	var out ports.EmbellishOutput
	if err := decodeReply(content, &out); err != nil {
		c.logger.WarnContext(ctx, "LLM returned invalid JSON, retrying", "model", model, "error", err)
		content, err = c.callLLM(ctx, model, systemPrompt, retryPrompt(content))
		if err != nil {
			return ports.EmbellishOutput{}, fmt.Errorf("%w: %w", domain.ErrUpstreamLLM, err)
		}
		if err := decodeReply(content, &out); err != nil {
			return ports.EmbellishOutput{}, fmt.Errorf("%w: %w", domain.ErrInvalidLLMJSON, err)
		}
	}
	out.Model = model

	return out, nil
}

func decodeReply(content string, out *ports.EmbellishOutput) error {
	if err := json.Unmarshal([]byte(content), out); err != nil {
		return err
	}
	if strings.TrimSpace(out.Lore) == "" {
		return fmt.Errorf("empty lore field")
	}
	return nil
}

func (c *Client) callLLM(ctx context.Context, model, system, user string) (string, error) {
	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: system},
			{Role: "user", Content: user},
		},
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	url := c.baseURL + "/chat/completions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http call: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upstream status %d: %s", resp.StatusCode, string(respBody))
	}

	var chatResp chatResponse
	if err := json.Unmarshal(respBody, &chatResp); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("no choices in response")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

const systemPrompt = `You are a food historian in a world of four nations: the Air Nomads, the Water Tribe, the Earth Kingdom and the Fire Nation.

Rules:
- Expand the given lore into one short paragraph of at most 90 words.
- Keep every fact from the given name, description and lore.
- Do not invent new ingredients.
- No headings, lists or quotation marks.

Respond with ONLY a JSON object (no markdown, no code fences, no extra text) matching this exact schema:
{
  "lore": "<your paragraph>"
}`

func buildUserPrompt(in ports.EmbellishInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Dish: %s\n", in.Title)
	fmt.Fprintf(&b, "Nations: %s\n", strings.Join(in.Nations, ", "))
	fmt.Fprintf(&b, "Ingredients: %s\n", strings.Join(in.Ingredients, ", "))
	if in.Theme != "" {
		fmt.Fprintf(&b, "Theme: %s\n", in.Theme)
	}
	fmt.Fprintf(&b, "\nDescription: %s\n", in.Description)
	fmt.Fprintf(&b, "\nLore (%s): %s\n", in.LoreTitle, in.Lore)

	b.WriteString("\nExpand the lore as a single JSON object.")
	return b.String()
}

func retryPrompt(badJSON string) string {
	return fmt.Sprintf(`Your previous response was not valid JSON. Here is what you returned:
%s

Return ONLY the corrected JSON object matching this schema (no markdown, no code fences):
{
  "lore": "<your paragraph>"
}`, badJSON)
}
