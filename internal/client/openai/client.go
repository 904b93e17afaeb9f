package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"household-hub-go/internal/config"
	"household-hub-go/internal/domain/meals"
)

// Client talks to an OpenAI-compatible chat-completions endpoint. It backs
// both the laundry advice text generator and the structured meal-plan
// generator.
type Client struct {
	baseURL    string
	apiKey     string
	textModel  string
	planModel  string
	httpClient *http.Client
}

func New(cfg config.OpenAIConfig) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:    cfg.APIKey,
		textModel: cfg.TextModel,
		planModel: cfg.PlanModel,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (c *Client) complete(ctx context.Context, model string, messages []chatMessage, jsonMode bool) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openai: api key not configured")
	}

	request := chatRequest{Model: model, Messages: messages}
	if jsonMode {
		request.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	body, err := json.Marshal(request)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("openai: unexpected status %d", resp.StatusCode)
	}

	var payload chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("openai: decode response: %w", err)
	}
	if len(payload.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return payload.Choices[0].Message.Content, nil
}

func (c *Client) GenerateText(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, c.textModel, []chatMessage{
		{Role: "user", Content: prompt},
	}, false)
}

type planPayload struct {
	MealPlan []struct {
		Day         int      `json:"day"`
		MainDish    string   `json:"main_dish"`
		SideDish    string   `json:"side_dish"`
		Soup        string   `json:"soup"`
		Ingredients []string `json:"ingredients"`
	} `json:"meal_plan"`
}

func (c *Client) GenerateMealPlan(ctx context.Context, days int, preferences, restrictions []string) ([]meals.PlanEntry, error) {
	system := "You are a nutritionist who plans balanced home menus. Respond with a JSON object only."
	prompt := fmt.Sprintf(
		"Create a meal plan for %d days.\n\nPreferences: %s\n\nDietary restrictions: %s\n\n"+
			"Each day needs a main dish, a side dish and a soup, plus the ingredient list for the day. "+
			`Return {"meal_plan": [{"day": 1, "main_dish": "...", "side_dish": "...", "soup": "...", "ingredients": ["..."]}]} `+
			"with exactly %d entries ordered by day.",
		days, joinOrNone(preferences), joinOrNone(restrictions), days,
	)

	content, err := c.complete(ctx, c.planModel, []chatMessage{
		{Role: "system", Content: system},
		{Role: "user", Content: prompt},
	}, true)
	if err != nil {
		return nil, err
	}

	var payload planPayload
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("openai: decode meal plan: %w", err)
	}

	entries := make([]meals.PlanEntry, 0, len(payload.MealPlan))
	for _, item := range payload.MealPlan {
		entries = append(entries, meals.PlanEntry{
			Day:         item.Day,
			MainDish:    item.MainDish,
			SideDish:    item.SideDish,
			Soup:        item.Soup,
			Ingredients: item.Ingredients,
		})
	}
	return entries, nil
}

func joinOrNone(values []string) string {
	if len(values) == 0 {
		return "none"
	}
	return strings.Join(values, ", ")
}
