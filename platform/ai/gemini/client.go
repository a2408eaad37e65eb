// Package gemini adapts the Google GenAI SDK to the generator and model
// lister ports used by the route modules.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"storyforge_backend/internal/ports"

	"google.golang.org/genai"
)

// Client talks to the Gemini API.
type Client struct {
	client       *genai.Client
	defaultModel string
}

// New creates a client for the Gemini API backend.
func New(ctx context.Context, apiKey, defaultModel string) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return &Client{client: client, defaultModel: defaultModel}, nil
}

// Generate runs a single-turn generation and returns the concatenated text.
func (c *Client) Generate(ctx context.Context, req ports.GenerateRequest) (string, error) {
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}

	cfg := &genai.GenerateContentConfig{Temperature: req.Temperature}
	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	resp, err := c.client.Models.GenerateContent(ctx, model, genai.Text(req.Prompt), cfg)
	if err != nil {
		return "", fmt.Errorf("gemini: generate with %s: %w", model, err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", errors.New("gemini: empty response")
	}
	return text, nil
}

// ListModels pages through every model visible to the API key.
func (c *Client) ListModels(ctx context.Context) ([]ports.ModelInfo, error) {
	var models []ports.ModelInfo
	for m, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("gemini: list models: %w", err)
		}
		models = append(models, ports.ModelInfo{
			Name:        strings.TrimPrefix(m.Name, "models/"),
			DisplayName: m.DisplayName,
			Description: m.Description,
		})
	}
	return models, nil
}

var (
	_ ports.Generator   = (*Client)(nil)
	_ ports.ModelLister = (*Client)(nil)
)
