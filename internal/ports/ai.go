// Package ports declares the interfaces route modules use to reach
// collaborators owned by other modules or by the platform layer.
package ports

import "context"

// GenerateRequest is a single-turn text generation call.
type GenerateRequest struct {
	Model       string
	System      string
	Prompt      string
	Temperature *float32
}

// Generator produces text from a prompt. Implemented by platform/ai/gemini.
type Generator interface {
	Generate(ctx context.Context, req GenerateRequest) (string, error)
}

// ModelInfo describes one model offered by the provider.
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"display_name,omitempty"`
	Description string `json:"description,omitempty"`
}

// ModelLister enumerates the provider's models.
type ModelLister interface {
	ListModels(ctx context.Context) ([]ModelInfo, error)
}
