package chargen

import (
	"context"
	"encoding/json"
	"strings"

	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/apperr"
)

const (
	characterPrompt = "generate_character"
	fieldPrompt     = "generate_field"
)

// Service drafts characters and single fields through the AI provider.
type Service struct {
	prompts   ports.PromptRenderer
	generator ports.Generator
}

// NewService creates the generation service. generator may be nil.
func NewService(prompts ports.PromptRenderer, generator ports.Generator) *Service {
	return &Service{prompts: prompts, generator: generator}
}

// GenerateCharacter turns a concept into a character draft.
func (s *Service) GenerateCharacter(ctx context.Context, req CharacterRequest) (CharacterDraft, error) {
	if s.generator == nil {
		return CharacterDraft{}, apperr.Unavailable("ai provider is not configured")
	}

	prompt, err := s.prompts.Render(characterPrompt, map[string]string{"Concept": req.Concept})
	if err != nil {
		return CharacterDraft{}, err
	}

	raw, err := s.generator.Generate(ctx, ports.GenerateRequest{Model: req.Model, Prompt: prompt})
	if err != nil {
		return CharacterDraft{}, apperr.Wrap(apperr.KindUnavailable, "ai provider request failed", err)
	}

	return parseDraft(raw)
}

// GenerateField writes one field given the rest of the sheet.
func (s *Service) GenerateField(ctx context.Context, req FieldRequest) (FieldResponse, error) {
	if s.generator == nil {
		return FieldResponse{}, apperr.Unavailable("ai provider is not configured")
	}

	prompt, err := s.prompts.Render(fieldPrompt, map[string]any{
		"Field":     req.Field,
		"Character": req.Character,
		"Hint":      req.Hint,
	})
	if err != nil {
		return FieldResponse{}, err
	}

	raw, err := s.generator.Generate(ctx, ports.GenerateRequest{Model: req.Model, Prompt: prompt})
	if err != nil {
		return FieldResponse{}, apperr.Wrap(apperr.KindUnavailable, "ai provider request failed", err)
	}

	value := strings.Trim(strings.TrimSpace(raw), `"`)
	if value == "" {
		return FieldResponse{}, apperr.Upstream("ai provider returned an empty field")
	}
	return FieldResponse{Field: req.Field, Value: value}, nil
}

// parseDraft accepts bare JSON or JSON wrapped in prose or a code fence.
func parseDraft(raw string) (CharacterDraft, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return CharacterDraft{}, apperr.Upstream("ai provider returned a malformed character")
	}

	var draft CharacterDraft
	if err := json.Unmarshal([]byte(raw[start:end+1]), &draft); err != nil {
		return CharacterDraft{}, apperr.Wrap(apperr.KindUpstream, "ai provider returned a malformed character", err)
	}
	if strings.TrimSpace(draft.Name) == "" {
		return CharacterDraft{}, apperr.Upstream("ai provider returned a character without a name")
	}
	return draft, nil
}
