package chat

import (
	"context"
	"strings"

	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/apperr"

	"github.com/google/uuid"
)

const chatPrompt = "chat"

// Service turns a chat request into one provider call. It keeps no state;
// the caller sends the history it wants the character to see.
type Service struct {
	characters   ports.CharacterReader
	prompts      ports.PromptRenderer
	generator    ports.Generator
	defaultModel string
}

// NewService creates the chat service. generator may be nil when no AI
// provider is configured; Reply then fails with an unavailable error.
// defaultModel is used for requests that name no model.
func NewService(characters ports.CharacterReader, prompts ports.PromptRenderer, generator ports.Generator, defaultModel string) *Service {
	return &Service{characters: characters, prompts: prompts, generator: generator, defaultModel: defaultModel}
}

// Reply asks the provider for the character's next message.
func (s *Service) Reply(ctx context.Context, req Request) (Response, error) {
	if s.generator == nil {
		return Response{}, apperr.Unavailable("ai provider is not configured")
	}

	id, err := uuid.Parse(req.CharacterID)
	if err != nil {
		return Response{}, apperr.BadRequest("invalid character id")
	}

	profile, err := s.characters.GetProfile(ctx, id)
	if err != nil {
		return Response{}, err
	}

	system, err := s.prompts.Render(chatPrompt, profile)
	if err != nil {
		return Response{}, err
	}

	model := req.Model
	if model == "" {
		model = s.defaultModel
	}

	reply, err := s.generator.Generate(ctx, ports.GenerateRequest{
		Model:       model,
		System:      system,
		Prompt:      transcript(profile.Name, req.History, req.Message),
		Temperature: req.Temperature,
	})
	if err != nil {
		return Response{}, apperr.Wrap(apperr.KindUnavailable, "ai provider request failed", err)
	}

	return Response{
		CharacterID: id.String(),
		Reply:       strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(reply), profile.Name+":")),
		Model:       model,
	}, nil
}

// transcript renders the history as speaker-labelled lines and leaves the
// character's label open for the provider to complete.
func transcript(name string, history []Turn, message string) string {
	var b strings.Builder
	for _, turn := range history {
		b.WriteString(speaker(name, turn.Role))
		b.WriteString(": ")
		b.WriteString(strings.TrimSpace(turn.Content))
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(strings.TrimSpace(message))
	b.WriteString("\n")
	b.WriteString(name)
	b.WriteString(":")
	return b.String()
}

func speaker(name, role string) string {
	if role == "character" {
		return name
	}
	return "User"
}
