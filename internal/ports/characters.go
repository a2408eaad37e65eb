package ports

import (
	"context"

	"github.com/google/uuid"
)

// CharacterProfile is the subset of a character other modules read.
type CharacterProfile struct {
	ID           uuid.UUID
	Name         string
	Description  string
	Personality  string
	Scenario     string
	FirstMessage string
}

// CharacterReader looks characters up by id. Implemented by the characters module.
type CharacterReader interface {
	GetProfile(ctx context.Context, id uuid.UUID) (CharacterProfile, error)
}

// PromptRenderer renders a named prompt template. Implemented by the prompts module.
type PromptRenderer interface {
	Render(name string, data any) (string, error)
}
