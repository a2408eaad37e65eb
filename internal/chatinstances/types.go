package chatinstances

import (
	"time"

	"github.com/google/uuid"
)

// Instance is one conversation thread with a character.
type Instance struct {
	ID          uuid.UUID `json:"id"`
	CharacterID uuid.UUID `json:"character_id"`
	Title       string    `json:"title"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateRequest is the body of POST /api/chat-instances.
type CreateRequest struct {
	CharacterID string `json:"character_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"max=200"`
}

// ListResponse wraps the instance list.
type ListResponse struct {
	Instances []Instance `json:"instances"`
}
