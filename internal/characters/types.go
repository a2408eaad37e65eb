package characters

import (
	"time"

	"github.com/google/uuid"
)

// Character is a persona the user can chat with.
type Character struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Personality  string    `json:"personality"`
	Scenario     string    `json:"scenario"`
	FirstMessage string    `json:"first_message"`
	Tags         []string  `json:"tags"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateRequest is the body of POST /api/characters.
type CreateRequest struct {
	Name         string   `json:"name" validate:"required,max=100"`
	Description  string   `json:"description" validate:"max=4000"`
	Personality  string   `json:"personality" validate:"max=4000"`
	Scenario     string   `json:"scenario" validate:"max=4000"`
	FirstMessage string   `json:"first_message" validate:"max=4000"`
	Tags         []string `json:"tags" validate:"max=20,dive,max=40"`
}

// UpdateRequest is the body of PUT /api/characters/:id. Nil fields are left unchanged.
type UpdateRequest struct {
	Name         *string   `json:"name" validate:"omitnil,min=1,max=100"`
	Description  *string   `json:"description" validate:"omitnil,max=4000"`
	Personality  *string   `json:"personality" validate:"omitnil,max=4000"`
	Scenario     *string   `json:"scenario" validate:"omitnil,max=4000"`
	FirstMessage *string   `json:"first_message" validate:"omitnil,max=4000"`
	Tags         *[]string `json:"tags" validate:"omitnil,max=20,dive,max=40"`
}

// ListResponse wraps the character list.
type ListResponse struct {
	Characters []Character `json:"characters"`
}
