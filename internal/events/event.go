// Package events defines the domain events exchanged between route modules.
// Infrastructure (Bus, Handler) lives in platform/events.
package events

import (
	"storyforge_backend/platform/events"

	"github.com/google/uuid"
)

type (
	Event       = events.Event
	Bus         = events.Bus
	Handler     = events.Handler
	HandlerFunc = events.HandlerFunc
	BaseEvent   = events.BaseEvent
)

var NewBaseEvent = events.NewBaseEvent

// CharacterDeleted is published after a character has been removed.
type CharacterDeleted struct {
	BaseEvent
	CharacterID uuid.UUID `json:"character_id"`
	Name        string    `json:"name"`
}

func (e CharacterDeleted) EventName() string { return "characters.deleted" }
