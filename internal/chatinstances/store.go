package chatinstances

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"storyforge_backend/internal/events"
	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/apperr"

	"github.com/google/uuid"
)

const errInstanceNotFound = "chat instance not found"

// Store keeps chat instances in process memory.
type Store struct {
	characters ports.CharacterReader

	mu    sync.RWMutex
	byID  map[uuid.UUID]Instance
	order []uuid.UUID
	now   func() time.Time
}

// NewStore creates an empty store that checks character ids with characters.
func NewStore(characters ports.CharacterReader) *Store {
	return &Store{
		characters: characters,
		byID:       make(map[uuid.UUID]Instance),
		now:        time.Now,
	}
}

// List returns instances oldest first, optionally only for one character.
func (s *Store) List(_ context.Context, characterID *uuid.UUID) []Instance {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Instance, 0, len(s.order))
	for _, id := range s.order {
		inst := s.byID[id]
		if characterID != nil && inst.CharacterID != *characterID {
			continue
		}
		out = append(out, inst)
	}
	return out
}

// Get returns one instance.
func (s *Store) Get(_ context.Context, id uuid.UUID) (Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inst, ok := s.byID[id]
	if !ok {
		return Instance{}, apperr.NotFound(errInstanceNotFound)
	}
	return inst, nil
}

// Create opens a new instance for an existing character. Without a title the
// character's name is used.
func (s *Store) Create(ctx context.Context, characterID uuid.UUID, title string) (Instance, error) {
	profile, err := s.characters.GetProfile(ctx, characterID)
	if err != nil {
		return Instance{}, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		title = "Chat with " + profile.Name
	}

	inst := Instance{
		ID:          uuid.New(),
		CharacterID: characterID,
		Title:       title,
		CreatedAt:   s.now().UTC(),
	}

	s.mu.Lock()
	s.byID[inst.ID] = inst
	s.order = append(s.order, inst.ID)
	s.mu.Unlock()

	// The character may have been deleted and purged since the lookup.
	if _, err := s.characters.GetProfile(ctx, characterID); err != nil {
		s.remove(inst.ID)
		return Instance{}, err
	}

	return inst, nil
}

func (s *Store) remove(id uuid.UUID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return false
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return true
}

// Subscribe removes a character's instances whenever that character is deleted.
func (s *Store) Subscribe(bus events.Bus) {
	bus.Subscribe(events.CharacterDeleted{}.EventName(), events.HandlerFunc(func(_ context.Context, e events.Event) error {
		if deleted, ok := e.(events.CharacterDeleted); ok {
			s.purgeCharacter(deleted.CharacterID)
		}
		return nil
	}))
}

func (s *Store) purgeCharacter(characterID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.order = slices.DeleteFunc(s.order, func(id uuid.UUID) bool {
		if s.byID[id].CharacterID != characterID {
			return false
		}
		delete(s.byID, id)
		return true
	})
}

// Delete removes an instance.
func (s *Store) Delete(_ context.Context, id uuid.UUID) error {
	if !s.remove(id) {
		return apperr.NotFound(errInstanceNotFound)
	}
	return nil
}
