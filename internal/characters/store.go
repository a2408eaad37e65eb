package characters

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

const errCharacterNotFound = "character not found"

// Store keeps characters in process memory, ordered by creation.
type Store struct {
	bus events.Bus

	mu    sync.RWMutex
	byID  map[uuid.UUID]Character
	order []uuid.UUID
	now   func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byID: make(map[uuid.UUID]Character),
		now:  time.Now,
	}
}

// WithEvents makes the store publish lifecycle events on bus.
func (s *Store) WithEvents(bus events.Bus) *Store {
	s.bus = bus
	return s
}

// List returns every character, oldest first.
func (s *Store) List(_ context.Context) []Character {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Character, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, clone(s.byID[id]))
	}
	return out
}

// Get returns one character.
func (s *Store) Get(_ context.Context, id uuid.UUID) (Character, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.byID[id]
	if !ok {
		return Character{}, apperr.NotFound(errCharacterNotFound)
	}
	return clone(c), nil
}

// Create stores a new character. Names are unique, case-insensitively.
func (s *Store) Create(_ context.Context, req CreateRequest) (Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return Character{}, errBlankName()
	}
	if s.nameTaken(name, uuid.Nil) {
		return Character{}, apperr.Conflict("a character with this name already exists")
	}

	now := s.now().UTC()
	c := Character{
		ID:           uuid.New(),
		Name:         name,
		Description:  req.Description,
		Personality:  req.Personality,
		Scenario:     req.Scenario,
		FirstMessage: req.FirstMessage,
		Tags:         normalizeTags(req.Tags),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.byID[c.ID] = c
	s.order = append(s.order, c.ID)
	return clone(c), nil
}

// Update applies the non-nil fields of req.
func (s *Store) Update(_ context.Context, id uuid.UUID, req UpdateRequest) (Character, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.byID[id]
	if !ok {
		return Character{}, apperr.NotFound(errCharacterNotFound)
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return Character{}, errBlankName()
		}
		if s.nameTaken(name, id) {
			return Character{}, apperr.Conflict("a character with this name already exists")
		}
		c.Name = name
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.Personality != nil {
		c.Personality = *req.Personality
	}
	if req.Scenario != nil {
		c.Scenario = *req.Scenario
	}
	if req.FirstMessage != nil {
		c.FirstMessage = *req.FirstMessage
	}
	if req.Tags != nil {
		c.Tags = normalizeTags(*req.Tags)
	}
	c.UpdatedAt = s.now().UTC()

	s.byID[id] = c
	return clone(c), nil
}

// Delete removes a character. Subscribers to CharacterDeleted run before it
// returns.
func (s *Store) Delete(ctx context.Context, id uuid.UUID) error {
	s.mu.Lock()
	c, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return apperr.NotFound(errCharacterNotFound)
	}
	delete(s.byID, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	s.mu.Unlock()

	if s.bus == nil {
		return nil
	}
	err := s.bus.PublishSync(ctx, events.CharacterDeleted{
		BaseEvent:   events.NewBaseEvent(),
		CharacterID: c.ID,
		Name:        c.Name,
	})
	if err != nil {
		return apperr.Wrap(apperr.KindInternal, "character deleted but cleanup failed", err)
	}
	return nil
}

func errBlankName() error {
	return apperr.Validation("invalid request").WithDetails(map[string]string{"name": "must not be blank"})
}

// GetProfile implements ports.CharacterReader.
func (s *Store) GetProfile(ctx context.Context, id uuid.UUID) (ports.CharacterProfile, error) {
	c, err := s.Get(ctx, id)
	if err != nil {
		return ports.CharacterProfile{}, err
	}
	return ports.CharacterProfile{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Personality:  c.Personality,
		Scenario:     c.Scenario,
		FirstMessage: c.FirstMessage,
	}, nil
}

// nameTaken must be called with the lock held.
func (s *Store) nameTaken(name string, except uuid.UUID) bool {
	for id, c := range s.byID {
		if id != except && strings.EqualFold(c.Name, name) {
			return true
		}
	}
	return false
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.ToLower(strings.TrimSpace(tag))
		if tag != "" && !slices.Contains(out, tag) {
			out = append(out, tag)
		}
	}
	return out
}

func clone(c Character) Character {
	c.Tags = slices.Clone(c.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	return c
}

var _ ports.CharacterReader = (*Store)(nil)
