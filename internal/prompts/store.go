package prompts

import (
	"bytes"
	_ "embed"
	"fmt"
	"sort"
	"sync"
	"text/template"

	"storyforge_backend/internal/ports"
	"storyforge_backend/platform/apperr"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Prompt is a named template.
type Prompt struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	Template    string `json:"template" yaml:"template"`
	Customized  bool   `json:"customized" yaml:"-"`
}

type promptFile struct {
	Prompts []Prompt `yaml:"prompts"`
}

type entry struct {
	prompt Prompt
	tmpl   *template.Template
}

// Store holds the built-in prompts and any in-process overrides.
type Store struct {
	mu        sync.RWMutex
	defaults  map[string]entry
	overrides map[string]entry
}

// NewStore parses the embedded defaults.
func NewStore() (*Store, error) {
	return newStoreFromYAML(defaultsYAML)
}

func newStoreFromYAML(data []byte) (*Store, error) {
	var file promptFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse prompt defaults: %w", err)
	}

	s := &Store{
		defaults:  make(map[string]entry, len(file.Prompts)),
		overrides: make(map[string]entry),
	}
	for _, p := range file.Prompts {
		if p.Name == "" {
			return nil, fmt.Errorf("parse prompt defaults: prompt without a name")
		}
		if _, dup := s.defaults[p.Name]; dup {
			return nil, fmt.Errorf("parse prompt defaults: duplicate prompt %q", p.Name)
		}
		tmpl, err := parse(p.Name, p.Template)
		if err != nil {
			return nil, fmt.Errorf("parse prompt defaults: %w", err)
		}
		s.defaults[p.Name] = entry{prompt: p, tmpl: tmpl}
	}
	return s, nil
}

// List returns every prompt sorted by name, with overrides applied.
func (s *Store) List() []Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Prompt, 0, len(s.defaults))
	for name := range s.defaults {
		out = append(out, s.lookup(name).prompt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Get returns one prompt.
func (s *Store) Get(name string) (Prompt, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.defaults[name]; !ok {
		return Prompt{}, apperr.NotFound("prompt not found")
	}
	return s.lookup(name).prompt, nil
}

// Set overrides the template of a built-in prompt. The template must parse.
func (s *Store) Set(name, text string) (Prompt, error) {
	tmpl, err := parse(name, text)
	if err != nil {
		return Prompt{}, apperr.Wrap(apperr.KindValidation, "template does not parse", err).
			WithDetails(map[string]string{"template": err.Error()})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.defaults[name]
	if !ok {
		return Prompt{}, apperr.NotFound("prompt not found")
	}
	p := def.prompt
	p.Template = text
	p.Customized = true
	s.overrides[name] = entry{prompt: p, tmpl: tmpl}
	return p, nil
}

// Reset drops an override and returns the built-in prompt.
func (s *Store) Reset(name string) (Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	def, ok := s.defaults[name]
	if !ok {
		return Prompt{}, apperr.NotFound("prompt not found")
	}
	delete(s.overrides, name)
	return def.prompt, nil
}

// Render implements ports.PromptRenderer.
func (s *Store) Render(name string, data any) (string, error) {
	s.mu.RLock()
	e, ok := s.defaults[name]
	if ok {
		e = s.lookup(name)
	}
	s.mu.RUnlock()

	if !ok {
		return "", apperr.NotFound("prompt not found")
	}

	var buf bytes.Buffer
	if err := e.tmpl.Execute(&buf, data); err != nil {
		return "", apperr.Wrap(apperr.KindInternal, "render prompt "+name, err)
	}
	return buf.String(), nil
}

// lookup must be called with the lock held and a known name.
func (s *Store) lookup(name string) entry {
	if o, ok := s.overrides[name]; ok {
		return o
	}
	return s.defaults[name]
}

func parse(name, text string) (*template.Template, error) {
	return template.New(name).Option("missingkey=zero").Parse(text)
}

var _ ports.PromptRenderer = (*Store)(nil)
