package chargen

// CharacterRequest is the body of POST /api/generate-character.
type CharacterRequest struct {
	Concept string `json:"concept" validate:"required,max=2000"`
	Model   string `json:"model" validate:"max=100"`
}

// CharacterDraft is a generated character sheet, not yet saved.
type CharacterDraft struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Personality  string `json:"personality"`
	Scenario     string `json:"scenario"`
	FirstMessage string `json:"first_message"`
}

// FieldRequest is the body of POST /api/generate-field.
type FieldRequest struct {
	Field     string            `json:"field" validate:"required,oneof=name description personality scenario first_message"`
	Character map[string]string `json:"character" validate:"max=10"`
	Hint      string            `json:"hint" validate:"max=2000"`
	Model     string            `json:"model" validate:"max=100"`
}

// FieldResponse carries one generated field.
type FieldResponse struct {
	Field string `json:"field"`
	Value string `json:"value"`
}
