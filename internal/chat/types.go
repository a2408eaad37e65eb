package chat

// Turn is one earlier message in the conversation.
type Turn struct {
	Role    string `json:"role" validate:"required,oneof=user character"`
	Content string `json:"content" validate:"required,max=8000"`
}

// Request is the body of POST /api/chat.
type Request struct {
	CharacterID string   `json:"character_id" validate:"required,uuid"`
	Message     string   `json:"message" validate:"required,max=8000"`
	History     []Turn   `json:"history" validate:"max=200,dive"`
	Model       string   `json:"model" validate:"max=100"`
	Temperature *float32 `json:"temperature" validate:"omitnil,gte=0,lte=2"`
}

// Response carries the character's reply.
type Response struct {
	CharacterID string `json:"character_id"`
	Reply       string `json:"reply"`
	Model       string `json:"model,omitempty"`
}
