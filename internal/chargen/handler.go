package chargen

import (
	"net/http"

	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

const msgInvalidRequestBody = "invalid request body"

// Handler exposes the generation endpoints.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// GenerateCharacter handles POST /api/generate-character
func (h *Handler) GenerateCharacter(c *gin.Context) {
	var req CharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequestBody, nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	draft, err := h.svc.GenerateCharacter(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, draft)
}

// GenerateField handles POST /api/generate-field
func (h *Handler) GenerateField(c *gin.Context) {
	var req FieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequestBody, nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	resp, err := h.svc.GenerateField(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
