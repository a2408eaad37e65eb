package chat

import (
	"net/http"

	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// Handler exposes the chat endpoint.
type Handler struct {
	svc *Service
	val *validator.Validator
}

func NewHandler(svc *Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Send handles POST /api/chat
func (h *Handler) Send(c *gin.Context) {
	var req Request
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	resp, err := h.svc.Reply(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
