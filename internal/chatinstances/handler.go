package chatinstances

import (
	"net/http"

	"storyforge_backend/platform/apperr"
	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Handler exposes chat instance endpoints.
type Handler struct {
	store *Store
	val   *validator.Validator
}

func NewHandler(store *Store, val *validator.Validator) *Handler {
	return &Handler{store: store, val: val}
}

// List handles GET /api/chat-instances?character_id=...
func (h *Handler) List(c *gin.Context) {
	var filter *uuid.UUID
	if raw := c.Query("character_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			httpkit.HandleError(c, apperr.BadRequest("invalid character id"))
			return
		}
		filter = &id
	}
	httpkit.OK(c, ListResponse{Instances: h.store.List(c.Request.Context(), filter)})
}

// Get handles GET /api/chat-instances/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	inst, err := h.store.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, inst)
}

// Create handles POST /api/chat-instances
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	inst, err := h.store.Create(c.Request.Context(), uuid.MustParse(req.CharacterID), req.Title)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, inst)
}

// Delete handles DELETE /api/chat-instances/:id
func (h *Handler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if httpkit.HandleError(c, h.store.Delete(c.Request.Context(), id)) {
		return
	}
	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httpkit.HandleError(c, apperr.BadRequest("invalid chat instance id"))
		return uuid.Nil, false
	}
	return id, true
}
