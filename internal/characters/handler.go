package characters

import (
	"net/http"

	"storyforge_backend/platform/apperr"
	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const msgInvalidRequestBody = "invalid request body"

// Handler exposes the character CRUD endpoints.
type Handler struct {
	store *Store
	val   *validator.Validator
}

func NewHandler(store *Store, val *validator.Validator) *Handler {
	return &Handler{store: store, val: val}
}

// List handles GET /api/characters
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, ListResponse{Characters: h.store.List(c.Request.Context())})
}

// Get handles GET /api/characters/:id
func (h *Handler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	character, err := h.store.Get(c.Request.Context(), id)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, character)
}

// Create handles POST /api/characters
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequestBody, nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	character, err := h.store.Create(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.Created(c, character)
}

// Update handles PUT /api/characters/:id
func (h *Handler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequestBody, nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	character, err := h.store.Update(c.Request.Context(), id, req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, character)
}

// Delete handles DELETE /api/characters/:id
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
		httpkit.HandleError(c, apperr.BadRequest("invalid character id"))
		return uuid.Nil, false
	}
	return id, true
}
