package prompts

import (
	"net/http"

	"storyforge_backend/platform/httpkit"
	"storyforge_backend/platform/validator"

	"github.com/gin-gonic/gin"
)

// UpdateRequest is the body of PUT /api/prompts/:name.
type UpdateRequest struct {
	Template string `json:"template" validate:"required,max=20000"`
}

// Handler exposes prompt template management.
type Handler struct {
	store *Store
	val   *validator.Validator
}

func NewHandler(store *Store, val *validator.Validator) *Handler {
	return &Handler{store: store, val: val}
}

// List handles GET /api/prompts
func (h *Handler) List(c *gin.Context) {
	httpkit.OK(c, gin.H{"prompts": h.store.List()})
}

// Get handles GET /api/prompts/:name
func (h *Handler) Get(c *gin.Context) {
	p, err := h.store.Get(c.Param("name"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, p)
}

// Update handles PUT /api/prompts/:name
func (h *Handler) Update(c *gin.Context) {
	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	if httpkit.HandleError(c, h.val.Check(req)) {
		return
	}

	p, err := h.store.Set(c.Param("name"), req.Template)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, p)
}

// Reset handles DELETE /api/prompts/:name, restoring the built-in template.
func (h *Handler) Reset(c *gin.Context) {
	p, err := h.store.Reset(c.Param("name"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, p)
}
