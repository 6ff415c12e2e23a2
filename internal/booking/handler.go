package booking

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.GET("/api/bookings", h.list)
	r.POST("/api/bookings", h.create)
	r.PUT("/api/bookings/:id", h.update)
	r.DELETE("/api/bookings/:id", h.delete)
}

func (h *Handler) list(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.List())
}

func (h *Handler) create(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	c.JSON(http.StatusCreated, h.store.Create(fields))
}

func (h *Handler) update(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.store.Update(c.Param("id"), fields)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// delete is idempotent: removing an unknown ID is a no-op.
func (h *Handler) delete(c *gin.Context) {
	h.store.Delete(c.Param("id"))
	c.Status(http.StatusNoContent)
}
