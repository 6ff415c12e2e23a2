package calendar

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/krishayk/calendar-backend/internal/logger"
	"github.com/krishayk/calendar-backend/internal/middleware"
)

type Handler struct {
	inserter Inserter
}

func NewHandler(inserter Inserter) *Handler {
	return &Handler{inserter: inserter}
}

// RegisterRoutes attaches the calendar-mutating endpoints. The caller
// is expected to pass a router group already behind the auth gate.
func (h *Handler) RegisterRoutes(r gin.IRouter) {
	r.POST("/create-event", h.createEvent)
	r.POST("/create-event-oauth", h.createEvent)
	r.POST("/generate-meet-link", h.generateMeetLink)
}

func (h *Handler) createEvent(c *gin.Context) {
	var in EventInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	h.insert(c, in)
}

type meetLinkRequest struct {
	Lesson Lesson `json:"lesson"`
}

func (h *Handler) generateMeetLink(c *gin.Context) {
	var req meetLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	in, err := req.Lesson.EventInput()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lesson date"})
		return
	}

	h.insert(c, in)
}

func (h *Handler) insert(c *gin.Context, in EventInput) {
	token, ok := middleware.TokenFromContext(c.Request.Context())
	if !ok {
		// The auth gate normally rejects before we get here.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
		return
	}

	created, err := h.inserter.Insert(c.Request.Context(), token, BuildEvent(in))
	if err != nil {
		logger.Error("calendar event insert failed", map[string]any{
			"error":   err.Error(),
			"summary": in.Summary,
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create event"})
		return
	}

	var meetLink any
	if link, ok := MeetLink(created); ok {
		meetLink = link
	}

	c.JSON(http.StatusOK, gin.H{
		"htmlLink": created.HtmlLink,
		"meetLink": meetLink,
	})
}
