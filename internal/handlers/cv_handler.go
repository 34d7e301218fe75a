package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/services"
)

type CVHandler struct {
	CV *services.CVService
}

func NewCVHandler(cv *services.CVService) *CVHandler {
	return &CVHandler{CV: cv}
}

func (h *CVHandler) Parse(c *gin.Context) {
	if h.CV == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "resume parsing is not configured"})
		return
	}

	var req dtos.CVParseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	parsed, err := h.CV.ParseResume(c.Request.Context(), req.Text)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "application/json", []byte(parsed))
}
