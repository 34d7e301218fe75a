package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/auth"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/services"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
}

func NewApplicationHandler(applications *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications}
}

// Apply is POST /jobs/:id/apply. Identity is optional; guests apply with
// contact details alone.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dtos.ApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	app, err := h.Applications.Apply(c.Request.Context(), c.Param("id"), auth.ViewerID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Application submitted", "application_id": app.ID})
}
