package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/auth"
	"github.com/openhire/jobboard/internal/services"
)

type SavedJobHandler struct {
	SavedJobs *services.SavedJobService
}

func NewSavedJobHandler(savedJobs *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{SavedJobs: savedJobs}
}

func (h *SavedJobHandler) Save(c *gin.Context) {
	viewerID, ok := auth.RequireViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.SavedJobs.Save(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": true})
}

func (h *SavedJobHandler) Unsave(c *gin.Context) {
	viewerID, ok := auth.RequireViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	if err := h.SavedJobs.Unsave(c.Request.Context(), viewerID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": false})
}
