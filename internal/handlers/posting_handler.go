package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/auth"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/services"
	"go.uber.org/zap"
)

// PostingHandler covers the employer-side job lifecycle: draft, update,
// publish, close.
type PostingHandler struct {
	Jobs   *services.JobService
	Logger *zap.Logger
}

func NewPostingHandler(jobs *services.JobService, logger *zap.Logger) *PostingHandler {
	return &PostingHandler{Jobs: jobs, Logger: logger}
}

func (h *PostingHandler) Create(c *gin.Context) {
	employerID, ok := h.employer(c)
	if !ok {
		return
	}

	var req dtos.JobCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.CreateJob(c.Request.Context(), employerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Job created successfully", "job": job})
}

func (h *PostingHandler) Update(c *gin.Context) {
	employerID, ok := h.employer(c)
	if !ok {
		return
	}

	var req dtos.JobUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	job, err := h.Jobs.UpdateJob(c.Request.Context(), employerID, c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job updated successfully", "job": job})
}

func (h *PostingHandler) Publish(c *gin.Context) {
	employerID, ok := h.employer(c)
	if !ok {
		return
	}

	job, err := h.Jobs.PublishJob(c.Request.Context(), employerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job published successfully", "job": job})
}

func (h *PostingHandler) Close(c *gin.Context) {
	employerID, ok := h.employer(c)
	if !ok {
		return
	}

	job, err := h.Jobs.CloseJob(c.Request.Context(), employerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job closed successfully", "job": job})
}

// employer resolves the caller to an employer membership or writes the
// failure response itself.
func (h *PostingHandler) employer(c *gin.Context) (uint, bool) {
	viewerID, ok := auth.RequireViewer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return 0, false
	}

	employerID, err := h.Jobs.EmployerForUser(c.Request.Context(), viewerID)
	if err != nil {
		respondError(c, err)
		return 0, false
	}

	return employerID, true
}
