package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/auth"
	"github.com/openhire/jobboard/internal/dtos"
	"github.com/openhire/jobboard/internal/search"
	"github.com/openhire/jobboard/internal/services"
	"go.uber.org/zap"
)

type JobHandler struct {
	Search *search.Service
	Jobs   *services.JobService
	Facets *services.FacetService
	Logger *zap.Logger
}

func NewJobHandler(searchSvc *search.Service, jobs *services.JobService, facets *services.FacetService, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		Search: searchSvc,
		Jobs:   jobs,
		Facets: facets,
		Logger: logger,
	}
}

// List is the GET /jobs search endpoint. Zero matches is a normal 200 with an
// empty array; only storage failure produces a non-200.
func (h *JobHandler) List(c *gin.Context) {
	viewerID := auth.ViewerID(c)

	result, err := h.Search.Search(c.Request.Context(), c.Request.URL.Query(), viewerID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Facets are presentation sugar for the filter UI; their failure should
	// not take the search result down with it.
	facets, err := h.Facets.All(c.Request.Context())
	if err != nil {
		h.Logger.Warn("facet load failed", zap.Error(err))
		facets = &dtos.Facets{
			Categories: []dtos.CategoryFacet{},
			Benefits:   []dtos.BenefitFacet{},
			Employers:  []dtos.EmployerFacet{},
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"jobs":       result.Jobs,
		"pagination": result.Pagination,
		"categories": facets.Categories,
		"benefits":   facets.Benefits,
		"employers":  facets.Employers,
	})
}

// Show is the GET /jobs/:id detail endpoint.
func (h *JobHandler) Show(c *gin.Context) {
	detail, err := h.Jobs.Detail(c.Request.Context(), c.Param("id"), auth.ViewerID(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, detail)
}
