package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhire/jobboard/internal/services"
)

type FacetHandler struct {
	Facets *services.FacetService
}

func NewFacetHandler(facets *services.FacetService) *FacetHandler {
	return &FacetHandler{Facets: facets}
}

func (h *FacetHandler) Categories(c *gin.Context) {
	categories, err := h.Facets.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func (h *FacetHandler) Benefits(c *gin.Context) {
	benefits, err := h.Facets.Benefits(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"benefits": benefits})
}

func (h *FacetHandler) Employers(c *gin.Context) {
	employers, err := h.Facets.Employers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"employers": employers})
}
