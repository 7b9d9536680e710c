package handler

import (
	"context"
	"net/http"

	"house-recommendation-api/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ListingHandler handles listing browse and refresh requests
type ListingHandler struct {
	service ListingService
	cache   CacheInvalidator
}

// ListingService interface for dependency injection
type ListingService interface {
	Browse(context.Context, models.BrowseQuery) (*models.ListingPage, error)
}

// CacheInvalidator drops cached listing data.
type CacheInvalidator interface {
	Invalidate()
}

// NewListingHandler creates a new listing handler. cache may be nil when listings
// are not cached.
func NewListingHandler(svc ListingService, cache CacheInvalidator) *ListingHandler {
	return &ListingHandler{service: svc, cache: cache}
}

// Browse handles GET /houses requests
//
//	@Summary		Browse houses
//	@Tags			houses
//	@Produce		json
//	@Param			min_price	query		number	false	"minimum price in rupiah"
//	@Param			max_price	query		number	false	"maximum price in rupiah"
//	@Param			city		query		string	false	"city contains, case-insensitive"
//	@Param			limit		query		int		false	"page size"	default(50)	maximum(500)
//	@Param			offset		query		int		false	"page offset"
//	@Success		200			{object}	models.ListingPage
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/houses [get]
func (h *ListingHandler) Browse(c *gin.Context) {
	q, err := parseBrowse(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.service.Browse(c.Request.Context(), q)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("browse failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, page)
}

// Refresh handles POST /houses/refresh requests
//
//	@Summary	Drop cached listings
//	@Tags		houses
//	@Produce	json
//	@Success	200	{object}	map[string]string
//	@Router		/houses/refresh [post]
func (h *ListingHandler) Refresh(c *gin.Context) {
	if h.cache != nil {
		h.cache.Invalidate()
	}
	c.JSON(http.StatusOK, gin.H{"status": "refreshed"})
}
