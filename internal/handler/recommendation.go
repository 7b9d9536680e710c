package handler

import (
	"bytes"
	"context"
	"net/http"

	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/presenter"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NoticeHeader carries the notice on export responses without a body.
const NoticeHeader = "X-Notice"

// RecommendationHandler handles recommendation requests
type RecommendationHandler struct {
	service RecommendationService
}

// Service interface for dependency injection
type RecommendationService interface {
	Recommend(context.Context, models.PreferenceQuery) (*models.RecommendationResult, error)
}

// RecommendationResponse is the body of GET /recommendations.
type RecommendationResponse struct {
	*models.RecommendationResult
	Rows []presenter.Row `json:"rows"`
}

// NewRecommendationHandler creates a new recommendation handler
func NewRecommendationHandler(svc RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{service: svc}
}

// Recommend handles GET /recommendations requests
//
//	@Summary		Recommend houses
//	@Description	Returns up to 50 houses in the price range closest to the preferences.
//	@Tags			recommendations
//	@Produce		json
//	@Param			min_price			query		number	false	"minimum price in rupiah"	default(0)
//	@Param			max_price			query		number	false	"maximum price in rupiah"	default(1000000000)
//	@Param			bedrooms			query		number	false	"bedrooms"					default(3)	minimum(0)	maximum(10)
//	@Param			bathrooms			query		number	false	"bathrooms"					default(2)	minimum(0)	maximum(10)
//	@Param			floors				query		number	false	"floors"					default(1)	minimum(0)	maximum(5)
//	@Param			garages				query		number	false	"garages"					default(1)	minimum(0)	maximum(5)
//	@Param			land_size_m2		query		number	false	"land size in m²"			default(100)
//	@Param			building_size_m2	query		number	false	"building size in m²"		default(80)
//	@Success		200					{object}	RecommendationResponse
//	@Failure		400					{object}	map[string]string
//	@Failure		500					{object}	map[string]string
//	@Router			/recommendations [get]
func (h *RecommendationHandler) Recommend(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, RecommendationResponse{
		RecommendationResult: result,
		Rows:                 presenter.Rows(result),
	})
}

// Export handles GET /recommendations/export requests
//
//	@Summary		Export recommendations as CSV
//	@Description	Same query as /recommendations. Responds 204 with an X-Notice header when there is nothing to export.
//	@Tags			recommendations
//	@Produce		text/csv
//	@Param			min_price	query		number	false	"minimum price in rupiah"	default(0)
//	@Param			max_price	query		number	false	"maximum price in rupiah"	default(1000000000)
//	@Success		200			{file}		file
//	@Success		204
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/recommendations/export [get]
func (h *RecommendationHandler) Export(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	if result.Status != models.StatusOK {
		c.Header(NoticeHeader, result.Notice)
		c.Status(http.StatusNoContent)
		return
	}

	var buf bytes.Buffer
	if err := presenter.WriteCSV(&buf, result); err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("csv export failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+presenter.ExportFilename+`"`)
	c.Data(http.StatusOK, presenter.ExportContentType+"; charset=utf-8", buf.Bytes())
}

// Map handles GET /recommendations/map requests
//
//	@Summary		Map of recommended houses
//	@Description	Same query as /recommendations. Pins only houses with valid coordinates.
//	@Tags			recommendations
//	@Produce		json
//	@Param			min_price	query		number	false	"minimum price in rupiah"	default(0)
//	@Param			max_price	query		number	false	"maximum price in rupiah"	default(1000000000)
//	@Success		200			{object}	presenter.MapView
//	@Failure		400			{object}	map[string]string
//	@Failure		500			{object}	map[string]string
//	@Router			/recommendations/map [get]
func (h *RecommendationHandler) Map(c *gin.Context) {
	result, ok := h.run(c)
	if !ok {
		return
	}

	view := presenter.BuildMap(result)
	if result.Status != models.StatusOK {
		view.Notice = result.Notice
	}
	c.JSON(http.StatusOK, view)
}

// run parses the preference query and calls the service, writing the error
// response itself when either fails.
func (h *RecommendationHandler) run(c *gin.Context) (*models.RecommendationResult, bool) {
	q, err := parsePreference(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	result, err := h.service.Recommend(c.Request.Context(), q)
	if err != nil {
		log.Ctx(c.Request.Context()).Error().Err(err).Msg("recommendation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return nil, false
	}
	return result, true
}
