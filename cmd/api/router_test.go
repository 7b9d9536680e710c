package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"house-recommendation-api/internal/handler"
	"house-recommendation-api/internal/middleware"
	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticSource []models.Listing

func (s staticSource) Listings(context.Context) ([]models.Listing, error) {
	return s, nil
}

type noopCache struct{ invalidated int }

func (c *noopCache) Invalidate() { c.invalidated++ }

func testRouter(t *testing.T, cache *noopCache) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	source := staticSource{
		{
			ID:        1,
			Title:     "Rumah Depok",
			City:      "Depok",
			PriceInRp: lo.ToPtr(800_000_000.0),
			Bedrooms:  lo.ToPtr(3.0),
			Lat:       models.NewCoordinate(-6.4),
			Long:      models.NewCoordinate(106.8),
		},
		{
			ID:        2,
			Title:     "Rumah Menteng",
			City:      "Jakarta Pusat",
			PriceInRp: lo.ToPtr(9_000_000_000.0),
		},
	}
	return newRouter(
		handler.NewRecommendationHandler(service.NewRecommendationService(source, 50)),
		handler.NewListingHandler(service.NewListingService(source), cache),
	)
}

func TestRouter(t *testing.T) {
	r := testRouter(t, &noopCache{})

	tests := []struct {
		name         string
		method       string
		target       string
		expectedCode int
		bodyContains string
	}{
		{name: "health", method: http.MethodGet, target: "/health", expectedCode: http.StatusOK, bodyContains: `"status":"ok"`},
		{name: "browse", method: http.MethodGet, target: "/houses?city=depok", expectedCode: http.StatusOK, bodyContains: "Rumah Depok"},
		{name: "recommendations", method: http.MethodGet, target: "/recommendations", expectedCode: http.StatusOK, bodyContains: "Rp 800.000.000"},
		{name: "bad query", method: http.MethodGet, target: "/recommendations?floors=9", expectedCode: http.StatusBadRequest, bodyContains: "floors"},
		{name: "export", method: http.MethodGet, target: "/recommendations/export", expectedCode: http.StatusOK, bodyContains: "Rumah Depok"},
		{name: "map", method: http.MethodGet, target: "/recommendations/map", expectedCode: http.StatusOK, bodyContains: "google.com/maps"},
		{name: "metrics", method: http.MethodGet, target: "/metrics", expectedCode: http.StatusOK, bodyContains: "house_recommendations_total"},
		{name: "unknown route", method: http.MethodGet, target: "/unknown", expectedCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.bodyContains)
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_Refresh(t *testing.T) {
	cache := &noopCache{}
	r := testRouter(t, cache)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/houses/refresh", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, cache.invalidated)
}
