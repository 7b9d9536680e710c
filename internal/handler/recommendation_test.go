package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/presenter"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRecommendationService is a mock implementation of the RecommendationService interface
type MockRecommendationService struct {
	mock.Mock
}

func (m *MockRecommendationService) Recommend(ctx context.Context, q models.PreferenceQuery) (*models.RecommendationResult, error) {
	args := m.Called(ctx, q)
	result, _ := args.Get(0).(*models.RecommendationResult)
	return result, args.Error(1)
}

func defaultPreference() models.PreferenceQuery {
	return models.PreferenceQuery{
		MinPrice:       lo.ToPtr(0.0),
		MaxPrice:       lo.ToPtr(1_000_000_000.0),
		Bedrooms:       lo.ToPtr(3.0),
		Bathrooms:      lo.ToPtr(2.0),
		Floors:         lo.ToPtr(1.0),
		Garages:        lo.ToPtr(1.0),
		LandSizeM2:     lo.ToPtr(100.0),
		BuildingSizeM2: lo.ToPtr(80.0),
	}
}

func okResult() *models.RecommendationResult {
	return &models.RecommendationResult{
		Status:     models.StatusOK,
		Candidates: 1,
		Recommendations: []models.Recommendation{
			{
				Rank:     1,
				Distance: 0.5,
				Listing: models.Listing{
					Title:          "Rumah Asri",
					Address:        "Jl. Kenanga 3",
					City:           "Bogor",
					PriceInRp:      lo.ToPtr(750_000_000.0),
					Bedrooms:       lo.ToPtr(3.0),
					Bathrooms:      lo.ToPtr(2.0),
					LandSizeM2:     lo.ToPtr(90.0),
					BuildingSizeM2: lo.ToPtr(70.0),
					Floors:         lo.ToPtr(1.0),
					Garages:        lo.ToPtr(1.0),
					Lat:            models.NewCoordinate(-6.6),
					Long:           models.NewCoordinate(106.8),
				},
			},
		},
	}
}

func newRequest(method, path string, params url.Values) (*gin.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, nil)
	req.URL.RawQuery = params.Encode()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

func TestRecommendationHandler_Recommend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	custom := defaultPreference()
	custom.MinPrice = lo.ToPtr(500_000_000.0)
	custom.Bedrooms = lo.ToPtr(4.0)

	tests := []struct {
		name           string
		params         url.Values
		expectedQuery  *models.PreferenceQuery
		mockResult     *models.RecommendationResult
		mockError      error
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "defaults applied",
			params:         url.Values{},
			expectedQuery:  lo.ToPtr(defaultPreference()),
			mockResult:     okResult(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "explicit parameters",
			params:         url.Values{"min_price": {"500000000"}, "bedrooms": {"4"}},
			expectedQuery:  &custom,
			mockResult:     okResult(),
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed number",
			params:         url.Values{"max_price": {"lots"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "invalid query parameter 'max_price'",
		},
		{
			name:           "bedrooms out of range",
			params:         url.Values{"bedrooms": {"11"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "query parameter 'bedrooms' out of range",
		},
		{
			name:           "negative price",
			params:         url.Values{"min_price": {"-1"}},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "query parameter 'min_price' out of range",
		},
		{
			name:           "service error",
			params:         url.Values{},
			expectedQuery:  lo.ToPtr(defaultPreference()),
			mockError:      context.Canceled,
			expectedStatus: http.StatusInternalServerError,
			expectedError:  "internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockRecommendationService)
			handler := NewRecommendationHandler(mockSvc)
			if tt.expectedQuery != nil {
				mockSvc.On("Recommend", mock.Anything, *tt.expectedQuery).Return(tt.mockResult, tt.mockError)
			}
			c, w := newRequest(http.MethodGet, "/recommendations", tt.params)

			// Execute
			handler.Recommend(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedError != "" {
				var body map[string]string
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.expectedError, body["error"])
			} else {
				var body struct {
					Status          models.Status           `json:"status"`
					Candidates      int                     `json:"candidates"`
					Recommendations []models.Recommendation `json:"recommendations"`
					Rows            []presenter.Row         `json:"rows"`
				}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, models.StatusOK, body.Status)
				assert.Equal(t, 1, body.Candidates)
				require.Len(t, body.Recommendations, 1)
				assert.Equal(t, "Rumah Asri", body.Recommendations[0].Listing.Title)
				require.Len(t, body.Rows, 1)
				assert.Equal(t, "Rp 750.000.000", body.Rows[0].Price)
				assert.Equal(t, "90 m²", body.Rows[0].LandSizeM2)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestRecommendationHandler_RecommendNotice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	mockSvc := new(MockRecommendationService)
	mockSvc.On("Recommend", mock.Anything, mock.Anything).Return(&models.RecommendationResult{
		Status:          models.StatusNoListingsInRange,
		Notice:          "no houses match the selected price range",
		Recommendations: []models.Recommendation{},
	}, nil)
	c, w := newRequest(http.MethodGet, "/recommendations", url.Values{"min_price": {"9000000000"}})

	NewRecommendationHandler(mockSvc).Recommend(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "no_listings_in_range", body["status"])
	assert.Equal(t, "no houses match the selected price range", body["notice"])
	assert.Equal(t, []interface{}{}, body["recommendations"])
	assert.Equal(t, []interface{}{}, body["rows"])
}

func TestRecommendationHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("writes csv attachment", func(t *testing.T) {
		mockSvc := new(MockRecommendationService)
		mockSvc.On("Recommend", mock.Anything, defaultPreference()).Return(okResult(), nil)
		c, w := newRequest(http.MethodGet, "/recommendations/export", url.Values{})

		NewRecommendationHandler(mockSvc).Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, `attachment; filename="rekomendasi_rumah.csv"`, w.Header().Get("Content-Disposition"))
		assert.Equal(t,
			"title,priceInRp,address,city,bedrooms,bathrooms,landSizeM2,buildingSizeM2,floors,garages,distance\n"+
				"Rumah Asri,Rp 750.000.000,Jl. Kenanga 3,Bogor,3,2,90 m²,70 m²,1,1,0.500000\n",
			w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("notice becomes no content", func(t *testing.T) {
		mockSvc := new(MockRecommendationService)
		mockSvc.On("Recommend", mock.Anything, defaultPreference()).Return(&models.RecommendationResult{
			Status:          models.StatusDataUnavailable,
			Notice:          "listing data is currently unavailable, please try again later",
			Recommendations: []models.Recommendation{},
		}, nil)
		c, w := newRequest(http.MethodGet, "/recommendations/export", url.Values{})

		NewRecommendationHandler(mockSvc).Export(c)
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "listing data is currently unavailable, please try again later", w.Header().Get(NoticeHeader))
		assert.Empty(t, w.Body.String())
	})
}

func TestRecommendationHandler_Map(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("pins recommendations", func(t *testing.T) {
		mockSvc := new(MockRecommendationService)
		mockSvc.On("Recommend", mock.Anything, defaultPreference()).Return(okResult(), nil)
		c, w := newRequest(http.MethodGet, "/recommendations/map", url.Values{})

		NewRecommendationHandler(mockSvc).Map(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var view presenter.MapView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, presenter.DefaultZoom, view.Zoom)
		require.Len(t, view.Pins, 1)
		assert.Equal(t, "https://www.google.com/maps?q=-6.6,106.8", view.Pins[0].MapsURL)
		require.NotNil(t, view.Center)
		assert.InDelta(t, -6.6, view.Center.Lat, 1e-9)
	})

	t.Run("carries the result notice", func(t *testing.T) {
		mockSvc := new(MockRecommendationService)
		mockSvc.On("Recommend", mock.Anything, defaultPreference()).Return(&models.RecommendationResult{
			Status:          models.StatusNoListingsInRange,
			Notice:          "no houses match the selected price range",
			Recommendations: []models.Recommendation{},
		}, nil)
		c, w := newRequest(http.MethodGet, "/recommendations/map", url.Values{})

		NewRecommendationHandler(mockSvc).Map(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var view presenter.MapView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
		assert.Equal(t, "no houses match the selected price range", view.Notice)
		assert.Empty(t, view.Pins)
	})
}
