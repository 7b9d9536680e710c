package service

import (
	"context"
	"fmt"

	"house-recommendation-api/internal/metrics"
	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/recommend"

	"github.com/rs/zerolog/log"
)

// User-visible notices for runs that end without recommendations.
const (
	NoticeDataUnavailable   = "listing data is currently unavailable, please try again later"
	NoticeNoListingsInRange = "no houses match the selected price range"
)

// ListingSource interface for dependency injection
type ListingSource interface {
	Listings(ctx context.Context) ([]models.Listing, error)
}

// RecommendationService runs the filter, scale and match pipeline for one query
type RecommendationService struct {
	repo  ListingSource
	limit int
}

// NewRecommendationService creates a new recommendation service. A non-positive
// limit falls back to recommend.DefaultK.
func NewRecommendationService(repo ListingSource, limit int) *RecommendationService {
	if limit <= 0 {
		limit = recommend.DefaultK
	}
	return &RecommendationService{repo: repo, limit: limit}
}

// Recommend returns up to limit listings closest to q. A failed fetch and an empty
// price range are reported through the result status, not as errors; the error is
// only set when ctx is done.
func (s *RecommendationService) Recommend(ctx context.Context, q models.PreferenceQuery) (*models.RecommendationResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}

	listings, err := s.repo.Listings(ctx)
	if err != nil || len(listings) == 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("service: %w", ctxErr)
		}
		log.Ctx(ctx).Warn().Err(err).Msg("listing data unavailable, skipping recommendation")
		return s.finish(ctx, &models.RecommendationResult{
			Status:          models.StatusDataUnavailable,
			Notice:          NoticeDataUnavailable,
			Recommendations: []models.Recommendation{},
		}), nil
	}

	minPrice, maxPrice := recommend.FillMissing(q.MinPrice), recommend.FillMissing(q.MaxPrice)
	filtered := recommend.FilterByPrice(listings, minPrice, maxPrice)
	metrics.RecommendationCandidates.Observe(float64(len(filtered)))

	if len(filtered) == 0 {
		return s.finish(ctx, &models.RecommendationResult{
			Status:          models.StatusNoListingsInRange,
			Notice:          NoticeNoListingsInRange,
			Recommendations: []models.Recommendation{},
		}), nil
	}

	return s.finish(ctx, &models.RecommendationResult{
		Status:          models.StatusOK,
		Candidates:      len(filtered),
		Recommendations: recommend.Rank(filtered, q, s.limit),
	}), nil
}

func (s *RecommendationService) finish(ctx context.Context, res *models.RecommendationResult) *models.RecommendationResult {
	metrics.Recommendations.WithLabelValues(string(res.Status)).Inc()
	log.Ctx(ctx).Debug().
		Str("status", string(res.Status)).
		Int("candidates", res.Candidates).
		Int("returned", len(res.Recommendations)).
		Msg("recommendation finished")
	return res
}
