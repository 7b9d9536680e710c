package service

import (
	"context"
	"fmt"
	"strings"

	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/recommend"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
)

// Paging bounds for browsing.
const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ListingService serves the browse view of the listing table
type ListingService struct {
	repo ListingSource
}

// NewListingService creates a new listing service
func NewListingService(repo ListingSource) *ListingService {
	return &ListingService{repo: repo}
}

// Browse returns one page of listings inside the price range, optionally limited
// to cities containing q.City (case-insensitive).
func (s *ListingService) Browse(ctx context.Context, q models.BrowseQuery) (*models.ListingPage, error) {
	if q.Limit <= 0 {
		q.Limit = DefaultPageSize
	}
	if q.Limit > MaxPageSize {
		q.Limit = MaxPageSize
	}
	if q.Offset < 0 {
		q.Offset = 0
	}

	page := &models.ListingPage{Status: models.StatusOK, Limit: q.Limit, Offset: q.Offset, Items: []models.Listing{}}

	listings, err := s.repo.Listings(ctx)
	if err != nil || len(listings) == 0 {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, fmt.Errorf("service: %w", ctxErr)
		}
		log.Ctx(ctx).Warn().Err(err).Msg("listing data unavailable for browsing")
		page.Status = models.StatusDataUnavailable
		page.Notice = NoticeDataUnavailable
		return page, nil
	}

	filtered := recommend.FilterByPrice(listings, q.MinPrice, q.MaxPrice)
	if city := strings.ToLower(strings.TrimSpace(q.City)); city != "" {
		filtered = lo.Filter(filtered, func(l models.Listing, _ int) bool {
			return strings.Contains(strings.ToLower(l.City), city)
		})
	}

	page.Total = len(filtered)
	if page.Total == 0 {
		page.Status = models.StatusNoListingsInRange
		page.Notice = NoticeNoListingsInRange
		return page, nil
	}

	start := min(q.Offset, page.Total)
	end := min(start+q.Limit, page.Total)
	page.Items = filtered[start:end]
	return page, nil
}
