package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"house-recommendation-api/internal/metrics"
	"house-recommendation-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// DefaultFetchTimeout bounds a shared fetch, which no longer follows any single
// caller's context.
const DefaultFetchTimeout = 30 * time.Second

// CachedSource keeps the last successful listing table of a source for ttl.
// Failed or empty fetches are never cached, so the next call retries.
type CachedSource struct {
	source       ListingSource
	ttl          time.Duration
	fetchTimeout time.Duration
	now          func() time.Time
	group        singleflight.Group

	mu        sync.RWMutex
	listings  []models.Listing
	expiresAt time.Time
}

// NewCachedSource wraps source with a cache of the given lifetime.
func NewCachedSource(source ListingSource, ttl time.Duration) *CachedSource {
	return &CachedSource{
		source:       source,
		ttl:          ttl,
		fetchTimeout: DefaultFetchTimeout,
		now:          time.Now,
	}
}

// Listings returns the cached table while it is fresh, otherwise fetches it.
// Concurrent misses share a single fetch. Callers get their own slice.
func (c *CachedSource) Listings(ctx context.Context) ([]models.Listing, error) {
	if cached, ok := c.lookup(); ok {
		metrics.ListingCacheRequests.WithLabelValues("hit").Inc()
		return cached, nil
	}
	metrics.ListingCacheRequests.WithLabelValues("miss").Inc()

	// The fetch is shared, so it must outlive a caller that gives up. Each caller
	// still stops waiting when its own context ends.
	ch := c.group.DoChan("listings", func() (interface{}, error) {
		if cached, ok := c.lookup(); ok {
			return cached, nil
		}

		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchTimeout)
		defer cancel()

		listings, err := c.source.Listings(fetchCtx)
		if err != nil {
			return nil, err
		}
		if len(listings) == 0 {
			return nil, ErrNoListings
		}

		c.mu.Lock()
		c.listings = listings
		c.expiresAt = c.now().Add(c.ttl)
		c.mu.Unlock()

		log.Info().Int("listings", len(listings)).Dur("ttl", c.ttl).Msg("listing cache refreshed")
		return listings, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("repository: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return clone(res.Val.([]models.Listing)), nil
	}
}

// Invalidate drops the cached table; the next Listings call refetches.
func (c *CachedSource) Invalidate() {
	c.mu.Lock()
	c.listings = nil
	c.expiresAt = time.Time{}
	c.mu.Unlock()
	log.Info().Msg("listing cache invalidated")
}

func (c *CachedSource) lookup() ([]models.Listing, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.listings == nil || !c.now().Before(c.expiresAt) {
		return nil, false
	}
	return clone(c.listings), true
}

func clone(in []models.Listing) []models.Listing {
	out := make([]models.Listing, len(in))
	copy(out, in)
	return out
}
