package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"house-recommendation-api/internal/metrics"
	"house-recommendation-api/internal/models"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"
)

const breakerName = "listing-api"

// errCallerGone marks fetches abandoned because the caller's context ended. They say
// nothing about the listing api and are excluded from the breaker counts.
var errCallerGone = errors.New("repository: caller context done")

// HTTPRepository fetches listings from the remote listing service.
type HTTPRepository struct {
	baseURL    string
	httpClient *http.Client
	cb         *gobreaker.CircuitBreaker[[]models.Listing]
}

// NewHTTPRepository creates a listing service client. Every call goes through a
// circuit breaker that opens after 5 consecutive failures and probes again after
// 30 seconds.
func NewHTTPRepository(baseURL string, timeout time.Duration) *HTTPRepository {
	metrics.ListingCircuitBreakerState.WithLabelValues(breakerName).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]models.Listing](gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		IsExcluded: func(err error) bool {
			return errors.Is(err, errCallerGone)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("listing api circuit breaker state changed")
			metrics.ListingCircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	})

	return &HTTPRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		cb: cb,
	}
}

// Listings performs GET <baseURL>/houses and decodes the JSON array of houses.
func (r *HTTPRepository) Listings(ctx context.Context) ([]models.Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("repository: %w", err)
	}

	start := time.Now()
	listings, err := r.cb.Execute(func() ([]models.Listing, error) {
		listings, err := r.fetch(ctx)
		if err != nil && ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", errCallerGone, ctx.Err())
		}
		return listings, err
	})
	metrics.ListingFetchDuration.WithLabelValues("http", resultLabel(err)).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return nil, fmt.Errorf("repository: listing api unavailable: %w", err)
		}
		return nil, err
	}
	return listings, nil
}

func (r *HTTPRepository) fetch(ctx context.Context) ([]models.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.baseURL+"/houses", nil)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("repository: request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("repository: listing api returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var listings []models.Listing
	if err := json.NewDecoder(resp.Body).Decode(&listings); err != nil {
		return nil, fmt.Errorf("repository: failed to parse listings: %w", err)
	}
	return listings, nil
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	default:
		return "error"
	}
}
