package repository

import (
	"context"
	"errors"

	"house-recommendation-api/internal/models"
)

// ListingSource supplies the full current listing table.
type ListingSource interface {
	Listings(ctx context.Context) ([]models.Listing, error)
}

// ErrNoListings is returned when a source answered but had no records.
var ErrNoListings = errors.New("repository: listing source returned no records")
