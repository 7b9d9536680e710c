package repository

import (
	"context"
	"fmt"
	"time"

	"house-recommendation-api/internal/metrics"
	"house-recommendation-api/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository reads listings from a local mirror of the listing service.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Listings returns every row of the houses table ordered by id
func (r *PostgresRepository) Listings(ctx context.Context) (listings []models.Listing, err error) {
	start := time.Now()
	defer func() {
		metrics.ListingFetchDuration.WithLabelValues("postgres", resultLabel(err)).Observe(time.Since(start).Seconds())
	}()

	sql := `
		SELECT
			id,
			title,
			address,
			city,
			price_in_rp,
			bedrooms,
			bathrooms,
			land_size_m2,
			building_size_m2,
			floors,
			garages,
			lat,
			long
		FROM houses
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to execute listings query: %w", err)
	}
	defer rows.Close()

	listings = []models.Listing{}
	for rows.Next() {
		var (
			l         models.Listing
			lat, long *float64
		)
		err := rows.Scan(
			&l.ID,
			&l.Title,
			&l.Address,
			&l.City,
			&l.PriceInRp,
			&l.Bedrooms,
			&l.Bathrooms,
			&l.LandSizeM2,
			&l.BuildingSizeM2,
			&l.Floors,
			&l.Garages,
			&lat,
			&long,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan listing: %w", err)
		}
		l.Lat = coordinateFromNullable(lat)
		l.Long = coordinateFromNullable(long)
		listings = append(listings, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating rows: %w", err)
	}

	return listings, nil
}

// coordinateFromNullable maps a NULL to a present but invalid coordinate; the
// column itself always exists.
func coordinateFromNullable(v *float64) models.Coordinate {
	if v == nil {
		return models.Coordinate{Present: true}
	}
	return models.NewCoordinate(*v)
}
