package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"house-recommendation-api/internal/config"
	"house-recommendation-api/internal/logging"
	"house-recommendation-api/internal/models"
	"house-recommendation-api/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"
)

func main() {
	file := flag.String("file", "", "Path to a listings CSV file; when empty, listings are fetched from LISTING_API_URL")
	truncate := flag.Bool("truncate", false, "Empty the houses table before importing")
	flag.Parse()

	logging.Init(logging.Config{Level: "info", Format: logging.FormatConsole})

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.DBSource == "" {
		log.Fatal().Msg("DB_SOURCE is required for importing")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	listings, err := load(ctx, *file, cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load listings")
	}
	log.Info().Int("count", len(listings)).Msg("parsed listings")

	conn, err := pgx.Connect(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close(context.Background())

	if _, err := conn.Exec(ctx, repository.Schema); err != nil {
		log.Fatal().Err(err).Msg("cannot create houses table")
	}
	if *truncate {
		if _, err := conn.Exec(ctx, "TRUNCATE houses RESTART IDENTITY"); err != nil {
			log.Fatal().Err(err).Msg("cannot truncate houses table")
		}
	}

	before, err := countHouses(ctx, conn)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot count houses")
	}
	if err := insertListings(ctx, conn, listings); err != nil {
		log.Fatal().Err(err).Msg("cannot insert listings")
	}
	if err := verifyImport(ctx, conn, before+len(listings)); err != nil {
		log.Fatal().Err(err).Msg("import verification failed")
	}

	log.Info().Int("count", len(listings)).Msg("import finished")
}

func load(ctx context.Context, file string, cfg config.Config) ([]models.Listing, error) {
	if file != "" {
		log.Info().Str("file", file).Msg("importing from csv")
		f, err := os.Open(file)
		if err != nil {
			return nil, fmt.Errorf("failed to open file: %w", err)
		}
		defer f.Close()
		return parseCSV(f)
	}

	log.Info().Str("url", cfg.ListingAPIURL).Msg("importing from listing api")
	listings, err := repository.NewHTTPRepository(cfg.ListingAPIURL, cfg.ListingAPITimeout).Listings(ctx)
	if err != nil {
		return nil, err
	}
	if len(listings) == 0 {
		return nil, errors.New("listing api returned no listings")
	}
	return listings, nil
}

func insertListings(ctx context.Context, conn *pgx.Conn, listings []models.Listing) error {
	_, err := conn.CopyFrom(
		ctx,
		pgx.Identifier{"houses"},
		repository.HouseColumns,
		pgx.CopyFromSlice(len(listings), func(i int) ([]any, error) {
			return listingRow(listings[i]), nil
		}),
	)
	return err
}

// listingRow orders l's fields like repository.HouseColumns.
func listingRow(l models.Listing) []any {
	return []any{
		l.Title, l.Address, l.City,
		l.PriceInRp, l.Bedrooms, l.Bathrooms,
		l.LandSizeM2, l.BuildingSizeM2, l.Floors, l.Garages,
		coordinateValue(l.Lat), coordinateValue(l.Long),
	}
}

func coordinateValue(c models.Coordinate) *float64 {
	if !c.Valid {
		return nil
	}
	v := c.Value
	return &v
}

func countHouses(ctx context.Context, conn *pgx.Conn) (int, error) {
	var count int
	if err := conn.QueryRow(ctx, "SELECT COUNT(*) FROM houses").Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count records: %w", err)
	}
	return count, nil
}

func verifyImport(ctx context.Context, conn *pgx.Conn, expectedCount int) error {
	count, err := countHouses(ctx, conn)
	if err != nil {
		return err
	}
	if count != expectedCount {
		return fmt.Errorf("record count mismatch: expected %d, got %d", expectedCount, count)
	}
	return nil
}
