package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"house-recommendation-api/internal/models"
)

// parseCSV reads listings from a CSV export of the listing service. Columns are
// matched by header name; empty numeric cells are stored as NULL.
func parseCSV(r io.Reader) ([]models.Listing, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // Allow variable number of fields

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	if _, ok := index["title"]; !ok {
		return nil, errors.New("missing required column 'title'")
	}

	var listings []models.Listing
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		cell := func(name string) string {
			i, ok := index[name]
			if !ok || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}
		number := func(name string) (*float64, error) {
			raw := cell(name)
			if raw == "" {
				return nil, nil
			}
			v, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid %s: %s", line, name, raw)
			}
			return &v, nil
		}

		l := models.Listing{Title: cell("title"), Address: cell("address"), City: cell("city")}
		fields := []struct {
			name string
			dst  **float64
		}{
			{"priceInRp", &l.PriceInRp},
			{"bedrooms", &l.Bedrooms},
			{"bathrooms", &l.Bathrooms},
			{"landSizeM2", &l.LandSizeM2},
			{"buildingSizeM2", &l.BuildingSizeM2},
			{"floors", &l.Floors},
			{"garages", &l.Garages},
		}
		for _, f := range fields {
			if *f.dst, err = number(f.name); err != nil {
				return nil, err
			}
		}
		_, hasLat := index["lat"]
		_, hasLong := index["long"]
		l.Lat = coordinate(cell("lat"), hasLat)
		l.Long = coordinate(cell("long"), hasLong)

		listings = append(listings, l)
	}

	return listings, nil
}

// coordinate mirrors the listing service decoder: a column in the header makes the
// coordinate present, and only a parsable cell makes it valid.
func coordinate(raw string, column bool) models.Coordinate {
	if !column {
		return models.Coordinate{}
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return models.Coordinate{Present: true}
	}
	return models.NewCoordinate(v)
}
