package presenter

import (
	"bytes"
	"encoding/csv"
	"math"
	"testing"

	"house-recommendation-api/internal/models"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatRupiah(t *testing.T) {
	tests := []struct {
		name     string
		value    *float64
		expected string
	}{
		{name: "missing", value: nil, expected: "Rp 0"},
		{name: "zero", value: lo.ToPtr(0.0), expected: "Rp 0"},
		{name: "thousands", value: lo.ToPtr(1_500.0), expected: "Rp 1.500"},
		{name: "millions", value: lo.ToPtr(1_500_000.0), expected: "Rp 1.500.000"},
		{name: "billions", value: lo.ToPtr(2_750_000_000.0), expected: "Rp 2.750.000.000"},
		{name: "rounds to whole rupiah", value: lo.ToPtr(999.6), expected: "Rp 1.000"},
		{name: "not a number", value: lo.ToPtr(math.NaN()), expected: "Rp 0"},
		{name: "beyond int64", value: lo.ToPtr(1e19), expected: "Rp 10.000.000.000.000.000.000"},
		{name: "negative", value: lo.ToPtr(-2_500_000.0), expected: "Rp -2.500.000"},
		{name: "rounds to negative zero", value: lo.ToPtr(-0.4), expected: "Rp 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatRupiah(tt.value))
		})
	}
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "0 m²", FormatArea(nil))
	assert.Equal(t, "80 m²", FormatArea(lo.ToPtr(80.0)))
	assert.Equal(t, "120 m²", FormatArea(lo.ToPtr(120.9)))
}

func TestFormatCount(t *testing.T) {
	assert.Equal(t, "", FormatCount(nil))
	assert.Equal(t, "3", FormatCount(lo.ToPtr(3.0)))
	assert.Equal(t, "1.5", FormatCount(lo.ToPtr(1.5)))
}

func sampleResult() *models.RecommendationResult {
	return &models.RecommendationResult{
		Status:     models.StatusOK,
		Candidates: 3,
		Recommendations: []models.Recommendation{
			{
				Rank:     1,
				Distance: 0.25,
				Listing: models.Listing{
					Title:          "Rumah Minimalis",
					Address:        "Jl. Melati 5",
					City:           "Depok",
					PriceInRp:      lo.ToPtr(850_000_000.0),
					Bedrooms:       lo.ToPtr(3.0),
					Bathrooms:      lo.ToPtr(2.0),
					LandSizeM2:     lo.ToPtr(100.0),
					BuildingSizeM2: lo.ToPtr(75.5),
					Floors:         lo.ToPtr(1.0),
					Garages:        lo.ToPtr(1.0),
					Lat:            models.NewCoordinate(-6.4),
					Long:           models.NewCoordinate(106.8),
				},
			},
			{
				Rank:     2,
				Distance: 0.5,
				Listing: models.Listing{
					Title:     "Rumah Hook, Strategis",
					Address:   "Jl. Mawar 1",
					City:      "Bekasi",
					PriceInRp: lo.ToPtr(600_000_000.0),
					Lat:       models.NewCoordinate(-6.2),
					Long:      models.NewCoordinate(107.0),
				},
			},
			{
				Rank:     3,
				Distance: 0.75,
				Listing: models.Listing{
					Title: "Tanpa Lokasi",
					Lat:   models.Coordinate{Present: true},
				},
			},
		},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleResult())

	require.Len(t, rows, 3)
	assert.Equal(t, Row{
		Rank:           1,
		Title:          "Rumah Minimalis",
		Price:          "Rp 850.000.000",
		Address:        "Jl. Melati 5",
		City:           "Depok",
		Bedrooms:       "3",
		Bathrooms:      "2",
		LandSizeM2:     "100 m²",
		BuildingSizeM2: "75 m²",
		Floors:         "1",
		Garages:        "1",
		Distance:       "0.250000",
	}, rows[0])
	assert.Equal(t, "0 m²", rows[1].LandSizeM2)
	assert.Equal(t, "", rows[1].Bedrooms)
	assert.Equal(t, "Rp 0", rows[2].Price)
}

func TestRows_NilResult(t *testing.T) {
	assert.Empty(t, Rows(nil))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleResult()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)

	require.Len(t, records, 4)
	assert.Equal(t, Columns, records[0])
	assert.Equal(t, []string{
		"Rumah Minimalis", "Rp 850.000.000", "Jl. Melati 5", "Depok", "3", "2",
		"100 m²", "75 m²", "1", "1", "0.250000",
	}, records[1])
	assert.Equal(t, "Rumah Hook, Strategis", records[2][0])
}

func TestWriteCSV_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, &models.RecommendationResult{}))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{Columns}, records)
}

func TestBuildMap(t *testing.T) {
	view := BuildMap(sampleResult())

	assert.Empty(t, view.Notice)
	assert.Equal(t, DefaultZoom, view.Zoom)
	require.Len(t, view.Pins, 2)
	require.NotNil(t, view.Center)
	assert.InDelta(t, -6.3, view.Center.Lat, 1e-9)
	assert.InDelta(t, 106.9, view.Center.Long, 1e-9)

	pin := view.Pins[0]
	assert.Equal(t, 1, pin.Rank)
	assert.Equal(t, "Rumah Minimalis", pin.Title)
	assert.Equal(t, "Rp 850.000.000", pin.Price)
	assert.Equal(t, "https://www.google.com/maps?q=-6.4,106.8", pin.MapsURL)
}

func TestBuildMap_Notices(t *testing.T) {
	tests := []struct {
		name     string
		result   *models.RecommendationResult
		expected string
	}{
		{
			name:     "nil result",
			result:   nil,
			expected: NoticeNoLocationData,
		},
		{
			name: "no coordinates at all",
			result: &models.RecommendationResult{Recommendations: []models.Recommendation{
				{Rank: 1, Listing: models.Listing{Title: "a"}},
			}},
			expected: NoticeNoLocationData,
		},
		{
			name: "coordinates sent as null",
			result: &models.RecommendationResult{Recommendations: []models.Recommendation{
				{Rank: 1, Listing: models.Listing{Title: "a", Lat: models.Coordinate{Present: true}, Long: models.Coordinate{Present: true}}},
			}},
			expected: NoticeNoValidLocation,
		},
		{
			name: "coordinates present but invalid",
			result: &models.RecommendationResult{Recommendations: []models.Recommendation{
				{Rank: 1, Listing: models.Listing{Title: "a", Lat: models.Coordinate{Present: true}, Long: models.NewCoordinate(106.8)}},
				{Rank: 2, Listing: models.Listing{Title: "b", Lat: models.NewCoordinate(-6.2)}},
			}},
			expected: NoticeNoValidLocation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := BuildMap(tt.result)

			assert.Equal(t, tt.expected, view.Notice)
			assert.Empty(t, view.Pins)
			assert.Nil(t, view.Center)
		})
	}
}
