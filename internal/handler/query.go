package handler

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"house-recommendation-api/internal/models"

	"github.com/gin-gonic/gin"
)

// Query defaults, matching the dashboard's initial form values.
const (
	DefaultMinPrice       = 0
	DefaultMaxPrice       = 1_000_000_000
	DefaultBedrooms       = 3
	DefaultBathrooms      = 2
	DefaultFloors         = 1
	DefaultGarages        = 1
	DefaultLandSizeM2     = 100
	DefaultBuildingSizeM2 = 80
)

type floatParam struct {
	name     string
	def      float64
	min, max float64
	dst      **float64
}

// parsePreference reads a preference query from the URL query string, falling back
// to defaults for absent parameters.
func parsePreference(c *gin.Context) (models.PreferenceQuery, error) {
	var q models.PreferenceQuery
	unbounded := math.Inf(1)
	params := []floatParam{
		{name: "min_price", def: DefaultMinPrice, max: unbounded, dst: &q.MinPrice},
		{name: "max_price", def: DefaultMaxPrice, max: unbounded, dst: &q.MaxPrice},
		{name: "bedrooms", def: DefaultBedrooms, max: 10, dst: &q.Bedrooms},
		{name: "bathrooms", def: DefaultBathrooms, max: 10, dst: &q.Bathrooms},
		{name: "floors", def: DefaultFloors, max: 5, dst: &q.Floors},
		{name: "garages", def: DefaultGarages, max: 5, dst: &q.Garages},
		{name: "land_size_m2", def: DefaultLandSizeM2, max: unbounded, dst: &q.LandSizeM2},
		{name: "building_size_m2", def: DefaultBuildingSizeM2, max: unbounded, dst: &q.BuildingSizeM2},
	}
	for _, p := range params {
		v, err := parseFloat(c, p.name, p.def)
		if err != nil {
			return q, err
		}
		if v < p.min || v > p.max {
			return q, fmt.Errorf("query parameter '%s' out of range", p.name)
		}
		*p.dst = &v
	}
	return q, nil
}

func parseBrowse(c *gin.Context) (models.BrowseQuery, error) {
	q := models.BrowseQuery{City: c.Query("city")}
	var err error
	if q.MinPrice, err = parseFloat(c, "min_price", DefaultMinPrice); err != nil {
		return q, err
	}
	if q.MaxPrice, err = parseFloat(c, "max_price", math.MaxFloat64); err != nil {
		return q, err
	}
	if q.Limit, err = parseInt(c, "limit", 0); err != nil {
		return q, err
	}
	if q.Offset, err = parseInt(c, "offset", 0); err != nil {
		return q, err
	}
	return q, nil
}

func parseFloat(c *gin.Context, name string, def float64) (float64, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("invalid query parameter '%s'", name)
	}
	return v, nil
}

func parseInt(c *gin.Context, name string, def int) (int, error) {
	raw := strings.TrimSpace(c.Query(name))
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid query parameter '%s'", name)
	}
	return v, nil
}
