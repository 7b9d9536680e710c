package recommend

import (
	"house-recommendation-api/internal/models"

	"github.com/samber/lo"
)

// FilterByPrice keeps listings whose price lies in [minPrice, maxPrice], both ends
// inclusive. A missing price counts as MissingValue. Input order is preserved.
func FilterByPrice(listings []models.Listing, minPrice, maxPrice float64) []models.Listing {
	return lo.Filter(listings, func(l models.Listing, _ int) bool {
		return InPriceRange(l, minPrice, maxPrice)
	})
}

// InPriceRange reports whether a listing passes the price filter.
func InPriceRange(l models.Listing, minPrice, maxPrice float64) bool {
	p := FillMissing(l.PriceInRp)
	return p >= minPrice && p <= maxPrice
}
