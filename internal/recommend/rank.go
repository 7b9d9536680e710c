package recommend

import "house-recommendation-api/internal/models"

// Rank scales the listings, scales the query with the listing-fitted Scale and
// returns the k nearest listings with their distances. listings should already be
// price-filtered; an empty slice yields no recommendations.
func Rank(listings []models.Listing, q models.PreferenceQuery, k int) []models.Recommendation {
	if len(listings) == 0 {
		return []models.Recommendation{}
	}

	points, scale := FitTransform(ListingMatrix(listings))
	query := scale.Transform(PreferenceFeatures(q))

	neighbors := Nearest(points, query, k)
	out := make([]models.Recommendation, len(neighbors))
	for i, n := range neighbors {
		out[i] = models.Recommendation{
			Rank:     i + 1,
			Distance: n.Distance,
			Listing:  listings[n.Index],
		}
	}
	return out
}
