package presenter

import (
	"house-recommendation-api/internal/models"

	"github.com/samber/lo"
)

// Columns is the header of the recommendation table, in display order.
var Columns = []string{
	"title", "priceInRp", "address", "city", "bedrooms", "bathrooms",
	"landSizeM2", "buildingSizeM2", "floors", "garages", "distance",
}

// Row is one formatted recommendation.
type Row struct {
	Rank           int    `json:"rank"`
	Title          string `json:"title"`
	Price          string `json:"priceInRp"`
	Address        string `json:"address"`
	City           string `json:"city"`
	Bedrooms       string `json:"bedrooms"`
	Bathrooms      string `json:"bathrooms"`
	LandSizeM2     string `json:"landSizeM2"`
	BuildingSizeM2 string `json:"buildingSizeM2"`
	Floors         string `json:"floors"`
	Garages        string `json:"garages"`
	Distance       string `json:"distance"`
}

// Rows formats every recommendation in result order.
func Rows(result *models.RecommendationResult) []Row {
	if result == nil {
		return []Row{}
	}
	return lo.Map(result.Recommendations, func(r models.Recommendation, _ int) Row {
		l := r.Listing
		return Row{
			Rank:           r.Rank,
			Title:          l.Title,
			Price:          FormatRupiah(l.PriceInRp),
			Address:        l.Address,
			City:           l.City,
			Bedrooms:       FormatCount(l.Bedrooms),
			Bathrooms:      FormatCount(l.Bathrooms),
			LandSizeM2:     FormatArea(l.LandSizeM2),
			BuildingSizeM2: FormatArea(l.BuildingSizeM2),
			Floors:         FormatCount(l.Floors),
			Garages:        FormatCount(l.Garages),
			Distance:       FormatDistance(r.Distance),
		}
	})
}

func (r Row) record() []string {
	return []string{
		r.Title, r.Price, r.Address, r.City, r.Bedrooms, r.Bathrooms,
		r.LandSizeM2, r.BuildingSizeM2, r.Floors, r.Garages, r.Distance,
	}
}
