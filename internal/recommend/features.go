// Package recommend ranks house listings by similarity to a preference query:
// price-range filtering, min-max feature scaling and an exact k-nearest-neighbor
// scan over seven numeric features.
package recommend

import (
	"house-recommendation-api/internal/models"

	"github.com/samber/lo"
)

// NumFeatures is the dimension of every FeatureVector.
const NumFeatures = 7

// Feature column indexes. Listing and preference vectors share this order.
const (
	FeaturePrice = iota
	FeatureBedrooms
	FeatureBathrooms
	FeatureLandSize
	FeatureBuildingSize
	FeatureFloors
	FeatureGarages
)

// FeatureNames lists the source field of each column, in column order.
var FeatureNames = [NumFeatures]string{
	"priceInRp",
	"bedrooms",
	"bathrooms",
	"landSizeM2",
	"buildingSizeM2",
	"floors",
	"garages",
}

// MissingValue is what a missing numeric field counts as.
const MissingValue = 0.0

// FeatureVector is a fixed-order numeric summary of a listing or a query.
type FeatureVector [NumFeatures]float64

// FillMissing is the fill policy shared by listing and preference extraction.
func FillMissing(v *float64) float64 {
	if v == nil {
		return MissingValue
	}
	return *v
}

// ListingFeatures extracts the raw feature vector of a listing.
func ListingFeatures(l models.Listing) FeatureVector {
	return FeatureVector{
		FeaturePrice:        FillMissing(l.PriceInRp),
		FeatureBedrooms:     FillMissing(l.Bedrooms),
		FeatureBathrooms:    FillMissing(l.Bathrooms),
		FeatureLandSize:     FillMissing(l.LandSizeM2),
		FeatureBuildingSize: FillMissing(l.BuildingSizeM2),
		FeatureFloors:       FillMissing(l.Floors),
		FeatureGarages:      FillMissing(l.Garages),
	}
}

// PreferenceFeatures builds the raw feature vector of a query. The price
// component is the budget ceiling, not the floor or a midpoint.
func PreferenceFeatures(q models.PreferenceQuery) FeatureVector {
	return FeatureVector{
		FeaturePrice:        FillMissing(q.MaxPrice),
		FeatureBedrooms:     FillMissing(q.Bedrooms),
		FeatureBathrooms:    FillMissing(q.Bathrooms),
		FeatureLandSize:     FillMissing(q.LandSizeM2),
		FeatureBuildingSize: FillMissing(q.BuildingSizeM2),
		FeatureFloors:       FillMissing(q.Floors),
		FeatureGarages:      FillMissing(q.Garages),
	}
}

// ListingMatrix extracts the feature vectors of all listings, in order.
func ListingMatrix(listings []models.Listing) []FeatureVector {
	return lo.Map(listings, func(l models.Listing, _ int) FeatureVector {
		return ListingFeatures(l)
	})
}
