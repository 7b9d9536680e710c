package models

// PreferenceQuery holds what the user asked for. Nil fields are treated as 0.
type PreferenceQuery struct {
	MinPrice       *float64 `json:"minPrice"`
	MaxPrice       *float64 `json:"maxPrice"`
	Bedrooms       *float64 `json:"bedrooms"`
	Bathrooms      *float64 `json:"bathrooms"`
	Floors         *float64 `json:"floors"`
	Garages        *float64 `json:"garages"`
	LandSizeM2     *float64 `json:"landSizeM2"`
	BuildingSizeM2 *float64 `json:"buildingSizeM2"`
}

// Status describes how a recommendation run ended.
type Status string

const (
	StatusOK                Status = "ok"
	StatusDataUnavailable   Status = "data_unavailable"
	StatusNoListingsInRange Status = "no_listings_in_range"
)

// Recommendation pairs a listing with its distance to the preference vector.
type Recommendation struct {
	Rank     int     `json:"rank"`
	Distance float64 `json:"distance"`
	Listing  Listing `json:"listing"`
}

// RecommendationResult is the ordered output of one recommendation run,
// ascending by distance.
type RecommendationResult struct {
	Status          Status           `json:"status"`
	Notice          string           `json:"notice,omitempty"`
	Candidates      int              `json:"candidates"`
	Recommendations []Recommendation `json:"recommendations"`
}
