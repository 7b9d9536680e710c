package presenter

import (
	"fmt"
	"strconv"

	"house-recommendation-api/internal/models"

	"github.com/samber/lo"
)

// DefaultZoom is the initial zoom level of the recommendation map.
const DefaultZoom = 11

// Map notices.
const (
	NoticeNoLocationData  = "location data not available"
	NoticeNoValidLocation = "no valid location points"
)

// LatLng is a point on the map.
type LatLng struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

// Pin is a map marker for one recommended house.
type Pin struct {
	LatLng
	Rank      int    `json:"rank"`
	Title     string `json:"title"`
	Address   string `json:"address"`
	Price     string `json:"priceInRp"`
	Bedrooms  string `json:"bedrooms"`
	Bathrooms string `json:"bathrooms"`
	MapsURL   string `json:"mapsUrl"`
}

// MapView describes the recommendation map. Center is nil when there are no pins.
type MapView struct {
	Center *LatLng `json:"center,omitempty"`
	Zoom   int     `json:"zoom"`
	Pins   []Pin   `json:"pins"`
	Notice string  `json:"notice,omitempty"`
}

// GoogleMapsURL links to a point on Google Maps.
func GoogleMapsURL(lat, long float64) string {
	return fmt.Sprintf("https://www.google.com/maps?q=%s,%s",
		strconv.FormatFloat(lat, 'f', -1, 64), strconv.FormatFloat(long, 'f', -1, 64))
}

// BuildMap places a pin for every recommendation with a valid latitude and
// longitude and centers the map on their mean.
func BuildMap(result *models.RecommendationResult) MapView {
	view := MapView{Zoom: DefaultZoom, Pins: []Pin{}}

	var recs []models.Recommendation
	if result != nil {
		recs = result.Recommendations
	}

	located := lo.ContainsBy(recs, func(r models.Recommendation) bool {
		return r.Listing.Lat.Present || r.Listing.Long.Present
	})
	if !located {
		view.Notice = NoticeNoLocationData
		return view
	}

	for _, r := range recs {
		l := r.Listing
		if !l.Lat.Valid || !l.Long.Valid {
			continue
		}
		view.Pins = append(view.Pins, Pin{
			LatLng:    LatLng{Lat: l.Lat.Value, Long: l.Long.Value},
			Rank:      r.Rank,
			Title:     l.Title,
			Address:   l.Address,
			Price:     FormatRupiah(l.PriceInRp),
			Bedrooms:  FormatCount(l.Bedrooms),
			Bathrooms: FormatCount(l.Bathrooms),
			MapsURL:   GoogleMapsURL(l.Lat.Value, l.Long.Value),
		})
	}
	if len(view.Pins) == 0 {
		view.Notice = NoticeNoValidLocation
		return view
	}

	n := float64(len(view.Pins))
	view.Center = &LatLng{
		Lat:  lo.SumBy(view.Pins, func(p Pin) float64 { return p.Lat }) / n,
		Long: lo.SumBy(view.Pins, func(p Pin) float64 { return p.Long }) / n,
	}
	return view
}
