package models

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Listing is a single house record as returned by the listing service. Any of the
// numeric feature fields may be missing, in which case the pointer is nil.
type Listing struct {
	ID             int64      `json:"id,omitempty"`
	Title          string     `json:"title"`
	Address        string     `json:"address"`
	City           string     `json:"city"`
	PriceInRp      *float64   `json:"priceInRp"`
	Bedrooms       *float64   `json:"bedrooms"`
	Bathrooms      *float64   `json:"bathrooms"`
	LandSizeM2     *float64   `json:"landSizeM2"`
	BuildingSizeM2 *float64   `json:"buildingSizeM2"`
	Floors         *float64   `json:"floors"`
	Garages        *float64   `json:"garages"`
	Lat            Coordinate `json:"lat"`
	Long           Coordinate `json:"long"`
}

// UnmarshalJSON implements json.Unmarshaler. Numeric features may arrive as numbers
// or numeric strings; anything else counts as missing instead of failing the
// whole table.
func (l *Listing) UnmarshalJSON(data []byte) error {
	type listing Listing
	var raw struct {
		listing
		PriceInRp      looseNumber `json:"priceInRp"`
		Bedrooms       looseNumber `json:"bedrooms"`
		Bathrooms      looseNumber `json:"bathrooms"`
		LandSizeM2     looseNumber `json:"landSizeM2"`
		BuildingSizeM2 looseNumber `json:"buildingSizeM2"`
		Floors         looseNumber `json:"floors"`
		Garages        looseNumber `json:"garages"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*l = Listing(raw.listing)
	l.PriceInRp = raw.PriceInRp.v
	l.Bedrooms = raw.Bedrooms.v
	l.Bathrooms = raw.Bathrooms.v
	l.LandSizeM2 = raw.LandSizeM2.v
	l.BuildingSizeM2 = raw.BuildingSizeM2.v
	l.Floors = raw.Floors.v
	l.Garages = raw.Garages.v
	return nil
}

// looseNumber decodes a number or numeric string; everything else leaves v nil.
type looseNumber struct {
	v *float64
}

func (n *looseNumber) UnmarshalJSON(data []byte) error {
	n.v = nil
	if v, ok := parseLooseFloat(data); ok {
		n.v = &v
	}
	return nil
}

// parseLooseFloat accepts a JSON number or a string holding one. NaN and Inf are rejected.
func parseLooseFloat(data []byte) (float64, bool) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return 0, false
	}
	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return 0, false
		}
		raw = strings.TrimSpace(s)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Coordinate is a latitude or longitude as delivered by the listing service, which
// may send numbers, numeric strings, garbage or nothing at all. Present records
// that the field was sent, even as null; Valid that it held a usable number.
type Coordinate struct {
	Value   float64
	Present bool
	Valid   bool
}

// NewCoordinate returns a valid coordinate.
func NewCoordinate(v float64) Coordinate {
	return Coordinate{Value: v, Present: true, Valid: !math.IsNaN(v) && !math.IsInf(v, 0)}
}

// UnmarshalJSON implements json.Unmarshaler. It only runs when the field was sent.
func (c *Coordinate) UnmarshalJSON(data []byte) error {
	*c = Coordinate{Present: true}
	if v, ok := parseLooseFloat(data); ok {
		c.Value = v
		c.Valid = true
	}
	return nil
}

// MarshalJSON implements json.Marshaler. Invalid coordinates are written as null.
func (c Coordinate) MarshalJSON() ([]byte, error) {
	if !c.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatFloat(c.Value, 'f', -1, 64)), nil
}
