// Package presenter turns recommendation results into table rows, CSV exports
// and map pins.
package presenter

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Indonesian)

// FormatRupiah renders a price as "Rp 1.500.000". Missing prices render as "Rp 0".
func FormatRupiah(v *float64) string {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return "Rp 0"
	}
	r := math.Round(*v)
	if r == 0 {
		r = 0 // drops the sign of -0
	}
	return printer.Sprintf("Rp %.0f", r)
}

// FormatArea renders an area as "80 m²", truncating to whole square metres.
func FormatArea(v *float64) string {
	n := 0.0
	if v != nil && !math.IsNaN(*v) && !math.IsInf(*v, 0) {
		n = math.Trunc(*v)
	}
	return strconv.FormatInt(int64(n), 10) + " m²"
}

// FormatCount renders a room or floor count; missing counts render empty.
func FormatCount(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// FormatDistance renders a distance with six decimals.
func FormatDistance(d float64) string {
	return strconv.FormatFloat(d, 'f', 6, 64)
}
