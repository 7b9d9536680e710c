package recommend

import (
	"cmp"
	"math"
	"slices"
)

// DefaultK is how many neighbors a recommendation returns at most.
const DefaultK = 50

// Neighbor is one match: the index of the point in the searched slice and its
// Euclidean distance to the query.
type Neighbor struct {
	Index    int
	Distance float64
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b FeatureVector) float64 {
	var sum float64
	for c := 0; c < NumFeatures; c++ {
		d := a[c] - b[c]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// Nearest returns the min(k, len(points)) points closest to query, ascending by
// distance. Equal distances keep the order of points. The scan is exact.
func Nearest(points []FeatureVector, query FeatureVector, k int) []Neighbor {
	if k <= 0 || len(points) == 0 {
		return []Neighbor{}
	}

	all := make([]Neighbor, len(points))
	for i, p := range points {
		all[i] = Neighbor{Index: i, Distance: Distance(p, query)}
	}

	slices.SortStableFunc(all, func(a, b Neighbor) int {
		return cmp.Compare(a.Distance, b.Distance)
	})

	if k < len(all) {
		all = all[:k]
	}
	return all
}
