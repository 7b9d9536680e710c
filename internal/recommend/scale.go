package recommend

// Scale holds per-column min-max parameters fitted on a listing set. It is a
// plain value: fit it once on the filtered listings, then apply the same Scale to
// the preference vector.
type Scale struct {
	Min FeatureVector
	Max FeatureVector
}

// FitScale records the observed minimum and maximum of every column. An empty
// input yields the zero Scale.
func FitScale(points []FeatureVector) Scale {
	var s Scale
	if len(points) == 0 {
		return s
	}
	s.Min = points[0]
	s.Max = points[0]
	for _, p := range points[1:] {
		for c := 0; c < NumFeatures; c++ {
			if p[c] < s.Min[c] {
				s.Min[c] = p[c]
			}
			if p[c] > s.Max[c] {
				s.Max[c] = p[c]
			}
		}
	}
	return s
}

// Degenerate reports whether column c had zero variance in the fitted set.
func (s Scale) Degenerate(c int) bool {
	return s.Max[c] == s.Min[c]
}

// Transform maps v into the fitted range. A zero-variance column uses a divisor of
// 1, so fitted values become 0 and outside values keep their offset from the
// column minimum. Values outside the fitted range are not clamped.
func (s Scale) Transform(v FeatureVector) FeatureVector {
	var out FeatureVector
	for c := 0; c < NumFeatures; c++ {
		span := s.Max[c] - s.Min[c]
		if span == 0 {
			span = 1
		}
		out[c] = (v[c] - s.Min[c]) / span
	}
	return out
}

// TransformAll applies Transform to every point and returns a new slice.
func (s Scale) TransformAll(points []FeatureVector) []FeatureVector {
	out := make([]FeatureVector, len(points))
	for i, p := range points {
		out[i] = s.Transform(p)
	}
	return out
}

// FitTransform fits a Scale on points and returns the scaled points with it.
func FitTransform(points []FeatureVector) ([]FeatureVector, Scale) {
	s := FitScale(points)
	return s.TransformAll(points), s
}
