package guides

import "math"

// SnapSpan snaps a span [pos, pos+size] against edges. Both the near and
// far edge are tested against every edge in order; the last match wins.
// It returns the adjusted position and the matched edge, if any.
func SnapSpan(pos, size float64, edges []float64, threshold float64) (float64, *float64) {
	var line *float64
	next := pos
	for _, e := range edges {
		if math.Abs(next-e) <= threshold {
			next = e
			line = Ptr(e)
		}
		if math.Abs(next+size-e) <= threshold {
			next = e - size
			line = Ptr(e)
		}
	}
	return next, line
}

// SnapEdge snaps a single edge position against edges, last match wins.
func SnapEdge(pos float64, edges []float64, threshold float64) (float64, bool) {
	snapped, ok := pos, false
	for _, e := range edges {
		if math.Abs(pos-e) <= threshold {
			snapped, ok = e, true
		}
	}
	return snapped, ok
}
