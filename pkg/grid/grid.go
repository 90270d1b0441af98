// Package grid quantizes positions and sizes onto an optional layout grid.
//
// The grid unit is always the parent container's width divided by the
// number of grid columns. Every gesture controller uses [Snap] after its
// sibling-edge rules have run.
package grid

import "github.com/matzehuels/snapline/pkg/geom"

// Snap rounds value to the nearest multiple of unit. Exact halves round to
// the higher multiple. A non-positive unit leaves value unchanged.
func Snap(value, unit float64) float64 {
	return geom.RoundTo(value, unit)
}

// Unit returns parentWidth / cols, or 0 when cols is not positive.
func Unit(parentWidth float64, cols int) float64 {
	if cols <= 0 {
		return 0
	}
	return parentWidth / float64(cols)
}
