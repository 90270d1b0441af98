package spacing

import "github.com/matzehuels/snapline/pkg/geom"

// Overlay returns the highlight rectangle for editing side s of kind k to
// value v on an element of size w×h, in the element's own frame. Padding
// bands sit inside the box against the edited edge; margin bands sit
// outside it. Negative margins produce a band reaching into the box.
func Overlay(k Kind, s Side, v, w, h float64) geom.Rect {
	var r geom.Rect
	if k == Padding {
		switch s {
		case Top:
			r = geom.Rect{Left: 0, Top: 0, Width: w, Height: v}
		case Bottom:
			r = geom.Rect{Left: 0, Top: h - v, Width: w, Height: v}
		case Left:
			r = geom.Rect{Left: 0, Top: 0, Width: v, Height: h}
		case Right:
			r = geom.Rect{Left: w - v, Top: 0, Width: v, Height: h}
		}
		return r.Canon()
	}
	switch s {
	case Top:
		r = geom.Rect{Left: 0, Top: -v, Width: w, Height: v}
	case Bottom:
		r = geom.Rect{Left: 0, Top: h, Width: w, Height: v}
	case Left:
		r = geom.Rect{Left: -v, Top: 0, Width: v, Height: h}
	case Right:
		r = geom.Rect{Left: w, Top: 0, Width: v, Height: h}
	}
	return r.Canon()
}
