package geom

// Point is a position in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Sub returns the vector from q to p.
func (p Point) Sub(q Point) Point { return Point{X: p.X - q.X, Y: p.Y - q.Y} }

// Rect is an axis-aligned box. Left/Top are offsets from the containing
// element (or the viewport for bounding rectangles).
type Rect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Right returns the horizontal position of the far edge.
func (r Rect) Right() float64 { return r.Left + r.Width }

// Bottom returns the vertical position of the far edge.
func (r Rect) Bottom() float64 { return r.Top + r.Height }

// Center returns the midpoint of the box.
func (r Rect) Center() Point {
	return Point{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy float64) Rect {
	r.Left += dx
	r.Top += dy
	return r
}

// Canon returns an equivalent rectangle with non-negative width and height.
// A negative extent is flipped by moving the origin to the opposite edge.
func (r Rect) Canon() Rect {
	if r.Width < 0 {
		r.Left += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Top += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right() && p.Y >= r.Top && p.Y <= r.Bottom()
}
