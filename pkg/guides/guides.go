package guides

import "github.com/matzehuels/snapline/pkg/dom"

// Threshold is the snap distance in pixels.
const Threshold = 10.0

// Guides holds the active guide lines. A nil axis has no active snap.
type Guides struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

// At returns guides for the given positions.
func At(x, y float64) Guides { return Guides{X: &x, Y: &y} }

// Empty reports whether no guide is active.
func (g Guides) Empty() bool { return g.X == nil && g.Y == nil }

// Equal compares two guide sets by value.
func (g Guides) Equal(o Guides) bool {
	return eqPtr(g.X, o.X) && eqPtr(g.Y, o.Y)
}

func eqPtr(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Ptr returns a pointer to v.
func Ptr(v float64) *float64 { return &v }

// SiblingEdges are the alignment targets relative to the shared parent.
type SiblingEdges struct {
	Vertical   []float64 `json:"vertical"`
	Horizontal []float64 `json:"horizontal"`
}

// ComputeSiblingEdges collects the edges of every other child of el's
// parent. Without a parent both lists are empty.
func ComputeSiblingEdges(el dom.Element) SiblingEdges {
	edges := SiblingEdges{Vertical: []float64{}, Horizontal: []float64{}}
	if el == nil {
		return edges
	}
	parent := el.Parent()
	if parent == nil {
		return edges
	}
	for _, sib := range parent.Children() {
		if sib == el {
			continue
		}
		r := sib.Offset()
		edges.Vertical = append(edges.Vertical, r.Left, r.Right())
		edges.Horizontal = append(edges.Horizontal, r.Top, r.Bottom())
	}
	return edges
}
