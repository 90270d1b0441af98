package guides

import "github.com/matzehuels/snapline/pkg/dom"

// Engine holds one gesture's sibling-edge snapshot and the guide state it
// publishes.
type Engine struct {
	edges     SiblingEdges
	guides    Guides
	observers []func(Guides)
}

// Capture snapshots the sibling edges of el.
func (e *Engine) Capture(el dom.Element) SiblingEdges {
	e.edges = ComputeSiblingEdges(el)
	return e.edges
}

// Edges returns the current snapshot.
func (e *Engine) Edges() SiblingEdges { return e.edges }

// Guides returns the current guide state.
func (e *Engine) Guides() Guides { return e.guides }

// Set publishes g.
func (e *Engine) Set(g Guides) {
	e.guides = g
	for _, fn := range e.observers {
		fn(g)
	}
}

// Clear resets the guides to {nil, nil} and drops the edge snapshot.
func (e *Engine) Clear() {
	e.edges = SiblingEdges{}
	e.Set(Guides{})
}

// Observe registers fn to receive every published guide state.
func (e *Engine) Observe(fn func(Guides)) {
	e.observers = append(e.observers, fn)
}
