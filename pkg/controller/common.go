package controller

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/grid"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/observability"
)

// Gesture kinds reported to logs and hooks.
const (
	KindDrag    = "drag"
	KindResize  = "resize"
	KindRotate  = "rotate"
	KindSpacing = "spacing"
)

// Common holds the inputs every controller takes.
type Common struct {
	// ComponentID is the id placed on every dispatched action.
	ComponentID string
	// Dispatch receives actions. A nil dispatcher drops them.
	Dispatch action.Dispatcher
	// Container is the element being manipulated.
	Container dom.Element
	// Window delivers the gesture's move/up events.
	Window *input.Window
	// Disabled prevents gestures from starting.
	Disabled bool
	// Logger defaults to log.Default().
	Logger *log.Logger
}

// Grid configures grid snapping.
type Grid struct {
	GridEnabled bool
	GridCols    int
}

// unit returns the grid unit for el, or 0 when grid snapping is off or the
// element has no parent.
func (g Grid) unit(el dom.Element) float64 {
	if !g.GridEnabled || el == nil {
		return 0
	}
	parent := el.Parent()
	if parent == nil {
		return 0
	}
	return grid.Unit(parent.Offset().Width, g.GridCols)
}

func (c *Common) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// ready reports whether a gesture may start, logging why not.
func (c *Common) ready(kind string) bool {
	switch {
	case c.Disabled:
		c.logger().Debug("gesture ignored: disabled", "kind", kind, "id", c.ComponentID)
	case c.Container == nil:
		c.logger().Debug("gesture ignored: no container", "kind", kind, "id", c.ComponentID)
	case c.Window == nil:
		c.logger().Debug("gesture ignored: no window", "kind", kind, "id", c.ComponentID)
	default:
		return true
	}
	return false
}

func (c *Common) dispatch(kind string, a action.Action) {
	if c.Dispatch == nil {
		return
	}
	c.Dispatch(a)
	observability.Gestures().OnDispatch(kind, c.ComponentID, a.Type())
}

// session tracks the gesture shared by every controller: its listener set
// and timing for hooks.
type session struct {
	kind    string
	gesture *input.Gesture
	started time.Time
	moves   int
}

func (s *session) begin(c *Common, kind string, pointerID int) *input.Gesture {
	s.end(c)
	s.kind = kind
	s.gesture = input.Begin(c.Window, pointerID)
	s.started = time.Now()
	s.moves = 0
	observability.Gestures().OnGestureStart(kind, c.ComponentID)
	return s.gesture
}

func (s *session) active() bool { return s.gesture.Active() }

// end tears the gesture down. It reports whether a gesture was active.
func (s *session) end(c *Common) bool {
	if !s.gesture.Active() {
		return false
	}
	s.gesture.End()
	d := time.Since(s.started)
	observability.Gestures().OnGestureEnd(s.kind, c.ComponentID, s.moves, d)
	c.logger().Debug("gesture ended", "kind", s.kind, "id", c.ComponentID, "moves", s.moves, "duration", d)
	return true
}
