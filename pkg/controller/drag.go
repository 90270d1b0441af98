package controller

import (
	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/grid"
	"github.com/matzehuels/snapline/pkg/guides"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/observability"
)

// DragOptions configures a [Drag].
type DragOptions struct {
	Common
	Grid
}

// dragStart is the gesture-start snapshot.
type dragStart struct {
	pointer   geom.Point
	left, top float64
}

// Drag translates an element by the pointer delta.
type Drag struct {
	Options DragOptions

	engine  guides.Engine
	session session
	start   dragStart
}

// NewDrag creates a drag controller.
func NewDrag(opts DragOptions) *Drag {
	return &Drag{Options: opts}
}

// Start begins a drag from a pointer-down. It is a no-op when the
// controller is disabled or has no container.
func (d *Drag) Start(e input.PointerEvent) {
	o := &d.Options
	if !o.ready(KindDrag) {
		return
	}
	box := o.Container.Offset()
	d.start = dragStart{
		pointer: geom.Point{X: e.X, Y: e.Y},
		left:    box.Left,
		top:     box.Top,
	}
	edges := d.engine.Capture(o.Container)

	g := d.session.begin(&o.Common, KindDrag, e.PointerID)
	g.OnMove(d.move)
	g.OnUp(func(input.PointerEvent) { d.end() })

	o.logger().Debug("drag started", "id", o.ComponentID, "left", box.Left, "top", box.Top,
		"edges", len(edges.Vertical)+len(edges.Horizontal))
}

func (d *Drag) move(e input.PointerEvent) {
	o := &d.Options
	d.session.moves++
	box := o.Container.Offset()
	edges := d.engine.Edges()

	left := d.start.left + (e.X - d.start.pointer.X)
	top := d.start.top + (e.Y - d.start.pointer.Y)

	left, vline := guides.SnapSpan(left, box.Width, edges.Vertical, guides.Threshold)
	top, hline := guides.SnapSpan(top, box.Height, edges.Horizontal, guides.Threshold)
	if vline != nil || hline != nil {
		observability.Gestures().OnSnap(KindDrag, o.ComponentID, "sibling")
	}

	if unit := o.unit(o.Container); unit > 0 {
		left = grid.Snap(left, unit)
		top = grid.Snap(top, unit)
		observability.Gestures().OnSnap(KindDrag, o.ComponentID, "grid")
	}

	var g guides.Guides
	if vline != nil {
		g.X = guides.Ptr(*vline - left)
	}
	if hline != nil {
		g.Y = guides.Ptr(*hline - top)
	}
	d.engine.Set(g)

	o.dispatch(KindDrag, action.NewResize(o.ComponentID).
		Set(action.FieldLeft, geom.FormatPx(left)).
		Set(action.FieldTop, geom.FormatPx(top)))
}

func (d *Drag) end() {
	if d.session.end(&d.Options.Common) {
		d.engine.Clear()
	}
}

// Guides returns the current guide lines.
func (d *Drag) Guides() guides.Guides { return d.engine.Guides() }

// ObserveGuides registers fn to receive every guide update.
func (d *Drag) ObserveGuides(fn func(guides.Guides)) { d.engine.Observe(fn) }

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool { return d.session.active() }

// Close ends any in-flight drag.
func (d *Drag) Close() { d.end() }
