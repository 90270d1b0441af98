package controller

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/grid"
	"github.com/matzehuels/snapline/pkg/guides"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/observability"
)

// Handle identifies a resize handle by compass direction.
type Handle int

const (
	HandleN Handle = iota
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleNW
)

var handleNames = [...]string{"n", "ne", "e", "se", "s", "sw", "w", "nw"}

func (h Handle) String() string {
	if h < 0 || int(h) >= len(handleNames) {
		return fmt.Sprintf("Handle(%d)", int(h))
	}
	return handleNames[h]
}

// ParseHandle parses a compass handle name such as "se" or "W".
func ParseHandle(s string) (Handle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range handleNames {
		if s == name {
			return Handle(i), nil
		}
	}
	return 0, fmt.Errorf("invalid resize handle %q (must be one of %s)", s, strings.Join(handleNames[:], ", "))
}

// signs returns the direction each axis grows with the pointer delta:
// +1 for the east/south edge, -1 for the west/north edge, 0 if untouched.
func (h Handle) signs() (sx, sy int) {
	switch h {
	case HandleN:
		return 0, -1
	case HandleNE:
		return 1, -1
	case HandleE:
		return 1, 0
	case HandleSE:
		return 1, 1
	case HandleS:
		return 0, 1
	case HandleSW:
		return -1, 1
	case HandleW:
		return -1, 0
	case HandleNW:
		return -1, -1
	}
	return 0, 0
}

// KeyboardReadoutDuration is how long the nudge readout stays visible after
// the last keyboard nudge.
const KeyboardReadoutDuration = 800 * time.Millisecond

// ResizeOptions configures a [Resize].
type ResizeOptions struct {
	Common
	Grid

	// WidthKey and HeightKey name the dispatched size fields. They default
	// to "width" and "height".
	WidthKey  string
	HeightKey string

	// WidthVal and HeightVal are the stored sizes. Pixel values seed the
	// gesture; anything else falls back to the rendered size.
	WidthVal  string
	HeightVal string

	// Now is the clock used by the keyboard readout. Defaults to time.Now.
	Now func() time.Time
}

func (o *ResizeOptions) widthKey() string {
	if o.WidthKey == "" {
		return "width"
	}
	return o.WidthKey
}

func (o *ResizeOptions) heightKey() string {
	if o.HeightKey == "" {
		return "height"
	}
	return o.HeightKey
}

func (o *ResizeOptions) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// size returns the stored size when it is in pixels, else the rendered one.
func (o *ResizeOptions) size() (w, h float64) {
	box := o.Container.Offset()
	w, h = box.Width, box.Height
	if v, ok := geom.ParsePx(o.WidthVal); ok {
		w = v
	}
	if v, ok := geom.ParsePx(o.HeightVal); ok {
		h = v
	}
	return w, h
}

type resizeStart struct {
	pointer       geom.Point
	handle        Handle
	left, top     float64
	width, height float64
}

// Resize changes an element's size from one of eight handles.
type Resize struct {
	Options ResizeOptions

	engine   guides.Engine
	session  session
	start    resizeStart
	snapping bool

	kbUntil time.Time
	kbW     float64
	kbH     float64
}

// NewResize creates a resize controller.
func NewResize(opts ResizeOptions) *Resize {
	return &Resize{Options: opts}
}

// Start begins a resize from handle h. It is a no-op when the controller is
// disabled, has no container or the container has no parent.
func (r *Resize) Start(e input.PointerEvent, h Handle) {
	o := &r.Options
	if !o.ready(KindResize) {
		return
	}
	if o.Container.Parent() == nil {
		o.logger().Debug("gesture ignored: no parent", "kind", KindResize, "id", o.ComponentID)
		return
	}
	box := o.Container.Offset()
	w, hgt := o.size()
	r.start = resizeStart{
		pointer: geom.Point{X: e.X, Y: e.Y},
		handle:  h,
		left:    box.Left,
		top:     box.Top,
		width:   w,
		height:  hgt,
	}
	r.snapping = false
	r.engine.Capture(o.Container)

	g := r.session.begin(&o.Common, KindResize, e.PointerID)
	g.OnMove(r.move)
	g.OnUp(func(input.PointerEvent) { r.end() })

	o.logger().Debug("resize started", "id", o.ComponentID, "handle", h, "width", w, "height", hgt)
}

// axis is the outcome of resizing along one dimension.
type axis struct {
	size    geom.Length
	pos     float64
	guide   *float64
	snapped bool
}

// resizeAxis applies the snap rules to one dimension. sign selects the
// moving edge; a west/north edge moves the position and keeps the opposite
// edge fixed.
func (r *Resize) resizeAxis(sign int, pos, size, delta, parent float64, edges []float64, unit float64, full bool) axis {
	o := &r.Options
	far := pos + size
	candidate := size + float64(sign)*delta

	if full || math.Abs(candidate-parent) <= guides.Threshold {
		observability.Gestures().OnSnap(KindResize, o.ComponentID, "full")
		res := axis{size: geom.Full, pos: pos, snapped: true}
		if sign < 0 {
			res.pos = 0
		}
		return res
	}

	snapped := false
	var guide *float64
	if sign > 0 {
		if edge, ok := guides.SnapEdge(pos+candidate, edges, guides.Threshold); ok {
			candidate = edge - pos
			guide = guides.Ptr(candidate)
			snapped = true
		}
	} else {
		if edge, ok := guides.SnapEdge(far-candidate, edges, guides.Threshold); ok {
			candidate = far - edge
			guide = guides.Ptr(0)
			snapped = true
		}
	}
	if snapped {
		observability.Gestures().OnSnap(KindResize, o.ComponentID, "sibling")
	} else if unit > 0 {
		candidate = grid.Snap(candidate, unit)
		if sign > 0 {
			guide = guides.Ptr(candidate)
		} else {
			guide = guides.Ptr(0)
		}
		snapped = true
		observability.Gestures().OnSnap(KindResize, o.ComponentID, "grid")
	}

	candidate = math.Max(candidate, 0)
	if sign < 0 {
		pos = far - candidate
	}
	return axis{size: geom.Px(candidate), pos: pos, guide: guide, snapped: snapped}
}

func (r *Resize) move(e input.PointerEvent) {
	o := &r.Options
	r.session.moves++
	s := r.start
	parent := o.Container.Parent()
	if parent == nil {
		return
	}
	pbox := parent.Offset()
	edges := r.engine.Edges()
	unit := o.unit(o.Container)
	full := e.Shift || e.Alt
	sx, sy := s.handle.signs()

	a := action.NewResize(o.ComponentID)
	var g guides.Guides
	r.snapping = false

	if sx != 0 {
		x := r.resizeAxis(sx, s.left, s.width, e.X-s.pointer.X, pbox.Width, edges.Vertical, unit, full)
		a.Set(o.widthKey(), x.size.String())
		if sx < 0 {
			a.Set(action.FieldLeft, geom.FormatPx(x.pos))
		}
		g.X = x.guide
		r.snapping = r.snapping || x.snapped
	}
	if sy != 0 {
		y := r.resizeAxis(sy, s.top, s.height, e.Y-s.pointer.Y, pbox.Height, edges.Horizontal, unit, full)
		a.Set(o.heightKey(), y.size.String())
		if sy < 0 {
			a.Set(action.FieldTop, geom.FormatPx(y.pos))
		}
		g.Y = y.guide
		r.snapping = r.snapping || y.snapped
	}

	r.engine.Set(g)
	o.dispatch(KindResize, a)
}

func (r *Resize) end() {
	if r.session.end(&r.Options.Common) {
		r.snapping = false
		r.engine.Clear()
	}
}

// NudgeByKeyboard resizes by one step per arrow key: one grid unit when the
// grid is on, otherwise 1px or 10px with Alt. Shift and Ctrl do not change
// the step. Left/Right change the width, Up/Down the height. It reports
// whether the event was handled.
func (r *Resize) NudgeByKeyboard(e input.KeyEvent) bool {
	o := &r.Options
	if !e.IsArrow() || o.Disabled || o.Container == nil {
		return false
	}
	step := 1.0
	if e.Alt {
		step = 10
	}
	if unit := o.unit(o.Container); unit > 0 {
		step = unit
	}

	w, h := o.size()
	a := action.NewResize(o.ComponentID)
	switch e.Key {
	case input.KeyArrowLeft:
		w = math.Max(w-step, 0)
		a.Set(o.widthKey(), geom.FormatPx(w))
	case input.KeyArrowRight:
		w += step
		a.Set(o.widthKey(), geom.FormatPx(w))
	case input.KeyArrowUp:
		h = math.Max(h-step, 0)
		a.Set(o.heightKey(), geom.FormatPx(h))
	case input.KeyArrowDown:
		h += step
		a.Set(o.heightKey(), geom.FormatPx(h))
	}
	r.kbW, r.kbH = w, h
	r.kbUntil = o.now().Add(KeyboardReadoutDuration)
	o.dispatch(KindResize, a)
	o.logger().Debug("keyboard resize", "id", o.ComponentID, "key", e.Key, "width", w, "height", h)
	return true
}

// KeyboardResizing reports whether a keyboard nudge happened within the
// last [KeyboardReadoutDuration].
func (r *Resize) KeyboardResizing() bool {
	return !r.kbUntil.IsZero() && r.Options.now().Before(r.kbUntil)
}

// Readout returns the "<w>×<h>" size text for the keyboard readout, or ""
// once it has expired.
func (r *Resize) Readout() string {
	if !r.KeyboardResizing() {
		return ""
	}
	return geom.FormatNumber(r.kbW) + "×" + geom.FormatNumber(r.kbH)
}

// Snapping reports whether any snap rule fired on the latest move.
func (r *Resize) Snapping() bool { return r.snapping }

// Guides returns the current guide lines.
func (r *Resize) Guides() guides.Guides { return r.engine.Guides() }

// ObserveGuides registers fn to receive every guide update.
func (r *Resize) ObserveGuides(fn func(guides.Guides)) { r.engine.Observe(fn) }

// Active reports whether a resize is in progress.
func (r *Resize) Active() bool { return r.session.active() }

// Close ends any in-flight resize.
func (r *Resize) Close() { r.end() }
