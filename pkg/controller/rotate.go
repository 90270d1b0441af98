package controller

import (
	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/observability"
	"github.com/matzehuels/snapline/pkg/styles"
)

// RotationStep is the increment rotations snap to unless Shift is held.
const RotationStep = 15.0

// RotateOptions configures a [Rotate].
type RotateOptions struct {
	Common

	// StylesVal is the element's style-overrides JSON.
	StylesVal string
}

type rotateStart struct {
	center       geom.Point
	pointerAngle float64
	valueAngle   float64
	styles       string
}

// Rotate turns an element around its center.
type Rotate struct {
	Options RotateOptions

	session session
	start   rotateStart
	angle   float64
}

// NewRotate creates a rotate controller.
func NewRotate(opts RotateOptions) *Rotate {
	return &Rotate{Options: opts, angle: styles.RotationOf(opts.StylesVal)}
}

// Start begins a rotation. Pointer capture on e.Target is attempted and
// released when the gesture ends.
func (r *Rotate) Start(e input.PointerEvent) {
	o := &r.Options
	if !o.ready(KindRotate) {
		return
	}
	c := o.Container.BoundingClientRect().Center()
	r.start = rotateStart{
		center:       c,
		pointerAngle: geom.Degrees(e.Y-c.Y, e.X-c.X),
		valueAngle:   styles.RotationOf(o.StylesVal),
		styles:       o.StylesVal,
	}
	r.angle = r.start.valueAngle

	g := r.session.begin(&o.Common, KindRotate, e.PointerID)
	g.Capture(e.Target)
	g.OnMove(r.move)
	g.OnUp(func(input.PointerEvent) { r.end() })
	g.OnBlur(r.end)
	g.OnKey(func(k input.KeyEvent) {
		if k.Key == input.KeyEscape {
			r.end()
		}
	})

	o.logger().Debug("rotate started", "id", o.ComponentID, "angle", r.angle)
}

func (r *Rotate) move(e input.PointerEvent) {
	o := &r.Options
	r.session.moves++
	s := r.start
	now := geom.Degrees(e.Y-s.center.Y, e.X-s.center.X)
	next := geom.NormalizeDegrees(now - s.pointerAngle + s.valueAngle)
	if !e.Shift {
		next = geom.NormalizeDegrees(geom.RoundTo(next, RotationStep))
		observability.Gestures().OnSnap(KindRotate, o.ComponentID, "angle")
	}
	r.angle = next
	o.dispatch(KindRotate, &action.Update{
		ID:    o.ComponentID,
		Patch: action.Patch{Styles: styles.WithRotation(s.styles, next)},
	})
}

func (r *Rotate) end() {
	if r.session.end(&r.Options.Common) {
		r.start = rotateStart{}
	}
}

// Angle returns the most recent rotation in degrees.
func (r *Rotate) Angle() float64 { return r.angle }

// Active reports whether a rotation is in progress.
func (r *Rotate) Active() bool { return r.session.active() }

// Close ends any in-flight rotation.
func (r *Rotate) Close() { r.end() }
