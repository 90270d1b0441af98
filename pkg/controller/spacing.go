package controller

import (
	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/spacing"
)

// SpacingOptions configures a [Spacing].
type SpacingOptions struct {
	Common

	// MarginKey and PaddingKey name the dispatched fields. They default to
	// "margin" and "padding".
	MarginKey  string
	PaddingKey string

	// MarginVal and PaddingVal are the stored shorthands. Unparsable values
	// read as zero.
	MarginVal  string
	PaddingVal string
}

func (o *SpacingOptions) key(k spacing.Kind) string {
	if k == spacing.Margin {
		if o.MarginKey == "" {
			return "margin"
		}
		return o.MarginKey
	}
	if o.PaddingKey == "" {
		return "padding"
	}
	return o.PaddingKey
}

func (o *SpacingOptions) box(k spacing.Kind) spacing.Box {
	if k == spacing.Margin {
		return spacing.ParseOrZero(o.MarginVal)
	}
	return spacing.ParseOrZero(o.PaddingVal)
}

type spacingStart struct {
	pointer         geom.Point
	kind            spacing.Kind
	side            spacing.Side
	margin, padding spacing.Box
	width, height   float64
}

func (s spacingStart) box() spacing.Box {
	if s.kind == spacing.Margin {
		return s.margin
	}
	return s.padding
}

// Spacing edits one side of an element's margin or padding.
type Spacing struct {
	Options SpacingOptions

	session session
	start   spacingStart
	overlay *geom.Rect
	active  *spacing.Side
}

// NewSpacing creates a spacing controller.
func NewSpacing(opts SpacingOptions) *Spacing {
	return &Spacing{Options: opts}
}

// Start begins editing side of kind k.
func (s *Spacing) Start(e input.PointerEvent, k spacing.Kind, side spacing.Side) {
	o := &s.Options
	if !o.ready(KindSpacing) {
		return
	}
	box := o.Container.Offset()
	s.start = spacingStart{
		pointer: geom.Point{X: e.X, Y: e.Y},
		kind:    k,
		side:    side,
		margin:  o.box(spacing.Margin),
		padding: o.box(spacing.Padding),
		width:   box.Width,
		height:  box.Height,
	}
	s.active = &side
	s.overlay = nil

	g := s.session.begin(&o.Common, KindSpacing, e.PointerID)
	g.OnMove(s.move)
	g.OnUp(func(input.PointerEvent) { s.end() })

	o.logger().Debug("spacing started", "id", o.ComponentID, "kind", k, "side", side)
}

func (s *Spacing) move(e input.PointerEvent) {
	s.session.moves++
	st := s.start
	delta := e.Y - st.pointer.Y
	if st.side.Horizontal() {
		delta = e.X - st.pointer.X
	}
	s.apply(st.kind, st.side, st.box(), st.box().Get(st.side)+delta, st.width, st.height)
}

// apply sets side of b to v, dispatches the shorthand and refreshes the
// overlay.
func (s *Spacing) apply(k spacing.Kind, side spacing.Side, b spacing.Box, v, w, h float64) {
	o := &s.Options
	v = k.Clamp(v)
	b = b.With(side, v)
	r := spacing.Overlay(k, side, v, w, h)
	s.overlay = &r
	o.dispatch(KindSpacing, action.NewResize(o.ComponentID).Set(o.key(k), b.String()))
}

func (s *Spacing) end() {
	if s.session.end(&s.Options.Common) {
		s.overlay = nil
		s.active = nil
	}
}

// NudgeByKeyboard adjusts side of kind k by 1px, or 10px with Alt; Shift and
// Ctrl leave the step at 1px. Only the
// arrows on the side's axis act: Down/Right grow, Up/Left shrink. It reports
// whether the event was handled.
func (s *Spacing) NudgeByKeyboard(e input.KeyEvent, k spacing.Kind, side spacing.Side) bool {
	o := &s.Options
	if o.Disabled || o.Container == nil {
		return false
	}
	step := 1.0
	if e.Alt {
		step = 10
	}
	switch {
	case side.Horizontal() && e.Key == input.KeyArrowRight,
		!side.Horizontal() && e.Key == input.KeyArrowDown:
	case side.Horizontal() && e.Key == input.KeyArrowLeft,
		!side.Horizontal() && e.Key == input.KeyArrowUp:
		step = -step
	default:
		return false
	}
	b := o.box(k)
	box := o.Container.Offset()
	s.apply(k, side, b, b.Get(side)+step, box.Width, box.Height)
	return true
}

// Overlay returns the highlight rectangle in the element's frame, or nil
// when no side is being edited.
func (s *Spacing) Overlay() *geom.Rect { return s.overlay }

// ActiveSide returns the side being dragged, or nil.
func (s *Spacing) ActiveSide() *spacing.Side { return s.active }

// Active reports whether a spacing drag is in progress.
func (s *Spacing) Active() bool { return s.session.active() }

// Close ends any in-flight spacing drag.
func (s *Spacing) Close() { s.end() }
