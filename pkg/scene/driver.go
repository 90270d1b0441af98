package scene

import (
	"github.com/matzehuels/snapline/pkg/controller"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/spacing"
)

// driver adapts one controller kind to the player. Before a gesture or a
// nudge it refreshes the controller's stored values from the reducer, the
// way a host re-renders with fresh props.
type driver interface {
	start(e input.PointerEvent)
	nudge(e input.KeyEvent) bool
	active() bool
	observe(f *Frame)
	close()
}

func newDriver(p *Player) driver {
	c := p.Scene.Controller
	common := controller.Common{
		ComponentID: p.target.ID(),
		Dispatch:    p.dispatch,
		Container:   p.target,
		Window:      p.win,
		Disabled:    c.Disabled,
		Logger:      p.logger,
	}
	g := controller.Grid{GridEnabled: p.Scene.Grid.Enabled, GridCols: p.Scene.Grid.Cols}

	switch c.Kind {
	case controller.KindResize:
		h, _ := controller.ParseHandle(c.Handle)
		return &resizeDriver{p: p, handle: h, c: controller.NewResize(controller.ResizeOptions{
			Common:    common,
			Grid:      g,
			WidthKey:  c.WidthKey,
			HeightKey: c.HeightKey,
			Now:       p.Now,
		})}
	case controller.KindRotate:
		return &rotateDriver{p: p, c: controller.NewRotate(controller.RotateOptions{Common: common})}
	case controller.KindSpacing:
		k, _ := spacing.ParseKind(c.Spacing)
		side, _ := spacing.ParseSide(c.Side)
		return &spacingDriver{p: p, kind: k, side: side, c: controller.NewSpacing(controller.SpacingOptions{
			Common:     common,
			MarginKey:  c.MarginKey,
			PaddingKey: c.PaddingKey,
		})}
	default:
		return &dragDriver{c: controller.NewDrag(controller.DragOptions{Common: common, Grid: g})}
	}
}

type dragDriver struct {
	c *controller.Drag
}

func (d *dragDriver) start(e input.PointerEvent) { d.c.Start(e) }
func (d *dragDriver) nudge(input.KeyEvent) bool  { return false }
func (d *dragDriver) active() bool               { return d.c.Active() }
func (d *dragDriver) close()                     { d.c.Close() }

func (d *dragDriver) observe(f *Frame) {
	f.Guides = d.c.Guides()
	f.Snapping = !f.Guides.Empty()
}

type resizeDriver struct {
	p      *Player
	c      *controller.Resize
	handle controller.Handle
}

func (d *resizeDriver) refresh() {
	o := &d.c.Options
	o.WidthVal = d.p.reducer.Prop(o.WidthKey)
	o.HeightVal = d.p.reducer.Prop(o.HeightKey)
}

func (d *resizeDriver) start(e input.PointerEvent) {
	d.refresh()
	d.c.Start(e, d.handle)
}

func (d *resizeDriver) nudge(e input.KeyEvent) bool {
	d.refresh()
	return d.c.NudgeByKeyboard(e)
}

func (d *resizeDriver) active() bool { return d.c.Active() }
func (d *resizeDriver) close()       { d.c.Close() }

func (d *resizeDriver) observe(f *Frame) {
	f.Guides = d.c.Guides()
	f.Snapping = d.c.Snapping()
	f.Readout = d.c.Readout()
}

type rotateDriver struct {
	p *Player
	c *controller.Rotate
}

func (d *rotateDriver) start(e input.PointerEvent) {
	d.c.Options.StylesVal = d.p.reducer.Prop(d.p.Scene.Controller.StylesKey)
	d.c.Start(e)
}

func (d *rotateDriver) nudge(input.KeyEvent) bool { return false }
func (d *rotateDriver) active() bool              { return d.c.Active() }
func (d *rotateDriver) close()                    { d.c.Close() }
func (d *rotateDriver) observe(*Frame)            {}

type spacingDriver struct {
	p    *Player
	c    *controller.Spacing
	kind spacing.Kind
	side spacing.Side
}

func (d *spacingDriver) refresh() {
	o := &d.c.Options
	o.MarginVal = d.p.reducer.Prop(o.MarginKey)
	o.PaddingVal = d.p.reducer.Prop(o.PaddingKey)
}

func (d *spacingDriver) start(e input.PointerEvent) {
	d.refresh()
	d.c.Start(e, d.kind, d.side)
}

func (d *spacingDriver) nudge(e input.KeyEvent) bool {
	d.refresh()
	return d.c.NudgeByKeyboard(e, d.kind, d.side)
}

func (d *spacingDriver) active() bool { return d.c.Active() }
func (d *spacingDriver) close()       { d.c.Close() }

func (d *spacingDriver) observe(f *Frame) {
	if o := d.c.Overlay(); o != nil {
		r := *o
		f.Overlay = &r
	}
}
