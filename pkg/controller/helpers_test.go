package controller

import (
	"errors"
	"testing"
	"time"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
)

// fixture is a parent with one target element at the origin.
type fixture struct {
	root   *dom.Node
	target *dom.Node
	win    *input.Window
	rec    *action.Recorder
}

func newFixture(parentW, parentH float64) *fixture {
	root := dom.NewNode("root", geom.Rect{Width: parentW, Height: parentH})
	target := root.Append(dom.NewNode("box", geom.Rect{Width: 100, Height: 100}))
	return &fixture{root: root, target: target, win: input.NewWindow(), rec: &action.Recorder{}}
}

func (f *fixture) common() Common {
	return Common{
		ComponentID: "box",
		Dispatch:    f.rec.Dispatch,
		Container:   f.target,
		Window:      f.win,
	}
}

func (f *fixture) sibling(id string, r geom.Rect) {
	f.root.Append(dom.NewNode(id, r))
}

func at(x, y float64) input.PointerEvent { return input.PointerEvent{X: x, Y: y} }

func pointer(id int, x, y float64) input.PointerEvent {
	return input.PointerEvent{X: x, Y: y, PointerID: id}
}

func (f *fixture) lastField(t *testing.T, key string) string {
	t.Helper()
	r := f.rec.LastResize()
	if r == nil {
		t.Fatalf("no resize dispatched")
	}
	return r.Fields[key]
}

func assertNoListeners(t *testing.T, w *input.Window) {
	t.Helper()
	if n := w.Listeners(); n != 0 {
		t.Errorf("Listeners() = %d, want 0", n)
	}
}

// capturer records pointer capture calls.
type capturer struct {
	fail              bool
	captured, release []int
}

func (c *capturer) SetPointerCapture(id int) error {
	if c.fail {
		return errors.New("capture unsupported")
	}
	c.captured = append(c.captured, id)
	return nil
}

func (c *capturer) ReleasePointerCapture(id int) error {
	c.release = append(c.release, id)
	return nil
}

// clock is a settable time source.
type clock struct{ t time.Time }

func newClock() *clock { return &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)} }

func (c *clock) Now() time.Time          { return c.t }
func (c *clock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newBox(id string) *dom.Node {
	return dom.NewNode(id, geom.Rect{Left: 600, Top: 600, Width: 100, Height: 100})
}
