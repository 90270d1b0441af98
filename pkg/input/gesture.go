package input

import "github.com/google/uuid"

// Gesture owns the listeners and pointer claim of one interaction.
type Gesture struct {
	win       *Window
	token     string
	pointerID int
	owns      bool
	removers  []func()
	onEnd     []func()
	ended     bool
}

// Begin starts a gesture for pointerID on w and claims the pointer for it.
// The claim fails silently when another gesture already holds the pointer.
func Begin(w *Window, pointerID int) *Gesture {
	g := &Gesture{
		win:       w,
		token:     uuid.NewString(),
		pointerID: pointerID,
	}
	g.owns = w.claim(pointerID, g.token)
	return g
}

// Token returns the gesture's owner token.
func (g *Gesture) Token() string { return g.token }

// PointerID returns the pointer the gesture was started with.
func (g *Gesture) PointerID() int { return g.pointerID }

// Owns reports whether the gesture holds its pointer.
func (g *Gesture) Owns() bool { return g.owns && !g.ended }

// Active reports whether End has not been called.
func (g *Gesture) Active() bool { return g != nil && !g.ended }

// OnMove registers fn for moves of the gesture's pointer for the duration
// of the gesture. fn never runs while the gesture does not own the pointer.
func (g *Gesture) OnMove(fn func(PointerEvent)) {
	g.track(g.win.add(kindMove, listener{owner: g.token, pointID: g.pointerID, pointer: g.guard(fn)}))
}

// OnUp registers fn for releases of the gesture's pointer.
func (g *Gesture) OnUp(fn func(PointerEvent)) {
	g.track(g.win.add(kindUp, listener{owner: g.token, pointID: g.pointerID, pointer: g.guard(fn)}))
}

// OnKey registers fn for key presses for the duration of the gesture.
func (g *Gesture) OnKey(fn func(KeyEvent)) {
	g.track(g.win.add(kindKey, listener{owner: g.token, key: func(e KeyEvent) {
		if !g.ended {
			fn(e)
		}
	}}))
}

// OnBlur registers fn for window blur for the duration of the gesture.
func (g *Gesture) OnBlur(fn func()) {
	g.track(g.win.add(kindBlur, listener{owner: g.token, blur: func() {
		if !g.ended {
			fn()
		}
	}}))
}

// Defer registers fn to run when the gesture ends. Deferred functions run
// in reverse order of registration.
func (g *Gesture) Defer(fn func()) {
	if g.ended {
		fn()
		return
	}
	g.onEnd = append(g.onEnd, fn)
}

// End removes every listener, runs deferred cleanups and releases the
// pointer claim. Calling End more than once is a no-op.
func (g *Gesture) End() {
	if g == nil || g.ended {
		return
	}
	g.ended = true
	for _, remove := range g.removers {
		remove()
	}
	g.removers = nil
	for i := len(g.onEnd) - 1; i >= 0; i-- {
		g.onEnd[i]()
	}
	g.onEnd = nil
	if g.owns {
		g.win.release(g.pointerID, g.token)
	}
}

func (g *Gesture) track(remove func()) {
	if g.ended {
		remove()
		return
	}
	g.removers = append(g.removers, remove)
}

func (g *Gesture) guard(fn func(PointerEvent)) func(PointerEvent) {
	return func(e PointerEvent) {
		if !g.ended {
			fn(e)
		}
	}
}

// Capture attempts platform pointer capture on target and arranges for its
// release when the gesture ends. Failures are ignored.
func (g *Gesture) Capture(target Capturer) {
	if target == nil || g.ended {
		return
	}
	if err := target.SetPointerCapture(g.pointerID); err != nil {
		return
	}
	id := g.pointerID
	g.Defer(func() { _ = target.ReleasePointerCapture(id) })
}
