// Package input carries pointer and keyboard input into the gesture
// controllers and owns the lifetime of every gesture's listeners.
//
// # Window
//
// [Window] stands in for the browser window: a registry of pointer-move,
// pointer-up, key-down and blur listeners. Hosts deliver input by calling
// [Window.PointerMove], [Window.PointerUp], [Window.KeyDown] and
// [Window.Blur]. Delivery copies the listener set first, so a listener may
// unsubscribe itself (or others) while being invoked.
//
// # Gestures
//
// A [Gesture] is one pointer-down-to-pointer-up interaction. It is a scoped
// resource: every listener installed through it, and its pointer ownership
// claim, is released by [Gesture.End]. End is idempotent and must be
// reached on every exit path: normal termination, cancellation, a restart
// on the same controller and owner destruction.
//
//	g := input.Begin(win, ev.PointerID)
//	g.OnMove(func(e input.PointerEvent) { ... })
//	g.OnUp(func(input.PointerEvent) { g.End() })
//
// Each gesture carries a random owner token. While a gesture holds a
// pointer, move and up events for that pointer reach only that gesture's
// listeners. This reproduces the input exclusivity of platform pointer
// capture without relying on it; platform capture is still attempted
// best-effort through [Capturer].
package input
