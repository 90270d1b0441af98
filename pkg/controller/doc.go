// Package controller implements the direct-manipulation gestures of the
// canvas builder: drag, resize, rotate and margin/padding spacing.
//
// # Lifecycle
//
// Each controller models one element instance. A Start call (from a
// pointer-down on a handle) validates its preconditions, snapshots the
// pointer and the element's current geometry, and installs window-scoped
// move/up listeners through an [input.Gesture]. Every move recomputes a
// candidate from the snapshot and the live pointer, applies the snap rules,
// publishes guide or overlay state and dispatches the resulting action.
// Pointer-up (and for rotation also blur or Escape) ends the gesture and
// removes every listener. [Drag.Close] and friends end an in-flight gesture
// when the owning element goes away.
//
// A failed precondition (Disabled set, no container, no window) means the
// gesture silently never starts: nothing is dispatched and no listener is
// installed.
//
// # Snapping
//
// Drag: sibling edges (both edges of the span, last match wins), then grid.
// Resize, per axis: full-parent ("100%"), then the moving edge against
// sibling edges, then grid. Rotate: 15° increments unless Shift is held.
// The grid unit is the parent's offset width divided by the column count.
//
// # Dispatch
//
// Geometry and spacing are dispatched as [action.Resize] with string
// values; rotation as [action.Update] carrying the rewritten style-overrides
// blob. Controllers never mutate the element.
//
// # Coordination
//
// [Coordinator] merges a drag and a resize controller for a single view:
// one set of guides and one snapping flag.
//
// Controllers are not safe for concurrent use; deliver input for one element
// from one goroutine.
package controller
