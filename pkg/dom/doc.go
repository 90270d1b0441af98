// Package dom models the read-only layout queries the gesture controllers
// make against the host document.
//
// Controllers never write geometry directly. They read an element's offset
// box (position relative to its parent plus rendered size), its
// screen-space bounding rectangle, its parent and the parent's children.
// Any host that can answer those questions implements [Element].
//
// [Node] is an in-memory implementation used by the scene replayer, the
// terminal playground and tests:
//
//	root := dom.NewNode("canvas", geom.Rect{Width: 800, Height: 600})
//	box := root.Append(dom.NewNode("hero", geom.Rect{Left: 20, Top: 20, Width: 200, Height: 100}))
//	box.Offset() // {20 20 200 100}
package dom
