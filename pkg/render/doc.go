// Package render rasterizes replay frames.
//
// A frame is drawn in the parent container's coordinate space: the parent
// outline, every sibling, the target (rotated about its center), the
// spacing overlay and the active guide lines. Guides and overlays arrive in
// the target's local frame and are translated here.
//
//	var buf bytes.Buffer
//	err := render.PNG(&buf, render.Input{
//	    Parent: geom.Rect{Width: 400, Height: 400},
//	    Target: render.Box{ID: "hero", Rect: geom.Rect{Width: 100, Height: 100}},
//	}, render.WithScale(2))
//
// Text uses the Go Mono face so output is identical across machines.
package render
