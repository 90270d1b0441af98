// Package pkg provides the libraries behind snapline, the gesture snapping
// core of a visual page editor.
//
// # Overview
//
// A user drags, resizes, rotates or edits the spacing of an element on a
// canvas. The controllers turn raw pointer and keyboard events into layout
// updates, snapping geometry to sibling edges and to an optional grid, and
// publish guide lines for the host to draw. The pkg directory is organized
// into three areas:
//
//  1. Primitives - [geom], [grid], [spacing], [styles], [dom], [input], [action]
//  2. Snapping - [guides] and the gesture [controller] package
//  3. Tooling - [scene] replay, [render] frame rasterization, [cache]
//
// # Data Flow
//
//	pointer / key events
//	         ↓
//	    [input] package (window listeners + one-gesture-at-a-time ownership)
//	         ↓
//	    [controller] package (drag, resize, rotate, spacing)
//	         ↓  reads [dom], snaps with [guides] and [grid]
//	    [action] package (Resize / Update dispatched to the host reducer)
//
// # Quick Start
//
// Drive a drag controller against an in-memory element tree:
//
//	parent := dom.NewNode("page", geom.Rect{Width: 1000, Height: 800})
//	hero := parent.Append(dom.NewNode("hero", geom.Rect{Width: 100, Height: 100}))
//	win := input.NewWindow()
//
//	drag := controller.NewDrag(controller.DragOptions{Common: controller.Common{
//	    ComponentID: "hero",
//	    Container:   hero,
//	    Window:      win,
//	    Dispatch:    func(a action.Action) { fmt.Println(a) },
//	}})
//	drag.Start(input.PointerEvent{X: 0, Y: 0})
//	win.PointerMove(input.PointerEvent{X: 48, Y: 52})
//	win.PointerUp(input.PointerEvent{X: 48, Y: 52})
//
// Replay a scripted scene:
//
//	res, err := scene.NewRunner(nil).RunFile(ctx, "drag.toml")
//
// # Testing
//
//	go test ./pkg/...        # All tests
//	go test -run Example     # Examples only
package pkg
