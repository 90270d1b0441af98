// Package scene replays scripted gestures against the controllers.
//
// A scene is a TOML file describing a parent container, its sibling
// elements, one target element with its stored props, grid settings, the
// controller under test and an ordered list of input steps:
//
//	name = "drag onto grid"
//
//	[parent]
//	width = 400
//	height = 400
//
//	[grid]
//	enabled = true
//	cols = 4
//
//	[target]
//	id = "hero"
//	width = 100
//	height = 100
//
//	[controller]
//	kind = "drag"
//
//	[[step]]
//	kind = "down"
//
//	[[step]]
//	kind = "move"
//	x = 130
//	y = 130
//
// [Player] builds the element tree, starts the controller on "down" steps,
// delivers the rest through an [input.Window] and feeds every dispatched
// action into a [Reducer], the single writer of element geometry and props.
// After each step it records a [Frame]. [Runner.Run] plays a whole scene.
package scene
