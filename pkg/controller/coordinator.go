package controller

import "github.com/matzehuels/snapline/pkg/guides"

// Coordinator presents a drag and a resize controller for the same element
// as one transform.
type Coordinator struct {
	Drag   *Drag
	Resize *Resize
}

// NewCoordinator builds both controllers from shared options. The resize
// options' Common and Grid are overwritten with the shared ones.
func NewCoordinator(common Common, g Grid, resize ResizeOptions) *Coordinator {
	resize.Common = common
	resize.Grid = g
	return &Coordinator{
		Drag:   NewDrag(DragOptions{Common: common, Grid: g}),
		Resize: NewResize(resize),
	}
}

// Guides merges the guides per axis; resize takes precedence over drag.
func (c *Coordinator) Guides() guides.Guides {
	d, r := c.Drag.Guides(), c.Resize.Guides()
	out := d
	if r.X != nil {
		out.X = r.X
	}
	if r.Y != nil {
		out.Y = r.Y
	}
	return out
}

// Snapping reports whether the resize snapped or the drag published a
// guide.
func (c *Coordinator) Snapping() bool {
	return c.Resize.Snapping() || !c.Drag.Guides().Empty()
}

// Active reports whether either gesture is in progress.
func (c *Coordinator) Active() bool {
	return c.Drag.Active() || c.Resize.Active()
}

// Close ends both gestures.
func (c *Coordinator) Close() {
	c.Drag.Close()
	c.Resize.Close()
}
