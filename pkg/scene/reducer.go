package scene

import (
	"maps"
	"sync"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/styles"
)

// Reducer applies dispatched actions to the target element. It is the only
// writer of the target's geometry and props; controllers only read them.
// Reducer is safe for concurrent use.
type Reducer struct {
	mu      sync.Mutex
	target  *dom.Node
	props   map[string]string
	keys    Controller
	applied int
	err     error
}

// NewReducer returns a reducer for target seeded with props. Field names
// for geometry and styles come from c.
func NewReducer(target *dom.Node, props map[string]string, c Controller) *Reducer {
	cp := maps.Clone(props)
	if cp == nil {
		cp = map[string]string{}
	}
	return &Reducer{target: target, props: cp, keys: c}
}

// Dispatch applies a and remembers the first failure; see [Reducer.Err].
func (r *Reducer) Dispatch(a action.Action) {
	if err := r.Apply(a); err != nil {
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
	}
}

// Apply writes a into the element and its props.
func (r *Reducer) Apply(a action.Action) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a.Target() != r.target.ID() {
		return errors.New(errors.ErrCodeElementNotFound, "action for unknown element %q", a.Target())
	}
	switch a := a.(type) {
	case *action.Resize:
		box := r.target.Offset()
		for _, k := range a.Keys() {
			v := a.Fields[k]
			if err := r.applyField(&box, k, v); err != nil {
				return err
			}
			r.props[k] = v
		}
		r.target.SetOffset(box)
	case *action.Update:
		r.props[r.keys.StylesKey] = a.Patch.Styles
	default:
		return errors.New(errors.ErrCodeUnsupported, "action type %q", a.Type())
	}
	r.applied++
	return nil
}

func (r *Reducer) applyField(box *geom.Rect, key, value string) error {
	var parent geom.Rect
	if p := r.target.Parent(); p != nil {
		parent = p.Offset()
	}
	switch key {
	case action.FieldLeft, action.FieldTop:
		v, ok := geom.ParsePx(value)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s: not a pixel value: %q", key, value)
		}
		if key == action.FieldLeft {
			box.Left = v
		} else {
			box.Top = v
		}
	case r.keys.WidthKey, r.keys.HeightKey:
		l, ok := geom.ParseLength(value)
		if !ok {
			return errors.New(errors.ErrCodeInvalidInput, "%s: not a length: %q", key, value)
		}
		width := key == r.keys.WidthKey
		switch {
		case l.IsFull() && width:
			box.Width = parent.Width
		case l.IsFull():
			box.Height = parent.Height
		case width:
			box.Width = l.Px
		default:
			box.Height = l.Px
		}
	}
	return nil
}

// Err returns the first error raised by [Reducer.Dispatch].
func (r *Reducer) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// Props returns a copy of the current props.
func (r *Reducer) Props() map[string]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.props)
}

// Prop returns one prop value.
func (r *Reducer) Prop(key string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.props[key]
}

// Rotation returns the rotation stored in the styles prop.
func (r *Reducer) Rotation() float64 {
	return styles.RotationOf(r.Prop(r.keys.StylesKey))
}

// Applied returns the number of actions applied.
func (r *Reducer) Applied() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applied
}
