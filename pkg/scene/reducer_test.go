package scene

import (
	"testing"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
)

func newReducer() (*Reducer, *dom.Node) {
	root := dom.NewNode("parent", geom.Rect{Width: 800, Height: 600})
	target := root.Append(dom.NewNode("card", geom.Rect{Left: 10, Top: 20, Width: 100, Height: 50}))
	c := Controller{WidthKey: "widthDesktop", HeightKey: "heightDesktop", StylesKey: "styles"}
	return NewReducer(target, map[string]string{"padding": "4px"}, c), target
}

func TestReducerApply(t *testing.T) {
	tests := []struct {
		name   string
		action action.Action
		want   geom.Rect
		prop   [2]string
	}{
		{
			name:   "position",
			action: action.NewResize("card").Set("left", "40px").Set("top", "-5px"),
			want:   geom.Rect{Left: 40, Top: -5, Width: 100, Height: 50},
			prop:   [2]string{"left", "40px"},
		},
		{
			name:   "size",
			action: action.NewResize("card").Set("widthDesktop", "150px").Set("heightDesktop", "75px"),
			want:   geom.Rect{Left: 10, Top: 20, Width: 150, Height: 75},
			prop:   [2]string{"heightDesktop", "75px"},
		},
		{
			name:   "full parent",
			action: action.NewResize("card").Set("widthDesktop", "100%").Set("heightDesktop", "100%"),
			want:   geom.Rect{Left: 10, Top: 20, Width: 800, Height: 600},
			prop:   [2]string{"widthDesktop", "100%"},
		},
		{
			name:   "spacing is stored only",
			action: action.NewResize("card").Set("padding", "1px 2px 3px 4px"),
			want:   geom.Rect{Left: 10, Top: 20, Width: 100, Height: 50},
			prop:   [2]string{"padding", "1px 2px 3px 4px"},
		},
		{
			name:   "styles",
			action: &action.Update{ID: "card", Patch: action.Patch{Styles: `{"effects":{"transformRotate":"30deg"}}`}},
			want:   geom.Rect{Left: 10, Top: 20, Width: 100, Height: 50},
			prop:   [2]string{"styles", `{"effects":{"transformRotate":"30deg"}}`},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, target := newReducer()
			if err := r.Apply(tt.action); err != nil {
				t.Fatalf("Apply() error: %v", err)
			}
			if got := target.Offset(); got != tt.want {
				t.Errorf("Offset() = %+v, want %+v", got, tt.want)
			}
			if got := r.Prop(tt.prop[0]); got != tt.prop[1] {
				t.Errorf("Prop(%s) = %q, want %q", tt.prop[0], got, tt.prop[1])
			}
			if r.Applied() != 1 {
				t.Errorf("Applied() = %d, want 1", r.Applied())
			}
		})
	}
}

func TestReducerErrors(t *testing.T) {
	r, _ := newReducer()

	err := r.Apply(action.NewResize("other").Set("left", "1px"))
	if !errors.Is(err, errors.ErrCodeElementNotFound) {
		t.Errorf("unknown target error = %v", err)
	}
	err = r.Apply(action.NewResize("card").Set("left", "auto"))
	if !errors.Is(err, errors.ErrCodeInvalidInput) {
		t.Errorf("bad left error = %v", err)
	}

	r.Dispatch(action.NewResize("nope"))
	r.Dispatch(action.NewResize("card").Set("widthDesktop", "wide"))
	if !errors.Is(r.Err(), errors.ErrCodeElementNotFound) {
		t.Errorf("Err() = %v, want the first failure", r.Err())
	}
}

func TestReducerRotation(t *testing.T) {
	r, _ := newReducer()
	if r.Rotation() != 0 {
		t.Errorf("Rotation() = %v, want 0", r.Rotation())
	}
	r.Dispatch(&action.Update{ID: "card", Patch: action.Patch{Styles: `{"effects":{"transformRotate":"-45deg"}}`}})
	if r.Rotation() != -45 {
		t.Errorf("Rotation() = %v, want -45", r.Rotation())
	}
	props := r.Props()
	props["padding"] = "mutated"
	if r.Prop("padding") != "4px" {
		t.Error("Props() returned the live map")
	}
}
