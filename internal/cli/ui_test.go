package cli

import (
	"testing"

	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/guides"
)

func TestFormatGuides(t *testing.T) {
	tests := []struct {
		name string
		g    guides.Guides
		want string
	}{
		{"none", guides.Guides{}, "—"},
		{"x only", guides.Guides{X: guides.Ptr(150)}, "x=150"},
		{"y only", guides.Guides{Y: guides.Ptr(0)}, "y=0"},
		{"both", guides.At(12.5, -3), "x=12.5 y=-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatGuides(tt.g.X, tt.g.Y); got != tt.want {
				t.Errorf("formatGuides() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFormatRect(t *testing.T) {
	r := geom.Rect{Left: -10, Top: 0.5, Width: 120, Height: 45}
	if got, want := formatRect(r), "120×45 @ -10,0.5"; got != want {
		t.Errorf("formatRect() = %q, want %q", got, want)
	}
}
