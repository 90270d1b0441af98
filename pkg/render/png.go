package render

import (
	"fmt"
	"image/color"
	"io"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/guides"
)

// Box is a labelled rectangle in the parent's frame.
type Box struct {
	ID   string
	Rect geom.Rect
}

// Input is everything drawn for one frame.
type Input struct {
	Parent   geom.Rect
	Siblings []Box
	Target   Box
	// Rotation of the target in degrees, clockwise.
	Rotation float64
	// Guides and Overlay are in the target's frame.
	Guides  guides.Guides
	Overlay *geom.Rect
	// Caption is printed under the parent.
	Caption string
}

// Palette colors.
var (
	Background  = color.White
	ParentLine  = color.RGBA{0x9e, 0x9e, 0x9e, 0xff}
	SiblingFill = color.RGBA{0xd6, 0xe4, 0xf5, 0xff}
	SiblingLine = color.RGBA{0x5b, 0x7d, 0xb1, 0xff}
	TargetFill  = color.RGBA{0xf2, 0x8c, 0x28, 0xff}
	TargetLine  = color.RGBA{0xa8, 0x55, 0x0b, 0xff}
	OverlayFill = color.RGBA{0x2e, 0xb8, 0x72, 0x99}
	GuideLine   = color.RGBA{0xe0, 0x1e, 0x8c, 0xff}
	TextColor   = color.RGBA{0x33, 0x33, 0x33, 0xff}
)

// Option configures PNG rendering.
type Option func(*renderer)

type renderer struct {
	scale  float64
	margin float64
	labels bool
}

// WithScale sets the pixel scale factor (default 1).
func WithScale(s float64) Option {
	return func(r *renderer) { r.scale = s }
}

// WithMargin sets the blank border around the parent, in parent pixels
// (default 24).
func WithMargin(m float64) Option {
	return func(r *renderer) { r.margin = m }
}

// WithLabels toggles element id labels (default on).
func WithLabels(on bool) Option {
	return func(r *renderer) { r.labels = on }
}

var (
	faceOnce sync.Once
	faceFont *truetype.Font
	faceErr  error
)

func monoFace(size float64) (font.Face, error) {
	faceOnce.Do(func() {
		faceFont, faceErr = truetype.Parse(gomono.TTF)
	})
	if faceErr != nil {
		return nil, fmt.Errorf("parse font: %w", faceErr)
	}
	return truetype.NewFace(faceFont, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// PNG draws in and writes it to w as a PNG image.
func PNG(w io.Writer, in Input, opts ...Option) error {
	dc, err := Draw(in, opts...)
	if err != nil {
		return err
	}
	return dc.EncodePNG(w)
}

// Draw renders in onto a new context.
func Draw(in Input, opts ...Option) (*gg.Context, error) {
	r := renderer{scale: 1, margin: 24, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, fmt.Errorf("invalid scale %v", r.scale)
	}
	if in.Parent.Width <= 0 || in.Parent.Height <= 0 {
		return nil, fmt.Errorf("parent has no area: %vx%v", in.Parent.Width, in.Parent.Height)
	}

	width := int((in.Parent.Width + 2*r.margin) * r.scale)
	height := int((in.Parent.Height + 2*r.margin) * r.scale)
	dc := gg.NewContext(width, height)
	dc.SetColor(Background)
	dc.Clear()

	face, err := monoFace(11)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)

	dc.Scale(r.scale, r.scale)
	dc.Translate(r.margin, r.margin)

	// Parent outline
	dc.SetLineWidth(1)
	dc.SetColor(ParentLine)
	dc.DrawRectangle(0, 0, in.Parent.Width, in.Parent.Height)
	dc.Stroke()

	for _, s := range in.Siblings {
		r.drawBox(dc, s, SiblingFill, SiblingLine)
	}

	t := in.Target.Rect
	c := t.Center()
	dc.Push()
	dc.RotateAbout(gg.Radians(in.Rotation), c.X, c.Y)
	r.drawBox(dc, in.Target, TargetFill, TargetLine)
	if in.Overlay != nil {
		o := in.Overlay.Translate(t.Left, t.Top)
		dc.SetColor(OverlayFill)
		dc.DrawRectangle(o.Left, o.Top, o.Width, o.Height)
		dc.Fill()
	}
	dc.Pop()

	dc.SetColor(GuideLine)
	dc.SetDash(4, 3)
	if in.Guides.X != nil {
		x := t.Left + *in.Guides.X
		dc.DrawLine(x, -r.margin/2, x, in.Parent.Height+r.margin/2)
		dc.Stroke()
	}
	if in.Guides.Y != nil {
		y := t.Top + *in.Guides.Y
		dc.DrawLine(-r.margin/2, y, in.Parent.Width+r.margin/2, y)
		dc.Stroke()
	}
	dc.SetDash()

	if in.Caption != "" {
		dc.SetColor(TextColor)
		dc.DrawStringAnchored(in.Caption, 0, in.Parent.Height+r.margin/2, 0, 0.5)
	}
	return dc, nil
}

func (r *renderer) drawBox(dc *gg.Context, b Box, fill, line color.Color) {
	rc := b.Rect.Canon()
	dc.SetColor(fill)
	dc.DrawRectangle(rc.Left, rc.Top, rc.Width, rc.Height)
	dc.FillPreserve()
	dc.SetColor(line)
	dc.Stroke()
	if r.labels && b.ID != "" && rc.Width > 0 && rc.Height > 0 {
		dc.SetColor(TextColor)
		dc.DrawString(b.ID, rc.Left+3, rc.Top+12)
	}
}
