package spacing

import (
	"fmt"
	"strconv"
	"strings"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"

	"github.com/matzehuels/snapline/pkg/geom"
)

// Side is one edge of a box.
type Side int

const (
	Top Side = iota
	Right
	Bottom
	Left
)

var sideNames = [...]string{"top", "right", "bottom", "left"}

func (s Side) String() string {
	if s < Top || s > Left {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// Horizontal reports whether the side is edited by horizontal movement.
func (s Side) Horizontal() bool { return s == Left || s == Right }

// ParseSide parses "top", "right", "bottom" or "left".
func ParseSide(s string) (Side, error) {
	for i, name := range sideNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return Side(i), nil
		}
	}
	return 0, fmt.Errorf("invalid side %q (must be top, right, bottom or left)", s)
}

// Kind selects margin or padding.
type Kind int

const (
	Margin Kind = iota
	Padding
)

func (k Kind) String() string {
	if k == Padding {
		return "padding"
	}
	return "margin"
}

// ParseKind parses "margin" or "padding".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "margin":
		return Margin, nil
	case "padding":
		return Padding, nil
	}
	return 0, fmt.Errorf("invalid spacing type %q (must be margin or padding)", s)
}

// Clamp applies the kind's lower bound: padding never goes below zero.
func (k Kind) Clamp(v float64) float64 {
	if k == Padding && v < 0 {
		return 0
	}
	return v
}

// Box is [top, right, bottom, left] in pixels.
type Box [4]float64

// Uniform returns a box with all four sides set to v.
func Uniform(v float64) Box { return Box{v, v, v, v} }

// Get returns the value of side s.
func (b Box) Get(s Side) float64 { return b[s] }

// With returns a copy of b with side s set to v.
func (b Box) With(s Side, v float64) Box {
	b[s] = v
	return b
}

// String returns "<t>px <r>px <b>px <l>px".
func (b Box) String() string {
	parts := make([]string, len(b))
	for i, v := range b {
		parts[i] = geom.FormatPx(v)
	}
	return strings.Join(parts, " ")
}

// Parse expands a 1 to 4 value shorthand into a box. Values must be unitless
// numbers or pixel dimensions. An empty string is a zero box.
func Parse(s string) (Box, error) {
	values, err := tokens(s)
	if err != nil {
		return Box{}, err
	}
	switch len(values) {
	case 0:
		return Box{}, nil
	case 1:
		return Uniform(values[0]), nil
	case 2:
		return Box{values[0], values[1], values[0], values[1]}, nil
	case 3:
		return Box{values[0], values[1], values[2], values[1]}, nil
	case 4:
		return Box{values[0], values[1], values[2], values[3]}, nil
	}
	return Box{}, fmt.Errorf("invalid shorthand %q: %d values (at most 4)", s, len(values))
}

// ParseOrZero is [Parse] with malformed input treated as a zero box.
func ParseOrZero(s string) Box {
	b, err := Parse(s)
	if err != nil {
		return Box{}
	}
	return b
}

// tokens lexes s with the CSS tokenizer and returns its numeric values.
func tokens(s string) ([]float64, error) {
	lexer := css.NewLexer(parse.NewInputString(s))
	var out []float64
	for {
		tt, data := lexer.Next()
		switch tt {
		case css.ErrorToken:
			return out, nil
		case css.WhitespaceToken:
			continue
		case css.NumberToken:
			v, err := strconv.ParseFloat(string(data), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid number %q: %w", data, err)
			}
			out = append(out, v)
		case css.DimensionToken:
			v, err := parsePx(string(data))
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		default:
			return nil, fmt.Errorf("unsupported spacing value %q", data)
		}
	}
}

func parsePx(dim string) (float64, error) {
	lower := strings.ToLower(dim)
	if !strings.HasSuffix(lower, "px") {
		return 0, fmt.Errorf("unsupported unit in %q (only px)", dim)
	}
	v, err := strconv.ParseFloat(dim[:len(dim)-2], 64)
	if err != nil {
		return 0, fmt.Errorf("invalid dimension %q: %w", dim, err)
	}
	return v, nil
}
