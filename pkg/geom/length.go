package geom

import (
	"math"
	"strconv"
	"strings"
)

// FullValue is the serialized form of [Full].
const FullValue = "100%"

// Length is a dispatched size: either a pixel amount or "match parent".
type Length struct {
	Px   float64
	full bool
}

// Full is the "match parent" length.
var Full = Length{full: true}

// Px returns a pixel length.
func Px(v float64) Length { return Length{Px: v} }

// IsFull reports whether l is the "100%" sentinel.
func (l Length) IsFull() bool { return l.full }

// String returns "<n>px" or "100%".
func (l Length) String() string {
	if l.full {
		return FullValue
	}
	return FormatPx(l.Px)
}

// FormatPx formats v as "<n>px" using the shortest decimal representation.
func FormatPx(v float64) string {
	return FormatNumber(v) + "px"
}

// FormatNumber formats v in its shortest decimal form. Negative zero is
// printed as "0".
func FormatNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ParsePx parses a stored pixel value such as "150px". Bare numbers are
// accepted as pixels. It returns false for percentages, keywords and
// anything unparsable.
func ParsePx(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "px")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseLength parses a stored size: "100%" yields [Full], pixel values
// yield [Px].
func ParseLength(s string) (Length, bool) {
	if strings.TrimSpace(s) == FullValue {
		return Full, true
	}
	v, ok := ParsePx(s)
	if !ok {
		return Length{}, false
	}
	return Px(v), true
}
