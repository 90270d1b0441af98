// Package styles reads and writes the rotation field of a component's
// free-form style-overrides blob.
//
// The blob is a JSON object of arbitrary visual-effect properties. Only
// effects.transformRotate (for example "37deg") is interpreted here; every
// other key, at the top level and inside "effects", is carried through
// untouched. Decoding never fails: malformed or absent JSON is treated as an
// empty object, and writing back preserves whatever did parse.
package styles

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/matzehuels/snapline/pkg/geom"
)

const (
	effectsKey  = "effects"
	rotationKey = "transformRotate"
	degSuffix   = "deg"
)

// Overrides is a decoded style-overrides blob.
type Overrides struct {
	fields  map[string]json.RawMessage
	effects map[string]json.RawMessage
}

// Parse decodes s. Invalid JSON, or JSON that is not an object, yields an
// empty blob. A non-object "effects" value is dropped when rotation is set.
func Parse(s string) *Overrides {
	o := &Overrides{fields: map[string]json.RawMessage{}}
	if strings.TrimSpace(s) == "" {
		return o
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(s), &fields); err != nil || fields == nil {
		return o
	}
	o.fields = fields
	if raw, ok := fields[effectsKey]; ok {
		var effects map[string]json.RawMessage
		if err := json.Unmarshal(raw, &effects); err == nil && effects != nil {
			o.effects = effects
		}
	}
	return o
}

// Rotation returns the stored angle in degrees. It reports false when the
// field is absent or unparsable.
func (o *Overrides) Rotation() (float64, bool) {
	raw, ok := o.effects[rotationKey]
	if !ok {
		return 0, false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n float64
		if err := json.Unmarshal(raw, &n); err != nil {
			return 0, false
		}
		return n, true
	}
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), degSuffix))
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// SetRotation stores deg as "<deg>deg".
func (o *Overrides) SetRotation(deg float64) {
	if o.effects == nil {
		o.effects = map[string]json.RawMessage{}
	}
	raw, _ := json.Marshal(FormatDeg(deg))
	o.effects[rotationKey] = raw
}

// String encodes the blob. Keys are written in sorted order.
func (o *Overrides) String() string {
	out := make(map[string]json.RawMessage, len(o.fields)+1)
	for k, v := range o.fields {
		out[k] = v
	}
	if o.effects != nil {
		raw, err := json.Marshal(o.effects)
		if err == nil {
			out[effectsKey] = raw
		}
	}
	data, err := json.Marshal(out)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// FormatDeg formats an angle as "<n>deg".
func FormatDeg(deg float64) string {
	return geom.FormatNumber(deg) + degSuffix
}

// RotationOf returns the rotation stored in s, or 0.
func RotationOf(s string) float64 {
	v, _ := Parse(s).Rotation()
	return v
}

// WithRotation returns s with effects.transformRotate set to deg.
func WithRotation(s string, deg float64) string {
	o := Parse(s)
	o.SetRotation(deg)
	return o.String()
}
