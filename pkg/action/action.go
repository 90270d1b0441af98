// Package action defines the closed set of dispatch actions the gesture
// controllers emit, and the dispatcher contract that consumes them.
//
// Every requested change leaves the engine as an [Action]; the consumer is
// a single-writer layout reducer outside this module. There are exactly two
// shapes:
//
//	{type:"resize", id, <field>: "<value>", ...}   // drag, resize, spacing
//	{type:"update", id, patch:{styles:"<json>"}}   // rotation
//
// Field values are always strings ("120px", "100%", "4px 0px 4px 0px").
package action

import (
	"encoding/json"
	"sort"
)

// Action types.
const (
	TypeResize = "resize"
	TypeUpdate = "update"
)

// Well-known resize fields.
const (
	FieldLeft = "left"
	FieldTop  = "top"
)

// Action is a dispatched request.
type Action interface {
	// Type returns "resize" or "update".
	Type() string
	// Target returns the component id.
	Target() string
}

// Dispatcher consumes actions.
type Dispatcher func(Action)

// Resize requests new geometry or spacing values. Fields are keyed by the
// caller-supplied field names.
type Resize struct {
	ID     string
	Fields map[string]string
}

// NewResize returns an empty resize action for id.
func NewResize(id string) *Resize {
	return &Resize{ID: id, Fields: make(map[string]string)}
}

// Set stores a field and returns r for chaining.
func (r *Resize) Set(key, value string) *Resize {
	r.Fields[key] = value
	return r
}

func (r *Resize) Type() string   { return TypeResize }
func (r *Resize) Target() string { return r.ID }

// Keys returns the field names in sorted order.
func (r *Resize) Keys() []string {
	keys := make([]string, 0, len(r.Fields))
	for k := range r.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MarshalJSON flattens the fields next to type and id.
func (r *Resize) MarshalJSON() ([]byte, error) {
	out := make(map[string]string, len(r.Fields)+2)
	for k, v := range r.Fields {
		out[k] = v
	}
	out["type"] = TypeResize
	out["id"] = r.ID
	return json.Marshal(out)
}

// Patch is the partial component update carried by [Update].
type Patch struct {
	Styles string `json:"styles"`
}

// Update requests a partial component update.
type Update struct {
	ID    string
	Patch Patch
}

func (u *Update) Type() string   { return TypeUpdate }
func (u *Update) Target() string { return u.ID }

// MarshalJSON renders {type, id, patch}.
func (u *Update) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type  string `json:"type"`
		ID    string `json:"id"`
		Patch Patch  `json:"patch"`
	}{TypeUpdate, u.ID, u.Patch})
}

var (
	_ Action = (*Resize)(nil)
	_ Action = (*Update)(nil)
)
