package scene

import (
	"bytes"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/snapline/pkg/controller"
	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/spacing"
)

// Step kinds.
const (
	StepDown = "down"
	StepMove = "move"
	StepUp   = "up"
	StepKey  = "key"
	StepBlur = "blur"
	StepWait = "wait"
)

// Scene is a decoded scene file.
type Scene struct {
	Name       string     `toml:"name" json:"name"`
	Parent     Box        `toml:"parent" json:"parent"`
	Grid       Grid       `toml:"grid" json:"grid"`
	Siblings   []Element  `toml:"sibling" json:"siblings,omitempty"`
	Target     Target     `toml:"target" json:"target"`
	Controller Controller `toml:"controller" json:"controller"`
	Steps      []Step     `toml:"step" json:"steps"`
}

// Box is a rectangle in the parent's frame.
type Box struct {
	Left   float64 `toml:"left" json:"left"`
	Top    float64 `toml:"top" json:"top"`
	Width  float64 `toml:"width" json:"width"`
	Height float64 `toml:"height" json:"height"`
}

// Rect converts b to a geometry rectangle.
func (b Box) Rect() geom.Rect {
	return geom.Rect{Left: b.Left, Top: b.Top, Width: b.Width, Height: b.Height}
}

// Grid configures grid snapping.
type Grid struct {
	Enabled bool `toml:"enabled" json:"enabled"`
	Cols    int  `toml:"cols" json:"cols"`
}

// Element is a sibling of the target.
type Element struct {
	ID string `toml:"id" json:"id"`
	Box
}

// Target is the manipulated element and its stored props, keyed by the
// field names the controller dispatches.
type Target struct {
	Element
	Props map[string]string `toml:"props" json:"props,omitempty"`
}

// Controller selects and configures the gesture under test.
type Controller struct {
	Kind     string `toml:"kind" json:"kind"`
	Disabled bool   `toml:"disabled" json:"disabled,omitempty"`

	// Resize
	Handle    string `toml:"handle" json:"handle,omitempty"`
	WidthKey  string `toml:"width_key" json:"width_key,omitempty"`
	HeightKey string `toml:"height_key" json:"height_key,omitempty"`

	// Spacing
	Spacing    string `toml:"spacing" json:"spacing,omitempty"`
	Side       string `toml:"side" json:"side,omitempty"`
	MarginKey  string `toml:"margin_key" json:"margin_key,omitempty"`
	PaddingKey string `toml:"padding_key" json:"padding_key,omitempty"`

	// Rotate
	StylesKey string `toml:"styles_key" json:"styles_key,omitempty"`
}

// Step is one scripted input event.
type Step struct {
	Kind    string  `toml:"kind" json:"kind"`
	X       float64 `toml:"x" json:"x,omitempty"`
	Y       float64 `toml:"y" json:"y,omitempty"`
	Pointer int     `toml:"pointer" json:"pointer,omitempty"`
	Key     string  `toml:"key" json:"key,omitempty"`
	Shift   bool    `toml:"shift" json:"shift,omitempty"`
	Alt     bool    `toml:"alt" json:"alt,omitempty"`
	Ctrl    bool    `toml:"ctrl" json:"ctrl,omitempty"`
	WaitMS  int     `toml:"ms" json:"ms,omitempty"`
}

func (s Step) modifiers() input.Modifiers {
	return input.Modifiers{Shift: s.Shift, Alt: s.Alt, Ctrl: s.Ctrl}
}

func (s Step) pointer() input.PointerEvent {
	return input.PointerEvent{X: s.X, Y: s.Y, PointerID: s.Pointer, Modifiers: s.modifiers()}
}

func (s Step) keyEvent() input.KeyEvent {
	return input.KeyEvent{Key: s.Key, Modifiers: s.modifiers()}
}

// Load reads and validates the scene file at path.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "read %s", path)
	}
	sc, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// LoadFS reads and validates a scene from fsys.
func LoadFS(fsys fs.FS, name string) (*Scene, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "scene %s", name)
	}
	return Decode(bytes.NewReader(data))
}

// Decode parses and validates a scene. Unknown keys are rejected so typos
// in a script fail loudly.
func Decode(r io.Reader) (*Scene, error) {
	var sc Scene
	md, err := toml.NewDecoder(r).Decode(&sc)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidScene, err, "decode scene")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, errors.New(errors.ErrCodeInvalidScene, "unknown keys: %s", strings.Join(keys, ", "))
	}
	sc.setDefaults()
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

func (sc *Scene) setDefaults() {
	c := &sc.Controller
	c.Kind = strings.ToLower(strings.TrimSpace(c.Kind))
	if c.WidthKey == "" {
		c.WidthKey = "width"
	}
	if c.HeightKey == "" {
		c.HeightKey = "height"
	}
	if c.MarginKey == "" {
		c.MarginKey = "margin"
	}
	if c.PaddingKey == "" {
		c.PaddingKey = "padding"
	}
	if c.StylesKey == "" {
		c.StylesKey = "styles"
	}
	if sc.Target.ID == "" {
		sc.Target.ID = "target"
	}
	if sc.Target.Props == nil {
		sc.Target.Props = map[string]string{}
	}
	for i := range sc.Steps {
		sc.Steps[i].Kind = strings.ToLower(strings.TrimSpace(sc.Steps[i].Kind))
	}
}

// Validate checks ids, keys, controller settings and steps.
func (sc *Scene) Validate() error {
	if sc.Parent.Width <= 0 || sc.Parent.Height <= 0 {
		return errors.New(errors.ErrCodeInvalidScene, "parent needs a positive width and height")
	}
	if err := errors.ValidateGridCols(sc.Grid.Cols); err != nil {
		return err
	}
	if sc.Grid.Enabled && sc.Grid.Cols == 0 {
		return errors.New(errors.ErrCodeInvalidScene, "grid enabled without cols")
	}

	seen := map[string]bool{}
	for _, el := range append([]Element{sc.Target.Element}, sc.Siblings...) {
		if err := errors.ValidateComponentID(el.ID); err != nil {
			return err
		}
		if seen[el.ID] {
			return errors.New(errors.ErrCodeInvalidScene, "duplicate element id %q", el.ID)
		}
		seen[el.ID] = true
		if el.Width < 0 || el.Height < 0 {
			return errors.New(errors.ErrCodeInvalidScene, "element %q has a negative size", el.ID)
		}
	}

	c := sc.Controller
	for _, key := range []string{c.WidthKey, c.HeightKey, c.MarginKey, c.PaddingKey, c.StylesKey} {
		if err := errors.ValidateFieldKey(key); err != nil {
			return err
		}
	}
	switch c.Kind {
	case controller.KindDrag, controller.KindRotate:
	case controller.KindResize:
		if _, err := controller.ParseHandle(c.Handle); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidHandle, err, "controller")
		}
	case controller.KindSpacing:
		if _, err := spacing.ParseKind(c.Spacing); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpacing, err, "controller")
		}
		if _, err := spacing.ParseSide(c.Side); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidSpacing, err, "controller")
		}
	default:
		return errors.New(errors.ErrCodeInvalidScene, "unknown controller kind %q", c.Kind)
	}
	for _, key := range []string{c.MarginKey, c.PaddingKey} {
		if v, ok := sc.Target.Props[key]; ok {
			if _, err := spacing.Parse(v); err != nil {
				return errors.Wrap(errors.ErrCodeInvalidSpacing, err, "prop %s", key)
			}
		}
	}

	for i, s := range sc.Steps {
		if err := s.validate(); err != nil {
			return &errors.StepError{Index: i, Kind: s.Kind, Err: err}
		}
	}
	return nil
}

func (s Step) validate() error {
	switch s.Kind {
	case StepDown, StepMove, StepUp, StepBlur:
	case StepKey:
		if s.Key == "" {
			return errors.New(errors.ErrCodeInvalidStep, "key step without key")
		}
	case StepWait:
		if s.WaitMS < 0 {
			return errors.New(errors.ErrCodeInvalidStep, "negative wait")
		}
	default:
		return errors.New(errors.ErrCodeInvalidStep, "unknown step kind %q", s.Kind)
	}
	return nil
}
