package scene

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapline/pkg/action"
	"github.com/matzehuels/snapline/pkg/dom"
	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/guides"
	"github.com/matzehuels/snapline/pkg/input"
)

// epoch is the player's virtual clock origin. Only "wait" steps advance it.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Frame is the observable state after one step.
type Frame struct {
	Index    int               `json:"index"`
	Step     Step              `json:"step"`
	Actions  []action.Action   `json:"actions"`
	Target   geom.Rect         `json:"target"`
	Guides   guides.Guides     `json:"guides"`
	Snapping bool              `json:"snapping"`
	Active   bool              `json:"active"`
	Overlay  *geom.Rect        `json:"overlay,omitempty"`
	Rotation float64           `json:"rotation"`
	Readout  string            `json:"readout,omitempty"`
	Props    map[string]string `json:"props"`
}

// Player drives one controller from scripted or live input.
type Player struct {
	Scene *Scene

	logger  *log.Logger
	root    *dom.Node
	target  *dom.Node
	win     *input.Window
	reducer *Reducer
	drv     driver
	now     time.Time
	pending []action.Action
	steps   int
}

// NewPlayer builds the element tree for sc and the controller it names. A
// nil logger uses log.Default().
func NewPlayer(sc *Scene, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.Default()
	}
	p := &Player{
		Scene:  sc,
		logger: logger,
		root:   dom.NewNode("parent", sc.Parent.Rect()),
		win:    input.NewWindow(),
		now:    epoch,
	}
	p.target = p.root.Append(dom.NewNode(sc.Target.ID, sc.Target.Rect()))
	for _, s := range sc.Siblings {
		p.root.Append(dom.NewNode(s.ID, s.Rect()))
	}
	p.reducer = NewReducer(p.target, sc.Target.Props, sc.Controller)
	p.drv = newDriver(p)
	return p
}

func (p *Player) dispatch(a action.Action) {
	p.reducer.Dispatch(a)
	p.pending = append(p.pending, a)
}

// Now returns the player's virtual time.
func (p *Player) Now() time.Time { return p.now }

// Reducer returns the player's reducer.
func (p *Player) Reducer() *Reducer { return p.reducer }

// Target returns the target's current box in the parent's frame.
func (p *Player) Target() geom.Rect { return p.target.Offset() }

// Active reports whether a gesture is in progress.
func (p *Player) Active() bool { return p.drv.active() }

// Step feeds s to the controller and returns the resulting frame. A key
// step goes to the active gesture when there is one, otherwise it is
// offered to the controller's keyboard nudge.
func (p *Player) Step(s Step) (Frame, error) {
	if err := s.validate(); err != nil {
		return Frame{}, &errors.StepError{Index: p.steps, Kind: s.Kind, Err: err}
	}
	switch s.Kind {
	case StepDown:
		p.drv.start(s.pointer())
	case StepMove:
		p.win.PointerMove(s.pointer())
	case StepUp:
		p.win.PointerUp(s.pointer())
	case StepKey:
		e := s.keyEvent()
		if p.drv.active() || !p.drv.nudge(e) {
			p.win.KeyDown(e)
		}
	case StepBlur:
		p.win.Blur()
	case StepWait:
		p.now = p.now.Add(time.Duration(s.WaitMS) * time.Millisecond)
	}

	f := Frame{
		Index:    p.steps,
		Step:     s,
		Actions:  p.pending,
		Target:   p.target.Offset(),
		Active:   p.drv.active(),
		Rotation: p.reducer.Rotation(),
		Props:    p.reducer.Props(),
	}
	p.pending = nil
	p.drv.observe(&f)
	p.steps++

	if err := p.reducer.Err(); err != nil {
		return f, &errors.StepError{Index: f.Index, Kind: s.Kind, Err: err}
	}
	p.logger.Debug("step", "index", f.Index, "kind", s.Kind, "actions", len(f.Actions), "active", f.Active)
	return f, nil
}

// Close ends any in-flight gesture.
func (p *Player) Close() { p.drv.close() }
