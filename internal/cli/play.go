package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/snapline/pkg/buildinfo"
	"github.com/matzehuels/snapline/pkg/geom"
	"github.com/matzehuels/snapline/pkg/input"
	"github.com/matzehuels/snapline/pkg/scene"
)

const (
	// canvasTop is the number of terminal rows above the canvas.
	canvasTop = 2

	// readoutTick is the virtual time fed to the player while a readout is shown.
	readoutTick = 100 * time.Millisecond
)

// playOpts holds the command-line flags for the play command.
type playOpts struct {
	cellWidth  float64 // pixels per terminal column
	cellHeight float64 // pixels per terminal row
}

func (c *CLI) playCommand() *cobra.Command {
	opts := playOpts{cellWidth: 10, cellHeight: 20}

	cmd := &cobra.Command{
		Use:   "play <scene.toml>",
		Short: "Drive a scene's gesture controller with the terminal mouse",
		Long: `Play loads a scene and hands its controller to the terminal. Press on the
element and drag to run the gesture; arrow keys nudge (alt for a 10px step).
Esc cancels a rotation, b blurs the window, y copies the last dispatched
actions as JSON and q quits. The scene's scripted steps are ignored.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc, err := scene.Load(args[0])
			if err != nil {
				return err
			}
			return c.runPlay(cmd, sc, opts)
		},
	}

	cmd.Flags().Float64Var(&opts.cellWidth, "cell-width", opts.cellWidth, "pixels per terminal column")
	cmd.Flags().Float64Var(&opts.cellHeight, "cell-height", opts.cellHeight, "pixels per terminal row")

	return cmd
}

func (c *CLI) runPlay(cmd *cobra.Command, sc *scene.Scene, opts playOpts) error {
	if opts.cellWidth <= 0 || opts.cellHeight <= 0 {
		return fmt.Errorf("cell size must be positive: %vx%v", opts.cellWidth, opts.cellHeight)
	}
	// The player logs to nowhere: anything written to the terminal would
	// tear the canvas.
	m := NewPlayModel(sc, log.New(io.Discard), opts.cellWidth, opts.cellHeight)

	p := tea.NewProgram(m,
		tea.WithContext(cmd.Context()),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithOutput(cmd.OutOrStdout()),
	)
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(PlayModel); ok {
		c.Logger.Info("played scene", "scene", sc.Name, "steps", fm.Steps, "actions", fm.Actions)
	}
	return nil
}

// =============================================================================
// PlayModel - Interactive gesture playground
// =============================================================================

// PlayModel is the bubbletea model for the play command. Terminal cells map
// onto the scene's parent container at a fixed pixel size per cell.
type PlayModel struct {
	Scene   *scene.Scene
	Frame   scene.Frame
	Steps   int
	Actions int
	Err     error
	Notice  string

	// copyText receives the yanked actions; clipboard.WriteAll by default.
	copyText func(string) error

	player  *scene.Player
	cellW   float64
	cellH   float64
	ticking bool
}

// NewPlayModel creates a play model around a fresh player for sc.
func NewPlayModel(sc *scene.Scene, logger *log.Logger, cellW, cellH float64) PlayModel {
	p := scene.NewPlayer(sc, logger)
	return PlayModel{
		Scene:  sc,
		Frame:    scene.Frame{Target: p.Target(), Props: p.Reducer().Props()},
		copyText: clipboard.WriteAll,
		player:   p,
		cellW:    cellW,
		cellH:    cellH,
	}
}

type tickMsg struct{}

func tick() tea.Cmd {
	return tea.Tick(readoutTick, func(time.Time) tea.Msg { return tickMsg{} })
}

func (m PlayModel) Init() tea.Cmd {
	return nil
}

func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.player.Close()
			return m, tea.Quit
		case "b":
			return m.step(scene.Step{Kind: scene.StepBlur})
		case "y":
			return m.yank(), nil
		}
		if s, ok := keyStep(msg); ok {
			return m.step(s)
		}
	case tea.MouseMsg:
		if msg.Button != tea.MouseButtonLeft && msg.Action != tea.MouseActionRelease {
			return m, nil
		}
		x, y := m.pixel(msg.X, msg.Y)
		s := scene.Step{X: x, Y: y, Shift: msg.Shift, Alt: msg.Alt, Ctrl: msg.Ctrl}
		switch msg.Action {
		case tea.MouseActionPress:
			if m.player.Active() || !m.hit(x, y) {
				return m, nil
			}
			s.Kind = scene.StepDown
		case tea.MouseActionMotion:
			if !m.player.Active() {
				return m, nil
			}
			s.Kind = scene.StepMove
		case tea.MouseActionRelease:
			if !m.player.Active() {
				return m, nil
			}
			s.Kind = scene.StepUp
		default:
			return m, nil
		}
		return m.step(s)
	case tickMsg:
		m.ticking = false
		if m.Frame.Readout == "" {
			return m, nil
		}
		return m.step(scene.Step{Kind: scene.StepWait, WaitMS: int(readoutTick / time.Millisecond)})
	}
	return m, nil
}

// step feeds s to the player and keeps the readout clock running while a
// readout is visible.
func (m PlayModel) step(s scene.Step) (tea.Model, tea.Cmd) {
	f, err := m.player.Step(s)
	m.Err = err
	m.Notice = ""
	m.Frame = f
	m.Steps++
	m.Actions += len(f.Actions)
	if f.Readout != "" && !m.ticking {
		m.ticking = true
		return m, tick()
	}
	return m, nil
}

// yank copies the latest frame's actions to the clipboard as JSON.
func (m PlayModel) yank() PlayModel {
	if len(m.Frame.Actions) == 0 {
		m.Notice = "nothing to copy"
		return m
	}
	data, err := json.Marshal(m.Frame.Actions)
	if err == nil {
		err = m.copyText(string(data))
	}
	if err != nil {
		m.Notice = "copy failed: " + err.Error()
		return m
	}
	m.Notice = fmt.Sprintf("copied %d action(s)", len(m.Frame.Actions))
	return m
}

// pixel converts a terminal cell to client coordinates.
func (m PlayModel) pixel(col, row int) (float64, float64) {
	p := m.Scene.Parent
	return p.Left + float64(col)*m.cellW, p.Top + float64(row-canvasTop)*m.cellH
}

// hit reports whether client point x,y lies on the target.
func (m PlayModel) hit(x, y float64) bool {
	p := m.Scene.Parent
	return m.player.Target().Contains(geom.Point{X: x - p.Left, Y: y - p.Top})
}

func keyStep(msg tea.KeyMsg) (scene.Step, bool) {
	s := scene.Step{Kind: scene.StepKey, Alt: msg.Alt}
	switch msg.Type {
	case tea.KeyLeft:
		s.Key = input.KeyArrowLeft
	case tea.KeyRight:
		s.Key = input.KeyArrowRight
	case tea.KeyUp:
		s.Key = input.KeyArrowUp
	case tea.KeyDown:
		s.Key = input.KeyArrowDown
	case tea.KeyShiftLeft:
		s.Key, s.Shift = input.KeyArrowLeft, true
	case tea.KeyShiftRight:
		s.Key, s.Shift = input.KeyArrowRight, true
	case tea.KeyShiftUp:
		s.Key, s.Shift = input.KeyArrowUp, true
	case tea.KeyShiftDown:
		s.Key, s.Shift = input.KeyArrowDown, true
	case tea.KeyEsc:
		s.Key = input.KeyEscape
	default:
		return scene.Step{}, false
	}
	return s, true
}

// =============================================================================
// Canvas
// =============================================================================

type cell uint8

const (
	cellEmpty cell = iota
	cellSibling
	cellTarget
	cellOverlay
	cellGuide
)

var (
	canvasStyles = map[cell]lipgloss.Style{
		cellEmpty:   lipgloss.NewStyle().Foreground(colorDim),
		cellSibling: lipgloss.NewStyle().Foreground(colorBlue),
		cellTarget:  lipgloss.NewStyle().Foreground(colorYellow),
		cellOverlay: lipgloss.NewStyle().Foreground(colorGreen),
		cellGuide:   styleGuide,
	}
	canvasGlyphs = map[cell]string{
		cellEmpty:   "·",
		cellSibling: "▒",
		cellTarget:  "█",
		cellOverlay: "▓",
	}
)

// canvas rasterizes the parent container into terminal cells. Each cell is
// classified by the pixel at its top-left corner.
func (m PlayModel) canvas() [][]cell {
	cols := int(math.Ceil(m.Scene.Parent.Width / m.cellW))
	rows := int(math.Ceil(m.Scene.Parent.Height / m.cellH))
	t := m.Frame.Target
	center := t.Center()
	rad := -m.Frame.Rotation * math.Pi / 180

	guideCol, guideRow := m.guideCells()

	grid := make([][]cell, rows)
	for r := range grid {
		grid[r] = make([]cell, cols)
		for c := range grid[r] {
			p := geom.Point{X: float64(c) * m.cellW, Y: float64(r) * m.cellH}
			switch {
			case c == guideCol || r == guideRow:
				grid[r][c] = cellGuide
			case m.inTarget(p, center, rad):
				grid[r][c] = cellTarget
				if o := m.Frame.Overlay; o != nil && o.Translate(t.Left, t.Top).Canon().Contains(p) {
					grid[r][c] = cellOverlay
				}
			default:
				for _, s := range m.Scene.Siblings {
					if s.Rect().Canon().Contains(p) {
						grid[r][c] = cellSibling
						break
					}
				}
			}
		}
	}
	return grid
}

// inTarget undoes the target's rotation about its center before testing p.
func (m PlayModel) inTarget(p, center geom.Point, rad float64) bool {
	if rad != 0 {
		d := p.Sub(center)
		sin, cos := math.Sincos(rad)
		p = geom.Point{X: center.X + d.X*cos - d.Y*sin, Y: center.Y + d.X*sin + d.Y*cos}
	}
	return m.Frame.Target.Canon().Contains(p)
}

// guideCells returns the terminal column and row of the guides, or -1.
func (m PlayModel) guideCells() (col, row int) {
	col, row = -1, -1
	t := m.Frame.Target
	if g := m.Frame.Guides.X; g != nil {
		col = int(math.Round((t.Left + *g) / m.cellW))
	}
	if g := m.Frame.Guides.Y; g != nil {
		row = int(math.Round((t.Top + *g) / m.cellH))
	}
	return col, row
}

func (m PlayModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName) + " " + StyleDim.Render(buildinfo.Short()))
	b.WriteString(StyleDim.Render(fmt.Sprintf("  %s · %s", m.Scene.Name, m.Scene.Controller.Kind)))
	b.WriteString("\n\n")

	guideCol, guideRow := m.guideCells()
	for r, row := range m.canvas() {
		for c := 0; c < len(row); {
			kind := row[c]
			end := c
			for end < len(row) && row[end] == kind {
				end++
			}
			var run string
			if kind == cellGuide {
				for i := c; i < end; i++ {
					switch {
					case i == guideCol && r == guideRow:
						run += "┼"
					case i == guideCol:
						run += "│"
					default:
						run += "─"
					}
				}
			} else {
				run = strings.Repeat(canvasGlyphs[kind], end-c)
			}
			b.WriteString(canvasStyles[kind].Render(run))
			c = end
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("drag: gesture  ←↑↓→: nudge (alt ×10)  esc: cancel  b: blur  y: copy actions  q: quit"))
	return b.String()
}

func (m PlayModel) status() string {
	f := m.Frame
	parts := []string{
		formatRect(f.Target),
		styleGuide.Render("guides " + formatGuides(f.Guides.X, f.Guides.Y)),
	}
	if f.Snapping {
		parts = append(parts, styleSnapped.Render(iconSnapped))
	}
	if f.Rotation != 0 {
		parts = append(parts, geom.FormatNumber(f.Rotation)+"°")
	}
	if f.Readout != "" {
		parts = append(parts, styleReadout.Render(f.Readout))
	}
	line := strings.Join(parts, StyleDim.Render(" · "))
	if m.Notice != "" {
		line += "\n" + styleIconInfo.Render(iconInfo) + " " + m.Notice
	}
	if m.Err != nil {
		line += "\n" + styleIconError.Render(iconError) + " " + m.Err.Error()
	}
	return line
}
