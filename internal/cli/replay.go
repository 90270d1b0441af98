package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/gosimple/slug"
	"github.com/h2non/filetype"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/matzehuels/snapline/pkg/cache"
	"github.com/matzehuels/snapline/pkg/errors"
	"github.com/matzehuels/snapline/pkg/render"
	"github.com/matzehuels/snapline/pkg/scene"
)

// replayOpts holds the command-line flags for the replay command.
type replayOpts struct {
	pngDir  string  // directory for one PNG per frame
	json    bool    // print the full result as JSON instead of a table
	scale   float64 // PNG pixel scale
	noCache bool    // re-render every frame
}

func (c *CLI) replayCommand() *cobra.Command {
	opts := replayOpts{scale: 1}

	cmd := &cobra.Command{
		Use:   "replay <scene.toml>",
		Short: "Replay a scripted gesture scene",
		Long: `Replay loads a TOML scene, starts the gesture controller it names and feeds
its steps through a simulated pointer and keyboard. Each step becomes a frame
showing the dispatched actions, the element box, snap guides and readouts.`,
		Example: `  snapline replay drag.toml
  snapline replay resize.toml --json
  snapline replay resize.toml --png frames --scale 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runReplay(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.pngDir, "png", "", "write one PNG per frame into this directory")
	cmd.Flags().BoolVar(&opts.json, "json", false, "print frames as JSON")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG pixel scale")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "re-render frames instead of reusing cached PNGs")

	return cmd
}

func (c *CLI) runReplay(ctx context.Context, w io.Writer, path string, opts replayOpts) error {
	res, err := scene.NewRunner(c.Logger).RunFile(ctx, path)
	if err != nil {
		return err
	}

	if opts.json {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintln(w, frameTable(res))
	printStats(res.Stats.Steps, res.Stats.Actions, anySnapped(res.Frames))
	if res.Last().Active {
		printWarning("gesture still active after the last step")
	}

	if opts.pngDir == "" {
		printNextStep("Export frames", fmt.Sprintf("%s replay %s --png frames", appName, path))
		return nil
	}

	files, err := c.exportFrames(ctx, res, opts)
	if err != nil {
		return err
	}
	for _, f := range files {
		printFile(f)
	}
	return nil
}

// exportFrames renders every frame of res into opts.pngDir.
func (c *CLI) exportFrames(ctx context.Context, res *scene.Result, opts replayOpts) (files []string, err error) {
	if err := os.MkdirAll(opts.pngDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create %s", opts.pngDir)
	}

	store := c.newCache(opts.noCache)
	defer func() {
		if er := store.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("close frame cache: %w", er))
		}
	}()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, os.Stderr, fmt.Sprintf("Rendering %d frames...", len(res.Frames)))
	spinner.Start()

	prefix := framePrefix(res.Scene.Name)
	files = make([]string, 0, len(res.Frames))
	cached := 0
	for _, f := range res.Frames {
		if err := ctx.Err(); err != nil {
			spinner.Stop()
			return files, err
		}
		base := fmt.Sprintf("%s-%03d.png", prefix, f.Index)
		if err := errors.ValidatePath(base); err != nil {
			spinner.Stop()
			return files, err
		}
		name := filepath.Join(opts.pngDir, base)
		spinner.SetMessage("Rendering frame %d/%d", f.Index+1, len(res.Frames))

		data, hit, err := renderFrame(ctx, store, frameInput(res.Scene, f), opts.scale)
		if err != nil {
			spinner.StopWithError("render failed")
			return files, err
		}
		if hit {
			cached++
		}
		if err := os.WriteFile(name, data, 0o644); err != nil {
			spinner.StopWithError("write failed")
			return files, errors.Wrap(errors.ErrCodeInternal, err, "write %s", name)
		}
		files = append(files, name)
	}

	spinner.StopWithSuccess(fmt.Sprintf("Rendered %d frames", len(files)))
	prog.done(fmt.Sprintf("Rendered %d frames, %d from cache", len(files), cached))
	return files, nil
}

// renderFrame returns the PNG for in, from store when an identical frame
// was rendered before. Cached bytes that are not a PNG are re-rendered.
func renderFrame(ctx context.Context, store cache.Cache, in render.Input, scale float64) ([]byte, bool, error) {
	key, err := cache.Key("frame", in, scale)
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "frame key")
	}
	if data, hit, err := store.Get(ctx, key); err == nil && hit && filetype.Is(data, "png") {
		return data, true, nil
	}

	var buf bytes.Buffer
	if err := render.PNG(&buf, in, render.WithScale(scale)); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render frame")
	}
	if err := store.Set(ctx, key, buf.Bytes(), 0); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "cache frame")
	}
	return buf.Bytes(), false, nil
}

// frameInput lays out f for rendering. Siblings never move during a scene.
func frameInput(sc *scene.Scene, f scene.Frame) render.Input {
	in := render.Input{
		Parent:   sc.Parent.Rect(),
		Target:   render.Box{ID: sc.Target.ID, Rect: f.Target},
		Rotation: f.Rotation,
		Guides:   f.Guides,
		Overlay:  f.Overlay,
		Caption:  fmt.Sprintf("#%d %s", f.Index, stepLabel(f.Step)),
	}
	in.Parent.Left, in.Parent.Top = 0, 0
	for _, s := range sc.Siblings {
		in.Siblings = append(in.Siblings, render.Box{ID: s.ID, Rect: s.Rect()})
	}
	if f.Readout != "" {
		in.Caption += "  " + f.Readout
	}
	return in
}

// framePrefix turns a scene name into a file-name-safe prefix.
func framePrefix(name string) string {
	if p := slug.Make(name); p != "" {
		return p
	}
	return "frame"
}

func stepLabel(s scene.Step) string {
	var mods []string
	if s.Shift {
		mods = append(mods, "shift")
	}
	if s.Alt {
		mods = append(mods, "alt")
	}
	if s.Ctrl {
		mods = append(mods, "ctrl")
	}
	var label string
	switch s.Kind {
	case scene.StepDown, scene.StepMove, scene.StepUp:
		label = fmt.Sprintf("%s %g,%g", s.Kind, s.X, s.Y)
	case scene.StepKey:
		label = "key " + s.Key
	case scene.StepWait:
		label = fmt.Sprintf("wait %dms", s.WaitMS)
	default:
		label = s.Kind
	}
	if len(mods) > 0 {
		label += " +" + strings.Join(mods, "+")
	}
	return label
}

func actionLabel(f scene.Frame) string {
	if len(f.Actions) == 0 {
		return "—"
	}
	parts := make([]string, 0, len(f.Actions))
	for _, a := range f.Actions {
		b, err := json.Marshal(a)
		if err != nil {
			parts = append(parts, a.Type())
			continue
		}
		parts = append(parts, string(b))
	}
	return strings.Join(parts, "\n")
}

func anySnapped(frames []scene.Frame) bool {
	for _, f := range frames {
		if f.Snapping || f.Guides.X != nil || f.Guides.Y != nil {
			return true
		}
	}
	return false
}

// frameTable renders one row per frame.
func frameTable(res *scene.Result) string {
	rows := make([][]string, 0, len(res.Frames))
	for _, f := range res.Frames {
		rows = append(rows, []string{
			fmt.Sprint(f.Index),
			stepLabel(f.Step),
			actionLabel(f),
			formatRect(f.Target),
			formatGuides(f.Guides.X, f.Guides.Y),
			f.Readout,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Step", "Actions", "Box", "Guides", "Readout").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return headerStyle.Padding(0, 1)
			}
			switch col {
			case 0, 1:
				return base.Foreground(colorGray)
			case 4:
				if res.Frames[row].Guides.X != nil || res.Frames[row].Guides.Y != nil {
					return base.Inherit(styleGuide)
				}
				return base.Foreground(colorDim)
			case 5:
				return base.Foreground(colorCyan)
			}
			return base
		})
	return t.Render()
}
