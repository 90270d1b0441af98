package scene

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/snapline/pkg/observability"
)

// Runner replays whole scenes.
//
// The Runner is stateless except for the logger; multiple goroutines can
// use the same Runner with different scenes.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. If logger is nil, log.Default() is used.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Result holds the frames of one replay.
type Result struct {
	Scene  *Scene  `json:"scene"`
	Frames []Frame `json:"frames"`
	Stats  Stats   `json:"stats"`
}

// Stats summarizes a replay.
type Stats struct {
	Steps    int           `json:"steps"`
	Actions  int           `json:"actions"`
	Duration time.Duration `json:"duration"`
}

// Last returns the final frame, or the zero frame for an empty script.
func (r *Result) Last() Frame {
	if len(r.Frames) == 0 {
		return Frame{}
	}
	return r.Frames[len(r.Frames)-1]
}

// Run plays every step of sc. It stops at the first failing step or when
// ctx is done.
func (r *Runner) Run(ctx context.Context, sc *Scene) (res *Result, err error) {
	start := time.Now()
	res = &Result{Scene: sc, Frames: make([]Frame, 0, len(sc.Steps))}

	observability.Replay().OnReplayStart(ctx, sc.Name, len(sc.Steps))
	defer func() {
		observability.Replay().OnReplayComplete(ctx, sc.Name, res.Stats.Actions, time.Since(start), err)
	}()

	p := NewPlayer(sc, r.Logger)
	defer p.Close()

	for _, s := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		f, err := p.Step(s)
		if err != nil {
			return res, err
		}
		res.Frames = append(res.Frames, f)
		res.Stats.Steps++
		res.Stats.Actions += len(f.Actions)
	}
	res.Stats.Duration = time.Since(start)

	r.Logger.Info("replayed scene",
		"scene", sc.Name,
		"steps", res.Stats.Steps,
		"actions", res.Stats.Actions,
		"duration", res.Stats.Duration)
	return res, nil
}

// RunFile loads the scene at path and plays it.
func (r *Runner) RunFile(ctx context.Context, path string) (*Result, error) {
	sc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return r.Run(ctx, sc)
}
