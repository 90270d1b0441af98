// Package cli implements the snapline command-line interface.
//
// # Commands
//
//   - replay: run a TOML scene through its gesture controller and print
//     (or export as JSON and PNG) one frame per step
//   - play: drive a scene's controller interactively with the terminal mouse
//   - snap: quantize a value onto a grid unit
//   - spacing: expand a margin/padding shorthand into its four sides
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// traces every controller step.
package cli

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 12 frames (84ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}
