// Package observability provides hooks for gesture and replay instrumentation.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about gestures and scene replays.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetGestureHooks(&myGestureHooks{})
//	    // ... run application
//	}
//
// Controllers call hooks to emit events:
//
//	observability.Gestures().OnGestureStart("drag", id)
//	// ... pointer moves ...
//	observability.Gestures().OnGestureEnd("drag", id, moves, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Gesture Hooks
// =============================================================================

// GestureHooks receives events from the gesture controllers. Controllers run
// inside input handlers and carry no context.
type GestureHooks interface {
	// OnGestureStart records a gesture that passed its preconditions.
	OnGestureStart(kind, id string)

	// OnGestureEnd records gesture teardown with the number of moves handled.
	OnGestureEnd(kind, id string, moves int, duration time.Duration)

	// OnDispatch records an emitted action.
	OnDispatch(kind, id, actionType string)

	// OnSnap records a snap rule firing ("sibling", "grid", "full", "angle").
	OnSnap(kind, id, rule string)
}

// =============================================================================
// Replay Hooks
// =============================================================================

// ReplayHooks receives events from scene replays.
type ReplayHooks interface {
	OnReplayStart(ctx context.Context, scene string, steps int)
	OnReplayComplete(ctx context.Context, scene string, actions int, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopGestureHooks is a no-op implementation of GestureHooks.
type NoopGestureHooks struct{}

func (NoopGestureHooks) OnGestureStart(string, string)                     {}
func (NoopGestureHooks) OnGestureEnd(string, string, int, time.Duration) {}
func (NoopGestureHooks) OnDispatch(string, string, string)                 {}
func (NoopGestureHooks) OnSnap(string, string, string)                     {}

// NoopReplayHooks is a no-op implementation of ReplayHooks.
type NoopReplayHooks struct{}

func (NoopReplayHooks) OnReplayStart(context.Context, string, int) {}
func (NoopReplayHooks) OnReplayComplete(context.Context, string, int, time.Duration, error) {
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	gestureHooks GestureHooks = NoopGestureHooks{}
	replayHooks  ReplayHooks  = NoopReplayHooks{}
	hooksMu      sync.RWMutex
)

// SetGestureHooks registers custom gesture hooks.
// This should be called once at application startup before any gestures run.
func SetGestureHooks(h GestureHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		gestureHooks = h
	}
}

// SetReplayHooks registers custom replay hooks.
func SetReplayHooks(h ReplayHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		replayHooks = h
	}
}

// Gestures returns the registered gesture hooks.
func Gestures() GestureHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return gestureHooks
}

// Replay returns the registered replay hooks.
func Replay() ReplayHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return replayHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	gestureHooks = NoopGestureHooks{}
	replayHooks = NoopReplayHooks{}
}

// =============================================================================
// Counting Implementation
// =============================================================================

// GestureCounter is a GestureHooks implementation that tallies events. It is
// safe for concurrent use.
type GestureCounter struct {
	mu         sync.Mutex
	Starts     map[string]int
	Ends       map[string]int
	Dispatches map[string]int
	Snaps      map[string]int
}

// NewGestureCounter creates an empty counter.
func NewGestureCounter() *GestureCounter {
	return &GestureCounter{
		Starts:     map[string]int{},
		Ends:       map[string]int{},
		Dispatches: map[string]int{},
		Snaps:      map[string]int{},
	}
}

func (c *GestureCounter) OnGestureStart(kind, _ string) {
	c.mu.Lock()
	c.Starts[kind]++
	c.mu.Unlock()
}

func (c *GestureCounter) OnGestureEnd(kind, _ string, _ int, _ time.Duration) {
	c.mu.Lock()
	c.Ends[kind]++
	c.mu.Unlock()
}

func (c *GestureCounter) OnDispatch(kind, _, _ string) {
	c.mu.Lock()
	c.Dispatches[kind]++
	c.mu.Unlock()
}

func (c *GestureCounter) OnSnap(_, _, rule string) {
	c.mu.Lock()
	c.Snaps[rule]++
	c.mu.Unlock()
}

// Snapshot returns a copy of the tallies keyed by category then name.
func (c *GestureCounter) Snapshot() map[string]map[string]int {
	c.mu.Lock()
	defer c.mu.Unlock()
	cp := func(m map[string]int) map[string]int {
		out := make(map[string]int, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return map[string]map[string]int{
		"start":    cp(c.Starts),
		"end":      cp(c.Ends),
		"dispatch": cp(c.Dispatches),
		"snap":     cp(c.Snaps),
	}
}
