// Package observability provides hooks for metrics and tracing.
//
// The package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register
// hooks at startup to receive events about layout runs and render
// operations; libraries emit events through the registry and the no-op
// defaults make instrumentation free when nothing is registered.
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
package observability

import (
	"sync"
	"time"
)

// LayoutHooks receives events from the axis layout engine. The engine
// is synchronous and context-free, so events carry values only.
type LayoutHooks interface {
	// OnLayoutStart fires when a layout run begins, with the view span
	// in milliseconds.
	OnLayoutStart(spanMillis float64)

	// OnAttempt fires once per granularity tried within a run.
	OnAttempt(unit string, accepted bool)

	// OnLayoutComplete fires when the run ends. outcome is the
	// stringified result class ("full", "slanted", "degraded").
	OnLayoutComplete(outcome string, duration time.Duration, err error)
}

// RenderHooks receives events from the render sinks.
type RenderHooks interface {
	// OnRenderStart fires before a sink runs, with the output format.
	OnRenderStart(format string)

	// OnRenderComplete fires when the sink finishes.
	OnRenderComplete(format string, bytes int, duration time.Duration, err error)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnLayoutStart(float64)                         {}
func (NoopLayoutHooks) OnAttempt(string, bool)                        {}
func (NoopLayoutHooks) OnLayoutComplete(string, time.Duration, error) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(string)                               {}
func (NoopRenderHooks) OnRenderComplete(string, int, time.Duration, error) {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks. Call once at application
// startup before any layout runs.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetRenderHooks registers custom render hooks. Call once at application
// startup before any render operations.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults. Primarily useful
// for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	renderHooks = NoopRenderHooks{}
}
