// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about stack animation and snapshot rendering.
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
//	    observability.SetStackHooks(&myStackHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Stack().OnToggle(ctx, expanded)
//	// ... animate ...
//	observability.Stack().OnSettle(ctx, expanded, frames, duration)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Stack Hooks
// =============================================================================

// StackHooks receives events from the interactive card stack.
type StackHooks interface {
	// OnToggle records a state flip caused by a tap on the top card.
	OnToggle(ctx context.Context, expanded bool)

	// OnIgnoredTap records a tap that hit a card other than the top one.
	OnIgnoredTap(ctx context.Context, index int)

	// OnSettle records the end of a transition.
	OnSettle(ctx context.Context, expanded bool, frames int, duration time.Duration)
}

// =============================================================================
// Render Hooks
// =============================================================================

// RenderHooks receives events from snapshot rendering.
type RenderHooks interface {
	OnRenderStart(ctx context.Context, formats []string, progress float64)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStackHooks is a no-op implementation of StackHooks.
type NoopStackHooks struct{}

func (NoopStackHooks) OnToggle(context.Context, bool)                     {}
func (NoopStackHooks) OnIgnoredTap(context.Context, int)                  {}
func (NoopStackHooks) OnSettle(context.Context, bool, int, time.Duration) {}

// NoopRenderHooks is a no-op implementation of RenderHooks.
type NoopRenderHooks struct{}

func (NoopRenderHooks) OnRenderStart(context.Context, []string, float64)                 {}
func (NoopRenderHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	stackHooks  StackHooks  = NoopStackHooks{}
	renderHooks RenderHooks = NoopRenderHooks{}
	hooksMu     sync.RWMutex
)

// SetStackHooks registers custom stack hooks.
// This should be called once at application startup.
func SetStackHooks(h StackHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		stackHooks = h
	}
}

// SetRenderHooks registers custom render hooks.
// This should be called once at application startup.
func SetRenderHooks(h RenderHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		renderHooks = h
	}
}

// Stack returns the registered stack hooks.
func Stack() StackHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return stackHooks
}

// Render returns the registered render hooks.
func Render() RenderHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return renderHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	stackHooks = NoopStackHooks{}
	renderHooks = NoopRenderHooks{}
}
