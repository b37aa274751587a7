// Package cli implements the cardstack command-line interface.
//
// This package wires the card stack into cobra commands: an interactive
// bubbletea view of the stack, snapshot export to SVG, PNG and JSON, and a
// frame-by-frame trace of the spring. Logging uses charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - run (default): Animate the stack in the terminal
//   - render: Export a snapshot of one animation frame
//   - trace: Print the progress trajectory of a tap sequence
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context. The interactive view owns the screen, so
// it logs to a file in the state directory, and only when verbose.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/observability"
	"github.com/matzehuels/cardstack/pkg/stack"
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
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Rendered 3 snapshots (12ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// nopCloser adapts a writer that must not be closed, such as stdout.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// fileLogger returns the logger for the interactive view. Below debug level
// it discards everything; at debug level it appends to the state log file.
func fileLogger(level log.Level) (*log.Logger, io.Closer, error) {
	if level > log.DebugLevel {
		return newLogger(io.Discard, level), nopCloser{io.Discard}, nil
	}
	dir, err := stateDir()
	if err != nil {
		return nil, nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errs.Wrap(errs.ErrCodeInternal, err, "create state dir")
	}
	f, err := os.OpenFile(filepath.Join(dir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errs.Wrap(errs.ErrCodeInternal, err, "open log file")
	}
	return newLogger(f, level), f, nil
}

// =============================================================================
// Observability
// =============================================================================

// logStackHooks reports stack events to the logger carried by ctx.
type logStackHooks struct{}

func (logStackHooks) OnToggle(ctx context.Context, expanded bool) {
	loggerFromContext(ctx).Debug("Toggled", "expanded", expanded)
}

func (logStackHooks) OnIgnoredTap(ctx context.Context, index int) {
	loggerFromContext(ctx).Debug("Ignored tap", "index", index)
}

func (logStackHooks) OnSettle(ctx context.Context, expanded bool, frames int, d time.Duration) {
	loggerFromContext(ctx).Debug("Settled", "expanded", expanded, "frames", frames, "duration", d)
}

// logRenderHooks reports snapshot exports to the logger carried by ctx.
type logRenderHooks struct{}

func (logRenderHooks) OnRenderStart(ctx context.Context, formats []string, progress float64) {
	loggerFromContext(ctx).Debug("Render started", "formats", formats, "progress", progress)
}

func (logRenderHooks) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("Render failed", "formats", formats, "duration", d, "err", err)
		return
	}
	l.Debug("Render complete", "formats", formats, "duration", d)
}

// registerLogHooks routes observability events to debug logs.
func registerLogHooks() {
	observability.SetStackHooks(logStackHooks{})
	observability.SetRenderHooks(logRenderHooks{})
}

// stackObserver forwards controller events to the registered stack hooks.
// Settle durations are in animation time: frames over the frame rate.
type stackObserver struct {
	ctx context.Context
	fps int
}

func newStackObserver(ctx context.Context, fps int) stackObserver {
	if fps <= 0 {
		fps = 60
	}
	return stackObserver{ctx: ctx, fps: fps}
}

func (o stackObserver) OnToggle(s stack.State) {
	observability.Stack().OnToggle(o.ctx, s.Expanded)
}

func (o stackObserver) OnSettle(s stack.State, frames int) {
	d := time.Duration(frames) * time.Second / time.Duration(o.fps)
	observability.Stack().OnSettle(o.ctx, s.Expanded, frames, d)
}
