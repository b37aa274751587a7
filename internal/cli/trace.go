package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// maxTraceFrames bounds a trace in case a spring never settles.
const maxTraceFrames = 10000

// traceOpts holds the command-line flags for the trace command.
type traceOpts struct {
	taps     int  // number of taps on the top card
	interval int  // frames between taps; 0 waits for each transition to settle
	json     bool // emit JSON instead of a table
}

// traceRow is the state of the stack after one frame.
type traceRow struct {
	Frame    int     `json:"frame"`
	Tap      bool    `json:"tap,omitempty"`
	Expanded bool    `json:"expanded"`
	Target   float64 `json:"target"`
	Progress float64 `json:"progress"`
	Velocity float64 `json:"velocity"`
	Active   bool    `json:"active"`
}

// traceCommand creates the trace command for inspecting the spring.
func (c *CLI) traceCommand() *cobra.Command {
	opts := traceOpts{taps: 1}

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Print the progress trajectory of a tap sequence",
		Long: `Simulate taps on the top card and print the progress value frame by frame.

Each tap retargets the spring without resetting it, so a tap during a
transition reverses it from wherever it is.`,
		Example: `  cardstack trace
  cardstack trace --taps 2 --interval 8
  cardstack trace --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.taps < 0 || opts.interval < 0 {
				return errs.New(errs.ErrCodeInvalidInput, "--taps and --interval must not be negative")
			}
			return c.runTrace(cmd.Context(), cmd.OutOrStdout(), opts)
		},
	}

	cmd.Flags().IntVar(&opts.taps, "taps", opts.taps, "number of taps on the top card")
	cmd.Flags().IntVar(&opts.interval, "interval", 0, "frames between taps (default: wait until settled)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "output JSON")

	return cmd
}

func (c *CLI) runTrace(ctx context.Context, w io.Writer, opts traceOpts) error {
	logger := loggerFromContext(ctx)

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return err
	}
	s := cfg.NewStack(stack.WithObserver(newStackObserver(ctx, cfg.Spring.FPS)))
	rows := simulate(s, opts.taps, opts.interval)
	logger.Debugf("Traced %d frames for %d taps", len(rows), opts.taps)

	if opts.json {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return errs.Wrap(errs.ErrCodeInternal, err, "encode trace")
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	fmt.Fprintln(w, traceTable(rows))
	printTraceSummary(w, rows, s.Driver().FPS())
	return nil
}

// simulate taps the top card taps times and records every frame. With a
// positive interval the next tap lands that many frames after the previous
// one, or earlier if the transition settles first. The last transition
// always runs to rest.
func simulate(s *stack.Controller, taps, interval int) []traceRow {
	rows := []traceRow{snapshot(s, 0, false)}
	frame := 0

	run := func(limit int) {
		for i := 0; (limit <= 0 || i < limit) && frame < maxTraceFrames && s.Animating(); i++ {
			s.Step()
			frame++
			rows = append(rows, snapshot(s, frame, false))
		}
	}

	for t := 0; t < taps; t++ {
		s.Tap(0)
		rows = append(rows, snapshot(s, frame, true))
		if t < taps-1 {
			run(interval)
		} else {
			run(0)
		}
	}
	return rows
}

func snapshot(s *stack.Controller, frame int, tap bool) traceRow {
	d := s.Driver()
	return traceRow{
		Frame:    frame,
		Tap:      tap,
		Expanded: s.Expanded(),
		Target:   d.Target(),
		Progress: d.Value(),
		Velocity: d.Velocity(),
		Active:   d.Active(),
	}
}

// traceTable renders rows as a lipgloss table. Tap rows are highlighted and
// progress values outside [0, 1] are marked.
func traceTable(rows []traceRow) string {
	data := make([][]string, len(rows))
	for i, r := range rows {
		event := ""
		switch {
		case r.Tap:
			event = "tap"
		case !r.Active:
			event = "rest"
		}
		data[i] = []string{
			strconv.Itoa(r.Frame),
			fmt.Sprintf("%.4f", r.Progress),
			fmt.Sprintf("%.3f", r.Velocity),
			fmt.Sprintf("%.0f", r.Target),
			event,
		}
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Frame", "Progress", "Velocity", "Target", "Event").
		Rows(data...).
		StyleFunc(func(row, col int) lipgloss.Style {
			base := lipgloss.NewStyle().Padding(0, 1)
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			if row < 0 || row >= len(rows) {
				return base
			}
			r := rows[row]
			switch {
			case r.Tap:
				return base.Foreground(colorCyan).Bold(true)
			case col == 1 && (r.Progress < 0 || r.Progress > 1):
				return base.Foreground(colorYellow)
			case col == 0:
				return base.Foreground(colorDim)
			}
			return base.Foreground(colorWhite)
		}).
		Render()
}

// traceStats summarizes a trace.
type traceStats struct {
	frames int     // frames stepped
	peak   float64 // largest progress value
	trough float64 // smallest progress value
	final  float64
}

func summarize(rows []traceRow) traceStats {
	if len(rows) == 0 {
		return traceStats{}
	}
	st := traceStats{peak: rows[0].Progress, trough: rows[0].Progress}
	for _, r := range rows {
		st.peak = max(st.peak, r.Progress)
		st.trough = min(st.trough, r.Progress)
	}
	last := rows[len(rows)-1]
	st.frames = last.Frame
	st.final = last.Progress
	return st
}

func printTraceSummary(w io.Writer, rows []traceRow, fps int) {
	st := summarize(rows)
	seconds := float64(st.frames) / float64(max(fps, 1))
	printKeyValue(w, "frames", fmt.Sprintf("%d (%.2fs at %d fps)", st.frames, seconds, fps))
	printKeyValue(w, "range", fmt.Sprintf("%.4f .. %.4f", st.trough, st.peak))
	printKeyValue(w, "final", fmt.Sprintf("%.4f", st.final))
}
