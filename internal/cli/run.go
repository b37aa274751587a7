package cli

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/render/term"
	"github.com/matzehuels/cardstack/pkg/stack"
)

// runOpts holds the flags of the interactive view.
type runOpts struct {
	width   float64 // container width in pixels; 0 follows the terminal
	noMouse bool
}

// runCommand creates the run command. It is also what the root command
// does when invoked without a subcommand.
func (c *CLI) runCommand() *cobra.Command {
	var opts runOpts

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the card stack in the terminal",
		Long: `Animate the card stack in the terminal.

Click the top card, or press enter or space, to toggle between the collapsed
and the expanded stack. Clicks on the cards behind it are ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runTUI(cmd.Context(), opts)
		},
	}
	bindRunFlags(cmd, &opts)
	return cmd
}

func bindRunFlags(cmd *cobra.Command, opts *runOpts) {
	cmd.Flags().Float64Var(&opts.width, "width", 0, "container width in pixels (default: terminal width)")
	cmd.Flags().BoolVar(&opts.noMouse, "no-mouse", false, "disable mouse input")
}

// runTUI starts the interactive view and blocks until it quits or ctx is
// cancelled.
func (c *CLI) runTUI(ctx context.Context, opts runOpts) error {
	if opts.width != 0 {
		if err := errs.ValidatePositive("width", opts.width); err != nil {
			return err
		}
	}

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return err
	}

	logger, closer, err := fileLogger(c.Logger.GetLevel())
	if err != nil {
		return err
	}
	defer closer.Close()
	ctx = withLogger(ctx, logger)

	fixed := opts.width > 0
	width := cfg.Layout.Width
	if fixed {
		width = opts.width
	}
	s := cfg.NewStack(
		stack.WithContainerWidth(width),
		stack.WithObserver(newStackObserver(ctx, cfg.Spring.FPS)),
	)
	p := term.New(s.Bounds(), term.WithCellSize(cfg.Terminal.CellWidth, cfg.Terminal.CellHeight))

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Terminal.Mouse && !opts.noMouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	logger.Debug("Starting", "cards", s.Len(), "width", width, "fps", s.Driver().FPS())

	_, err = tea.NewProgram(NewStackModel(ctx, s, p, fixed), programOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "run terminal view")
	}
	return nil
}
