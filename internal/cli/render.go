package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/cardstack/pkg/errors"
	"github.com/matzehuels/cardstack/pkg/observability"
	"github.com/matzehuels/cardstack/pkg/render/sink"
	"github.com/matzehuels/cardstack/pkg/stack"
)

const (
	formatSVG  = "svg"
	formatPNG  = "png"
	formatJSON = "json"

	// defaultBase is the output base path when -o is not given.
	defaultBase = appName
	// stdoutPath writes a single snapshot to stdout.
	stdoutPath = "-"
)

// validFormats is the set of supported output formats.
var validFormats = map[string]bool{formatSVG: true, formatPNG: true, formatJSON: true}

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file, base path for multiple formats, or "-"
	formats     []string // output formats: "svg", "png", "json"
	progress    float64  // progress value to capture
	progressSet bool     // whether --progress was given
	expanded    bool     // capture the expanded state
	width       float64  // container width in pixels
	widthSet    bool     // whether --width was given
	scale       float64  // PNG scale factor
}

// renderCommand creates the render command for exporting snapshots.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		width: stack.DefaultContainerWidth,
		scale: sink.DefaultScale,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Export a snapshot of the card stack",
		Long: `Export a snapshot of the card stack as SVG, PNG or JSON.

By default the collapsed stack is captured at rest. --expanded captures the
expanded stack; --progress captures any point of the animation, including
the overshoot outside [0, 1].`,
		Example: `  cardstack render
  cardstack render --expanded -f svg,png -o stack
  cardstack render --progress 0.5 -f json -o -`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			opts.progressSet = cmd.Flags().Changed("progress")
			opts.widthSet = cmd.Flags().Changed("width")
			if err := validateRenderOpts(&opts); err != nil {
				return err
			}
			return c.runRender(cmd.Context(), cmd.OutOrStdout(), &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, json (comma-separated)")
	cmd.Flags().Float64Var(&opts.progress, "progress", 0, "progress value to capture (may lie outside [0, 1])")
	cmd.Flags().BoolVar(&opts.expanded, "expanded", false, "capture the expanded stack")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "container width in pixels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{formatSVG, formatPNG, formatJSON}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// validateFormats checks that all requested formats are valid.
func validateFormats(formats []string) error {
	for _, f := range formats {
		if !validFormats[f] {
			return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %s (must be 'svg', 'png', or 'json')", f)
		}
	}
	return nil
}

func validateRenderOpts(opts *renderOpts) error {
	if err := validateFormats(opts.formats); err != nil {
		return err
	}
	if err := errs.ValidateFinite("progress", opts.progress); err != nil {
		return err
	}
	if err := errs.ValidatePositive("width", opts.width); err != nil {
		return err
	}
	if err := errs.ValidatePositive("scale", opts.scale); err != nil {
		return err
	}
	if opts.output == stdoutPath && len(opts.formats) > 1 {
		return errs.New(errs.ErrCodeInvalidInput, "cannot write %d formats to stdout", len(opts.formats))
	}
	if opts.output != "" && opts.output != stdoutPath {
		return errs.ValidateOutputPath(opts.output)
	}
	return nil
}

// basePath derives the base output path. If output has a format extension
// (.svg, .png, .json), that extension is stripped.
func basePath(output string) string {
	if output == "" {
		return defaultBase
	}
	ext := filepath.Ext(output)
	if validFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// outputPath returns where a format is written.
func outputPath(opts *renderOpts, format string) string {
	if len(opts.formats) == 1 && opts.output != "" {
		return opts.output
	}
	return basePath(opts.output) + "." + format
}

// runRender builds the stack from config, captures the requested frame and
// writes it in every requested format. Status lines go to w.
func (c *CLI) runRender(ctx context.Context, w io.Writer, opts *renderOpts) (err error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	cfg, err := c.loadConfig(ctx)
	if err != nil {
		return err
	}
	width := cfg.Layout.Width
	if opts.widthSet {
		width = opts.width
	}

	s := cfg.NewStack(stack.WithContainerWidth(width))
	if opts.expanded {
		s.Toggle()
		s.Settle()
	}
	progress := s.Progress()
	if opts.progressSet {
		progress = opts.progress
	}

	hooks := observability.Render()
	hooks.OnRenderStart(ctx, opts.formats, progress)
	start := time.Now()
	defer func() {
		hooks.OnRenderComplete(ctx, opts.formats, time.Since(start), err)
	}()

	sc := sink.NewScene(s, progress)
	logger.Debugf("Capturing %s stack at progress %.3f (%d cards, width %.0f)", s.State(), progress, s.Len(), width)

	var written []string
	for _, format := range opts.formats {
		data, err := renderScene(sc, format, opts)
		if err != nil {
			return err
		}
		logger.Debugf("Generated %s: %d bytes", format, len(data))

		path := outputPath(opts, format)
		if err := writeOutput(w, path, data); err != nil {
			return err
		}
		if path != stdoutPath {
			logger.Infof("Generated %s", path)
			written = append(written, path)
		}
	}

	if len(written) > 0 {
		printSuccess(w, "Rendered %d snapshot(s)", len(written))
		for _, path := range written {
			printFile(w, path)
		}
	}
	prog.done(fmt.Sprintf("Rendered %s", strings.Join(opts.formats, ", ")))
	return nil
}

// renderScene dispatches to the sink for format.
func renderScene(sc sink.Scene, format string, opts *renderOpts) ([]byte, error) {
	switch format {
	case formatSVG:
		return sink.RenderSVG(sc), nil
	case formatJSON:
		return sink.RenderJSON(sc)
	case formatPNG:
		return sink.RenderPNG(sc, sink.WithScale(opts.scale))
	default:
		return nil, errs.New(errs.ErrCodeInvalidFormat, "unknown format: %s", format)
	}
}

// openOutput opens path for writing; "-" writes to stdout.
func openOutput(stdout io.Writer, path string) (io.WriteCloser, error) {
	if path == stdoutPath {
		return nopCloser{stdout}, nil
	}
	return os.Create(path)
}

func writeOutput(stdout io.Writer, path string, data []byte) error {
	out, err := openOutput(stdout, path)
	if err != nil {
		return errs.Wrap(errs.ErrCodeInvalidPath, err, "create %s", path)
	}
	if _, err := out.Write(data); err != nil {
		out.Close()
		return errs.Wrap(errs.ErrCodeInternal, err, "write %s", path)
	}
	if err := out.Close(); err != nil {
		return errs.Wrap(errs.ErrCodeInternal, err, "close %s", path)
	}
	return nil
}
