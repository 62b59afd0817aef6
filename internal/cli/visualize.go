package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/scene"
)

// visualizeCommand creates the visualize command for rendering from a layout.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   optionFlags
	)

	cmd := &cobra.Command{
		Use:   "visualize [layout.json]",
		Short: "Render visualization from a computed layout",
		Long: `Render visualization from a computed layout.

The visualize command takes a layout.json file (produced by 'layout') and
renders it. The layout contains all positioning information and the fitted
camera, so this step is purely about drawing.

Formats: svg (default), png and pdf (need rsvg-convert), json, dot and tree
(the parent chains drawn by Graphviz).

Use 'render' as a shortcut to go directly from a scene to visual output.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, &flags)
			if len(opts.Formats) > 0 {
				if err := pipeline.ValidateFormats(opts.Formats); err != nil {
					return err
				}
				warnConverter(opts.Formats)
			}
			return c.runVisualize(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.opts.Refresh, "refresh", false, "re-render even when cached")
	flags.addRenderFlags(cmd.Flags())

	return cmd
}

// runVisualize loads the layout and renders it.
func (c *CLI) runVisualize(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	l, err := scene.ReadLayoutFile(input)
	if err != nil {
		return fmt.Errorf("load layout %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %d somethings...", len(l.Points)))
	spinner.Start()

	artifacts, cacheHit, err := runner.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		spinner.StopWithError("Visualization failed")
		return fmt.Errorf("visualize: %w", err)
	}
	spinner.Stop()

	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{pipeline.FormatSVG}
	}
	return writeArtifacts(artifactWriteParams{
		artifacts:  artifacts,
		formats:    formats,
		base:       basePath(input, l.Scene),
		output:     output,
		cacheHit:   cacheHit,
		somethings: len(l.Points),
		rings:      l.Rings,
	})
}
