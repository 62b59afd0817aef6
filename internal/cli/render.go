package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/render"
)

// renderCommand creates the render command: scene to artifacts in one step.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   optionFlags
	)

	cmd := &cobra.Command{
		Use:   "render [scene.yaml]",
		Short: "Render a scene to SVG, PNG, PDF, JSON, DOT or a tree diagram",
		Long: `Render a scene to SVG, PNG, PDF, JSON, DOT or a tree diagram.

This runs 'layout' and 'visualize' in one go. Both stages are cached, so
re-rendering the same scene with new styling only redraws.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := c.options(cmd, &flags)
			if err := pipeline.ValidateFormats(opts.Formats); err != nil {
				return err
			}
			warnConverter(opts.Formats)
			return c.runRender(cmd.Context(), args[0], opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.addLayoutFlags(cmd.Flags())
	flags.addRenderFlags(cmd.Flags())

	return cmd
}

// runRender executes the full pipeline and writes every artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	s, err := pipeline.LoadScene(ctx, input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", s.Name))
	spinner.Start()

	result, err := runner.Execute(ctx, s, opts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return err
	}
	spinner.Stop()

	formats := opts.Formats
	if len(formats) == 0 {
		formats = []string{pipeline.FormatSVG}
	}
	return writeArtifacts(artifactWriteParams{
		artifacts:  result.Artifacts,
		formats:    formats,
		base:       basePath(input, s.Name),
		output:     output,
		cacheHit:   result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit,
		somethings: result.Stats.Somethings,
		rings:      result.Stats.Rings,
	})
}

// =============================================================================
// Artifact Output
// =============================================================================

// artifactWriteParams describes rendered artifacts and where they go.
type artifactWriteParams struct {
	artifacts  map[string][]byte
	formats    []string
	base       string // default path without extension
	output     string // explicit output file or base path
	cacheHit   bool
	somethings int
	rings      int
}

// writeArtifacts writes one file per format and prints a summary.
func writeArtifacts(p artifactWriteParams) error {
	paths := outputPaths(p.formats, p.base, p.output)

	printSuccess("Render complete")
	for _, f := range p.formats {
		data, ok := p.artifacts[f]
		if !ok {
			return fmt.Errorf("missing %s output", f)
		}
		if dir := filepath.Dir(paths[f]); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(paths[f], data, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[f], err)
		}
		printFile(fmt.Sprintf("%s %s", paths[f], StyleDim.Render("("+humanize.Bytes(uint64(len(data)))+")")))
	}
	printStats(p.somethings, p.rings, p.cacheHit)
	return nil
}

// warnConverter warns up front when raster or PDF output was requested
// without rsvg-convert installed.
func warnConverter(formats []string) {
	if render.HasConverter() {
		return
	}
	for _, f := range formats {
		if f == pipeline.FormatPNG || f == pipeline.FormatPDF {
			printWarning("%s output needs rsvg-convert (brew install librsvg, apt install librsvg2-bin)", f)
			return
		}
	}
}

// outputPaths names the file for each format. A single format with an
// explicit output uses it verbatim; otherwise the output (or base) gets the
// format's extension.
func outputPaths(formats []string, base, output string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}
	if output != "" {
		base = strings.TrimSuffix(output, filepath.Ext(output))
	}
	for _, f := range formats {
		paths[f] = base + pipeline.FormatExtensions[f]
	}
	return paths
}
