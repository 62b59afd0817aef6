package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/scene"
)

// layoutCommand creates the layout command for computing scene layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output  string
		noCache bool
		flags   optionFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [scene.yaml]",
		Short: "Compute a layout from a scene",
		Long: `Compute a layout from a scene.

The layout command reads a scene (YAML or JSON, "-" for stdin), computes the
depth of every something, places them on the hexagonal lattice and fits a
camera around them. The output is a layout.json file (same format as
'render -f json') that 'visualize', 'hit' and 'explore' accept.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], c.options(cmd, &flags), output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.addLayoutFlags(cmd.Flags())

	return cmd
}

// runLayout loads the scene, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string, noCache bool) error {
	s, err := pipeline.LoadScene(ctx, input)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", input, err)
	}
	ctx = withScene(withLogger(ctx, c.Logger), s.Name)
	opts.Logger = loggerFromContext(ctx)

	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(opts.Logger)
	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Laying out %d somethings...", s.Len()))
	spinner.Start()

	l, cacheHit, err := runner.GenerateLayoutWithCacheInfo(ctx, s, opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = basePath(input, s.Name) + ".layout.json"
	}

	if err := scene.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}
	prog.done("layout written", "path", outputPath, "somethings", len(l.Points), "cached", cacheHit)

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Points), l.Rings, cacheHit)
	printNewline()
	printNextStep("Render", appName+" visualize "+outputPath)

	return nil
}

// basePath strips known scene and layout extensions from input. Stdin
// input falls back to the scene name.
func basePath(input, name string) string {
	if input == "-" {
		if name == "" {
			return "scene"
		}
		return name
	}
	for _, suffix := range []string{".layout.json", ".yaml", ".yml", ".json"} {
		if strings.HasSuffix(input, suffix) {
			return strings.TrimSuffix(input, suffix)
		}
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}
