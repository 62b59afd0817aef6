package cli

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
)

// exploreCommand creates the interactive explorer.
func (c *CLI) exploreCommand() *cobra.Command {
	var (
		noCache bool
		flags   optionFlags
	)

	cmd := &cobra.Command{
		Use:   "explore [scene.yaml | layout.json]",
		Short: "Pan, zoom and select somethings in the terminal",
		Long: `Pan, zoom and select somethings in the terminal.

Accepts a scene (laid out on the fly) or a layout.json. Arrow keys or hjkl
pan, +/- or the mouse wheel zoom around the cursor, clicking or tab selects a
something and flies the camera to it.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0], c.options(cmd, &flags), noCache)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	flags.addLayoutFlags(cmd.Flags())

	return cmd
}

func (c *CLI) runExplore(ctx context.Context, input string, opts pipeline.Options, noCache bool) error {
	l, err := c.loadLayout(ctx, input, opts, noCache)
	if err != nil {
		return err
	}

	minZoom, maxZoom := opts.MinZoom, opts.MaxZoom
	if minZoom == 0 {
		minZoom = camera.DefaultMinZoom
	}
	if maxZoom == 0 {
		maxZoom = camera.DefaultMaxZoom
	}

	p := tea.NewProgram(newExploreModel(l, minZoom, maxZoom),
		tea.WithContext(ctx),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("explorer: %w", err)
	}
	if m, ok := final.(exploreModel); ok && m.selected != "" {
		printInfo("Last selected: %s", StyleHighlight.Render(m.selected))
	}
	return nil
}

// loadLayout reads a layout.json directly or lays out a scene.
func (c *CLI) loadLayout(ctx context.Context, input string, opts pipeline.Options, noCache bool) (scene.Layout, error) {
	if strings.HasSuffix(input, ".layout.json") {
		return scene.ReadLayoutFile(input)
	}

	s, err := pipeline.LoadScene(ctx, input)
	if err != nil {
		return scene.Layout{}, fmt.Errorf("load scene %s: %w", input, err)
	}
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return scene.Layout{}, fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	return runner.GenerateLayout(ctx, s, opts)
}
