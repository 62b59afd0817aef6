package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/scene"
	"github.com/matzehuels/myreality/pkg/spatial/camera"
)

// hitCommand creates the hit command for resolving clicks against a layout.
func (c *CLI) hitCommand() *cobra.Command {
	var (
		radius   float64
		panX     float64
		panY     float64
		zoomStep float64
	)

	cmd := &cobra.Command{
		Use:   "hit [layout.json] [x] [y]",
		Short: "Resolve a screen click to a something",
		Long: `Resolve a screen click to a something.

x and y are screen pixels in the layout's viewport. The camera starts at the
layout's fitted camera; --pan and --zoom move it first, the way a drag and a
wheel would in the app. When points overlap, the last one drawn wins.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "x")
			}
			y, err := strconv.ParseFloat(args[2], 64)
			if err != nil {
				return errors.Wrap(errors.ErrCodeInvalidInput, err, "y")
			}

			l, err := scene.ReadLayoutFile(args[0])
			if err != nil {
				return err
			}

			if radius == 0 {
				radius = c.Config.Camera.HitRadius
			}
			cam := camera.Pan(l.Camera, panX, panY)
			if zoomStep != 0 {
				cam = camera.ZoomAt(cam, zoomStep, x, y, l.Viewport, camera.DefaultMinZoom, camera.DefaultMaxZoom)
			}

			world := camera.ScreenToWorld(x, y, cam, l.Viewport)
			printKeyValue("Screen", fmt.Sprintf("%.1f, %.1f", x, y))
			printKeyValue("World", fmt.Sprintf("%.1f, %.1f", world.X, world.Y))
			printKeyValue("Camera", fmt.Sprintf("%.1f, %.1f @ %.2fx", cam.X, cam.Y, cam.Zoom))

			p, ok := pipeline.HitTestWith(l, cam, x, y, radius)
			if !ok {
				printInfo("Nothing there")
				return nil
			}
			printSuccess("Hit %s", StyleHighlight.Render(p.ID))
			printKeyValue("Depth", strconv.Itoa(p.Depth))
			if p.ParentID != "" {
				printKeyValue("Parent", p.ParentID)
			}
			if p.Content != "" {
				printKeyValue("Content", p.Content)
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&radius, "radius", 0, "hit radius in pixels (default 20)")
	cmd.Flags().Float64Var(&panX, "pan-x", 0, "drag the view by this many pixels horizontally first")
	cmd.Flags().Float64Var(&panY, "pan-y", 0, "drag the view by this many pixels vertically first")
	cmd.Flags().Float64Var(&zoomStep, "zoom", 0, "wheel delta applied at the click position first")

	return cmd
}
