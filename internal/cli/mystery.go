package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/errors"
	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/spatial/geom"
	"github.com/matzehuels/myreality/pkg/spatial/placement"
)

// mysteryCommand creates the mystery command for question-mark layouts.
func (c *CLI) mysteryCommand() *cobra.Command {
	var (
		seed   uint64
		width  float64
		height float64
		open   int
	)

	cmd := &cobra.Command{
		Use:   "mystery [count]",
		Short: "Scatter question marks over the unexplored map",
		Long: `Scatter question marks over the unexplored map.

Up to five markers use fixed arrangements; more are scattered at random,
kept 10-90% inside the map and apart where room allows. --open N also
resolves where marker N's content panel would open in the viewport.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return errors.New(errors.ErrCodeInvalidInput, "count must be a non-negative integer, got %q", args[0])
			}

			items := make([]int, n)
			for i := range items {
				items[i] = i + 1
			}
			markers := pipeline.Mystery(items, seed)

			rows := make([][]string, len(markers))
			for i, m := range markers {
				rows[i] = []string{
					strconv.Itoa(m.Item),
					fmt.Sprintf("%.1f%%", m.Position.X),
					fmt.Sprintf("%.1f%%", m.Position.Y),
					fmt.Sprintf("%.0fpx", m.Position.Size),
				}
			}
			fmt.Println(renderTable([]string{"#", "X", "Y", "Size"}, rows))

			if open == 0 {
				return nil
			}
			if open < 1 || open > n {
				return errors.New(errors.ErrCodeInvalidInput, "--open must be between 1 and %d", n)
			}
			vp := geom.Viewport{Width: width, Height: height}
			if err := errors.ValidateViewport(vp.Width, vp.Height); err != nil {
				return err
			}
			pos := pipeline.Place(markers[open-1].Position, vp, &placement.Options{})
			printNewline()
			printInfo("Panel for #%d", open)
			printKeyValue("Top", fmt.Sprintf("%.0fpx", pos.Top))
			printKeyValue("Left", fmt.Sprintf("%.0fpx", pos.Left))
			printKeyValue("Max width", fmt.Sprintf("%.0fpx", pos.MaxWidth))
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (default: fresh arrangement every run)")
	cmd.Flags().Float64Var(&width, "width", pipeline.DefaultWidth, "viewport width for --open")
	cmd.Flags().Float64Var(&height, "height", pipeline.DefaultHeight, "viewport height for --open")
	cmd.Flags().IntVar(&open, "open", 0, "resolve the content panel for marker N")

	return cmd
}
