package cli

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/myreality/pkg/pipeline"
	"github.com/matzehuels/myreality/pkg/spatial/depth"
)

// depthCommand creates the depth command.
func (c *CLI) depthCommand() *cobra.Command {
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "depth [scene.yaml] [id...]",
		Short: "Print the depth of somethings in a scene",
		Long: `Print the depth of somethings in a scene.

Roots (no parent, or a parent missing from the scene) have depth 0; every
other something is one deeper than its parent. Parent cycles stop at
--max-steps with a warning. With ids, only those are printed.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			s, err := pipeline.LoadScene(ctx, args[0])
			if err != nil {
				return err
			}
			ctx = withScene(ctx, s.Name)

			opts := []depth.Option{depth.WithLogger(loggerFromContext(ctx)), depth.WithMaxSteps(maxSteps)}
			entities := s.Entities()
			depths := depth.CalculateAll(entities, opts...)

			ids := args[1:]
			if len(ids) == 0 {
				for _, e := range entities {
					ids = append(ids, e.ID)
				}
			}

			rows := make([][]string, 0, len(ids))
			for _, id := range ids {
				d, ok := depths[id]
				if !ok {
					d = depth.Calculate(id, entities, opts...)
				}
				st, _ := s.Find(id)
				rows = append(rows, []string{id, st.ParentID, strconv.Itoa(d)})
			}
			slices.SortStableFunc(rows, func(a, b []string) int {
				da, _ := strconv.Atoi(a[2])
				db, _ := strconv.Atoi(b[2])
				return da - db
			})

			fmt.Println(renderTable([]string{"ID", "Parent", "Depth"}, rows))
			return nil
		},
	}

	cmd.Flags().IntVar(&maxSteps, "max-steps", depth.MaxSteps, "parent chain step limit")

	return cmd
}
