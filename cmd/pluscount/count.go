// seehuhn.de/go/plus - counting plus signs in axis-aligned paintings
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"seehuhn.de/go/plus"
)

func newCountCmd() *cobra.Command {
	var (
		lengths     []int64
		directions  string
		showCenters bool
		showStats   bool
	)

	cmd := &cobra.Command{
		Use:   "count",
		Short: "Count the plus signs of a single painting",
		Long: `Count the plus signs painted by a sequence of strokes.

Examples:
  # The first published sample, 4 plus signs
  pluscount count --lengths 6,3,4,5,1,6,3,3,4 --directions ULDRULURD

  # Also list the centers and the pipeline statistics
  pluscount count --lengths 1,2,2,1,1,2,2,1 --directions UDUDLRLR --centers --stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger.Debug("counting plus signs",
				zap.Int("strokes", len(lengths)),
				zap.String("directions", directions))

			out := cmd.OutOrStdout()
			if !showCenters && !showStats {
				n, err := plus.Count(len(lengths), lengths, directions)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, n)
				return nil
			}

			strokes, err := plus.ParseStrokes(lengths, directions)
			if err != nil {
				return err
			}
			c := plus.NewCounter()
			centers, err := c.Centers(strokes)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, len(centers))
			if showCenters {
				for _, p := range centers {
					fmt.Fprintf(out, "  %s\n", p)
				}
			}
			if showStats {
				printStats(out, c.Stats())
			}
			return nil
		},
	}

	cmd.Flags().Int64SliceVarP(&lengths, "lengths", "l", nil, "comma-separated stroke lengths")
	cmd.Flags().StringVarP(&directions, "directions", "d", "", "stroke directions, one of U, D, L, R per stroke")
	cmd.Flags().BoolVar(&showCenters, "centers", false, "list the plus-sign centers")
	cmd.Flags().BoolVar(&showStats, "stats", false, "show pipeline statistics")
	return cmd
}

func printStats(w io.Writer, s plus.Stats) {
	fmt.Fprintf(w, "segments: %d\n", s.Segments)
	fmt.Fprintf(w, "bounds:   [%g %g %g %g]\n", s.Bounds.LLx, s.Bounds.LLy, s.Bounds.URx, s.Bounds.URy)
	fmt.Fprintf(w, "grid:     %d x %d\n", s.DistinctX, s.DistinctY)
	fmt.Fprintf(w, "runs:     %d horizontal, %d vertical\n", s.HorizontalRuns, s.VerticalRuns)
	fmt.Fprintf(w, "events:   %d\n", s.Events)
}
