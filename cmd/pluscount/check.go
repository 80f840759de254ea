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
	"runtime"
	"sync/atomic"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"seehuhn.de/go/plus"
	"seehuhn.de/go/plus/internal/casefile"
	"seehuhn.de/go/plus/testcases"
)

func newCheckCmd() *cobra.Command {
	var jobs int

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Count the plus signs of all paintings in a case file",
		Long: `Count the plus signs of all paintings in a YAML or JSON case file and
compare them to the expected counts.  Without a file, the built-in test
cases are used.

Examples:
  # Run the built-in cases
  pluscount check

  # Run the cases from a file, one at a time
  pluscount check --jobs 1 cases.yaml`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var f *casefile.File
			var err error
			if len(args) == 0 {
				f, err = casefile.FromTestCases(testcases.All, testcases.Paths)
				if err != nil {
					return err
				}
			} else {
				f, err = casefile.LoadFile(args[0])
				if err != nil {
					return err
				}
				logger.Debug("loaded case file",
					zap.String("file", args[0]),
					zap.Int("cases", len(f.Cases)),
					zap.Int("paths", len(f.Paths)))
			}

			sum := runChecks(cmd.OutOrStdout(), f, jobs)
			if sum.failed > 0 {
				return fmt.Errorf("%d of %d cases failed", sum.failed, sum.total)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "number of cases to count in parallel")
	return cmd
}

type checkSummary struct {
	total, failed int
}

// checkResult is the outcome of counting a single painting.
type checkResult struct {
	name string
	got  int
	want *int
	err  error
}

// runChecks counts the plus signs of every painting in f and writes one
// line per painting to w, in file order.  The counting is shared between
// up to jobs workers, each with its own Counter.  If jobs is not positive,
// every painting gets a worker.
func runChecks(w io.Writer, f *casefile.File, jobs int) checkSummary {
	results := make([]checkResult, len(f.Cases)+len(f.Paths))

	workers := jobs
	if workers <= 0 || workers > len(results) {
		workers = len(results)
	}

	var next atomic.Int64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			c := plus.NewCounter()
			for {
				i := int(next.Add(1)) - 1
				if i >= len(results) {
					return nil
				}
				results[i] = checkOne(c, f, i)
			}
		})
	}
	_ = g.Wait()

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	var sum checkSummary
	for _, r := range results {
		sum.total++
		switch {
		case r.err != nil:
			sum.failed++
			fmt.Fprintf(w, "%s %s: %v\n", red("ERROR"), r.name, r.err)
		case r.want == nil:
			fmt.Fprintf(w, "%s %s: %d\n", cyan("COUNT"), r.name, r.got)
		case r.got != *r.want:
			sum.failed++
			fmt.Fprintf(w, "%s %s: got %d, want %d\n", red("FAIL"), r.name, r.got, *r.want)
		default:
			fmt.Fprintf(w, "%s %s: %d\n", green("PASS"), r.name, r.got)
		}
	}

	fmt.Fprintf(w, "%d cases, %d failed\n", sum.total, sum.failed)
	return sum
}

// checkOne counts the i-th painting of f, where the stroke cases come
// before the paths.
func checkOne(c *plus.Counter, f *casefile.File, i int) checkResult {
	if i < len(f.Cases) {
		tc := &f.Cases[i]
		res := checkResult{name: tc.Name, want: tc.Want}
		strokes, err := tc.Strokes()
		if err == nil {
			res.got, err = c.Count(strokes)
		}
		res.err = err
		return res
	}

	pc := &f.Paths[i-len(f.Cases)]
	res := checkResult{name: pc.Name, want: pc.Want}
	res.got, res.err = c.CountPath(pc.Data())
	return res
}
