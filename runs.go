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

package plus

import (
	"cmp"
	"slices"
)

// segment is a painted axis-aligned line segment in painting coordinates.
type segment struct {
	a, b Point
}

// run is a painted span in compressed coordinates.  For a horizontal run,
// key is the row and [start, end) the unit steps covered along the row;
// for a vertical run key is the column.
type run struct {
	key        int
	start, end int
}

// cmpRun orders runs by key, then by start.
func cmpRun(a, b run) int {
	if c := cmp.Compare(a.key, b.key); c != 0 {
		return c
	}
	return cmp.Compare(a.start, b.start)
}

// buildRuns converts the segments into compressed runs, appending
// horizontal runs to h and vertical runs to v.  Zero-length segments are
// dropped.  The returned runs are merged, see mergeRuns.
func buildRuns(segs []segment, xs, ys *axis, h, v []run) ([]run, []run) {
	for _, s := range segs {
		switch {
		case s.a.Y == s.b.Y && s.a.X != s.b.X:
			x0, x1 := xs.index(s.a.X), xs.index(s.b.X)
			h = append(h, run{key: ys.index(s.a.Y), start: min(x0, x1), end: max(x0, x1)})
		case s.a.X == s.b.X && s.a.Y != s.b.Y:
			y0, y1 := ys.index(s.a.Y), ys.index(s.b.Y)
			v = append(v, run{key: xs.index(s.a.X), start: min(y0, y1), end: max(y0, y1)})
		}
	}
	return mergeRuns(h), mergeRuns(v)
}

// mergeRuns sorts the runs by key and start, and coalesces runs with the
// same key which overlap or touch.  The merge is done in place; the
// result shares the backing array of runs.
//
// After merging, runs with the same key are pairwise disjoint and
// separated by at least one unpainted unit step.
func mergeRuns(runs []run) []run {
	if len(runs) < 2 {
		return runs
	}
	slices.SortFunc(runs, cmpRun)

	k := 0
	for _, r := range runs[1:] {
		cur := &runs[k]
		if r.key == cur.key && r.start <= cur.end {
			cur.end = max(cur.end, r.end)
			continue
		}
		k++
		runs[k] = r
	}
	return runs[:k+1]
}
