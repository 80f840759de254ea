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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMergeRuns(t *testing.T) {
	cases := []struct {
		name string
		in   []run
		want []run
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   []run{{key: 3, start: 1, end: 4}},
			want: []run{{key: 3, start: 1, end: 4}},
		},
		{
			name: "touching",
			in:   []run{{0, 2, 3}, {0, 0, 2}},
			want: []run{{0, 0, 3}},
		},
		{
			name: "overlapping",
			in:   []run{{0, 0, 5}, {0, 1, 2}, {0, 4, 7}},
			want: []run{{0, 0, 7}},
		},
		{
			name: "gap",
			in:   []run{{0, 3, 4}, {0, 0, 2}},
			want: []run{{0, 0, 2}, {0, 3, 4}},
		},
		{
			name: "separate_keys",
			in:   []run{{2, 0, 2}, {1, 1, 3}, {2, 2, 3}, {1, 0, 1}},
			want: []run{{1, 0, 3}, {2, 0, 3}},
		},
		{
			name: "duplicates",
			in:   []run{{5, 1, 2}, {5, 1, 2}, {5, 1, 2}},
			want: []run{{5, 1, 2}},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := mergeRuns(tc.in)
			if d := cmp.Diff(tc.want, got, cmp.AllowUnexported(run{})); d != "" {
				t.Errorf("mergeRuns mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestBuildRuns(t *testing.T) {
	// a plus sign, with the horizontal bar drawn as two strokes
	segs := []segment{
		{Point{-1, 0}, Point{0, 0}},
		{Point{0, 0}, Point{1, 0}},
		{Point{0, -1}, Point{0, 1}},
		{Point{0, 1}, Point{0, 1}}, // zero length
	}
	var xs, ys axis
	xs.reset([]int64{-1, 0, 1})
	ys.reset([]int64{-1, 0, 1})

	h, v := buildRuns(segs, &xs, &ys, nil, nil)

	wantH := []run{{key: 1, start: 0, end: 2}}
	wantV := []run{{key: 1, start: 0, end: 2}}
	if d := cmp.Diff(wantH, h, cmp.AllowUnexported(run{})); d != "" {
		t.Errorf("horizontal runs mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantV, v, cmp.AllowUnexported(run{})); d != "" {
		t.Errorf("vertical runs mismatch (-want +got):\n%s", d)
	}
}

func TestSweepEventOrder(t *testing.T) {
	// Row 1 is active for the columns [1, 3).  The queries at columns
	// 1 and 2 see it, the query at column 3 does not.
	h := []run{{key: 1, start: 0, end: 3}}
	for col, want := range []int{0, 1, 1, 0} {
		v := []run{{key: col, start: 0, end: 2}}
		events := collectEvents(nil, h, v)

		var rows fenwick
		rows.reset(3)
		if got := sweep(events, &rows, nil); got != want {
			t.Errorf("column %d: got %d, want %d", col, got, want)
		}
	}
}

// TestSweepEmitOrder checks that centers on a column shared by several
// vertical runs are reported bottom to top, whatever the order in which
// the runs were collected.
func TestSweepEmitOrder(t *testing.T) {
	h := []run{
		{key: 1, start: 0, end: 2},
		{key: 3, start: 0, end: 2},
		{key: 5, start: 0, end: 2},
	}
	v := []run{
		{key: 1, start: 4, end: 6},
		{key: 1, start: 2, end: 4},
		{key: 1, start: 0, end: 2},
	}
	events := collectEvents(nil, h, v)

	var rows fenwick
	rows.reset(7)
	var got []int
	n := sweep(events, &rows, func(col, row int) {
		if col != 1 {
			t.Errorf("center in column %d, want 1", col)
		}
		got = append(got, row)
	})

	if n != 3 {
		t.Errorf("got %d centers, want 3", n)
	}
	if d := cmp.Diff([]int{1, 3, 5}, got); d != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", d)
	}
}
