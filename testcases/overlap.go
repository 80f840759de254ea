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

package testcases

// overlapCases paint some segments more than once.  Repainting must not
// change the result.
var overlapCases = []TestCase{
	{
		Name:       "retraced_plus",
		Lengths:    []int64{2, 4, 2, 2, 4, 2},
		Directions: "RLRUDU",
		Want:       1,
	},
	{
		// the horizontal bar is painted as two strokes meeting at the center
		Name:       "touching_runs",
		Lengths:    []int64{1, 1, 1, 1, 2},
		Directions: "RRLUD",
		Want:       1,
	},
	{
		Name:       "plus_drawn_twice",
		Lengths:    []int64{1, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2, 1, 1, 2, 2, 1},
		Directions: "UDUDLRLRUDUDLRLR",
		Want:       1,
	},
	{
		Name:       "zero_length_interleaved",
		Lengths:    []int64{1, 0, 2, 2, 0, 1, 1, 2, 2, 0, 1},
		Directions: "URDUDDLRLUR",
		Want:       1,
	},
	{
		Name:       "rectangle_drawn_twice",
		Lengths:    []int64{5, 2, 5, 2, 5, 2, 5, 2},
		Directions: "RDLURDLU",
		Want:       0,
	},
}
