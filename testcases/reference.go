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

// referenceCases are the published sample inputs and a few hand-checked
// variations.
var referenceCases = []TestCase{
	{
		Name:       "sample_one",
		Lengths:    []int64{6, 3, 4, 5, 1, 6, 3, 3, 4},
		Directions: "ULDRULURD",
		Want:       4, // (-3,3) (-1,3) (0,2) (0,3)
	},
	{
		Name:       "sample_two",
		Lengths:    ones(8),
		Directions: "RDLUULDR",
		Want:       1,
	},
	{
		Name:       "sample_three",
		Lengths:    []int64{1, 2, 2, 1, 1, 2, 2, 1},
		Directions: "UDUDLRLR",
		Want:       1,
	},
	{
		Name:       "closed_rectangle",
		Lengths:    []int64{5, 2, 5, 2},
		Directions: "RDLU",
		Want:       0,
	},
	{
		// a unit square: only two distinct x values, no interior point
		Name:       "unit_square",
		Lengths:    ones(4),
		Directions: "RULD",
		Want:       0,
	},
	{
		Name:       "two_strokes",
		Lengths:    []int64{5, 5},
		Directions: "RU",
		Want:       0,
	},
	{
		Name:       "hook_crossing",
		Lengths:    []int64{5, 2, 3, 4},
		Directions: "RDLU",
		Want:       1, // (2,0)
	},
	{
		Name:       "two_unit_squares",
		Lengths:    ones(8),
		Directions: "RULDURDL",
		Want:       0,
	},
	{
		Name:       "staircase",
		Lengths:    ones(8),
		Directions: "RURDRDRD",
		Want:       0,
	},
}
