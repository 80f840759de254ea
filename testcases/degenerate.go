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

// degenerateCases are paintings which are too small or too thin to hold
// a plus sign.
var degenerateCases = []TestCase{
	{
		Name:       "empty",
		Lengths:    []int64{},
		Directions: "",
		Want:       0,
	},
	{
		Name:       "single_stroke",
		Lengths:    []int64{7},
		Directions: "U",
		Want:       0,
	},
	{
		Name:       "corner",
		Lengths:    []int64{3, 3},
		Directions: "RU",
		Want:       0,
	},
	{
		Name:       "straight_line",
		Lengths:    []int64{1, 2, 3, 4},
		Directions: "RRRR",
		Want:       0,
	},
	{
		Name:       "back_and_forth",
		Lengths:    []int64{3, 6, 6, 3},
		Directions: "RLRL",
		Want:       0,
	},
	{
		Name:       "zero_lengths",
		Lengths:    []int64{0, 0, 0},
		Directions: "UDL",
		Want:       0,
	},
	{
		// only the upper arm leaves the junction at (1,0)
		Name:       "t_junction",
		Lengths:    []int64{2, 1, 2},
		Directions: "RLU",
		Want:       0,
	},
}
