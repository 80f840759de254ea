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

var crossingCases = []TestCase{
	{
		// two horizontal and two vertical lines, crossing in four points
		Name:       "tic_tac_toe",
		Lengths:    []int64{1, 3, 1, 3, 2, 1, 3, 1, 3},
		Directions: "URULDRURD",
		Want:       4,
	},
	{
		// a square with a cross inside; only the middle is a plus sign
		Name:       "window",
		Lengths:    []int64{4, 4, 4, 2, 4, 2, 2, 4, 2, 4},
		Directions: "RULDRDLULD",
		Want:       1,
	},
	named("comb_5", comb(5)),
	named("spiral_8", spiral(8)),
}
