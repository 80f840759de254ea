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

// largeCases use huge coordinates or many strokes.
var largeCases = []TestCase{
	{
		Name:       "sample_one_scaled",
		Lengths:    scaled([]int64{6, 3, 4, 5, 1, 6, 3, 3, 4}, 100_000_000_000_000_000),
		Directions: "ULDRULURD",
		Want:       4,
	},
	{
		// coordinates reach ±4e18, close to the int64 limit
		Name:       "near_overflow",
		Lengths:    scaled([]int64{1, 2, 2, 1, 1, 2, 2, 1}, 4_000_000_000_000_000_000),
		Directions: "UDUDLRLR",
		Want:       1,
	},
	named("comb_1000", comb(1000)),
	named("spiral_250", spiral(250)),
}
