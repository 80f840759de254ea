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

// Package testcases holds named paintings with known plus-sign counts.
package testcases

import (
	"strings"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// TestCase is a painting given as a stroke sequence.
type TestCase struct {
	Name       string  // lowercase a-z, 0-9 and _ only
	Lengths    []int64 // stroke lengths
	Directions string  // one of 'U', 'D', 'L', 'R' per stroke
	Want       int     // expected number of plus signs
}

// N returns the number of strokes.
func (tc TestCase) N() int {
	return len(tc.Lengths)
}

// PathCase is a painting given as a path of axis-aligned line segments.
type PathCase struct {
	Name string
	Path *path.Data
	Want int
}

// pt is a helper to create a vec.Vec2 from x, y coordinates.
func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// ones returns n strokes of length 1.
func ones(n int) []int64 {
	res := make([]int64, n)
	for i := range res {
		res[i] = 1
	}
	return res
}

// scaled returns the lengths multiplied by f.
func scaled(lengths []int64, f int64) []int64 {
	res := make([]int64, len(lengths))
	for i, l := range lengths {
		res[i] = l * f
	}
	return res
}

// comb builds a horizontal spine with k vertical teeth crossing it.
// Every tooth crosses the spine in its interior, so the painting has k
// plus signs.
func comb(k int) TestCase {
	var lengths []int64
	var dirs strings.Builder

	lengths = append(lengths, 2)
	dirs.WriteByte('R')
	for range k {
		lengths = append(lengths, 1, 2, 1, 2)
		dirs.WriteString("UDUR")
	}

	return TestCase{
		Lengths:    lengths,
		Directions: dirs.String(),
		Want:       k,
	}
}

// spiral builds a square spiral with k turns, which never crosses itself.
func spiral(k int) TestCase {
	var lengths []int64
	var dirs strings.Builder
	const order = "RULD"
	for i := range 4 * k {
		lengths = append(lengths, int64(i/2+1))
		dirs.WriteByte(order[i%4])
	}
	return TestCase{
		Lengths:    lengths,
		Directions: dirs.String(),
		Want:       0,
	}
}

// named returns tc with the given name.
func named(name string, tc TestCase) TestCase {
	tc.Name = name
	return tc
}
