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

// Package plus counts the plus signs in a painting made of axis-aligned
// brush strokes.
//
// A painting is drawn by a brush which starts at the origin and moves
// through a sequence of strokes, each going up, down, left or right by a
// given length.  A plus sign is a lattice point where paint leaves in all
// four directions.
//
// Coordinates are compressed to the values which actually occur, and the
// plus signs are found by a sweep over the columns, using a Fenwick tree
// over the rows.  For n strokes this takes O(n log n) time and O(n)
// memory, independent of the stroke lengths.
package plus

import (
	"fmt"

	"seehuhn.de/go/geom/path"
)

// Count returns the number of plus signs painted by n strokes.  The
// stroke lengths are given in lengths, and the directions in directions,
// one byte from "UDLR" per stroke.
//
// Malformed input gives an error: ErrInvalidInput if n is negative or
// disagrees with the lengths of the two sequences, and ErrInvalidDirection
// for an unknown direction code.  Paintings which are too small to hold a
// plus sign, including every painting with fewer than two strokes, give 0.
func Count(n int, lengths []int64, directions string) (int, error) {
	if n < 0 {
		return 0, fmt.Errorf("negative stroke count %d: %w", n, ErrInvalidInput)
	}
	if len(lengths) != n || len(directions) != n {
		return 0, fmt.Errorf("%d strokes, but %d lengths and %d directions: %w",
			n, len(lengths), len(directions), ErrInvalidInput)
	}
	strokes, err := ParseStrokes(lengths, directions)
	if err != nil {
		return 0, err
	}
	if n < 2 {
		return 0, nil
	}
	return NewCounter().Count(strokes)
}

// Centers returns the plus-sign centers painted by the strokes,
// ordered by X and then by Y.
func Centers(strokes []Stroke) ([]Point, error) {
	return NewCounter().Centers(strokes)
}

// CountPath returns the number of plus signs painted by stroking p.
// See [Counter.CountPath] for the requirements on p.
func CountPath(p *path.Data) (int, error) {
	return NewCounter().CountPath(p)
}
