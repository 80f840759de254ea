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
	"fmt"
	"strings"
)

// Direction is the heading of a stroke.
type Direction uint8

// The four stroke directions. The y axis points up.
const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// ParseDirection converts one of the codes 'U', 'D', 'L', 'R' to a
// Direction. Any other byte gives a *DirectionError.
func ParseDirection(c byte) (Direction, error) {
	switch c {
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}
	return 0, &DirectionError{Index: -1, Code: c}
}

// Code returns the single-byte code of d, or '?' if d is not valid.
func (d Direction) Code() byte {
	switch d {
	case Up:
		return 'U'
	case Down:
		return 'D'
	case Left:
		return 'L'
	case Right:
		return 'R'
	}
	return '?'
}

func (d Direction) String() string {
	return string(d.Code())
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// delta returns the unit step of d.
func (d Direction) delta() (dx, dy int64) {
	switch d {
	case Up:
		return 0, 1
	case Down:
		return 0, -1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Stroke is a single axis-aligned paint operation.
type Stroke struct {
	Length int64 // strokes with Length <= 0 paint nothing
	Dir    Direction
}

// ParseStrokes pairs up stroke lengths with the direction codes in
// directions. The two sequences must have the same length.
func ParseStrokes(lengths []int64, directions string) ([]Stroke, error) {
	if len(lengths) != len(directions) {
		return nil, fmt.Errorf("%d lengths but %d directions: %w",
			len(lengths), len(directions), ErrInvalidInput)
	}

	strokes := make([]Stroke, len(lengths))
	for i := range lengths {
		dir, err := ParseDirection(directions[i])
		if err != nil {
			return nil, &DirectionError{Index: i, Code: directions[i]}
		}
		strokes[i] = Stroke{Length: lengths[i], Dir: dir}
	}
	return strokes, nil
}

// FormatStrokes is the inverse of ParseStrokes.
func FormatStrokes(strokes []Stroke) (lengths []int64, directions string) {
	lengths = make([]int64, len(strokes))
	var b strings.Builder
	b.Grow(len(strokes))
	for i, s := range strokes {
		lengths[i] = s.Length
		b.WriteByte(s.Dir.Code())
	}
	return lengths, b.String()
}

// Reverse returns the strokes which trace the same painting backwards:
// the order is reversed and every direction flipped.  Since the walk
// still starts at the origin, the result is the original painting
// translated by minus its end point.
func Reverse(strokes []Stroke) []Stroke {
	n := len(strokes)
	res := make([]Stroke, n)
	for i, s := range strokes {
		res[n-1-i] = Stroke{Length: s.Length, Dir: s.Dir.Opposite()}
	}
	return res
}
