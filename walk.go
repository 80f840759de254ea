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
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Point is a lattice point in painting coordinates.
type Point struct {
	X, Y int64
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// vec returns p as a geom vector.
func (p Point) vec() vec.Vec2 {
	return vec.Vec2{X: float64(p.X), Y: float64(p.Y)}
}

// Walk follows the strokes from the origin and returns the len(strokes)+1
// visited vertices, starting with (0,0).  A stroke with a non-positive
// length repeats the previous vertex.
//
// An error wrapping ErrInvalidInput is returned if a coordinate leaves the
// int64 range, and a *DirectionError if a stroke has no valid direction.
func Walk(strokes []Stroke) ([]Point, error) {
	vertices, err := appendWalk(make([]Point, 0, len(strokes)+1), strokes)
	if err != nil {
		return nil, err
	}
	return vertices, nil
}

// appendWalk appends the vertices of the walk to buf.
func appendWalk(buf []Point, strokes []Stroke) ([]Point, error) {
	var cur Point
	buf = append(buf, cur)
	for i, s := range strokes {
		dx, dy := s.Dir.delta()
		if dx == 0 && dy == 0 {
			return buf, &DirectionError{Index: i, Code: s.Dir.Code()}
		}
		if s.Length > 0 {
			var ok bool
			if cur.X, ok = step(cur.X, dx, s.Length); !ok {
				return buf, fmt.Errorf("stroke %d: x coordinate overflow: %w", i, ErrInvalidInput)
			}
			if cur.Y, ok = step(cur.Y, dy, s.Length); !ok {
				return buf, fmt.Errorf("stroke %d: y coordinate overflow: %w", i, ErrInvalidInput)
			}
		}
		buf = append(buf, cur)
	}
	return buf, nil
}

// step returns x + sign*length, and false if the result does not fit
// into an int64.  Length must be positive and sign one of -1, 0, 1.
func step(x, sign, length int64) (int64, bool) {
	switch sign {
	case 1:
		if x > math.MaxInt64-length {
			return x, false
		}
		return x + length, true
	case -1:
		if x < math.MinInt64+length {
			return x, false
		}
		return x - length, true
	}
	return x, true
}

// Path converts the strokes into a polyline starting at the origin.
// Strokes which paint nothing are left out.
//
// Coordinates beyond ±2^53 are rounded by the conversion to float64.
func Path(strokes []Stroke) (*path.Data, error) {
	vertices, err := Walk(strokes)
	if err != nil {
		return nil, err
	}

	p := (&path.Data{}).MoveTo(vertices[0].vec())
	for i := 1; i < len(vertices); i++ {
		if vertices[i] == vertices[i-1] {
			continue
		}
		p = p.LineTo(vertices[i].vec())
	}
	return p, nil
}

// Bounds returns the smallest rectangle containing all points.
// The result is the zero rectangle if points is empty.
func Bounds(points []Point) rect.Rect {
	if len(points) == 0 {
		return rect.Rect{}
	}
	xMin, xMax := points[0].X, points[0].X
	yMin, yMax := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		xMin = min(xMin, p.X)
		xMax = max(xMax, p.X)
		yMin = min(yMin, p.Y)
		yMax = max(yMax, p.Y)
	}
	return rect.Rect{
		LLx: float64(xMin),
		LLy: float64(yMin),
		URx: float64(xMax),
		URy: float64(yMax),
	}
}
