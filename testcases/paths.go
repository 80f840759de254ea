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

import (
	"seehuhn.de/go/geom/path"
)

var pathCases = []PathCase{
	{
		Name: "lattice_3x4",
		Path: lattice(3, 4),
		Want: 12,
	},
	{
		Name: "box_grid",
		Path: rectangleGrid(3, 3, 30, 30, 2),
		Want: 0,
	},
	{
		Name: "plus_outline",
		Path: plusOutline(10, 10, 3, 1),
		Want: 0,
	},
	{
		Name: "two_subpath_cross",
		Path: (&path.Data{}).
			MoveTo(pt(-2, 0)).LineTo(pt(2, 0)).
			MoveTo(pt(0, -2)).LineTo(pt(0, 2)),
		Want: 1,
	},
	{
		Name: "closed_window",
		Path: rectangle(0, 0, 4, 4).
			MoveTo(pt(0, 2)).LineTo(pt(4, 2)).
			MoveTo(pt(2, 0)).LineTo(pt(2, 4)),
		Want: 1,
	},
}

// lattice builds rows horizontal and cols vertical lines, each long
// enough to cross all lines of the other direction in its interior.
func lattice(rows, cols int) *path.Data {
	p := &path.Data{}
	for i := 1; i <= rows; i++ {
		y := float64(i)
		p = p.MoveTo(pt(0, y)).LineTo(pt(float64(cols+1), y))
	}
	for j := 1; j <= cols; j++ {
		x := float64(j)
		p = p.MoveTo(pt(x, 0)).LineTo(pt(x, float64(rows+1)))
	}
	return p
}

// rectangle builds a closed rectangular path.
func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		LineTo(pt(x2, y1)).
		LineTo(pt(x2, y2)).
		LineTo(pt(x1, y2)).
		Close()
}

// rectangleGrid builds a grid of disjoint rectangles.
func rectangleGrid(rows, cols, width, height int, gap float64) *path.Data {
	cellW := float64(width / cols)
	cellH := float64(height / rows)

	p := &path.Data{}
	for row := range rows {
		for col := range cols {
			x1 := float64(col)*cellW + gap
			y1 := float64(row)*cellH + gap
			x2 := float64(col+1)*cellW - gap
			y2 := float64(row+1)*cellH - gap

			p = p.
				MoveTo(pt(x1, y1)).
				LineTo(pt(x2, y1)).
				LineTo(pt(x2, y2)).
				LineTo(pt(x1, y2)).
				Close()
		}
	}
	return p
}

// plusOutline builds the closed outline of a plus-shaped polygon centered
// at (cx, cy), with arms of length arm and half-width w.
func plusOutline(cx, cy, arm, w float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(cx-w, cy-arm)).
		LineTo(pt(cx+w, cy-arm)).
		LineTo(pt(cx+w, cy-w)).
		LineTo(pt(cx+arm, cy-w)).
		LineTo(pt(cx+arm, cy+w)).
		LineTo(pt(cx+w, cy+w)).
		LineTo(pt(cx+w, cy+arm)).
		LineTo(pt(cx-w, cy+arm)).
		LineTo(pt(cx-w, cy+w)).
		LineTo(pt(cx-arm, cy+w)).
		LineTo(pt(cx-arm, cy-w)).
		LineTo(pt(cx-w, cy-w)).
		Close()
}
