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

import "slices"

// axis maps the coordinates used along one axis to dense indices
// 0, ..., len(values)-1, preserving order.
//
// Only coordinates which actually occur are kept.  Between two
// neighbouring values, every segment endpoint lies on one side, so a unit
// step in index space is either fully painted or not painted at all.
type axis struct {
	values []int64 // sorted, distinct
}

// reset rebuilds the axis from raw, which is sorted in place.
// The backing array of raw is taken over by the axis.
func (a *axis) reset(raw []int64) {
	slices.Sort(raw)
	a.values = slices.Compact(raw)
}

// len returns the number of distinct coordinates.
func (a *axis) len() int {
	return len(a.values)
}

// index returns the compressed index of v.  The value must be one of the
// coordinates the axis was built from.
func (a *axis) index(v int64) int {
	i, found := slices.BinarySearch(a.values, v)
	if !found {
		panic("plus: coordinate missing from axis")
	}
	return i
}

// value returns the coordinate with compressed index i.
func (a *axis) value(i int) int64 {
	return a.values[i]
}
