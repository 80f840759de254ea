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
	"cmp"
	"slices"
)

// Sweep model:
//
// A point (cx, cy) of the compressed grid is a plus-sign center iff
//   - the horizontal run on row cy covers the unit steps cx-1 and cx, and
//   - the vertical run on column cx covers the unit steps cy-1 and cy.
//
// A horizontal run [start, end) therefore provides a horizontal bar for
// the columns start+1, ..., end-1, and a vertical run [start, end) a
// vertical bar for the rows start+1, ..., end-1.  Runs of length one
// provide nothing.
//
// The sweep moves left to right over the columns.  A Fenwick tree over
// the rows holds a 1 for every row whose horizontal bar covers the
// current column.  Each vertical run asks how many rows in its bar range
// are active at its column.  Since merged runs on the same row never
// touch, every row holds 0 or 1.

// eventKind orders the events at a single column: a row leaves the active
// set at column end, enters it at column start+1, and both changes must be
// visible to queries at the same column.
type eventKind uint8

const (
	eventRemove eventKind = iota
	eventInsert
	eventQuery
)

// event is a single step of the sweep.  For insert and remove events, lo
// is the row; for query events [lo, hi] is the inclusive row range.
type event struct {
	col    int
	kind   eventKind
	lo, hi int
}

// cmpEvent orders events by column, then kind, then row.  Queries on the
// same column cover disjoint row ranges, so ordering them by lo makes the
// centers come out in increasing row order.
func cmpEvent(a, b event) int {
	if c := cmp.Compare(a.col, b.col); c != 0 {
		return c
	}
	if c := cmp.Compare(a.kind, b.kind); c != 0 {
		return c
	}
	return cmp.Compare(a.lo, b.lo)
}

// collectEvents appends the sweep events for the merged runs h and v.
func collectEvents(events []event, h, v []run) []event {
	for _, r := range h {
		if r.end-r.start < 2 {
			continue
		}
		events = append(events,
			event{col: r.start + 1, kind: eventInsert, lo: r.key},
			event{col: r.end, kind: eventRemove, lo: r.key},
		)
	}
	for _, r := range v {
		if r.end-r.start < 2 {
			continue
		}
		events = append(events, event{col: r.key, kind: eventQuery, lo: r.start + 1, hi: r.end - 1})
	}
	return events
}

// sweep processes the sorted events using rows as the active row set.
// The tree must be empty and have one entry per compressed row.
// If emit is non-nil, it is called for every plus-sign center found, in
// order of increasing column and, within a column, increasing row.
func sweep(events []event, rows *fenwick, emit func(col, row int)) int {
	slices.SortFunc(events, cmpEvent)

	total := 0
	for _, e := range events {
		switch e.kind {
		case eventInsert:
			rows.add(e.lo, 1)
		case eventRemove:
			rows.add(e.lo, -1)
		case eventQuery:
			n := rows.rangeSum(e.lo, e.hi)
			total += n
			if emit != nil && n > 0 {
				base := rows.prefix(e.lo - 1)
				for j := 1; j <= n; j++ {
					emit(e.col, rows.search(base+j))
				}
			}
		}
	}
	return total
}
