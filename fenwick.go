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
	"math/bits"
	"slices"
)

// fenwick is a binary indexed tree over the indices 0, ..., n-1.
// All operations take O(log n) time.
type fenwick struct {
	tree []int // tree[i-1] holds the sum over (i - lowbit(i), i]
}

// reset resizes the tree to n entries, all zero.
func (f *fenwick) reset(n int) {
	f.tree = slices.Grow(f.tree[:0], n)[:n]
	clear(f.tree)
}

// len returns the number of entries.
func (f *fenwick) len() int {
	return len(f.tree)
}

// add adds delta to entry i.
func (f *fenwick) add(i, delta int) {
	for j := i + 1; j <= len(f.tree); j += j & -j {
		f.tree[j-1] += delta
	}
}

// prefix returns the sum of the entries 0, ..., i.
// For i < 0 the result is 0.
func (f *fenwick) prefix(i int) int {
	s := 0
	for j := min(i+1, len(f.tree)); j > 0; j -= j & -j {
		s += f.tree[j-1]
	}
	return s
}

// rangeSum returns the sum of the entries lo, ..., hi (inclusive).
// For hi < lo the result is 0.
func (f *fenwick) rangeSum(lo, hi int) int {
	if hi < lo {
		return 0
	}
	return f.prefix(hi) - f.prefix(lo-1)
}

// search returns the smallest index i with prefix(i) >= k.
// All entries must be non-negative.  If the total sum is less than k,
// the result is len().
func (f *fenwick) search(k int) int {
	n := len(f.tree)
	if k <= 0 || n == 0 {
		return 0
	}
	pos := 0
	for step := 1 << (bits.Len(uint(n)) - 1); step > 0; step >>= 1 {
		next := pos + step
		if next <= n && f.tree[next-1] < k {
			pos = next
			k -= f.tree[next-1]
		}
	}
	return pos
}
