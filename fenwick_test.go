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
	"math/rand/v2"
	"testing"
)

func TestFenwickAgainstSlice(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 12))
	for _, n := range []int{1, 2, 3, 7, 8, 9, 64, 100} {
		var f fenwick
		f.reset(n)
		ref := make([]int, n)

		for range 500 {
			i := rng.IntN(n)
			delta := rng.IntN(7) - 3
			f.add(i, delta)
			ref[i] += delta

			lo := rng.IntN(n)
			hi := rng.IntN(n)
			want := 0
			for j := lo; j <= hi; j++ {
				want += ref[j]
			}
			if got := f.rangeSum(lo, hi); got != want {
				t.Fatalf("n=%d: rangeSum(%d, %d) = %d, want %d", n, lo, hi, got, want)
			}
		}

		want := 0
		for i := range n {
			want += ref[i]
			if got := f.prefix(i); got != want {
				t.Fatalf("n=%d: prefix(%d) = %d, want %d", n, i, got, want)
			}
		}
	}
}

func TestFenwickBounds(t *testing.T) {
	var f fenwick
	f.reset(5)
	f.add(0, 2)
	f.add(4, 3)

	if got := f.prefix(-1); got != 0 {
		t.Errorf("prefix(-1) = %d", got)
	}
	if got := f.prefix(10); got != 5 {
		t.Errorf("prefix(10) = %d", got)
	}
	if got := f.rangeSum(3, 2); got != 0 {
		t.Errorf("empty range gave %d", got)
	}
	if got := f.len(); got != 5 {
		t.Errorf("len() = %d", got)
	}

	// reset must clear the old content
	f.reset(3)
	if got := f.prefix(2); got != 0 {
		t.Errorf("prefix after reset = %d", got)
	}
}

func TestFenwickSearch(t *testing.T) {
	var f fenwick
	f.reset(10)
	active := []int{1, 4, 5, 9}
	for _, i := range active {
		f.add(i, 1)
	}

	for k, want := range active {
		if got := f.search(k + 1); got != want {
			t.Errorf("search(%d) = %d, want %d", k+1, got, want)
		}
	}
	if got := f.search(0); got != 0 {
		t.Errorf("search(0) = %d", got)
	}
	if got := f.search(5); got != 10 {
		t.Errorf("search beyond total = %d, want 10", got)
	}

	var empty fenwick
	if got := empty.search(1); got != 0 {
		t.Errorf("search on empty tree = %d", got)
	}
}
