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
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAxis(t *testing.T) {
	var a axis
	a.reset([]int64{7, -3, 7, math.MaxInt64, 0, -3, math.MinInt64})

	want := []int64{math.MinInt64, -3, 0, 7, math.MaxInt64}
	if d := cmp.Diff(want, a.values); d != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", d)
	}
	if a.len() != len(want) {
		t.Errorf("len() = %d", a.len())
	}
	for i, v := range want {
		if got := a.index(v); got != i {
			t.Errorf("index(%d) = %d, want %d", v, got, i)
		}
		if got := a.value(i); got != v {
			t.Errorf("value(%d) = %d, want %d", i, got, v)
		}
	}
}

// TestAxisOrderInvariance checks that the compression depends only on the
// set of values, not on their order or multiplicity.
func TestAxisOrderInvariance(t *testing.T) {
	rng := rand.New(rand.NewPCG(31, 32))
	raw := make([]int64, 100)
	for i := range raw {
		raw[i] = rng.Int64N(40) - 20
	}

	var ref axis
	ref.reset(slices.Clone(raw))

	for range 20 {
		shuffled := slices.Clone(raw)
		rng.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		var a axis
		a.reset(shuffled)
		if d := cmp.Diff(ref.values, a.values); d != "" {
			t.Fatalf("values depend on input order (-want +got):\n%s", d)
		}
	}
}

func TestAxisMissingValue(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("index of missing value did not panic")
		}
	}()
	var a axis
	a.reset([]int64{1, 2, 3})
	a.index(4)
}
