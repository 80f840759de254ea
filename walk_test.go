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
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
)

func TestWalk(t *testing.T) {
	strokes := []Stroke{
		{Length: 2, Dir: Up},
		{Length: 0, Dir: Left}, // paints nothing
		{Length: 3, Dir: Left},
		{Length: -1, Dir: Down}, // paints nothing
		{Length: 5, Dir: Down},
		{Length: 4, Dir: Right},
	}
	got, err := Walk(strokes)
	if err != nil {
		t.Fatal(err)
	}
	want := []Point{{0, 0}, {0, 2}, {0, 2}, {-3, 2}, {-3, 2}, {-3, -3}, {1, -3}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", d)
	}
}

func TestWalkEmpty(t *testing.T) {
	got, err := Walk(nil)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]Point{{0, 0}}, got); d != "" {
		t.Errorf("vertices mismatch (-want +got):\n%s", d)
	}
}

func TestWalkLimits(t *testing.T) {
	// reaching math.MinInt64 exactly is fine
	got, err := Walk([]Stroke{{1 << 62, Left}, {1 << 62, Left}})
	if err != nil {
		t.Fatal(err)
	}
	if x := got[len(got)-1].X; x != math.MinInt64 {
		t.Errorf("got x=%d, want %d", x, int64(math.MinInt64))
	}

	_, err = Walk([]Stroke{{math.MaxInt64, Up}, {1, Up}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
	_, err = Walk([]Stroke{{math.MaxInt64, Down}, {2, Down}})
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestWalkInvalidDirection(t *testing.T) {
	_, err := Walk([]Stroke{{1, Up}, {1, Direction(0)}})
	var dirErr *DirectionError
	if !errors.As(err, &dirErr) || dirErr.Index != 1 {
		t.Errorf("got %v, want *DirectionError for stroke 1", err)
	}
}

// TestWalkReverse checks that reversed strokes trace the same vertices
// backwards, shifted by the end point.
func TestWalkReverse(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 22))
	for range 50 {
		strokes := randomStrokes(rng, 1+rng.IntN(20), 6)
		fwd, err := Walk(strokes)
		if err != nil {
			t.Fatal(err)
		}
		bwd, err := Walk(Reverse(strokes))
		if err != nil {
			t.Fatal(err)
		}

		end := fwd[len(fwd)-1]
		shifted := make([]Point, len(bwd))
		for i, p := range bwd {
			shifted[i] = Point{X: p.X + end.X, Y: p.Y + end.Y}
		}
		slices.Reverse(shifted)
		if d := cmp.Diff(fwd, shifted); d != "" {
			t.Fatalf("reversed walk mismatch (-want +got):\n%s", d)
		}
	}
}

func TestPath(t *testing.T) {
	strokes := []Stroke{{2, Right}, {0, Up}, {1, Up}}
	p, err := Path(strokes)
	if err != nil {
		t.Fatal(err)
	}
	wantCmds := []path.Command{path.CmdMoveTo, path.CmdLineTo, path.CmdLineTo}
	if d := cmp.Diff(wantCmds, p.Cmds); d != "" {
		t.Errorf("commands mismatch (-want +got):\n%s", d)
	}
	if len(p.Coords) != 3 || p.Coords[1].X != 2 || p.Coords[2].Y != 1 {
		t.Errorf("unexpected coordinates %v", p.Coords)
	}
}

func TestBounds(t *testing.T) {
	got := Bounds([]Point{{1, 5}, {-2, 3}, {4, -1}})
	want := rect.Rect{LLx: -2, LLy: -1, URx: 4, URy: 5}
	if got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := Bounds(nil); got != (rect.Rect{}) {
		t.Errorf("empty bounds: got %v", got)
	}
}
