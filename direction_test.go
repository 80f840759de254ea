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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseDirection(t *testing.T) {
	for _, c := range []byte("UDLR") {
		d, err := ParseDirection(c)
		if err != nil {
			t.Fatal(err)
		}
		if d.Code() != c {
			t.Errorf("%q parsed as %v", c, d)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v: opposite is not an involution", d)
		}
		dx, dy := d.delta()
		ox, oy := d.Opposite().delta()
		if dx != -ox || dy != -oy {
			t.Errorf("%v: opposite does not point backwards", d)
		}
	}

	for _, c := range []byte("udlrX \x00") {
		_, err := ParseDirection(c)
		if !errors.Is(err, ErrInvalidDirection) {
			t.Errorf("%q: got %v, want ErrInvalidDirection", c, err)
		}
	}
}

func TestParseStrokes(t *testing.T) {
	got, err := ParseStrokes([]int64{3, 0, 7}, "LUR")
	if err != nil {
		t.Fatal(err)
	}
	want := []Stroke{{3, Left}, {0, Up}, {7, Right}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("strokes mismatch (-want +got):\n%s", d)
	}

	lengths, dirs := FormatStrokes(got)
	if d := cmp.Diff([]int64{3, 0, 7}, lengths); d != "" || dirs != "LUR" {
		t.Errorf("FormatStrokes gave %v %q", lengths, dirs)
	}

	if _, err := ParseStrokes([]int64{1}, "UD"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("got %v, want ErrInvalidInput", err)
	}
}

func TestReverse(t *testing.T) {
	got := Reverse([]Stroke{{1, Up}, {2, Left}, {3, Down}})
	want := []Stroke{{3, Up}, {2, Right}, {1, Down}}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("Reverse mismatch (-want +got):\n%s", d)
	}
}

func TestDirectionErrorMessage(t *testing.T) {
	err := &DirectionError{Index: 4, Code: 'Q'}
	if got, want := err.Error(), `stroke 4: invalid direction 'Q'`; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
