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
	"fmt"
)

var (
	// ErrInvalidInput reports input of the wrong shape: a negative stroke
	// count, length and direction sequences which disagree with the count,
	// coordinates which overflow int64, or path elements which are not
	// axis-aligned line segments.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidDirection reports a direction code outside of U, D, L, R.
	ErrInvalidDirection = errors.New("invalid direction")
)

// DirectionError records an invalid direction code and its position in
// the input.
type DirectionError struct {
	Index int  // position of the stroke, or -1 if unknown
	Code  byte // the offending byte
}

func (e *DirectionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("invalid direction %q", e.Code)
	}
	return fmt.Sprintf("stroke %d: invalid direction %q", e.Index, e.Code)
}

// Is allows errors.Is(err, ErrInvalidDirection) to match.
func (e *DirectionError) Is(target error) bool {
	return target == ErrInvalidDirection
}
