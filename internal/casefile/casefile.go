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

// Package casefile reads and writes collections of paintings.
//
// A case file is YAML (or JSON, which is valid YAML) of the form
//
//	cases:
//	  - name: sample_one
//	    lengths: [6, 3, 4, 5, 1, 6, 3, 3, 4]
//	    directions: ULDRULURD
//	    want: 4
//	paths:
//	  - name: cross
//	    subpaths:
//	      - points: [[-2, 0], [2, 0]]
//	      - points: [[0, -2], [0, 2]]
//	    want: 1
//
// The want fields are optional.
package casefile

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"math"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/plus"
	"seehuhn.de/go/plus/testcases"
)

// File is the content of a case file.
type File struct {
	Cases []Case `json:"cases" yaml:"cases"`
	Paths []Path `json:"paths,omitempty" yaml:"paths,omitempty"`
}

// Case is a painting given as strokes.
type Case struct {
	Name       string  `json:"name" yaml:"name"`
	Lengths    []int64 `json:"lengths" yaml:"lengths"`
	Directions string  `json:"directions" yaml:"directions"`
	Want       *int    `json:"want,omitempty" yaml:"want,omitempty"`
}

// Path is a painting given as a list of polylines.
type Path struct {
	Name     string    `json:"name" yaml:"name"`
	Subpaths []Subpath `json:"subpaths" yaml:"subpaths"`
	Want     *int      `json:"want,omitempty" yaml:"want,omitempty"`
}

// Subpath is a single polyline.  Each point is an [x, y] pair.
type Subpath struct {
	Points [][]int64 `json:"points" yaml:"points"`
	Closed bool      `json:"closed,omitempty" yaml:"closed,omitempty"`
}

// errMissingName is returned for entries without a name.
var errMissingName = errors.New("missing name")

// Load reads a case file from r.
func Load(r io.Reader) (*File, error) {
	var f File
	if err := yaml.NewDecoder(r).Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parsing case file: %w", err)
	}
	if err := f.validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// LoadFile reads the case file with the given name.
func LoadFile(name string) (f *File, err error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := fd.Close(); err == nil {
			err = cerr
		}
	}()
	return Load(fd)
}

func (f *File) validate() error {
	for i, c := range f.Cases {
		if c.Name == "" {
			return fmt.Errorf("case %d: %w", i, errMissingName)
		}
	}
	for i, p := range f.Paths {
		if p.Name == "" {
			return fmt.Errorf("path %d: %w", i, errMissingName)
		}
		for j, sp := range p.Subpaths {
			for k, pt := range sp.Points {
				if len(pt) != 2 {
					return fmt.Errorf("path %q, subpath %d, point %d: need 2 coordinates, got %d",
						p.Name, j, k, len(pt))
				}
			}
		}
	}
	return nil
}

// Strokes converts the case into a stroke sequence.
func (c *Case) Strokes() ([]plus.Stroke, error) {
	return plus.ParseStrokes(c.Lengths, c.Directions)
}

// Data converts the path into a geom path.  Empty subpaths are skipped.
func (p *Path) Data() *path.Data {
	d := &path.Data{}
	for _, sp := range p.Subpaths {
		if len(sp.Points) == 0 {
			continue
		}
		d = d.MoveTo(toVec(sp.Points[0]))
		for _, pt := range sp.Points[1:] {
			d = d.LineTo(toVec(pt))
		}
		if sp.Closed {
			d = d.Close()
		}
	}
	return d
}

func toVec(pt []int64) vec.Vec2 {
	return vec.Vec2{X: float64(pt[0]), Y: float64(pt[1])}
}

// FromTestCases collects the built-in test cases into a File.  Case names
// are prefixed with their category.  Paths must consist of straight lines
// between integer points; anything else gives an error wrapping
// plus.ErrInvalidInput.
func FromTestCases(all map[string][]testcases.TestCase, paths []testcases.PathCase) (*File, error) {
	f := &File{}
	for _, category := range slices.Sorted(maps.Keys(all)) {
		for _, tc := range all[category] {
			want := tc.Want
			f.Cases = append(f.Cases, Case{
				Name:       category + "_" + tc.Name,
				Lengths:    tc.Lengths,
				Directions: tc.Directions,
				Want:       &want,
			})
		}
	}
	for _, pc := range paths {
		sp, err := subpaths(pc.Path)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", pc.Name, err)
		}
		want := pc.Want
		f.Paths = append(f.Paths, Path{
			Name:     pc.Name,
			Subpaths: sp,
			Want:     &want,
		})
	}
	return f, nil
}

// subpaths splits a path made of straight lines into polylines.
func subpaths(p *path.Data) ([]Subpath, error) {
	var res []Subpath
	var cur *Subpath

	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo, path.CmdLineTo:
			pt, err := fromVec(p.Coords[coordIdx])
			if err != nil {
				return nil, fmt.Errorf("path element %d: %w", i, err)
			}
			coordIdx++
			if cmd == path.CmdMoveTo {
				res = append(res, Subpath{})
				cur = &res[len(res)-1]
			} else if cur == nil {
				continue
			}
			cur.Points = append(cur.Points, pt)
		case path.CmdQuadTo, path.CmdCubeTo:
			return nil, fmt.Errorf("path element %d: curves are not supported: %w",
				i, plus.ErrInvalidInput)
		case path.CmdClose:
			if cur != nil {
				cur.Closed = true
				cur = nil
			}
		}
	}
	return res, nil
}

// fromVec converts v to integer coordinates, if this can be done without
// rounding.
func fromVec(v vec.Vec2) ([]int64, error) {
	x, okX := toInt64(v.X)
	y, okY := toInt64(v.Y)
	if !okX || !okY {
		return nil, fmt.Errorf("non-integral point (%g,%g): %w", v.X, v.Y, plus.ErrInvalidInput)
	}
	return []int64{x, y}, nil
}

func toInt64(x float64) (int64, bool) {
	if x != math.Trunc(x) || x < math.MinInt64 || x >= -math.MinInt64 {
		return 0, false
	}
	return int64(x), true
}
