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
	"context"
	"fmt"
	"log/slog"
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Counter finds plus signs in paintings made of axis-aligned strokes.
//
// The zero value is ready to use.  Create one instance and reuse it for
// many paintings: internal buffers grow as needed but never shrink.
//
// A Counter is not safe for concurrent use.
type Counter struct {
	// Internal buffers (reused across calls)
	vertices []Point   // walk of the current strokes
	segs     []segment // painted segments, in painting coordinates
	rawX     []int64   // segment endpoint coordinates, owned by xs after compress
	rawY     []int64
	xs, ys   axis
	hRuns    []run // merged horizontal runs, keyed by row
	vRuns    []run // merged vertical runs, keyed by column
	events   []event
	rows     fenwick

	stats Stats
}

// Stats describes the intermediate structures of the last run of a
// Counter.
type Stats struct {
	Segments       int       // segments, including zero-length ones
	Bounds         rect.Rect // bounding box of all segment endpoints
	DistinctX      int       // columns of the compressed grid
	DistinctY      int       // rows of the compressed grid
	HorizontalRuns int       // merged horizontal runs
	VerticalRuns   int       // merged vertical runs
	Events         int       // sweep events
	Count          int       // plus signs found
}

// NewCounter returns a new Counter.
func NewCounter() *Counter {
	return &Counter{}
}

// Stats returns information about the last successful call to Count,
// Centers or CountPath.
func (c *Counter) Stats() Stats {
	return c.stats
}

// Count returns the number of plus signs painted by the strokes, starting
// at the origin.
func (c *Counter) Count(strokes []Stroke) (int, error) {
	if err := c.loadStrokes(strokes); err != nil {
		return 0, err
	}
	return c.run(nil), nil
}

// Centers returns the plus-sign centers painted by the strokes, in
// painting coordinates, ordered by X and then by Y.
func (c *Counter) Centers(strokes []Stroke) ([]Point, error) {
	if err := c.loadStrokes(strokes); err != nil {
		return nil, err
	}
	var centers []Point
	c.run(func(col, row int) {
		centers = append(centers, Point{X: c.xs.value(col), Y: c.ys.value(row)})
	})
	return centers, nil
}

// CountPath returns the number of plus signs painted by stroking p.
//
// All elements of p must be horizontal or vertical line segments with
// integer coordinates.  Subpaths are independent; ClosePath adds the
// segment back to the start of the subpath.  Curves, diagonal segments and
// non-integral coordinates give an error wrapping ErrInvalidInput.
func (c *Counter) CountPath(p *path.Data) (int, error) {
	if err := c.loadPath(p); err != nil {
		return 0, err
	}
	return c.run(nil), nil
}

// loadStrokes walks the strokes and records one segment per stroke.
func (c *Counter) loadStrokes(strokes []Stroke) error {
	var err error
	c.vertices, err = appendWalk(c.vertices[:0], strokes)
	if err != nil {
		return err
	}

	c.segs = c.segs[:0]
	for i := 1; i < len(c.vertices); i++ {
		c.segs = append(c.segs, segment{a: c.vertices[i-1], b: c.vertices[i]})
	}
	return nil
}

// loadPath records the line segments of p.
func (c *Counter) loadPath(p *path.Data) error {
	c.segs = c.segs[:0]

	// Path state
	var current Point // current point
	var subpath Point // subpath start

	// Walk the path using direct field access (no iterator allocation)
	coordIdx := 0
	for i, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			pt, err := latticePoint(p.Coords[coordIdx])
			if err != nil {
				return fmt.Errorf("path element %d: %w", i, err)
			}
			current = pt
			subpath = current
			coordIdx++

		case path.CmdLineTo:
			pt, err := latticePoint(p.Coords[coordIdx])
			if err != nil {
				return fmt.Errorf("path element %d: %w", i, err)
			}
			if pt.X != current.X && pt.Y != current.Y {
				return fmt.Errorf("path element %d: diagonal segment %s-%s: %w",
					i, current, pt, ErrInvalidInput)
			}
			c.segs = append(c.segs, segment{a: current, b: pt})
			current = pt
			coordIdx++

		case path.CmdQuadTo, path.CmdCubeTo:
			return fmt.Errorf("path element %d: curves are not supported: %w", i, ErrInvalidInput)

		case path.CmdClose:
			if current != subpath {
				if current.X != subpath.X && current.Y != subpath.Y {
					return fmt.Errorf("path element %d: diagonal closing segment %s-%s: %w",
						i, current, subpath, ErrInvalidInput)
				}
				c.segs = append(c.segs, segment{a: current, b: subpath})
			}
			current = subpath
		}
	}
	return nil
}

// latticePoint converts v to integer coordinates.
func latticePoint(v vec.Vec2) (Point, error) {
	x, okX := exactInt64(v.X)
	y, okY := exactInt64(v.Y)
	if !okX || !okY {
		return Point{}, fmt.Errorf("non-integral point (%g,%g): %w", v.X, v.Y, ErrInvalidInput)
	}
	return Point{X: x, Y: y}, nil
}

// exactInt64 converts x to int64 if this can be done without rounding.
func exactInt64(x float64) (int64, bool) {
	// -2^63 is representable, 2^63 is not
	if x != math.Trunc(x) || x < math.MinInt64 || x >= -math.MinInt64 {
		return 0, false
	}
	return int64(x), true
}

// run executes the pipeline on c.segs: coordinate compression, run
// construction and the sweep.  If emit is non-nil, it receives the
// compressed coordinates of every center.
func (c *Counter) run(emit func(col, row int)) int {
	c.stats = Stats{Segments: len(c.segs)}

	c.rawX = c.rawX[:0]
	c.rawY = c.rawY[:0]
	for _, s := range c.segs {
		c.rawX = append(c.rawX, s.a.X, s.b.X)
		c.rawY = append(c.rawY, s.a.Y, s.b.Y)
	}
	c.xs.reset(c.rawX)
	c.ys.reset(c.rawY)
	c.stats.DistinctX = c.xs.len()
	c.stats.DistinctY = c.ys.len()
	if c.xs.len() > 0 && c.ys.len() > 0 {
		c.stats.Bounds = rect.Rect{
			LLx: float64(c.xs.value(0)),
			LLy: float64(c.ys.value(0)),
			URx: float64(c.xs.value(c.xs.len() - 1)),
			URy: float64(c.ys.value(c.ys.len() - 1)),
		}
	}

	// A center needs a neighbour on each side, in both directions.
	if c.xs.len() < 3 || c.ys.len() < 3 {
		c.logStats()
		return 0
	}

	c.hRuns, c.vRuns = buildRuns(c.segs, &c.xs, &c.ys, c.hRuns[:0], c.vRuns[:0])
	c.stats.HorizontalRuns = len(c.hRuns)
	c.stats.VerticalRuns = len(c.vRuns)

	c.events = collectEvents(c.events[:0], c.hRuns, c.vRuns)
	c.stats.Events = len(c.events)

	c.rows.reset(c.ys.len())
	c.stats.Count = sweep(c.events, &c.rows, emit)

	c.logStats()
	return c.stats.Count
}

func (c *Counter) logStats() {
	Logger().LogAttrs(context.Background(), slog.LevelDebug, "plus signs counted",
		slog.Int("segments", c.stats.Segments),
		slog.Int("distinctX", c.stats.DistinctX),
		slog.Int("distinctY", c.stats.DistinctY),
		slog.Int("hRuns", c.stats.HorizontalRuns),
		slog.Int("vRuns", c.stats.VerticalRuns),
		slog.Int("events", c.stats.Events),
		slog.Int("count", c.stats.Count),
	)
}
