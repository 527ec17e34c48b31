/*
Package polygon implements simple closed shapes over pairs, with
centroid-based transforms (rotation, shrinking) and point containment
testing. Containment delegates to the polyclip library's contour primitive.

# BSD License

# Copyright (c) the genartlib authors

All rights reserved.

Please refer to the license file for more information.
*/
package polygon

import (
	"fmt"

	"github.com/328d95/genartlib"
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/schuko/tracing"
)

// L writes to trace with key 'genartlib.polygon'
func L() tracing.Trace {
	return tracing.Select("genartlib.polygon")
}

// Polygon is a closed shape given by its corner points (knots). Knots are
// in boundary order; the closing edge from the last knot back to the first
// is implied, the first knot is not repeated.
//
// To construct a polygon, start with NullPolygon(), which creates an empty
// polygon, and then extend it:
//
//	pg := NullPolygon().Knot(genartlib.P(0, 0)).Knot(genartlib.P(1, 3)).Knot(genartlib.P(3, 0)).Cycle()
//
// Calling Cycle() marks the polygon as complete.
type Polygon struct {
	knots []genartlib.Pair
	done  bool
}

// NullPolygon creates an empty polygon, to be extended by subsequent
// builder calls.
func NullPolygon() *Polygon {
	return &Polygon{}
}

// Knot appends a corner point. Part of builder functionality.
func (pg *Polygon) Knot(pr genartlib.Pair) *Polygon {
	pg.knots = append(pg.knots, pr)
	return pg
}

// Cycle closes the polygon. Part of builder functionality.
func (pg *Polygon) Cycle() *Polygon {
	if pg.N() < 3 {
		L().Errorf("cycle of polygon with %d knots", pg.N())
	}
	pg.done = true
	return pg
}

// Box creates a rectangular polygon from two opposite corners.
func Box(topleft, botright genartlib.Pair) *Polygon {
	return NullPolygon().
		Knot(topleft).
		Knot(genartlib.P(botright.X(), topleft.Y())).
		Knot(botright).
		Knot(genartlib.P(topleft.X(), botright.Y())).
		Cycle()
}

// N returns the number of knots.
func (pg *Polygon) N() int {
	return len(pg.knots)
}

// Pt returns the knot at position (i mod N).
func (pg *Polygon) Pt(i int) genartlib.Pair {
	if i < 0 || i >= pg.N() {
		i = i % pg.N()
	}
	return pg.knots[i]
}

// Knots returns a copy of the corner points in boundary order.
func (pg *Polygon) Knots() []genartlib.Pair {
	knots := make([]genartlib.Pair, len(pg.knots))
	copy(knots, pg.knots)
	return knots
}

// AsString pretty-prints a polygon.
func AsString(pg *Polygon) string {
	var s string
	for i, pt := range pg.knots {
		if i > 0 {
			s += " -- "
		}
		s += fmt.Sprintf("%s", pt)
	}
	if pg.done {
		s += " -- cycle"
	}
	return s
}

// Contour converts the polygon for use with the clipping library.
func (pg *Polygon) Contour() polyclip.Contour {
	contour := make(polyclip.Contour, 0, pg.N())
	for _, pt := range pg.knots {
		contour = append(contour, polyclip.Point{X: pt.X(), Y: pt.Y()})
	}
	return contour
}

// FromContour creates a polygon from a contour of the clipping library.
func FromContour(contour polyclip.Contour) *Polygon {
	pg := NullPolygon()
	for _, pt := range contour {
		pg.Knot(genartlib.P(pt.X, pt.Y))
	}
	return pg.Cycle()
}
