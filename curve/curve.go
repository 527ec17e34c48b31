/*
Package curve processes open polylines: Chaikin corner-cutting subdivision,
arc-length measurement, and partitioning of a curve into pieces of equal
arc length.

Curves are plain slices of pairs. All operations are pure: they leave their
input untouched and return freshly allocated curves, so they are safe to
call concurrently.

# BSD License

# Copyright (c) the genartlib authors

All rights reserved.

Please refer to the license file for more information.
*/
package curve

import (
	"github.com/328d95/genartlib"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'genartlib.curve'
func tracer() tracing.Trace {
	return tracing.Select("genartlib.curve")
}

// Curve is an ordered sequence of points forming an open polyline. A curve
// is not implicitly closed; callers wanting a closed shape repeat the first
// point as the last.
type Curve []genartlib.Pair

// Length returns the arc length of a curve: the sum of the Euclidean
// distances between consecutive points. Curves with fewer than two points
// have length 0.
func Length(c Curve) float64 {
	total := 0.0
	for i := 0; i+1 < len(c); i++ {
		total += genartlib.Dist(c[i], c[i+1])
	}
	return total
}
