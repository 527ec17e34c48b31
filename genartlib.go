/*
Package genartlib implements the shared numeric and point types for a small
2D geometry library aimed at generative-art sketches: pairs (2D points),
linear interpolation, distances, angles and centroids. Subpackages build
curve smoothing and polygon transforms on top of these primitives.

# BSD License

# Copyright (c) the genartlib authors

All rights reserved.

Please refer to the license file for more information.
*/
package genartlib

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'genartlib'
func tracer() tracing.Trace {
	return tracing.Select("genartlib")
}

// === Numeric Data Type =====================================================

// Deg2Rad is a constant for converting from DEG to RAD or vice versa
var Deg2Rad float64 = 0.01745329251

// Epsilon : numbers below ε are considered 0
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Is1 is a predicate: is n = 1.0 ?
func Is1(n float64) bool {
	return math.Abs(1-n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		n = 0
	}
	return n
}

// Round to ε.
func Round(n float64) float64 {
	return math.Round(n/Epsilon) * Epsilon
}

// Clamp limits v to the interval [lo,hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Rescale maps v linearly from the interval [oldMin,oldMax] to
// [newMin,newMax]. An empty source interval cannot be rescaled; v is then
// mapped to newMin.
func Rescale(v, oldMin, oldMax, newMin, newMax float64) float64 {
	if Is0(oldMax - oldMin) {
		tracer().Errorf("rescale from empty interval [%g,%g]", oldMin, oldMax)
		return newMin
	}
	return newMin + (v-oldMin)/(oldMax-oldMin)*(newMax-newMin)
}

// LerpF interpolates linearly between two scalars: a + t*(b-a).
// t is not clamped; t outside [0,1] extrapolates.
func LerpF(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Avg returns the arithmetic mean of its arguments, 0 for no arguments.
func Avg(ns ...float64) float64 {
	if len(ns) == 0 {
		return 0
	}
	sum := 0.0
	for _, n := range ns {
		sum += n
	}
	return sum / float64(len(ns))
}

// === Pair Data Type ========================================================

// Pair is an interface for pairs / 2D-points
type Pair complex128

// Origin represents the frequently used constant (0,0).
var Origin = P(float64(0), float64(0))

// Pretty Stringer for simple pairs.
func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// C returns a Pair as a complex number.
func (p Pair) C() complex128 {
	return complex128(p)
}

// C2P returns a Pair from a complex number.
func C2P(c complex128) Pair {
	if cmplx.IsNaN(c) || cmplx.IsInf(c) {
		tracer().Errorf("created pair for complex.NaN")
		return P(0, 0)
	}
	return P(real(c), imag(c))
}

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

// F is a quick notation for getting float values from a pair.
func (p Pair) F() (float64, float64) {
	px := real(p.C())
	py := imag(p.C())
	return px, py
}

// X is the x-part of a pair.
func (p Pair) X() float64 {
	return real(p.C())
}

// Y is the y-part of a pair.
func (p Pair) Y() float64 {
	return imag(p.C())
}

// Zap rounds x-part and y-part to Epsilon.
func (p Pair) Zap() Pair {
	p = P(Zap(p.X()), Zap(p.Y()))
	return p
}

// IsOrigin is a predicate: is this pair origin?
func (p Pair) IsOrigin() bool {
	return p.Equal(Origin)
}

// Equal compares two pairs.
func (p Pair) Equal(p2 Pair) bool {
	p2 = p2.Zap()
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Shifted returns a new pair translated by v.
func (p Pair) Shifted(v Pair) Pair {
	return (p + v).Zap()
}

// Rotated returns a new pair rotated around origin by theta (counterclockwise).
func (p Pair) Rotated(theta float64) Pair {
	return C2P(p.C() * cmplx.Rect(1, theta)).Zap()
}

// Rotatedaround returns a new pair rotated around v by theta (counterclockwise).
func (p Pair) Rotatedaround(v Pair, theta float64) Pair {
	return p.Shifted(-v).Rotated(theta).Shifted(v).Zap()
}

// === Algebra on Pairs ======================================================

// Lerp interpolates linearly between two pairs, coordinate by coordinate.
// t is not clamped.
func Lerp(a, b Pair, t float64) Pair {
	return P(LerpF(a.X(), b.X(), t), LerpF(a.Y(), b.Y(), t))
}

// Dist returns the Euclidean distance between two pairs.
func Dist(a, b Pair) float64 {
	return cmplx.Abs((b - a).C())
}

// AngleOf returns the angle of the vector p, in radians within -pi..pi.
func AngleOf(p Pair) float64 {
	if cmplx.IsNaN(p.C()) {
		return 0.0
	}
	return cmplx.Phase(p.C())
}

// Centroid returns the arithmetic mean position of a point set. The centroid
// of an empty point set is not defined; Origin is returned as a fallback.
func Centroid(ps []Pair) Pair {
	if len(ps) == 0 {
		tracer().Errorf("centroid of empty point set")
		return Origin
	}
	sum := Pair(0)
	for _, p := range ps {
		sum += p
	}
	return C2P(sum.C() / complex(float64(len(ps)), 0))
}
