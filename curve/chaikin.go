package curve

import (
	"github.com/328d95/genartlib"
)

// Conventional smoothing parameters. A tightness of 0.25 is the canonical
// Chaikin subdivision; 4 rounds are usually enough for screen resolution.
const (
	DefaultDepth     = 4
	DefaultTightness = 0.25
)

// ChaikinStep performs a single Chaikin corner-cutting pass. Every pair of
// consecutive points (A,B) is replaced by the two interpolated points
//
//	Q = lerp(A, B, tightness)
//	R = lerp(A, B, 1-tightness)
//
// so a curve of n points becomes one of 2*(n-1) points. A curve with fewer
// than two points has no point pairs and yields an empty curve.
//
// Tightness is conventionally in [0, 0.5]; values outside that range are
// not rejected, they merely overshoot the original segment.
func ChaikinStep(c Curve, tightness float64) Curve {
	if len(c) < 2 {
		return Curve{}
	}
	out := make(Curve, 0, 2*(len(c)-1))
	for i := 0; i+1 < len(c); i++ {
		a, b := c[i], c[i+1]
		out = append(out, genartlib.Lerp(a, b, tightness))
		out = append(out, genartlib.Lerp(a, b, 1.0-tightness))
	}
	return out
}

// Chaikin smooths a curve by applying ChaikinStep depth times. A depth of 0
// (or less) returns the input unchanged. Depth is conventionally 1..8; the
// point count grows roughly by a factor of 2 per round.
func Chaikin(c Curve, depth int, tightness float64) Curve {
	for round := 0; round < depth; round++ {
		c = ChaikinStep(c, tightness)
	}
	return c
}

// ChaikinRetainEnds smooths a curve like Chaikin, but pins the result to the
// original endpoints: plain subdivision pulls the curve away from the first
// and last point, which is unwanted when the curve has to connect two anchor
// positions. Curves of two points or fewer are returned unchanged, there is
// nothing to smooth.
func ChaikinRetainEnds(c Curve, depth int, tightness float64) Curve {
	if len(c) <= 2 {
		return c
	}
	smoothed := Chaikin(c, depth, tightness)
	out := make(Curve, 0, len(smoothed)+2)
	out = append(out, c[0])
	out = append(out, smoothed...)
	out = append(out, c[len(c)-1])
	return out
}

// Smooth applies Chaikin subdivision with the conventional parameters.
func Smooth(c Curve) Curve {
	return Chaikin(c, DefaultDepth, DefaultTightness)
}
