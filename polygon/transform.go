package polygon

import (
	"github.com/328d95/genartlib"
	polyclip "github.com/akavel/polyclip-go"
)

// Centroid returns the arithmetic mean position of the knots. It is
// recomputed from the current knots on every call; polygons carry no cached
// state.
func (pg *Polygon) Centroid() genartlib.Pair {
	return genartlib.Centroid(pg.knots)
}

// Rotated returns a new polygon with every knot rotated by theta (radians)
// around the centroid. The distance of each knot to the centroid is
// preserved. A theta of exactly 0 returns the receiver untouched.
func (pg *Polygon) Rotated(theta float64) *Polygon {
	if theta == 0 {
		return pg
	}
	center := pg.Centroid()
	knots := make([]genartlib.Pair, pg.N())
	for i, pt := range pg.knots {
		knots[i] = pt.Rotatedaround(center, theta)
	}
	return &Polygon{knots: knots, done: pg.done}
}

// Shrunk returns a new polygon with every knot moved toward the centroid:
// ratio 0 leaves the polygon unchanged, ratio 1 collapses it onto the
// centroid. The ratio is not clamped; values outside [0,1] extrapolate away
// from or past the centroid.
func (pg *Polygon) Shrunk(ratio float64) *Polygon {
	center := pg.Centroid()
	knots := make([]genartlib.Pair, pg.N())
	for i, pt := range pg.knots {
		knots[i] = genartlib.Lerp(pt, center, ratio)
	}
	return &Polygon{knots: knots, done: pg.done}
}

// Contains tests whether a point lies inside the polygon. The numeric test
// is delegated to the clipping library's contour primitive, which is exact
// for simple (non-self-intersecting) polygons; points on the boundary are
// at the mercy of floating-point rounding.
func (pg *Polygon) Contains(pt genartlib.Pair) bool {
	return pg.Contour().Contains(polyclip.Point{X: pt.X(), Y: pt.Y()})
}

// ContainsPoint tests whether the point (x,y) lies inside the polygon given
// by parallel slices of vertex coordinates. Excess elements of the longer
// slice are ignored.
func ContainsPoint(xs, ys []float64, x, y float64) bool {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	contour := make(polyclip.Contour, 0, n)
	for i := 0; i < n; i++ {
		contour = append(contour, polyclip.Point{X: xs[i], Y: ys[i]})
	}
	return contour.Contains(polyclip.Point{X: x, Y: y})
}
