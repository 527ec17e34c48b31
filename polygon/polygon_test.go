package polygon

import (
	"math"
	"testing"

	"github.com/328d95/genartlib"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestBuilder(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(genartlib.P(0, 0)).Knot(genartlib.P(1, 3)).Knot(genartlib.P(3, 0)).Cycle()
	L().Infof("pg = %s", AsString(pg))
	if pg.N() != 3 {
		t.Fail()
	}
}

func TestBox(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 5), genartlib.P(4, 1))
	L().Infof("box = %s", AsString(box))
	if box.N() != 4 {
		t.Fail()
	}
	if !box.Pt(1).Equal(genartlib.P(4, 5)) {
		t.Errorf("Expected knot 1 to be (4,5), is %v", box.Pt(1))
	}
}

func TestCentroid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 2), genartlib.P(2, 0))
	if !box.Centroid().Equal(genartlib.P(1, 1)) {
		t.Errorf("Expected centroid (1,1), is %v", box.Centroid())
	}
}

func TestRotatedIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 2), genartlib.P(2, 0))
	if box.Rotated(0) != box {
		t.Errorf("Expected rotation by 0 to return the polygon untouched")
	}
}

func TestRotatedQuarterTurn(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 2), genartlib.P(2, 0))
	rotated := box.Rotated(math.Pi / 2)
	L().Infof("rotated = %s", AsString(rotated))
	// the square maps onto itself, knots shifted by one position
	for i := 0; i < box.N(); i++ {
		if !rotated.Pt(i).Equal(box.Pt(i + 3)) {
			t.Errorf("Expected knot %d to be %v, is %v", i, box.Pt(i+3), rotated.Pt(i))
		}
	}
}

func TestRotatedPreservesRadius(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(genartlib.P(0, 0)).Knot(genartlib.P(5, 1)).Knot(genartlib.P(3, 4)).Cycle()
	center := pg.Centroid()
	rotated := pg.Rotated(0.7)
	for i := 0; i < pg.N(); i++ {
		want := genartlib.Dist(center, pg.Pt(i))
		got := genartlib.Dist(rotated.Centroid(), rotated.Pt(i))
		if math.Abs(want-got) > 1e-6 {
			t.Errorf("Expected knot %d to keep radius %g, has %g", i, want, got)
		}
	}
}

func TestShrunk(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 2), genartlib.P(2, 0))
	same := box.Shrunk(0)
	for i := 0; i < box.N(); i++ {
		if !same.Pt(i).Equal(box.Pt(i)) {
			t.Errorf("Expected ratio 0 to leave knot %d at %v, is %v", i, box.Pt(i), same.Pt(i))
		}
	}
	half := box.Shrunk(0.5)
	if !half.Pt(0).Equal(genartlib.P(0.5, 1.5)) {
		t.Errorf("Expected knot 0 shrunk to (0.5,1.5), is %v", half.Pt(0))
	}
	collapsed := box.Shrunk(1)
	for i := 0; i < box.N(); i++ {
		if !collapsed.Pt(i).Equal(genartlib.P(1, 1)) {
			t.Errorf("Expected ratio 1 to collapse knot %d onto centroid, is %v", i, collapsed.Pt(i))
		}
	}
}

func TestContains(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	pg := NullPolygon().Knot(genartlib.P(0, 0)).Knot(genartlib.P(4, 0)).Knot(genartlib.P(2, 3)).Cycle()
	if !pg.Contains(pg.Centroid()) {
		t.Errorf("Expected centroid %v to lie inside the triangle", pg.Centroid())
	}
	if pg.Contains(genartlib.P(100, 100)) {
		t.Errorf("Expected far-away point to lie outside the triangle")
	}
}

func TestContainsPoint(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	xs := []float64{0, 4, 2}
	ys := []float64{0, 0, 3}
	if !ContainsPoint(xs, ys, 2, 1) {
		t.Errorf("Expected (2,1) to lie inside the triangle")
	}
	if ContainsPoint(xs, ys, -1, -1) {
		t.Errorf("Expected (-1,-1) to lie outside the triangle")
	}
}

func TestContourRoundTrip(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	box := Box(genartlib.P(0, 5), genartlib.P(4, 1))
	back := FromContour(box.Contour())
	if back.N() != box.N() {
		t.Fatalf("Expected %d knots after round trip, got %d", box.N(), back.N())
	}
	for i := 0; i < box.N(); i++ {
		if !back.Pt(i).Equal(box.Pt(i)) {
			t.Errorf("Expected knot %d to be %v, is %v", i, box.Pt(i), back.Pt(i))
		}
	}
}
