package flood

import (
	"math"
	"testing"
)

func TestCurve(t *testing.T) {
	cells := []Cell{
		{Elevation: 0},
		{Elevation: 10},
		{Elevation: 20},
		{Elevation: math.NaN()},
	}
	pts := Curve(cells, -5, 25, 5)
	if len(pts) != 7 {
		t.Fatalf("point count = %d, want 7", len(pts))
	}
	if pts[0].Level != -5 || pts[len(pts)-1].Level != 25 {
		t.Fatalf("sweep ends = (%v, %v), want (-5, 25)", pts[0].Level, pts[len(pts)-1].Level)
	}

	// Unknown cells stay out of the denominator: three known cells.
	if pts[0].Fraction != 0 {
		t.Fatalf("fraction below all terrain = %v, want 0", pts[0].Fraction)
	}
	if got := pts[2].Fraction; got != 1.0/3 { // level 5 floods only elevation 0
		t.Fatalf("fraction at level 5 = %v, want 1/3", got)
	}
	if got := pts[len(pts)-1].Fraction; got != 1 {
		t.Fatalf("fraction above all terrain = %v, want 1", got)
	}

	for i := 1; i < len(pts); i++ {
		if pts[i].Fraction < pts[i-1].Fraction {
			t.Fatalf("curve not monotonic at %v: %v < %v", pts[i].Level, pts[i].Fraction, pts[i-1].Fraction)
		}
	}
}

func TestCurveUnevenStepEndsAtMax(t *testing.T) {
	pts := Curve([]Cell{{Elevation: 1}}, 0, 1, 0.3)
	last := pts[len(pts)-1]
	if last.Level != 1 {
		t.Fatalf("last level = %v, want exactly 1", last.Level)
	}
}

func TestCurveBadArguments(t *testing.T) {
	if Curve(nil, 0, 1, 0) != nil {
		t.Fatal("zero step must yield no curve")
	}
	if Curve(nil, 1, 0, 0.5) != nil {
		t.Fatal("inverted range must yield no curve")
	}
}
