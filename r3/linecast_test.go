package r3

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/test"
)

func testLinecast(t *testing.T, points []LinecastPoint, wanted ...LinecastPoint) {
	t.Helper()
	test.T(t, len(points), len(wanted), points)
	for i := 0; i < len(points) && i < len(wanted); i++ {
		testVector(t, points[i].Point, wanted[i].Point)
		testVector(t, points[i].Normal, wanted[i].Normal)
		test.Float(t, points[i].Abscissa, wanted[i].Abscissa)
	}
}

func TestLine(t *testing.T) {
	l := MustLine(Vector{1, 0, 0}, Vector{1, 3, 4}, prec)
	testVector(t, l.Direction(), Vector{0, 0.6, 0.8})
	test.Float(t, l.Abscissa(Vector{1, 3, 4}), 5.0)
	testVector(t, l.PointAt(10.0), Vector{1, 6, 8})
	test.That(t, l.Contains(Vector{1, -3, -4}))
	test.That(t, !l.Contains(Vector{0, 3, 4}))

	_, err := LineFromPoints(Vector{1, 1, 1}, Vector{1, 1, 1}, prec)
	test.That(t, errors.Is(err, bsp.ErrDegenerate))
	_, err = LineFromPointAndDirection(Vector{math.NaN(), 0, 0}, Vector{1, 0, 0}, prec)
	test.That(t, errors.Is(err, bsp.ErrDegenerate))

	pl := MustPlane(Vector{0, 0, 2}, Vector{0, 0, 1}, prec)
	s, ok := pl.LineIntersection(l)
	test.That(t, ok)
	test.Float(t, s, 2.5)
	_, ok = pl.LineIntersection(MustLine(Vector{0, 0, 0}, Vector{1, 1, 0}, prec))
	test.That(t, !ok)
}

func TestRegionLinecast(t *testing.T) {
	r := box(0, 0, 0, 1, 1, 1)
	l := MustLine(Vector{-1, 0.5, 0.5}, Vector{0, 0.5, 0.5}, prec)
	testLinecast(t, r.Linecast(l, math.Inf(-1), math.Inf(1)),
		LinecastPoint{Vector{0, 0.5, 0.5}, Vector{-1, 0, 0}, 1.0},
		LinecastPoint{Vector{1, 0.5, 0.5}, Vector{1, 0, 0}, 2.0},
	)
	testLinecast(t, r.Linecast(l, 1.5, math.Inf(1)),
		LinecastPoint{Vector{1, 0.5, 0.5}, Vector{1, 0, 0}, 2.0},
	)
	testLinecast(t, r.Linecast(l, 1.0, 2.0),
		LinecastPoint{Vector{0, 0.5, 0.5}, Vector{-1, 0, 0}, 1.0},
		LinecastPoint{Vector{1, 0.5, 0.5}, Vector{1, 0, 0}, 2.0},
	)
	test.T(t, len(r.Linecast(l, 2.5, 5.0)), 0)
	test.T(t, len(r.Linecast(MustLine(Vector{-1, 2, 0.5}, Vector{0, 2, 0.5}, prec), math.Inf(-1), math.Inf(1))), 0)

	p, ok := r.LinecastFirst(l, 0.0, math.Inf(1))
	test.That(t, ok)
	testVector(t, p.Normal, Vector{-1, 0, 0})
	_, ok = r.LinecastFirst(l, 3.0, math.Inf(1))
	test.That(t, !ok)

	// from inside
	testLinecast(t, r.LinecastRay(Vector{0.5, 0.5, 0.5}, Vector{0, 0, 2}),
		LinecastPoint{Vector{0.5, 0.5, 1}, Vector{0, 0, 1}, 0.5},
	)
	testLinecast(t, r.LinecastSegment(Vector{0.5, 0.5, -1}, Vector{0.5, 0.5, 0.5}),
		LinecastPoint{Vector{0.5, 0.5, 0}, Vector{0, 0, -1}, 1.0},
	)
	test.T(t, len(r.LinecastSegment(Vector{0.25, 0.25, 0.25}, Vector{0.75, 0.75, 0.75})), 0)

	// along a face, only the crossed faces are reported
	testLinecast(t, r.Linecast(MustLine(Vector{-1, 0, 0.5}, Vector{0, 0, 0.5}, prec), math.Inf(-1), math.Inf(1)),
		LinecastPoint{Vector{0, 0, 0.5}, Vector{-1, 0, 0}, 1.0},
		LinecastPoint{Vector{1, 0, 0.5}, Vector{1, 0, 0}, 2.0},
	)

	// through opposite corners, every face meeting at a corner reports it
	sqrt3 := math.Sqrt(3.0)
	testLinecast(t, r.Linecast(MustLine(Vector{-1, -1, -1}, Vector{0, 0, 0}, prec), math.Inf(-1), math.Inf(1)),
		LinecastPoint{Vector{0, 0, 0}, Vector{-1, 0, 0}, sqrt3},
		LinecastPoint{Vector{0, 0, 0}, Vector{0, -1, 0}, sqrt3},
		LinecastPoint{Vector{0, 0, 0}, Vector{0, 0, -1}, sqrt3},
		LinecastPoint{Vector{1, 1, 1}, Vector{0, 0, 1}, 2.0 * sqrt3},
		LinecastPoint{Vector{1, 1, 1}, Vector{0, 1, 0}, 2.0 * sqrt3},
		LinecastPoint{Vector{1, 1, 1}, Vector{1, 0, 0}, 2.0 * sqrt3},
	)

	test.T(t, len(Full().Linecast(l, math.Inf(-1), math.Inf(1))), 0)
	test.T(t, len(Empty().Linecast(l, math.Inf(-1), math.Inf(1))), 0)
}

func TestRegionLinecastCombined(t *testing.T) {
	// the cavity faces point into the cavity
	hollow := box(0, 0, 0, 4, 4, 4).Difference(box(1, 1, 1, 3, 3, 3))
	l := MustLine(Vector{-1, 2, 2}, Vector{0, 2, 2}, prec)
	testLinecast(t, hollow.Linecast(l, math.Inf(-1), math.Inf(1)),
		LinecastPoint{Vector{0, 2, 2}, Vector{-1, 0, 0}, 1.0},
		LinecastPoint{Vector{1, 2, 2}, Vector{1, 0, 0}, 2.0},
		LinecastPoint{Vector{3, 2, 2}, Vector{-1, 0, 0}, 4.0},
		LinecastPoint{Vector{4, 2, 2}, Vector{1, 0, 0}, 5.0},
	)

	// faces inside the union are not reported
	union := box(0, 0, 0, 2, 2, 2).Union(box(1, 1, 1, 3, 3, 3))
	l = MustLine(Vector{-1, 1.5, 1.5}, Vector{0, 1.5, 1.5}, prec)
	testLinecast(t, union.Linecast(l, math.Inf(-1), math.Inf(1)),
		LinecastPoint{Vector{0, 1.5, 1.5}, Vector{-1, 0, 0}, 1.0},
		LinecastPoint{Vector{3, 1.5, 1.5}, Vector{1, 0, 0}, 4.0},
	)
}
