package r3

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r2"
	"github.com/tdewolff/test"
)

func TestPlane(t *testing.T) {
	pl, err := PlaneFromPoints(Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{0, 1, 0}, prec)
	test.Error(t, err)
	testVector(t, pl.Normal(), Vector{0, 0, 1})
	u, v := pl.Frame()
	testVector(t, u.Cross(v), pl.Normal())
	test.Float(t, pl.Offset(Vector{3, 4, 5}), 5.0)
	test.T(t, pl.Classify(Vector{3, 4, 5}), bsp.Plus)
	test.T(t, pl.Classify(Vector{3, 4, -5}), bsp.Minus)
	test.That(t, pl.Contains(Vector{3, 4, 1e-9}))
	testVector(t, pl.Project(Vector{3, 4, 5}), Vector{3, 4, 0})

	p := Vector{3, 4, 0}
	testVector(t, pl.ToSpace(pl.ToSubspace(p)), p)
	test.Float(t, pl.ToSubspace(p).Length(), 5.0)

	rev := pl.Reverse().(Plane)
	test.Float(t, rev.Offset(Vector{3, 4, 5}), -5.0)
	u, v = rev.Frame()
	testVector(t, u.Cross(v), rev.Normal())
	test.That(t, !pl.SimilarOrientation(rev))
	test.That(t, pl.Eq(MustPlane(Vector{7, 7, 0}, Vector{0, 0, 2}, prec), prec))
	test.That(t, !pl.Eq(rev, prec))

	_, err = PlaneFromPoints(Vector{0, 0, 0}, Vector{1, 1, 1}, Vector{2, 2, 2}, prec)
	test.That(t, errors.Is(err, bsp.ErrDegenerate))
	_, err = PlaneFromPointAndNormal(Vector{}, Vector{}, prec)
	test.That(t, errors.Is(err, bsp.ErrDegenerate))
	_, err = PlaneFromVertices(prec, Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{1, 1, 0}, Vector{0, 1, 1})
	test.That(t, errors.Is(err, bsp.ErrDegenerate))
}

func TestPlaneTransform(t *testing.T) {
	pl := MustPlane(Vector{}, Vector{0, 0, 1}, prec)
	q := pl.Transform(Identity.Translate(0.0, 0.0, 2.0)).(Plane)
	test.Float(t, q.Offset(Vector{0, 0, 5}), 3.0)

	// the image of the plus side stays on the plus side
	q = pl.Transform(Identity.Scale(1.0, 1.0, -1.0)).(Plane)
	testVector(t, q.Normal(), Vector{0, 0, -1})
	test.T(t, q.Classify(Vector{0, 0, -1}), bsp.Plus)

	q = pl.Transform(Identity.Rotate(90.0, Vector{1, 0, 0})).(Plane)
	testVector(t, q.Normal(), Vector{0, -1, 0})
	u, v := q.Frame()
	testVector(t, u.Cross(v), q.Normal())
}

func TestPlaneIntersection(t *testing.T) {
	a := MustPlane(Vector{0, 0, 1}, Vector{0, 0, 1}, prec)
	b := MustPlane(Vector{2, 0, 0}, Vector{1, 0, 0}, prec)
	p, dir, ok := a.Intersection(b)
	test.That(t, ok)
	test.That(t, a.Contains(p))
	test.That(t, b.Contains(p))
	test.Float(t, dir.Y*dir.Y, 1.0)

	_, _, ok = a.Intersection(MustPlane(Vector{}, Vector{0, 0, -1}, prec))
	test.That(t, !ok)
}

func TestFace(t *testing.T) {
	f, err := Face(prec, Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{1, 1, 0}, Vector{0, 1, 0})
	test.Error(t, err)
	testVector(t, f.Plane().Normal(), Vector{0, 0, 1})
	test.Float(t, f.Size(), 1.0)
	test.That(t, f.IsFinite())
	c, ok := f.Centroid()
	test.That(t, ok)
	testVector(t, c, Vector{0.5, 0.5, 0})
	test.T(t, len(f.Vertices()), 4)
	test.T(t, f.Classify(Vector{0.5, 0.5, 0}), bsp.Inside)
	test.T(t, f.Classify(Vector{1, 0.5, 0}), bsp.Boundary)
	test.T(t, f.Classify(Vector{0.5, 0.5, 1}), bsp.Outside)
	testVector(t, f.Closest(Vector{2, 0.5, 3}), Vector{1, 0.5, 0})
	testVector(t, f.Closest(Vector{0.5, 0.5, 3}), Vector{0.5, 0.5, 0})

	// clockwise seen from above flips the normal
	g := MustFace(prec, Vector{0, 0, 0}, Vector{0, 1, 0}, Vector{1, 1, 0}, Vector{1, 0, 0})
	testVector(t, g.Plane().Normal(), Vector{0, 0, -1})

	_, err = Face(prec, Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{2, 0, 0})
	test.That(t, errors.Is(err, bsp.ErrDegenerate))
}

func TestFaceSplit(t *testing.T) {
	f := MustFace(prec, Vector{0, 0, 0}, Vector{1, 0, 0}, Vector{1, 1, 0}, Vector{0, 1, 0})

	split := f.SplitPlane(MustPlane(Vector{0.5, 0, 0}, Vector{1, 0, 0}, prec))
	test.T(t, split.Location(), bsp.SplitBoth)
	test.Float(t, split.Minus().Size(), 0.5)
	test.Float(t, split.Plus().Size(), 0.5)
	test.T(t, split.Minus().Classify(Vector{0.25, 0.5, 0}), bsp.Inside)
	test.T(t, split.Plus().Classify(Vector{0.75, 0.5, 0}), bsp.Inside)

	split = f.SplitPlane(MustPlane(Vector{0, 0, 1}, Vector{0, 0, 1}, prec))
	test.T(t, split.Location(), bsp.SplitMinus)
	split = f.SplitPlane(MustPlane(Vector{0, 0, -1}, Vector{0, 0, 1}, prec))
	test.T(t, split.Location(), bsp.SplitPlus)
	split = f.SplitPlane(MustPlane(Vector{}, Vector{0, 0, 1}, prec))
	test.T(t, split.Location(), bsp.SplitNeither)

	// touching along an edge
	split = f.SplitPlane(MustPlane(Vector{1, 0, 0}, Vector{1, 0, 0}, prec))
	test.T(t, split.Location(), bsp.SplitMinus)

	full := MustPlane(Vector{}, Vector{0, 0, 1}, prec).span()
	split = full.SplitPlane(MustPlane(Vector{}, Vector{1, 0, 0}, prec))
	test.T(t, split.Location(), bsp.SplitBoth)
	test.T(t, split.Minus().Classify(Vector{-1, 5, 0}), bsp.Inside)
	test.T(t, split.Minus().Classify(Vector{1, 5, 0}), bsp.Outside)
}

func TestPlaneSubsetSplitOnBoundary(t *testing.T) {
	splitter := MustPlane(Vector{}, Vector{0, 1, 0}, prec)
	split := MustPlane(Vector{}, Vector{0, 0, 1}, prec).span().SplitPlane(splitter)
	test.T(t, split.Location(), bsp.SplitBoth)

	lower, upper := split.Minus(), split.Plus()
	test.That(t, lower.IsInfinite())
	test.T(t, lower.Classify(Vector{3, -1, 0}), bsp.Inside)
	test.T(t, lower.SplitPlane(splitter).Location(), bsp.SplitMinus)
	test.T(t, lower.SplitPlane(splitter.reverse()).Location(), bsp.SplitPlus)
	test.T(t, upper.SplitPlane(splitter).Location(), bsp.SplitPlus)
	test.T(t, upper.SplitPlane(splitter.reverse()).Location(), bsp.SplitMinus)

	// strip -1 <= y <= 0
	bottom := MustPlane(Vector{0, -1, 0}, Vector{0, 1, 0}, prec)
	split = lower.SplitPlane(bottom)
	test.T(t, split.Location(), bsp.SplitBoth)
	strip := split.Plus()
	test.T(t, strip.Classify(Vector{5, -0.5, 0}), bsp.Inside)
	test.T(t, strip.SplitPlane(splitter).Location(), bsp.SplitMinus)
	test.T(t, strip.SplitPlane(bottom).Location(), bsp.SplitPlus)
	test.T(t, strip.SplitPlane(bottom.reverse()).Location(), bsp.SplitMinus)

	// tilted splitter through the boundary line
	tilted := MustPlane(Vector{}, Vector{0, 1, 1}, prec)
	test.T(t, lower.SplitPlane(tilted).Location(), bsp.SplitMinus)
	test.T(t, upper.SplitPlane(tilted).Location(), bsp.SplitPlus)
}

func TestFaceTransform(t *testing.T) {
	f := MustFace(prec, Vector{0, 0, 0}, Vector{2, 0, 0}, Vector{2, 1, 0}, Vector{0, 1, 0})

	rev := f.Reverse().(PlaneSubset)
	testVector(t, rev.Plane().Normal(), Vector{0, 0, -1})
	test.Float(t, rev.Size(), 2.0)
	test.T(t, rev.Classify(Vector{1.5, 0.5, 0}), bsp.Inside)
	test.T(t, rev.Classify(Vector{2.5, 0.5, 0}), bsp.Outside)

	g := f.Transform(Identity.Translate(0.0, 0.0, 3.0)).(PlaneSubset)
	c, _ := g.Centroid()
	testVector(t, c, Vector{1, 0.5, 3})

	g = f.Transform(Identity.Rotate(90.0, Vector{0, 0, 1})).(PlaneSubset)
	test.Float(t, g.Size(), 2.0)
	test.T(t, g.Classify(Vector{-0.5, 1.5, 0}), bsp.Inside)
	test.T(t, g.Classify(Vector{0.5, 1.5, 0}), bsp.Outside)

	g = f.Transform(Identity.Scale(1.0, 1.0, -1.0).Translate(0.0, 0.0, 1.0)).(PlaneSubset)
	testVector(t, g.Plane().Normal(), Vector{0, 0, -1})
	test.T(t, g.Classify(Vector{1.5, 0.5, -1}), bsp.Inside)
	test.Float(t, g.Size(), 2.0)
}

func TestSubsetOf(t *testing.T) {
	pl := MustPlane(Vector{0, 0, 1}, Vector{0, 0, 1}, prec)
	area, err := r2.ConvexPolygon(prec, r2.Vector{X: 0, Y: 0}, r2.Vector{X: 1, Y: 0}, r2.Vector{X: 0, Y: 1})
	test.Error(t, err)
	s := SubsetOf(pl, area)
	test.Float(t, s.Size(), 0.5)
	test.That(t, s.Area().IsFinite())
	for _, p := range s.Vertices() {
		test.That(t, pl.Contains(p))
	}
	test.That(t, pl.span().IsFull())
	test.That(t, pl.span().IsInfinite())
}
