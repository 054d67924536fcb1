package r2

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// Line is an oriented line through the plane. Points left of the direction are on the minus side, points right of it on the plus side. A counter clockwise polygon thus has its interior on the minus side of its edges.
type Line struct {
	origin, dir Vector // dir has unit length
	prec        bsp.Precision
}

// LineFromPoints returns the line through p and q directed from p to q.
func LineFromPoints(p, q Vector, prec bsp.Precision) (Line, error) {
	return LineFromPointAndDirection(p, q.Sub(p), prec)
}

// LineFromPointAndDirection returns the line through p with direction dir, which must not be zero, NaN or infinite.
func LineFromPointAndDirection(p, dir Vector, prec bsp.Precision) (Line, error) {
	if p.IsNaN() || p.IsInf() {
		return Line{}, errors.Wrapf(bsp.ErrDegenerate, "line origin %v", p)
	}
	d, ok := dir.Norm()
	if !ok || prec.EqZero(dir.Length()) {
		return Line{}, errors.Wrapf(bsp.ErrDegenerate, "line direction %v", dir)
	}
	return Line{p, d, prec}, nil
}

// LineFromPointAndAngle returns the line through p with direction at angle theta (in radians) from the x-axis.
func LineFromPointAndAngle(p Vector, theta float64, prec bsp.Precision) (Line, error) {
	sin, cos := math.Sincos(theta)
	return LineFromPointAndDirection(p, Vector{cos, sin}, prec)
}

// MustLine is like LineFromPoints but panics on error.
func MustLine(p, q Vector, prec bsp.Precision) Line {
	l, err := LineFromPoints(p, q, prec)
	if err != nil {
		panic(err)
	}
	return l
}

// Origin returns the point the line was constructed with, abscissa zero.
func (l Line) Origin() Vector {
	return l.origin
}

// Direction returns the unit direction.
func (l Line) Direction() Vector {
	return l.dir
}

// Angle returns the angle between the x-axis and the direction.
func (l Line) Angle() float64 {
	return l.dir.Angle()
}

// Precision returns the precision context.
func (l Line) Precision() bsp.Precision {
	return l.prec
}

// Offset returns the signed distance of p to the line, negative on the left side.
func (l Line) Offset(p Vector) float64 {
	return p.Sub(l.origin).PerpDot(l.dir)
}

// Distance returns the distance of p to the line.
func (l Line) Distance(p Vector) float64 {
	return math.Abs(l.Offset(p))
}

// Classify returns the side of p.
func (l Line) Classify(p Vector) bsp.HyperplaneLocation {
	return l.prec.Location(l.Offset(p))
}

// Contains returns true if p lies on the line.
func (l Line) Contains(p Vector) bool {
	return l.Classify(p) == bsp.On
}

// Abscissa returns the position along the line of the projection of p.
func (l Line) Abscissa(p Vector) float64 {
	return p.Sub(l.origin).Dot(l.dir)
}

// PointAt returns the point at abscissa t.
func (l Line) PointAt(t float64) Vector {
	return l.origin.Add(l.dir.Mul(t))
}

// Project returns the point on the line closest to p.
func (l Line) Project(p Vector) Vector {
	return l.PointAt(l.Abscissa(p))
}

// Intersection returns the intersection point with q, false if they are parallel.
func (l Line) Intersection(q Line) (Vector, bool) {
	k := l.dir.PerpDot(q.dir)
	if l.prec.EqZero(k) {
		return Vector{}, false
	}
	return l.PointAt(-q.Offset(l.origin) / k), true
}

// Reverse returns the line in the opposite direction, swapping its sides.
func (l Line) Reverse() bsp.Hyperplane[Vector] {
	return l.reverse()
}

func (l Line) reverse() Line {
	return Line{l.origin, l.dir.Neg(), l.prec}
}

// Transform maps the line by t such that the image of the minus side is on the minus side.
func (l Line) Transform(t bsp.Transform[Vector]) bsp.Hyperplane[Vector] {
	return l.transform(t)
}

func (l Line) transform(t bsp.Transform[Vector]) Line {
	origin := t.Apply(l.origin)
	dir, ok := t.Apply(l.origin.Add(l.dir)).Sub(origin).Norm()
	if !ok {
		panic("transformation collapses line, should be impossible!")
	}
	if !t.PreservesOrientation() {
		dir = dir.Neg()
	}
	return Line{origin, dir, l.prec}
}

// SimilarOrientation returns true if both directions point roughly the same way.
func (l Line) SimilarOrientation(other bsp.Hyperplane[Vector]) bool {
	return 0.0 <= l.dir.Dot(other.(Line).dir)
}

// Eq returns true if both lines coincide and have the same direction with tolerance prec.
func (l Line) Eq(other bsp.Hyperplane[Vector], prec bsp.Precision) bool {
	q, ok := other.(Line)
	return ok && l.dir.Eq(q.dir, prec) && prec.EqZero(l.Offset(q.origin))
}

// Span returns the subset covering the whole line.
func (l Line) Span() bsp.ConvexSubset[Vector] {
	return l.span()
}

func (l Line) span() LineSubset {
	return LineSubset{l, math.Inf(-1), math.Inf(1)}
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v; %v)", l.origin, l.dir)
}
