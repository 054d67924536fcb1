package r3

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// Line is a directed line in space, parametrized by the abscissa along its unit direction.
type Line struct {
	origin, dir Vector // dir has unit length
	prec        bsp.Precision
}

// LineFromPointAndDirection returns the line through p in direction dir, which must not be zero, NaN or infinite.
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

// LineFromPoints returns the line through p and q, directed from p to q. The abscissa of p is zero.
func LineFromPoints(p, q Vector, prec bsp.Precision) (Line, error) {
	return LineFromPointAndDirection(p, q.Sub(p), prec)
}

// MustLine is like LineFromPoints but panics on error.
func MustLine(p, q Vector, prec bsp.Precision) Line {
	l, err := LineFromPoints(p, q, prec)
	if err != nil {
		panic(err)
	}
	return l
}

// Origin returns the point at abscissa zero.
func (l Line) Origin() Vector {
	return l.origin
}

// Direction returns the unit direction.
func (l Line) Direction() Vector {
	return l.dir
}

// Abscissa returns the position of the projection of p along the line.
func (l Line) Abscissa(p Vector) float64 {
	return p.Sub(l.origin).Dot(l.dir)
}

// PointAt returns the point at abscissa t.
func (l Line) PointAt(t float64) Vector {
	return l.origin.Add(l.dir.Mul(t))
}

// Contains returns true if p lies on the line.
func (l Line) Contains(p Vector) bool {
	return l.prec.EqZero(l.PointAt(l.Abscissa(p)).Distance(p))
}

func (l Line) String() string {
	return fmt.Sprintf("Line(%v; %v)", l.origin, l.dir)
}

// LineIntersection returns the abscissa along l where it crosses the plane, false if l is parallel to the plane.
func (pl Plane) LineIntersection(l Line) (float64, bool) {
	k := pl.normal.Dot(l.dir)
	if pl.prec.EqZero(k) {
		return 0.0, false
	}
	return -pl.Offset(l.origin) / k, true
}
