package r1

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// OrientedPoint is a hyperplane of the real line: a location with a direction. The plus side lies in the direction it faces.
type OrientedPoint struct {
	loc            Vector
	positiveFacing bool
	prec           bsp.Precision
}

// NewOrientedPoint returns an oriented point at loc facing towards positive infinity if positiveFacing is true. The location must be finite.
func NewOrientedPoint(loc float64, positiveFacing bool, prec bsp.Precision) (OrientedPoint, error) {
	if math.IsNaN(loc) || math.IsInf(loc, 0) {
		return OrientedPoint{}, errors.Wrapf(bsp.ErrDegenerate, "oriented point location %v", loc)
	}
	return OrientedPoint{Vector(loc), positiveFacing, prec}, nil
}

// PositiveFacing returns an oriented point at loc facing towards positive infinity. It panics when loc is not finite.
func PositiveFacing(loc float64, prec bsp.Precision) OrientedPoint {
	h, err := NewOrientedPoint(loc, true, prec)
	if err != nil {
		panic(err)
	}
	return h
}

// NegativeFacing returns an oriented point at loc facing towards negative infinity. It panics when loc is not finite.
func NegativeFacing(loc float64, prec bsp.Precision) OrientedPoint {
	h, err := NewOrientedPoint(loc, false, prec)
	if err != nil {
		panic(err)
	}
	return h
}

// Location returns the location on the line.
func (h OrientedPoint) Location() Vector {
	return h.loc
}

// IsPositiveFacing returns true if the plus side is towards positive infinity.
func (h OrientedPoint) IsPositiveFacing() bool {
	return h.positiveFacing
}

// Direction returns 1 if positive facing and -1 otherwise.
func (h OrientedPoint) Direction() float64 {
	if h.positiveFacing {
		return 1.0
	}
	return -1.0
}

// Offset returns the signed distance of p, positive on the side h is facing.
func (h OrientedPoint) Offset(p Vector) float64 {
	if h.positiveFacing {
		return float64(p - h.loc)
	}
	return float64(h.loc - p)
}

// Classify returns the side of p.
func (h OrientedPoint) Classify(p Vector) bsp.HyperplaneLocation {
	return h.prec.Location(h.Offset(p))
}

// Contains returns true if p lies on h.
func (h OrientedPoint) Contains(p Vector) bool {
	return h.Classify(p) == bsp.On
}

// Project returns the location of h.
func (h OrientedPoint) Project(Vector) Vector {
	return h.loc
}

// Reverse returns the oriented point facing the other direction.
func (h OrientedPoint) Reverse() bsp.Hyperplane[Vector] {
	return OrientedPoint{h.loc, !h.positiveFacing, h.prec}
}

// Transform maps the location and keeps the image of the plus side on the plus side.
func (h OrientedPoint) Transform(t bsp.Transform[Vector]) bsp.Hyperplane[Vector] {
	loc := t.Apply(h.loc)
	dir := t.Apply(h.loc+Vector(h.Direction())) - loc
	return OrientedPoint{loc, 0.0 < dir, h.prec}
}

// SimilarOrientation returns true if both face the same direction.
func (h OrientedPoint) SimilarOrientation(other bsp.Hyperplane[Vector]) bool {
	return h.positiveFacing == other.(OrientedPoint).positiveFacing
}

// Eq returns true if both are at the same location with tolerance prec and face the same direction.
func (h OrientedPoint) Eq(other bsp.Hyperplane[Vector], prec bsp.Precision) bool {
	q, ok := other.(OrientedPoint)
	return ok && h.positiveFacing == q.positiveFacing && h.loc.Eq(q.loc, prec)
}

// Span returns the subset consisting of the point itself.
func (h OrientedPoint) Span() bsp.ConvexSubset[Vector] {
	return OrientedPointSubset{h}
}

// Precision returns the precision context.
func (h OrientedPoint) Precision() bsp.Precision {
	return h.prec
}

func (h OrientedPoint) String() string {
	if h.positiveFacing {
		return fmt.Sprintf("OrientedPoint(%v; +)", h.loc)
	}
	return fmt.Sprintf("OrientedPoint(%v; -)", h.loc)
}

////////////////////////////////////////////////////////////////

// OrientedPointSubset is the only non-empty subset of an oriented point: the point itself.
type OrientedPointSubset struct {
	h OrientedPoint
}

// Hyperplane returns the oriented point.
func (s OrientedPointSubset) Hyperplane() bsp.Hyperplane[Vector] {
	return s.h
}

// IsFull returns true.
func (s OrientedPointSubset) IsFull() bool {
	return true
}

// IsEmpty returns false.
func (s OrientedPointSubset) IsEmpty() bool {
	return false
}

// IsInfinite returns false.
func (s OrientedPointSubset) IsInfinite() bool {
	return false
}

// IsFinite returns true.
func (s OrientedPointSubset) IsFinite() bool {
	return true
}

// Size returns zero.
func (s OrientedPointSubset) Size() float64 {
	return 0.0
}

// Classify returns Boundary for the point itself and Outside otherwise.
func (s OrientedPointSubset) Classify(p Vector) bsp.RegionLocation {
	if s.h.Contains(p) {
		return bsp.Boundary
	}
	return bsp.Outside
}

// Closest returns the point.
func (s OrientedPointSubset) Closest(Vector) Vector {
	return s.h.loc
}

// ToConvex returns the subset itself.
func (s OrientedPointSubset) ToConvex() []bsp.ConvexSubset[Vector] {
	return []bsp.ConvexSubset[Vector]{s}
}

// Split returns the side of the splitter the point lies on, or SplitNeither if it lies on the splitter.
func (s OrientedPointSubset) Split(splitter bsp.Hyperplane[Vector]) bsp.Split[bsp.ConvexSubset[Vector]] {
	switch splitter.Classify(s.h.loc) {
	case bsp.Minus:
		return bsp.MinusSplit[bsp.ConvexSubset[Vector]](s)
	case bsp.Plus:
		return bsp.PlusSplit[bsp.ConvexSubset[Vector]](s)
	}
	return bsp.NeitherSplit[bsp.ConvexSubset[Vector]]()
}

// Reverse returns the subset of the reversed oriented point.
func (s OrientedPointSubset) Reverse() bsp.ConvexSubset[Vector] {
	return OrientedPointSubset{s.h.Reverse().(OrientedPoint)}
}

// Transform maps the oriented point.
func (s OrientedPointSubset) Transform(t bsp.Transform[Vector]) bsp.ConvexSubset[Vector] {
	return OrientedPointSubset{s.h.Transform(t).(OrientedPoint)}
}

func (s OrientedPointSubset) String() string {
	return s.h.String()
}
