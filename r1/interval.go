package r1

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// Interval is a closed interval [min,max] of the real line. Either bound may be infinite.
type Interval struct {
	min, max float64
	prec     bsp.Precision
}

// NewInterval returns the interval between a and b in either order. It returns bsp.ErrDegenerate for NaN bounds or when both bounds are the same infinity.
func NewInterval(a, b float64, prec bsp.Precision) (Interval, error) {
	if math.IsNaN(a) || math.IsNaN(b) {
		return Interval{}, errors.Wrapf(bsp.ErrDegenerate, "interval bounds %v and %v", a, b)
	}
	if b < a {
		a, b = b, a
	}
	if math.IsInf(a, 1) || math.IsInf(b, -1) {
		return Interval{}, errors.Wrapf(bsp.ErrDegenerate, "interval bounds %v and %v", a, b)
	}
	return Interval{a, b, prec}, nil
}

// MustInterval is like NewInterval but panics on error.
func MustInterval(a, b float64, prec bsp.Precision) Interval {
	iv, err := NewInterval(a, b, prec)
	if err != nil {
		panic(err)
	}
	return iv
}

// FullInterval returns (-inf,+inf).
func FullInterval(prec bsp.Precision) Interval {
	return Interval{math.Inf(-1), math.Inf(1), prec}
}

// IntervalMin returns [min,+inf).
func IntervalMin(min float64, prec bsp.Precision) (Interval, error) {
	return NewInterval(min, math.Inf(1), prec)
}

// IntervalMax returns (-inf,max].
func IntervalMax(max float64, prec bsp.Precision) (Interval, error) {
	return NewInterval(math.Inf(-1), max, prec)
}

// IntervalPoint returns [x,x].
func IntervalPoint(x float64, prec bsp.Precision) (Interval, error) {
	if math.IsInf(x, 0) {
		return Interval{}, errors.Wrapf(bsp.ErrDegenerate, "interval point %v", x)
	}
	return NewInterval(x, x, prec)
}

// Min returns the lower bound.
func (iv Interval) Min() float64 {
	return iv.min
}

// Max returns the upper bound.
func (iv Interval) Max() float64 {
	return iv.max
}

// Precision returns the precision context.
func (iv Interval) Precision() bsp.Precision {
	return iv.prec
}

// MinBoundary returns the negative facing oriented point at the lower bound, false if it is infinite.
func (iv Interval) MinBoundary() (OrientedPoint, bool) {
	if math.IsInf(iv.min, 0) {
		return OrientedPoint{}, false
	}
	return OrientedPoint{Vector(iv.min), false, iv.prec}, true
}

// MaxBoundary returns the positive facing oriented point at the upper bound, false if it is infinite.
func (iv Interval) MaxBoundary() (OrientedPoint, bool) {
	if math.IsInf(iv.max, 0) {
		return OrientedPoint{}, false
	}
	return OrientedPoint{Vector(iv.max), true, iv.prec}, true
}

// IsFull returns true if both bounds are infinite.
func (iv Interval) IsFull() bool {
	return math.IsInf(iv.min, -1) && math.IsInf(iv.max, 1)
}

// IsInfinite returns true if either bound is infinite.
func (iv Interval) IsInfinite() bool {
	return math.IsInf(iv.min, 0) || math.IsInf(iv.max, 0)
}

// IsFinite returns true if both bounds are finite.
func (iv Interval) IsFinite() bool {
	return !iv.IsInfinite()
}

// Size returns the length.
func (iv Interval) Size() float64 {
	return iv.max - iv.min
}

// Centroid returns the midpoint, false for infinite intervals.
func (iv Interval) Centroid() (Vector, bool) {
	if iv.IsInfinite() {
		return 0.0, false
	}
	return Vector(0.5 * (iv.min + iv.max)), true
}

// Classify returns the location of p relative to the interval.
func (iv Interval) Classify(p Vector) bsp.RegionLocation {
	x := float64(p)
	if math.IsNaN(x) {
		return bsp.Outside
	} else if iv.onBound(x, iv.min) || iv.onBound(x, iv.max) {
		return bsp.Boundary
	} else if iv.min < x && x < iv.max {
		return bsp.Inside
	}
	return bsp.Outside
}

func (iv Interval) onBound(x, bound float64) bool {
	return !math.IsInf(bound, 0) && iv.prec.Eq(x, bound)
}

// Contains returns true if p is inside or on the boundary.
func (iv Interval) Contains(p Vector) bool {
	return iv.Classify(p) != bsp.Outside
}

// Split divides the interval by an oriented point. Parts of zero length at the splitter are not returned.
func (iv Interval) Split(splitter OrientedPoint) bsp.Split[Interval] {
	loc := float64(splitter.loc)
	low, high := bsp.Minus, bsp.Plus
	if !splitter.positiveFacing {
		low, high = bsp.Plus, bsp.Minus
	}
	if iv.prec.Lte(loc, iv.min) {
		return intervalSplit(high, iv)
	} else if iv.prec.Gte(loc, iv.max) {
		return intervalSplit(low, iv)
	}
	lower := Interval{iv.min, loc, iv.prec}
	upper := Interval{loc, iv.max, iv.prec}
	if splitter.positiveFacing {
		return bsp.BothSplit(lower, upper)
	}
	return bsp.BothSplit(upper, lower)
}

func intervalSplit(loc bsp.HyperplaneLocation, iv Interval) bsp.Split[Interval] {
	if loc == bsp.Minus {
		return bsp.MinusSplit(iv)
	}
	return bsp.PlusSplit(iv)
}

// Transform maps both bounds.
func (iv Interval) Transform(t bsp.Transform[Vector]) Interval {
	a, b := float64(t.Apply(Vector(iv.min))), float64(t.Apply(Vector(iv.max)))
	if b < a {
		a, b = b, a
	}
	return Interval{a, b, iv.prec}
}

// Region returns the interval as a region.
func (iv Interval) Region() *Region {
	tree := bsp.NewTree[Vector](bsp.Inside)
	n := tree.Root()
	if h, ok := iv.MinBoundary(); ok {
		tree.SetCut(n, h.Span(), bsp.MinusInside)
		n = n.Minus()
	}
	if h, ok := iv.MaxBoundary(); ok {
		tree.SetCut(n, h.Span(), bsp.MinusInside)
	}
	return &Region{bsp.RegionFromTree(tree)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g; %g]", iv.min, iv.max)
}
