package r2

import (
	"fmt"
	"math"

	"github.com/tdewolff/bsp"
)

// LineSubset is a convex subset of a line: a segment, a ray, or the full line. It covers the abscissas [start,end] of the line, where either may be infinite.
type LineSubset struct {
	line       Line
	start, end float64
}

// Segment returns the segment from p to q.
func Segment(p, q Vector, prec bsp.Precision) (LineSubset, error) {
	l, err := LineFromPoints(p, q, prec)
	if err != nil {
		return LineSubset{}, err
	}
	return LineSubset{l, 0.0, l.Abscissa(q)}, nil
}

// MustSegment is like Segment but panics on error.
func MustSegment(p, q Vector, prec bsp.Precision) LineSubset {
	s, err := Segment(p, q, prec)
	if err != nil {
		panic(err)
	}
	return s
}

// Ray returns the ray starting at p in direction dir.
func Ray(p, dir Vector, prec bsp.Precision) (LineSubset, error) {
	l, err := LineFromPointAndDirection(p, dir, prec)
	if err != nil {
		return LineSubset{}, err
	}
	return LineSubset{l, 0.0, math.Inf(1)}, nil
}

// ReverseRay returns the ray in direction dir ending at p.
func ReverseRay(p, dir Vector, prec bsp.Precision) (LineSubset, error) {
	l, err := LineFromPointAndDirection(p, dir, prec)
	if err != nil {
		return LineSubset{}, err
	}
	return LineSubset{l, math.Inf(-1), 0.0}, nil
}

// SubsetOf returns the part of the line between abscissas start and end.
func SubsetOf(l Line, start, end float64) LineSubset {
	if end < start {
		start, end = end, start
	}
	return LineSubset{l, start, end}
}

// Line returns the line.
func (s LineSubset) Line() Line {
	return s.line
}

// Hyperplane returns the line.
func (s LineSubset) Hyperplane() bsp.Hyperplane[Vector] {
	return s.line
}

// Start returns the start point, false if it is at infinity.
func (s LineSubset) Start() (Vector, bool) {
	if math.IsInf(s.start, 0) {
		return Vector{}, false
	}
	return s.line.PointAt(s.start), true
}

// End returns the end point, false if it is at infinity.
func (s LineSubset) End() (Vector, bool) {
	if math.IsInf(s.end, 0) {
		return Vector{}, false
	}
	return s.line.PointAt(s.end), true
}

// Abscissas returns the start and end positions along the line.
func (s LineSubset) Abscissas() (float64, float64) {
	return s.start, s.end
}

// IsFull returns true if the subset covers the whole line.
func (s LineSubset) IsFull() bool {
	return math.IsInf(s.start, -1) && math.IsInf(s.end, 1)
}

// IsEmpty returns false, empty subsets are represented by their absence.
func (s LineSubset) IsEmpty() bool {
	return false
}

// IsInfinite returns true for rays and full lines.
func (s LineSubset) IsInfinite() bool {
	return math.IsInf(s.start, 0) || math.IsInf(s.end, 0)
}

// IsFinite returns true for segments.
func (s LineSubset) IsFinite() bool {
	return !s.IsInfinite()
}

// Size returns the length.
func (s LineSubset) Size() float64 {
	return s.end - s.start
}

// Centroid returns the midpoint of a segment, false if infinite.
func (s LineSubset) Centroid() (Vector, bool) {
	if s.IsInfinite() {
		return Vector{}, false
	}
	return s.line.PointAt(0.5 * (s.start + s.end)), true
}

// Classify returns Boundary for the end points, Inside for other points of the subset and Outside for the rest.
func (s LineSubset) Classify(p Vector) bsp.RegionLocation {
	if !s.line.Contains(p) {
		return bsp.Outside
	}
	t := s.line.Abscissa(p)
	prec := s.line.prec
	if !math.IsInf(s.start, 0) && prec.Eq(t, s.start) || !math.IsInf(s.end, 0) && prec.Eq(t, s.end) {
		return bsp.Boundary
	} else if s.start < t && t < s.end {
		return bsp.Inside
	}
	return bsp.Outside
}

// Closest returns the point of the subset closest to p.
func (s LineSubset) Closest(p Vector) Vector {
	t := math.Max(s.start, math.Min(s.end, s.line.Abscissa(p)))
	return s.line.PointAt(t)
}

// Intersection returns the intersection point with the line l, false if there is none.
func (s LineSubset) Intersection(l Line) (Vector, bool) {
	p, ok := s.line.Intersection(l)
	if !ok || s.Classify(p) == bsp.Outside {
		return Vector{}, false
	}
	return p, true
}

// IntersectionSubset returns the intersection point with q, false if there is none.
func (s LineSubset) IntersectionSubset(q LineSubset) (Vector, bool) {
	p, ok := s.Intersection(q.line)
	if !ok || q.Classify(p) == bsp.Outside {
		return Vector{}, false
	}
	return p, true
}

// ToConvex returns the subset itself.
func (s LineSubset) ToConvex() []bsp.ConvexSubset[Vector] {
	return []bsp.ConvexSubset[Vector]{s}
}

// Split divides the subset by a line. Parts of zero length are dropped, and a subset lying on the splitter returns SplitNeither.
func (s LineSubset) Split(splitter bsp.Hyperplane[Vector]) bsp.Split[bsp.ConvexSubset[Vector]] {
	split := s.SplitLine(splitter.(Line))
	var minus, plus bsp.ConvexSubset[Vector]
	if split.HasMinus() {
		minus = split.Minus()
	}
	if split.HasPlus() {
		plus = split.Plus()
	}
	return bsp.SplitOf(minus, split.HasMinus(), plus, split.HasPlus())
}

// SplitLine divides the subset by a line.
func (s LineSubset) SplitLine(splitter Line) bsp.Split[LineSubset] {
	prec := splitter.prec
	k := s.line.dir.PerpDot(splitter.dir)
	if prec.EqZero(k) {
		// parallel
		switch splitter.Classify(s.line.origin) {
		case bsp.Minus:
			return bsp.MinusSplit(s)
		case bsp.Plus:
			return bsp.PlusSplit(s)
		}
		return bsp.NeitherSplit[LineSubset]()
	}

	// the splitter's offset along the line is f0 + t*k
	f0 := splitter.Offset(s.line.origin)
	locAt := func(t float64, inf float64) bsp.HyperplaneLocation {
		if math.IsInf(t, 0) {
			return bsp.HyperplaneLocation(int(math.Copysign(1.0, k*inf)))
		}
		return splitter.Classify(s.line.PointAt(t))
	}
	startLoc, endLoc := locAt(s.start, -1.0), locAt(s.end, 1.0)
	if startLoc <= bsp.On && endLoc <= bsp.On {
		if startLoc == bsp.On && endLoc == bsp.On {
			return bsp.NeitherSplit[LineSubset]()
		}
		return bsp.MinusSplit(s)
	} else if bsp.On <= startLoc && bsp.On <= endLoc {
		return bsp.PlusSplit(s)
	}

	t := -f0 / k
	lower := LineSubset{s.line, s.start, t}
	upper := LineSubset{s.line, t, s.end}
	if startLoc == bsp.Minus {
		return bsp.BothSplit(lower, upper)
	}
	return bsp.BothSplit(upper, lower)
}

// Reverse returns the subset on the reversed line.
func (s LineSubset) Reverse() bsp.ConvexSubset[Vector] {
	return s.reverse()
}

func (s LineSubset) reverse() LineSubset {
	return LineSubset{s.line.reverse(), -s.end, -s.start}
}

// Transform maps the subset by t.
func (s LineSubset) Transform(t bsp.Transform[Vector]) bsp.ConvexSubset[Vector] {
	return s.transform(t)
}

func (s LineSubset) transform(t bsp.Transform[Vector]) LineSubset {
	line := s.line.transform(t)
	same := t.PreservesOrientation()
	abscissa := func(u float64) float64 {
		if math.IsInf(u, 0) {
			if same {
				return u
			}
			return -u
		}
		return line.Abscissa(t.Apply(s.line.PointAt(u)))
	}
	return SubsetOf(line, abscissa(s.start), abscissa(s.end))
}

func (s LineSubset) String() string {
	start, okStart := s.Start()
	end, okEnd := s.End()
	if okStart && okEnd {
		return fmt.Sprintf("Segment(%v; %v)", start, end)
	} else if okStart {
		return fmt.Sprintf("Ray(%v; %v)", start, s.line.dir)
	} else if okEnd {
		return fmt.Sprintf("ReverseRay(%v; %v)", end, s.line.dir)
	}
	return s.line.String()
}
