package r2

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// ConvexArea is a convex region of the plane, bounded or not, given by its boundaries. The interior lies on the minus side of every boundary. The full plane has no boundaries.
type ConvexArea struct {
	boundaries []LineSubset
}

// FullArea returns the whole plane.
func FullArea() ConvexArea {
	return ConvexArea{}
}

// ConvexPolygon returns the convex polygon with the given counter clockwise vertices.
func ConvexPolygon(prec bsp.Precision, vertices ...Vector) (ConvexArea, error) {
	lines, err := polygonLines(prec, vertices)
	if err != nil {
		return ConvexArea{}, err
	}
	return ConvexAreaFromLines(lines...)
}

// ConvexAreaFromLines returns the intersection of the minus sides of the lines. It returns bsp.ErrDegenerate if the intersection has no interior.
func ConvexAreaFromLines(lines ...Line) (ConvexArea, error) {
	boundaries := []LineSubset{}
	for i, l := range lines {
		sub, ok := l.span(), true
		for j, other := range lines {
			if i == j {
				continue
			}
			split := sub.SplitLine(other)
			if split.Location() == bsp.SplitNeither {
				if !l.SimilarOrientation(other) || j < i {
					// opposite half-planes or a duplicate line
					ok = false
					break
				}
				continue
			} else if !split.HasMinus() {
				ok = false
				break
			}
			sub = split.Minus()
		}
		if ok {
			boundaries = append(boundaries, sub)
		}
	}
	if len(boundaries) == 0 && 0 < len(lines) {
		return ConvexArea{}, errors.Wrap(bsp.ErrDegenerate, "lines do not bound a convex area")
	}
	area := ConvexArea{boundaries}
	if area.IsFinite() && !(0.0 < area.Size()) {
		return ConvexArea{}, errors.Wrap(bsp.ErrDegenerate, "lines do not bound a convex area")
	}
	return area, nil
}

func polygonLines(prec bsp.Precision, vertices []Vector) ([]Line, error) {
	lines := []Line{}
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		if p.Eq(q, prec) {
			continue
		}
		l, err := LineFromPoints(p, q, prec)
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	if len(lines) < 3 {
		return nil, errors.Wrapf(bsp.ErrDegenerate, "polygon with %d distinct vertices", len(lines))
	}
	return lines, nil
}

// Boundaries returns the boundaries, with the interior on their minus side.
func (a ConvexArea) Boundaries() []LineSubset {
	return a.boundaries
}

// IsFull returns true for the whole plane.
func (a ConvexArea) IsFull() bool {
	return len(a.boundaries) == 0
}

// IsFinite returns true if the area is bounded.
func (a ConvexArea) IsFinite() bool {
	if a.IsFull() {
		return false
	}
	for _, b := range a.boundaries {
		if b.IsInfinite() {
			return false
		}
	}
	return true
}

// Size returns the area, which is infinite for unbounded areas.
func (a ConvexArea) Size() float64 {
	if !a.IsFinite() {
		return math.Inf(1)
	}
	size, _ := boundaryMoments(a.boundaries)
	return size
}

// Centroid returns the centroid, false for unbounded areas.
func (a ConvexArea) Centroid() (Vector, bool) {
	if !a.IsFinite() {
		return Vector{}, false
	}
	size, sum := boundaryMoments(a.boundaries)
	if size == 0.0 {
		return Vector{}, false
	}
	return sum.Div(3.0 * size), true
}

// boundaryMoments returns the area and the first moment times two of a closed boundary with the interior on the left.
func boundaryMoments(boundaries []LineSubset) (float64, Vector) {
	size, sum := 0.0, Vector{}
	for _, b := range boundaries {
		p, _ := b.Start()
		q, _ := b.End()
		cross := p.PerpDot(q)
		size += cross
		sum = sum.Add(p.Add(q).Mul(cross))
	}
	return 0.5 * size, sum.Mul(0.5)
}

// Vertices returns the vertices in counter clockwise order. For unbounded areas the vertices between the two infinite boundaries are returned.
func (a ConvexArea) Vertices() []Vector {
	path := orderBoundaries(a.boundaries)
	vertices := []Vector{}
	for _, b := range path {
		if p, ok := b.Start(); ok {
			vertices = append(vertices, p)
		}
	}
	return vertices
}

// orderBoundaries orders boundaries such that each starts where the previous one ends, starting at an infinite boundary if any.
func orderBoundaries(boundaries []LineSubset) []LineSubset {
	if len(boundaries) == 0 {
		return nil
	}
	rest := append([]LineSubset{}, boundaries...)
	first := 0
	for i, b := range rest {
		if math.IsInf(b.start, 0) {
			first = i
			break
		}
	}
	path := []LineSubset{rest[first]}
	rest = append(rest[:first], rest[first+1:]...)
	for 0 < len(rest) {
		end, ok := path[len(path)-1].End()
		if !ok {
			break
		}
		next, dist := 0, math.Inf(1)
		for i, b := range rest {
			if start, ok := b.Start(); ok {
				if d := start.Distance(end); d < dist {
					next, dist = i, d
				}
			}
		}
		if math.IsInf(dist, 1) {
			break
		}
		path = append(path, rest[next])
		rest = append(rest[:next], rest[next+1:]...)
	}
	return path
}

// Classify returns the location of p relative to the area.
func (a ConvexArea) Classify(p Vector) bsp.RegionLocation {
	if p.IsNaN() {
		return bsp.Outside
	}
	onBoundary := false
	for _, b := range a.boundaries {
		switch b.line.Classify(p) {
		case bsp.Plus:
			return bsp.Outside
		case bsp.On:
			onBoundary = true
		}
	}
	if onBoundary {
		return bsp.Boundary
	}
	return bsp.Inside
}

// Contains returns true if p is inside or on the boundary.
func (a ConvexArea) Contains(p Vector) bool {
	return a.Classify(p) != bsp.Outside
}

// Trim returns the part of sub inside the area, false if there is none.
func (a ConvexArea) Trim(sub LineSubset) (LineSubset, bool) {
	for _, b := range a.boundaries {
		split := sub.SplitLine(b.line)
		if !split.HasMinus() {
			return LineSubset{}, false
		}
		sub = split.Minus()
	}
	return sub, true
}

// Split divides the area by a line.
func (a ConvexArea) Split(splitter Line) bsp.Split[ConvexArea] {
	trimmed, ok := a.Trim(splitter.span())
	if !ok {
		// the area lies on one side of the splitter
		for _, b := range a.boundaries {
			switch b.SplitLine(splitter).Location() {
			case bsp.SplitMinus:
				return bsp.MinusSplit(a)
			case bsp.SplitPlus:
				return bsp.PlusSplit(a)
			case bsp.SplitNeither:
				// boundary on the splitter, the interior is on its minus side
				if b.line.SimilarOrientation(splitter) {
					return bsp.MinusSplit(a)
				}
				return bsp.PlusSplit(a)
			}
		}
		return bsp.NeitherSplit[ConvexArea]()
	}

	minus := []LineSubset{}
	plus := []LineSubset{}
	for _, b := range a.boundaries {
		split := b.SplitLine(splitter)
		if split.HasMinus() {
			minus = append(minus, split.Minus())
		}
		if split.HasPlus() {
			plus = append(plus, split.Plus())
		}
	}
	minus = append(minus, trimmed)
	plus = append(plus, trimmed.reverse())
	return bsp.BothSplit(ConvexArea{minus}, ConvexArea{plus})
}

// Transform maps the area by t.
func (a ConvexArea) Transform(t bsp.Transform[Vector]) ConvexArea {
	boundaries := make([]LineSubset, len(a.boundaries))
	for i, b := range a.boundaries {
		boundaries[i] = b.transform(t)
	}
	return ConvexArea{boundaries}
}

// Region returns the area as a region.
func (a ConvexArea) Region() *Region {
	if a.IsFull() {
		return Full()
	}
	r := Empty()
	for _, b := range a.boundaries {
		r.Insert(b, bsp.MinusInside)
	}
	return r
}
