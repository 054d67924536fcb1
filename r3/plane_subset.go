package r3

import (
	"fmt"
	"math"

	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r2"
)

// PlaneSubset is a convex subset of a plane: a convex polygon, an unbounded convex piece or the full plane. It is stored as a convex area in the plane's frame.
type PlaneSubset struct {
	plane Plane
	area  r2.ConvexArea
}

// Face returns the convex polygon with the given vertices. Seen from the plus side of the resulting plane the vertices are counter clockwise.
func Face(prec bsp.Precision, vertices ...Vector) (PlaneSubset, error) {
	pl, err := PlaneFromVertices(prec, vertices...)
	if err != nil {
		return PlaneSubset{}, err
	}
	projected := make([]r2.Vector, len(vertices))
	for i, p := range vertices {
		projected[i] = pl.ToSubspace(p)
	}
	area, err := r2.ConvexPolygon(prec, projected...)
	if err != nil {
		return PlaneSubset{}, err
	}
	return PlaneSubset{pl, area}, nil
}

// MustFace is like Face but panics on error.
func MustFace(prec bsp.Precision, vertices ...Vector) PlaneSubset {
	s, err := Face(prec, vertices...)
	if err != nil {
		panic(err)
	}
	return s
}

// SubsetOf returns the part of the plane covered by area in the plane's frame.
func SubsetOf(pl Plane, area r2.ConvexArea) PlaneSubset {
	return PlaneSubset{pl, area}
}

// Plane returns the plane.
func (s PlaneSubset) Plane() Plane {
	return s.plane
}

// Area returns the subset in the plane's frame.
func (s PlaneSubset) Area() r2.ConvexArea {
	return s.area
}

// Hyperplane returns the plane.
func (s PlaneSubset) Hyperplane() bsp.Hyperplane[Vector] {
	return s.plane
}

// IsFull returns true if the subset covers the whole plane.
func (s PlaneSubset) IsFull() bool {
	return s.area.IsFull()
}

// IsEmpty returns false, empty subsets are represented by their absence.
func (s PlaneSubset) IsEmpty() bool {
	return false
}

// IsInfinite returns true for unbounded subsets.
func (s PlaneSubset) IsInfinite() bool {
	return !s.area.IsFinite()
}

// IsFinite returns true for polygons.
func (s PlaneSubset) IsFinite() bool {
	return s.area.IsFinite()
}

// Size returns the area.
func (s PlaneSubset) Size() float64 {
	return s.area.Size()
}

// Centroid returns the centroid of a polygon, false if unbounded.
func (s PlaneSubset) Centroid() (Vector, bool) {
	c, ok := s.area.Centroid()
	if !ok {
		return Vector{}, false
	}
	return s.plane.ToSpace(c), true
}

// Vertices returns the vertices, counter clockwise seen from the plus side.
func (s PlaneSubset) Vertices() []Vector {
	vertices := []Vector{}
	for _, q := range s.area.Vertices() {
		vertices = append(vertices, s.plane.ToSpace(q))
	}
	return vertices
}

// Classify returns Inside for points in the interior of the subset, Boundary for points on its edges and Outside for the rest.
func (s PlaneSubset) Classify(p Vector) bsp.RegionLocation {
	if !s.plane.Contains(p) {
		return bsp.Outside
	}
	return s.area.Classify(s.plane.ToSubspace(p))
}

// Closest returns the point of the subset closest to p.
func (s PlaneSubset) Closest(p Vector) Vector {
	q := s.plane.ToSubspace(p)
	if s.area.Contains(q) {
		return s.plane.ToSpace(q)
	}
	closest, dist := q, math.Inf(1)
	for _, b := range s.area.Boundaries() {
		c := b.Closest(q)
		if d := c.Distance(q); d < dist {
			closest, dist = c, d
		}
	}
	return s.plane.ToSpace(closest)
}

// ToConvex returns the subset itself.
func (s PlaneSubset) ToConvex() []bsp.ConvexSubset[Vector] {
	return []bsp.ConvexSubset[Vector]{s}
}

// Split divides the subset by a plane. A subset lying in the splitter returns SplitNeither.
func (s PlaneSubset) Split(splitter bsp.Hyperplane[Vector]) bsp.Split[bsp.ConvexSubset[Vector]] {
	split := s.SplitPlane(splitter.(Plane))
	var minus, plus bsp.ConvexSubset[Vector]
	if split.HasMinus() {
		minus = split.Minus()
	}
	if split.HasPlus() {
		plus = split.Plus()
	}
	return bsp.SplitOf(minus, split.HasMinus(), plus, split.HasPlus())
}

// SplitPlane divides the subset by a plane.
func (s PlaneSubset) SplitPlane(splitter Plane) bsp.Split[PlaneSubset] {
	l, ok := s.plane.subspaceLine(splitter)
	if !ok {
		// parallel
		switch splitter.Classify(s.plane.origin) {
		case bsp.Minus:
			return bsp.MinusSplit(s)
		case bsp.Plus:
			return bsp.PlusSplit(s)
		}
		return bsp.NeitherSplit[PlaneSubset]()
	}

	split := s.area.Split(l)
	var minus, plus PlaneSubset
	if split.HasMinus() {
		minus = PlaneSubset{s.plane, split.Minus()}
	}
	if split.HasPlus() {
		plus = PlaneSubset{s.plane, split.Plus()}
	}
	return bsp.SplitOf(minus, split.HasMinus(), plus, split.HasPlus())
}

// Reverse returns the subset on the reversed plane.
func (s PlaneSubset) Reverse() bsp.ConvexSubset[Vector] {
	return PlaneSubset{s.plane.reverse(), s.area.Transform(swapAxes)}
}

// Transform maps the subset by t.
func (s PlaneSubset) Transform(t bsp.Transform[Vector]) bsp.ConvexSubset[Vector] {
	pl, m := s.plane.transform(t)
	return PlaneSubset{pl, s.area.Transform(m)}
}

func (s PlaneSubset) String() string {
	if s.IsFull() {
		return s.plane.String()
	} else if s.IsFinite() {
		return fmt.Sprintf("Face(%v)", s.Vertices())
	}
	return fmt.Sprintf("PlaneSubset(%v; %v)", s.plane, s.Vertices())
}
