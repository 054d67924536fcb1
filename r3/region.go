package r3

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// Region is a volume of space represented by a tree. It can be non-convex, have cavities, be unbounded and consist of several pieces.
type Region struct {
	*bsp.Region[Vector]
}

// Full returns the whole space.
func Full() *Region {
	return &Region{bsp.NewRegion[Vector](true)}
}

// Empty returns the empty region.
func Empty() *Region {
	return &Region{bsp.NewRegion[Vector](false)}
}

// FromBoundaries returns the region enclosed by the boundaries, which must have the interior on their minus side.
func FromBoundaries(boundaries ...PlaneSubset) *Region {
	r := Empty()
	for _, b := range boundaries {
		r.Insert(b, bsp.MinusInside)
	}
	return r
}

// Polyhedron returns the region enclosed by faces, given as vertex lists that are counter clockwise when seen from outside.
func Polyhedron(prec bsp.Precision, faces ...[]Vector) (*Region, error) {
	if len(faces) < 4 {
		return nil, errors.Wrapf(bsp.ErrDegenerate, "polyhedron with %d faces", len(faces))
	}
	boundaries := make([]PlaneSubset, 0, len(faces))
	for _, vertices := range faces {
		face, err := Face(prec, vertices...)
		if err != nil {
			return nil, err
		}
		boundaries = append(boundaries, face)
	}
	return FromBoundaries(boundaries...), nil
}

// Box returns the axis aligned box with opposite corners a and b.
func Box(a, b Vector, prec bsp.Precision) (*Region, error) {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	z0, z1 := math.Min(a.Z, b.Z), math.Max(a.Z, b.Z)
	if prec.Eq(x0, x1) || prec.Eq(y0, y1) || prec.Eq(z0, z1) {
		return nil, errors.Wrapf(bsp.ErrDegenerate, "box %v %v", a, b)
	}
	p := [8]Vector{
		{x0, y0, z0}, {x1, y0, z0}, {x1, y1, z0}, {x0, y1, z0},
		{x0, y0, z1}, {x1, y0, z1}, {x1, y1, z1}, {x0, y1, z1},
	}
	return Polyhedron(prec,
		[]Vector{p[0], p[3], p[2], p[1]}, // bottom
		[]Vector{p[4], p[5], p[6], p[7]}, // top
		[]Vector{p[0], p[1], p[5], p[4]}, // front
		[]Vector{p[2], p[3], p[7], p[6]}, // back
		[]Vector{p[0], p[4], p[7], p[3]}, // left
		[]Vector{p[1], p[2], p[6], p[5]}, // right
	)
}

// Copy returns an independent copy.
func (r *Region) Copy() *Region {
	return &Region{r.Region.Copy()}
}

// Union returns the points in r or q.
func (r *Region) Union(q *Region) *Region {
	return &Region{r.Region.Union(q.Region)}
}

// Intersection returns the points in both r and q.
func (r *Region) Intersection(q *Region) *Region {
	return &Region{r.Region.Intersection(q.Region)}
}

// Difference returns the points in r but not in q.
func (r *Region) Difference(q *Region) *Region {
	return &Region{r.Region.Difference(q.Region)}
}

// Xor returns the points in either r or q but not both.
func (r *Region) Xor(q *Region) *Region {
	return &Region{r.Region.Xor(q.Region)}
}

// Split divides the region by a plane.
func (r *Region) Split(splitter Plane) bsp.Split[*Region] {
	split := r.Region.Split(splitter)
	var minus, plus *Region
	if split.HasMinus() {
		minus = &Region{split.Minus()}
	}
	if split.HasPlus() {
		plus = &Region{split.Plus()}
	}
	return bsp.SplitOf(minus, split.HasMinus(), plus, split.HasPlus())
}

// Transform maps the region by m in place.
func (r *Region) Transform(m Matrix) {
	r.Region.Transform(m)
}

// Boundaries returns the boundary faces with the interior on their minus side.
func (r *Region) Boundaries() []PlaneSubset {
	boundaries := []PlaneSubset{}
	for _, b := range r.Region.Boundaries() {
		boundaries = append(boundaries, b.(PlaneSubset))
	}
	return boundaries
}

// Size returns the volume, which is infinite for unbounded regions.
func (r *Region) Size() float64 {
	if r.IsEmpty() {
		return 0.0
	}
	boundaries := r.Boundaries()
	if !finite(boundaries) {
		return math.Inf(1)
	}
	size, _ := boundaryMoments(boundaries)
	return size
}

// Centroid returns the centroid, false for empty or unbounded regions.
func (r *Region) Centroid() (Vector, bool) {
	boundaries := r.Boundaries()
	if !finite(boundaries) {
		return Vector{}, false
	}
	size, sum := boundaryMoments(boundaries)
	if size == 0.0 {
		return Vector{}, false
	}
	return sum.Div(4.0 * size), true
}

func finite(boundaries []PlaneSubset) bool {
	if len(boundaries) == 0 {
		return false
	}
	for _, b := range boundaries {
		if b.IsInfinite() {
			return false
		}
	}
	return true
}

// boundaryMoments returns the volume and four times the first moment of a closed boundary with outward normals, summing the tetrahedra spanned by the origin and a fan triangulation of every face.
func boundaryMoments(boundaries []PlaneSubset) (float64, Vector) {
	size, sum := 0.0, Vector{}
	for _, b := range boundaries {
		vertices := b.Vertices()
		for i := 1; i+1 < len(vertices); i++ {
			p0, p1, p2 := vertices[0], vertices[i], vertices[i+1]
			vol := p0.Dot(p1.Cross(p2)) / 6.0
			size += vol
			sum = sum.Add(p0.Add(p1).Add(p2).Mul(vol))
		}
	}
	return size, sum
}
