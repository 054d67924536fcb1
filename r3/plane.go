package r3

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r2"
)

// Plane is an oriented plane. Points on the side its normal points to are on the plus side. The plane carries an orthonormal frame u, v with u x v = normal, in which its subsets are expressed as 2-D areas.
type Plane struct {
	origin, normal Vector // normal has unit length
	u, v           Vector
	prec           bsp.Precision
}

// PlaneFromPointAndNormal returns the plane through p with the given normal, which must not be zero, NaN or infinite.
func PlaneFromPointAndNormal(p, normal Vector, prec bsp.Precision) (Plane, error) {
	if p.IsNaN() || p.IsInf() {
		return Plane{}, errors.Wrapf(bsp.ErrDegenerate, "plane origin %v", p)
	}
	n, ok := normal.Norm()
	if !ok || prec.EqZero(normal.Length()) {
		return Plane{}, errors.Wrapf(bsp.ErrDegenerate, "plane normal %v", normal)
	}
	u := n.Ortho()
	return Plane{p, n, u, n.Cross(u), prec}, nil
}

// PlaneFromPoints returns the plane through p0, p1 and p2. Seen from the plus side the points are counter clockwise.
func PlaneFromPoints(p0, p1, p2 Vector, prec bsp.Precision) (Plane, error) {
	normal := p1.Sub(p0).Cross(p2.Sub(p0))
	pl, err := PlaneFromPointAndNormal(p0, normal, prec)
	if err != nil {
		return Plane{}, errors.Wrap(err, "collinear points")
	}
	return pl, nil
}

// PlaneFromVertices returns the plane of a planar polygon, with the normal chosen such that the vertices are counter clockwise when seen from the plus side.
func PlaneFromVertices(prec bsp.Precision, vertices ...Vector) (Plane, error) {
	if len(vertices) < 3 {
		return Plane{}, errors.Wrapf(bsp.ErrDegenerate, "polygon with %d vertices", len(vertices))
	}

	// Newell's method
	normal := Vector{}
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		normal.X += (p.Y - q.Y) * (p.Z + q.Z)
		normal.Y += (p.Z - q.Z) * (p.X + q.X)
		normal.Z += (p.X - q.X) * (p.Y + q.Y)
	}
	pl, err := PlaneFromPointAndNormal(vertices[0], normal, prec)
	if err != nil {
		return Plane{}, err
	}
	for _, p := range vertices {
		if !pl.Contains(p) {
			return Plane{}, errors.Wrapf(bsp.ErrDegenerate, "vertex %v not in plane", p)
		}
	}
	return pl, nil
}

// MustPlane is like PlaneFromPointAndNormal but panics on error.
func MustPlane(p, normal Vector, prec bsp.Precision) Plane {
	pl, err := PlaneFromPointAndNormal(p, normal, prec)
	if err != nil {
		panic(err)
	}
	return pl
}

// Origin returns the point of the plane at subspace coordinates (0,0).
func (pl Plane) Origin() Vector {
	return pl.origin
}

// Normal returns the unit normal.
func (pl Plane) Normal() Vector {
	return pl.normal
}

// Frame returns the orthonormal in-plane axes u and v.
func (pl Plane) Frame() (Vector, Vector) {
	return pl.u, pl.v
}

// Precision returns the precision the plane classifies points with.
func (pl Plane) Precision() bsp.Precision {
	return pl.prec
}

// Offset returns the signed distance from the plane to p.
func (pl Plane) Offset(p Vector) float64 {
	return p.Sub(pl.origin).Dot(pl.normal)
}

// Classify returns the side of the plane p lies on.
func (pl Plane) Classify(p Vector) bsp.HyperplaneLocation {
	return pl.prec.Location(pl.Offset(p))
}

// Contains returns true if p lies on the plane.
func (pl Plane) Contains(p Vector) bool {
	return pl.Classify(p) == bsp.On
}

// Project returns the point on the plane closest to p.
func (pl Plane) Project(p Vector) Vector {
	return p.Sub(pl.normal.Mul(pl.Offset(p)))
}

// ToSubspace returns the coordinates of the projection of p in the plane's frame.
func (pl Plane) ToSubspace(p Vector) r2.Vector {
	d := p.Sub(pl.origin)
	return r2.Vector{X: d.Dot(pl.u), Y: d.Dot(pl.v)}
}

// ToSpace returns the point at frame coordinates q.
func (pl Plane) ToSpace(q r2.Vector) Vector {
	return pl.origin.Add(pl.u.Mul(q.X)).Add(pl.v.Mul(q.Y))
}

// Reverse returns the plane with opposite normal, swapping its sides. The frame axes are swapped.
func (pl Plane) Reverse() bsp.Hyperplane[Vector] {
	return pl.reverse()
}

func (pl Plane) reverse() Plane {
	return Plane{pl.origin, pl.normal.Neg(), pl.v, pl.u, pl.prec}
}

// swapAxes maps frame coordinates of a plane to those of its reverse.
var swapAxes = r2.Matrix{
	{0.0, 1.0, 0.0},
	{1.0, 0.0, 0.0},
}

// Transform maps the plane by t such that the image of the minus side is on the minus side.
func (pl Plane) Transform(t bsp.Transform[Vector]) bsp.Hyperplane[Vector] {
	q, _ := pl.transform(t)
	return q
}

// transform returns the mapped plane and the map from the old frame coordinates to the new ones.
func (pl Plane) transform(t bsp.Transform[Vector]) (Plane, r2.Matrix) {
	origin := t.Apply(pl.origin)
	u := t.Apply(pl.origin.Add(pl.u)).Sub(origin)
	v := t.Apply(pl.origin.Add(pl.v)).Sub(origin)
	normal, ok := u.Cross(v).Norm()
	if !ok {
		panic("transformation collapses plane, should be impossible!")
	}
	if normal.Dot(t.Apply(pl.origin.Add(pl.normal)).Sub(origin)) < 0.0 {
		normal = normal.Neg()
	}
	fu, _ := u.Norm()
	q := Plane{origin, normal, fu, normal.Cross(fu), pl.prec}

	c0 := q.ToSubspace(origin)
	cu := q.ToSubspace(origin.Add(u)).Sub(c0)
	cv := q.ToSubspace(origin.Add(v)).Sub(c0)
	m := r2.Matrix{
		{cu.X, cv.X, c0.X},
		{cu.Y, cv.Y, c0.Y},
	}
	return q, m
}

// SimilarOrientation returns true if both normals point roughly the same way.
func (pl Plane) SimilarOrientation(other bsp.Hyperplane[Vector]) bool {
	return 0.0 <= pl.normal.Dot(other.(Plane).normal)
}

// Eq returns true if both planes coincide and have the same normal with tolerance prec.
func (pl Plane) Eq(other bsp.Hyperplane[Vector], prec bsp.Precision) bool {
	q, ok := other.(Plane)
	return ok && pl.normal.Eq(q.normal, prec) && prec.EqZero(pl.Offset(q.origin))
}

// Intersection returns the line where both planes meet as a point and a unit direction, false if they are parallel.
func (pl Plane) Intersection(q Plane) (Vector, Vector, bool) {
	dir := pl.normal.Cross(q.normal)
	if pl.prec.EqZero(dir.Length()) {
		return Vector{}, Vector{}, false
	}
	l, ok := pl.subspaceLine(q)
	if !ok {
		return Vector{}, Vector{}, false
	}
	dir, _ = dir.Norm()
	return pl.ToSpace(l.Origin()), dir, true
}

// subspaceLine returns the intersection with splitter expressed in the frame of pl, such that the minus side of the line is on the minus side of splitter. It returns false if the planes are parallel.
func (pl Plane) subspaceLine(splitter Plane) (r2.Line, bool) {
	// the offset of frame point q to splitter is c + w.q
	w := r2.Vector{X: pl.u.Dot(splitter.normal), Y: pl.v.Dot(splitter.normal)}
	c := splitter.Offset(pl.origin)
	if splitter.prec.EqZero(w.Length()) {
		return r2.Line{}, false
	}
	origin := w.Mul(-c / w.Dot(w))
	l, err := r2.LineFromPointAndDirection(origin, w.Rot90CCW(), splitter.prec)
	if err != nil {
		return r2.Line{}, false
	}
	return l, true
}

// Span returns the subset covering the whole plane.
func (pl Plane) Span() bsp.ConvexSubset[Vector] {
	return pl.span()
}

func (pl Plane) span() PlaneSubset {
	return PlaneSubset{pl, r2.FullArea()}
}

func (pl Plane) String() string {
	return fmt.Sprintf("Plane(%v; %v)", pl.origin, pl.normal)
}
