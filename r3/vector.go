package r3

import (
	"fmt"
	"math"

	geo "github.com/golang/geo/r3"
	"github.com/tdewolff/bsp"
)

// Vector is a point or direction in space. Arithmetic is done by golang/geo's r3.Vector.
type Vector struct {
	X, Y, Z float64
}

func (v Vector) geo() geo.Vector {
	return geo.Vector(v)
}

// Dimension returns 3.
func (v Vector) Dimension() int {
	return 3
}

// IsNaN returns true if any coordinate is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z)
}

// IsInf returns true if any coordinate is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) || math.IsInf(v.Z, 0)
}

// IsZero returns true if V is (0,0,0).
func (v Vector) IsZero() bool {
	return v == Vector{}
}

// Eq returns true if the coordinates of V and Q are equal within tolerance prec.
func (v Vector) Eq(q Vector, prec bsp.Precision) bool {
	return prec.Eq(v.X, q.X) && prec.Eq(v.Y, q.Y) && prec.Eq(v.Z, q.Z)
}

// Distance returns the Euclidean distance between V and Q.
func (v Vector) Distance(q Vector) float64 {
	return v.geo().Distance(q.geo())
}

// Neg negates x, y and z.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Add adds Q to V.
func (v Vector) Add(q Vector) Vector {
	return Vector(v.geo().Add(q.geo()))
}

// Sub subtracts Q from V.
func (v Vector) Sub(q Vector) Vector {
	return Vector(v.geo().Sub(q.geo()))
}

// Mul multiplies x, y and z by f.
func (v Vector) Mul(f float64) Vector {
	return Vector(v.geo().Mul(f))
}

// Div divides x, y and z by f.
func (v Vector) Div(f float64) Vector {
	return Vector(v.geo().Mul(1.0 / f))
}

// Dot returns the dot product between V and Q.
func (v Vector) Dot(q Vector) float64 {
	return v.geo().Dot(q.geo())
}

// Cross returns the cross product V x Q.
func (v Vector) Cross(q Vector) Vector {
	return Vector(v.geo().Cross(q.geo()))
}

// Length returns the length of OV.
func (v Vector) Length() float64 {
	return v.geo().Norm()
}

// Norm returns OV with unit length. It returns false for zero, NaN or infinite vectors.
func (v Vector) Norm() (Vector, bool) {
	d := v.Length()
	if d == 0.0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Vector{}, false
	}
	return Vector(v.geo().Normalize()), true
}

// Ortho returns a unit vector orthogonal to V.
func (v Vector) Ortho() Vector {
	return Vector(v.geo().Ortho())
}

func (v Vector) String() string {
	return fmt.Sprintf("[%g; %g; %g]", v.X, v.Y, v.Z)
}

////////////////////////////////////////////////////////////////

// Matrix is used for affine transformations of space. As for r2.Matrix, concatenated transformations are evaluated right-to-left.
type Matrix [3][4]float64

var Identity = Matrix{
	{1.0, 0.0, 0.0, 0.0},
	{0.0, 1.0, 0.0, 0.0},
	{0.0, 0.0, 1.0, 0.0},
}

func (m Matrix) Mul(q Matrix) Matrix {
	r := Matrix{}
	for i := 0; i < 3; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 3; k++ {
				r[i][j] += m[i][k] * q[k][j]
			}
		}
		r[i][3] += m[i][3]
	}
	return r
}

// Apply transforms point p.
func (m Matrix) Apply(p Vector) Vector {
	return Vector{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z + m[0][3],
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z + m[1][3],
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z + m[2][3],
	}
}

// ApplyVector transforms direction v, ignoring translation.
func (m Matrix) ApplyVector(v Vector) Vector {
	return m.Apply(v).Sub(m.Apply(Vector{}))
}

// PreservesOrientation returns false for transformations that include a reflection.
func (m Matrix) PreservesOrientation() bool {
	return 0.0 < m.Det()
}

func (m Matrix) Translate(x, y, z float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, 0.0, x},
		{0.0, 1.0, 0.0, y},
		{0.0, 0.0, 1.0, z},
	})
}

// Scale scales along the axes. It panics for zero factors.
func (m Matrix) Scale(x, y, z float64) Matrix {
	if x == 0.0 || y == 0.0 || z == 0.0 {
		panic("r3: zero scale factor")
	}
	return m.Mul(Matrix{
		{x, 0.0, 0.0, 0.0},
		{0.0, y, 0.0, 0.0},
		{0.0, 0.0, z, 0.0},
	})
}

// Rotate rotates by rot degrees counter clockwise around axis, looking from the tip of axis towards the origin.
func (m Matrix) Rotate(rot float64, axis Vector) Matrix {
	a, ok := axis.Norm()
	if !ok {
		panic("r3: invalid rotation axis")
	}
	sin, cos := math.Sincos(rot * math.Pi / 180.0)
	c := 1.0 - cos
	return m.Mul(Matrix{
		{cos + a.X*a.X*c, a.X*a.Y*c - a.Z*sin, a.X*a.Z*c + a.Y*sin, 0.0},
		{a.Y*a.X*c + a.Z*sin, cos + a.Y*a.Y*c, a.Y*a.Z*c - a.X*sin, 0.0},
		{a.Z*a.X*c - a.Y*sin, a.Z*a.Y*c + a.X*sin, cos + a.Z*a.Z*c, 0.0},
	})
}

func (m Matrix) ReflectX() Matrix {
	return m.Scale(-1.0, 1.0, 1.0)
}

// Det returns the determinant of the linear part.
func (m Matrix) Det() float64 {
	return m[0][0]*(m[1][1]*m[2][2]-m[1][2]*m[2][1]) -
		m[0][1]*(m[1][0]*m[2][2]-m[1][2]*m[2][0]) +
		m[0][2]*(m[1][0]*m[2][1]-m[1][1]*m[2][0])
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g %g %g %g; %g %g %g %g; %g %g %g %g]",
		m[0][0], m[0][1], m[0][2], m[0][3],
		m[1][0], m[1][1], m[1][2], m[1][3],
		m[2][0], m[2][1], m[2][2], m[2][3])
}
