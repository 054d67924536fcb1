package r2

import (
	"fmt"
	"math"

	"github.com/tdewolff/bsp"
)

// Vector is a point or direction in the plane.
type Vector struct {
	X, Y float64
}

// Dimension returns 2.
func (v Vector) Dimension() int {
	return 2
}

// IsNaN returns true if either coordinate is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(v.X) || math.IsNaN(v.Y)
}

// IsInf returns true if either coordinate is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0)
}

// IsZero returns true if V is exactly zero.
func (v Vector) IsZero() bool {
	return v.X == 0.0 && v.Y == 0.0
}

// Eq returns true if V and Q are equal with tolerance prec for both coordinates.
func (v Vector) Eq(q Vector, prec bsp.Precision) bool {
	return prec.Eq(v.X, q.X) && prec.Eq(v.Y, q.Y)
}

// Distance returns the length of VQ.
func (v Vector) Distance(q Vector) float64 {
	return q.Sub(v).Length()
}

// Neg negates x and y.
func (v Vector) Neg() Vector {
	return Vector{-v.X, -v.Y}
}

// Add adds Q to V.
func (v Vector) Add(q Vector) Vector {
	return Vector{v.X + q.X, v.Y + q.Y}
}

// Sub subtracts Q from V.
func (v Vector) Sub(q Vector) Vector {
	return Vector{v.X - q.X, v.Y - q.Y}
}

// Mul multiplies x and y by f.
func (v Vector) Mul(f float64) Vector {
	return Vector{f * v.X, f * v.Y}
}

// Div divides x and y by f.
func (v Vector) Div(f float64) Vector {
	return Vector{v.X / f, v.Y / f}
}

// Rot90CW rotates OV by 90 degrees CW.
func (v Vector) Rot90CW() Vector {
	return Vector{v.Y, -v.X}
}

// Rot90CCW rotates OV by 90 degrees CCW.
func (v Vector) Rot90CCW() Vector {
	return Vector{-v.Y, v.X}
}

// Dot returns the dot product between OV and OQ, ie. zero if perpendicular and |OV|*|OQ| if aligned.
func (v Vector) Dot(q Vector) float64 {
	return v.X*q.X + v.Y*q.Y
}

// PerpDot returns the perp dot product between OV and OQ, ie. zero if aligned and |OV|*|OQ| if perpendicular. It is positive when OQ is CCW of OV.
func (v Vector) PerpDot(q Vector) float64 {
	return v.X*q.Y - v.Y*q.X
}

// Length returns the length of OV.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns the angle between the x-axis and OV.
func (v Vector) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Norm returns OV with unit length. It returns false for zero, NaN or infinite vectors.
func (v Vector) Norm() (Vector, bool) {
	d := v.Length()
	if d == 0.0 || math.IsNaN(d) || math.IsInf(d, 0) {
		return Vector{}, false
	}
	return Vector{v.X / d, v.Y / d}, true
}

// Interpolate returns a point on VQ that is linearly interpolated by t, ie. t=0 returns V and t=1 returns Q.
func (v Vector) Interpolate(q Vector, t float64) Vector {
	return Vector{(1-t)*v.X + t*q.X, (1-t)*v.Y + t*q.Y}
}

func (v Vector) String() string {
	return fmt.Sprintf("[%g; %g]", v.X, v.Y)
}

////////////////////////////////////////////////////////////////

// Matrix is an affine transformation of the plane. Chained calls apply right-to-left, so Identity.Rotate(30).Translate(20,0) translates first and rotates second.
type Matrix [2][3]float64

// Identity leaves points in place.
var Identity = Matrix{
	{1.0, 0.0, 0.0},
	{0.0, 1.0, 0.0},
}

// Mul returns the transformation m after q.
func (m Matrix) Mul(q Matrix) Matrix {
	var r Matrix
	for i := 0; i < 2; i++ {
		r[i][0] = m[i][0]*q[0][0] + m[i][1]*q[1][0]
		r[i][1] = m[i][0]*q[0][1] + m[i][1]*q[1][1]
		r[i][2] = m[i][0]*q[0][2] + m[i][1]*q[1][2] + m[i][2]
	}
	return r
}

// Apply transforms point p.
func (m Matrix) Apply(p Vector) Vector {
	return m.ApplyVector(p).Add(Vector{m[0][2], m[1][2]})
}

// ApplyVector transforms direction v, ignoring the translation.
func (m Matrix) ApplyVector(v Vector) Vector {
	return Vector{
		m[0][0]*v.X + m[0][1]*v.Y,
		m[1][0]*v.X + m[1][1]*v.Y,
	}
}

// PreservesOrientation returns false if the transformation includes a reflection.
func (m Matrix) PreservesOrientation() bool {
	return 0.0 < m.Det()
}

// Translate moves by (x,y).
func (m Matrix) Translate(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, 0.0, x},
		{0.0, 1.0, y},
	})
}

// Rotate rotates by rot degrees counter clockwise around the origin.
func (m Matrix) Rotate(rot float64) Matrix {
	sin, cos := math.Sincos(rot * math.Pi / 180.0)
	return m.Mul(Matrix{
		{cos, -sin, 0.0},
		{sin, cos, 0.0},
	})
}

// Scale scales the axes, it panics on a zero factor since regions cannot be collapsed.
func (m Matrix) Scale(x, y float64) Matrix {
	if x == 0.0 || y == 0.0 {
		panic("zero scale collapses the plane")
	}
	return m.Mul(Matrix{
		{x, 0.0, 0.0},
		{0.0, y, 0.0},
	})
}

// Shear adds x times the y coordinate to x and y times the x coordinate to y.
func (m Matrix) Shear(x, y float64) Matrix {
	return m.Mul(Matrix{
		{1.0, x, 0.0},
		{y, 1.0, 0.0},
	})
}

// ReflectX mirrors in the y-axis.
func (m Matrix) ReflectX() Matrix {
	return m.Scale(-1.0, 1.0)
}

// Det returns the determinant of the linear part, negative for reflections.
func (m Matrix) Det() float64 {
	return m[0][0]*m[1][1] - m[0][1]*m[1][0]
}

func (m Matrix) String() string {
	return fmt.Sprintf("[%g, %g, %g; %g, %g, %g]", m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2])
}
