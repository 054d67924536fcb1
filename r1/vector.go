package r1

import (
	"fmt"
	"math"

	"github.com/tdewolff/bsp"
)

// Vector is a point on the real line.
type Vector float64

// Dimension returns 1.
func (v Vector) Dimension() int {
	return 1
}

// IsNaN returns true if v is NaN.
func (v Vector) IsNaN() bool {
	return math.IsNaN(float64(v))
}

// IsInf returns true if v is infinite.
func (v Vector) IsInf() bool {
	return math.IsInf(float64(v), 0)
}

// Eq returns true if v and q are equal with tolerance prec.
func (v Vector) Eq(q Vector, prec bsp.Precision) bool {
	return prec.Eq(float64(v), float64(q))
}

// Distance returns |v-q|.
func (v Vector) Distance(q Vector) float64 {
	return math.Abs(float64(v - q))
}

func (v Vector) String() string {
	return fmt.Sprintf("%g", float64(v))
}

////////////////////////////////////////////////////////////////

// Affine is an affine transformation x*Scale+Offset of the real line.
type Affine struct {
	Scale, Offset float64
}

// Identity does not transform.
var Identity = Affine{1.0, 0.0}

// Apply transforms p.
func (t Affine) Apply(p Vector) Vector {
	return Vector(float64(p)*t.Scale + t.Offset)
}

// PreservesOrientation returns false for reflections.
func (t Affine) PreservesOrientation() bool {
	return 0.0 < t.Scale
}

// Translate moves by d after applying t.
func (t Affine) Translate(d float64) Affine {
	return Affine{t.Scale, t.Offset + d}
}

// Scaled scales by f after applying t. It panics for a zero or non-finite factor.
func (t Affine) Scaled(f float64) Affine {
	if f == 0.0 || math.IsNaN(f) || math.IsInf(f, 0) {
		panic("r1: invalid scale factor")
	}
	return Affine{t.Scale * f, t.Offset * f}
}

// Inv returns the inverse transformation.
func (t Affine) Inv() Affine {
	return Affine{1.0 / t.Scale, -t.Offset / t.Scale}
}

func (t Affine) String() string {
	return fmt.Sprintf("x*%g%+g", t.Scale, t.Offset)
}
