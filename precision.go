package bsp

import (
	"fmt"
	"math"

	"github.com/pkg/errors"
)

// Epsilon is the default tolerance used for geometric comparisons.
const Epsilon = 1e-10

// DefaultPrecision compares with tolerance Epsilon.
var DefaultPrecision = Precision{Epsilon}

// Precision compares floating point values with an absolute tolerance. Values closer than Epsilon are considered equal. All hyperplanes created with the same Precision agree on what lies on them.
type Precision struct {
	Epsilon float64
}

// NewPrecision returns a precision context with the given tolerance, which must be non-negative and finite.
func NewPrecision(epsilon float64) (Precision, error) {
	if !(0.0 <= epsilon) || math.IsInf(epsilon, 0) {
		return Precision{}, errors.Wrapf(ErrDegenerate, "epsilon %v", epsilon)
	}
	return Precision{epsilon}, nil
}

// Compare returns -1, 0 or 1 when a is less than, equal to or greater than b respectively.
func (p Precision) Compare(a, b float64) int {
	if a == b || math.Abs(a-b) <= p.Epsilon {
		return 0
	} else if a < b {
		return -1
	} else if b < a {
		return 1
	}
	// NaN
	if math.IsNaN(a) && math.IsNaN(b) {
		return 0
	} else if math.IsNaN(a) {
		return 1
	}
	return -1
}

// Eq returns true if a and b are equal within tolerance.
func (p Precision) Eq(a, b float64) bool {
	return p.Compare(a, b) == 0
}

// EqZero returns true if a is zero within tolerance.
func (p Precision) EqZero(a float64) bool {
	return p.Compare(a, 0.0) == 0
}

// Lt returns true if a is smaller than b and not equal within tolerance.
func (p Precision) Lt(a, b float64) bool {
	return p.Compare(a, b) < 0
}

// Lte returns true if a is smaller than or equal to b within tolerance.
func (p Precision) Lte(a, b float64) bool {
	return p.Compare(a, b) <= 0
}

// Gt returns true if a is greater than b and not equal within tolerance.
func (p Precision) Gt(a, b float64) bool {
	return p.Compare(a, b) > 0
}

// Gte returns true if a is greater than or equal to b within tolerance.
func (p Precision) Gte(a, b float64) bool {
	return p.Compare(a, b) >= 0
}

// Sign returns -1, 0 or 1 for negative, zero and positive values of a.
func (p Precision) Sign(a float64) int {
	return p.Compare(a, 0.0)
}

// Location converts a signed offset to a hyperplane location.
func (p Precision) Location(offset float64) HyperplaneLocation {
	return HyperplaneLocation(p.Sign(offset))
}

func (p Precision) String() string {
	return fmt.Sprintf("Precision(%g)", p.Epsilon)
}
