package r2

import (
	"math"
	"testing"

	"github.com/tdewolff/bsp"
	"github.com/tdewolff/test"
)

var prec = bsp.Precision{Epsilon: 1e-6}

func testVector(t *testing.T, got, want Vector) {
	t.Helper()
	test.Float(t, got.X, want.X)
	test.Float(t, got.Y, want.Y)
}

func TestVector(t *testing.T) {
	p := Vector{3, 4}
	testVector(t, p.Mul(2.0), Vector{6, 8})
	testVector(t, p.Div(2.0), Vector{1.5, 2})
	testVector(t, p.Rot90CW(), Vector{4, -3})
	testVector(t, p.Rot90CCW(), Vector{-4, 3})
	test.Float(t, p.Dot(Vector{3, 0}), 9.0)
	test.Float(t, p.PerpDot(Vector{3, 0}), -12.0)
	test.Float(t, p.Length(), 5.0)
	test.Float(t, p.Distance(Vector{0, 0}), 5.0)
	test.Float(t, p.Angle(), math.Atan2(4.0, 3.0))
	n, ok := p.Norm()
	test.That(t, ok)
	testVector(t, n, Vector{0.6, 0.8})
	_, ok = Vector{}.Norm()
	test.That(t, !ok)
	_, ok = Vector{math.Inf(1), 0}.Norm()
	test.That(t, !ok)
	testVector(t, Vector{}.Interpolate(p, 0.5), Vector{1.5, 2.0})
	test.That(t, p.Eq(Vector{3 + 1e-8, 4}, prec))
	test.That(t, Vector{math.NaN(), 0}.IsNaN())
	test.String(t, p.String(), "[3; 4]")
}

func TestMatrix(t *testing.T) {
	p := Vector{3, 4}
	testVector(t, Identity.Translate(2.0, 2.0).Apply(p), Vector{5.0, 6.0})
	testVector(t, Identity.Scale(2.0, 2.0).Apply(p), Vector{6.0, 8.0})
	testVector(t, Identity.Scale(1.0, -1.0).Apply(p), Vector{3.0, -4.0})
	testVector(t, Identity.Shear(1.0, 0.0).Apply(p), Vector{7.0, 4.0})
	testVector(t, Identity.Rotate(90.0).Apply(p), p.Rot90CCW())
	testVector(t, Identity.Translate(3.0, 4.0).Rotate(90.0).Translate(-3.0, -4.0).Apply(p), p)
	testVector(t, Identity.Translate(1.0, 2.0).Rotate(90.0).Apply(p), Vector{-3.0, 5.0})
	testVector(t, Identity.Translate(5.0, 5.0).ApplyVector(p), p)
	test.That(t, Identity.Rotate(45.0).PreservesOrientation())
	test.That(t, !Identity.ReflectX().PreservesOrientation())
	test.Float(t, Identity.Scale(2.0, 3.0).Det(), 6.0)
}
