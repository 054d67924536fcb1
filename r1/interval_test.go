package r1

import (
	"fmt"
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/test"
)

var prec = bsp.Precision{Epsilon: 1e-6}

func TestNewInterval(t *testing.T) {
	iv, err := NewInterval(3.0, 1.0, prec)
	test.Error(t, err)
	test.Float(t, iv.Min(), 1.0)
	test.Float(t, iv.Max(), 3.0)
	test.Float(t, iv.Size(), 2.0)

	var tts = []struct {
		a, b float64
	}{
		{math.NaN(), 1.0},
		{1.0, math.NaN()},
		{math.Inf(1), math.Inf(1)},
		{math.Inf(-1), math.Inf(-1)},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			_, err := NewInterval(tt.a, tt.b, prec)
			test.That(t, errors.Is(err, bsp.ErrDegenerate))
		})
	}

	full := FullInterval(prec)
	test.That(t, full.IsFull())
	test.That(t, full.IsInfinite())
	_, ok := full.Centroid()
	test.That(t, !ok)
}

func TestIntervalClassify(t *testing.T) {
	iv := MustInterval(-1.0, 2.0, prec)
	var tts = []struct {
		p   Vector
		loc bsp.RegionLocation
	}{
		{-2.0, bsp.Outside},
		{-1.0, bsp.Boundary},
		{-1.0 + 1e-7, bsp.Boundary},
		{0.0, bsp.Inside},
		{2.0, bsp.Boundary},
		{3.0, bsp.Outside},
		{Vector(math.NaN()), bsp.Outside},
	}
	for _, tt := range tts {
		t.Run(fmt.Sprint(tt.p), func(t *testing.T) {
			test.T(t, iv.Classify(tt.p), tt.loc)
		})
	}

	half, err := IntervalMin(1.0, prec)
	test.Error(t, err)
	test.T(t, half.Classify(1e9), bsp.Inside)
	test.T(t, half.Classify(1.0), bsp.Boundary)
	_, ok := half.MaxBoundary()
	test.That(t, !ok)
}

func TestIntervalSplit(t *testing.T) {
	iv := MustInterval(1.0, 3.0, prec)

	split := iv.Split(PositiveFacing(2.0, prec))
	test.T(t, split.Location(), bsp.SplitBoth)
	test.Float(t, split.Minus().Max(), 2.0)
	test.Float(t, split.Plus().Min(), 2.0)

	split = iv.Split(NegativeFacing(2.0, prec))
	test.T(t, split.Location(), bsp.SplitBoth)
	test.Float(t, split.Minus().Min(), 2.0)
	test.Float(t, split.Plus().Max(), 2.0)

	test.T(t, iv.Split(PositiveFacing(1.0, prec)).Location(), bsp.SplitPlus)
	test.T(t, iv.Split(PositiveFacing(5.0, prec)).Location(), bsp.SplitMinus)
	test.T(t, iv.Split(NegativeFacing(5.0, prec)).Location(), bsp.SplitPlus)
}

func TestIntervalTransform(t *testing.T) {
	iv := MustInterval(1.0, 3.0, prec).Transform(Identity.Scaled(-2.0).Translate(1.0))
	test.Float(t, iv.Min(), -5.0)
	test.Float(t, iv.Max(), -1.0)
}

func TestOrientedPoint(t *testing.T) {
	_, err := NewOrientedPoint(math.Inf(1), true, prec)
	test.That(t, errors.Is(err, bsp.ErrDegenerate))

	h := PositiveFacing(2.0, prec)
	test.Float(t, h.Offset(5.0), 3.0)
	test.T(t, h.Classify(1.0), bsp.Minus)
	test.T(t, h.Classify(2.0+1e-8), bsp.On)
	test.T(t, h.Classify(3.0), bsp.Plus)
	test.Float(t, h.Reverse().Offset(5.0), -3.0)
	test.That(t, !h.SimilarOrientation(h.Reverse()))
	test.That(t, h.Eq(PositiveFacing(2.0+1e-8, prec), prec))
	test.That(t, !h.Eq(NegativeFacing(2.0, prec), prec))

	// reflections keep the image of the plus side on the plus side
	g := h.Transform(Identity.Scaled(-1.0))
	test.T(t, g.Classify(-3.0), bsp.Plus)
	test.T(t, g.Classify(0.0), bsp.Minus)

	sub := h.Span()
	test.T(t, sub.Split(PositiveFacing(1.0, prec)).Location(), bsp.SplitPlus)
	test.T(t, sub.Split(NegativeFacing(1.0, prec)).Location(), bsp.SplitMinus)
	test.T(t, sub.Split(NegativeFacing(2.0, prec)).Location(), bsp.SplitNeither)
	test.T(t, sub.Classify(2.0), bsp.Boundary)
	test.T(t, sub.Classify(2.5), bsp.Outside)
}
