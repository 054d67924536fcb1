package bsp

import "fmt"

// Split is the result of splitting an object of type T by a hyperplane. Minus is set only for locations SplitMinus and SplitBoth, Plus only for SplitPlus and SplitBoth.
type Split[T any] struct {
	minus, plus T
	loc         SplitLocation
}

// SplitOf returns the split for the given parts. The has arguments mark which parts are present.
func SplitOf[T any](minus T, hasMinus bool, plus T, hasPlus bool) Split[T] {
	switch {
	case hasMinus && hasPlus:
		return BothSplit(minus, plus)
	case hasMinus:
		return MinusSplit(minus)
	case hasPlus:
		return PlusSplit(plus)
	}
	return NeitherSplit[T]()
}

// MinusSplit returns a split that lies entirely on the minus side.
func MinusSplit[T any](minus T) Split[T] {
	return Split[T]{minus: minus, loc: SplitMinus}
}

// PlusSplit returns a split that lies entirely on the plus side.
func PlusSplit[T any](plus T) Split[T] {
	return Split[T]{plus: plus, loc: SplitPlus}
}

// BothSplit returns a split with parts on both sides.
func BothSplit[T any](minus, plus T) Split[T] {
	return Split[T]{minus, plus, SplitBoth}
}

// NeitherSplit returns a split without parts, for example because the object lies on the hyperplane.
func NeitherSplit[T any]() Split[T] {
	return Split[T]{loc: SplitNeither}
}

// Location returns on which sides the parts lie.
func (s Split[T]) Location() SplitLocation {
	return s.loc
}

// Minus returns the part on the minus side, or the zero value of T.
func (s Split[T]) Minus() T {
	return s.minus
}

// Plus returns the part on the plus side, or the zero value of T.
func (s Split[T]) Plus() T {
	return s.plus
}

// HasMinus returns true if there is a part on the minus side.
func (s Split[T]) HasMinus() bool {
	return s.loc == SplitMinus || s.loc == SplitBoth
}

// HasPlus returns true if there is a part on the plus side.
func (s Split[T]) HasPlus() bool {
	return s.loc == SplitPlus || s.loc == SplitBoth
}

func (s Split[T]) String() string {
	return fmt.Sprintf("Split(%v; minus=%v; plus=%v)", s.loc, s.minus, s.plus)
}
