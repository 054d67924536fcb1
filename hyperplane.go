package bsp

// Point is a point in a space of fixed dimension.
type Point[P any] interface {
	Dimension() int
	IsNaN() bool
	IsInf() bool
	Eq(q P, prec Precision) bool
	Distance(q P) float64
}

// Transform maps points to points. Only transforms that map hyperplanes to hyperplanes, such as affine transforms, are supported.
type Transform[P any] interface {
	Apply(p P) P

	// PreservesOrientation is false for transforms that include a reflection.
	PreservesOrientation() bool
}

// Hyperplane divides space into a minus and a plus side. Offset is negative on the minus side and positive on the plus side, and is within the hyperplane's precision of zero for points on the hyperplane.
type Hyperplane[P any] interface {
	Offset(p P) float64
	Classify(p P) HyperplaneLocation
	Contains(p P) bool
	Project(p P) P
	Reverse() Hyperplane[P]

	// Transform maps the hyperplane such that the image of its minus side is the minus side of the result.
	Transform(t Transform[P]) Hyperplane[P]

	// SimilarOrientation returns true if the plus sides of both hyperplanes point in roughly the same direction.
	SimilarOrientation(other Hyperplane[P]) bool
	Eq(other Hyperplane[P], prec Precision) bool

	// Span returns the convex subset covering the whole hyperplane.
	Span() ConvexSubset[P]
	Precision() Precision
}

// Subset is a (possibly non-convex) subset of a hyperplane.
type Subset[P any] interface {
	Hyperplane() Hyperplane[P]
	IsFull() bool
	IsEmpty() bool
	IsInfinite() bool
	IsFinite() bool
	Size() float64

	// Classify returns the location of a point relative to the subset within its hyperplane. Points not on the hyperplane are Outside.
	Classify(p P) RegionLocation

	// Closest returns the point of the subset closest to p.
	Closest(p P) P

	// ToConvex returns the convex pieces of the subset.
	ToConvex() []ConvexSubset[P]
}

// ConvexSubset is a convex subset of a hyperplane, bounded or not. It is used as the cut of tree nodes and as the boundaries of regions.
type ConvexSubset[P any] interface {
	Subset[P]
	Split(splitter Hyperplane[P]) Split[ConvexSubset[P]]
	Reverse() ConvexSubset[P]
	Transform(t Transform[P]) ConvexSubset[P]
}

// CutRule returns the attributes of the children created when a leaf with attribute parent is cut.
type CutRule[A any] func(parent A) (minus, plus A)

// Inherit gives both children the attribute of the parent.
func Inherit[A any](parent A) (A, A) {
	return parent, parent
}

// FindRule decides which node is returned when a point lies on a cut.
type FindRule int

const (
	// StopAtCut returns the node whose cut contains the point.
	StopAtCut FindRule = iota
	// PreferMinus continues into the minus child.
	PreferMinus
	// PreferPlus continues into the plus child.
	PreferPlus
)
