package bsp

import (
	"math"
)

// MinusInside sets the minus child Inside and the plus child Outside. Boundaries inserted with MinusInside have the region's interior on their minus side.
func MinusInside(RegionLocation) (RegionLocation, RegionLocation) {
	return Inside, Outside
}

// PlusInside sets the minus child Outside and the plus child Inside.
func PlusInside(RegionLocation) (RegionLocation, RegionLocation) {
	return Outside, Inside
}

var (
	union = MergeOp[RegionLocation]{
		Combine: func(a, b RegionLocation) RegionLocation {
			if a == Inside || b == Inside {
				return Inside
			}
			return Outside
		},
		Absorbing: func(a RegionLocation, first bool) (RegionLocation, bool) {
			return Inside, a == Inside
		},
	}
	intersection = MergeOp[RegionLocation]{
		Combine: func(a, b RegionLocation) RegionLocation {
			if a == Inside && b == Inside {
				return Inside
			}
			return Outside
		},
		Absorbing: func(a RegionLocation, first bool) (RegionLocation, bool) {
			return Outside, a == Outside
		},
	}
	difference = MergeOp[RegionLocation]{
		Combine: func(a, b RegionLocation) RegionLocation {
			if a == Inside && b == Outside {
				return Inside
			}
			return Outside
		},
		Absorbing: func(a RegionLocation, first bool) (RegionLocation, bool) {
			if first {
				return Outside, a == Outside
			}
			return Outside, a == Inside
		},
	}
	xor = MergeOp[RegionLocation]{
		Combine: func(a, b RegionLocation) RegionLocation {
			if a != b {
				return Inside
			}
			return Outside
		},
	}
)

// Region is a region of space represented by a tree whose leaves are either Inside or Outside. The region exclusively owns its tree.
type Region[P Point[P]] struct {
	tree *Tree[P, RegionLocation]
}

// NewRegion returns the full region if full is true, otherwise the empty region.
func NewRegion[P Point[P]](full bool) *Region[P] {
	loc := Outside
	if full {
		loc = Inside
	}
	return &Region[P]{NewTree[P](loc)}
}

// RegionFromTree returns a region that takes ownership of the given tree.
func RegionFromTree[P Point[P]](tree *Tree[P, RegionLocation]) *Region[P] {
	return &Region[P]{tree}
}

// Tree returns the underlying tree. Mutating it mutates the region.
func (r *Region[P]) Tree() *Tree[P, RegionLocation] {
	return r.tree
}

// Root returns the root node of the tree.
func (r *Region[P]) Root() Node[P, RegionLocation] {
	return r.tree.Root()
}

// Count returns the number of nodes of the tree.
func (r *Region[P]) Count() int {
	return r.tree.Count()
}

// Height returns the height of the tree.
func (r *Region[P]) Height() int {
	return r.tree.Height()
}

// Validate checks the structural invariants of the tree.
func (r *Region[P]) Validate() error {
	return r.tree.Validate()
}

// IsFull returns true if there are no outside leaves.
func (r *Region[P]) IsFull() bool {
	return !r.hasLeaf(Outside)
}

// IsEmpty returns true if there are no inside leaves.
func (r *Region[P]) IsEmpty() bool {
	return !r.hasLeaf(Inside)
}

func (r *Region[P]) hasLeaf(loc RegionLocation) bool {
	for _, n := range r.tree.nodes {
		if !n.free && n.isLeaf() && n.attr == loc {
			return true
		}
	}
	return false
}

// Classify returns whether p lies inside, outside or on the boundary of the region. A point on a cut is on the boundary only if the regions on either side of the cut differ at that point. NaN points are outside.
func (r *Region[P]) Classify(p P) RegionLocation {
	if p.IsNaN() {
		return Outside
	}
	return r.classify(r.tree.root, p)
}

func (r *Region[P]) classify(id int32, p P) RegionLocation {
	for {
		n := r.tree.nodes[id]
		if n.isLeaf() {
			return n.attr
		}
		switch n.cut.Hyperplane().Classify(p) {
		case Minus:
			id = n.minus
		case Plus:
			id = n.plus
		default:
			minus := r.classify(n.minus, p)
			plus := r.classify(n.plus, p)
			if minus == plus {
				return minus
			}
			return Boundary
		}
	}
}

// Contains returns true if p is inside or on the boundary of the region.
func (r *Region[P]) Contains(p P) bool {
	return r.Classify(p) != Outside
}

// Insert adds the convex pieces of sub as cuts, with the new children set by rule.
func (r *Region[P]) Insert(sub Subset[P], rule CutRule[RegionLocation]) {
	r.tree.Insert(sub, rule)
}

// InsertBoundaries inserts boundaries whose minus side faces the inside of the region.
func (r *Region[P]) InsertBoundaries(subs ...Subset[P]) {
	for _, sub := range subs {
		r.tree.Insert(sub, MinusInside)
	}
}

// Cut cuts node n by h restricted to the node's region, see Tree.InsertCut.
func (r *Region[P]) Cut(n Node[P, RegionLocation], h Hyperplane[P], rule CutRule[RegionLocation]) bool {
	return r.tree.InsertCut(n, h, rule)
}

// Complement swaps inside and outside in place.
func (r *Region[P]) Complement() {
	r.tree.MapAttrs(RegionLocation.Complement)
}

// Copy returns an independent copy.
func (r *Region[P]) Copy() *Region[P] {
	return &Region[P]{r.tree.Copy()}
}

// Condense removes cuts that do not separate inside from outside.
func (r *Region[P]) Condense() bool {
	return r.tree.Condense()
}

// Transform maps the region by t in place.
func (r *Region[P]) Transform(t Transform[P]) {
	r.tree.Transform(t)
}

// Union returns the points in r or q.
func (r *Region[P]) Union(q *Region[P]) *Region[P] {
	return &Region[P]{Merge(r.tree, q.tree, union)}
}

// Intersection returns the points in both r and q.
func (r *Region[P]) Intersection(q *Region[P]) *Region[P] {
	return &Region[P]{Merge(r.tree, q.tree, intersection)}
}

// Difference returns the points in r but not in q.
func (r *Region[P]) Difference(q *Region[P]) *Region[P] {
	return &Region[P]{Merge(r.tree, q.tree, difference)}
}

// Xor returns the points in either r or q but not both.
func (r *Region[P]) Xor(q *Region[P]) *Region[P] {
	return &Region[P]{Merge(r.tree, q.tree, xor)}
}

// Split divides the region by a hyperplane. Parts that are empty are left out of the split, and an empty region always returns SplitNeither.
func (r *Region[P]) Split(splitter Hyperplane[P]) Split[*Region[P]] {
	if r.IsEmpty() {
		return NeitherSplit[*Region[P]]()
	}
	minusTree, plusTree := r.tree.Split(splitter, Outside)
	minusTree.Condense()
	plusTree.Condense()
	minus, plus := &Region[P]{minusTree}, &Region[P]{plusTree}
	return SplitOf(minus, !minus.IsEmpty(), plus, !plus.IsEmpty())
}

// Boundaries returns the boundary of the region as convex subsets, oriented with the inside of the region on their minus side.
func (r *Region[P]) Boundaries() []ConvexSubset[P] {
	boundaries := []ConvexSubset[P]{}
	r.tree.Walk(func(n Node[P, RegionLocation]) bool {
		if n.IsInternal() {
			boundaries = append(boundaries, r.cutBoundaries(n.index())...)
		}
		return true
	})
	return boundaries
}

// cutBoundaries returns the parts of the node's cut that separate inside from outside.
func (r *Region[P]) cutBoundaries(id int32) []ConvexSubset[P] {
	n := r.tree.nodes[id]
	minusInside, minusOutside := []ConvexSubset[P]{}, []ConvexSubset[P]{}
	r.characterize(n.cut, n.minus, &minusInside, &minusOutside)

	boundaries := []ConvexSubset[P]{}
	for _, sub := range minusInside {
		// inside on the minus side, outside on the plus side
		r.characterize(sub, n.plus, nil, &boundaries)
	}
	insideFacing := []ConvexSubset[P]{}
	for _, sub := range minusOutside {
		r.characterize(sub, n.plus, &insideFacing, nil)
	}
	for _, sub := range insideFacing {
		boundaries = append(boundaries, sub.Reverse())
	}
	return boundaries
}

// characterize splits sub down the subtree at id and collects the parts that end up in inside and outside leaves.
func (r *Region[P]) characterize(sub ConvexSubset[P], id int32, inside, outside *[]ConvexSubset[P]) {
	if sub == nil || sub.IsEmpty() {
		return
	}
	n := r.tree.nodes[id]
	if n.isLeaf() {
		if n.attr == Inside && inside != nil {
			*inside = append(*inside, sub)
		} else if n.attr == Outside && outside != nil {
			*outside = append(*outside, sub)
		}
		return
	}

	split := sub.Split(n.cut.Hyperplane())
	if split.Location() == SplitNeither {
		// sub lies on the cut, its sides are decided further down
		r.characterize(sub, n.plus, inside, outside)
		r.characterize(sub, n.minus, inside, outside)
		return
	}
	r.characterize(split.Minus(), n.minus, inside, outside)
	r.characterize(split.Plus(), n.plus, inside, outside)
}

// BoundarySize returns the total size of the boundaries, such as the perimeter of a polygon.
func (r *Region[P]) BoundarySize() float64 {
	size := 0.0
	for _, boundary := range r.Boundaries() {
		size += boundary.Size()
	}
	return size
}

// Project returns the point on the boundary of the region closest to p. It returns false if the region has no boundary.
func (r *Region[P]) Project(p P) (P, bool) {
	var closest P
	ok := false
	dist := math.Inf(1)
	for _, boundary := range r.Boundaries() {
		q := boundary.Closest(p)
		if d := p.Distance(q); d < dist {
			closest, dist, ok = q, d, true
		}
	}
	return closest, ok
}

// String returns the tree structure.
func (r *Region[P]) String() string {
	return r.tree.String()
}
