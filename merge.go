package bsp

// MergeOp combines the attributes of two trees.
type MergeOp[A comparable] struct {
	// Combine returns the attribute of a region covered by a leaf with attribute a in the first tree and b in the second.
	Combine func(a, b A) A

	// Absorbing optionally reports whether a leaf with attribute a, in the first tree if first is true, determines the result regardless of the other tree. Merging then stops descending.
	Absorbing func(a A, first bool) (A, bool)
}

// Merge returns a new tree whose leaves carry the combined attributes of a and b for every point in space. Neither input is modified. Cuts whose sides end up with equal attributes are removed.
func Merge[P Point[P], A comparable](a, b *Tree[P, A], op MergeOp[A]) *Tree[P, A] {
	s := a.Copy()
	other := s.importSubtree(b, b.root)
	root := s.merge(s.root, other, op)
	return s.extract(root)
}

// merge runs within a scratch arena holding both subtrees, parents and depths are fixed when extracting the result.
func (s *Tree[P, A]) merge(x, y int32, op MergeOp[A]) int32 {
	nx, ny := s.nodes[x], s.nodes[y]
	if nx.isLeaf() {
		if op.Absorbing != nil {
			if attr, ok := op.Absorbing(nx.attr, true); ok {
				return s.alloc(attr)
			}
		}
		return s.mapSubtree(y, func(b A) A { return op.Combine(nx.attr, b) })
	} else if ny.isLeaf() {
		if op.Absorbing != nil {
			if attr, ok := op.Absorbing(ny.attr, false); ok {
				return s.alloc(attr)
			}
		}
		return s.mapSubtree(x, func(a A) A { return op.Combine(a, ny.attr) })
	}

	// bring y into correspondence with the cut of x
	minus, plus := s.splitSubtree(y, nx.cut)
	minus = s.merge(nx.minus, minus, op)
	plus = s.merge(nx.plus, plus, op)
	return s.join(nx.cut, minus, plus, nx.attr)
}

// join returns an internal node with the given cut and children, or a single leaf if both children are leaves with equal attributes.
func (s *Tree[P, A]) join(cut ConvexSubset[P], minus, plus int32, attr A) int32 {
	nm, np := s.nodes[minus], s.nodes[plus]
	if nm.isLeaf() && np.isLeaf() && nm.attr == np.attr {
		return minus
	}
	id := s.alloc(attr)
	s.nodes[id].cut = cut
	s.nodes[id].minus = minus
	s.nodes[id].plus = plus
	return id
}

// mapSubtree copies the subtree at id with f applied to the leaf attributes, collapsing cuts that separate equal attributes.
func (s *Tree[P, A]) mapSubtree(id int32, f func(A) A) int32 {
	n := s.nodes[id]
	if n.isLeaf() {
		return s.alloc(f(n.attr))
	}
	minus := s.mapSubtree(n.minus, f)
	plus := s.mapSubtree(n.plus, f)
	return s.join(n.cut, minus, plus, n.attr)
}

// splitSubtree divides the subtree at id by the partitioner, which must lie within the subtree's region. It returns the subtrees for either side of the partitioner's hyperplane. Each node of the input is used at most once in the result, leaves crossed by the partitioner are duplicated.
func (s *Tree[P, A]) splitSubtree(id int32, partitioner ConvexSubset[P]) (int32, int32) {
	n := s.nodes[id]
	if n.isLeaf() {
		return id, s.alloc(n.attr)
	}

	partitionerHyperplane := partitioner.Hyperplane()
	cutHyperplane := n.cut.Hyperplane()
	partitionerSplit := partitioner.Split(cutHyperplane)
	cutSplit := n.cut.Split(partitionerHyperplane)

	switch partitionerSplit.Location() {
	case SplitPlus:
		// the partitioner lies in the plus subtree
		minus, plus := s.splitSubtree(n.plus, partitioner)
		if cutSplit.Location() == SplitPlus {
			return minus, s.join(n.cut, n.minus, plus, n.attr)
		}
		return s.join(n.cut, n.minus, minus, n.attr), plus
	case SplitMinus:
		// the partitioner lies in the minus subtree
		minus, plus := s.splitSubtree(n.minus, partitioner)
		if cutSplit.Location() == SplitPlus {
			return minus, s.join(n.cut, plus, n.plus, n.attr)
		}
		return s.join(n.cut, minus, n.plus, n.attr), plus
	case SplitBoth:
		// the partitioner and the cut cross each other
		minusMinus, minusPlus := s.splitSubtree(n.minus, partitionerSplit.Minus())
		plusMinus, plusPlus := s.splitSubtree(n.plus, partitionerSplit.Plus())
		cutMinus, cutPlus := cutSplit.Minus(), cutSplit.Plus()
		if cutMinus == nil {
			cutMinus = n.cut
		}
		if cutPlus == nil {
			cutPlus = n.cut
		}
		return s.join(cutMinus, minusMinus, plusMinus, n.attr), s.join(cutPlus, minusPlus, plusPlus, n.attr)
	}

	// the partitioner lies on the cut's hyperplane
	if partitionerHyperplane.SimilarOrientation(cutHyperplane) {
		return n.minus, n.plus
	}
	return n.plus, n.minus
}

// Split divides the tree by a hyperplane and returns two new trees. The first tree covers the minus side of the splitter, with the plus side being a leaf with attribute fill, and the second tree vice versa. The tree is not modified.
func (t *Tree[P, A]) Split(splitter Hyperplane[P], fill A) (*Tree[P, A], *Tree[P, A]) {
	s := t.Copy()
	span := splitter.Span()
	rootAttr := s.nodes[s.root].attr
	minus, plus := s.splitSubtree(s.root, span)

	minusRoot := s.alloc(rootAttr)
	s.nodes[minusRoot].cut = span
	s.nodes[minusRoot].minus = minus
	s.nodes[minusRoot].plus = s.alloc(fill)

	plusRoot := s.alloc(rootAttr)
	s.nodes[plusRoot].cut = span
	s.nodes[plusRoot].minus = s.alloc(fill)
	s.nodes[plusRoot].plus = plus
	return s.extract(minusRoot), s.extract(plusRoot)
}
