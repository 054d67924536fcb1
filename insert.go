package bsp

// Insert adds the convex pieces of sub to the tree. Every leaf whose region is crossed by a piece is cut by the piece's hyperplane restricted to the leaf's region. Pieces that lie on an existing cut are ignored at that node, so inserting the same subset twice leaves the tree unchanged.
func (t *Tree[P, A]) Insert(sub Subset[P], rule CutRule[A]) {
	for _, convex := range sub.ToConvex() {
		if convex == nil || convex.IsEmpty() {
			continue
		}
		t.insert(t.root, convex, convex.Hyperplane().Span(), rule)
	}
}

// insert descends with the piece being inserted and the span of its hyperplane trimmed to the current node's region.
func (t *Tree[P, A]) insert(id int32, sub, trimmed ConvexSubset[P], rule CutRule[A]) {
	n := t.nodes[id]
	if n.isLeaf() {
		if trimmed != nil && !trimmed.IsEmpty() {
			t.setSubtree(id, trimmed, rule)
		}
		return
	}

	h := n.cut.Hyperplane()
	split := sub.Split(h)
	if split.Location() == SplitNeither {
		return
	}
	var trimmedSplit Split[ConvexSubset[P]]
	if trimmed != nil {
		trimmedSplit = trimmed.Split(h)
	}
	if split.HasMinus() {
		t.insert(n.minus, split.Minus(), trimmedSplit.Minus(), rule)
	}
	if split.HasPlus() {
		t.insert(n.plus, split.Plus(), trimmedSplit.Plus(), rule)
	}
}

// InsertCut cuts the node by h restricted to the node's region, replacing any existing subtree. If h does not cross the node's region, the node becomes a leaf and false is returned.
func (t *Tree[P, A]) InsertCut(n Node[P, A], h Hyperplane[P], rule CutRule[A]) bool {
	id := t.check(n)
	trimmed := t.trimToNode(id, h.Span())
	if trimmed == nil || trimmed.IsEmpty() {
		t.clearSubtree(id)
		return false
	}
	t.setSubtree(id, trimmed, rule)
	return true
}

// SetCut sets the cut of a node without restricting it to the node's region, replacing any existing subtree. A nil cut turns the node into a leaf.
func (t *Tree[P, A]) SetCut(n Node[P, A], cut ConvexSubset[P], rule CutRule[A]) {
	id := t.check(n)
	if cut == nil {
		t.clearSubtree(id)
		return
	}
	t.setSubtree(id, cut, rule)
}

// ClearCut removes the cut and children of a node, turning it into a leaf. It returns false if the node was a leaf already.
func (t *Tree[P, A]) ClearCut(n Node[P, A]) bool {
	return t.clearSubtree(t.check(n))
}

// TrimToNode returns the part of sub inside the region of node n, or nil if they do not intersect. The node region is the intersection of the sides of all ancestor cuts that contain n.
func (t *Tree[P, A]) TrimToNode(n Node[P, A], sub ConvexSubset[P]) ConvexSubset[P] {
	return t.trimToNode(t.check(n), sub)
}

func (t *Tree[P, A]) trimToNode(id int32, sub ConvexSubset[P]) ConvexSubset[P] {
	for parent := t.nodes[id].parent; parent != nilID && sub != nil; id, parent = parent, t.nodes[parent].parent {
		split := sub.Split(t.nodes[parent].cut.Hyperplane())
		if t.nodes[parent].minus == id {
			sub = split.Minus()
		} else {
			sub = split.Plus()
		}
	}
	return sub
}
