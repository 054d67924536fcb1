package bsp

import (
	"fmt"
	"strings"
)

const nilID int32 = -1

type node[P any, A comparable] struct {
	cut                 ConvexSubset[P] // nil for leaves
	parent, minus, plus int32
	depth               int32
	gen                 uint32
	free                bool
	attr                A
}

func (n *node[P, A]) isLeaf() bool {
	return n.cut == nil
}

// Tree is a binary space partitioning tree. Every node is either a leaf carrying an attribute, or an internal node carrying a cut and a minus and plus child. Nodes are stored in an arena owned by the tree and are referenced by index, so that a tree never shares nodes with another tree. A tree is not safe for concurrent mutation.
type Tree[P Point[P], A comparable] struct {
	nodes []node[P, A]
	free  []int32
	root  int32
}

// NewTree returns a tree consisting of a single leaf with the given attribute.
func NewTree[P Point[P], A comparable](attr A) *Tree[P, A] {
	t := &Tree[P, A]{}
	t.root = t.alloc(attr)
	return t
}

func (t *Tree[P, A]) alloc(attr A) int32 {
	if n := len(t.free); 0 < n {
		id := t.free[n-1]
		t.free = t.free[:n-1]
		t.nodes[id] = node[P, A]{
			parent: nilID,
			minus:  nilID,
			plus:   nilID,
			gen:    t.nodes[id].gen,
			attr:   attr,
		}
		return id
	}
	t.nodes = append(t.nodes, node[P, A]{
		parent: nilID,
		minus:  nilID,
		plus:   nilID,
		attr:   attr,
	})
	return int32(len(t.nodes) - 1)
}

// release frees the subtree at id, invalidating all handles to its nodes.
func (t *Tree[P, A]) release(id int32) {
	if minus, plus := t.nodes[id].minus, t.nodes[id].plus; minus != nilID {
		t.release(minus)
		t.release(plus)
	}
	t.nodes[id] = node[P, A]{
		parent: nilID,
		minus:  nilID,
		plus:   nilID,
		gen:    t.nodes[id].gen + 1,
		free:   true,
	}
	t.free = append(t.free, id)
}

// setSubtree turns the node into an internal node with the given cut, replacing any existing children.
func (t *Tree[P, A]) setSubtree(id int32, cut ConvexSubset[P], rule CutRule[A]) {
	t.clearSubtree(id)
	attrMinus, attrPlus := rule(t.nodes[id].attr)
	minus, plus := t.alloc(attrMinus), t.alloc(attrPlus)
	depth := t.nodes[id].depth + 1
	t.nodes[minus].parent, t.nodes[minus].depth = id, depth
	t.nodes[plus].parent, t.nodes[plus].depth = id, depth
	t.nodes[id].cut = cut
	t.nodes[id].minus = minus
	t.nodes[id].plus = plus
}

func (t *Tree[P, A]) clearSubtree(id int32) bool {
	if t.nodes[id].isLeaf() {
		return false
	}
	t.release(t.nodes[id].minus)
	t.release(t.nodes[id].plus)
	t.nodes[id].cut = nil
	t.nodes[id].minus = nilID
	t.nodes[id].plus = nilID
	return true
}

// check returns the arena index of n and panics if n is not a live node of t.
func (t *Tree[P, A]) check(n Node[P, A]) int32 {
	if n.tree == nil {
		panic(structureErrorf(nilID, "nil node"))
	} else if n.tree != t {
		panic(structureErrorf(n.id, "node belongs to another tree"))
	}
	return n.index()
}

func (t *Tree[P, A]) handle(id int32) Node[P, A] {
	if id == nilID {
		return Node[P, A]{}
	}
	return Node[P, A]{t, id, t.nodes[id].gen}
}

// Root returns the root node.
func (t *Tree[P, A]) Root() Node[P, A] {
	return t.handle(t.root)
}

// Count returns the number of nodes.
func (t *Tree[P, A]) Count() int {
	return len(t.nodes) - len(t.free)
}

// Height returns the largest depth of any node, which is zero for a tree with only a root.
func (t *Tree[P, A]) Height() int {
	return t.height(t.root)
}

func (t *Tree[P, A]) height(id int32) int {
	if t.nodes[id].isLeaf() {
		return 0
	}
	return 1 + max(t.height(t.nodes[id].minus), t.height(t.nodes[id].plus))
}

func (t *Tree[P, A]) count(id int32) int {
	if t.nodes[id].isLeaf() {
		return 1
	}
	return 1 + t.count(t.nodes[id].minus) + t.count(t.nodes[id].plus)
}

// Walk visits all nodes in pre-order, the minus child before the plus child. It does not descend into the children of a node when fn returns false.
func (t *Tree[P, A]) Walk(fn func(Node[P, A]) bool) {
	t.walk(t.root, fn)
}

func (t *Tree[P, A]) walk(id int32, fn func(Node[P, A]) bool) {
	if !fn(t.handle(id)) {
		return
	}
	if n := t.nodes[id]; !n.isLeaf() {
		t.walk(n.minus, fn)
		t.walk(n.plus, fn)
	}
}

// Leaves visits all leaves from the minus-most to the plus-most leaf.
func (t *Tree[P, A]) Leaves(fn func(Node[P, A])) {
	t.Walk(func(n Node[P, A]) bool {
		if n.IsLeaf() {
			fn(n)
		}
		return true
	})
}

// WalkFrom visits all nodes in-order as seen from p: at every internal node the subtree on the far side of the cut is visited first, then the node itself and then the subtree on the side of p. Points on a cut are treated as being on its minus side. It stops when fn returns false.
func (t *Tree[P, A]) WalkFrom(p P, fn func(Node[P, A]) bool) {
	t.walkFrom(t.root, p, fn)
}

func (t *Tree[P, A]) walkFrom(id int32, p P, fn func(Node[P, A]) bool) bool {
	n := t.nodes[id]
	if n.isLeaf() {
		return fn(t.handle(id))
	}
	near, far := n.minus, n.plus
	if n.cut.Hyperplane().Classify(p) == Plus {
		near, far = far, near
	}
	return t.walkFrom(far, p, fn) && fn(t.handle(id)) && t.walkFrom(near, p, fn)
}

// SetAttr sets the attribute of a node.
func (t *Tree[P, A]) SetAttr(n Node[P, A], attr A) {
	t.nodes[t.check(n)].attr = attr
}

// MapAttrs replaces the attribute of every leaf by f applied to it.
func (t *Tree[P, A]) MapAttrs(f func(A) A) {
	for id := range t.nodes {
		if n := &t.nodes[id]; !n.free && n.isLeaf() {
			n.attr = f(n.attr)
		}
	}
}

// FindNode returns the node containing p. Points on a cut are resolved by rule, with StopAtCut returning the node of the cut.
func (t *Tree[P, A]) FindNode(p P, rule FindRule) Node[P, A] {
	id := t.root
	for !t.nodes[id].isLeaf() {
		n := t.nodes[id]
		switch n.cut.Hyperplane().Classify(p) {
		case Minus:
			id = n.minus
		case Plus:
			id = n.plus
		default:
			if rule == StopAtCut {
				return t.handle(id)
			} else if rule == PreferMinus {
				id = n.minus
			} else {
				id = n.plus
			}
		}
	}
	return t.handle(id)
}

// Transform maps all cuts by tr. The tree structure is unchanged.
func (t *Tree[P, A]) Transform(tr Transform[P]) {
	for id := range t.nodes {
		if n := &t.nodes[id]; !n.free && !n.isLeaf() {
			n.cut = n.cut.Transform(tr)
		}
	}
}

// Copy returns a deep copy of the tree.
func (t *Tree[P, A]) Copy() *Tree[P, A] {
	return t.extract(t.root)
}

// extract returns a new tree holding a copy of the subtree at id.
func (t *Tree[P, A]) extract(id int32) *Tree[P, A] {
	dst := &Tree[P, A]{
		nodes: make([]node[P, A], 0, t.count(id)),
	}
	dst.root = dst.importSubtree(t, id)
	dst.fixup(dst.root, nilID, 0)
	return dst
}

// importSubtree copies the subtree at id of src into the arena of t, without setting parents and depths.
func (t *Tree[P, A]) importSubtree(src *Tree[P, A], id int32) int32 {
	n := src.nodes[id]
	dst := t.alloc(n.attr)
	if !n.isLeaf() {
		minus := t.importSubtree(src, n.minus)
		plus := t.importSubtree(src, n.plus)
		t.nodes[dst].cut = n.cut
		t.nodes[dst].minus = minus
		t.nodes[dst].plus = plus
	}
	return dst
}

func (t *Tree[P, A]) fixup(id, parent, depth int32) {
	n := &t.nodes[id]
	n.parent, n.depth = parent, depth
	if !n.isLeaf() {
		minus, plus := n.minus, n.plus
		t.fixup(minus, id, depth+1)
		t.fixup(plus, id, depth+1)
	}
}

// Condense removes cuts whose children are leaves with equal attributes, repeatedly. It returns true if the tree was changed.
func (t *Tree[P, A]) Condense() bool {
	return t.condense(t.root)
}

func (t *Tree[P, A]) condense(id int32) bool {
	n := t.nodes[id]
	if n.isLeaf() {
		return false
	}
	changed := t.condense(n.minus)
	changed = t.condense(n.plus) || changed
	minus, plus := t.nodes[n.minus], t.nodes[n.plus]
	if minus.isLeaf() && plus.isLeaf() && minus.attr == plus.attr {
		t.clearSubtree(id)
		t.nodes[id].attr = minus.attr
		return true
	}
	return changed
}

// Validate checks the structural invariants of the tree: internal nodes have a cut and two children, leaves have neither, and parents and depths are consistent.
func (t *Tree[P, A]) Validate() error {
	seen := make([]bool, len(t.nodes))
	if t.root < 0 || int(t.root) >= len(t.nodes) {
		return structureErrorf(t.root, "invalid root")
	} else if t.nodes[t.root].parent != nilID || t.nodes[t.root].depth != 0 {
		return structureErrorf(t.root, "root has a parent or non-zero depth")
	}
	var validate func(int32) error
	validate = func(id int32) error {
		if id < 0 || int(id) >= len(t.nodes) {
			return structureErrorf(id, "invalid index")
		} else if seen[id] {
			return structureErrorf(id, "node referenced twice")
		}
		seen[id] = true
		n := t.nodes[id]
		if n.free {
			return structureErrorf(id, "reachable node was released")
		} else if (n.cut == nil) != (n.minus == nilID) || (n.minus == nilID) != (n.plus == nilID) {
			return structureErrorf(id, "node must have either a cut and two children or none")
		} else if n.isLeaf() {
			return nil
		}
		for _, child := range []int32{n.minus, n.plus} {
			if 0 <= child && int(child) < len(t.nodes) && (t.nodes[child].parent != id || t.nodes[child].depth != n.depth+1) {
				return structureErrorf(child, "inconsistent parent or depth")
			}
			if err := validate(child); err != nil {
				return err
			}
		}
		return nil
	}
	if err := validate(t.root); err != nil {
		return err
	}
	reachable := 0
	for _, ok := range seen {
		if ok {
			reachable++
		}
	}
	if reachable+len(t.free) != len(t.nodes) {
		return structureErrorf(nilID, "%d nodes are neither reachable nor released", len(t.nodes)-reachable-len(t.free))
	}
	return nil
}

func (t *Tree[P, A]) String() string {
	sb := strings.Builder{}
	t.Walk(func(n Node[P, A]) bool {
		sb.WriteString(strings.Repeat("    ", n.Depth()))
		if n.Depth() != 0 {
			if n.IsMinus() {
				sb.WriteString("- ")
			} else {
				sb.WriteString("+ ")
			}
		}
		sb.WriteString(n.String())
		sb.WriteString("\n")
		return true
	})
	return sb.String()
}

////////////////////////////////////////////////////////////////

// Node is a handle to a node of a tree. Handles are invalidated when their node is removed from the tree, after which using them panics with a *StructureError. The zero Node is the nil node, returned for the children of leaves and the parent of the root.
type Node[P Point[P], A comparable] struct {
	tree *Tree[P, A]
	id   int32
	gen  uint32
}

func (n Node[P, A]) index() int32 {
	if n.tree == nil {
		panic(structureErrorf(nilID, "nil node"))
	} else if n.id < 0 || len(n.tree.nodes) <= int(n.id) || n.tree.nodes[n.id].free || n.tree.nodes[n.id].gen != n.gen {
		panic(structureErrorf(n.id, "node was removed from its tree"))
	}
	return n.id
}

func (n Node[P, A]) data() *node[P, A] {
	return &n.tree.nodes[n.index()]
}

// IsNil returns true for the nil node.
func (n Node[P, A]) IsNil() bool {
	return n.tree == nil
}

// Tree returns the tree owning the node.
func (n Node[P, A]) Tree() *Tree[P, A] {
	return n.tree
}

// IsLeaf returns true if the node has no cut.
func (n Node[P, A]) IsLeaf() bool {
	return n.data().isLeaf()
}

// IsInternal returns true if the node has a cut and children.
func (n Node[P, A]) IsInternal() bool {
	return !n.data().isLeaf()
}

// IsRoot returns true if the node has no parent.
func (n Node[P, A]) IsRoot() bool {
	return n.data().parent == nilID
}

// IsMinus returns true if the node is the minus child of its parent.
func (n Node[P, A]) IsMinus() bool {
	parent := n.data().parent
	return parent != nilID && n.tree.nodes[parent].minus == n.id
}

// IsPlus returns true if the node is the plus child of its parent.
func (n Node[P, A]) IsPlus() bool {
	parent := n.data().parent
	return parent != nilID && n.tree.nodes[parent].plus == n.id
}

// Cut returns the cut of an internal node or nil for leaves.
func (n Node[P, A]) Cut() ConvexSubset[P] {
	return n.data().cut
}

// Hyperplane returns the hyperplane of the cut or nil for leaves.
func (n Node[P, A]) Hyperplane() Hyperplane[P] {
	if cut := n.data().cut; cut != nil {
		return cut.Hyperplane()
	}
	return nil
}

// Minus returns the minus child, or the nil node for leaves.
func (n Node[P, A]) Minus() Node[P, A] {
	return n.tree.handle(n.data().minus)
}

// Plus returns the plus child, or the nil node for leaves.
func (n Node[P, A]) Plus() Node[P, A] {
	return n.tree.handle(n.data().plus)
}

// Parent returns the parent, or the nil node for the root.
func (n Node[P, A]) Parent() Node[P, A] {
	return n.tree.handle(n.data().parent)
}

// Depth returns the number of ancestors.
func (n Node[P, A]) Depth() int {
	return int(n.data().depth)
}

// Attr returns the attribute of a leaf. For internal nodes it returns the attribute the node had as a leaf, which is used by cut rules.
func (n Node[P, A]) Attr() A {
	return n.data().attr
}

// Count returns the number of nodes in the subtree.
func (n Node[P, A]) Count() int {
	return n.tree.count(n.index())
}

// Height returns the height of the subtree.
func (n Node[P, A]) Height() int {
	return n.tree.height(n.index())
}

func (n Node[P, A]) String() string {
	if n.IsNil() {
		return "Node(nil)"
	} else if d := n.data(); !d.isLeaf() {
		return fmt.Sprintf("Node(%d; cut=%v)", n.id, d.cut)
	}
	return fmt.Sprintf("Node(%d; attr=%v)", n.id, n.data().attr)
}
