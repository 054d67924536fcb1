package bsp_test

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r1"
	"github.com/tdewolff/test"
)

var prec = bsp.Precision{1e-6}

func cutTree(loc float64, minus, plus int) *bsp.Tree[r1.Vector, int] {
	tree := bsp.NewTree[r1.Vector, int](0)
	tree.SetCut(tree.Root(), r1.PositiveFacing(loc, prec).Span(), func(int) (int, int) {
		return minus, plus
	})
	return tree
}

func expectStructureError(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(*bsp.StructureError)
		test.That(t, ok, "expected panic with *StructureError")
		if ok {
			test.That(t, errors.Is(err, bsp.ErrStructure))
		}
	}()
	f()
}

func TestTree(t *testing.T) {
	tree := bsp.NewTree[r1.Vector, int](0)
	test.T(t, tree.Count(), 1)
	test.T(t, tree.Height(), 0)
	root := tree.Root()
	test.That(t, root.IsLeaf())
	test.That(t, root.IsRoot())
	test.That(t, root.Parent().IsNil())
	test.That(t, root.Minus().IsNil())
	test.That(t, root.Cut() == nil)
	test.That(t, root.Hyperplane() == nil)

	tree = cutTree(0.0, 1, 2)
	root = tree.Root()
	test.Error(t, tree.Validate())
	test.T(t, tree.Count(), 3)
	test.T(t, tree.Height(), 1)
	test.That(t, root.IsInternal())
	test.That(t, root.Minus().IsMinus())
	test.That(t, root.Plus().IsPlus())
	test.That(t, !root.Plus().IsMinus())
	test.T(t, root.Minus().Attr(), 1)
	test.T(t, root.Plus().Attr(), 2)
	test.T(t, root.Minus().Depth(), 1)
	test.That(t, root.Minus().Parent() == root)
	test.That(t, root.Minus().Tree() == tree)
	test.T(t, root.Count(), 3)
	test.T(t, root.Minus().Count(), 1)

	tree.SetCut(root.Plus(), r1.PositiveFacing(1.0, prec).Span(), bsp.Inherit[int])
	test.Error(t, tree.Validate())
	test.T(t, tree.Count(), 5)
	test.T(t, tree.Height(), 2)
	test.T(t, root.Plus().Height(), 1)

	visited, leaves := 0, 0
	tree.Walk(func(bsp.Node[r1.Vector, int]) bool {
		visited++
		return true
	})
	tree.Leaves(func(bsp.Node[r1.Vector, int]) {
		leaves++
	})
	test.T(t, visited, 5)
	test.T(t, leaves, 3)

	visited = 0
	tree.Walk(func(n bsp.Node[r1.Vector, int]) bool {
		visited++
		return n.IsRoot()
	})
	test.T(t, visited, 3)
	test.That(t, strings.Contains(tree.String(), "attr=1"))
}

func TestTreeFindNode(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	root := tree.Root()
	test.That(t, tree.FindNode(r1.Vector(-1.0), bsp.StopAtCut) == root.Minus())
	test.That(t, tree.FindNode(r1.Vector(1.0), bsp.StopAtCut) == root.Plus())
	test.That(t, tree.FindNode(r1.Vector(0.0), bsp.StopAtCut) == root)
	test.That(t, tree.FindNode(r1.Vector(0.0), bsp.PreferMinus) == root.Minus())
	test.That(t, tree.FindNode(r1.Vector(0.0), bsp.PreferPlus) == root.Plus())
	test.That(t, tree.FindNode(r1.Vector(1e-9), bsp.StopAtCut) == root)
}

func TestTreeStaleNode(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	root := tree.Root()
	minus := root.Minus()
	test.That(t, tree.ClearCut(root))
	test.That(t, !tree.ClearCut(root))
	test.T(t, tree.Count(), 1)
	test.Error(t, tree.Validate())
	expectStructureError(t, func() { minus.Attr() })

	// released nodes are reused but old handles stay invalid
	tree.SetCut(root, r1.PositiveFacing(0.0, prec).Span(), bsp.Inherit[int])
	expectStructureError(t, func() { minus.IsLeaf() })
	expectStructureError(t, func() { tree.SetAttr(minus, 5) })

	other := cutTree(0.0, 1, 2)
	expectStructureError(t, func() { tree.SetAttr(other.Root(), 5) })
	expectStructureError(t, func() { tree.ClearCut(bsp.Node[r1.Vector, int]{}) })
}

func TestTreeInsertCut(t *testing.T) {
	tree := bsp.NewTree[r1.Vector, int](0)
	root := tree.Root()
	test.That(t, tree.InsertCut(root, r1.PositiveFacing(0.0, prec), func(int) (int, int) { return 1, 2 }))
	test.That(t, !tree.InsertCut(root.Minus(), r1.PositiveFacing(5.0, prec), bsp.Inherit[int]))
	test.That(t, root.Minus().IsLeaf())
	test.That(t, tree.TrimToNode(root.Minus(), r1.PositiveFacing(5.0, prec).Span()) == nil)
	test.That(t, tree.TrimToNode(root.Plus(), r1.PositiveFacing(5.0, prec).Span()) != nil)
	test.That(t, tree.InsertCut(root.Plus(), r1.PositiveFacing(5.0, prec), bsp.Inherit[int]))
	test.T(t, tree.Count(), 5)

	// replacing the root cut removes the subtree
	plus := root.Plus()
	test.That(t, tree.InsertCut(root, r1.NegativeFacing(1.0, prec), bsp.Inherit[int]))
	test.T(t, tree.Count(), 3)
	expectStructureError(t, func() { plus.Attr() })

	tree.SetCut(root, nil, bsp.Inherit[int])
	test.T(t, tree.Count(), 1)
	test.Error(t, tree.Validate())
}

func TestTreeAttrs(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	tree.SetAttr(tree.Root().Minus(), 7)
	test.T(t, tree.Root().Minus().Attr(), 7)
	tree.MapAttrs(func(a int) int { return 10 * a })
	test.T(t, tree.Root().Minus().Attr(), 70)
	test.T(t, tree.Root().Plus().Attr(), 20)

	tree.SetAttr(tree.Root().Plus(), 70)
	test.That(t, tree.Condense())
	test.That(t, !tree.Condense())
	test.T(t, tree.Count(), 1)
	test.T(t, tree.Root().Attr(), 70)

	tree = cutTree(0.0, 1, 1)
	tree.SetCut(tree.Root().Plus(), r1.PositiveFacing(1.0, prec).Span(), bsp.Inherit[int])
	test.That(t, tree.Condense())
	test.T(t, tree.Count(), 1)
}

func TestTreeCopy(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	cp := tree.Copy()
	test.Error(t, cp.Validate())
	cp.SetAttr(cp.Root().Minus(), 5)
	cp.ClearCut(cp.Root().Minus())
	test.T(t, tree.Root().Minus().Attr(), 1)
	test.T(t, cp.Root().Minus().Attr(), 5)
	expectStructureError(t, func() { tree.SetAttr(cp.Root(), 0) })
}

func TestTreeTransform(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	tree.Transform(r1.Identity.Translate(2.0))
	test.T(t, tree.FindNode(r1.Vector(1.0), bsp.StopAtCut).Attr(), 1)
	test.T(t, tree.FindNode(r1.Vector(3.0), bsp.StopAtCut).Attr(), 2)

	// reflections keep the image of the minus side on the minus side
	tree.Transform(r1.Identity.Scaled(-1.0))
	test.T(t, tree.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), 1)
	test.T(t, tree.FindNode(r1.Vector(-3.0), bsp.StopAtCut).Attr(), 2)
}

func TestTreeMerge(t *testing.T) {
	a := cutTree(0.0, 1, 0)
	b := cutTree(1.0, 10, 20)
	sum := bsp.MergeOp[int]{Combine: func(a, b int) int { return a + b }}
	c := bsp.Merge(a, b, sum)
	test.Error(t, c.Validate())
	test.T(t, c.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), 11)
	test.T(t, c.FindNode(r1.Vector(0.5), bsp.StopAtCut).Attr(), 10)
	test.T(t, c.FindNode(r1.Vector(2.0), bsp.StopAtCut).Attr(), 20)

	// inputs are untouched
	test.T(t, a.Count(), 3)
	test.T(t, b.Count(), 3)
	test.T(t, a.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), 1)

	// cuts separating equal attributes are removed
	c = bsp.Merge(a, cutTree(0.0, 0, 1), sum)
	test.T(t, c.Count(), 1)
	test.T(t, c.Root().Attr(), 1)
}

func TestTreeSplit(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	minus, plus := tree.Split(r1.PositiveFacing(5.0, prec), -1)
	test.Error(t, minus.Validate())
	test.Error(t, plus.Validate())
	test.T(t, minus.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), 1)
	test.T(t, minus.FindNode(r1.Vector(3.0), bsp.StopAtCut).Attr(), 2)
	test.T(t, minus.FindNode(r1.Vector(6.0), bsp.StopAtCut).Attr(), -1)
	test.T(t, plus.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), -1)
	test.T(t, plus.FindNode(r1.Vector(3.0), bsp.StopAtCut).Attr(), -1)
	test.T(t, plus.FindNode(r1.Vector(6.0), bsp.StopAtCut).Attr(), 2)
	test.T(t, tree.Count(), 3)

	// splitting on an existing cut
	minus, plus = tree.Split(r1.NegativeFacing(0.0, prec), -1)
	test.T(t, minus.FindNode(r1.Vector(1.0), bsp.StopAtCut).Attr(), 2)
	test.T(t, minus.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), -1)
	test.T(t, plus.FindNode(r1.Vector(-1.0), bsp.StopAtCut).Attr(), 1)
}

func TestTreeWalkFrom(t *testing.T) {
	tree := cutTree(0.0, 1, 2)
	tree.SetCut(tree.Root().Plus(), r1.PositiveFacing(1.0, prec).Span(), func(int) (int, int) { return 3, 4 })

	attrs := func(p float64) []int {
		order := []int{}
		tree.WalkFrom(r1.Vector(p), func(n bsp.Node[r1.Vector, int]) bool {
			if n.IsLeaf() {
				order = append(order, n.Attr())
			}
			return true
		})
		return order
	}
	test.T(t, attrs(-1.0), []int{4, 3, 1})
	test.T(t, attrs(0.5), []int{1, 4, 3})
	test.T(t, attrs(2.0), []int{1, 3, 4})

	visited := 0
	tree.WalkFrom(r1.Vector(2.0), func(bsp.Node[r1.Vector, int]) bool {
		visited++
		return visited < 2
	})
	test.T(t, visited, 2)
}
