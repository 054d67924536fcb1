package r1

import (
	"math"
	"sort"

	"github.com/tdewolff/bsp"
)

// Region is a set of intervals on the real line represented by a tree.
type Region struct {
	*bsp.Region[Vector]
}

// Full returns the region covering the whole line.
func Full() *Region {
	return &Region{bsp.NewRegion[Vector](true)}
}

// Empty returns the empty region.
func Empty() *Region {
	return &Region{bsp.NewRegion[Vector](false)}
}

// FromIntervals returns the union of the intervals.
func FromIntervals(intervals ...Interval) *Region {
	r := Empty()
	for _, iv := range intervals {
		r.Add(iv)
	}
	return r
}

// Add adds the interval to the region.
func (r *Region) Add(iv Interval) {
	r.Region = r.Region.Union(iv.Region().Region)
}

// Copy returns an independent copy.
func (r *Region) Copy() *Region {
	return &Region{r.Region.Copy()}
}

// Union returns the points in r or q.
func (r *Region) Union(q *Region) *Region {
	return &Region{r.Region.Union(q.Region)}
}

// Intersection returns the points in both r and q.
func (r *Region) Intersection(q *Region) *Region {
	return &Region{r.Region.Intersection(q.Region)}
}

// Difference returns the points in r but not in q.
func (r *Region) Difference(q *Region) *Region {
	return &Region{r.Region.Difference(q.Region)}
}

// Xor returns the points in either r or q but not both.
func (r *Region) Xor(q *Region) *Region {
	return &Region{r.Region.Xor(q.Region)}
}

// Split divides the region by an oriented point.
func (r *Region) Split(splitter OrientedPoint) bsp.Split[*Region] {
	split := r.Region.Split(splitter)
	var minus, plus *Region
	if split.HasMinus() {
		minus = &Region{split.Minus()}
	}
	if split.HasPlus() {
		plus = &Region{split.Plus()}
	}
	return bsp.SplitOf(minus, split.HasMinus(), plus, split.HasPlus())
}

// NodeRegion returns the interval covered by a node, which is bounded by the cuts of its ancestors.
func (r *Region) NodeRegion(n bsp.Node[Vector, bsp.RegionLocation]) Interval {
	min, max := math.Inf(-1), math.Inf(1)
	for parent := n.Parent(); !parent.IsNil(); n, parent = parent, parent.Parent() {
		h := parent.Hyperplane().(OrientedPoint)
		loc := float64(h.loc)
		if n.IsMinus() == h.positiveFacing {
			// below the location
			max = math.Min(max, loc)
		} else {
			min = math.Max(min, loc)
		}
	}
	return Interval{min, max, r.precision()}
}

func (r *Region) precision() bsp.Precision {
	prec := bsp.DefaultPrecision
	r.Tree().Walk(func(n bsp.Node[Vector, bsp.RegionLocation]) bool {
		if n.IsInternal() {
			prec = n.Hyperplane().Precision()
		}
		return false
	})
	return prec
}

// Intervals returns the disjoint intervals of the region in ascending order. Touching intervals are merged.
func (r *Region) Intervals() []Interval {
	prec := r.precision()
	intervals := []Interval{}
	r.Tree().Leaves(func(n bsp.Node[Vector, bsp.RegionLocation]) {
		if n.Attr() != bsp.Inside {
			return
		}
		iv := r.NodeRegion(n)
		if prec.Gt(iv.min, iv.max) {
			return
		}
		if iv.max < iv.min {
			iv.max = iv.min
		}
		intervals = append(intervals, iv)
	})
	sort.SliceStable(intervals, func(i, j int) bool {
		return intervals[i].min < intervals[j].min
	})

	merged := intervals[:0]
	for _, iv := range intervals {
		if n := len(merged); 0 < n && prec.Gte(merged[n-1].max, iv.min) {
			merged[n-1].max = math.Max(merged[n-1].max, iv.max)
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// Size returns the total length of the region, which is infinite for unbounded regions.
func (r *Region) Size() float64 {
	size := 0.0
	for _, iv := range r.Intervals() {
		size += iv.Size()
	}
	return size
}

// Centroid returns the centroid of the region weighted by length. If all intervals are points, the mean of the points is returned. It returns false for empty and infinite regions.
func (r *Region) Centroid() (Vector, bool) {
	intervals := r.Intervals()
	if len(intervals) == 0 {
		return 0.0, false
	}
	size, sum, mid := 0.0, 0.0, 0.0
	for _, iv := range intervals {
		if iv.IsInfinite() {
			return 0.0, false
		}
		c, _ := iv.Centroid()
		size += iv.Size()
		sum += iv.Size() * float64(c)
		mid += float64(c)
	}
	if size == 0.0 {
		return Vector(mid / float64(len(intervals))), true
	}
	return Vector(sum / size), true
}

// Min returns the smallest point of the region, or +inf for an empty region.
func (r *Region) Min() float64 {
	if intervals := r.Intervals(); 0 < len(intervals) {
		return intervals[0].min
	}
	return math.Inf(1)
}

// Max returns the largest point of the region, or -inf for an empty region.
func (r *Region) Max() float64 {
	if intervals := r.Intervals(); 0 < len(intervals) {
		return intervals[len(intervals)-1].max
	}
	return math.Inf(-1)
}

// Project returns the boundary point closest to p, preferring the smaller one on ties. It returns false if the region has no finite boundary.
func (r *Region) Project(p Vector) (Vector, bool) {
	closest, dist := Vector(0.0), math.Inf(1)
	ok := false
	for _, iv := range r.Intervals() {
		for _, bound := range []float64{iv.min, iv.max} {
			if math.IsInf(bound, 0) {
				continue
			}
			if d := p.Distance(Vector(bound)); d < dist {
				closest, dist, ok = Vector(bound), d, true
			}
		}
	}
	return closest, ok
}

// Transform maps the region by t in place.
func (r *Region) Transform(t Affine) {
	r.Region.Transform(t)
}
