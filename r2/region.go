package r2

import (
	"math"

	"github.com/pkg/errors"
	"github.com/tdewolff/bsp"
)

// Region is an area of the plane represented by a tree. It can be non-convex, have holes, be unbounded and consist of several pieces.
type Region struct {
	*bsp.Region[Vector]
}

// Full returns the whole plane.
func Full() *Region {
	return &Region{bsp.NewRegion[Vector](true)}
}

// Empty returns the empty region.
func Empty() *Region {
	return &Region{bsp.NewRegion[Vector](false)}
}

// FromBoundaries returns the region enclosed by the boundaries, which must have the interior on their minus side (left).
func FromBoundaries(boundaries ...LineSubset) *Region {
	r := Empty()
	for _, b := range boundaries {
		r.Insert(b, bsp.MinusInside)
	}
	return r
}

// Polygon returns the region enclosed by a simple polygon. Vertices may be given clockwise or counter clockwise.
func Polygon(prec bsp.Precision, vertices ...Vector) (*Region, error) {
	if signedArea(vertices) < 0.0 {
		reversed := make([]Vector, len(vertices))
		for i, v := range vertices {
			reversed[len(vertices)-1-i] = v
		}
		vertices = reversed
	}
	boundaries := []LineSubset{}
	for i, p := range vertices {
		q := vertices[(i+1)%len(vertices)]
		if p.Eq(q, prec) {
			continue
		}
		s, err := Segment(p, q, prec)
		if err != nil {
			return nil, err
		}
		boundaries = append(boundaries, s)
	}
	if len(boundaries) < 3 {
		return nil, errors.Wrapf(bsp.ErrDegenerate, "polygon with %d distinct vertices", len(boundaries))
	}
	return FromBoundaries(boundaries...), nil
}

// Rectangle returns the axis aligned rectangle with opposite corners a and b.
func Rectangle(a, b Vector, prec bsp.Precision) (*Region, error) {
	x0, x1 := math.Min(a.X, b.X), math.Max(a.X, b.X)
	y0, y1 := math.Min(a.Y, b.Y), math.Max(a.Y, b.Y)
	return Polygon(prec, Vector{x0, y0}, Vector{x1, y0}, Vector{x1, y1}, Vector{x0, y1})
}

func signedArea(vertices []Vector) float64 {
	area := 0.0
	for i, p := range vertices {
		area += p.PerpDot(vertices[(i+1)%len(vertices)])
	}
	return 0.5 * area
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

// Split divides the region by a line.
func (r *Region) Split(splitter Line) bsp.Split[*Region] {
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

// Transform maps the region by m in place.
func (r *Region) Transform(m Matrix) {
	r.Region.Transform(m)
}

// Boundaries returns the boundary segments and rays with the interior on their left.
func (r *Region) Boundaries() []LineSubset {
	boundaries := []LineSubset{}
	for _, b := range r.Region.Boundaries() {
		boundaries = append(boundaries, b.(LineSubset))
	}
	return boundaries
}

// Size returns the area, which is infinite for unbounded regions.
func (r *Region) Size() float64 {
	if r.IsEmpty() {
		return 0.0
	}
	boundaries := r.Boundaries()
	if len(boundaries) == 0 {
		return math.Inf(1)
	}
	for _, b := range boundaries {
		if b.IsInfinite() {
			return math.Inf(1)
		}
	}
	size, _ := boundaryMoments(boundaries)
	return size
}

// Centroid returns the centroid, false for empty or unbounded regions.
func (r *Region) Centroid() (Vector, bool) {
	boundaries := r.Boundaries()
	if len(boundaries) == 0 {
		return Vector{}, false
	}
	for _, b := range boundaries {
		if b.IsInfinite() {
			return Vector{}, false
		}
	}
	size, sum := boundaryMoments(boundaries)
	if size == 0.0 {
		return Vector{}, false
	}
	return sum.Div(3.0 * size), true
}

// NodeRegion returns the convex area covered by a node, which is bounded by the cuts of its ancestors.
func (r *Region) NodeRegion(n bsp.Node[Vector, bsp.RegionLocation]) ConvexArea {
	area := FullArea()
	for parent := n.Parent(); !parent.IsNil(); n, parent = parent, parent.Parent() {
		line := parent.Hyperplane().(Line)
		if !n.IsMinus() {
			line = line.reverse()
		}
		// keep the minus side of line
		split := area.Split(line)
		if split.HasMinus() {
			area = split.Minus()
		}
	}
	return area
}

// Paths returns the boundary as closed loops of vertices. Outer loops are counter clockwise and holes are clockwise. It returns bsp.ErrUnbounded for unbounded regions.
func (r *Region) Paths() ([][]Vector, error) {
	boundaries := r.Boundaries()
	for _, b := range boundaries {
		if b.IsInfinite() {
			return nil, errors.Wrap(bsp.ErrUnbounded, "region has infinite boundaries")
		}
	}
	if r.IsFull() {
		return nil, errors.Wrap(bsp.ErrUnbounded, "region is full")
	}
	return connectBoundaries(boundaries), nil
}

// connectBoundaries links finite boundaries into closed loops. At vertices shared by several loops the outgoing boundary with the smallest interior angle is followed.
func connectBoundaries(boundaries []LineSubset) [][]Vector {
	used := make([]bool, len(boundaries))
	paths := [][]Vector{}
	for i := range boundaries {
		if used[i] {
			continue
		}
		used[i] = true
		first, _ := boundaries[i].Start()
		path := []Vector{first}
		cur := boundaries[i]
		for {
			end, _ := cur.End()
			prec := cur.line.prec
			if end.Eq(first, prec) && 2 < len(path) {
				break
			}
			next := -1
			nextAngle := math.Inf(1)
			back := cur.line.dir.Neg().Angle()
			for j, b := range boundaries {
				if used[j] {
					continue
				}
				if start, _ := b.Start(); start.Eq(end, prec) {
					angle := angleNorm(back - b.line.dir.Angle())
					if angle < nextAngle {
						next, nextAngle = j, angle
					}
				}
			}
			if next == -1 {
				break
			}
			used[next] = true
			path = append(path, end)
			cur = boundaries[next]
		}
		if path = simplifyPath(path, boundaries[i].line.prec); 3 <= len(path) {
			paths = append(paths, path)
		}
	}
	return paths
}

// simplifyPath removes collinear vertices from a closed path.
func simplifyPath(path []Vector, prec bsp.Precision) []Vector {
	simplified := []Vector{}
	for i, p := range path {
		prev := path[(i+len(path)-1)%len(path)]
		next := path[(i+1)%len(path)]
		d0, d1 := p.Sub(prev), next.Sub(p)
		if prec.EqZero(d0.PerpDot(d1)/math.Max(d0.Length(), d1.Length())) && 0.0 < d0.Dot(d1) {
			continue
		}
		simplified = append(simplified, p)
	}
	return simplified
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}
