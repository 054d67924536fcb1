package r3

import (
	"fmt"
	"math"
	"sort"

	"github.com/tdewolff/bsp"
)

// LinecastPoint is an intersection of a line with the boundary of a region. The normal points out of the region.
type LinecastPoint struct {
	Point    Vector
	Normal   Vector
	Abscissa float64
}

func (p LinecastPoint) String() string {
	return fmt.Sprintf("LinecastPoint(%v; %v; %g)", p.Point, p.Normal, p.Abscissa)
}

// Linecast returns the points where l crosses the boundary of the region between abscissas start and end, sorted by abscissa. Where boundary faces of different orientation meet, such as at an edge, a point is returned for every orientation. Faces parallel to l are ignored. Use math.Inf for an unrestricted line.
func (r *Region) Linecast(l Line, start, end float64) []LinecastPoint {
	points := []LinecastPoint{}
	for _, b := range r.Boundaries() {
		t, ok := b.plane.LineIntersection(l)
		if !ok || l.prec.Lt(t, start) || l.prec.Gt(t, end) {
			continue
		}
		p := l.PointAt(t)
		if b.Classify(p) == bsp.Outside {
			continue
		}
		points = append(points, LinecastPoint{p, b.plane.normal, t})
	}

	prec := l.prec
	sort.SliceStable(points, func(i, j int) bool {
		if c := prec.Compare(points[i].Abscissa, points[j].Abscissa); c != 0 {
			return c < 0
		}
		ni, nj := points[i].Normal, points[j].Normal
		if c := prec.Compare(ni.X, nj.X); c != 0 {
			return c < 0
		} else if c := prec.Compare(ni.Y, nj.Y); c != 0 {
			return c < 0
		}
		return prec.Lt(ni.Z, nj.Z)
	})

	// faces split into several pieces report the same point more than once
	filtered := points[:0]
	for _, p := range points {
		if n := len(filtered); 0 < n && filtered[n-1].Point.Eq(p.Point, prec) && filtered[n-1].Normal.Eq(p.Normal, prec) {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// LinecastFirst returns the boundary point with the smallest abscissa between start and end, false if there is none.
func (r *Region) LinecastFirst(l Line, start, end float64) (LinecastPoint, bool) {
	points := r.Linecast(l, start, end)
	if len(points) == 0 {
		return LinecastPoint{}, false
	}
	return points[0], true
}

// LinecastSegment returns the boundary points on the segment from p to q, with abscissas measured from p.
func (r *Region) LinecastSegment(p, q Vector) []LinecastPoint {
	l, err := LineFromPoints(p, q, r.precision())
	if err != nil {
		return nil
	}
	return r.Linecast(l, 0.0, l.Abscissa(q))
}

// LinecastRay returns the boundary points on the ray from p in direction dir.
func (r *Region) LinecastRay(p, dir Vector) []LinecastPoint {
	l, err := LineFromPointAndDirection(p, dir, r.precision())
	if err != nil {
		return nil
	}
	return r.Linecast(l, 0.0, math.Inf(1))
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
