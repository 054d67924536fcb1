package r2

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"
	"github.com/paulmach/orb/planar"
	"github.com/tdewolff/bsp"
)

// MultiPolygon returns the region as polygons with counter clockwise outer rings and clockwise holes. Every hole is added to the smallest outer ring containing it. It returns bsp.ErrUnbounded for unbounded regions.
func (r *Region) MultiPolygon() (orb.MultiPolygon, error) {
	paths, err := r.Paths()
	if err != nil {
		return nil, err
	}

	outers, holes := []orb.Ring{}, []orb.Ring{}
	for _, path := range paths {
		ring := make(orb.Ring, 0, len(path)+1)
		for _, p := range path {
			ring = append(ring, orb.Point{p.X, p.Y})
		}
		ring = append(ring, ring[0])
		if ring.Orientation() == orb.CCW {
			outers = append(outers, ring)
		} else {
			holes = append(holes, ring)
		}
	}

	mp := make(orb.MultiPolygon, len(outers))
	for i, outer := range outers {
		mp[i] = orb.Polygon{outer}
	}
	for _, hole := range holes {
		best, bestArea := -1, 0.0
		for i, outer := range outers {
			if !planar.RingContains(outer, hole[0]) && !ringTouches(outer, hole[0]) {
				continue
			}
			if area := planar.Area(outer); best == -1 || area < bestArea {
				best, bestArea = i, area
			}
		}
		if best != -1 {
			mp[best] = append(mp[best], hole)
		}
	}
	return mp, nil
}

func ringTouches(ring orb.Ring, p orb.Point) bool {
	for _, q := range ring {
		if q == p {
			return true
		}
	}
	return false
}

// FromPolygon returns the region enclosed by a polygon, where the first ring is the outer ring and the others are holes. Ring orientation is ignored.
func FromPolygon(polygon orb.Polygon, prec bsp.Precision) (*Region, error) {
	r := Empty()
	for i, ring := range polygon {
		vertices := make([]Vector, 0, len(ring))
		for _, p := range ring {
			vertices = append(vertices, Vector{p[0], p[1]})
		}
		if 1 < len(vertices) && vertices[0] == vertices[len(vertices)-1] {
			vertices = vertices[:len(vertices)-1]
		}
		q, err := Polygon(prec, vertices...)
		if err != nil {
			return nil, err
		}
		if i == 0 {
			r = q
		} else {
			r = r.Difference(q)
		}
	}
	return r, nil
}

// FromMultiPolygon returns the union of the polygons.
func FromMultiPolygon(mp orb.MultiPolygon, prec bsp.Precision) (*Region, error) {
	r := Empty()
	for _, polygon := range mp {
		q, err := FromPolygon(polygon, prec)
		if err != nil {
			return nil, err
		}
		r = r.Union(q)
	}
	return r, nil
}

// GeoJSON returns the region as a GeoJSON feature with the given properties.
func (r *Region) GeoJSON(properties map[string]interface{}) (*geojson.Feature, error) {
	mp, err := r.MultiPolygon()
	if err != nil {
		return nil, err
	}
	f := geojson.NewFeature(mp)
	for key, val := range properties {
		f.Properties[key] = val
	}
	return f, nil
}

// WKT returns the region as well-known text.
func (r *Region) WKT() (string, error) {
	mp, err := r.MultiPolygon()
	if err != nil {
		return "", err
	}
	return wkt.MarshalString(mp), nil
}
