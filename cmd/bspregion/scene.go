package main

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r2"
	"gopkg.in/yaml.v3"
)

// Scene describes regions of the plane built from polygons and combined by boolean operators. Regions may only refer to regions defined before them. A missing epsilon defaults to bsp.Epsilon, an epsilon of zero compares exactly.
type Scene struct {
	Epsilon *float64    `yaml:"epsilon,omitempty"`
	Regions []RegionDef `yaml:"regions"`
	Output  string      `yaml:"output"`
}

// RegionDef defines a region either by geometry (polygon with optional holes, or rectangle) or by an operator over earlier regions.
type RegionDef struct {
	Name      string         `yaml:"name"`
	Polygon   [][2]float64   `yaml:"polygon,omitempty"`
	Holes     [][][2]float64 `yaml:"holes,omitempty"`
	Rectangle [][2]float64   `yaml:"rectangle,omitempty"`
	Op        string         `yaml:"op,omitempty"`
	Args      []string       `yaml:"args,omitempty"`
}

// ParseScene decodes a YAML scene.
func ParseScene(r io.Reader) (*Scene, error) {
	scene := &Scene{}
	if err := yaml.NewDecoder(r).Decode(scene); err != nil {
		return nil, errors.Wrap(err, "decode scene")
	}
	if scene.Epsilon == nil {
		epsilon := bsp.Epsilon
		scene.Epsilon = &epsilon
	}
	if len(scene.Regions) == 0 {
		return nil, errors.New("scene has no regions")
	}
	if scene.Output == "" {
		scene.Output = scene.Regions[len(scene.Regions)-1].Name
	}
	return scene, nil
}

// Precision returns the tolerance the regions are built with.
func (scene *Scene) Precision() (bsp.Precision, error) {
	if scene.Epsilon == nil {
		return bsp.DefaultPrecision, nil
	}
	return bsp.NewPrecision(*scene.Epsilon)
}

// Build builds all regions in order and returns them by name.
func (scene *Scene) Build() (map[string]*r2.Region, error) {
	prec, err := scene.Precision()
	if err != nil {
		return nil, err
	}

	regions := map[string]*r2.Region{}
	for i, def := range scene.Regions {
		if def.Name == "" {
			return nil, errors.Errorf("region %d has no name", i)
		} else if _, ok := regions[def.Name]; ok {
			return nil, errors.Errorf("region %s defined twice", def.Name)
		}
		r, err := def.build(prec, regions)
		if err != nil {
			return nil, errors.Wrapf(err, "region %s", def.Name)
		}
		regions[def.Name] = r
		log.WithFields(log.Fields{
			"region": def.Name,
			"op":     def.Op,
			"nodes":  r.Count(),
		}).Debug("built region")
	}
	if _, ok := regions[scene.Output]; !ok {
		return nil, errors.Errorf("output region %s not defined", scene.Output)
	}
	return regions, nil
}

// Result returns the output region.
func (scene *Scene) Result() (*r2.Region, error) {
	regions, err := scene.Build()
	if err != nil {
		return nil, err
	}
	return regions[scene.Output], nil
}

func (def RegionDef) build(prec bsp.Precision, regions map[string]*r2.Region) (*r2.Region, error) {
	if def.Op == "" {
		switch {
		case def.Polygon != nil:
			r, err := r2.Polygon(prec, vectors(def.Polygon)...)
			if err != nil {
				return nil, err
			}
			for _, hole := range def.Holes {
				h, err := r2.Polygon(prec, vectors(hole)...)
				if err != nil {
					return nil, errors.Wrap(err, "hole")
				}
				r = r.Difference(h)
			}
			return r, nil
		case def.Rectangle != nil:
			if len(def.Rectangle) != 2 {
				return nil, errors.Errorf("rectangle needs 2 corners, got %d", len(def.Rectangle))
			}
			ps := vectors(def.Rectangle)
			return r2.Rectangle(ps[0], ps[1], prec)
		}
		return nil, errors.New("no geometry or operator")
	}

	args := make([]*r2.Region, len(def.Args))
	for i, name := range def.Args {
		r, ok := regions[name]
		if !ok {
			return nil, errors.Errorf("unknown region %s", name)
		}
		args[i] = r
	}

	switch def.Op {
	case "complement":
		if len(args) != 1 {
			return nil, errors.Errorf("complement takes 1 argument, got %d", len(args))
		}
		r := args[0].Copy()
		r.Complement()
		return r, nil
	case "union", "intersection", "difference", "xor":
		if len(args) < 2 {
			return nil, errors.Errorf("%s takes at least 2 arguments, got %d", def.Op, len(args))
		}
		r := args[0]
		for _, q := range args[1:] {
			switch def.Op {
			case "union":
				r = r.Union(q)
			case "intersection":
				r = r.Intersection(q)
			case "difference":
				r = r.Difference(q)
			case "xor":
				r = r.Xor(q)
			}
		}
		return r, nil
	}
	return nil, errors.Errorf("unknown operator %s", def.Op)
}

func vectors(ps [][2]float64) []r2.Vector {
	vs := make([]r2.Vector, len(ps))
	for i, p := range ps {
		vs[i] = r2.Vector{X: p[0], Y: p[1]}
	}
	return vs
}
