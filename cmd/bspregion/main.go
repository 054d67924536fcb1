package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/tdewolff/argp"
	"github.com/tdewolff/bsp"
	"github.com/tdewolff/bsp/r2"
	"gonum.org/v1/plot/vg"
)

type Info struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Input   string `index:"0" desc:"Scene file"`
}

type Export struct {
	Verbose bool   `short:"v" desc:"Verbose logging"`
	Format  string `short:"f" default:"geojson" desc:"Output format: geojson or wkt"`
	Output  string `short:"o" desc:"Output file"`
	Input   string `index:"0" desc:"Scene file"`
}

type Plot struct {
	Verbose bool    `short:"v" desc:"Verbose logging"`
	Width   float64 `short:"W" default:"10" desc:"Width in centimeters"`
	Height  float64 `short:"H" default:"10" desc:"Height in centimeters"`
	Title   string  `short:"t" desc:"Plot title"`
	Output  string  `short:"o" desc:"Output file, the extension sets the format (svg, png, pdf, eps)"`
	Input   string  `index:"0" desc:"Scene file"`
}

type Classify struct {
	Verbose bool    `short:"v" desc:"Verbose logging"`
	X       float64 `short:"x" desc:"X coordinate"`
	Y       float64 `short:"y" desc:"Y coordinate"`
	Input   string  `index:"0" desc:"Scene file"`
}

func main() {
	root := argp.NewCmd(&Info{}, "Build, combine and export planar regions using BSP trees")
	root.AddCmd(&Export{}, "export", "Export the output region as GeoJSON or WKT")
	root.AddCmd(&Plot{}, "plot", "Plot the output region")
	root.AddCmd(&Classify{}, "classify", "Classify a point against the output region")
	root.Parse()
	root.PrintHelp()
}

func loadScene(filename string, verbose bool) (*r2.Region, error) {
	if verbose {
		log.SetLevel(log.DebugLevel)
	}
	if filename == "" {
		return nil, argp.ShowUsage
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scene, err := ParseScene(f)
	if err != nil {
		return nil, err
	}
	log.WithFields(log.Fields{
		"epsilon": *scene.Epsilon,
		"regions": len(scene.Regions),
	}).Debug("parsed scene")
	return scene.Result()
}

func (cmd *Info) Run() error {
	r, err := loadScene(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	return writeInfo(os.Stdout, r)
}

func writeInfo(w io.Writer, r *r2.Region) error {
	fmt.Fprintln(w, "Nodes:", r.Count())
	fmt.Fprintln(w, "Height:", r.Height())
	switch {
	case r.IsEmpty():
		fmt.Fprintln(w, "Region: empty")
		return nil
	case r.IsFull():
		fmt.Fprintln(w, "Region: full")
		return nil
	}
	fmt.Fprintln(w, "Area:", r.Size())
	fmt.Fprintln(w, "Perimeter:", r.BoundarySize())
	if c, ok := r.Centroid(); ok {
		fmt.Fprintln(w, "Centroid:", c)
	}
	paths, err := r.Paths()
	if errors.Is(err, bsp.ErrUnbounded) {
		fmt.Fprintln(w, "Region: unbounded")
		return nil
	} else if err != nil {
		return err
	}
	fmt.Fprintln(w, "Loops:", len(paths))
	return nil
}

func (cmd *Export) Run() error {
	r, err := loadScene(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}

	var b []byte
	switch strings.ToLower(cmd.Format) {
	case "geojson":
		f, err := r.GeoJSON(map[string]interface{}{"area": r.Size()})
		if err != nil {
			return err
		}
		if b, err = json.Marshal(f); err != nil {
			return err
		}
	case "wkt":
		s, err := r.WKT()
		if err != nil {
			return err
		}
		b = []byte(s)
	default:
		return fmt.Errorf("unknown format %s", cmd.Format)
	}

	if cmd.Output == "" || cmd.Output == "-" {
		_, err = fmt.Println(string(b))
		return err
	}
	log.WithFields(log.Fields{"output": cmd.Output, "format": cmd.Format}).Info("export region")
	return os.WriteFile(cmd.Output, b, 0644)
}

func (cmd *Plot) Run() error {
	if cmd.Output == "" {
		return fmt.Errorf("must pass output file")
	}
	format := strings.TrimPrefix(filepath.Ext(cmd.Output), ".")
	if format != "svg" && format != "png" && format != "pdf" && format != "eps" {
		return fmt.Errorf("output extension must be SVG, PNG, PDF, or EPS")
	}

	r, err := loadScene(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}

	w, err := os.Create(cmd.Output)
	if err != nil {
		return err
	}
	defer w.Close()

	log.WithFields(log.Fields{"output": cmd.Output, "nodes": r.Count()}).Info("plot region")
	return r.WritePlot(w, vg.Length(cmd.Width)*vg.Centimeter, vg.Length(cmd.Height)*vg.Centimeter, format, cmd.Title)
}

func (cmd *Classify) Run() error {
	r, err := loadScene(cmd.Input, cmd.Verbose)
	if err != nil {
		return err
	}
	fmt.Println(r.Classify(r2.Vector{X: cmd.X, Y: cmd.Y}))
	return nil
}
