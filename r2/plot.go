package r2

import (
	"image/color"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// PlotStyle sets the colors used to draw regions.
type PlotStyle struct {
	Fill, Stroke color.Color
	StrokeWidth  vg.Length
}

// DefaultPlotStyle draws regions in translucent blue.
var DefaultPlotStyle = PlotStyle{
	Fill:        color.RGBA{0x33, 0x66, 0xcc, 0x80},
	Stroke:      color.RGBA{0x1a, 0x33, 0x66, 0xff},
	StrokeWidth: vg.Points(1.0),
}

// Plot returns a plot of the region's polygons and holes. Unbounded regions return bsp.ErrUnbounded.
func (r *Region) Plot(title string, style PlotStyle) (*plot.Plot, error) {
	mp, err := r.MultiPolygon()
	if err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "X"
	p.Y.Label.Text = "Y"
	for _, polygon := range mp {
		rings := make([]plotter.XYer, 0, len(polygon))
		for _, ring := range polygon {
			xys := make(plotter.XYs, 0, len(ring))
			for _, q := range ring {
				xys = append(xys, plotter.XY{X: q[0], Y: q[1]})
			}
			rings = append(rings, xys)
		}
		poly, err := plotter.NewPolygon(rings...)
		if err != nil {
			return nil, err
		}
		poly.Color = style.Fill
		poly.LineStyle.Color = style.Stroke
		poly.LineStyle.Width = style.StrokeWidth
		p.Add(poly)
	}
	return p, nil
}

// WritePlot writes the region as an image of size w x h in the given format, such as "svg", "png" or "pdf".
func (r *Region) WritePlot(w io.Writer, width, height vg.Length, format, title string) error {
	p, err := r.Plot(title, DefaultPlotStyle)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(width, height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
