package plot

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// defaultColor matches the original tool's DEFAULT_COLOR ('#ED823D') in
// visualization/plotter.py.
var defaultColor = color.RGBA{R: 0xed, G: 0x82, B: 0x3d, A: 0xff}

// ScatterPNG renders (xs, ys) as a scatter plot and writes it as a PNG to
// path. xs and ys must have equal length.
func ScatterPNG(xs, ys []float32, path string) error {
	if len(xs) != len(ys) {
		return fmt.Errorf("plot: ScatterPNG: len(xs)=%d != len(ys)=%d", len(xs), len(ys))
	}

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = float64(xs[i])
		pts[i].Y = float64(ys[i])
	}

	p := plot.New()
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return fmt.Errorf("plot: ScatterPNG: %w", err)
	}
	scatter.GlyphStyle.Color = defaultColor
	scatter.GlyphStyle.Radius = vg.Points(0.75)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}

	p.Add(scatter)

	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
