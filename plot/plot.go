// Copyright ©2026 The Capa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package plot renders a solved capa segmentation: the raw series as
// a line, collective-anomaly windows as shaded regions, and point
// anomalies as markers. It follows gonum.org/v1/plot's own
// plot.Plot/plotter construction convention.
package plot

import (
	"image/color"

	"gonum.org/v1/capa"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Style controls the colors used to render a segmentation.
type Style struct {
	Line       color.Color
	Collective color.Color
	Point      color.Color
}

// DefaultStyle is used when Style is the zero value.
func DefaultStyle() Style {
	return Style{
		Line:       color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff},
		Collective: color.RGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0x60},
		Point:      color.RGBA{R: 0xd6, G: 0x3a, B: 0x3a, A: 0xff},
	}
}

// Segmentation builds a *plot.Plot rendering x with res's changepoints
// overlaid: a plotter.Line for the series, a semi-transparent
// plotter.Polygon per collective anomaly, and a plotter.Scatter point
// per point anomaly.
func Segmentation(x []float64, res capa.Result, style Style) (*plot.Plot, error) {
	if style == (Style{}) {
		style = DefaultStyle()
	}

	p := plot.New()
	p.Title.Text = "capa segmentation"
	p.X.Label.Text = "index"
	p.Y.Label.Text = "value"

	pts := make(plotter.XYs, len(x))
	for i, v := range x {
		pts[i].X = float64(i + 1)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = style.Line
	line.Width = vg.Points(1)
	p.Add(line)

	var pointXYs plotter.XYs
	for _, cp := range res.Changepoints {
		switch cp.Option {
		case 1:
			pointXYs = append(pointXYs, plotter.XY{X: float64(cp.Start), Y: x[cp.Start-1]})
		case 2:
			poly, err := collectiveRegion(x, cp, p)
			if err != nil {
				return nil, err
			}
			poly.Color = style.Collective
			p.Add(poly)
		}
	}
	if len(pointXYs) > 0 {
		scatter, err := plotter.NewScatter(pointXYs)
		if err != nil {
			return nil, err
		}
		scatter.Color = style.Point
		scatter.Radius = vg.Points(3)
		p.Add(scatter)
	}

	p.Legend.Top = true
	return p, nil
}

// collectiveRegion builds a shaded vertical band spanning [cp.Start,
// cp.End] across the full height of the plot's data range.
func collectiveRegion(x []float64, cp capa.Changepoint, p *plot.Plot) (*plotter.Polygon, error) {
	lo, hi := rangeOf(x)
	band := plotter.XYs{
		{X: float64(cp.Start), Y: lo},
		{X: float64(cp.End), Y: lo},
		{X: float64(cp.End), Y: hi},
		{X: float64(cp.Start), Y: hi},
	}
	return plotter.NewPolygon(band)
}

func rangeOf(x []float64) (lo, hi float64) {
	if len(x) == 0 {
		return 0, 0
	}
	lo, hi = x[0], x[0]
	for _, v := range x {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// Save renders the segmentation plot to path, inferring the format
// from its extension (.png, .svg, .pdf — gonum.org/v1/plot's own
// convention).
func Save(x []float64, res capa.Result, w, h vg.Length, path string) error {
	p, err := Segmentation(x, res, DefaultStyle())
	if err != nil {
		return err
	}
	return p.Save(w, h, path)
}
