// Package scree: cumulative explained-variance curve.

package scree

import (
	"errors"
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/pcakit/pca"
)

// ErrNilComponents is returned when no ranked spectrum is supplied.
var ErrNilComponents = errors.New("scree: nil ranked components")

// Plot geometry defaults; override via WithSize.
const (
	DefaultWidth  = 6 * vg.Inch
	DefaultHeight = 4 * vg.Inch
)

const (
	panicThresholdInvalid = "scree: WithThreshold: t must be in (0, 1]"
	panicSizeInvalid      = "scree: WithSize: dimensions must be positive"
)

// Option configures rendering. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*options)

type options struct {
	threshold float64 // 0 ⇒ no rule line
	width     vg.Length
	height    vg.Length
}

// WithThreshold draws a horizontal rule at t, visualizing the cumulative
// cutoff a CumulativeThreshold selection would apply.
func WithThreshold(t float64) Option {
	if !(t > 0 && t <= 1) {
		panic(panicThresholdInvalid)
	}

	return func(o *options) { o.threshold = t }
}

// WithSize overrides the output canvas size.
func WithSize(w, h vg.Length) Option {
	if w <= 0 || h <= 0 {
		panic(panicSizeInvalid)
	}

	return func(o *options) {
		o.width = w
		o.height = h
	}
}

// Point is one step of the scree curve: after Components components, the
// cumulative explained-variance ratio is Cumulative.
type Point struct {
	Components int
	Cumulative float64
}

// Curve extracts the plot-agnostic (k, cumulative) series, 1-based in k.
// Callers with their own rendering stack need nothing else from here.
func Curve(ranked *pca.RankedComponents) ([]Point, error) {
	if ranked == nil {
		return nil, ErrNilComponents
	}
	out := make([]Point, len(ranked.Cumulative))
	for i, c := range ranked.Cumulative {
		out[i] = Point{Components: i + 1, Cumulative: c}
	}

	return out, nil
}

// SavePNG renders the cumulative curve to a PNG file at path.
//
// Errors:
//   - ErrNilComponents (nil spectrum).
//   - wrapped plot/file errors from the rendering backend.
func SavePNG(ranked *pca.RankedComponents, path string, opts ...Option) error {
	pts, err := Curve(ranked)
	if err != nil {
		return err
	}
	o := options{width: DefaultWidth, height: DefaultHeight}
	for _, opt := range opts {
		opt(&o)
	}

	p := plot.New()
	p.Title.Text = "Cumulative explained variance"
	p.X.Label.Text = "components"
	p.Y.Label.Text = "cumulative ratio"
	p.Y.Min, p.Y.Max = 0, 1.05

	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X = float64(pt.Components)
		xys[i].Y = pt.Cumulative
	}
	line, scatter, err := plotter.NewLinePoints(xys)
	if err != nil {
		return fmt.Errorf("scree: curve: %w", err)
	}
	p.Add(line, scatter)

	if o.threshold > 0 {
		rule := plotter.XYs{
			{X: 1, Y: o.threshold},
			{X: float64(len(pts)), Y: o.threshold},
		}
		ruleLine, err := plotter.NewLine(rule)
		if err != nil {
			return fmt.Errorf("scree: threshold rule: %w", err)
		}
		ruleLine.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
		p.Add(ruleLine)
	}

	if err = p.Save(o.width, o.height, path); err != nil {
		return fmt.Errorf("scree: save %s: %w", path, err)
	}

	return nil
}
