// Package chart renders record files as score-over-time charts.
package chart

import (
	"fmt"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/vg"
)

// Axis selects what the x axis measures.
type Axis int

const (
	// AxisSequence places rows at evenly spaced observation indexes.
	AxisSequence Axis = iota + 1
	// AxisTime places rows at their timestamps.
	AxisTime
)

func (a Axis) String() string {
	switch a {
	case AxisSequence:
		return "session"
	case AxisTime:
		return "time"
	default:
		return fmt.Sprintf("Axis(%d)", int(a))
	}
}

// Curve selects how points are joined.
type Curve int

const (
	// CurveSpline draws a cubic spline through the points.
	CurveSpline Curve = iota + 1
	// CurveLinear draws straight segments between points.
	CurveLinear
)

func (c Curve) String() string {
	switch c {
	case CurveSpline:
		return "smooth"
	case CurveLinear:
		return "linear"
	default:
		return fmt.Sprintf("Curve(%d)", int(c))
	}
}

// Options controls rendering and output.
type Options struct {
	Axis  Axis
	Curve Curve

	Width  vg.Length
	Height vg.Length
	DPI    int

	// Samples is the number of points the spline is resampled at.
	Samples int
}

// DefaultOptions returns a 12x6 inch, 300 dpi, smoothed chart by session.
func DefaultOptions() Options {
	return Options{
		Axis:    AxisSequence,
		Curve:   CurveSpline,
		Width:   12 * vg.Inch,
		Height:  6 * vg.Inch,
		DPI:     300,
		Samples: 300,
	}
}

// OutputName returns the PNG file name for a chart of file, e.g.
// "session1_time_smooth.png".
func OutputName(file string, axis Axis, curve Curve) string {
	base := filepath.Base(file)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return fmt.Sprintf("%s_%s_%s.png", base, axis, curve)
}
