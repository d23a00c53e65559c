package chart

import (
	"errors"

	"gonum.org/v1/gonum/interp"
	"gonum.org/v1/plot/plotter"
)

var (
	// ErrTooFewPoints is returned by Smooth for fewer than four points.
	ErrTooFewPoints = errors.New("spline needs at least 4 points")

	// ErrNotIncreasing is returned by Smooth when x values repeat or go
	// backwards, as happens when two rows share a minute.
	ErrNotIncreasing = errors.New("spline needs strictly increasing x")
)

// Smooth fits a not-a-knot cubic spline through (xs, ys) and resamples it at
// samples evenly spaced x values from xs[0] to xs[len(xs)-1].
func Smooth(xs, ys []float64, samples int) (plotter.XYs, error) {
	if len(xs) != len(ys) {
		return nil, errors.New("xs and ys must be of the same size")
	}
	if len(xs) < 4 {
		return nil, ErrTooFewPoints
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return nil, ErrNotIncreasing
		}
	}
	if samples < 2 {
		samples = 2
	}

	var spline interp.NotAKnotCubic
	if err := spline.Fit(xs, ys); err != nil {
		return nil, err
	}

	lo, hi := xs[0], xs[len(xs)-1]
	step := (hi - lo) / float64(samples-1)
	out := make(plotter.XYs, samples)
	for i := range out {
		x := lo + float64(i)*step
		if i == samples-1 {
			x = hi
		}
		out[i].X = x
		out[i].Y = spline.Predict(x)
	}
	return out, nil
}
