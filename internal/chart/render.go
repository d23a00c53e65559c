package chart

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"os"
	"strconv"
	"time"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/utils"
)

// ErrNoData is returned when there are no rows to plot.
var ErrNoData = errors.New("no rows to plot")

var lineColor = color.RGBA{B: 255, A: 255}

// Render builds a chart of rows. The raw points are always marked and
// labelled with their score; the curve through them is a spline when
// opts.Curve asks for one and there are more than three points with strictly
// increasing x, otherwise straight segments.
func Render(title string, rows []record.Row, opts Options) (*plot.Plot, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	xs := make([]float64, len(rows))
	ys := make([]float64, len(rows))
	for i, r := range rows {
		switch opts.Axis {
		case AxisSequence:
			xs[i] = float64(i)
		case AxisTime:
			xs[i] = float64(r.Time.Unix())
		default:
			return nil, fmt.Errorf("unknown axis %v", opts.Axis)
		}
		ys[i] = float64(r.Score)
	}
	if opts.Curve != CurveSpline && opts.Curve != CurveLinear {
		return nil, fmt.Errorf("unknown curve %v", opts.Curve)
	}

	points := make(plotter.XYs, len(rows))
	labels := make([]string, len(rows))
	for i := range rows {
		points[i].X = xs[i]
		points[i].Y = ys[i]
		labels[i] = strconv.Itoa(rows[i].Score)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s: score trend by %s (%s)", title, opts.Axis, opts.Curve)
	p.Y.Label.Text = "Score"
	if opts.Axis == AxisTime {
		p.X.Label.Text = "Time"
	} else {
		p.X.Label.Text = "Session"
	}

	grid := plotter.NewGrid()
	dashes := []vg.Length{vg.Points(4), vg.Points(2)}
	grid.Vertical.Dashes = dashes
	grid.Horizontal.Dashes = dashes
	p.Add(grid)

	curve := points
	if opts.Curve == CurveSpline && len(rows) > 3 {
		smooth, err := Smooth(xs, ys, opts.Samples)
		if err != nil {
			utils.LogDebug("drawing %s without smoothing: %v", title, err)
		} else {
			curve = smooth
		}
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Color = lineColor
	line.LineStyle.Width = vg.Points(2)

	scatter, err := plotter.NewScatter(points)
	if err != nil {
		return nil, err
	}
	scatter.GlyphStyle.Color = lineColor
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	scatter.GlyphStyle.Radius = vg.Points(3)

	scoreLabels, err := plotter.NewLabels(plotter.XYLabels{XYs: points, Labels: labels})
	if err != nil {
		return nil, err
	}
	for i := range scoreLabels.TextStyle {
		scoreLabels.TextStyle[i].XAlign = draw.XCenter
		scoreLabels.TextStyle[i].YAlign = draw.YBottom
	}
	scoreLabels.Offset = vg.Point{Y: vg.Points(5)}

	p.Add(line, scatter, scoreLabels)

	times := make([]time.Time, len(rows))
	for i, r := range rows {
		times[i] = r.Time
	}
	var ticks []plot.Tick
	if opts.Axis == AxisTime {
		ticks = HourTicks(times)
	} else {
		ticks = SessionTicks(times)
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	if len(ticks) > 0 && ticks[0].Value < p.X.Min {
		p.X.Min = ticks[0].Value
	}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YCenter

	return p, nil
}

// Save writes p to path as a PNG of opts.Width x opts.Height at opts.DPI.
func Save(p *plot.Plot, path string, opts Options) error {
	c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI))
	p.Draw(draw.New(c))

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	if _, err := (vgimg.PngCanvas{Canvas: c}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	utils.LogDebug("saved chart %s", path)
	return nil
}
