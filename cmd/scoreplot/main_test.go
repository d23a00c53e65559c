package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"github.com/AnsonSkywalker/RankScoreVisualization/internal/chart"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/config"
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/record"
)

const session1 = "time,score\n2024-02-03-19-05,100\n2024-02-03-19-48,95\n2024-02-03-21-10,115\n2024-02-04-09-02,135\n"

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.DataDir = t.TempDir()
	cfg.OutputDir = filepath.Join(t.TempDir(), "charts")
	cfg.OpenViewer = false
	cfg.Plot.WidthIn = 4
	cfg.Plot.HeightIn = 2
	cfg.Plot.DPI = 50
	cfg.Plot.Samples = 40
	return &cfg
}

func TestResolveFile(t *testing.T) {
	files := []string{"a.csv", "session1.csv"}

	name, err := resolveFile("session1", files)
	require.NoError(t, err)
	assert.Equal(t, "session1.csv", name)

	name, err = resolveFile("some/dir/a.csv", files)
	require.NoError(t, err)
	assert.Equal(t, "a.csv", name)

	_, err = resolveFile("missing.csv", files)
	assert.Error(t, err)
}

func TestChartOptions(t *testing.T) {
	cfg := testConfig(t)
	opts := chartOptions(cfg, selection{Axis: chart.AxisTime, Curve: chart.CurveLinear})

	assert.Equal(t, chart.AxisTime, opts.Axis)
	assert.Equal(t, chart.CurveLinear, opts.Curve)
	assert.Equal(t, 4*vg.Inch, opts.Width)
	assert.Equal(t, 2*vg.Inch, opts.Height)
	assert.Equal(t, 50, opts.DPI)
	assert.Equal(t, 40, opts.Samples)
}

func TestPlotRecord(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "session1.csv"), []byte(session1), 0o644))
	store := record.NewStore(cfg.DataDir)

	for _, sel := range []selection{
		{File: "session1.csv", Axis: chart.AxisSequence, Curve: chart.CurveSpline},
		{File: "session1.csv", Axis: chart.AxisTime, Curve: chart.CurveLinear},
	} {
		path, err := plotRecord(cfg, store, sel)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(cfg.OutputDir, chart.OutputName(sel.File, sel.Axis, sel.Curve)), path)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG"), data[:4])
	}
}

func TestPlotRecord_EmptyRecord(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "empty.csv"), []byte("time,score\n"), 0o644))

	_, err := plotRecord(cfg, record.NewStore(cfg.DataDir), selection{File: "empty.csv", Axis: chart.AxisSequence, Curve: chart.CurveLinear})
	assert.ErrorIs(t, err, chart.ErrNoData)
}

func TestRun_NoFiles(t *testing.T) {
	err := run(testConfig(t), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no CSV files found")
}

func TestRun_UnknownFileArgument(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(filepath.Join(cfg.DataDir, "session1.csv"), []byte(session1), 0o644))

	err := run(cfg, "other.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
