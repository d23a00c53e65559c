package main

import (
	"github.com/AnsonSkywalker/RankScoreVisualization/internal/chart"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var plotMagenta = lipgloss.Color("#FF79C6")

// selection is what the user picked in the form.
type selection struct {
	File  string
	Axis  chart.Axis
	Curve chart.Curve
}

// newForm asks for the record file (unless sel.File is already set), the x
// axis and the curve. Answers are written into sel.
func newForm(files []string, sel *selection, accessible bool) *huh.Form {
	theme := huh.ThemeCharm()
	theme.Focused.Base = theme.Focused.Base.BorderForeground(plotMagenta)
	theme.Focused.Title = theme.Focused.Title.Foreground(plotMagenta)

	var groups []*huh.Group
	if sel.File == "" {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[string]().
				Key("file").
				Title("Record file").
				Description("CSV file to plot").
				Options(huh.NewOptions(files...)...).
				Value(&sel.File),
		))
	}

	groups = append(groups, huh.NewGroup(
		huh.NewSelect[chart.Axis]().
			Key("axis").
			Title("X axis").
			Options(
				huh.NewOption("1. By session (one step per row)", chart.AxisSequence),
				huh.NewOption("2. By time (hourly ticks)", chart.AxisTime),
			).
			Value(&sel.Axis),

		huh.NewSelect[chart.Curve]().
			Key("curve").
			Title("Curve").
			Options(
				huh.NewOption("1. Smooth curve", chart.CurveSpline),
				huh.NewOption("2. Straight lines", chart.CurveLinear),
			).
			Value(&sel.Curve),
	))

	return huh.NewForm(groups...).
		WithWidth(60).
		WithShowHelp(true).
		WithShowErrors(true).
		WithTheme(theme).
		WithAccessible(accessible)
}
