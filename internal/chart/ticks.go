package chart

import (
	"time"

	"gonum.org/v1/plot"
)

const (
	dayLabelLayout  = "2006-01-02\n15:04"
	hourLabelLayout = "15:04"
)

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// SessionTicks puts one tick under every observation index. The first
// observation of each day carries the date as well as the time.
func SessionTicks(times []time.Time) []plot.Tick {
	ticks := make([]plot.Tick, len(times))
	for i, t := range times {
		layout := hourLabelLayout
		if i == 0 || !sameDay(t, times[i-1]) {
			layout = dayLabelLayout
		}
		ticks[i] = plot.Tick{Value: float64(i), Label: t.Format(layout)}
	}
	return ticks
}

// HourTicks puts one tick at the start of every distinct hour the
// observations fall in. The first hour of each day carries the date.
func HourTicks(times []time.Time) []plot.Tick {
	var ticks []plot.Tick
	var prev time.Time
	for _, t := range times {
		hour := time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
		if len(ticks) > 0 && hour.Equal(prev) {
			continue
		}
		layout := hourLabelLayout
		if len(ticks) == 0 || !sameDay(hour, prev) {
			layout = dayLabelLayout
		}
		ticks = append(ticks, plot.Tick{Value: float64(hour.Unix()), Label: hour.Format(layout)})
		prev = hour
	}
	return ticks
}
