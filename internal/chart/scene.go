package chart

import (
	"TrendChart/internal/calculator"
	"TrendChart/internal/model"
)

const (
	tickCount = 6

	gridColor = "#e0e0e0"
	gridDash  = "4 6"
	axisColor = "#333"

	trendDash = "6 6"
	fluctDash = "2 6"

	chartTitle = "ABTC vs BTC % Change & Daily Fluctuations"
)

// Per-asset palette, fixed by design: one color per role per asset.
var (
	priceColors = map[string]string{"ABTC": "#2ca02c", "BTC": "#1f77b4"}
	trendColors = map[string]string{"ABTC": "#98df8a", "BTC": "#aec7e8"}
	fluctColors = map[string]string{"ABTC": "#d62728", "BTC": "#ff7f0e"}
)

// Summary captures the numeric extents of a built scene, for run logging and
// the render history recorder.
type Summary struct {
	Rows      int
	RelMin    float64
	RelMax    float64
	FluctMin  float64
	FluctMax  float64
	PriceLow  map[string]float64
	PriceHigh map[string]float64
}

// BuildScene composes the ordered drawable list for the chart: background,
// gridlines and axis labels, axis lines, date labels, the data series of both
// assets, titles and the legend. Element order is the draw order.
func BuildScene(series *model.PriceSeries, vp Viewport) ([]model.Element, Summary) {
	n := series.Len()
	xs := vp.XPositions(n)
	bottom := vp.PlotBottom()

	relative := make(map[string][]float64, len(model.Assets))
	fluct := make(map[string][]float64, len(model.Assets))
	trend := make(map[string][]float64, len(model.Assets))
	sum := Summary{
		Rows:      n,
		PriceLow:  make(map[string]float64, len(model.Assets)),
		PriceHigh: make(map[string]float64, len(model.Assets)),
	}

	first := true
	for _, asset := range model.Assets {
		prices := series.Prices[asset]
		relative[asset] = calculator.RelativeChange(prices)
		fluct[asset] = calculator.Fluctuation(prices)
		trend[asset] = calculator.Trendline(relative[asset])
		sum.PriceLow[asset], sum.PriceHigh[asset] = extents(prices)

		relLo, relHi := extents(relative[asset])
		flLo, flHi := extents(fluct[asset])
		if first {
			sum.RelMin, sum.RelMax = relLo, relHi
			sum.FluctMin, sum.FluctMax = flLo, flHi
			first = false
			continue
		}
		sum.RelMin = min(sum.RelMin, relLo)
		sum.RelMax = max(sum.RelMax, relHi)
		sum.FluctMin = min(sum.FluctMin, flLo)
		sum.FluctMax = max(sum.FluctMax, flHi)
	}

	changeScale := NewChangeScale(sum.RelMin, sum.RelMax, vp)
	fluctScale := NewFluctuationScale(sum.FluctMin, sum.FluctMax, vp)

	elements := []model.Element{
		model.Rect{X: 0, Y: 0, Width: vp.Width, Height: vp.Height, Fill: "white"},
	}

	// Dashed gridlines with left-axis percentage labels.
	for _, value := range changeScale.Ticks(tickCount) {
		y := changeScale.Y(value)
		elements = append(elements,
			model.Line{
				X1: vp.MarginLeft, Y1: y,
				X2: vp.MarginLeft + vp.PlotWidth(), Y2: y,
				Color: gridColor, Width: 1, Dash: gridDash,
			},
			model.Text{X: vp.MarginLeft - 10, Y: y + 5, Content: FormatPercent(value), Anchor: "end", Size: 14},
		)
	}

	// Left, bottom and right axis lines box the plot area.
	elements = append(elements,
		model.Line{X1: vp.MarginLeft, Y1: vp.MarginTop, X2: vp.MarginLeft, Y2: bottom, Color: axisColor, Width: 1.5},
		model.Line{X1: vp.MarginLeft, Y1: bottom, X2: vp.MarginLeft + vp.PlotWidth(), Y2: bottom, Color: axisColor, Width: 1.5},
		model.Line{X1: vp.MarginLeft + vp.PlotWidth(), Y1: vp.MarginTop, X2: vp.MarginLeft + vp.PlotWidth(), Y2: bottom, Color: axisColor, Width: 1.5},
	)

	// Right-axis fluctuation labels, no gridlines.
	for _, value := range fluctScale.Ticks(tickCount) {
		y := fluctScale.Y(value)
		elements = append(elements,
			model.Text{X: vp.MarginLeft + vp.PlotWidth() + 10, Y: y + 5, Content: FormatPercent(value), Anchor: "start", Size: 14})
	}

	// Date labels along the x axis; the final timestamp is always labelled.
	stride := n / 5
	if stride < 1 {
		stride = 1
	}
	for idx := 0; idx < n; idx += stride {
		elements = append(elements,
			model.Text{X: xs[idx], Y: bottom + 25, Content: series.Dates[idx].Format("Jan 02"), Anchor: "middle", Size: 14})
	}
	if n > 0 && (n-1)%stride != 0 {
		elements = append(elements,
			model.Text{X: xs[n-1], Y: bottom + 25, Content: series.Dates[n-1].Format("Jan 02"), Anchor: "middle", Size: 14})
	}

	// Relative-change series with their trendlines.
	for _, asset := range model.Assets {
		elements = append(elements,
			polyline(xs, relative[asset], changeScale, priceColors[asset], 3, ""),
			polyline(xs, trend[asset], changeScale, trendColors[asset], 2, trendDash),
		)
	}

	// Fluctuation series draw on top of the change series.
	for _, asset := range model.Assets {
		elements = append(elements,
			polyline(xs, fluct[asset], fluctScale, fluctColors[asset], 2, fluctDash))
	}

	// Title and axis labels.
	elements = append(elements,
		model.Text{X: vp.Width / 2, Y: vp.MarginTop - 25, Content: chartTitle, Anchor: "middle", Size: 22},
		model.Text{X: vp.Width / 2, Y: vp.Height - 25, Content: "Date", Anchor: "middle", Size: 16},
		model.Text{X: vp.MarginLeft - 60, Y: vp.MarginTop - 30, Content: "% Change", Anchor: "middle", Size: 16},
		model.Text{X: vp.Width - vp.MarginRight/2, Y: vp.MarginTop - 30, Content: "Daily Change", Anchor: "middle", Size: 16},
	)

	elements = append(elements, legend(vp)...)

	return elements, sum
}

// legend renders the six fixed entries, a short line sample plus a label,
// stacked at fixed spacing inside the top-left plot corner.
func legend(vp Viewport) []model.Element {
	type entry struct {
		label string
		color string
		dash  string
	}
	var entries []entry
	for _, asset := range model.Assets {
		entries = append(entries,
			entry{asset + " % Change", priceColors[asset], ""},
			entry{asset + " Trendline", trendColors[asset], trendDash},
			entry{asset + " Daily %", fluctColors[asset], fluctDash},
		)
	}

	x := vp.MarginLeft + 20
	top := vp.MarginTop + 20
	const spacing = 22

	var elements []model.Element
	for i, e := range entries {
		y := top + float64(i)*spacing
		elements = append(elements,
			model.Line{X1: x, Y1: y, X2: x + 28, Y2: y, Color: e.color, Width: 3, Dash: e.dash},
			model.Text{X: x + 40, Y: y + 5, Content: e.label, Anchor: "start", Size: 14},
		)
	}
	return elements
}

func polyline(xs, values []float64, scale Scale, color string, width float64, dash string) model.Polyline {
	points := make([]model.Point, len(values))
	for i, v := range values {
		points[i] = model.Point{X: xs[i], Y: scale.Y(v)}
	}
	return model.Polyline{Points: points, Color: color, Width: width, Dash: dash}
}

func extents(values []float64) (lo, hi float64) {
	if len(values) == 0 {
		return 0, 0
	}
	lo, hi = values[0], values[0]
	for _, v := range values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}
