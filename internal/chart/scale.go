package chart

// Viewport defines the fixed pixel canvas and the margins that bound the
// plot area. Derived plot dimensions are computed from it once and shared by
// every coordinate mapping.
type Viewport struct {
	Width        float64
	Height       float64
	MarginLeft   float64
	MarginRight  float64
	MarginTop    float64
	MarginBottom float64
}

// DefaultViewport is the canvas used for every render.
var DefaultViewport = Viewport{
	Width:        1000,
	Height:       620,
	MarginLeft:   90,
	MarginRight:  110,
	MarginTop:    70,
	MarginBottom: 80,
}

// PlotWidth returns the horizontal extent of the plot area.
func (v Viewport) PlotWidth() float64 { return v.Width - v.MarginLeft - v.MarginRight }

// PlotHeight returns the vertical extent of the plot area.
func (v Viewport) PlotHeight() float64 { return v.Height - v.MarginTop - v.MarginBottom }

// PlotBottom returns the pixel y coordinate of the bottom plot edge.
func (v Viewport) PlotBottom() float64 { return v.MarginTop + v.PlotHeight() }

// XPositions returns n evenly spaced pixel x coordinates spanning the plot
// width. A single point maps to the left plot edge.
func (v Viewport) XPositions(n int) []float64 {
	xs := make([]float64, n)
	if n == 0 {
		return xs
	}
	start := v.MarginLeft
	if n == 1 {
		xs[0] = start
		return xs
	}
	step := v.PlotWidth() / float64(n-1)
	for i := range xs {
		xs[i] = start + step*float64(i)
	}
	return xs
}

// Scale maps a value domain [Min, Min+Range] onto the vertical plot extent,
// inverted so that larger values sit higher on the canvas. Pixel output keeps
// sub-pixel precision.
type Scale struct {
	Min    float64
	Range  float64
	Top    float64
	Height float64
}

// Y maps a domain value to its pixel y coordinate.
func (s Scale) Y(value float64) float64 {
	normalized := (value - s.Min) / s.Range
	return s.Top + s.Height - normalized*s.Height
}

// Ticks returns count evenly spaced domain values from Min to Min+Range.
func (s Scale) Ticks(count int) []float64 {
	ticks := make([]float64, count)
	if count == 1 {
		ticks[0] = s.Min
		return ticks
	}
	step := s.Range / float64(count-1)
	for i := range ticks {
		ticks[i] = s.Min + step*float64(i)
	}
	return ticks
}

// NewChangeScale builds the left-axis scale over the relative-change extents
// of both assets. A zero-width domain is forced to unit width so the mapping
// never divides by zero.
func NewChangeScale(min, max float64, vp Viewport) Scale {
	r := max - min
	if r == 0 {
		r = 1.0
	}
	return Scale{Min: min, Range: r, Top: vp.MarginTop, Height: vp.PlotHeight()}
}

// NewFluctuationScale builds the right-axis scale over the fluctuation
// extents of both assets. An equal min/max is first nudged to a span of 2,
// then 5% padding is added on each side; the order matters because the
// padded bounds drive the tick labels.
func NewFluctuationScale(min, max float64, vp Viewport) Scale {
	if min == max {
		min--
		max++
	}
	padding := (max - min) * 0.05
	min -= padding
	max += padding
	return Scale{Min: min, Range: max - min, Top: vp.MarginTop, Height: vp.PlotHeight()}
}
