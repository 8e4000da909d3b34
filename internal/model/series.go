package model

import "time"

// Assets lists the two chart assets in draw order. The chart design is fixed
// to exactly these two series.
var Assets = [2]string{"ABTC", "BTC"}

// PriceSeries holds ordered price data for the chart assets. Dates define
// chronological order; every asset slice has the same length as Dates.
// Constructed once from input and not mutated afterwards.
type PriceSeries struct {
	Dates  []time.Time
	Prices map[string][]float64
}

// Len returns the number of data points in the series.
func (s *PriceSeries) Len() int { return len(s.Dates) }
