package chart

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// FormatCurrency formats a dollar amount for display: no decimals with
// thousands separators from $1,000 upward (either sign), two decimals below.
func FormatCurrency(value float64) string {
	if value >= 1000 || value <= -1000 {
		return "$" + humanize.FormatFloat("#,###.", value)
	}
	return "$" + humanize.FormatFloat("#,###.##", value)
}

// FormatPercent formats a percentage with one decimal place.
func FormatPercent(value float64) string {
	return fmt.Sprintf("%.1f%%", value)
}
