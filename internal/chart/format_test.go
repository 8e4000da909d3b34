package chart

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{1234567.89, "$1,234,568"},
		{1000, "$1,000"},
		{999.5, "$999.50"},
		{0, "$0.00"},
		{-999.5, "$-999.50"},
		{-1500, "$-1,500"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.value); got != c.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{5.26, "5.3%"},
		{0, "0.0%"},
		{-3.14159, "-3.1%"},
		{100, "100.0%"},
	}
	for _, c := range cases {
		if got := FormatPercent(c.value); got != c.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", c.value, got, c.want)
		}
	}
}
