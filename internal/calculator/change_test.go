package calculator

import (
	"math"
	"testing"
)

func TestFluctuation_DayOverDay(t *testing.T) {
	got := Fluctuation([]float64{100, 100, 50, 0, 10})
	// Zero previous value is clamped to 0 instead of dividing by zero.
	want := []float64{0, 0, -50, -100, 0}
	if len(got) != len(want) {
		t.Fatalf("expected %d values, got %d", len(want), len(got))
	}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("fluctuation[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestFluctuation_Empty(t *testing.T) {
	if got := Fluctuation(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}

func TestRelativeChange_FromBaseline(t *testing.T) {
	got := RelativeChange([]float64{50, 50, 75, 25})
	want := []float64{0, 0, 50, -50}
	for i := range want {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("relative[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestRelativeChange_ZeroBaseline(t *testing.T) {
	got := RelativeChange([]float64{0, 5, 10})
	for i, v := range got {
		if v != 0 {
			t.Errorf("relative[%d] = %v, want 0 for zero baseline", i, v)
		}
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 values, got %d", len(got))
	}
}
