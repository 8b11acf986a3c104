package vmath

import (
	"math"
	"testing"
)

func TestSmoothHistogramBox50Interior(t *testing.T) {
	hist := make([]uint64, 200)
	for i := range hist {
		hist[i] = 1
	}

	smooth := SmoothHistogramBox50(hist)

	// A fully-interior bin sees all 50 window samples.
	if math.Abs(smooth[100]-1.0) > 1e-12 {
		t.Errorf("interior bin: got %v, want 1.0", smooth[100])
	}
}

func TestSmoothHistogramBox50BoundaryAttenuation(t *testing.T) {
	hist := make([]uint64, 200)
	for i := range hist {
		hist[i] = 1
	}

	smooth := SmoothHistogramBox50(hist)

	// Bin 0's window spans [-25, 24]; only 25 bins are in range, and
	// the divisor stays 50, so the boundary is attenuated.
	if math.Abs(smooth[0]-0.5) > 1e-12 {
		t.Errorf("boundary bin: got %v, want 0.5", smooth[0])
	}
	if smooth[0] >= smooth[100] {
		t.Errorf("boundary should be attenuated relative to interior: %v vs %v", smooth[0], smooth[100])
	}
}

func TestSmoothHistogramBox50Impulse(t *testing.T) {
	hist := make([]uint64, 200)
	hist[100] = 50

	smooth := SmoothHistogramBox50(hist)

	// The impulse spreads evenly across the window.
	if math.Abs(smooth[100]-1.0) > 1e-12 {
		t.Errorf("impulse center: got %v, want 1.0", smooth[100])
	}
	if smooth[130] != 0 {
		t.Errorf("outside window: got %v, want 0", smooth[130])
	}
}
