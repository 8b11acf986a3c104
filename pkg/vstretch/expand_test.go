package vstretch

import (
	"math"
	"testing"

	"github.com/veralux/veralux/pkg/vframe"
)

func TestSmartMaxRejectsHotPixel(t *testing.T) {
	// A lone bright sample with all neighbors far below 20% of it is a
	// hot pixel: the expansion must fall back to a percentile bound
	// rather than stretching to the spike.
	f := uniformMono(100, 100, 0.1)
	f.Set(0, 50, 50, 1.0)

	stats := ApplyLinearExpansion(f, 1.0, false)
	if stats.High >= 1.0 {
		t.Errorf("hot pixel used as high bound: %v", stats.High)
	}
}

func TestSmartMaxAcceptsStarCore(t *testing.T) {
	// A bright sample with a dimmer-but-substantial neighbor is a real
	// feature; the absolute maximum is the bound.
	f := uniformMono(100, 100, 0.1)
	f.Set(0, 50, 50, 1.0)
	f.Set(0, 51, 50, 0.5)

	stats := ApplyLinearExpansion(f, 1.0, false)
	if stats.High != 1.0 {
		t.Errorf("star core should bound at the absolute max: got %v", stats.High)
	}
}

func TestExpansionNoOpBelowFactorThreshold(t *testing.T) {
	f := uniformMono(10, 10, 0.3)
	f.Set(0, 5, 5, 0.9)
	before := f.Clone()

	stats := ApplyLinearExpansion(f, 0.0005, false)
	if stats != (ExpansionStats{}) {
		t.Errorf("tiny factor should zero the diagnostics: %+v", stats)
	}
	for i := range f.Pix[0] {
		if f.Pix[0][i] != before.Pix[0][i] {
			t.Fatalf("tiny factor modified the frame at %d", i)
		}
	}
}

func TestExpansionDegenerateBoundsNoOp(t *testing.T) {
	// A perfectly flat frame has high <= low; nothing to expand.
	f := uniformMono(20, 20, 0.3)
	before := f.Clone()

	stats := ApplyLinearExpansion(f, 1.0, false)
	if stats.PctLow != 0 || stats.PctHigh != 0 {
		t.Errorf("degenerate bounds should zero the clamp diagnostics: %+v", stats)
	}
	for i := range f.Pix[0] {
		if f.Pix[0][i] != before.Pix[0][i] {
			t.Fatalf("degenerate expansion modified the frame at %d", i)
		}
	}
}

func TestExpansionBlendsWithOriginal(t *testing.T) {
	f := uniformMono(10, 10, 0.2)
	f.Set(0, 5, 5, 1.0)
	f.Set(0, 6, 5, 0.5) // makes the max a genuine feature

	stats := ApplyLinearExpansion(f, 0.5, false)
	if stats.High != 1.0 {
		t.Fatalf("expected genuine-feature bound 1.0, got %v", stats.High)
	}

	// A background sample normalizes to 0, so the blend halves it.
	if got := f.Get(0, 0, 0); math.Abs(got-0.1) > 1e-9 {
		t.Errorf("blended background: got %v, want 0.1", got)
	}
	// The peak normalizes to 1 and stays at 1.
	if got := f.Get(0, 5, 5); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("blended peak: got %v, want 1.0", got)
	}
}

func TestExpansionReportsClamping(t *testing.T) {
	f := uniformMono(10, 10, 0.2)
	f.Set(0, 5, 5, 1.0)
	f.Set(0, 6, 5, 0.5)

	stats := ApplyLinearExpansion(f, 1.0, false)
	if stats.PctHigh <= 0 {
		t.Errorf("peak at the high bound should count as clamped: %+v", stats)
	}
	if stats.PctLow <= 0 {
		t.Errorf("background at the low bound should count as clamped: %+v", stats)
	}
}

func TestExpansionFastBounds(t *testing.T) {
	// MAD-based bounds on a frame with spread; just has to land sane.
	f := vframe.New(50, 50, 1)
	for i := range f.Pix[0] {
		f.Pix[0][i] = 0.1 + 0.2*float64(i%100)/100.0
	}
	f.Set(0, 25, 25, 0.9)
	f.Set(0, 26, 25, 0.4)

	stats := ApplyLinearExpansion(f, 1.0, true)
	if stats.High != 0.9 {
		t.Errorf("fast bounds with genuine max: high = %v, want 0.9", stats.High)
	}
	if stats.Low < 0 {
		t.Errorf("fast bounds low went negative: %v", stats.Low)
	}
	for i, v := range f.Pix[0] {
		if v < 0 || v > 1 {
			t.Fatalf("sample %d escaped [0,1]: %v", i, v)
		}
	}
}
