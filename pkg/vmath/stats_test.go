package vmath

import (
	"math"
	"testing"
)

func TestPercentileEndpoints(t *testing.T) {
	seq := []float64{0.1, 0.2, 0.4, 0.8, 1.6}

	if got := PercentileFromSorted(seq, 0); got != seq[0] {
		t.Errorf("p0: got %v, want %v", got, seq[0])
	}
	if got := PercentileFromSorted(seq, 100); got != seq[len(seq)-1] {
		t.Errorf("p100: got %v, want %v", got, seq[len(seq)-1])
	}

	// Out-of-range percentiles clamp.
	if got := PercentileFromSorted(seq, -5); got != seq[0] {
		t.Errorf("p-5: got %v, want %v", got, seq[0])
	}
	if got := PercentileFromSorted(seq, 150); got != seq[len(seq)-1] {
		t.Errorf("p150: got %v, want %v", got, seq[len(seq)-1])
	}
}

func TestPercentileMonotonic(t *testing.T) {
	seq := []float64{0, 1, 2, 3, 5, 8, 13, 21}

	prev := math.Inf(-1)
	for p := 0.0; p <= 100; p += 0.5 {
		v := PercentileFromSorted(seq, p)
		if v < prev {
			t.Fatalf("percentile not monotonic: p=%v gave %v after %v", p, v, prev)
		}
		prev = v
	}
}

func TestPercentileInterpolation(t *testing.T) {
	// position = p/100 * (n-1), linearly interpolated
	seq := []float64{0, 10}
	if got := PercentileFromSorted(seq, 50); got != 5 {
		t.Errorf("p50 of {0,10}: got %v, want 5", got)
	}

	seq = []float64{1, 2, 3, 4}
	if got := PercentileFromSorted(seq, 50); got != 2.5 {
		t.Errorf("p50 of {1,2,3,4}: got %v, want 2.5", got)
	}
}

func TestPercentileDegenerate(t *testing.T) {
	if got := PercentileFromSorted(nil, 50); got != 0 {
		t.Errorf("empty: got %v, want 0", got)
	}
	if got := PercentileFromSorted([]float64{7}, 99); got != 7 {
		t.Errorf("single: got %v, want 7", got)
	}
}

func TestPercentileInPlaceSorts(t *testing.T) {
	sample := []float64{5, 1, 4, 2, 3}
	if got := PercentileInPlace(sample, 0); got != 1 {
		t.Errorf("p0 of shuffled: got %v, want 1", got)
	}
}

func TestSubsample(t *testing.T) {
	data := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}

	got := Subsample(data, 3)
	want := []float64{0, 3, 6, 9}
	if len(got) != len(want) {
		t.Fatalf("subsample stride 3: got %v", got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("subsample stride 3: got %v, want %v", got, want)
		}
	}

	if got := Subsample(data, 0); len(got) != len(data) {
		t.Errorf("stride 0 should behave as 1, got %d samples", len(got))
	}
}

func TestMedianNonDestructive(t *testing.T) {
	data := []float64{3, 1, 2}
	if got := Median(data); got != 2 {
		t.Errorf("median: got %v, want 2", got)
	}
	if data[0] != 3 || data[1] != 1 || data[2] != 2 {
		t.Errorf("Median modified its input: %v", data)
	}
}

func TestMAD(t *testing.T) {
	// median 3, |dev| = {2,1,0,1,2}, MAD = 1
	data := []float64{1, 2, 3, 4, 5}
	if got := MAD(data); got != 1 {
		t.Errorf("MAD: got %v, want 1", got)
	}
}

func TestMeanStdDev(t *testing.T) {
	mean, std := MeanStdDev([]float64{2, 4, 4, 4, 5, 5, 7, 9})
	if math.Abs(mean-5) > 1e-12 {
		t.Errorf("mean: got %v, want 5", mean)
	}
	if std <= 0 {
		t.Errorf("std: got %v, want > 0", std)
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := MinMax([]float64{0.5, -1, 3, 2})
	if lo != -1 || hi != 3 {
		t.Errorf("minmax: got (%v,%v), want (-1,3)", lo, hi)
	}
}
