package vmath

// Statistical primitives shared by the stretch pipeline. Percentiles
// follow the usual linear interpolation scheme: the value at rank
// position p/100 * (n-1), interpolated between the two adjacent
// samples.

import(
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// PercentileFromSorted returns the pct-th percentile of an
// already-sorted sample. pct is clamped to [0,100].
func PercentileFromSorted(sorted []float64, pct float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if pct < 0 {
		pct = 0
	} else if pct > 100 {
		pct = 100
	}
	if len(sorted) == 1 {
		return sorted[0]
	}

	pos := (pct / 100.0) * float64(len(sorted)-1)
	i0 := int(math.Floor(pos))
	i1 := i0 + 1
	if i1 > len(sorted)-1 {
		i1 = len(sorted) - 1
	}
	f := pos - float64(i0)

	return sorted[i0] + f*(sorted[i1]-sorted[i0])
}

// PercentileInPlace sorts `sample` (destructively) and returns its
// pct-th percentile.
func PercentileInPlace(sample []float64, pct float64) float64 {
	if len(sample) == 0 {
		return 0
	}
	sort.Float64s(sample)
	return PercentileFromSorted(sample, pct)
}

// Subsample copies every stride-th value of `data` into a fresh
// slice. Strides below 1 are treated as 1.
func Subsample(data []float64, stride int) []float64 {
	if stride < 1 {
		stride = 1
	}
	out := make([]float64, 0, len(data)/stride+1)
	for i := 0; i < len(data); i += stride {
		out = append(out, data[i])
	}
	return out
}

// SubsamplePercentile computes a percentile over every stride-th
// sample of `data`. The subsampling exists purely to bound the cost of
// the sort on multi-megapixel buffers.
func SubsamplePercentile(data []float64, stride int, pct float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return PercentileInPlace(Subsample(data, stride), pct)
}

// Median returns the 50th percentile of `data` without modifying it.
func Median(data []float64) float64 {
	tmp := make([]float64, len(data))
	copy(tmp, data)
	return PercentileInPlace(tmp, 50)
}

// MAD returns the raw (unscaled) median absolute deviation of `data`.
func MAD(data []float64) float64 {
	m := Median(data)
	dev := make([]float64, len(data))
	for i, v := range data {
		dev[i] = math.Abs(v - m)
	}
	return PercentileInPlace(dev, 50)
}

// MeanStdDev returns the mean and standard deviation of `data`.
func MeanStdDev(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(data, nil)
}

// MinMax returns the smallest and largest values in `data`.
func MinMax(data []float64) (float64, float64) {
	if len(data) == 0 {
		return 0, 0
	}
	return floats.Min(data), floats.Max(data)
}
