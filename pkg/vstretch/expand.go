package vstretch

// Dynamic range expansion with hot pixel rejection. The upper bound
// follows the "smart max" rule: if the single brightest sample has a
// strictly-dimmer 3x3 neighbor reaching at least 20% of its value, it
// is a real extended feature (a star core) and the absolute maximum is
// a safe bound; otherwise it is an isolated hot pixel and a percentile
// bound is used instead.

import(
	"github.com/veralux/veralux/pkg/vframe"
	"github.com/veralux/veralux/pkg/vmath"
)

// ExpansionStats reports how much clamping an expansion applied,
// so callers can warn about data loss.
type ExpansionStats struct {
	PctLow  float64 // percentage of samples at or below the low bound
	PctHigh float64 // percentage of samples at or beyond the high bound
	Low     float64
	High    float64
}

// smartMaxFeature locates the frame's brightest sample and reports
// whether it looks like a genuine feature rather than a hot pixel.
func smartMaxFeature(f *vframe.Frame) (absMax float64, genuine bool) {
	var ch, mx, my int
	absMax, ch, mx, my = f.LocateMax()

	if absMax <= 0.001 {
		return absMax, false
	}

	y0, y1 := mx0(my-1), mxN(my+2, f.Height)
	x0, x1 := mx0(mx-1), mxN(mx+2, f.Width)

	maxNeighbor := 0.0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			v := f.Get(ch, x, y)
			if v < absMax && v > maxNeighbor {
				maxNeighbor = v
			}
		}
	}

	return absMax, maxNeighbor >= absMax*0.20
}

func mx0(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

func mxN(v, n int) int {
	if v > n {
		return n
	}
	return v
}

// ApplyLinearExpansion rescales the frame so real data fills [0,1],
// blended with the original by `factor`. The low bound is the exact
// 0.001st percentile over all channels (or median - 3.5*MAD with
// fastBounds); the high bound is the smart max, falling back to the
// exact 99.999th percentile (or median + 4*MAD). Degenerate bounds
// make this a no-op with zeroed diagnostics, as does factor <= 0.001.
func ApplyLinearExpansion(f *vframe.Frame, factor float64, fastBounds bool) ExpansionStats {
	var stats ExpansionStats

	if factor <= 0.001 {
		return stats
	}
	if factor > 1 {
		factor = 1
	}

	absMax, genuine := smartMaxFeature(f)

	var low, high float64

	if fastBounds {
		all := gatherSamples(f, 1)
		median := vmath.Median(all)
		mad := vmath.MAD(all)

		low = maxf(0, median-3.5*mad)
		if genuine {
			high = absMax
		} else {
			high = minf(1, median+4.0*mad)
		}
	} else {
		stride := f.NumPixels() / 500000
		if stride < 1 {
			stride = 1
		}
		sample := gatherSamples(f, stride)

		low = vmath.PercentileInPlace(sample, 0.001)
		if genuine {
			high = absMax
		} else {
			// sample is already sorted at this point
			high = vmath.PercentileFromSorted(sample, 99.999)
		}
	}

	stats.Low, stats.High = low, high
	if high <= low {
		return ExpansionStats{Low: low, High: high}
	}

	// Clamp diagnostics, before blending.
	total, countLow, countHigh := 0, 0, 0
	for _, plane := range f.Pix {
		total += len(plane)
		for _, v := range plane {
			if v <= low {
				countLow++
			}
			if v >= high {
				countHigh++
			}
		}
	}
	stats.PctLow = float64(countLow) * 100.0 / float64(total)
	stats.PctHigh = float64(countHigh) * 100.0 / float64(total)

	rng := high - low
	factorInv := 1.0 - factor

	for _, plane := range f.Pix {
		for i, original := range plane {
			normalized := (original - low) / rng
			if normalized < 0 {
				normalized = 0
			} else if normalized > 1 {
				normalized = 1
			}
			plane[i] = original*factorInv + normalized*factor
		}
	}

	return stats
}

// gatherSamples pulls every stride-th sample of every channel into one
// flat slice.
func gatherSamples(f *vframe.Frame, stride int) []float64 {
	if stride < 1 {
		stride = 1
	}
	out := make([]float64, 0, (f.NumPixels()/stride+1)*f.Channels())
	for _, plane := range f.Pix {
		for i := 0; i < len(plane); i += stride {
			out = append(out, plane[i])
		}
	}
	return out
}
