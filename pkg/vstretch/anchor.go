package vstretch

// Black point ("anchor") estimation. Two strategies: a plain
// percentile floor, and an adaptive one that looks at the shape of the
// luminance histogram to find where real signal starts. The adaptive
// strategy copes much better with gradients and vignetting, where a
// fixed percentile lands inside the sky glow.

import(
	"github.com/veralux/veralux/pkg/sensor"
	"github.com/veralux/veralux/pkg/vframe"
	"github.com/veralux/veralux/pkg/vmath"
)

// CalculateAnchor estimates the black point as the 0.5th percentile
// floor, minus a small offset, never below zero. RGB frames use the
// darkest channel's floor.
func CalculateAnchor(f *vframe.Frame) float64 {
	nPixels := f.NumPixels()
	totalSize := nPixels * f.Channels()

	if f.IsRGB() {
		stride := totalSize / 500000
		if stride < 1 {
			stride = 1
		}
		minFloor := 1.0
		for c := 0; c < 3; c++ {
			floor := vmath.SubsamplePercentile(f.Pix[c], stride, 0.5)
			if floor < minFloor {
				minFloor = floor
			}
		}
		return maxf(0, minFloor-0.00025)
	}

	stride := totalSize / 200000
	if stride < 1 {
		stride = 1
	}
	floor := vmath.SubsamplePercentile(f.Pix[0], stride, 0.5)
	return maxf(0, floor-0.00025)
}

const anchorHistBins = 65536

// CalculateAnchorAdaptive estimates the black point from the shape of
// the sensor-weighted luminance histogram. A deep-sky histogram shows
// a noise floor, then a rising shoulder into the signal peak; the last
// bin still below 6% of the peak approximates where true signal
// begins. Falls back to the percentile floor when no such bin exists.
func CalculateAnchorAdaptive(f *vframe.Frame, profile sensor.Profile) float64 {
	luma := WeightedLuminance(f, profile)
	data := luma.Pix[0]

	stride := len(data) / 2000000
	if stride < 1 {
		stride = 1
	}

	// Build the histogram on a subsample, keeping the raw subsample
	// around for the percentile fallback.
	hist := make([]uint64, anchorHistBins)
	sample := make([]float64, 0, len(data)/stride+1)

	for i := 0; i < len(data); i += stride {
		v := data[i]
		if v < 0 {
			v = 0
		} else if v > 1 {
			v = 1
		}
		sample = append(sample, v)

		// A value of exactly 1.0 would index one past the last bin.
		vv := v
		if vv > 0.999999 {
			vv = 0.999999
		}
		bin := int(vv * anchorHistBins)
		if bin < 0 {
			bin = 0
		} else if bin >= anchorHistBins {
			bin = anchorHistBins - 1
		}
		hist[bin]++
	}

	smooth := vmath.SmoothHistogramBox50(hist)

	// Default to searching from bin 100, unless the first 100 bins
	// already carry density - then the true peak may sit very close to
	// zero and we must search from the start.
	searchStart := 100
	if searchStart >= anchorHistBins {
		searchStart = 0
	}
	maxBefore := 0.0
	for i := 0; i < 100 && i < anchorHistBins; i++ {
		if smooth[i] > maxBefore {
			maxBefore = smooth[i]
		}
	}
	if maxBefore > 0 {
		searchStart = 0
	}

	peakIdx := searchStart
	peakVal := smooth[peakIdx]
	for i := searchStart + 1; i < anchorHistBins; i++ {
		if smooth[i] > peakVal {
			peakVal = smooth[i]
			peakIdx = i
		}
	}

	targetVal := peakVal * 0.06

	// Last bin below threshold, left of the peak.
	anchorIdx := -1
	for i := 0; i < peakIdx; i++ {
		if smooth[i] < targetVal {
			anchorIdx = i
		}
	}

	var anchor float64
	if anchorIdx >= 0 {
		anchor = float64(anchorIdx) / float64(anchorHistBins)
	} else {
		anchor = vmath.PercentileInPlace(sample, 0.5)
	}

	return maxf(0, anchor)
}

func maxf(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
