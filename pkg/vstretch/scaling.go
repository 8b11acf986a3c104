package vstretch

// Ready-to-use output conditioning: anchor the floor, scale so the
// soft ceiling lands just under white without letting genuine star
// cores clip, then retarget the background exactly with the MTF.

import(
	"math"

	"github.com/veralux/veralux/pkg/sensor"
	"github.com/veralux/veralux/pkg/vframe"
	"github.com/veralux/veralux/pkg/vmath"
)

const scalingPedestal = 0.001

// AdaptiveOutputScaling rescales the frame in place so its dynamic
// range fills [pedestal, ~1], then applies an MTF so the luminance
// median hits targetBg exactly. fastBounds swaps the exact 99th
// percentile soft ceiling for a median + 3 sigma approximation.
func AdaptiveOutputScaling(f *vframe.Frame, profile sensor.Profile, targetBg float64, fastBounds bool) {
	luma := WeightedLuminance(f, profile)
	data := luma.Pix[0]

	medianL := vmath.Median(data)
	_, stdL := vmath.MeanStdDev(data)
	minL, _ := vmath.MinMax(data)

	globalFloor := maxf(minL, medianL-2.7*stdL)

	absMax, validPhysicalMax := smartMaxLuma(luma)

	// Soft ceiling: where the bulk of the bright signal should land.
	var softCeil float64
	if fastBounds {
		softCeil = medianL + 3.0*stdL
	} else if f.IsRGB() {
		stride := f.NumPixels() / 500000
		if stride < 1 {
			stride = 1
		}
		softCeil = 0
		for c := 0; c < 3; c++ {
			p99 := vmath.SubsamplePercentile(f.Pix[c], stride, 99.0)
			if p99 > softCeil {
				softCeil = p99
			}
		}
	} else {
		stride := f.NumPixels() / 200000
		if stride < 1 {
			stride = 1
		}
		softCeil = vmath.SubsamplePercentile(data, stride, 99.0)
	}
	softCeil = maxf(globalFloor+1e-6, minf(softCeil, 1.0))

	if absMax <= softCeil {
		absMax = softCeil + 1e-6
	}

	// Contrast-preserving scale, capped by the physical-limit scale
	// when the absolute maximum is a real feature that must not clip.
	scaleContrast := (0.98 - scalingPedestal) / (softCeil - globalFloor + 1e-9)
	finalScale := scaleContrast
	if validPhysicalMax {
		scalePhysicalLimit := (1.0 - scalingPedestal) / (absMax - globalFloor + 1e-9)
		finalScale = minf(scaleContrast, scalePhysicalLimit)
	}

	for _, plane := range f.Pix {
		for i, v := range plane {
			scaled := (v-globalFloor)*finalScale + scalingPedestal
			if scaled < 0 {
				scaled = 0
			} else if scaled > 1 {
				scaled = 1
			}
			plane[i] = scaled
		}
	}

	// Retarget the background exactly.
	luma = WeightedLuminance(f, profile)
	currentBg := vmath.Median(luma.Pix[0])

	if currentBg > 0 && currentBg < 1 && math.Abs(currentBg-targetBg) > 1e-3 {
		ApplyMTF(f, SolveMTF(currentBg, targetBg))
	}
}

// smartMaxLuma is the smart max test on a luminance frame; unlike the
// expansion variant it reports whether the max is physically valid.
func smartMaxLuma(luma *vframe.Frame) (absMax float64, valid bool) {
	absMax, genuine := smartMaxFeature(luma)
	if absMax <= 0.001 {
		// Too dark to judge; treat the max as physical.
		return absMax, true
	}
	return absMax, genuine
}

// ApplySoftClip rolls off samples above threshold so star cores
// saturate smoothly instead of clipping hard. Samples at or below the
// threshold pass through unchanged.
func ApplySoftClip(f *vframe.Frame, threshold, rolloff float64) {
	rangeInv := 1.0 / (1.0 - threshold + 1e-9)

	for _, plane := range f.Pix {
		for i, v := range plane {
			if v <= threshold {
				continue
			}
			t := (v - threshold) * rangeInv
			if t < 0 {
				t = 0
			} else if t > 1 {
				t = 1
			}
			soft := 1.0 - math.Pow(1.0-t, rolloff)
			plane[i] = threshold + (1.0-threshold)*soft
		}
	}

	f.Truncate(0, 1)
}
