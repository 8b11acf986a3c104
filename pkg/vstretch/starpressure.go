package vstretch

import(
	"sort"

	"github.com/veralux/veralux/pkg/vframe"
)

// EstimateStarPressure returns a diagnostic in [0,1] describing how
// dominated the bright end of the image is by a small number of
// extreme outliers (stars). 0 = starless, 1 = extreme stellar
// concentration. Combines the separation between the 99.9th and
// 99.99th percentiles with the size of the extreme tail.
func EstimateStarPressure(luma *vframe.Frame) float64 {
	if luma == nil || luma.NumPixels() == 0 {
		return 0
	}

	data := luma.Pix[0]
	stride := len(data) / 300000
	if stride < 1 {
		stride = 1
	}

	sample := make([]float64, 0, len(data)/stride+1)
	for i := 0; i < len(data); i += stride {
		if data[i] > 1e-7 {
			sample = append(sample, data[i])
		}
	}

	if len(sample) < 100 {
		return 0
	}

	sort.Float64s(sample)

	idx999 := int(float64(len(sample)) * 0.999)
	idx9999 := int(float64(len(sample)) * 0.9999)
	if idx999 >= len(sample) {
		idx999 = len(sample) - 1
	}
	if idx9999 >= len(sample) {
		idx9999 = len(sample) - 1
	}

	p999 := sample[idx999]
	p9999 := sample[idx9999]

	countBright := 0
	for _, v := range sample {
		if v > p999 {
			countBright++
		}
	}
	brightFrac := float64(countBright) / float64(len(sample))

	pTerm := clamp01((p9999/(p999+1e-9) - 1.0) / 4.0)
	fTerm := clamp01(brightFrac * 200.0)

	return clamp01(0.7*pTerm + 0.3*fTerm)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
