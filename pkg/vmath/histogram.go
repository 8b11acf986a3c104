package vmath

// SmoothHistogramBox50 runs a centered box filter of width 50
// (half-width 25) over the histogram bins. Out-of-range indices
// contribute zero, and every output bin is divided by the full window
// width of 50, so bins near the boundaries come out slightly
// attenuated.
func SmoothHistogramBox50(hist []uint64) []float64 {
	const window = 50
	const half = window / 2

	out := make([]float64, len(hist))
	for i := range hist {
		var sum uint64
		for k := 0; k < window; k++ {
			j := i - half + k
			if j >= 0 && j < len(hist) {
				sum += hist[j]
			}
		}
		out[i] = float64(sum) / float64(window)
	}
	return out
}
