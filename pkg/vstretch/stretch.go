package vstretch

// The core nonlinearity: a normalized inverse hyperbolic sine curve.
// Compared to a log stretch it compresses highlights more gently, and
// it stays well behaved near zero.

import(
	"math"

	"github.com/veralux/veralux/pkg/vframe"
	"github.com/veralux/veralux/pkg/vmath"
)

// HyperbolicStretch applies
//
//	f(x) = (asinh(D*(x-SP)+b) - asinh(b)) / (asinh(D*(1-SP)+b) - asinh(b))
//
// to every sample of every channel, in place, then truncates to [0,1].
// D sets the stretch intensity, b the highlight protection knee, SP
// the shadow protection point. D and b are clamped to at least 0.1.
func HyperbolicStretch(f *vframe.Frame, D, b, SP float64) {
	if D < 0.1 {
		D = 0.1
	}
	if b < 0.1 {
		b = 0.1
	}

	term2 := math.Asinh(b)
	norm := math.Asinh(D*(1.0-SP)+b) - term2
	if norm == 0 {
		norm = 1e-6
	}

	for _, plane := range f.Pix {
		for i, v := range plane {
			plane[i] = (math.Asinh(D*(v-SP)+b) - term2) / norm
		}
	}

	f.Truncate(0, 1)
}

// StretchValue is the single-value form of HyperbolicStretch with
// SP=0, used by the solver.
func StretchValue(x, D, b float64) float64 {
	term2 := math.Asinh(b)
	norm := math.Asinh(D+b) - term2
	if norm == 0 {
		norm = 1e-6
	}
	return (math.Asinh(D*x+b) - term2) / norm
}

// SolveLogD bisects logD over [0,7] until stretching the luminance
// median alone reproduces targetMedian. This single-value shortcut is
// valid because the transform is monotonic in x for fixed D and b.
// Near-empty images (median < 1e-9) short-circuit to the default 2.0,
// as does a search that never converges within 1e-4.
func SolveLogD(luma *vframe.Frame, targetMedian, b float64) float64 {
	medianIn := vmath.Median(luma.Pix[0])
	if medianIn < 1e-9 {
		return 2.0
	}

	lowLog, highLog := 0.0, 7.0
	bestLogD := 2.0

	for iter := 0; iter < 40; iter++ {
		midLog := (lowLog + highLog) / 2.0
		testVal := StretchValue(medianIn, math.Pow(10, midLog), b)

		if math.Abs(testVal-targetMedian) < 0.0001 {
			bestLogD = midLog
			break
		}

		if testVal < targetMedian {
			lowLog = midLog
		} else {
			highLog = midLog
		}
	}

	return bestLogD
}
