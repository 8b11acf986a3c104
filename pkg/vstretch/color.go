package vstretch

// Vector-preserving color reconstruction. The stretched luminance
// carries all the brightness; the original (anchored) RGB supplies
// per-pixel color ratios, so hue and saturation survive an arbitrarily
// hard stretch. Two controls soften that:
//
//   - color convergence: as luminance approaches 1, the ratios blend
//     toward pure white at rate L^colorConvergence, which keeps
//     saturated star cores from going neon;
//   - color grip / shadow convergence: blends toward a plain scalar
//     stretch of the RGB channels, globally (grip < 1) or just in the
//     shadows (shadow convergence > 0), damping chroma noise.

import(
	"math"

	"github.com/veralux/veralux/pkg/vframe"
)

// ReconstructColor combines the stretched luminance with the original
// anchored color ratios, writing the result into rgb in place. D and b
// are the same stretch parameters used on the luminance; they drive
// the scalar blend when one is needed. Mono frames just receive the
// luminance.
func ReconstructColor(rgb, luma, originalRGB *vframe.Frame,
	colorConvergence, colorGrip, shadowConvergence, D, b float64) {

	if !rgb.IsRGB() {
		copy(rgb.Pix[0], luma.Pix[0])
		return
	}

	n := rgb.NumPixels()
	const epsilon = 1e-9

	origR, origG, origB := originalRGB.Pix[0], originalRGB.Pix[1], originalRGB.Pix[2]
	lStr := luma.Pix[0]
	outR, outG, outB := rgb.Pix[0], rgb.Pix[1], rgb.Pix[2]

	for i := 0; i < n; i++ {
		sum := origR[i] + origG[i] + origB[i] + epsilon
		rRatio := origR[i] / sum
		gRatio := origG[i] / sum
		bRatio := origB[i] / sum

		L := lStr[i]

		// White point convergence.
		k := math.Pow(L, colorConvergence)
		outR[i] = L * (rRatio*(1.0-k) + k)
		outG[i] = L * (gRatio*(1.0-k) + k)
		outB[i] = L * (bRatio*(1.0-k) + k)
	}

	// Hybrid blend toward a scalar stretch, when asked for.
	if colorGrip < 1.0 || shadowConvergence > 0.01 {
		scalar := originalRGB.Clone()
		HyperbolicStretch(scalar, D, b, 0)

		scR, scG, scB := scalar.Pix[0], scalar.Pix[1], scalar.Pix[2]
		for i := 0; i < n; i++ {
			gripMap := colorGrip
			if shadowConvergence > 0.01 {
				gripMap *= math.Pow(lStr[i], shadowConvergence)
			}
			gripInv := 1.0 - gripMap

			outR[i] = outR[i]*gripMap + scR[i]*gripInv
			outG[i] = outG[i]*gripMap + scG[i]*gripInv
			outB[i] = outB[i]*gripMap + scB[i]*gripInv
		}
	}

	// Pedestal keeps the absolute black point off a hard zero.
	for _, plane := range rgb.Pix {
		for i, v := range plane {
			plane[i] = v*0.995 + 0.005
		}
	}
	rgb.Truncate(0, 1)
}
