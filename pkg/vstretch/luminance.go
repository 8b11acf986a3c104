package vstretch

import(
	"github.com/veralux/veralux/pkg/sensor"
	"github.com/veralux/veralux/pkg/vframe"
)

// WeightedLuminance builds a single-channel luminance frame using the
// sensor's quantum efficiency weights, without any anchor subtraction.
// Mono frames are copied through.
func WeightedLuminance(f *vframe.Frame, profile sensor.Profile) *vframe.Frame {
	if !f.IsRGB() {
		luma := vframe.New(f.Width, f.Height, 1)
		copy(luma.Pix[0], f.Pix[0])
		return luma
	}

	luma := vframe.New(f.Width, f.Height, 1)
	r, g, b := f.Pix[0], f.Pix[1], f.Pix[2]
	l := luma.Pix[0]
	rw, gw, bw := profile.RWeight, profile.GWeight, profile.BWeight

	for i := range l {
		l[i] = rw*r[i] + gw*g[i] + bw*b[i]
	}
	return luma
}

// ExtractLuminance builds the photometric luminance after anchor
// subtraction. Output samples are always >= 0.
func ExtractLuminance(f *vframe.Frame, anchor float64, profile sensor.Profile) *vframe.Frame {
	luma := vframe.New(f.Width, f.Height, 1)

	if f.IsRGB() {
		r, g, b := f.Pix[0], f.Pix[1], f.Pix[2]
		l := luma.Pix[0]
		rw, gw, bw := profile.RWeight, profile.GWeight, profile.BWeight

		for i := range l {
			ra := maxf(0, r[i]-anchor)
			ga := maxf(0, g[i]-anchor)
			ba := maxf(0, b[i]-anchor)
			l[i] = rw*ra + gw*ga + bw*ba
		}
		return luma
	}

	copy(luma.Pix[0], f.Pix[0])
	luma.Truncate(anchor, 1)
	for i, v := range luma.Pix[0] {
		luma.Pix[0][i] = v - anchor
	}
	return luma
}

// AnchoredRGB subtracts the anchor from every channel, clamping at
// zero. This is the color-ratio source for reconstruction.
func AnchoredRGB(f *vframe.Frame, anchor float64) *vframe.Frame {
	out := vframe.New(f.Width, f.Height, f.Channels())

	if f.IsRGB() {
		for c := 0; c < 3; c++ {
			src, dst := f.Pix[c], out.Pix[c]
			for i, v := range src {
				dst[i] = maxf(0, v-anchor)
			}
		}
		return out
	}

	copy(out.Pix[0], f.Pix[0])
	out.Truncate(anchor, 1)
	for i, v := range out.Pix[0] {
		out.Pix[0][i] = v - anchor
	}
	return out
}
