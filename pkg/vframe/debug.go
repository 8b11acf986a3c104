package vframe

import(
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// DumpPNG saves one channel of the frame as a titled grayscale PNG,
// rescaled to the channel's own value range and gamma expanded so it
// looks sane to a human. Debugging aid only.
func (f *Frame)DumpPNG(ch int, title, filename string) error {
	if ch < 0 || ch >= len(f.Pix) {
		return fmt.Errorf("dump '%s': no channel %d", filename, ch)
	}

	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range f.Pix[ch] {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	if max <= min {
		max = min + 1e-9
	}

	img := image.NewRGBA64(f.Bounds())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			gray := gammaExpand((f.Get(ch, x, y) - min) / (max - min))
			g := uint16(gray * 65535.0)
			img.Set(x, y, color.RGBA64{g, g, g, 0xFFFF})
		}
	}

	dc := gg.NewContextForImage(img)
	dc.SetRGB(1, 1, 1)
	dc.DrawString(title, 20, 20)
	return dc.SavePNG(filename)
}

// Standard sRGB gamma expansion.
func gammaExpand(v float64) float64 {
	if v <= 0.0031308 {
		return 12.92 * v
	}
	return 1.055*math.Pow(v, 1.0/2.4) - 0.055
}
