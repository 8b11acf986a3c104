package vframe

// Adapters between frames and golang's image libraries, plus the HDR
// image interfaces, so a frame can be fed to (or built from) anything
// that speaks image.Image or hdr.Image.

import(
	"image"
	"image/color"

	"github.com/mdouchement/hdr"
	"github.com/mdouchement/hdr/hdrcolor"
)

// Implement image.Image
func (f *Frame)ColorModel() color.Model { return hdrcolor.RGBModel }
func (f *Frame)Bounds() image.Rectangle {
	return image.Rectangle{Max: image.Point{f.Width, f.Height}}
}
func (f *Frame)At(x, y int) color.Color { return f.HDRAt(x, y) }

// Implement hdr.Image
func (f *Frame)Size() int { return f.Width * f.Height }
func (f *Frame)HDRAt(x, y int) hdrcolor.Color {
	if f.IsRGB() {
		return hdrcolor.RGB{R: f.Get(0, x, y), G: f.Get(1, x, y), B: f.Get(2, x, y)}
	}
	v := f.Get(0, x, y)
	return hdrcolor.RGB{R: v, G: v, B: v}
}

var _ image.Image = (*Frame)(nil)
var _ hdr.Image = (*Frame)(nil)

// FromImage wraps a standard LDR image as a 16-bit source buffer.
// Grayscale images become mono sources, everything else RGB.
func FromImage(img image.Image) Source {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	switch img.(type) {
	case *image.Gray, *image.Gray16:
		src := Source{Format: U16, Width: w, Height: h, U16Pix: make([][]uint16, 1)}
		src.U16Pix[0] = make([]uint16, w*h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				g, _, _, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
				src.U16Pix[0][y*w+x] = uint16(g)
			}
		}
		return src
	}

	src := Source{Format: U16, Width: w, Height: h, U16Pix: make([][]uint16, 3)}
	for c := 0; c < 3; c++ {
		src.U16Pix[c] = make([]uint16, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bb, _ := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			i := y*w + x
			src.U16Pix[0][i] = uint16(r)
			src.U16Pix[1][i] = uint16(g)
			src.U16Pix[2][i] = uint16(bb)
		}
	}
	return src
}

// FromHDR wraps a floating point HDR image as a float64 source buffer.
func FromHDR(img hdr.Image) Source {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	src := Source{Format: F64, Width: w, Height: h, F64Pix: make([][]float64, 3)}
	for c := 0; c < 3; c++ {
		src.F64Pix[c] = make([]float64, w*h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bb, _ := img.HDRAt(b.Min.X+x, b.Min.Y+y).HDRRGBA()
			i := y*w + x
			src.F64Pix[0][i] = r
			src.F64Pix[1][i] = g
			src.F64Pix[2][i] = bb
		}
	}
	return src
}

// ToRGBA64 renders the frame as a 16-bit LDR image, clamping into
// [0,1]. Mono frames come out gray.
func (f *Frame)ToRGBA64() *image.RGBA64 {
	img := image.NewRGBA64(f.Bounds())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.HDRAt(x, y).(hdrcolor.RGB)
			img.SetRGBA64(x, y, color.RGBA64{
				R: quant16(c.R),
				G: quant16(c.G),
				B: quant16(c.B),
				A: 0xffff,
			})
		}
	}
	return img
}

func quant16(v float64) uint16 {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return uint16(v * float64(0xFFFF))
}
