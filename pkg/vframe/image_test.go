package vframe

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/mdouchement/hdr/hdrcolor"
)

func TestFromImageRGB(t *testing.T) {
	img := image.NewRGBA64(image.Rect(0, 0, 2, 1))
	img.SetRGBA64(0, 0, color.RGBA64{R: 0xffff, G: 0x8000, B: 0x0000, A: 0xffff})
	img.SetRGBA64(1, 0, color.RGBA64{R: 0x1000, G: 0x1000, B: 0x1000, A: 0xffff})

	src := FromImage(img)
	if src.Format != U16 || src.Channels() != 3 {
		t.Fatalf("source: format %s, %d channels", src.Format, src.Channels())
	}
	if src.U16Pix[0][0] != 0xffff || src.U16Pix[1][0] != 0x8000 || src.U16Pix[2][0] != 0 {
		t.Errorf("pixel 0: got %v %v %v", src.U16Pix[0][0], src.U16Pix[1][0], src.U16Pix[2][0])
	}
}

func TestFromImageGrayBecomesMono(t *testing.T) {
	img := image.NewGray16(image.Rect(0, 0, 2, 2))
	img.SetGray16(1, 1, color.Gray16{Y: 0xffff})

	src := FromImage(img)
	if src.Channels() != 1 {
		t.Fatalf("gray source should be mono, got %d channels", src.Channels())
	}
	if src.U16Pix[0][3] != 0xffff {
		t.Errorf("gray pixel: got %v", src.U16Pix[0][3])
	}
}

func TestHDRAtMonoReplicates(t *testing.T) {
	f := New(1, 1, 1)
	f.Pix[0][0] = 0.3

	c := f.HDRAt(0, 0).(hdrcolor.RGB)
	if c.R != 0.3 || c.G != 0.3 || c.B != 0.3 {
		t.Errorf("mono HDRAt: got %+v", c)
	}
}

func TestFromHDRRoundTrip(t *testing.T) {
	f := New(2, 1, 3)
	f.Pix[0][0], f.Pix[1][0], f.Pix[2][0] = 0.2, 0.4, 0.6

	src := FromHDR(f)
	if src.Format != F64 {
		t.Fatalf("source format: %s", src.Format)
	}
	if math.Abs(src.F64Pix[1][0]-0.4) > 1e-12 {
		t.Errorf("green plane: got %v", src.F64Pix[1][0])
	}
}

func TestToRGBA64Clamps(t *testing.T) {
	f := New(2, 1, 3)
	for c := 0; c < 3; c++ {
		f.Pix[c][0] = 1.5
		f.Pix[c][1] = -0.5
	}

	img := f.ToRGBA64()
	hot := img.RGBA64At(0, 0)
	cold := img.RGBA64At(1, 0)
	if hot.R != 0xffff {
		t.Errorf("overbright pixel: got %v", hot.R)
	}
	if cold.R != 0 {
		t.Errorf("negative pixel: got %v", cold.R)
	}
	if hot.A != 0xffff {
		t.Errorf("alpha: got %v", hot.A)
	}
}

func TestBounds(t *testing.T) {
	f := New(7, 5, 1)
	b := f.Bounds()
	if b.Dx() != 7 || b.Dy() != 5 {
		t.Errorf("bounds: got %v", b)
	}
}
