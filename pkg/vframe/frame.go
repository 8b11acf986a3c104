package vframe

import(
	"fmt"
	"math"
)

// A Frame is a planar floating point pixel buffer: 1 (mono) or 3 (RGB)
// channels of identical dimensions, row-major, values nominally in
// [0,1]. Operators in this module transform frames in place; a frame
// is never shared between concurrent pipeline runs.
type Frame struct {
	Width, Height int
	Pix         [][]float64 // one flat plane per channel
}

func New(w, h, channels int) *Frame {
	f := &Frame{Width: w, Height: h, Pix: make([][]float64, channels)}
	for c := range f.Pix {
		f.Pix[c] = make([]float64, w*h)
	}
	return f
}

func (f *Frame)Channels() int   { return len(f.Pix) }
func (f *Frame)NumPixels() int  { return f.Width * f.Height }
func (f *Frame)IsRGB() bool     { return len(f.Pix) == 3 }

func (f *Frame)Get(c, x, y int) float64    { return f.Pix[c][y*f.Width+x] }
func (f *Frame)Set(c, x, y int, v float64) { f.Pix[c][y*f.Width+x] = v }

func (f *Frame)String() string {
	return fmt.Sprintf("Frame[%dx%d, %d channels]", f.Width, f.Height, len(f.Pix))
}

func (f *Frame)Clone() *Frame {
	g := &Frame{Width: f.Width, Height: f.Height, Pix: make([][]float64, len(f.Pix))}
	for c := range f.Pix {
		g.Pix[c] = make([]float64, len(f.Pix[c]))
		copy(g.Pix[c], f.Pix[c])
	}
	return g
}

// Truncate clamps every sample of every channel into [lo, hi].
func (f *Frame)Truncate(lo, hi float64) {
	for _, plane := range f.Pix {
		for i, v := range plane {
			if v < lo {
				plane[i] = lo
			} else if v > hi {
				plane[i] = hi
			}
		}
	}
}

// LocateMax returns the single brightest sample in the frame, with the
// channel and pixel position where it occurs.
func (f *Frame)LocateMax() (v float64, ch, x, y int) {
	v = math.Inf(-1)
	for c, plane := range f.Pix {
		for i, s := range plane {
			if s > v {
				v, ch, x, y = s, c, i%f.Width, i/f.Width
			}
		}
	}
	return
}
