package vframe

import (
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := New(4, 3, 3)
	if f.Width != 4 || f.Height != 3 {
		t.Errorf("dims: got %dx%d", f.Width, f.Height)
	}
	if !f.IsRGB() || f.Channels() != 3 {
		t.Errorf("channels: got %d", f.Channels())
	}
	if f.NumPixels() != 12 {
		t.Errorf("pixels: got %d", f.NumPixels())
	}
	if len(f.Pix[0]) != 12 {
		t.Errorf("plane length: got %d", len(f.Pix[0]))
	}
}

func TestGetSet(t *testing.T) {
	f := New(5, 4, 1)
	f.Set(0, 3, 2, 0.75)
	if got := f.Get(0, 3, 2); got != 0.75 {
		t.Errorf("get after set: got %v", got)
	}
	if got := f.Pix[0][2*5+3]; got != 0.75 {
		t.Errorf("flat index: got %v", got)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	f := New(2, 2, 3)
	f.Set(1, 0, 0, 0.5)

	g := f.Clone()
	g.Set(1, 0, 0, 0.9)

	if f.Get(1, 0, 0) != 0.5 {
		t.Errorf("clone shares storage with original")
	}
	if g.Get(1, 0, 0) != 0.9 {
		t.Errorf("clone lost the write")
	}
}

func TestTruncate(t *testing.T) {
	f := New(2, 1, 1)
	f.Pix[0][0] = -0.2
	f.Pix[0][1] = 1.7

	f.Truncate(0, 1)

	if f.Pix[0][0] != 0 || f.Pix[0][1] != 1 {
		t.Errorf("truncate: got %v", f.Pix[0])
	}
}

func TestLocateMax(t *testing.T) {
	f := New(4, 4, 3)
	for c := range f.Pix {
		for i := range f.Pix[c] {
			f.Pix[c][i] = 0.1
		}
	}
	f.Set(2, 3, 1, 0.95)

	v, ch, x, y := f.LocateMax()
	if v != 0.95 || ch != 2 || x != 3 || y != 1 {
		t.Errorf("locate max: got v=%v ch=%d (%d,%d)", v, ch, x, y)
	}
}
