package vframe

import(
	"errors"
	"fmt"
	"math"
)

// SampleFormat describes the native sample encoding of a Source
// buffer, as declared by whoever produced it.
type SampleFormat int

const (
	U8 SampleFormat = iota
	U16
	U32
	F32
	F64
	Complex
)

func (sf SampleFormat)String() string {
	switch sf {
	case U8:      return "uint8"
	case U16:     return "uint16"
	case U32:     return "uint32"
	case F32:     return "float32"
	case F64:     return "float64"
	case Complex: return "complex"
	}
	return fmt.Sprintf("SampleFormat(%d)", int(sf))
}

// ErrUnsupportedFormat is returned for sample encodings the engine
// cannot process (complex-valued images).
var ErrUnsupportedFormat = errors.New("complex images are not supported")

// A Source is an image buffer tagged with its native sample encoding.
// Exactly one of the plane sets is populated, matching Format. Planes
// are row-major, one per channel.
type Source struct {
	Format        SampleFormat
	Width, Height int

	U8Pix  [][]uint8
	U16Pix [][]uint16
	U32Pix [][]uint32
	F32Pix [][]float32
	F64Pix [][]float64
}

func (s Source)Channels() int {
	switch s.Format {
	case U8:  return len(s.U8Pix)
	case U16: return len(s.U16Pix)
	case U32: return len(s.U32Pix)
	case F32: return len(s.F32Pix)
	case F64: return len(s.F64Pix)
	}
	return 0
}

// Normalize maps a source buffer into a fresh float frame in [0,1].
// Fixed point samples are divided by their encoding maximum. Float
// samples are copied as-is, then range corrected: a maximum above 1.1
// means the data was really on a 0-65535 scale, unless it is above
// 100000, which means a 32-bit integer scale. Non-finite and negative
// samples become 0, and the result is clamped to [0,1].
func Normalize(src Source) (*Frame, error) {
	if src.Format == Complex {
		return nil, ErrUnsupportedFormat
	}

	nc := src.Channels()
	if nc != 1 && nc != 3 {
		return nil, fmt.Errorf("unsupported channel count %d (want 1 or 3)", nc)
	}

	f := New(src.Width, src.Height, nc)

	switch src.Format {
	case U8:
		for c := 0; c < nc; c++ {
			for i, v := range src.U8Pix[c] {
				f.Pix[c][i] = float64(v) / 255.0
			}
		}
	case U16:
		for c := 0; c < nc; c++ {
			for i, v := range src.U16Pix[c] {
				f.Pix[c][i] = float64(v) / 65535.0
			}
		}
	case U32:
		for c := 0; c < nc; c++ {
			for i, v := range src.U32Pix[c] {
				f.Pix[c][i] = float64(v) / 4294967295.0
			}
		}
	case F32:
		for c := 0; c < nc; c++ {
			for i, v := range src.F32Pix[c] {
				f.Pix[c][i] = float64(v)
			}
		}
		rangeCorrect(f)
	case F64:
		for c := 0; c < nc; c++ {
			copy(f.Pix[c], src.F64Pix[c])
		}
		rangeCorrect(f)
	}

	sanitize(f)
	f.Truncate(0, 1)
	return f, nil
}

// rangeCorrect rescales mis-labeled float data that was actually
// encoded on an integer scale.
func rangeCorrect(f *Frame) {
	maxVal := math.Inf(-1)
	for _, plane := range f.Pix {
		for _, v := range plane {
			if v > maxVal {
				maxVal = v
			}
		}
	}

	if maxVal <= 1.1 {
		return
	}

	div := 65535.0
	if maxVal >= 100000.0 {
		div = 4294967295.0
	}
	for _, plane := range f.Pix {
		for i := range plane {
			plane[i] /= div
		}
	}
}

func sanitize(f *Frame) {
	for _, plane := range f.Pix {
		for i, v := range plane {
			if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
				plane[i] = 0
			}
		}
	}
}
