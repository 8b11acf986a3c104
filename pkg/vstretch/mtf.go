package vstretch

import(
	"github.com/veralux/veralux/pkg/vframe"
)

// ApplyMTF applies the midtone transfer function
//
//	g(x) = ((m-1)*x) / ((2m-1)*x - m)
//
// to every sample, in place. Where the denominator is exactly zero the
// output is 0. Result is truncated to [0,1].
func ApplyMTF(f *vframe.Frame, m float64) {
	m1 := m - 1.0
	m2 := 2.0*m - 1.0

	for _, plane := range f.Pix {
		for i, v := range plane {
			den := m2*v - m
			if den != 0 {
				plane[i] = m1 * v / den
			} else {
				plane[i] = 0
			}
		}
	}

	f.Truncate(0, 1)
}

// SolveMTF returns the MTF parameter that maps the current background
// level exactly onto the target. Only meaningful when current lies
// strictly inside (0,1).
func SolveMTF(current, target float64) float64 {
	return (current * (target - 1.0)) / (current*(2.0*target-1.0) - target)
}
