// Package fractal computes escape-time values of the Mandelbrot recurrence
// over rectangular regions of the complex plane.
package fractal

// Value is the iteration index at which an orbit escaped, 0 if it never did
type Value = uint32

// Bounded is the sentinel for points whose orbit stayed within the bailout radius
const Bounded Value = 0

// MaxIterations is the largest iteration budget the explorer accepts
const MaxIterations = 1_000_000

// bailoutSq is the squared bailout radius (|z| > 2)
const bailoutSq = 4.0

// Point is a complex number as a pair of float64 components
type Point struct {
	Re, Im float64
}

// Instability iterates z = z² + c from z = 0 and returns the 1-based iteration
// at which |z| exceeds 2, or Bounded if it stays inside for maxIterations steps
func Instability(c Point, maxIterations uint32) Value {
	var zr, zi float64
	for n := uint32(1); n <= maxIterations && n != 0; n++ {
		// Explicit conversions block fused multiply-add so results match across architectures
		nr := float64(zr*zr) - float64(zi*zi) + c.Re
		zi = float64(2*zr*zi) + c.Im
		zr = nr
		if float64(zr*zr)+float64(zi*zi) > bailoutSq {
			return n
		}
	}
	return Bounded
}
