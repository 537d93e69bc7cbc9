package escape

// Iterate runs the orbit of 0 under z -> z*z + c and returns the iteration at
// which |z|^2 first exceeds radiusSquared, or maxIterations if it never does.
func Iterate(c complex128, maxIterations int, radiusSquared float64) int {
	if maxIterations <= 0 {
		return 0
	}

	cRe, cIm := real(c), imag(c)
	zRe, zIm := 0.0, 0.0

	for n := 0; n < maxIterations; n++ {
		zRe, zIm = zRe*zRe-zIm*zIm+cRe, 2*zRe*zIm+cIm

		if zRe*zRe+zIm*zIm > radiusSquared {
			return n
		}
	}

	return maxIterations
}
