package viewport

import (
	"math"

	"github.com/pkg/errors"
)

const (
	DefaultMinReal = -2.0
	DefaultMaxReal = 1.0
	DefaultMinImag = -1.5
	DefaultMaxImag = 1.5

	DefaultMaxIterations = 1000

	// DefaultRadiusSquared is an escape radius of 2.
	DefaultRadiusSquared = 4.0
)

var (
	ErrInvalidBounds     = errors.New("invalid viewport bounds")
	ErrInvalidResolution = errors.New("resolution must be positive")
)

// A Viewport is the rectangle of the complex plane being explored along with
// the parameters used to evaluate it.
//
// Viewports are plain values: copying one copies all of its state.
type Viewport struct {
	MinReal, MaxReal float64
	MinImag, MaxImag float64

	// MaxIterations is the iteration budget per point.
	MaxIterations int

	// RadiusSquared is compared against |z|^2 to decide whether an orbit escaped.
	RadiusSquared float64
}

// Default returns the canonical starting view of the whole set.
func Default() Viewport {
	return Viewport{
		MinReal:       DefaultMinReal,
		MaxReal:       DefaultMaxReal,
		MinImag:       DefaultMinImag,
		MaxImag:       DefaultMaxImag,
		MaxIterations: DefaultMaxIterations,
		RadiusSquared: DefaultRadiusSquared,
	}
}

// RealRange is the width of the viewport in the complex plane.
func (v Viewport) RealRange() float64 {
	return v.MaxReal - v.MinReal
}

// ImagRange is the height of the viewport in the complex plane.
func (v Viewport) ImagRange() float64 {
	return v.MaxImag - v.MinImag
}

// Area is the area of the viewport in the complex plane.
func (v Viewport) Area() float64 {
	return v.RealRange() * v.ImagRange()
}

// Center is the point in the middle of the viewport.
func (v Viewport) Center() complex128 {
	return complex(v.MinReal+v.RealRange()*0.5, v.MinImag+v.ImagRange()*0.5)
}

// PointAt maps pixel (px, py) of a width x height grid to the complex plane.
//
// Pixel (0, 0) is (MinReal, MinImag). Rows grow toward MaxImag, so a renderer
// drawing with Y pointing down must flip rows.
func (v Viewport) PointAt(px, py, width, height int) complex128 {
	re := v.MinReal + float64(px)*v.RealRange()/float64(width)
	im := v.MinImag + float64(py)*v.ImagRange()/float64(height)
	return complex(re, im)
}

// Validate reports whether the viewport describes a usable region.
//
// MaxIterations is not checked: a non-positive budget is degenerate but well
// defined.
func (v Viewport) Validate() error {
	for _, f := range []float64{v.MinReal, v.MaxReal, v.MinImag, v.MaxImag} {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(ErrInvalidBounds, "non-finite bound %v", f)
		}
	}

	if !(v.MinReal < v.MaxReal) {
		return errors.Wrapf(ErrInvalidBounds, "real axis %v..%v", v.MinReal, v.MaxReal)
	}
	if !(v.MinImag < v.MaxImag) {
		return errors.Wrapf(ErrInvalidBounds, "imaginary axis %v..%v", v.MinImag, v.MaxImag)
	}

	if !(v.RadiusSquared > 0) {
		return errors.Wrapf(ErrInvalidBounds, "radius squared %v", v.RadiusSquared)
	}

	return nil
}

// Magnification is the area of the default viewport divided by the area of v,
// as a percentage. The default view is 100.
func Magnification(v Viewport) float64 {
	return Default().Area() / v.Area() * 100.0
}
