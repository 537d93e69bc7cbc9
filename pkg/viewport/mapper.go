package viewport

import (
	"math"

	"github.com/pkg/errors"
)

var ErrDegenerateZoom = errors.New("zoom selection must have a positive side length")

func checkResolution(resX, resY int) error {
	if resX <= 0 || resY <= 0 {
		return errors.Wrapf(ErrInvalidResolution, "got %dx%d", resX, resY)
	}
	return nil
}

// checkFinite rejects gesture inputs that would carry NaN or Inf into the bounds.
func checkFinite(name string, values ...float64) error {
	for _, f := range values {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return errors.Wrapf(ErrInvalidBounds, "non-finite %s %v", name, f)
		}
	}
	return nil
}

// checked returns next if its bounds are usable, and v with the error otherwise.
func checked(v, next Viewport) (Viewport, error) {
	if err := next.Validate(); err != nil {
		return v, err
	}
	return next, nil
}

// Pan shifts v by a pixel-space displacement.
//
// Each pixel moves the view by one pixel-step of the current viewport, so the
// size of the viewport never changes. Non-finite displacements, or ones so
// large the bounds overflow, fail with ErrInvalidBounds and return v unchanged.
func Pan(resX, resY int, v Viewport, changeX, changeY float64) (Viewport, error) {
	if err := checkResolution(resX, resY); err != nil {
		return v, err
	}

	if err := checkFinite("displacement", changeX, changeY); err != nil {
		return v, err
	}

	dRe := changeX * (v.RealRange() / float64(resX))
	dIm := changeY * (v.ImagRange() / float64(resY))

	next := v
	next.MinReal += dRe
	next.MaxReal += dRe
	next.MinImag += dIm
	next.MaxImag += dIm

	return checked(v, next)
}

// Zoom narrows v to a square selection of squareLength pixels whose top-left
// corner is (anchorX, anchorY) in screen space.
//
// Screen Y points down while the imaginary axis points up: anchorY = 0 is
// MaxImag. There is no way to zoom out; reset to Default instead.
func Zoom(resX, resY int, v Viewport, anchorX, anchorY, squareLength float64) (Viewport, error) {
	if err := checkResolution(resX, resY); err != nil {
		return v, err
	}
	if !(squareLength > 0) || math.IsInf(squareLength, 0) {
		return v, errors.Wrapf(ErrDegenerateZoom, "side length %v", squareLength)
	}
	if err := checkFinite("anchor", anchorX, anchorY); err != nil {
		return v, err
	}

	stepRe := v.RealRange() / float64(resX)
	stepIm := v.ImagRange() / float64(resY)

	minReal := v.MinReal + anchorX*stepRe
	maxImag := v.MaxImag - anchorY*stepIm

	next := v
	next.MinReal = minReal
	next.MaxReal = minReal + squareLength*stepRe
	next.MaxImag = maxImag
	next.MinImag = maxImag - squareLength*stepIm

	return checked(v, next)
}
