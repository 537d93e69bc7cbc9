package explore

import (
	"fmt"
	"math"

	"github.com/pkg/errors"

	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

// A Gesture is a resolved user action that moves the viewport.
type Gesture interface {
	Apply(resX, resY int, v viewport.Viewport) (viewport.Viewport, error)
}

// Pan moves the view by a pixel-space displacement. Positive ChangeX moves
// toward larger real parts, positive ChangeY toward larger imaginary parts.
type Pan struct {
	ChangeX, ChangeY float64
}

func (p Pan) Apply(resX, resY int, v viewport.Viewport) (viewport.Viewport, error) {
	return viewport.Pan(resX, resY, v, p.ChangeX, p.ChangeY)
}

func (p Pan) String() string {
	return fmt.Sprintf("pan(%g, %g)", p.ChangeX, p.ChangeY)
}

// Zoom narrows the view to a square selection in screen space.
type Zoom struct {
	AnchorX, AnchorY float64
	Length           float64
}

func (z Zoom) Apply(resX, resY int, v viewport.Viewport) (viewport.Viewport, error) {
	return viewport.Zoom(resX, resY, v, z.AnchorX, z.AnchorY, z.Length)
}

func (z Zoom) String() string {
	return fmt.Sprintf("zoom(%g, %g, %g)", z.AnchorX, z.AnchorY, z.Length)
}

// DragMode is what a mouse drag does.
type DragMode int

const (
	DragZoom DragMode = iota
	DragPan
)

// ResolveDrag turns a drag from (pressX, pressY) to (releaseX, releaseY) in
// screen space into a Gesture.
//
// Panning travels the view in the direction of the drag. Zooming selects the
// square anchored at the press point whose side is the larger of the two drag
// distances, and only works when dragging from top-left to bottom-right.
func ResolveDrag(mode DragMode, pressX, pressY, releaseX, releaseY float64) (Gesture, error) {
	switch mode {
	case DragPan:
		// Screen Y points down and the imaginary axis points up.
		return Pan{ChangeX: releaseX - pressX, ChangeY: pressY - releaseY}, nil
	case DragZoom:
		dx := releaseX - pressX
		dy := releaseY - pressY
		if dx < 0 || dy < 0 {
			return nil, errors.Wrapf(viewport.ErrDegenerateZoom, "drag from (%g, %g) to (%g, %g) is not toward the bottom right", pressX, pressY, releaseX, releaseY)
		}

		length := math.Max(dx, dy)
		if length <= 0 {
			return nil, errors.Wrap(viewport.ErrDegenerateZoom, "empty selection")
		}

		return Zoom{AnchorX: pressX, AnchorY: pressY, Length: length}, nil
	default:
		return nil, errors.Errorf("unknown drag mode %d", mode)
	}
}
