package viewport

import (
	"sort"

	"github.com/pkg/errors"
)

var ErrUnknownLandmark = errors.New("unknown landmark")

func region(minReal, maxReal, minImag, maxImag float64) Viewport {
	v := Default()
	v.MinReal, v.MaxReal = minReal, maxReal
	v.MinImag, v.MaxImag = minImag, maxImag
	return v
}

// Classic regions of the Mandelbrot set.
var landmarks = map[string]Viewport{
	// Dense filaments and repeating "seahorse" curls.
	"seahorse-valley": region(-0.8, -0.7, 0.05, 0.15),

	// Large bulb with trunk-like tendrils.
	"elephant-valley": region(-1.85, -1.75, -0.10, -0.02),

	// Small copy of the set with tight spiral arms.
	"spiral-minibrot": region(-0.7435, -0.7420, 0.1310, 0.1325),

	// Threefold symmetric spiral structure.
	"triple-spiral": region(-0.7480, -0.7450, 0.0950, 0.0980),

	"valley-of-the-dragon": region(-0.7400, -0.7350, 0.1800, 0.1850),

	// Self-similar copy inside a spiral arm.
	"minibrot-in-mini-spiral": region(-1.7390, -1.7375, -0.0235, -0.0220),
}

// Landmark returns the named region with default evaluation parameters.
func Landmark(name string) (Viewport, error) {
	v, ok := landmarks[name]
	if !ok {
		return Viewport{}, errors.Wrapf(ErrUnknownLandmark, "%q", name)
	}
	return v, nil
}

// LandmarkNames lists every landmark in alphabetical order.
func LandmarkNames() []string {
	names := make([]string, 0, len(landmarks))
	for name := range landmarks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
