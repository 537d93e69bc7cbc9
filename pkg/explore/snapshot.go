package explore

import (
	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

// A Snapshot is everything needed to restore what the user was looking at.
type Snapshot struct {
	Viewport viewport.Viewport
	Color    ColorChoice
}

// DefaultSnapshot is the state a session starts in and resets to.
func DefaultSnapshot() Snapshot {
	return Snapshot{
		Viewport: viewport.Default(),
		Color:    White,
	}
}
