package explore

import (
	"strings"

	"github.com/pkg/errors"
)

var ErrUnknownColor = errors.New("unknown color")

// ColorChoice is the display color of escaped points. It has no effect on
// the escape counts.
type ColorChoice int

const (
	White ColorChoice = iota
	Red
	Blue
)

var colorNames = [...]string{
	White: "white",
	Red:   "red",
	Blue:  "blue",
}

// Next is the color after c in the rotation white, red, blue.
func (c ColorChoice) Next() ColorChoice {
	return (c + 1) % ColorChoice(len(colorNames))
}

func (c ColorChoice) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "unknown"
	}
	return colorNames[c]
}

// ParseColorChoice is the inverse of String. Case is ignored.
func ParseColorChoice(s string) (ColorChoice, error) {
	for i, name := range colorNames {
		if strings.EqualFold(s, name) {
			return ColorChoice(i), nil
		}
	}
	return White, errors.Wrapf(ErrUnknownColor, "%q", s)
}
