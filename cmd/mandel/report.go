package main

import (
	"fmt"
	"io"

	"charm.land/lipgloss/v2"

	"github.com/willbeason/mandel-explorer/pkg/explore"
	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	labelStyle   = lipgloss.NewStyle().Faint(true)
)

func label(s string) string {
	return labelStyle.Render(fmt.Sprintf("%-13s", s))
}

// report prints the state of s after step.
func report(w io.Writer, heading string, s *explore.Session, note string) {
	snap := s.Current()
	v := snap.Viewport
	stats := s.Grid().Stats()

	title := heading
	if note != "" {
		title += " (" + note + ")"
	}

	fmt.Fprintln(w, headingStyle.Render(title))
	fmt.Fprintf(w, "  %s %.17g .. %.17g\n", label("real"), v.MinReal, v.MaxReal)
	fmt.Fprintf(w, "  %s %.17g .. %.17g\n", label("imaginary"), v.MinImag, v.MaxImag)
	fmt.Fprintf(w, "  %s %d (radius² %g)\n", label("iterations"), v.MaxIterations, v.RadiusSquared)
	fmt.Fprintf(w, "  %s %s\n", label("color"), snap.Color)
	fmt.Fprintf(w, "  %s %.0f%%\n", label("magnification"), viewport.Magnification(v))
	fmt.Fprintf(w, "  %s undo %d, redo %d\n", label("history"), s.UndoDepth(), s.RedoDepth())
	fmt.Fprintf(w, "  %s inside %d, escaped %d", label("grid"), stats.Inside, stats.Escaped)
	if stats.Escaped > 0 {
		fmt.Fprintf(w, " (escape %d..%d, mean %.1f)", stats.MinEscape, stats.MaxEscape, stats.MeanEscape)
	}
	fmt.Fprintln(w)
}

func reportLandmarks(w io.Writer) error {
	for _, name := range viewport.LandmarkNames() {
		v, err := viewport.Landmark(name)
		if err != nil {
			return err
		}

		fmt.Fprintf(w, "%s\n  %s %g .. %g\n  %s %g .. %g\n  %s %.0f%%\n",
			headingStyle.Render(name),
			label("real"), v.MinReal, v.MaxReal,
			label("imaginary"), v.MinImag, v.MaxImag,
			label("magnification"), viewport.Magnification(v))
	}
	return nil
}
