package escape

// A Grid holds one escape count per pixel.
//
// A cell equal to MaxIterations did not escape. Row 0 is the MinImag edge of
// the viewport it was computed from.
type Grid struct {
	Width, Height int
	MaxIterations int

	// cells is row-major.
	cells []int
}

func newGrid(width, height, maxIterations int) *Grid {
	return &Grid{
		Width:         width,
		Height:        height,
		MaxIterations: maxIterations,
		cells:         make([]int, width*height),
	}
}

// At is the escape count of pixel (x, y).
func (g *Grid) At(x, y int) int {
	return g.cells[x+y*g.Width]
}

// Row returns row y. The slice aliases the grid.
func (g *Grid) Row(y int) []int {
	return g.cells[y*g.Width : (y+1)*g.Width]
}

// Rows copies the grid into a height x width array.
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.Height)
	for y := range rows {
		rows[y] = append([]int(nil), g.Row(y)...)
	}
	return rows
}

// Inside reports whether pixel (x, y) never escaped.
func (g *Grid) Inside(x, y int) bool {
	return g.inside(g.At(x, y))
}

// With no iteration budget every point escapes at 0.
func (g *Grid) inside(n int) bool {
	return g.MaxIterations > 0 && n >= g.MaxIterations
}

// Stats summarises a Grid.
type Stats struct {
	Inside  int
	Escaped int

	// MinEscape, MaxEscape and MeanEscape only consider escaped cells and are
	// zero when nothing escaped.
	MinEscape  int
	MaxEscape  int
	MeanEscape float64
}

func (g *Grid) Stats() Stats {
	var s Stats
	total := 0

	for _, n := range g.cells {
		if g.inside(n) {
			s.Inside++
			continue
		}

		if s.Escaped == 0 || n < s.MinEscape {
			s.MinEscape = n
		}
		if n > s.MaxEscape {
			s.MaxEscape = n
		}
		s.Escaped++
		total += n
	}

	if s.Escaped > 0 {
		s.MeanEscape = float64(total) / float64(s.Escaped)
	}

	return s
}
