package escape

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

func TestIterate(t *testing.T) {
	tcs := []struct {
		name string
		c    complex128
		want int
	}{
		{name: "origin", c: 0, want: 100},
		{name: "period two", c: -1, want: 100},
		{name: "i cycles", c: complex(0, 1), want: 100},
		{name: "outside radius", c: 3, want: 0},
		{name: "on radius", c: 2, want: 1},
		{name: "one", c: 1, want: 2},
		{name: "far imaginary", c: complex(0, -5), want: 0},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Iterate(tc.c, 100, 4.0))
		})
	}
}

func TestIterateNoBudget(t *testing.T) {
	assert.Equal(t, 0, Iterate(0, 0, 4.0))
	assert.Equal(t, 0, Iterate(0, -3, 4.0))
}

func TestIterateRadius(t *testing.T) {
	// With radius 3 the orbit of 1 (1, 2, 5) escapes one step later.
	assert.Equal(t, 2, Iterate(1, 100, 9.0))
	assert.Equal(t, 1, Iterate(1, 100, 3.0))
}

func TestComputeGridShape(t *testing.T) {
	v := viewport.Default()
	v.MaxIterations = 50

	for _, size := range [][2]int{{1, 1}, {7, 3}, {3, 7}, {64, 48}} {
		grid, err := ComputeGrid(size[0], size[1], v)
		require.NoError(t, err)

		assert.Equal(t, size[0], grid.Width)
		assert.Equal(t, size[1], grid.Height)

		rows := grid.Rows()
		require.Len(t, rows, size[1])
		for _, row := range rows {
			require.Len(t, row, size[0])
			for _, n := range row {
				assert.GreaterOrEqual(t, n, 0)
				assert.LessOrEqual(t, n, v.MaxIterations)
			}
		}
	}
}

func TestComputeGridFixedPoints(t *testing.T) {
	v := viewport.Default()

	grid, err := ComputeGrid(300, 300, v)
	require.NoError(t, err)

	// Pixel (200, 150) maps exactly to c = 0.
	require.Equal(t, complex(0, 0), v.PointAt(200, 150, 300, 300))
	assert.Equal(t, v.MaxIterations, grid.At(200, 150))
	assert.True(t, grid.Inside(200, 150))

	// The corner (-2, -1.5) lies outside radius 2.
	assert.Equal(t, 0, grid.At(0, 0))
}

func TestComputeGridOutsideEscapesImmediately(t *testing.T) {
	v := viewport.Default()
	v.MinReal, v.MaxReal = 3, 4
	v.MinImag, v.MaxImag = 0, 1

	grid, err := ComputeGrid(10, 10, v)
	require.NoError(t, err)

	stats := grid.Stats()
	assert.Equal(t, 0, stats.Inside)
	assert.Equal(t, 100, stats.Escaped)
	assert.Equal(t, 0, stats.MaxEscape)
}

func TestComputeGridNoBudget(t *testing.T) {
	v := viewport.Default()
	v.MaxIterations = 0

	grid, err := ComputeGrid(20, 10, v)
	require.NoError(t, err)

	stats := grid.Stats()
	assert.Equal(t, 0, stats.Inside)
	assert.Equal(t, 200, stats.Escaped)
	assert.False(t, grid.Inside(10, 5))
}

func TestComputeGridInvalidResolution(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, 5}, {0, 0}} {
		grid, err := ComputeGrid(size[0], size[1], viewport.Default())
		require.Error(t, err)
		assert.Nil(t, grid)
		assert.True(t, errors.Is(err, ErrInvalidResolution))
	}

	_, err := ComputeGridSequential(-1, 1, viewport.Default())
	assert.True(t, errors.Is(err, ErrInvalidResolution))
}

func TestComputeGridCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	grid, err := NewCalculator(4).ComputeGridContext(ctx, 200, 200, viewport.Default())
	assert.Nil(t, grid)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestParallelMatchesSequential(t *testing.T) {
	starts := []viewport.Viewport{viewport.Default()}
	v, err := viewport.Landmark("seahorse-valley")
	require.NoError(t, err)
	v.MaxIterations = 300
	starts = append(starts, v)

	for _, start := range starts {
		want, err := ComputeGridSequential(97, 61, start)
		require.NoError(t, err)

		for _, workers := range []int{1, 2, 3, 8, 200} {
			got, err := NewCalculator(workers).ComputeGrid(97, 61, start)
			require.NoError(t, err)
			assert.Equal(t, want.Rows(), got.Rows(), "workers=%d", workers)
		}
	}
}

func TestStats(t *testing.T) {
	grid := newGrid(3, 2, 10)
	copy(grid.cells, []int{10, 2, 4, 10, 0, 6})

	stats := grid.Stats()
	assert.Equal(t, Stats{
		Inside:     2,
		Escaped:    4,
		MinEscape:  0,
		MaxEscape:  6,
		MeanEscape: 3,
	}, stats)

	assert.Equal(t, []int{10, 0, 6}, grid.Row(1))
	assert.Equal(t, 4, grid.At(2, 0))
}
