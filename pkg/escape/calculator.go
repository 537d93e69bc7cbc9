package escape

import (
	"context"
	"runtime"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

// ErrInvalidResolution is returned for grids without a positive width and height.
var ErrInvalidResolution = viewport.ErrInvalidResolution

// A Calculator computes escape-time grids, spreading rows over Workers goroutines.
type Calculator struct {
	Workers int
}

// NewCalculator returns a Calculator using the given number of workers, or one
// per CPU if workers is not positive.
func NewCalculator(workers int) *Calculator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Calculator{Workers: workers}
}

var defaultCalculator = NewCalculator(0)

// ComputeGrid computes a width x height grid for v with one worker per CPU.
func ComputeGrid(width, height int, v viewport.Viewport) (*Grid, error) {
	return defaultCalculator.ComputeGrid(width, height, v)
}

// ComputeGrid computes the escape count of every pixel of a width x height
// grid covering v.
//
// Every row is written by exactly one worker, so the result does not depend
// on the number of workers.
func (c *Calculator) ComputeGrid(width, height int, v viewport.Viewport) (*Grid, error) {
	return c.ComputeGridContext(context.Background(), width, height, v)
}

// ComputeGridContext is ComputeGrid, abandoning the grid between rows once ctx
// is done.
func (c *Calculator) ComputeGridContext(ctx context.Context, width, height int, v viewport.Viewport) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidResolution, "got %dx%d", width, height)
	}

	grid := newGrid(width, height, v.MaxIterations)

	parallel := c.Workers
	if parallel <= 0 {
		parallel = runtime.NumCPU()
	}
	if parallel > height {
		parallel = height
	}

	eg, ctx := errgroup.WithContext(ctx)
	yChannel := make(chan int)

	eg.Go(func() error {
		defer close(yChannel)
		for y := 0; y < height; y++ {
			select {
			case yChannel <- y:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	for i := 0; i < parallel; i++ {
		eg.Go(func() error {
			for y := range yChannel {
				if err := ctx.Err(); err != nil {
					return err
				}
				computeRow(grid, y, v)
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return grid, nil
}

// ComputeGridSequential computes the same grid as ComputeGrid on the calling
// goroutine.
func ComputeGridSequential(width, height int, v viewport.Viewport) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidResolution, "got %dx%d", width, height)
	}

	grid := newGrid(width, height, v.MaxIterations)
	for y := 0; y < height; y++ {
		computeRow(grid, y, v)
	}

	return grid, nil
}

func computeRow(grid *Grid, y int, v viewport.Viewport) {
	row := grid.Row(y)
	for x := range row {
		row[x] = Iterate(v.PointAt(x, y, grid.Width, grid.Height), v.MaxIterations, v.RadiusSquared)
	}
}
