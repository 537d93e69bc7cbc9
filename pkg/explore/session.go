package explore

import (
	"log/slog"
	"sync"
	"time"

	"github.com/kr/pretty"
	"github.com/pkg/errors"

	"github.com/willbeason/mandel-explorer/pkg/escape"
	"github.com/willbeason/mandel-explorer/pkg/history"
	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

var ErrInvalidIterations = errors.New("invalid iteration count")

// Options configure a Session.
type Options struct {
	// Width and Height are the pixel resolution of the view.
	Width, Height int

	// Workers is the number of goroutines computing rows. Zero means one per CPU.
	Workers int

	// HistoryCapacity bounds the undo and redo stacks. Zero means
	// history.DefaultCapacity.
	HistoryCapacity int

	// Start is the snapshot the session begins with and returns to on Reset.
	// Nil means DefaultSnapshot. A session started elsewhere resets to Start,
	// not to the canonical default view.
	Start *Snapshot

	// IterationLimit caps SetMaxIterations. Zero means no cap.
	IterationLimit int

	Logger *slog.Logger
}

// A Session is one user's exploration: the live snapshot, its undo history,
// and the grid computed for it.
//
// All methods are safe for concurrent use; mutations are applied one at a time.
type Session struct {
	mu sync.Mutex

	width, height  int
	home           Snapshot
	iterationLimit int

	calc    *escape.Calculator
	history *history.History[Snapshot]
	grid    *escape.Grid

	logger *slog.Logger
}

// NewSession starts a session at opts.Start and computes its first grid.
func NewSession(opts Options) (*Session, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, errors.Wrapf(viewport.ErrInvalidResolution, "got %dx%d", opts.Width, opts.Height)
	}

	home := DefaultSnapshot()
	if opts.Start != nil {
		home = *opts.Start
	}
	if err := home.Viewport.Validate(); err != nil {
		return nil, errors.Wrap(err, "starting viewport")
	}

	capacity := opts.HistoryCapacity
	if capacity <= 0 {
		capacity = history.DefaultCapacity
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &Session{
		width:          opts.Width,
		height:         opts.Height,
		home:           home,
		iterationLimit: opts.IterationLimit,
		calc:           escape.NewCalculator(opts.Workers),
		history:        history.New(capacity, home),
		logger:         logger,
	}

	grid, err := s.compute(home.Viewport)
	if err != nil {
		return nil, err
	}
	s.grid = grid
	s.history.Reset(home)

	return s, nil
}

// compute runs the calculator for v at the session's resolution.
func (s *Session) compute(v viewport.Viewport) (*escape.Grid, error) {
	start := time.Now()

	grid, err := s.calc.ComputeGrid(s.width, s.height, v)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("computed grid",
		"width", s.width,
		"height", s.height,
		"maxIterations", v.MaxIterations,
		"workers", s.calc.Workers,
		"elapsed", time.Since(start))

	return grid, nil
}

// prettySnapshot formats a snapshot for debug logs only when the record is
// actually written.
type prettySnapshot Snapshot

func (p prettySnapshot) LogValue() slog.Value {
	return slog.StringValue(pretty.Sprint(Snapshot(p)))
}

// commit records next as the current snapshot along with its grid.
func (s *Session) commit(action string, next Snapshot, grid *escape.Grid) {
	if grid != nil {
		s.grid = grid
	}
	s.history.Record(next)

	s.logger.Debug("recorded change",
		"action", action,
		"undo", s.history.UndoLen(),
		"snapshot", prettySnapshot(next))
}

// Apply moves the view with g, recomputes the grid and records the change.
// On error the session is unchanged.
func (s *Session) Apply(g Gesture) (*escape.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := s.history.Current()

	v, err := g.Apply(s.width, s.height, current.Viewport)
	if err != nil {
		return nil, err
	}
	if err := v.Validate(); err != nil {
		return nil, errors.Wrapf(err, "applying %v", g)
	}

	grid, err := s.compute(v)
	if err != nil {
		return nil, err
	}

	next := current
	next.Viewport = v
	s.commit("gesture", next, grid)

	return grid, nil
}

// Pan moves the view by a pixel displacement.
func (s *Session) Pan(changeX, changeY float64) (*escape.Grid, error) {
	return s.Apply(Pan{ChangeX: changeX, ChangeY: changeY})
}

// Zoom narrows the view to the square of side length pixels at (anchorX, anchorY).
func (s *Session) Zoom(anchorX, anchorY, length float64) (*escape.Grid, error) {
	return s.Apply(Zoom{AnchorX: anchorX, AnchorY: anchorY, Length: length})
}

// SetMaxIterations changes the iteration budget and recomputes the grid.
func (s *Session) SetMaxIterations(n int) (*escape.Grid, error) {
	if n <= 0 {
		return nil, errors.Wrapf(ErrInvalidIterations, "got %d", n)
	}
	if s.iterationLimit > 0 && n > s.iterationLimit {
		return nil, errors.Wrapf(ErrInvalidIterations, "%d exceeds the limit of %d", n, s.iterationLimit)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.history.Current()
	next.Viewport.MaxIterations = n

	grid, err := s.compute(next.Viewport)
	if err != nil {
		return nil, err
	}

	s.commit("iterations", next, grid)
	return grid, nil
}

// CycleColor moves to the next display color. The grid is unaffected.
func (s *Session) CycleColor() ColorChoice {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.history.Current()
	next.Color = next.Color.Next()
	s.commit("color", next, nil)

	return next.Color
}

// restore recomputes the grid after history moved to snap.
func (s *Session) restore(snap Snapshot) (*escape.Grid, error) {
	grid, err := s.compute(snap.Viewport)
	if err != nil {
		return nil, err
	}
	s.grid = grid
	return grid, nil
}

// Undo returns to the previous snapshot. With nothing to undo it returns an
// error matching history.ErrEmptyHistory and changes nothing.
func (s *Session) Undo() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.history.Undo()
	if err != nil {
		s.logger.Debug("nothing to undo")
		return snap, err
	}

	if _, err := s.restore(snap); err != nil {
		return snap, err
	}

	s.logger.Debug("undone", "undo", s.history.UndoLen(), "redo", s.history.RedoLen())
	return snap, nil
}

// Redo reapplies the most recently undone snapshot. With nothing to redo it
// returns an error matching history.ErrEmptyHistory and changes nothing.
func (s *Session) Redo() (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.history.Redo()
	if err != nil {
		s.logger.Debug("nothing to redo")
		return snap, err
	}

	if _, err := s.restore(snap); err != nil {
		return snap, err
	}

	s.logger.Debug("redone", "undo", s.history.UndoLen(), "redo", s.history.RedoLen())
	return snap, nil
}

// Reset discards all history and returns to the starting snapshot.
func (s *Session) Reset() (*escape.Grid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := s.compute(s.home.Viewport)
	if err != nil {
		return nil, err
	}

	s.grid = grid
	s.history.Reset(s.home)
	s.logger.Debug("reset", "snapshot", prettySnapshot(s.home))

	return grid, nil
}

// Load adopts a snapshot from outside the session, such as one read back
// from storage. The change is recorded so it can be undone.
func (s *Session) Load(snap Snapshot) (*escape.Grid, error) {
	if err := snap.Viewport.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	grid, err := s.compute(snap.Viewport)
	if err != nil {
		return nil, err
	}

	s.commit("load", snap, grid)
	return grid, nil
}

// Current is the live snapshot.
func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.Current()
}

// Grid is the grid computed for the current snapshot.
func (s *Session) Grid() *escape.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid
}

// Magnification of the current view relative to the default view, as a percentage.
func (s *Session) Magnification() float64 {
	return viewport.Magnification(s.Current().Viewport)
}

func (s *Session) UndoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.UndoLen()
}

func (s *Session) RedoDepth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.history.RedoLen()
}

// Resolution is the pixel size of the view.
func (s *Session) Resolution() (width, height int) {
	return s.width, s.height
}
