package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/willbeason/mandel-explorer/pkg/explore"
	"github.com/willbeason/mandel-explorer/pkg/history"
	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

// FileName is the name Find looks for.
const FileName = "mandel.toml"

const (
	MaxResolution = 16384
	MaxIterations = 1_000_000
)

var ErrInvalid = errors.New("invalid config")

// Config is the contents of a mandel.toml file.
type Config struct {
	// Width and Height are the pixel resolution of the view.
	Width  int `toml:"width"`
	Height int `toml:"height"`

	MaxIterations int     `toml:"max_iterations"`
	RadiusSquared float64 `toml:"radius_squared"`

	// HistoryCapacity bounds the undo and redo stacks.
	HistoryCapacity int `toml:"history_capacity"`

	// Workers is the number of goroutines computing rows. Zero means one per CPU.
	Workers int `toml:"workers"`

	// Region names a landmark to start from instead of the whole set.
	Region string `toml:"region,omitempty"`
}

// Default matches an 850x850 window over the whole set.
func Default() Config {
	return Config{
		Width:           850,
		Height:          850,
		MaxIterations:   viewport.DefaultMaxIterations,
		RadiusSquared:   viewport.DefaultRadiusSquared,
		HistoryCapacity: history.DefaultCapacity,
	}
}

// Load reads the config at path. Keys missing from the file keep their
// default values.
func Load(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, errors.Wrapf(err, "parsing %s", path)
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrapf(err, "in %s", path)
	}

	return &config, nil
}

// Find searches for mandel.toml starting from dir and walking up to parent
// directories. Returns the path and parsed config, or ("", nil, nil) if not
// found.
func Find(dir string) (string, *Config, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			config, err := Load(path)
			if err != nil {
				return "", nil, err
			}
			return path, config, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil, nil
		}
		dir = parent
	}
}

func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 || c.Width > MaxResolution || c.Height > MaxResolution {
		return errors.Wrapf(ErrInvalid, "resolution %dx%d must be between 1 and %d", c.Width, c.Height, MaxResolution)
	}

	if c.MaxIterations <= 0 || c.MaxIterations > MaxIterations {
		return errors.Wrapf(ErrInvalid, "max_iterations %d must be between 1 and %d", c.MaxIterations, MaxIterations)
	}

	if !(c.RadiusSquared > 0) {
		return errors.Wrapf(ErrInvalid, "radius_squared %v must be positive", c.RadiusSquared)
	}

	if c.HistoryCapacity < 1 {
		return errors.Wrapf(ErrInvalid, "history_capacity %d must be at least 1", c.HistoryCapacity)
	}

	if c.Workers < 0 {
		return errors.Wrapf(ErrInvalid, "workers %d must not be negative", c.Workers)
	}

	if c.Region != "" {
		if _, err := viewport.Landmark(c.Region); err != nil {
			return fmt.Errorf("%w: region: %w", ErrInvalid, err)
		}
	}

	return nil
}

// Start is the snapshot a session configured by c begins with.
func (c *Config) Start() (explore.Snapshot, error) {
	snap := explore.DefaultSnapshot()

	if c.Region != "" {
		v, err := viewport.Landmark(c.Region)
		if err != nil {
			return snap, err
		}
		snap.Viewport = v
	}

	snap.Viewport.MaxIterations = c.MaxIterations
	snap.Viewport.RadiusSquared = c.RadiusSquared

	return snap, nil
}

// SessionOptions converts c into options for explore.NewSession.
func (c *Config) SessionOptions() (explore.Options, error) {
	start, err := c.Start()
	if err != nil {
		return explore.Options{}, err
	}

	return explore.Options{
		Width:           c.Width,
		Height:          c.Height,
		Workers:         c.Workers,
		HistoryCapacity: c.HistoryCapacity,
		Start:           &start,
		IterationLimit:  MaxIterations,
	}, nil
}
