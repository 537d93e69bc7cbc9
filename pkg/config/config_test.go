package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/willbeason/mandel-explorer/pkg/explore"
	"github.com/willbeason/mandel-explorer/pkg/viewport"
)

func writeConfig(t *testing.T, dir, contents string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	start, err := c.Start()
	require.NoError(t, err)
	assert.Equal(t, explore.DefaultSnapshot(), start)
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
width = 400
height = 300
max_iterations = 250
history_capacity = 5
workers = 2
region = "elephant-valley"
`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 400, c.Width)
	assert.Equal(t, 300, c.Height)
	assert.Equal(t, 250, c.MaxIterations)
	assert.Equal(t, 5, c.HistoryCapacity)
	assert.Equal(t, 2, c.Workers)
	// Not set in the file.
	assert.Equal(t, viewport.DefaultRadiusSquared, c.RadiusSquared)

	opts, err := c.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, 400, opts.Width)
	assert.Equal(t, 5, opts.HistoryCapacity)
	require.NotNil(t, opts.Start)

	want, err := viewport.Landmark("elephant-valley")
	require.NoError(t, err)
	want.MaxIterations = 250
	assert.Equal(t, want, opts.Start.Viewport)
	assert.Equal(t, explore.White, opts.Start.Color)
}

func TestLoadInvalid(t *testing.T) {
	tcs := []struct {
		name     string
		contents string
	}{
		{name: "zero width", contents: "width = 0"},
		{name: "huge height", contents: "height = 100000"},
		{name: "no iterations", contents: "max_iterations = 0"},
		{name: "negative radius", contents: "radius_squared = -4.0"},
		{name: "no history", contents: "history_capacity = 0"},
		{name: "negative workers", contents: "workers = -1"},
		{name: "unknown region", contents: `region = "atlantis"`},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tc.contents)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalid))
		})
	}
}

func TestLoadUnknownRegion(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `region = "atlantis"`)
	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, viewport.ErrUnknownLandmark))
}

func TestSessionOptionsCapIterations(t *testing.T) {
	cfg := Default()
	opts, err := cfg.SessionOptions()
	require.NoError(t, err)
	assert.Equal(t, MaxIterations, opts.IterationLimit)
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "width = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalid))
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "max_iterations = 42")

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, c, err := Find(nested)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, filepath.Join(root, FileName), path)
	assert.Equal(t, 42, c.MaxIterations)
}

func TestFindMissing(t *testing.T) {
	// A fresh temp dir is unlikely to have a mandel.toml above it, but if it
	// does Find must still succeed.
	_, _, err := Find(t.TempDir())
	assert.NoError(t, err)
}
