package rgb0

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteFileDefaultRun(t *testing.T) {
	dir := t.TempDir()
	frames := solidFrames(2, 3, 2, RGB{G: 200})

	path, err := WriteFile(dir, 0, frames, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Sc-01-01.rgb"), path)

	c, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, frames, c.Frames)
}

func TestWriteFileRunNumbering(t *testing.T) {
	dir := t.TempDir()
	frames := solidFrames(1, 1, 1, RGB{})

	path, err := WriteFile(dir, 7, frames, nil)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "Sc-07-01.rgb"), path)
}

func TestWriteFileCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "captures", "card1")
	frames := solidFrames(1, 1, 1, RGB{})

	path, err := WriteFile(dir, 1, frames, nil)
	require.NoError(t, err)

	_, err = ReadFile(path)
	assert.NoError(t, err)
}

func TestWriteFileBadFrames(t *testing.T) {
	_, err := WriteFile(t.TempDir(), 1, nil, nil)
	requireValidationError(t, err)
}
