package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/inkpage/core"
	"github.com/npillmayer/inkpage/core/canvas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMakeConfig(t *testing.T) {
	cfg, err := makeConfig(296, 128, "")
	require.NoError(t, err)
	assert.Equal(t, 24, cfg.RowLength())
	cfg, err = makeConfig(32, 29, "2, 4, 4, 3")
	require.NoError(t, err)
	assert.Equal(t, canvas.Margin{Top: 2, Left: 4, Right: 4, Bottom: 3}, cfg.Margin())
	_, err = makeConfig(32, 29, "2,4,4")
	assert.True(t, errors.Is(err, canvas.ErrInvalidMargin))
	_, err = makeConfig(32, 29, "2,4,x,3")
	assert.True(t, errors.Is(err, core.ConfigurationError))
}

func TestReadText(t *testing.T) {
	s, err := readText("flag text", "")
	require.NoError(t, err)
	assert.Equal(t, "flag text", s)
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("ファイル"), 0644))
	s, err = readText("", path)
	require.NoError(t, err)
	assert.Equal(t, "ファイル", s)
	_, err = readText("", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, core.EMISSING, core.Code(err))
}
