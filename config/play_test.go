// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPlay(t *testing.T) {
	p := DefaultPlay()
	assert.False(t, p.Live)
	assert.Equal(t, 1, p.Period)
	assert.Equal(t, "png", p.ImageFormat)
	assert.Equal(t, 1, p.Downsample)
	assert.Equal(t, 1, p.Magnification)
}

func TestPlayRoundTrip(t *testing.T) {
	p := DefaultPlay()
	p.Live = true
	p.Period = 5
	p.Report = "fiber:length verbose=0"
	p.ImageDir = "frames"
	p.Magnification = 3

	path := filepath.Join(t.TempDir(), "play.yml")
	require.NoError(t, p.Save(path))

	back, err := LoadPlay(path)
	require.NoError(t, err)
	assert.Equal(t, p, back)
}

func TestLoadPlayPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "play.yml")
	require.NoError(t, os.WriteFile(path, []byte("period: 7\n"), 0o644))

	p, err := LoadPlay(path)
	require.NoError(t, err)
	assert.Equal(t, 7, p.Period)
	// Omitted settings keep their defaults.
	assert.Equal(t, "png", p.ImageFormat)
	assert.Equal(t, 1, p.Downsample)
}

func TestLoadPlayErrors(t *testing.T) {
	_, err := LoadPlay(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(path, []byte("period: [\n"), 0o644))
	_, err = LoadPlay(path)
	assert.Error(t, err)
}

func TestPlayWrite(t *testing.T) {
	p := DefaultPlay()
	p.Period = 4
	var b strings.Builder
	require.NoError(t, p.Write(&b))
	out := b.String()
	assert.Contains(t, out, "period=4\n")
	assert.Contains(t, out, "image_format=png\n")
	assert.Contains(t, out, "live=0\n")
}
