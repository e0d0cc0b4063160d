// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package config holds the playback settings of the player and their
// on-disk YAML presets, plus a watcher for live display reloads.
package config

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Play holds the playback and export settings of a player.
//
// Period is the number of simulation steps taken per displayed frame.
// Downsample and Magnification apply to image export: exported pixel
// dimensions are Magnification times the surface size divided by
// Downsample.
type Play struct {
	Live   bool   `yaml:"live"`
	Period int    `yaml:"period"`
	Delay  int    `yaml:"delay"`
	Report string `yaml:"report,omitempty"`

	ImageDir      string `yaml:"image_dir,omitempty"`
	ImageFormat   string `yaml:"image_format"`
	Downsample    int    `yaml:"downsample"`
	Magnification int    `yaml:"magnification"`
}

// DefaultPlay returns the playback settings of a fresh player: live
// mode off, one step per frame, PNG export at native resolution.
func DefaultPlay() *Play {
	return &Play{
		Period:        1,
		Delay:         16,
		ImageFormat:   "png",
		Downsample:    1,
		Magnification: 1,
	}
}

// LoadPlay reads a preset file. Settings the file omits keep their
// defaults.
func LoadPlay(path string) (*Play, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	p := DefaultPlay()
	if err := yaml.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return p, nil
}

// Save writes the settings as a preset file LoadPlay reads back.
func (p *Play) Save(path string) error {
	data, err := yaml.Marshal(p)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Write dumps the settings as key=value assignments, one per line,
// in the style of the display parameter dump.
func (p *Play) Write(w io.Writer) error {
	b01 := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	_, err := fmt.Fprintf(w,
		"live=%d\nperiod=%d\ndelay=%d\nreport=%s\n"+
			"image_dir=%s\nimage_format=%s\ndownsample=%d\nmagnification=%d\n",
		b01(p.Live), p.Period, p.Delay, p.Report,
		p.ImageDir, p.ImageFormat, p.Downsample, p.Magnification)
	return err
}
