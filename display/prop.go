// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"github.com/strandlab/filview/property"
)

// Prop holds the display settings shared by all styles.
//
// LineWidth and PointSize are in pixels unless PointValue is positive,
// in which case they are multiples of PointValue in world units.
type Prop struct {
	Style      int
	Tile       int
	PointValue float32
	DrawLinks  bool
	LineWidth  float32
	PointSize  float32

	ShowFibers  bool
	ShowSingles bool
	ShowSpaces  bool

	Background color.RGBA
}

// Default returns the display settings of a fresh player.
func Default() *Prop {
	return &Prop{
		Style:       1,
		LineWidth:   2,
		PointSize:   5,
		ShowFibers:  true,
		ShowSingles: true,
		ShowSpaces:  true,
		Background:  color.RGBA{A: 0xFF},
	}
}

// Read applies assignments from s. Unknown keys are ignored so that
// display and view settings can share one string.
func (p *Prop) Read(s *property.Set) error {
	if _, err := s.Get("style", &p.Style); err != nil {
		return err
	}
	if _, err := s.Get("tile", &p.Tile); err != nil {
		return err
	}
	if _, err := s.Get("point_value", &p.PointValue); err != nil {
		return err
	}
	if _, err := s.Get("draw_links", &p.DrawLinks); err != nil {
		return err
	}
	if _, err := s.Get("line_width", &p.LineWidth); err != nil {
		return err
	}
	if _, err := s.Get("point_size", &p.PointSize); err != nil {
		return err
	}
	if _, err := s.Get("show_fibers", &p.ShowFibers); err != nil {
		return err
	}
	if _, err := s.Get("show_singles", &p.ShowSingles); err != nil {
		return err
	}
	if _, err := s.Get("show_spaces", &p.ShowSpaces); err != nil {
		return err
	}
	if s.Has("back_color") {
		var r, g, b float32
		if _, err := s.Get("back_color", &r, &g, &b); err != nil {
			return err
		}
		p.Background = color.RGBA{R: clamp8(r), G: clamp8(g), B: clamp8(b), A: 0xFF}
	}
	return nil
}

// clamp8 maps a unit-range component to 8 bits.
func clamp8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 0xFF
	}
	return uint8(f*255 + 0.5)
}

// Write dumps the settings as key=value assignments in the syntax
// Read accepts.
func (p *Prop) Write(w io.Writer) error {
	b01 := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	_, err := fmt.Fprintf(w,
		"style=%d\ntile=%d\npoint_value=%s\ndraw_links=%d\n"+
			"line_width=%s\npoint_size=%s\n"+
			"show_fibers=%d\nshow_singles=%d\nshow_spaces=%d\n"+
			"back_color=%s,%s,%s\n",
		p.Style, p.Tile, ftoa(p.PointValue), b01(p.DrawLinks),
		ftoa(p.LineWidth), ftoa(p.PointSize),
		b01(p.ShowFibers), b01(p.ShowSingles), b01(p.ShowSpaces),
		ftoa(float32(p.Background.R)/255), ftoa(float32(p.Background.G)/255),
		ftoa(float32(p.Background.B)/255))
	return err
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}
