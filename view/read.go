// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package view

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/strandlab/filview/property"
)

// Read applies assignments from s to the view. Unknown keys are
// ignored so that display and view settings can share one string.
// The focus accepts two or three fields.
func (v *View) Read(s *property.Set) error {
	if _, err := s.Get("zoom", &v.Zoom); err != nil {
		return err
	}
	if _, err := s.Get("view_size", &v.ViewSize); err != nil {
		return err
	}
	if _, err := s.Get("auto_scale", &v.AutoScale); err != nil {
		return err
	}
	if _, err := s.Get("track_fibers", &v.TrackFlags); err != nil {
		return err
	}
	if _, err := s.Get("stencil", &v.Stencil); err != nil {
		return err
	}
	if s.Has("focus") {
		f := v.Focus
		n, err := s.Get("focus", &f.X, &f.Y, &f.Z)
		if err != nil && !(errors.Is(err, property.ErrTooFewValues) && n >= 2) {
			return err
		}
		v.Focus = f
	}
	if s.Has("rotation") {
		q := v.Rotation
		if _, err := s.Get("rotation", &q.X, &q.Y, &q.Z, &q.W); err != nil {
			return err
		}
		v.Rotation = q.Normalized()
	}
	if s.Has("window_size") {
		if _, err := s.Get("window_size", &v.Width, &v.Height); err != nil {
			return err
		}
	}
	return nil
}

// Write dumps the view settings as key=value assignments, one per
// line, in the syntax Read accepts.
func (v *View) Write(w io.Writer) error {
	b01 := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	_, err := fmt.Fprintf(w,
		"zoom=%s\nview_size=%s\nfocus=%s,%s,%s\nrotation=%s,%s,%s,%s\n"+
			"auto_scale=%d\ntrack_fibers=%d\nstencil=%d\nwindow_size=%d,%d\n",
		ftoa(v.Zoom), ftoa(v.ViewSize),
		ftoa(v.Focus.X), ftoa(v.Focus.Y), ftoa(v.Focus.Z),
		ftoa(v.Rotation.X), ftoa(v.Rotation.Y), ftoa(v.Rotation.Z), ftoa(v.Rotation.W),
		v.AutoScale, v.TrackFlags, b01(v.Stencil), v.Width, v.Height)
	return err
}

func ftoa(f float32) string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

// WriteHelp describes the settings Read understands.
func WriteHelp(w io.Writer) {
	fmt.Fprint(w, `Viewing surface settings (key=value):
 zoom=REAL          magnification factor
 view_size=REAL     extent of the visible world region
 focus=X,Y[,Z]      world point at the center of the view
 rotation=X,Y,Z,W   view rotation quaternion
 auto_scale=INT     frames left with automatic view sizing
 track_fibers=INT   tracking bitmask: 1 center, 2 director, 4 components
 stencil=BOOL       stenciled drawing in 3D styles
 window_size=W,H    surface size in pixels
`)
}
