// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"

	"github.com/strandlab/filview/geom"
)

// State is the graphics attribute snapshot saved and restored by the
// canvas state stack.
type State struct {
	Color     color.RGBA
	LineWidth float32
	PointSize float32
	Stipple   bool
	Lighting  bool
	View      Viewport
}

// DefaultState returns the initial state for a w x h canvas: white
// opaque drawing color, unit line and point sizes, and a viewport
// centered on the canvas at unit scale.
func DefaultState(w, h int) State {
	return State{
		Color:     color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
		LineWidth: 1,
		PointSize: 1,
		View: Viewport{
			Rotation: geom.QuatIdentity(),
			Scale:    1,
			OffsetX:  float32(w) / 2,
			OffsetY:  float32(h) / 2,
			Clip:     image.Rect(0, 0, w, h),
		},
	}
}

// Canvas is the drawing interface the display styles render through.
//
// All coordinates passed to Polyline, Points and Ribbon are world
// coordinates transformed by the current viewport; Text positions are
// pixels. Save and Restore manage the graphics attribute stack: a
// Restore with no matching Save is ignored.
type Canvas interface {
	// Size returns the canvas dimensions in pixels.
	Size() (width, height int)

	// Clear fills the current viewport's clip region with c.
	Clear(c color.RGBA)

	// SetView replaces the world-to-pixel mapping.
	SetView(vp Viewport)

	// View returns the current world-to-pixel mapping.
	View() Viewport

	// Save pushes the current graphics state.
	Save()

	// Restore pops the most recently saved graphics state.
	Restore()

	// Depth returns the number of saved states.
	Depth() int

	// SetColor sets the drawing color.
	SetColor(c color.RGBA)

	// SetLineWidth sets the line width in pixels.
	SetLineWidth(w float32)

	// SetPointSize sets the point diameter in pixels.
	SetPointSize(s float32)

	// SetStipple toggles dashed line drawing.
	SetStipple(on bool)

	// SetLighting toggles directional shading of ribbons.
	SetLighting(on bool)

	// Polyline strokes the open polyline through the given world points.
	Polyline(pts []geom.Vec3)

	// Points draws a dot at each world point.
	Points(pts []geom.Vec3)

	// Ribbon fills a band of the given world-space width along the
	// polyline through the given world points.
	Ribbon(pts []geom.Vec3, width float32)

	// Text draws s at the pixel position (x,y) of its first baseline.
	// Newlines start further baselines.
	Text(x, y int, s string, c color.RGBA)
}
