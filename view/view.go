// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package view implements the viewing surface of the player: the
// camera (focus, shift, rotation, zoom) mapping the simulation world
// onto a render target, the per-frame open/close bracket, and the
// corner text overlays.
package view

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
	"github.com/strandlab/filview/render"
)

// overlayLineHeight matches the fixed overlay font of the canvas.
const overlayLineHeight = 13

var overlayColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

// View is the viewing surface of one window or offscreen target.
//
// Width and Height are the pixel dimensions of the surface. ViewSize
// is the extent of the visible world region at zoom one; Zoom above
// one narrows the visible region. Focus is the user-controlled look-at
// point, shift the automatic tracking offset on top of it.
type View struct {
	Width  int
	Height int

	ViewSize float32
	Zoom     float32
	Focus    geom.Vec3
	Rotation geom.Quat

	// AutoScale counts down the frames still subject to automatic
	// view sizing. TrackFlags is the tracking bitmask: 1 recenters on
	// the fiber centroid, 2 aligns with the nematic director, 4
	// orients along the principal components.
	AutoScale  int
	TrackFlags int

	// Stencil requests stenciled drawing from styles that support it.
	Stencil bool

	shift   geom.Vec3
	label   string
	message string
}

// New creates a view of the given pixel size with default camera
// settings: unit zoom, ten world units visible, one auto-scale pass.
func New(width, height int) *View {
	return &View{
		Width:     width,
		Height:    height,
		ViewSize:  10,
		Zoom:      1,
		Rotation:  geom.QuatIdentity(),
		AutoScale: 1,
	}
}

// Center returns the world point displayed at the center of the
// surface: the focus plus the automatic tracking shift.
func (v *View) Center() geom.Vec3 {
	return v.Focus.Add(v.shift)
}

// Recenter moves the tracking shift so that g becomes the center.
func (v *View) Recenter(g geom.Vec3) {
	v.shift = g.Sub(v.Focus)
}

// AlignWith rotates the view so that dir runs along the horizontal
// axis of the surface. A zero direction leaves the rotation unchanged.
func (v *View) AlignWith(dir geom.Vec3) {
	if dir.IsZero() {
		return
	}
	v.Rotation = geom.QuatBetween(dir.Normalized(), geom.V3(1, 0, 0))
}

// ZoomIn multiplies the zoom by f. Values below one zoom out.
func (v *View) ZoomIn(f float32) {
	if f > 0 {
		v.Zoom *= f
	}
}

// PixelSize returns the extent of one pixel in world units, following
// the shorter surface dimension.
func (v *View) PixelSize() float32 {
	s := math32.Min(float32(v.Width), float32(v.Height))
	if s <= 0 || v.Zoom <= 0 || v.ViewSize <= 0 {
		return 1
	}
	return v.ViewSize / (v.Zoom * s)
}

// SetLabel sets the corner label drawn at the bottom of the surface.
func (v *View) SetLabel(s string) {
	v.label = s
}

// Label returns the corner label.
func (v *View) Label() string {
	return v.label
}

// SetMessage sets the message drawn at the top of the surface.
func (v *View) SetMessage(s string) {
	v.message = s
}

// Message returns the top message.
func (v *View) Message() string {
	return v.message
}

// Viewport returns the world-to-pixel mapping of the full surface.
func (v *View) Viewport() render.Viewport {
	return render.Viewport{
		Center:   v.Center(),
		Rotation: v.Rotation,
		Scale:    1 / v.PixelSize(),
		OffsetX:  float32(v.Width) / 2,
		OffsetY:  float32(v.Height) / 2,
		Clip:     image.Rect(0, 0, v.Width, v.Height),
	}
}

// OpenFrame saves the canvas state and installs the camera mapping.
// Every OpenFrame must be paired with a CloseFrame.
func (v *View) OpenFrame(c render.Canvas) {
	c.Save()
	c.SetView(v.Viewport())
}

// CloseFrame draws the text overlays and restores the canvas state
// saved by OpenFrame. The label goes to the bottom left corner, the
// message to the top left.
func (v *View) CloseFrame(c render.Canvas) {
	if v.message != "" {
		c.Text(4, overlayLineHeight, v.message, overlayColor)
	}
	if v.label != "" {
		n := 1
		for _, r := range v.label {
			if r == '\n' {
				n++
			}
		}
		y := v.Height - 6 - (n-1)*overlayLineHeight
		c.Text(4, y, v.label, overlayColor)
	}
	c.Restore()
}
