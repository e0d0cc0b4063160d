// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"image/color"

	"github.com/strandlab/filview/geom"
	"github.com/strandlab/filview/property"
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/view"
)

var linkColor = color.RGBA{R: 0x30, G: 0xFF, B: 0x60, A: 0xFF}

// DisplayScene renders one frame of the world onto the player's
// target through v. Freshly staged display settings are applied
// first. The worker is not locked: a live frame may observe a
// partially stepped world, which is accepted for responsiveness.
func (p *Player) DisplayScene(v *view.View) {
	if text, ok := p.takePendingDisplay(); ok {
		p.ReadDisplayString(v, text)
	}
	p.prepareDisplay(v, 1)
	c := p.target.Canvas()
	v.OpenFrame(c)
	p.drawFrame(c)
	v.CloseFrame(c)
}

// prepareDisplay runs the camera automation, composes the on-frame
// text and adjusts the active style to the surface and magnification.
// A failing style preparation is logged; the frame is still drawn.
func (p *Player) prepareDisplay(v *view.View, mag float32) {
	if v.AutoScale > 0 {
		AutoScale(p.world.Spaces, v)
	}
	if v.TrackFlags != 0 {
		AutoTrack(p.world.Fibers, v)
	}
	v.SetLabel(p.BuildLabel())
	v.SetMessage(p.BuildReport(p.play.Report))

	pix := v.PixelSize()
	if pv := p.prop.PointValue; pv > 0 {
		// Configured sizes are multiples of PointValue in world units.
		p.style.SetPixelFactors(pix/mag, mag*pv/pix)
	} else {
		p.style.SetPixelFactors(pix/mag, mag)
	}
	p.style.SetStencil(v.Stencil && p.world.Dim() == 3)
	if err := p.style.Prepare(p.world, p.book); err != nil {
		logger().Error("prepare display failed", "err", err)
	}
}

// drawWorld clears the viewport and draws the world through the
// active style, tiled over the periodic domain when requested, with
// the optional links overlay on top. Draw failures are logged and
// never propagate: a broken frame must not take down the viewer.
func (p *Player) drawWorld(c render.Canvas) {
	c.Clear(p.prop.Background)
	var err error
	if p.world.Periodic() != nil && p.prop.Tile > 0 {
		err = p.style.DrawTiled(c, p.world, p.prop.Tile)
	} else {
		err = p.style.Draw(c, p.world)
	}
	if err != nil {
		logger().Error("display failed", "err", err)
		return
	}
	if p.prop.DrawLinks {
		p.drawLinks(c)
	}
}

// drawLinks overlays the elastic connections as wide dashed segments
// with enlarged anchor dots, unlit.
func (p *Player) drawLinks(c render.Canvas) {
	links := p.world.Links()
	if len(links) == 0 {
		return
	}
	c.Save()
	c.SetLighting(false)
	c.SetLineWidth(4)
	c.SetPointSize(8)
	c.SetStipple(true)
	c.SetColor(linkColor)
	seg := make([]geom.Vec3, 2)
	for _, l := range links {
		seg[0], seg[1] = l.A, l.B
		c.Polyline(seg)
		c.Points(seg[:1])
	}
	c.Restore()
}

// ReadDisplayString parses settings text and applies it to the
// display settings and to v. The surface's window size is forced back
// to its pre-parse values: window geometry belongs to the windowing
// layer, not to settings text. A style assignment takes effect
// immediately. Failures are logged, never raised.
func (p *Player) ReadDisplayString(v *view.View, text string) {
	w0, h0 := v.Width, v.Height
	set, err := property.Parse(text)
	if err != nil {
		logger().Error("reading display settings failed", "err", err)
		return
	}
	if err := p.prop.Read(set); err != nil {
		logger().Error("reading display settings failed", "err", err)
	} else if err := v.Read(set); err != nil {
		logger().Error("reading display settings failed", "err", err)
	}
	v.Width, v.Height = w0, h0
	if p.style != nil && p.prop.Style != p.style.Tag() {
		p.SetStyle(p.prop.Style)
	}
}
