// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package display renders a simulation world onto a canvas through one
// of three interchangeable styles: plain lines, graded segments or
// solid lit ribbons. A Prop value carries the settings shared by all
// styles and a PropBook assigns per-class colors.
package display

import (
	"image/color"

	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
)

// Style draws the world. A style is prepared once per frame, then
// drawn; SetPixelFactors and SetStencil adjust it to the surface and
// magnification before drawing.
type Style interface {
	// Tag returns the numeric style tag.
	Tag() int

	// SetPixelFactors sets the pixel extent in world units and the
	// multiplier applied to configured line widths and point sizes.
	SetPixelFactors(pixelSize, sizeFactor float32)

	// SetStencil toggles depth-ordered drawing for styles that honor it.
	SetStencil(on bool)

	// Prepare assigns drawing attributes to object classes appearing
	// in the world.
	Prepare(w *sim.World, book *PropBook) error

	// Draw renders one copy of the world.
	Draw(c render.Canvas, w *sim.World) error

	// DrawTiled renders the world and its periodic images up to tile
	// periods away along each periodic axis.
	DrawTiled(c render.Canvas, w *sim.World, tile int) error
}

// NewStyle creates the style with the given tag sharing the player's
// display settings. Unknown tags fall back to the line style.
func NewStyle(tag int, prop *Prop) Style {
	switch tag {
	case 2:
		return &GradedStyle{base: base{tag: 2, prop: prop}}
	case 3:
		return &SolidStyle{base: base{tag: 3, prop: prop}}
	}
	return &LineStyle{base: base{tag: 1, prop: prop}}
}

// base carries the state shared by the three styles.
type base struct {
	tag        int
	prop       *Prop
	book       *PropBook
	pixelSize  float32
	sizeFactor float32
	stencil    bool
}

// Tag returns the numeric style tag.
func (b *base) Tag() int {
	return b.tag
}

// SetPixelFactors sets the pixel extent in world units and the size
// multiplier.
func (b *base) SetPixelFactors(pixelSize, sizeFactor float32) {
	b.pixelSize = pixelSize
	b.sizeFactor = sizeFactor
}

// SetStencil toggles depth-ordered drawing.
func (b *base) SetStencil(on bool) {
	b.stencil = on
}

// Prepare assigns colors to the fiber classes of the world.
func (b *base) Prepare(w *sim.World, book *PropBook) error {
	for _, f := range w.Fibers {
		book.Fiber(f.Class)
	}
	b.book = book
	return nil
}

// lineWidth returns the effective stroke width in pixels.
func (b *base) lineWidth() float32 {
	return b.prop.LineWidth * b.factor()
}

// pointSize returns the effective point diameter in pixels.
func (b *base) pointSize() float32 {
	return b.prop.PointSize * b.factor()
}

func (b *base) factor() float32 {
	if b.sizeFactor > 0 {
		return b.sizeFactor
	}
	return 1
}

// fiberColor returns the class color, white before any Prepare.
func (b *base) fiberColor(f *sim.Fiber) color.RGBA {
	if b.book == nil {
		return color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	}
	return b.book.Fiber(f.Class).Color
}

// drawSingles marks singles as dots: attached ones bright, free ones gray.
func (b *base) drawSingles(c render.Canvas, w *sim.World) {
	if !b.prop.ShowSingles {
		return
	}
	c.SetPointSize(b.pointSize())
	var attached, free []geom.Vec3
	for _, s := range w.Singles {
		if s.Attached() {
			attached = append(attached, s.Position())
		} else {
			free = append(free, s.Position())
		}
	}
	c.SetColor(color.RGBA{R: 0xFF, G: 0x30, B: 0x30, A: 0xFF})
	c.Points(attached)
	c.SetColor(color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xFF})
	c.Points(free)
}

// drawSpaces outlines the confining spaces in the focal plane.
func (b *base) drawSpaces(c render.Canvas, w *sim.World) {
	if !b.prop.ShowSpaces {
		return
	}
	c.SetColor(color.RGBA{R: 0x50, G: 0x50, B: 0x50, A: 0xFF})
	c.SetLineWidth(1)
	for _, s := range w.Spaces {
		c.Polyline(spaceOutline(s))
	}
}

// spaceOutline returns a closed polyline tracing the space boundary
// in the z = 0 plane.
func spaceOutline(s *sim.Space) []geom.Vec3 {
	if s.Shape == sim.Sphere {
		const n = 64
		pts := make([]geom.Vec3, n+1)
		r := s.Extent.X
		for i := 0; i <= n; i++ {
			a := 2 * math32.Pi * float32(i) / n
			sin, cos := math32.Sincos(a)
			pts[i] = geom.V3(r*cos, r*sin, 0)
		}
		return pts
	}
	e := s.Extent
	return []geom.Vec3{
		geom.V3(-e.X, -e.Y, 0),
		geom.V3(e.X, -e.Y, 0),
		geom.V3(e.X, e.Y, 0),
		geom.V3(-e.X, e.Y, 0),
		geom.V3(-e.X, -e.Y, 0),
	}
}

// drawTiled renders draw for the world and its periodic images.
// With no periodic space or a non-positive tile count it renders once.
func drawTiled(c render.Canvas, w *sim.World, tile int, draw func() error) error {
	spc := w.Periodic()
	if spc == nil || tile < 1 {
		return draw()
	}
	p := spc.Period()
	vp := c.View()
	defer c.SetView(vp)
	for i := -tile; i <= tile; i++ {
		for j := -tile; j <= tile; j++ {
			d := geom.V3(float32(i)*p.X, float32(j)*p.Y, 0)
			c.SetView(vp.Shifted(d.Neg()))
			if err := draw(); err != nil {
				return err
			}
		}
	}
	return nil
}
