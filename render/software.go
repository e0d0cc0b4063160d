// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"image/color"
	"strings"

	"github.com/chewxy/math32"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/strandlab/filview/geom"
	"github.com/strandlab/filview/internal/raster"
)

// lightDir is the fixed world-space light direction used to shade
// ribbons when lighting is on.
var lightDir = geom.V3(0.577, 0.577, 0.577)

// SoftCanvas draws onto an *image.RGBA through the raster primitives.
type SoftCanvas struct {
	img   *image.RGBA
	state State
	stack []State
}

// NewSoftCanvas binds a software canvas to an image.
func NewSoftCanvas(img *image.RGBA) *SoftCanvas {
	b := img.Bounds()
	return &SoftCanvas{
		img:   img,
		state: DefaultState(b.Dx(), b.Dy()),
	}
}

// Size returns the canvas dimensions in pixels.
func (c *SoftCanvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// clip returns the effective clip rectangle of the current viewport.
func (c *SoftCanvas) clip() image.Rectangle {
	if c.state.View.Clip.Empty() {
		return c.img.Bounds()
	}
	return c.state.View.Clip.Intersect(c.img.Bounds())
}

// Clear fills the current clip region with c, replacing alpha.
func (c *SoftCanvas) Clear(col color.RGBA) {
	raster.Fill(c.img, c.clip(), col)
}

// SetView replaces the world-to-pixel mapping.
func (c *SoftCanvas) SetView(vp Viewport) {
	c.state.View = vp
}

// View returns the current world-to-pixel mapping.
func (c *SoftCanvas) View() Viewport {
	return c.state.View
}

// Save pushes the current graphics state.
func (c *SoftCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved graphics state.
// A Restore with no matching Save is ignored.
func (c *SoftCanvas) Restore() {
	if n := len(c.stack); n > 0 {
		c.state = c.stack[n-1]
		c.stack = c.stack[:n-1]
	}
}

// Depth returns the number of saved states.
func (c *SoftCanvas) Depth() int {
	return len(c.stack)
}

// SetColor sets the drawing color.
func (c *SoftCanvas) SetColor(col color.RGBA) {
	c.state.Color = col
}

// SetLineWidth sets the line width in pixels.
func (c *SoftCanvas) SetLineWidth(w float32) {
	c.state.LineWidth = w
}

// SetPointSize sets the point diameter in pixels.
func (c *SoftCanvas) SetPointSize(s float32) {
	c.state.PointSize = s
}

// SetStipple toggles dashed line drawing.
func (c *SoftCanvas) SetStipple(on bool) {
	c.state.Stipple = on
}

// SetLighting toggles directional shading of ribbons.
func (c *SoftCanvas) SetLighting(on bool) {
	c.state.Lighting = on
}

// Polyline strokes the open polyline through the given world points.
func (c *SoftCanvas) Polyline(pts []geom.Vec3) {
	if len(pts) < 2 {
		return
	}
	clip := c.clip()
	vp := c.state.View
	x0, y0, _ := vp.Project(pts[0])
	for _, p := range pts[1:] {
		x1, y1, _ := vp.Project(p)
		raster.Line(c.img, clip, x0, y0, x1, y1, c.state.LineWidth, c.state.Color, c.state.Stipple)
		x0, y0 = x1, y1
	}
}

// Points draws a dot at each world point.
func (c *SoftCanvas) Points(pts []geom.Vec3) {
	clip := c.clip()
	vp := c.state.View
	for _, p := range pts {
		x, y, _ := vp.Project(p)
		raster.Dot(c.img, clip, x, y, c.state.PointSize, c.state.Color)
	}
}

// Ribbon fills a band of the given world-space width along the
// polyline. With lighting on, segments facing the light are brighter.
func (c *SoftCanvas) Ribbon(pts []geom.Vec3, width float32) {
	if len(pts) < 2 {
		return
	}
	clip := c.clip()
	vp := c.state.View
	half := width * vp.Scale / 2
	if half < 0.5 {
		half = 0.5
	}
	for i := 1; i < len(pts); i++ {
		x0, y0, _ := vp.Project(pts[i-1])
		x1, y1, _ := vp.Project(pts[i])
		dx := x1 - x0
		dy := y1 - y0
		length := math32.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		px := -dy / length * half
		py := dx / length * half
		col := c.state.Color
		if c.state.Lighting {
			col = shade(col, pts[i].Sub(pts[i-1]))
		}
		raster.Poly(c.img, clip,
			[]float32{x0 + px, x1 + px, x1 - px, x0 - px},
			[]float32{y0 + py, y1 + py, y1 - py, y0 - py}, col)
		raster.Dot(c.img, clip, x1, y1, 2*half, col)
	}
	x, y, _ := vp.Project(pts[0])
	col := c.state.Color
	if c.state.Lighting {
		col = shade(col, pts[1].Sub(pts[0]))
	}
	raster.Dot(c.img, clip, x, y, 2*half, col)
}

// shade scales a color by a diffuse factor from the segment direction.
func shade(col color.RGBA, dir geom.Vec3) color.RGBA {
	d := dir.Normalized()
	f := 0.55 + 0.45*math32.Abs(d.Dot(lightDir))
	return color.RGBA{
		R: uint8(float32(col.R) * f),
		G: uint8(float32(col.G) * f),
		B: uint8(float32(col.B) * f),
		A: col.A,
	}
}

// Text draws s at the pixel position (x,y) of its first baseline.
func (c *SoftCanvas) Text(x, y int, s string, col color.RGBA) {
	if s == "" {
		return
	}
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(col),
		Face: face,
	}
	for i, line := range strings.Split(s, "\n") {
		d.Dot = fixed.P(x, y+i*face.Height)
		d.DrawString(line)
	}
}

// Ensure SoftCanvas implements Canvas.
var _ Canvas = (*SoftCanvas)(nil)
