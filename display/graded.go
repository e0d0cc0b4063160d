// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"image/color"

	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
)

// GradedStyle draws fibers segment by segment with brightness graded
// along the contour, dark at the minus end and full at the plus end,
// making polarity visible without arrowheads.
type GradedStyle struct {
	base
}

// Draw renders one copy of the world.
func (st *GradedStyle) Draw(c render.Canvas, w *sim.World) error {
	st.drawSpaces(c, w)
	if st.prop.ShowFibers {
		c.SetLineWidth(st.lineWidth())
		for _, f := range w.Fibers {
			col := st.fiberColor(f)
			n := len(f.Points)
			for i := 1; i < n; i++ {
				t := float32(i) / float32(n-1)
				c.SetColor(scaleColor(col, 0.35+0.65*t))
				c.Polyline(f.Points[i-1 : i+1])
			}
		}
	}
	st.drawSingles(c, w)
	return nil
}

// DrawTiled renders the world and its periodic images.
func (st *GradedStyle) DrawTiled(c render.Canvas, w *sim.World, tile int) error {
	return drawTiled(c, w, tile, func() error { return st.Draw(c, w) })
}

// scaleColor dims a color toward black, keeping alpha.
func scaleColor(col color.RGBA, f float32) color.RGBA {
	return color.RGBA{
		R: uint8(float32(col.R) * f),
		G: uint8(float32(col.G) * f),
		B: uint8(float32(col.B) * f),
		A: col.A,
	}
}

var _ Style = (*GradedStyle)(nil)
