// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
)

// LineStyle draws fibers as plain polylines with a dot on the growing
// end. It is the default style and the fallback for unknown tags.
type LineStyle struct {
	base
}

// Draw renders one copy of the world.
func (st *LineStyle) Draw(c render.Canvas, w *sim.World) error {
	st.drawSpaces(c, w)
	if st.prop.ShowFibers {
		c.SetLineWidth(st.lineWidth())
		for _, f := range w.Fibers {
			c.SetColor(st.fiberColor(f))
			c.Polyline(f.Points)
		}
		c.SetPointSize(st.pointSize())
		for _, f := range w.Fibers {
			if n := len(f.Points); n > 0 {
				c.SetColor(st.fiberColor(f))
				c.Points(f.Points[n-1:])
			}
		}
	}
	st.drawSingles(c, w)
	return nil
}

// DrawTiled renders the world and its periodic images.
func (st *LineStyle) DrawTiled(c render.Canvas, w *sim.World, tile int) error {
	return drawTiled(c, w, tile, func() error { return st.Draw(c, w) })
}

var _ Style = (*LineStyle)(nil)
