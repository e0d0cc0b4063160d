// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import (
	"sort"

	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
)

// SolidStyle draws fibers as lit ribbons of real-world width. With the
// stencil flag set, fibers are painted back to front so nearer ones
// occlude farther ones.
type SolidStyle struct {
	base
}

// Draw renders one copy of the world.
func (st *SolidStyle) Draw(c render.Canvas, w *sim.World) error {
	st.drawSpaces(c, w)
	if st.prop.ShowFibers {
		width := st.prop.LineWidth * st.factor() * st.worldPixel()
		fibers := w.Fibers
		if st.stencil {
			fibers = depthSorted(c.View(), fibers)
		}
		c.SetLighting(true)
		for _, f := range fibers {
			c.SetColor(st.fiberColor(f))
			c.Ribbon(f.Points, width)
		}
		c.SetLighting(false)
	}
	st.drawSingles(c, w)
	return nil
}

// DrawTiled renders the world and its periodic images.
func (st *SolidStyle) DrawTiled(c render.Canvas, w *sim.World, tile int) error {
	return drawTiled(c, w, tile, func() error { return st.Draw(c, w) })
}

// worldPixel returns the pixel extent in world units, one before any
// SetPixelFactors.
func (st *SolidStyle) worldPixel() float32 {
	if st.pixelSize > 0 {
		return st.pixelSize
	}
	return 1
}

// depthSorted returns the fibers ordered far to near along the
// viewing axis.
func depthSorted(vp render.Viewport, fibers []*sim.Fiber) []*sim.Fiber {
	out := make([]*sim.Fiber, len(fibers))
	copy(out, fibers)
	depth := func(f *sim.Fiber) float32 {
		if len(f.Points) == 0 {
			return 0
		}
		_, _, d := vp.Project(f.Points[len(f.Points)/2])
		return d
	}
	sort.SliceStable(out, func(i, j int) bool {
		return depth(out[i]) < depth(out[j])
	})
	return out
}

var _ Style = (*SolidStyle)(nil)
