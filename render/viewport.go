// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"

	"github.com/strandlab/filview/geom"
)

// Viewport maps world coordinates onto target pixels.
//
// A world point is translated relative to Center, rotated, scaled by
// Scale (pixels per world unit) and placed relative to the pixel offset.
// Pixel y grows downward, world y upward. The Clip rectangle bounds all
// drawing; an empty Clip means the full target.
type Viewport struct {
	Center   geom.Vec3
	Rotation geom.Quat
	Scale    float32
	OffsetX  float32
	OffsetY  float32
	Clip     image.Rectangle
}

// Project returns the pixel position of a world point and its depth
// along the viewing axis (positive toward the viewer).
func (vp Viewport) Project(p geom.Vec3) (x, y, depth float32) {
	q := vp.Rotation.Rotate(p.Sub(vp.Center))
	return vp.OffsetX + q.X*vp.Scale, vp.OffsetY - q.Y*vp.Scale, q.Z
}

// Shifted returns the viewport with its world center displaced by d.
// Used when drawing periodic copies of the scene.
func (vp Viewport) Shifted(d geom.Vec3) Viewport {
	out := vp
	out.Center = vp.Center.Add(d)
	return out
}

// Tile returns the viewport for tile (i,j) of a mag x mag capture grid
// over a w x h window. With direct set, drawing goes into a single
// oversized buffer and only the clip moves per tile; otherwise each
// tile is drawn into its own w x h buffer and the offset moves instead.
// Both produce identical pixels for a tile, which keeps the direct and
// composited capture paths interchangeable.
func (vp Viewport) Tile(mag, i, j, w, h int, direct bool) Viewport {
	out := vp
	m := float32(mag)
	out.Scale = vp.Scale * m
	if direct {
		out.OffsetX = vp.OffsetX * m
		out.OffsetY = vp.OffsetY * m
		out.Clip = image.Rect(i*w, j*h, (i+1)*w, (j+1)*h)
	} else {
		out.OffsetX = vp.OffsetX*m - float32(i*w)
		out.OffsetY = vp.OffsetY*m - float32(j*h)
		out.Clip = image.Rect(0, 0, w, h)
	}
	return out
}
