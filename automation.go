// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"github.com/strandlab/filview/geom"
	"github.com/strandlab/filview/sim"
	"github.com/strandlab/filview/view"
)

// zoomOutFactor leaves a framing margin around an auto-scaled view.
const zoomOutFactor = 0.933033

// AutoScale sizes the view to the largest space. With a positive
// maximum extension R the visible region becomes 2R zoomed out by a
// fixed margin, and the surface's auto-scale countdown decreases by
// one. Without any positive extension nothing changes, the countdown
// included.
func AutoScale(spaces []*sim.Space, v *view.View) {
	var r float32
	for _, s := range spaces {
		if e := s.MaxExtension(); e > r {
			r = e
		}
	}
	if r <= 0 {
		return
	}
	v.ViewSize = 2 * r
	v.ZoomIn(zoomOutFactor)
	v.AutoScale--
}

// AutoTrack points the camera at the fiber population following the
// surface's tracking bitmask, evaluated in fixed bit order:
//
//	1  recenter on the centroid of all fiber points
//	2  align the rotation with the mean nematic director
//	4  set the rotation from the principal components of the second
//	   moment, conjugated so the content appears upright
//
// Bit 4 overwrites the rotation bit 2 sets, so the order matters when
// both are requested in the same frame.
func AutoTrack(fibers []*sim.Fiber, v *view.View) {
	flags := v.TrackFlags
	if flags&1 != 0 {
		if g, ok := sim.Centroid(fibers); ok {
			v.Recenter(g)
		}
	}
	if flags&2 != 0 {
		if d, ok := sim.NematicDirector(fibers); ok {
			v.AlignWith(d)
		}
	}
	if flags&4 != 0 {
		if n, _, axes, ok := sim.PrincipalComponents(fibers); ok && n > 1 {
			v.Rotation = geom.QuatFromMat3(axes).Conjugate()
		}
	}
}
