// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
)

// Fiber is a filament discretized into a polyline of model points.
type Fiber struct {
	ID     int
	Class  string
	Points []geom.Vec3

	// Rate is the pivoting rate in radians per unit time used by the
	// deterministic demo dynamics.
	Rate float32
}

// Length returns the contour length of the polyline.
func (f *Fiber) Length() float32 {
	var sum float32
	for i := 1; i < len(f.Points); i++ {
		sum += f.Points[i].Sub(f.Points[i-1]).Norm()
	}
	return sum
}

// Director returns the normalized end-to-end direction, zero for
// fibers with less than two points.
func (f *Fiber) Director() geom.Vec3 {
	if len(f.Points) < 2 {
		return geom.Vec3{}
	}
	return f.Points[len(f.Points)-1].Sub(f.Points[0]).Normalized()
}

// pivot rotates the polyline about the z axis through the origin.
func (f *Fiber) pivot(dt float32) {
	a := f.Rate * dt
	if a == 0 {
		return
	}
	sin, cos := math32.Sincos(a)
	for i, p := range f.Points {
		f.Points[i] = geom.V3(cos*p.X-sin*p.Y, sin*p.X+cos*p.Y, p.Z)
	}
}
