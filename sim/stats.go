// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import "github.com/strandlab/filview/geom"

// Centroid returns the mean of all fiber model points.
// The second return is false when the fibers carry no points.
func Centroid(fibers []*Fiber) (geom.Vec3, bool) {
	var sum geom.Vec3
	n := 0
	for _, f := range fibers {
		for _, p := range f.Points {
			sum = sum.Add(p)
			n++
		}
	}
	if n == 0 {
		return geom.Vec3{}, false
	}
	return sum.Div(float32(n)), true
}

// NematicDirector returns the principal axis of the nematic order
// tensor accumulated over all fiber segments. The second return is
// false when the fibers carry no segments.
func NematicDirector(fibers []*Fiber) (geom.Vec3, bool) {
	var q geom.Mat3
	n := 0
	for _, f := range fibers {
		for i := 1; i < len(f.Points); i++ {
			d := f.Points[i].Sub(f.Points[i-1]).Normalized()
			if d.IsZero() {
				continue
			}
			a := [3]float32{d.X, d.Y, d.Z}
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					q[r*3+c] += a[r] * a[c]
				}
			}
			n++
		}
	}
	if n == 0 {
		return geom.Vec3{}, false
	}
	_, vecs := geom.SymEigen(q)
	return vecs.Col(0), true
}

// PrincipalComponents returns the point count, the centroid and the
// orthonormal principal axes (matrix columns, by decreasing variance)
// of the second moment of all fiber points about their centroid. The
// last return is false when the fibers carry no points.
func PrincipalComponents(fibers []*Fiber) (int, geom.Vec3, geom.Mat3, bool) {
	avg, ok := Centroid(fibers)
	if !ok {
		return 0, geom.Vec3{}, geom.Identity3(), false
	}
	var mom geom.Mat3
	n := 0
	for _, f := range fibers {
		for _, p := range f.Points {
			d := p.Sub(avg)
			a := [3]float32{d.X, d.Y, d.Z}
			for r := 0; r < 3; r++ {
				for c := 0; c < 3; c++ {
					mom[r*3+c] += a[r] * a[c]
				}
			}
			n++
		}
	}
	_, axes := geom.SymEigen(mom)
	return n, avg, axes, true
}
