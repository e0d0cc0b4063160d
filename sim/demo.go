// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
)

// DemoWorld builds a small deterministic world: five spiral fibers in
// a spherical cell, a handle single attached to the first fiber, a
// free single and two bridging couples. Every invocation returns the
// same initial state.
func DemoWorld() *World {
	w := NewWorld(3)

	w.Spaces = []*Space{
		{Name: "cell", Shape: Sphere, Extent: geom.V3(5, 5, 5)},
	}

	const nf = 5
	const np = 13
	for f := 0; f < nf; f++ {
		class := "actin"
		if f%2 == 1 {
			class = "microtubule"
		}
		fib := &Fiber{
			ID:     f + 1,
			Class:  class,
			Points: make([]geom.Vec3, np),
			Rate:   0.1 + 0.05*float32(f),
		}
		z := 0.8 * (float32(f) - nf/2)
		for i := 0; i < np; i++ {
			t := float32(i) / (np - 1)
			a := 2*math32.Pi*float32(f)/nf + 1.2*t
			r := 1 + 2.5*t
			sin, cos := math32.Sincos(a)
			fib.Points[i] = geom.V3(r*cos, r*sin, z*t)
		}
		w.Fibers = append(w.Fibers, fib)
	}

	handle := &Single{ID: 1, Anchor: geom.V3(3, 0, 2), Stiffness: 10}
	handle.Attach(w.Fibers[0], np/2)
	free := &Single{ID: 2, Anchor: geom.V3(-2, 2, 0), Stiffness: 10}
	w.Singles = []*Single{handle, free}

	for i := 0; i < 2; i++ {
		c := &Couple{ID: i + 1, Stiffness: 100}
		c.Bridge(w.Fibers[i], np/2, w.Fibers[i+1], np/2)
		w.Couples = append(w.Couples, c)
	}

	return w
}
