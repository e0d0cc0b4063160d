// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import "github.com/strandlab/filview/geom"

// Single is a point-like element anchored in space that can bind a
// fiber point. The first single of a world acts as the user handle.
type Single struct {
	ID        int
	Anchor    geom.Vec3
	Stiffness float32

	fiber *Fiber
	point int
}

// Attach binds the single to a model point of f.
func (s *Single) Attach(f *Fiber, point int) {
	if f == nil || point < 0 || point >= len(f.Points) {
		return
	}
	s.fiber = f
	s.point = point
}

// Detach releases the bound fiber.
func (s *Single) Detach() {
	s.fiber = nil
	s.point = 0
}

// Attached reports whether the single is bound to a fiber.
func (s *Single) Attached() bool {
	return s.fiber != nil
}

// Position returns the bound fiber point, or the anchor when free.
func (s *Single) Position() geom.Vec3 {
	if s.fiber != nil {
		return s.fiber.Points[s.point]
	}
	return s.Anchor
}

// Force returns the spring force pulling the bound point toward the
// anchor, zero when the single is free.
func (s *Single) Force() geom.Vec3 {
	if s.fiber == nil {
		return geom.Vec3{}
	}
	return s.Anchor.Sub(s.Position()).Mul(s.Stiffness)
}

// Couple is an elastic bridge between points of two fibers.
type Couple struct {
	ID        int
	Stiffness float32

	fiberA, fiberB *Fiber
	pointA, pointB int
}

// Bridge binds the couple to one model point on each fiber.
func (c *Couple) Bridge(fa *Fiber, pa int, fb *Fiber, pb int) {
	if fa == nil || fb == nil ||
		pa < 0 || pa >= len(fa.Points) || pb < 0 || pb >= len(fb.Points) {
		return
	}
	c.fiberA, c.pointA = fa, pa
	c.fiberB, c.pointB = fb, pb
}

// Bridged reports whether both sides are bound.
func (c *Couple) Bridged() bool {
	return c.fiberA != nil && c.fiberB != nil
}

// PosA returns the bound point on the first fiber.
func (c *Couple) PosA() geom.Vec3 {
	if c.fiberA == nil {
		return geom.Vec3{}
	}
	return c.fiberA.Points[c.pointA]
}

// PosB returns the bound point on the second fiber.
func (c *Couple) PosB() geom.Vec3 {
	if c.fiberB == nil {
		return geom.Vec3{}
	}
	return c.fiberB.Points[c.pointB]
}
