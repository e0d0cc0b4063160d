// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import "github.com/strandlab/filview/geom"

// Shape selects the geometry of a Space.
type Shape int

const (
	// Sphere is a ball of radius Extent.X.
	Sphere Shape = iota
	// Box is a rectangular volume of half-extents Extent.
	Box
	// PeriodicBox is a Box with periodic boundaries.
	PeriodicBox
)

// String returns the shape name used in reports.
func (s Shape) String() string {
	switch s {
	case Sphere:
		return "sphere"
	case Box:
		return "box"
	case PeriodicBox:
		return "periodic"
	}
	return "unknown"
}

// Space is a confining volume centered on the origin.
type Space struct {
	Name   string
	Shape  Shape
	Extent geom.Vec3
}

// MaxExtension returns the maximal distance from the origin to a
// point of the space.
func (s *Space) MaxExtension() float32 {
	if s.Shape == Sphere {
		return s.Extent.X
	}
	return s.Extent.Norm()
}

// Periodic reports whether the space has periodic boundaries.
func (s *Space) Periodic() bool {
	return s.Shape == PeriodicBox
}

// Period returns the translation between periodic images, zero for
// non-periodic spaces.
func (s *Space) Period() geom.Vec3 {
	if !s.Periodic() {
		return geom.Vec3{}
	}
	return s.Extent.Mul(2)
}
