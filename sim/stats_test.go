// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
)

// TestCentroid tests the mean of fiber points.
func TestCentroid(t *testing.T) {
	fibers := []*Fiber{
		{Points: []geom.Vec3{geom.V3(0, 0, 0), geom.V3(2, 0, 0)}},
		{Points: []geom.Vec3{geom.V3(0, 4, 0), geom.V3(2, 4, 0)}},
	}

	g, ok := Centroid(fibers)
	if !ok {
		t.Fatal("Centroid should succeed with points")
	}
	if !g.Approx(geom.V3(1, 2, 0), 1e-6) {
		t.Errorf("Centroid = %v, want (1, 2, 0)", g)
	}
}

// TestCentroidEmpty tests the no-point case.
func TestCentroidEmpty(t *testing.T) {
	if _, ok := Centroid(nil); ok {
		t.Error("Centroid of no fibers should report not ok")
	}
	if _, ok := Centroid([]*Fiber{{}}); ok {
		t.Error("Centroid of empty fibers should report not ok")
	}
}

// TestNematicDirector tests alignment extraction.
func TestNematicDirector(t *testing.T) {
	// Two fibers along y, one along x: y dominates.
	fibers := []*Fiber{
		{Points: []geom.Vec3{geom.V3(0, 0, 0), geom.V3(0, 1, 0), geom.V3(0, 2, 0)}},
		{Points: []geom.Vec3{geom.V3(1, 0, 0), geom.V3(1, 1, 0), geom.V3(1, 2, 0)}},
		{Points: []geom.Vec3{geom.V3(0, 0, 1), geom.V3(1, 0, 1)}},
	}

	d, ok := NematicDirector(fibers)
	if !ok {
		t.Fatal("NematicDirector should succeed with segments")
	}
	if math32.Abs(math32.Abs(d.Y)-1) > 1e-3 {
		t.Errorf("director = %v, want +/- y", d)
	}
	if math32.Abs(d.Norm()-1) > 1e-4 {
		t.Errorf("|director| = %v, want 1", d.Norm())
	}
}

// TestNematicDirectorEmpty tests the no-segment case.
func TestNematicDirectorEmpty(t *testing.T) {
	if _, ok := NematicDirector([]*Fiber{{Points: []geom.Vec3{geom.V3(1, 1, 1)}}}); ok {
		t.Error("NematicDirector without segments should report not ok")
	}
}

// TestPrincipalComponents tests the moment decomposition.
func TestPrincipalComponents(t *testing.T) {
	// Points spread widest along y, then x, then z.
	fibers := []*Fiber{
		{Points: []geom.Vec3{
			geom.V3(0, -4, 0), geom.V3(0, 4, 0),
			geom.V3(-2, 0, 0), geom.V3(2, 0, 0),
			geom.V3(0, 0, -1), geom.V3(0, 0, 1),
		}},
	}

	n, avg, axes, ok := PrincipalComponents(fibers)
	if !ok {
		t.Fatal("PrincipalComponents should succeed with points")
	}
	if n != 6 {
		t.Errorf("count = %d, want 6", n)
	}
	if !avg.Approx(geom.V3(0, 0, 0), 1e-5) {
		t.Errorf("centroid = %v, want origin", avg)
	}

	first := axes.Col(0)
	if math32.Abs(math32.Abs(first.Y)-1) > 1e-3 {
		t.Errorf("first axis = %v, want +/- y", first)
	}
	if math32.Abs(axes.Det()-1) > 1e-3 {
		t.Errorf("axes determinant = %v, want 1 (right-handed)", axes.Det())
	}
}

// TestPrincipalComponentsRotation tests feeding the axes to a quaternion.
func TestPrincipalComponentsRotation(t *testing.T) {
	fibers := []*Fiber{
		{Points: []geom.Vec3{
			geom.V3(0, -4, 0), geom.V3(0, 4, 0),
			geom.V3(-2, 0, 0), geom.V3(2, 0, 0),
			geom.V3(0, 0, -1), geom.V3(0, 0, 1),
		}},
	}

	_, _, axes, _ := PrincipalComponents(fibers)
	q := geom.QuatFromMat3(axes).Conjugate()

	// The inverse rotation maps the first principal axis onto x.
	got := q.Rotate(axes.Col(0))
	if math32.Abs(math32.Abs(got.X)-1) > 1e-3 {
		t.Errorf("rotated principal axis = %v, want +/- x", got)
	}
}
