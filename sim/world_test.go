// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
)

// TestDemoWorldDeterministic tests that the builder is reproducible.
func TestDemoWorldDeterministic(t *testing.T) {
	a := DemoWorld()
	b := DemoWorld()

	if len(a.Fibers) != len(b.Fibers) {
		t.Fatalf("fiber counts differ: %d vs %d", len(a.Fibers), len(b.Fibers))
	}
	for i := range a.Fibers {
		for j := range a.Fibers[i].Points {
			if a.Fibers[i].Points[j] != b.Fibers[i].Points[j] {
				t.Fatalf("fiber %d point %d differs", i, j)
			}
		}
	}
}

// TestWorldStep tests time, step counting and rigid fiber motion.
func TestWorldStep(t *testing.T) {
	w := DemoWorld()

	lengths := make([]float32, len(w.Fibers))
	for i, f := range w.Fibers {
		lengths[i] = f.Length()
	}

	w.Step(0.01)
	w.Step(0.01)

	if w.Steps() != 2 {
		t.Errorf("Steps() = %d, want 2", w.Steps())
	}
	if math32.Abs(float32(w.Time())-0.02) > 1e-6 {
		t.Errorf("Time() = %v, want 0.02", w.Time())
	}
	for i, f := range w.Fibers {
		if math32.Abs(f.Length()-lengths[i]) > 1e-3 {
			t.Errorf("fiber %d length changed: %v -> %v", i, lengths[i], f.Length())
		}
	}
}

// TestWorldMaxExtension tests the space scan.
func TestWorldMaxExtension(t *testing.T) {
	w := DemoWorld()
	if got := w.MaxExtension(); got != 5 {
		t.Errorf("MaxExtension() = %v, want 5", got)
	}

	empty := NewWorld(3)
	if got := empty.MaxExtension(); got != 0 {
		t.Errorf("MaxExtension() = %v, want 0 for empty world", got)
	}
}

// TestWorldPeriodic tests periodic space lookup.
func TestWorldPeriodic(t *testing.T) {
	w := DemoWorld()
	if w.Periodic() != nil {
		t.Error("demo world should not be periodic")
	}

	p := NewWorld(3)
	p.Spaces = []*Space{
		{Name: "cell", Shape: PeriodicBox, Extent: geom.V3(4, 3, 2)},
	}
	spc := p.Periodic()
	if spc == nil {
		t.Fatal("Periodic() = nil, want the periodic space")
	}
	if got := spc.Period(); !got.Approx(geom.V3(8, 6, 4), 1e-6) {
		t.Errorf("Period() = %v, want (8, 6, 4)", got)
	}
}

// TestWorldHandle tests the user handle and its spring force.
func TestWorldHandle(t *testing.T) {
	w := DemoWorld()

	h := w.Handle()
	if h == nil {
		t.Fatal("Handle() = nil")
	}
	if !h.Attached() {
		t.Fatal("demo handle should be attached")
	}

	want := h.Anchor.Sub(h.Position()).Mul(h.Stiffness)
	if !h.Force().Approx(want, 1e-5) {
		t.Errorf("Force() = %v, want %v", h.Force(), want)
	}

	h.Detach()
	if h.Attached() {
		t.Error("Attached() should be false after Detach")
	}
	if !h.Force().IsZero() {
		t.Errorf("Force() = %v, want zero when free", h.Force())
	}
	if !h.Position().Approx(h.Anchor, 1e-6) {
		t.Errorf("Position() = %v, want anchor when free", h.Position())
	}
}

// TestWorldLinks tests the overlay connections.
func TestWorldLinks(t *testing.T) {
	w := DemoWorld()

	// One attached single and two bridged couples.
	links := w.Links()
	if len(links) != 3 {
		t.Fatalf("len(Links()) = %d, want 3", len(links))
	}

	h := w.Handle()
	if !links[0].A.Approx(h.Anchor, 1e-6) || !links[0].B.Approx(h.Position(), 1e-6) {
		t.Error("first link should join the handle anchor to its fiber point")
	}

	w.Handle().Detach()
	if got := len(w.Links()); got != 2 {
		t.Errorf("len(Links()) = %d after detach, want 2", got)
	}
}

// TestFiberDirector tests the end-to-end direction.
func TestFiberDirector(t *testing.T) {
	f := &Fiber{Points: []geom.Vec3{geom.V3(1, 0, 0), geom.V3(1, 2, 0), geom.V3(1, 4, 0)}}

	if got := f.Director(); !got.Approx(geom.V3(0, 1, 0), 1e-6) {
		t.Errorf("Director() = %v, want (0, 1, 0)", got)
	}

	short := &Fiber{Points: []geom.Vec3{geom.V3(1, 0, 0)}}
	if got := short.Director(); !got.IsZero() {
		t.Errorf("Director() = %v, want zero for a single point", got)
	}
}
