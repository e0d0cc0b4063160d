// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sim provides the simulation world the viewer displays:
// fibers, confining spaces, point-like singles and crosslinking
// couples, together with the worker that steps the world and the
// report generator.
//
// The world is a display fixture with deterministic motion, not a
// mechanics engine. Its contract (time, step counter, geometry
// accessors, reports, the worker lock) is what the display and capture
// layers rely on.
package sim

import (
	"math"
	"sync/atomic"

	"github.com/strandlab/filview/geom"
)

// Link is one elastic connection drawn by the links overlay.
type Link struct {
	A geom.Vec3
	B geom.Vec3
}

// World holds the simulation state.
//
// The slices are set up once before display starts; Step mutates
// geometry in place. The display path reads the world without locking,
// so a live frame may observe a partially stepped state. Capture paths
// that need a consistent snapshot hold the worker lock instead.
type World struct {
	Fibers  []*Fiber
	Spaces  []*Space
	Singles []*Single
	Couples []*Couple

	dim      int
	timeBits atomic.Uint64
	steps    atomic.Int64
}

// NewWorld creates an empty world of the given dimensionality (2 or 3).
func NewWorld(dim int) *World {
	if dim != 2 {
		dim = 3
	}
	return &World{dim: dim}
}

// Dim returns the world dimensionality.
func (w *World) Dim() int {
	return w.dim
}

// Time returns the simulated time in seconds.
func (w *World) Time() float64 {
	return math.Float64frombits(w.timeBits.Load())
}

// SetTime sets the simulated time.
func (w *World) SetTime(t float64) {
	w.timeBits.Store(math.Float64bits(t))
}

// Steps returns the number of steps taken since creation.
func (w *World) Steps() int64 {
	return w.steps.Load()
}

// Step advances the world by dt: fibers pivot about the origin at a
// per-fiber rate, attached singles and couples follow their fibers.
func (w *World) Step(dt float32) {
	for _, f := range w.Fibers {
		f.pivot(dt)
	}
	w.steps.Add(1)
	w.SetTime(w.Time() + float64(dt))
}

// Handle returns the single controlled by the user, or nil.
// The handle is the first single of the world.
func (w *World) Handle() *Single {
	if len(w.Singles) == 0 {
		return nil
	}
	return w.Singles[0]
}

// MaxExtension returns the largest extension over all spaces, zero
// when the world has none.
func (w *World) MaxExtension() float32 {
	var r float32
	for _, s := range w.Spaces {
		if e := s.MaxExtension(); e > r {
			r = e
		}
	}
	return r
}

// Periodic returns the first periodic space, or nil.
func (w *World) Periodic() *Space {
	for _, s := range w.Spaces {
		if s.Periodic() {
			return s
		}
	}
	return nil
}

// Links returns the elastic connections of the links overlay: anchor
// springs of attached singles and bridging couples.
func (w *World) Links() []Link {
	var out []Link
	for _, s := range w.Singles {
		if s.Attached() {
			out = append(out, Link{A: s.Anchor, B: s.Position()})
		}
	}
	for _, c := range w.Couples {
		if c.Bridged() {
			out = append(out, Link{A: c.PosA(), B: c.PosB()})
		}
	}
	return out
}
