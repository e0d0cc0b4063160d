// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"github.com/strandlab/filview/config"
	"github.com/strandlab/filview/display"
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
	"github.com/strandlab/filview/view"
)

// Option configures a Player during creation.
type Option func(*Player)

// WithWorld sets the simulation world to display.
// By default the player builds the deterministic demo world.
func WithWorld(w *sim.World) Option {
	return func(p *Player) {
		p.world = w
	}
}

// WithWorker sets the simulation worker. The worker's world replaces
// any world set separately.
func WithWorker(k *sim.Worker) Option {
	return func(p *Player) {
		p.worker = k
		p.world = k.World()
	}
}

// WithView sets the primary viewing surface.
func WithView(v *view.View) Option {
	return func(p *Player) {
		p.view = v
	}
}

// WithSize sets the pixel size of the default viewing surface.
// Ignored when WithView is also given.
func WithSize(width, height int) Option {
	return func(p *Player) {
		p.width = width
		p.height = height
	}
}

// WithTarget sets the render target. By default the best registered
// target backend is used at the surface size.
func WithTarget(t render.Target) Option {
	return func(p *Player) {
		p.target = t
	}
}

// WithPlay sets the playback settings record.
func WithPlay(pl *config.Play) Option {
	return func(p *Player) {
		p.play = pl
	}
}

// WithDisplay sets the display settings record.
func WithDisplay(d *display.Prop) Option {
	return func(p *Player) {
		p.prop = d
	}
}
