// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package filview drives the display and image capture of a filament
// simulation: display style management, on-frame text composition,
// automatic camera framing, per-frame render orchestration and
// high-resolution tiled image export.
//
// A Player ties together a simulation world with its worker, a
// viewing surface, a render target and the active display style:
//
//	p, err := filview.New()
//	if err != nil {
//		...
//	}
//	defer p.Close()
//	p.DisplayScene(p.View())
//	p.SaveView("image", 0, 1)
//
// The live display path never locks the simulation worker; the
// magnified capture path locks it for the whole multi-tile pass so
// every tile sees one simulation snapshot.
package filview

import (
	"sync"
	"sync/atomic"

	"github.com/strandlab/filview/config"
	"github.com/strandlab/filview/display"
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/sim"
	"github.com/strandlab/filview/view"
)

// Player is the long-lived viewer context.
//
// It owns the active display style and the graphics state the style
// pushed: SetStyle and Close keep the canvas state stack balanced at
// exactly one saved state per live style. Neither is safe for
// re-entrant use.
type Player struct {
	world  *sim.World
	worker *sim.Worker

	prop *display.Prop
	play *config.Play
	book *display.PropBook

	style  display.Style
	target render.Target
	view   *view.View
	views  []*view.View

	width  int
	height int

	pendingMu    sync.Mutex
	pendingText  string
	pendingFresh bool

	redraw atomic.Bool

	// drawFrame issues one draw of the world onto a canvas. It is the
	// callback repeated per tile during magnified capture.
	drawFrame func(render.Canvas)
}

// New creates a player. Without options it displays the demo world on
// an 800x600 surface rendered by the best registered target backend.
func New(opts ...Option) (*Player, error) {
	p := &Player{
		prop:   display.Default(),
		play:   config.DefaultPlay(),
		book:   display.NewPropBook(),
		width:  800,
		height: 600,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.world == nil {
		p.world = sim.DemoWorld()
	}
	if p.worker == nil {
		p.worker = sim.NewWorker(p.world)
	}
	if p.view == nil {
		p.view = view.New(p.width, p.height)
	}
	if p.target == nil {
		t, err := render.New(render.Config{Width: p.view.Width, Height: p.view.Height})
		if err != nil {
			return nil, err
		}
		p.target = t
	}
	p.views = []*view.View{p.view}
	p.drawFrame = p.drawWorld
	p.worker.SetPeriod(p.play.Period)
	p.SetStyle(p.prop.Style)
	return p, nil
}

// SetStyle replaces the active display style. Any tag outside 1..3
// silently selects the default line style. The graphics state pushed
// for the previous style is popped before a fresh state is pushed for
// the new one, then every registered viewing surface is re-initialized
// at its stored pixel size.
func (p *Player) SetStyle(tag int) {
	c := p.target.Canvas()
	if p.style != nil {
		c.Restore()
		p.style = nil
	}
	c.Save()
	p.style = display.NewStyle(tag, p.prop)
	p.prop.Style = p.style.Tag()
	for _, v := range p.views {
		c.SetView(v.Viewport())
	}
}

// Close releases the active style and pops the graphics state it
// pushed. The player must not be used afterward.
func (p *Player) Close() {
	if p.style != nil {
		p.target.Canvas().Restore()
		p.style = nil
	}
}

// RegisterView adds a viewing surface to be re-initialized on style
// changes. The primary surface is registered at creation.
func (p *Player) RegisterView(v *view.View) {
	for _, have := range p.views {
		if have == v {
			return
		}
	}
	p.views = append(p.views, v)
}

// World returns the displayed simulation world.
func (p *Player) World() *sim.World {
	return p.world
}

// Worker returns the simulation worker.
func (p *Player) Worker() *sim.Worker {
	return p.worker
}

// View returns the primary viewing surface.
func (p *Player) View() *view.View {
	return p.view
}

// Target returns the render target.
func (p *Player) Target() render.Target {
	return p.target
}

// Display returns the display settings record.
func (p *Player) Display() *display.Prop {
	return p.prop
}

// Play returns the playback settings record.
func (p *Player) Play() *config.Play {
	return p.play
}

// Style returns the active display style.
func (p *Player) Style() display.Style {
	return p.style
}

// SetDisplayString stages settings text to be applied at the start of
// the next displayed frame. Safe for concurrent use; a later call
// replaces an unapplied earlier one.
func (p *Player) SetDisplayString(text string) {
	p.pendingMu.Lock()
	p.pendingText = text
	p.pendingFresh = true
	p.pendingMu.Unlock()
}

// takePendingDisplay returns the staged settings text once.
func (p *Player) takePendingDisplay() (string, bool) {
	p.pendingMu.Lock()
	defer p.pendingMu.Unlock()
	if !p.pendingFresh {
		return "", false
	}
	p.pendingFresh = false
	return p.pendingText, true
}

// NeedsRedraw reports and clears the pending redisplay request.
// Indexed magnified capture sets the request because the worker lock
// it held may have deferred an interactive refresh.
func (p *Player) NeedsRedraw() bool {
	return p.redraw.Swap(false)
}

func (p *Player) requestRedraw() {
	p.redraw.Store(true)
}
