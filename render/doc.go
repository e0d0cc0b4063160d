// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render defines where and how frames are drawn.
//
// A Target is a pixel destination (an offscreen pixmap by default, GPU
// textures via externally registered backends). Its Canvas exposes the
// drawing operations the display styles use: clearing, polylines,
// points, ribbons and overlay text, all under a saved/restored graphics
// state and a world-to-pixel Viewport.
//
// Backends self-register through the priority Registry; New picks the
// best available one:
//
//	target, err := render.New(render.Config{Width: 800, Height: 600})
//
// Offscreen capture allocates sibling buffers through the Allocator
// capability. Backends that cannot provide an oversized buffer return
// an OversizeError and the caller falls back to tile compositing.
package render
