// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"strconv"

	"github.com/gogpu/gputypes"
)

// maxPixmapDim is the default cap on pixmap target dimensions, matching
// common GPU texture size limits so software and GPU backends reject
// the same oversized requests.
const maxPixmapDim = 16384

// Config describes a target to create.
type Config struct {
	// Width and Height are the target dimensions in pixels.
	Width  int
	Height int

	// Format is the pixel format. The zero value selects RGBA8.
	Format gputypes.TextureFormat

	// Device provides GPU access for GPU-backed backends.
	// The software backend ignores it.
	Device DeviceHandle

	// MaxDim caps the dimensions the target's Allocator accepts.
	// Zero selects the backend default.
	MaxDim int
}

// Target is a pixel destination for frame rendering.
//
// Targets with CPU-visible pixels return them through Pixels; GPU-only
// targets return nil there and readback is backend specific.
type Target interface {
	// Width returns the target width in pixels.
	Width() int

	// Height returns the target height in pixels.
	Height() int

	// Format returns the pixel format of the target.
	Format() gputypes.TextureFormat

	// Canvas returns the drawing interface bound to this target.
	Canvas() Canvas

	// Pixels returns direct access to RGBA pixel data, or nil.
	Pixels() []byte

	// Stride returns the number of bytes per pixel row.
	Stride() int
}

// Allocator is implemented by targets that can allocate sibling
// buffers from the same backend. High-resolution capture uses it for
// oversized and scratch buffers; a backend that cannot satisfy a size
// returns an OversizeError.
type Allocator interface {
	Alloc(width, height int) (Target, error)
}

// OversizeError reports a buffer request beyond the backend's limits.
type OversizeError struct {
	Width  int
	Height int
	Limit  int
}

func (e *OversizeError) Error() string {
	return "render: " + strconv.Itoa(e.Width) + "x" + strconv.Itoa(e.Height) +
		" buffer exceeds backend limit " + strconv.Itoa(e.Limit)
}

// PixmapTarget is the CPU-backed target used by the software backend.
type PixmapTarget struct {
	img    *image.RGBA
	canvas *SoftCanvas
	maxDim int
}

// NewPixmapTarget creates a CPU-backed target.
// Dimensions at or below zero are clamped to one pixel.
func NewPixmapTarget(width, height int) *PixmapTarget {
	return newPixmapTarget(width, height, maxPixmapDim)
}

func newPixmapTarget(width, height, maxDim int) *PixmapTarget {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	if maxDim < 1 {
		maxDim = maxPixmapDim
	}
	return &PixmapTarget{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		maxDim: maxDim,
	}
}

// Width returns the target width in pixels.
func (t *PixmapTarget) Width() int {
	return t.img.Bounds().Dx()
}

// Height returns the target height in pixels.
func (t *PixmapTarget) Height() int {
	return t.img.Bounds().Dy()
}

// Format returns the pixel format (RGBA8).
func (t *PixmapTarget) Format() gputypes.TextureFormat {
	return gputypes.TextureFormatRGBA8Unorm
}

// Canvas returns the software canvas bound to the target pixels.
func (t *PixmapTarget) Canvas() Canvas {
	if t.canvas == nil {
		t.canvas = NewSoftCanvas(t.img)
	}
	return t.canvas
}

// Pixels returns direct access to the pixel data.
func (t *PixmapTarget) Pixels() []byte {
	return t.img.Pix
}

// Stride returns the number of bytes per row.
func (t *PixmapTarget) Stride() int {
	return t.img.Stride
}

// Image returns the underlying *image.RGBA.
// The returned image shares memory with the target.
func (t *PixmapTarget) Image() *image.RGBA {
	return t.img
}

// Alloc returns a new pixmap target from the same backend, rejecting
// dimensions beyond the configured limit.
func (t *PixmapTarget) Alloc(width, height int) (Target, error) {
	if width > t.maxDim || height > t.maxDim {
		return nil, &OversizeError{Width: width, Height: height, Limit: t.maxDim}
	}
	return newPixmapTarget(width, height, t.maxDim), nil
}

// Ensure PixmapTarget implements Target and Allocator.
var (
	_ Target    = (*PixmapTarget)(nil)
	_ Allocator = (*PixmapTarget)(nil)
)
