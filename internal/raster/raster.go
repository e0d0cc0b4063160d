// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package raster implements the pixel-level drawing primitives used by
// the software canvas: filled spans, thick and dashed line segments,
// round dots and convex polygon fills, all clipped to a rectangle and
// composited src-over.
package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
)

// dashOn is the length in pixels of the painted part of a dashed line;
// gaps have the same length.
const dashOn = 4

// Fill sets every pixel of the clip rectangle to c, replacing alpha.
func Fill(img *image.RGBA, clip image.Rectangle, c color.RGBA) {
	r := clip.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := img.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Pix[i+0] = c.R
			img.Pix[i+1] = c.G
			img.Pix[i+2] = c.B
			img.Pix[i+3] = c.A
			i += 4
		}
	}
}

// Line draws a segment from (x0,y0) to (x1,y1) with the given width.
// A width at or below 1.5 is drawn as a hairline. Dashed lines
// alternate painted and blank runs of equal length.
func Line(img *image.RGBA, clip image.Rectangle, x0, y0, x1, y1, width float32, c color.RGBA, dashed bool) {
	if width <= 1.5 {
		hairline(img, clip, x0, y0, x1, y1, c, dashed)
		return
	}
	if dashed {
		dx := x1 - x0
		dy := y1 - y0
		length := math32.Hypot(dx, dy)
		if length == 0 {
			Dot(img, clip, x0, y0, width, c)
			return
		}
		ux, uy := dx/length, dy/length
		for s := float32(0); s < length; s += 2 * dashOn {
			e := math32.Min(s+dashOn, length)
			thickSegment(img, clip, x0+ux*s, y0+uy*s, x0+ux*e, y0+uy*e, width, c)
		}
		return
	}
	thickSegment(img, clip, x0, y0, x1, y1, width, c)
}

func thickSegment(img *image.RGBA, clip image.Rectangle, x0, y0, x1, y1, width float32, c color.RGBA) {
	dx := x1 - x0
	dy := y1 - y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		Dot(img, clip, x0, y0, width, c)
		return
	}
	// Perpendicular half-width offset.
	px := -dy / length * width / 2
	py := dx / length * width / 2
	Poly(img, clip,
		[]float32{x0 + px, x1 + px, x1 - px, x0 - px},
		[]float32{y0 + py, y1 + py, y1 - py, y0 - py}, c)
	Dot(img, clip, x0, y0, width, c)
	Dot(img, clip, x1, y1, width, c)
}

func hairline(img *image.RGBA, clip image.Rectangle, x0, y0, x1, y1 float32, c color.RGBA, dashed bool) {
	dx := x1 - x0
	dy := y1 - y0
	steps := int(math32.Max(math32.Abs(dx), math32.Abs(dy))) + 1
	sx := dx / float32(steps)
	sy := dy / float32(steps)
	x, y := x0, y0
	for i := 0; i <= steps; i++ {
		if !dashed || (i/dashOn)%2 == 0 {
			blend(img, clip, floorInt(x), floorInt(y), c)
		}
		x += sx
		y += sy
	}
}

// Dot draws a filled disc of the given diameter centered on (cx,cy).
// Diameters below 1.5 paint a single pixel.
func Dot(img *image.RGBA, clip image.Rectangle, cx, cy, diameter float32, c color.RGBA) {
	if diameter <= 1.5 {
		blend(img, clip, floorInt(cx), floorInt(cy), c)
		return
	}
	r := diameter / 2
	rsq := r * r
	minX := int(math32.Floor(cx - r))
	maxX := int(math32.Ceil(cx + r))
	minY := int(math32.Floor(cy - r))
	maxY := int(math32.Ceil(cy + r))
	for y := minY; y <= maxY; y++ {
		fy := float32(y) + 0.5 - cy
		for x := minX; x <= maxX; x++ {
			fx := float32(x) + 0.5 - cx
			if fx*fx+fy*fy <= rsq {
				blend(img, clip, x, y, c)
			}
		}
	}
}

// Poly fills a convex polygon given by matching coordinate slices.
func Poly(img *image.RGBA, clip image.Rectangle, xs, ys []float32, c color.RGBA) {
	n := len(xs)
	if n < 3 || len(ys) != n {
		return
	}
	minY := ys[0]
	maxY := ys[0]
	for _, y := range ys[1:] {
		minY = math32.Min(minY, y)
		maxY = math32.Max(maxY, y)
	}
	y0 := int(math32.Floor(minY))
	y1 := int(math32.Ceil(maxY))
	for y := y0; y <= y1; y++ {
		fy := float32(y) + 0.5
		spanMin := float32(math32.MaxFloat32)
		spanMax := float32(-math32.MaxFloat32)
		hit := false
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			ya, yb := ys[i], ys[j]
			if (fy < ya) == (fy < yb) {
				continue
			}
			t := (fy - ya) / (yb - ya)
			x := xs[i] + t*(xs[j]-xs[i])
			spanMin = math32.Min(spanMin, x)
			spanMax = math32.Max(spanMax, x)
			hit = true
		}
		if !hit {
			continue
		}
		for x := floorInt(spanMin + 0.5); x < floorInt(spanMax+0.5); x++ {
			blend(img, clip, x, y, c)
		}
	}
}

// floorInt converts a coordinate to a pixel index. Plain int casts
// truncate toward zero, which would alias coordinates in (-1, 0) onto
// pixel 0 instead of letting the clip reject them.
func floorInt(f float32) int {
	return int(math32.Floor(f))
}

// blend composites c src-over onto the pixel at (x,y), honoring the clip.
func blend(img *image.RGBA, clip image.Rectangle, x, y int, c color.RGBA) {
	r := clip.Intersect(img.Bounds())
	if x < r.Min.X || x >= r.Max.X || y < r.Min.Y || y >= r.Max.Y {
		return
	}
	i := img.PixOffset(x, y)
	if c.A == 0xFF {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = 0xFF
		return
	}
	a := uint32(c.A)
	inv := 255 - a
	img.Pix[i+0] = uint8((uint32(c.R)*a + uint32(img.Pix[i+0])*inv) / 255)
	img.Pix[i+1] = uint8((uint32(c.G)*a + uint32(img.Pix[i+1])*inv) / 255)
	img.Pix[i+2] = uint8((uint32(c.B)*a + uint32(img.Pix[i+2])*inv) / 255)
	img.Pix[i+3] = uint8(a + uint32(img.Pix[i+3])*inv/255)
}
