// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package capture

import (
	"fmt"
	"image"
	"os"

	"github.com/anthonynsimon/bild/transform"
	"golang.org/x/image/draw"
)

// FileName builds the indexed snapshot name: the root, the index
// zero-padded to at least four digits, a dot and the format string.
//
//	FileName("run", 7, "png") == "run0007.png"
func FileName(root string, index int, format string) string {
	return fmt.Sprintf("%s%04d.%s", root, index, format)
}

// Save encodes img into the named file.
func Save(img image.Image, name, format string) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Encode(f, img, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Downsample reduces img by an integer factor. Factors dividing both
// dimensions use an exact pixel-box average; other factors fall back
// to a linear resize. Factors at or below one return img unchanged.
func Downsample(img *image.RGBA, factor int) *image.RGBA {
	if factor <= 1 {
		return img
	}
	b := img.Bounds()
	w := b.Dx() / factor
	h := b.Dy() / factor
	if w < 1 || h < 1 {
		return img
	}
	if b.Dx()%factor != 0 || b.Dy()%factor != 0 {
		return transform.Resize(img, w, h, transform.Linear)
	}
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	n := uint32(factor * factor)
	for y := 0; y < h; y++ {
		o := out.PixOffset(0, y)
		for x := 0; x < w; x++ {
			var r, g, bl, a uint32
			for dy := 0; dy < factor; dy++ {
				i := img.PixOffset(b.Min.X+x*factor, b.Min.Y+y*factor+dy)
				for dx := 0; dx < factor; dx++ {
					r += uint32(img.Pix[i+0])
					g += uint32(img.Pix[i+1])
					bl += uint32(img.Pix[i+2])
					a += uint32(img.Pix[i+3])
					i += 4
				}
			}
			out.Pix[o+0] = byte(r / n)
			out.Pix[o+1] = byte(g / n)
			out.Pix[o+2] = byte(bl / n)
			out.Pix[o+3] = byte(a / n)
			o += 4
		}
	}
	return out
}

// Paste copies src into dst with its top-left corner at (x, y),
// replacing the destination pixels.
func Paste(dst *image.RGBA, src image.Image, x, y int) {
	b := src.Bounds()
	r := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	draw.Draw(dst, r, src, b.Min, draw.Src)
}
