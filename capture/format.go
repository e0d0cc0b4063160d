// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package capture turns rendered frames into image files: format
// selection and encoding, indexed filename construction, pixel-exact
// downsampling, tile compositing and the export-directory scope.
package capture

import (
	"errors"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"sort"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrUnsupportedFormat is the sentinel wrapped by FormatError.
var ErrUnsupportedFormat = errors.New("capture: unsupported image format")

// FormatError reports a format string with no registered encoder.
type FormatError struct {
	Format string
}

func (e *FormatError) Error() string {
	return "capture: unsupported image format `" + e.Format + "'"
}

// Unwrap returns ErrUnsupportedFormat so errors.Is matches.
func (e *FormatError) Unwrap() error {
	return ErrUnsupportedFormat
}

// encoders maps a format string to its codec. The format string is
// also the filename extension.
var encoders = map[string]func(io.Writer, image.Image) error{
	"png":  encodePNG,
	"ppm":  encodePPM,
	"jpg":  encodeJPEG,
	"jpeg": encodeJPEG,
	"gif":  encodeGIF,
	"bmp":  bmp.Encode,
	"tif":  encodeTIFF,
	"tiff": encodeTIFF,
}

// Supported reports whether format has an encoder.
func Supported(format string) bool {
	_, ok := encoders[format]
	return ok
}

// Formats returns the supported format strings, sorted.
func Formats() []string {
	out := make([]string, 0, len(encoders))
	for f := range encoders {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, format string) error {
	enc, ok := encoders[format]
	if !ok {
		return &FormatError{Format: format}
	}
	return enc(w, img)
}

func encodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

func encodeJPEG(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
}

func encodeGIF(w io.Writer, img image.Image) error {
	return gif.Encode(w, img, nil)
}

func encodeTIFF(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}

// encodePPM writes the binary (P6) portable pixmap form.
func encodePPM(w io.Writer, img image.Image) error {
	b := img.Bounds()
	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", b.Dx(), b.Dy()); err != nil {
		return err
	}
	row := make([]byte, 3*b.Dx())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		i := 0
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			row[i+0] = byte(r >> 8)
			row[i+1] = byte(g >> 8)
			row[i+2] = byte(bl >> 8)
			i += 3
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
