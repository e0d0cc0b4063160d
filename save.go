// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"errors"
	"fmt"
	"image"

	"github.com/strandlab/filview/capture"
	"github.com/strandlab/filview/render"
	"github.com/strandlab/filview/view"
)

// ErrNoPixelAccess is returned when the render target exposes no
// CPU-visible pixels to capture from.
var ErrNoPixelAccess = errors.New("filview: render target has no CPU pixel access")

// ErrNoOversizedTarget marks the direct magnified capture as
// unavailable, triggering the composite fallback.
var ErrNoOversizedTarget = errors.New("filview: render target cannot allocate oversized buffers")

// SaveView captures the rendered frame into an indexed image file,
// named by the filename convention with the configured format and
// downsampled by the configured factor, inside the configured image
// directory. With verbose above zero the dimensions and name are
// printed on success, as an overwriting progress line above one.
func (p *Player) SaveView(root string, index int, verbose int) error {
	format := p.play.ImageFormat
	name := capture.FileName(root, index, format)
	img := targetImage(p.target)
	if img == nil {
		return ErrNoPixelAccess
	}
	img = capture.Downsample(img, p.play.Downsample)
	err := capture.InDirectory(p.play.ImageDir, func() error {
		return capture.Save(img, name, format)
	})
	if err != nil {
		return err
	}
	b := img.Bounds()
	if verbose > 1 {
		fmt.Printf("\r saved %dx%d snapshot %s", b.Dx(), b.Dy(), name)
	} else if verbose > 0 {
		fmt.Printf(" saved %dx%d snapshot %s\n", b.Dx(), b.Dy(), name)
	}
	return nil
}

// SaveViewMagnified captures the scene at mag times the surface
// resolution into the named file. An unsupported format is rejected
// before any locking or rendering. The worker stays locked for the
// whole multi-tile pass so every tile sees one simulation snapshot.
// The result is mag*W/downsample by mag*H/downsample pixels whichever
// capture tier produced it.
func (p *Player) SaveViewMagnified(mag int, name, format string, downsample int) error {
	if !capture.Supported(format) {
		return &capture.FormatError{Format: format}
	}
	if mag < 1 {
		mag = 1
	}
	if downsample < 1 {
		downsample = 1
	}
	p.worker.Lock()
	defer p.worker.Unlock()

	img, err := p.captureMagnified(p.view, mag)
	if err != nil {
		return err
	}
	img = capture.Downsample(img, downsample)
	if err := capture.Save(img, name, format); err != nil {
		return err
	}
	b := img.Bounds()
	fmt.Printf("saved %dx%d snapshot %s\n", b.Dx(), b.Dy(), name)
	return nil
}

// SaveViewMagnifiedIndexed composes the indexed filename with the
// configured format, captures inside the configured image directory
// and requests a redisplay afterward, since the worker lock held
// during capture may have deferred an interactive refresh.
func (p *Player) SaveViewMagnifiedIndexed(mag int, root string, index, downsample int) error {
	name := capture.FileName(root, index, p.play.ImageFormat)
	err := capture.InDirectory(p.play.ImageDir, func() error {
		return p.SaveViewMagnified(mag, name, p.play.ImageFormat, downsample)
	})
	p.requestRedraw()
	return err
}

// captureMagnified renders v at mag times its resolution. The direct
// tier draws all tiles into one oversized buffer; when the backend
// cannot provide one, the composite tier renders each tile at native
// size and assembles them. Both cover the same mag x mag grid of the
// same prepared scene, so their pixels agree.
func (p *Player) captureMagnified(v *view.View, mag int) (*image.RGBA, error) {
	p.prepareDisplay(v, float32(mag))
	w, h := v.Width, v.Height
	vp := v.Viewport()

	img, err := p.captureDirect(vp, mag, w, h)
	if err == nil {
		return img, nil
	}
	var oversize *render.OversizeError
	if !errors.As(err, &oversize) && !errors.Is(err, ErrNoOversizedTarget) {
		return nil, err
	}
	logger().Debug("direct magnified capture unavailable", "err", err)
	return p.captureComposite(vp, mag, w, h)
}

// captureDirect draws the tile grid into a single mag*w x mag*h
// buffer allocated from the target's backend.
func (p *Player) captureDirect(vp render.Viewport, mag, w, h int) (*image.RGBA, error) {
	alloc, ok := p.target.(render.Allocator)
	if !ok {
		return nil, ErrNoOversizedTarget
	}
	big, err := alloc.Alloc(mag*w, mag*h)
	if err != nil {
		return nil, err
	}
	c := big.Canvas()
	c.Save()
	for j := 0; j < mag; j++ {
		for i := 0; i < mag; i++ {
			c.SetView(vp.Tile(mag, i, j, w, h, true))
			p.drawFrame(c)
		}
	}
	c.Restore()
	img := targetImage(big)
	if img == nil {
		return nil, ErrNoPixelAccess
	}
	return img, nil
}

// captureComposite draws each tile into a native-size buffer and
// pastes it into the assembled image.
func (p *Player) captureComposite(vp render.Viewport, mag, w, h int) (*image.RGBA, error) {
	var tile render.Target
	if alloc, ok := p.target.(render.Allocator); ok {
		if t, err := alloc.Alloc(w, h); err == nil {
			tile = t
		}
	}
	if tile == nil {
		tile = render.NewPixmapTarget(w, h)
	}
	out := image.NewRGBA(image.Rect(0, 0, mag*w, mag*h))
	c := tile.Canvas()
	c.Save()
	defer c.Restore()
	for j := 0; j < mag; j++ {
		for i := 0; i < mag; i++ {
			c.SetView(vp.Tile(mag, i, j, w, h, false))
			p.drawFrame(c)
			img := targetImage(tile)
			if img == nil {
				return nil, ErrNoPixelAccess
			}
			capture.Paste(out, img, i*w, j*h)
		}
	}
	return out, nil
}

// targetImage copies a target's pixels into a standalone image, nil
// for targets without CPU pixel access.
func targetImage(t render.Target) *image.RGBA {
	pix := t.Pixels()
	if pix == nil {
		return nil
	}
	w, h := t.Width(), t.Height()
	stride := t.Stride()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+4*w], pix[y*stride:y*stride+4*w])
	}
	return img
}
