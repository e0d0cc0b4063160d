// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"image"
	"testing"

	"github.com/chewxy/math32"

	"github.com/strandlab/filview/geom"
)

// TestViewportProject tests the world-to-pixel mapping.
func TestViewportProject(t *testing.T) {
	vp := Viewport{
		Rotation: geom.QuatIdentity(),
		Scale:    10,
		OffsetX:  50,
		OffsetY:  40,
	}

	x, y, depth := vp.Project(geom.V3(1, 2, 3))

	if x != 60 {
		t.Errorf("x = %v, want 60", x)
	}
	// Pixel y grows downward
	if y != 20 {
		t.Errorf("y = %v, want 20", y)
	}
	if depth != 3 {
		t.Errorf("depth = %v, want 3", depth)
	}
}

// TestViewportProjectCenter tests that the center maps to the offset.
func TestViewportProjectCenter(t *testing.T) {
	vp := Viewport{
		Center:   geom.V3(5, -2, 1),
		Rotation: geom.QuatFromAxisAngle(geom.V3(0, 0, 1), 1.3),
		Scale:    25,
		OffsetX:  100,
		OffsetY:  75,
	}

	x, y, _ := vp.Project(vp.Center)

	if x != 100 || y != 75 {
		t.Errorf("center projects to (%v, %v), want (100, 75)", x, y)
	}
}

// TestViewportProjectRotation tests that rotation is applied before scaling.
func TestViewportProjectRotation(t *testing.T) {
	// Quarter turn about z maps +x to +y
	vp := Viewport{
		Rotation: geom.QuatFromAxisAngle(geom.V3(0, 0, 1), math32.Pi/2),
		Scale:    10,
	}

	x, y, _ := vp.Project(geom.V3(1, 0, 0))

	if math32.Abs(x) > 1e-4 {
		t.Errorf("x = %v, want 0", x)
	}
	if math32.Abs(y+10) > 1e-4 {
		t.Errorf("y = %v, want -10", y)
	}
}

// TestViewportShifted tests periodic copy displacement.
func TestViewportShifted(t *testing.T) {
	vp := Viewport{
		Center:   geom.V3(1, 1, 0),
		Rotation: geom.QuatIdentity(),
		Scale:    2,
	}

	shifted := vp.Shifted(geom.V3(10, 0, 0))

	if !shifted.Center.Approx(geom.V3(11, 1, 0), 1e-6) {
		t.Errorf("shifted center = %v, want (11, 1, 0)", shifted.Center)
	}
	// A point displaced by the same amount projects to the same pixel.
	x0, y0, _ := vp.Project(geom.V3(3, 2, 0))
	x1, y1, _ := shifted.Project(geom.V3(13, 2, 0))
	if x0 != x1 || y0 != y1 {
		t.Errorf("shifted projection = (%v, %v), want (%v, %v)", x1, y1, x0, y0)
	}
}

// TestViewportTileDirect tests tile geometry for the oversized buffer path.
func TestViewportTileDirect(t *testing.T) {
	vp := Viewport{
		Rotation: geom.QuatIdentity(),
		Scale:    4,
		OffsetX:  320,
		OffsetY:  240,
		Clip:     image.Rect(0, 0, 640, 480),
	}

	tile := vp.Tile(3, 1, 2, 640, 480, true)

	if tile.Scale != 12 {
		t.Errorf("Scale = %v, want 12", tile.Scale)
	}
	if tile.OffsetX != 960 || tile.OffsetY != 720 {
		t.Errorf("offset = (%v, %v), want (960, 720)", tile.OffsetX, tile.OffsetY)
	}
	want := image.Rect(640, 960, 1280, 1440)
	if tile.Clip != want {
		t.Errorf("Clip = %v, want %v", tile.Clip, want)
	}
}

// TestViewportTileComposite tests tile geometry for the per-tile buffer path.
func TestViewportTileComposite(t *testing.T) {
	vp := Viewport{
		Rotation: geom.QuatIdentity(),
		Scale:    4,
		OffsetX:  320,
		OffsetY:  240,
		Clip:     image.Rect(0, 0, 640, 480),
	}

	tile := vp.Tile(3, 1, 2, 640, 480, false)

	if tile.Scale != 12 {
		t.Errorf("Scale = %v, want 12", tile.Scale)
	}
	if tile.OffsetX != 320 || tile.OffsetY != -240 {
		t.Errorf("offset = (%v, %v), want (320, -240)", tile.OffsetX, tile.OffsetY)
	}
	want := image.Rect(0, 0, 640, 480)
	if tile.Clip != want {
		t.Errorf("Clip = %v, want %v", tile.Clip, want)
	}
}

// TestViewportTileEquivalence tests that the direct and composite tile
// mappings agree: a world point lands on the same pixel of a tile
// whether the tile lives inside one oversized buffer or in its own.
func TestViewportTileEquivalence(t *testing.T) {
	vp := Viewport{
		Center:   geom.V3(0.5, -0.25, 0),
		Rotation: geom.QuatFromAxisAngle(geom.V3(0, 1, 0), 0.7),
		Scale:    37.5,
		OffsetX:  320,
		OffsetY:  240,
		Clip:     image.Rect(0, 0, 640, 480),
	}

	pts := []geom.Vec3{
		geom.V3(0, 0, 0),
		geom.V3(1, 2, 3),
		geom.V3(-4.5, 0.25, -1),
	}

	const mag, w, h = 3, 640, 480
	for i := 0; i < mag; i++ {
		for j := 0; j < mag; j++ {
			direct := vp.Tile(mag, i, j, w, h, true)
			composite := vp.Tile(mag, i, j, w, h, false)
			for _, p := range pts {
				dx, dy, dd := direct.Project(p)
				cx, cy, cd := composite.Project(p)
				if math32.Abs(dx-float32(i*w)-cx) > 1e-3 ||
					math32.Abs(dy-float32(j*h)-cy) > 1e-3 {
					t.Errorf("tile (%d,%d) point %v: direct (%v, %v) vs composite (%v, %v)",
						i, j, p, dx, dy, cx, cy)
				}
				if dd != cd {
					t.Errorf("tile (%d,%d) point %v: depth %v vs %v", i, j, p, dd, cd)
				}
			}
		}
	}
}

// TestDefaultState tests the initial canvas state.
func TestDefaultState(t *testing.T) {
	s := DefaultState(640, 480)

	if s.Color.R != 255 || s.Color.A != 255 {
		t.Errorf("Color = %v, want opaque white", s.Color)
	}
	if s.LineWidth != 1 || s.PointSize != 1 {
		t.Errorf("sizes = (%v, %v), want (1, 1)", s.LineWidth, s.PointSize)
	}
	if s.View.OffsetX != 320 || s.View.OffsetY != 240 {
		t.Errorf("view offset = (%v, %v), want (320, 240)", s.View.OffsetX, s.View.OffsetY)
	}
	if s.View.Clip != image.Rect(0, 0, 640, 480) {
		t.Errorf("view clip = %v, want full canvas", s.View.Clip)
	}
}
