// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package display

import "image/color"

// palette holds the colors assigned to fiber classes in order of
// first appearance.
var palette = []color.RGBA{
	{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	{R: 0x60, G: 0xC0, B: 0x30, A: 0xFF},
	{R: 0x40, G: 0x80, B: 0xFF, A: 0xFF},
	{R: 0xFF, G: 0x50, B: 0x40, A: 0xFF},
	{R: 0xFF, G: 0xC0, B: 0x20, A: 0xFF},
	{R: 0xB0, G: 0x50, B: 0xFF, A: 0xFF},
	{R: 0x20, G: 0xD0, B: 0xC0, A: 0xFF},
}

// FiberDisp holds the per-class drawing attributes.
type FiberDisp struct {
	Class string
	Color color.RGBA
}

// PropBook assigns and remembers drawing attributes per object class.
// Classes receive palette colors in order of first appearance, so the
// assignment is stable across frames.
type PropBook struct {
	fibers map[string]*FiberDisp
	order  []string
}

// NewPropBook creates an empty book.
func NewPropBook() *PropBook {
	return &PropBook{fibers: make(map[string]*FiberDisp)}
}

// Fiber returns the attributes of a fiber class, assigning the next
// palette color when the class is new.
func (b *PropBook) Fiber(class string) *FiberDisp {
	if d, ok := b.fibers[class]; ok {
		return d
	}
	d := &FiberDisp{
		Class: class,
		Color: palette[len(b.order)%len(palette)],
	}
	b.fibers[class] = d
	b.order = append(b.order, class)
	return d
}

// Len returns the number of known classes.
func (b *PropBook) Len() int {
	return len(b.order)
}

// Classes returns the known classes in order of first appearance.
func (b *PropBook) Classes() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
