// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/strandlab/filview/property"
	"github.com/strandlab/filview/view"
)

// BuildLabel composes the corner label: the simulation time, the
// force on an attached handle, and either the live marker or the
// current frame index. Exactly one of "Live" and "Frame" appears.
func (p *Player) BuildLabel() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%8.3fs", p.world.Time())
	if h := p.worker.Handle(); h != nil && h.Attached() {
		fmt.Fprintf(&b, "\nHandle: %.3fpN", h.Force().Norm())
	}
	if p.worker.Alive() && p.play.Live {
		b.WriteString("\nLive")
		if n := p.worker.Period(); n > 1 {
			fmt.Fprintf(&b, " %d", n)
		}
	} else {
		fmt.Fprintf(&b, "\nFrame %d", p.worker.CurrentFrame())
	}
	return b.String()
}

// BuildReport runs a report expression against the world and returns
// its text. The expression is `kind [key=value ...]`, split at the
// first space. An empty expression returns the empty string without
// touching the reporting machinery; any failure is returned as the
// report text instead of an error.
func (p *Player) BuildReport(arg string) string {
	if arg == "" {
		return ""
	}
	kind, tail, _ := strings.Cut(arg, " ")
	opts, err := property.Parse(tail)
	if err != nil {
		return err.Error()
	}
	var buf bytes.Buffer
	if err := p.world.Report(&buf, kind, opts); err != nil {
		return err.Error()
	}
	s := buf.String()
	if len(s) > 1 && s[0] == '\n' {
		s = s[1:]
	}
	return s
}

// BuildMemo returns the center memo for a memo kind: 1 is the credit
// string, 2..5 are generated help and parameter dumps, anything else
// is empty.
func (p *Player) BuildMemo(kind int) string {
	var b strings.Builder
	switch kind {
	case 1:
		return "Please, visit www.cytosim.org"
	case 2:
		WriteKeyHelp(&b)
	case 3:
		view.WriteHelp(&b)
	case 4:
		p.WritePlayParameters(&b)
	case 5:
		p.WriteDisplayParameters(&b)
	}
	return b.String()
}

// WriteKeyHelp lists the player commands.
func WriteKeyHelp(w io.Writer) {
	fmt.Fprint(w, `Player commands:
 play                  run the live display
 record                capture frames to image files
 report KIND [KEY=VAL] print a report of the world
 formats               list supported image formats
Report kinds:
 time, inventory, fiber, fiber:length, fiber:point, space, single
`)
}

// WritePlayParameters dumps the playback settings as key=value
// assignments.
func (p *Player) WritePlayParameters(w io.Writer) {
	if err := p.play.Write(w); err != nil {
		logger().Error("writing play parameters failed", "err", err)
	}
}

// WriteDisplayParameters dumps the display settings and the primary
// surface settings as key=value assignments, in the syntax
// ReadDisplayString accepts.
func (p *Player) WriteDisplayParameters(w io.Writer) {
	if err := p.prop.Write(w); err != nil {
		logger().Error("writing display parameters failed", "err", err)
		return
	}
	if err := p.view.Write(w); err != nil {
		logger().Error("writing display parameters failed", "err", err)
	}
}
