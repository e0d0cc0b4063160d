// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/strandlab/filview/property"
)

// UnknownReportError indicates a report kind the world cannot produce.
type UnknownReportError struct {
	Kind string
}

func (e *UnknownReportError) Error() string {
	return "sim: unknown report kind `" + e.Kind + "'"
}

// Report writes the report of the given kind. Recognized kinds are
// time, inventory, fiber, fiber:length, fiber:point, space and single.
// Options: precision (decimal digits, default 3) and verbose (0 keeps
// summaries only, default 1).
//
// Output starts with a newline followed by `% `-prefixed header lines,
// matching the console report command.
func (w *World) Report(out io.Writer, kind string, opts *property.Set) error {
	prec := 3
	verbose := 1
	if _, err := opts.Get("precision", &prec); err != nil {
		return err
	}
	if _, err := opts.Get("verbose", &verbose); err != nil {
		return err
	}
	if prec < 0 {
		prec = 0
	}

	switch kind {
	case "time":
		_, err := fmt.Fprintf(out, "\n%% time\n%.*f\n", prec, w.Time())
		return err
	case "inventory":
		return w.reportInventory(out)
	case "fiber":
		return w.reportFiber(out, prec, verbose)
	case "fiber:length":
		return w.reportFiberLength(out, prec, verbose)
	case "fiber:point":
		return w.reportFiberPoint(out, prec)
	case "space":
		return w.reportSpace(out, prec)
	case "single":
		return w.reportSingle(out, prec)
	}
	return &UnknownReportError{Kind: kind}
}

func (w *World) reportInventory(out io.Writer) error {
	_, err := fmt.Fprintf(out, "\n%% inventory\nfiber %d\nsingle %d\ncouple %d\nspace %d\n",
		len(w.Fibers), len(w.Singles), len(w.Couples), len(w.Spaces))
	return err
}

func (w *World) reportFiber(out io.Writer, prec, verbose int) error {
	if _, err := fmt.Fprintf(out, "\n%% fiber\n%% count %d\n", len(w.Fibers)); err != nil {
		return err
	}
	if verbose < 1 {
		return nil
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "% id\tclass\tpoints\tlength")
	for _, f := range w.Fibers {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.*f\n", f.ID, f.Class, len(f.Points), prec, f.Length())
	}
	return tw.Flush()
}

func (w *World) reportFiberLength(out io.Writer, prec, verbose int) error {
	if _, err := fmt.Fprint(out, "\n% fiber:length\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	var total float32
	if verbose >= 1 {
		fmt.Fprintln(tw, "% id\tlength")
	}
	for _, f := range w.Fibers {
		l := f.Length()
		total += l
		if verbose >= 1 {
			fmt.Fprintf(tw, "%d\t%.*f\n", f.ID, prec, l)
		}
	}
	fmt.Fprintf(tw, "%% total\t%.*f\n", prec, total)
	return tw.Flush()
}

func (w *World) reportFiberPoint(out io.Writer, prec int) error {
	if _, err := fmt.Fprint(out, "\n% fiber:point\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "% fiber\tpoint\tx\ty\tz")
	for _, f := range w.Fibers {
		for i, p := range f.Points {
			fmt.Fprintf(tw, "%d\t%d\t%.*f\t%.*f\t%.*f\n",
				f.ID, i, prec, p.X, prec, p.Y, prec, p.Z)
		}
	}
	return tw.Flush()
}

func (w *World) reportSpace(out io.Writer, prec int) error {
	if _, err := fmt.Fprint(out, "\n% space\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "% name\tshape\textension")
	for _, s := range w.Spaces {
		fmt.Fprintf(tw, "%s\t%s\t%.*f\n", s.Name, s.Shape, prec, s.MaxExtension())
	}
	return tw.Flush()
}

func (w *World) reportSingle(out io.Writer, prec int) error {
	if _, err := fmt.Fprint(out, "\n% single\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "% id\tattached\tx\ty\tz\tforce")
	for _, s := range w.Singles {
		att := 0
		if s.Attached() {
			att = 1
		}
		p := s.Position()
		fmt.Fprintf(tw, "%d\t%d\t%.*f\t%.*f\t%.*f\t%.*f\n",
			s.ID, att, prec, p.X, prec, p.Y, prec, p.Z, prec, s.Force().Norm())
	}
	return tw.Flush()
}
