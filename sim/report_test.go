// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"errors"
	"strings"
	"testing"

	"github.com/strandlab/filview/property"
)

func runReport(t *testing.T, w *World, kind, options string) string {
	t.Helper()
	opts, err := property.Parse(options)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", options, err)
	}
	var buf strings.Builder
	if err := w.Report(&buf, kind, opts); err != nil {
		t.Fatalf("Report(%q) failed: %v", kind, err)
	}
	return buf.String()
}

// TestReportTime tests the time report format.
func TestReportTime(t *testing.T) {
	w := DemoWorld()
	w.SetTime(1.25)

	got := runReport(t, w, "time", "")
	if got != "\n% time\n1.250\n" {
		t.Errorf("time report = %q", got)
	}
}

// TestReportTimePrecision tests the precision option.
func TestReportTimePrecision(t *testing.T) {
	w := DemoWorld()
	w.SetTime(1.25)

	got := runReport(t, w, "time", "precision=1")
	if got != "\n% time\n1.2\n" {
		t.Errorf("time report = %q", got)
	}
}

// TestReportLeadingNewline tests that every report starts with one.
func TestReportLeadingNewline(t *testing.T) {
	w := DemoWorld()

	kinds := []string{"time", "inventory", "fiber", "fiber:length", "fiber:point", "space", "single"}
	for _, kind := range kinds {
		got := runReport(t, w, kind, "")
		if len(got) == 0 || got[0] != '\n' {
			t.Errorf("report %q does not start with a newline: %q", kind, got)
		}
		if !strings.HasPrefix(got[1:], "% ") {
			t.Errorf("report %q does not start with a %% header: %q", kind, got)
		}
	}
}

// TestReportInventory tests element counts.
func TestReportInventory(t *testing.T) {
	w := DemoWorld()

	got := runReport(t, w, "inventory", "")
	for _, line := range []string{"fiber 5", "single 2", "couple 2", "space 1"} {
		if !strings.Contains(got, line) {
			t.Errorf("inventory missing %q in %q", line, got)
		}
	}
}

// TestReportFiber tests per-fiber rows.
func TestReportFiber(t *testing.T) {
	w := DemoWorld()

	got := runReport(t, w, "fiber", "")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Leading blank, kind header, count header, column header, 5 rows.
	if len(lines) != 9 {
		t.Fatalf("fiber report has %d lines, want 9: %q", len(lines), got)
	}
	if !strings.Contains(got, "actin") || !strings.Contains(got, "microtubule") {
		t.Error("fiber report should list fiber classes")
	}
}

// TestReportFiberQuiet tests verbose=0.
func TestReportFiberQuiet(t *testing.T) {
	w := DemoWorld()

	got := runReport(t, w, "fiber", "verbose=0")
	if !strings.Contains(got, "% count 5") {
		t.Errorf("quiet fiber report missing count: %q", got)
	}
	if strings.Contains(got, "actin") {
		t.Errorf("quiet fiber report should not list fibers: %q", got)
	}
}

// TestReportFiberLength tests the total line.
func TestReportFiberLength(t *testing.T) {
	w := DemoWorld()

	var total float32
	for _, f := range w.Fibers {
		total += f.Length()
	}

	got := runReport(t, w, "fiber:length", "")
	if !strings.Contains(got, "% total") {
		t.Errorf("fiber:length report missing total: %q", got)
	}
	rows := strings.Count(got, "\n")
	if rows < 7 {
		t.Errorf("fiber:length report too short: %q", got)
	}
}

// TestReportSpace tests space rows.
func TestReportSpace(t *testing.T) {
	w := DemoWorld()

	got := runReport(t, w, "space", "")
	if !strings.Contains(got, "cell") || !strings.Contains(got, "sphere") {
		t.Errorf("space report = %q", got)
	}
	if !strings.Contains(got, "5.000") {
		t.Errorf("space report missing extension: %q", got)
	}
}

// TestReportSingle tests attachment flags.
func TestReportSingle(t *testing.T) {
	w := DemoWorld()

	got := runReport(t, w, "single", "")
	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	// Leading blank, kind header, column header, 2 rows.
	if len(lines) != 5 {
		t.Fatalf("single report has %d lines, want 5: %q", len(lines), got)
	}
}

// TestReportUnknownKind tests the typed error.
func TestReportUnknownKind(t *testing.T) {
	w := DemoWorld()

	var buf strings.Builder
	err := w.Report(&buf, "fiber:age", nil)
	if err == nil {
		t.Fatal("expected error for unknown kind")
	}

	var unknown *UnknownReportError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownReportError, got %T", err)
	}
	if unknown.Kind != "fiber:age" {
		t.Errorf("error kind = %q, want fiber:age", unknown.Kind)
	}
	if buf.Len() != 0 {
		t.Errorf("unknown kind wrote output: %q", buf.String())
	}
}

// TestReportBadOption tests option conversion failures.
func TestReportBadOption(t *testing.T) {
	w := DemoWorld()

	opts, err := property.Parse("precision=high")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	var buf strings.Builder
	rerr := w.Report(&buf, "time", opts)
	if rerr == nil {
		t.Fatal("expected error for non-numeric precision")
	}

	var ve *property.ValueError
	if !errors.As(rerr, &ve) {
		t.Errorf("expected a property.ValueError, got %T", rerr)
	}
}

// TestReportNilOptions tests that nil options select the defaults.
func TestReportNilOptions(t *testing.T) {
	w := DemoWorld()
	w.SetTime(2)

	var buf strings.Builder
	if err := w.Report(&buf, "time", nil); err != nil {
		t.Fatalf("Report with nil options failed: %v", err)
	}
	if buf.String() != "\n% time\n2.000\n" {
		t.Errorf("time report = %q", buf.String())
	}
}
