// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package filview

import (
	"context"
	"strings"
	"testing"
	"time"
)

func TestBuildLabelFrame(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	p.World().SetTime(1.25)
	label := p.BuildLabel()
	if !strings.Contains(label, "1.250s") {
		t.Errorf("label %q misses the time", label)
	}
	if !strings.Contains(label, "Frame 0") {
		t.Errorf("label %q misses the frame index", label)
	}
	if strings.Contains(label, "Live") {
		t.Errorf("label %q shows Live with no running worker", label)
	}
	// The demo world's handle is attached.
	if !strings.Contains(label, "Handle:") {
		t.Errorf("label %q misses the handle force", label)
	}

	p.Worker().NextFrame()
	if got := p.BuildLabel(); !strings.Contains(got, "Frame 1") {
		t.Errorf("label %q misses the advanced frame index", got)
	}
}

func TestBuildLabelLive(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	p.Play().Live = true
	p.Worker().SetPeriod(5)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go p.Worker().Run(ctx, time.Hour)
	deadline := time.Now().Add(5 * time.Second)
	for !p.Worker().Alive() {
		if time.Now().After(deadline) {
			t.Fatal("worker did not come alive")
		}
		time.Sleep(time.Millisecond)
	}

	label := p.BuildLabel()
	if !strings.Contains(label, "Live 5") {
		t.Errorf("label %q misses the live marker with period", label)
	}
	if strings.Contains(label, "Frame") {
		t.Errorf("label %q shows both Live and Frame", label)
	}
}

func TestBuildLabelExactlyOneBranch(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	for _, live := range []bool{false, true} {
		p.Play().Live = live
		label := p.BuildLabel()
		hasLive := strings.Contains(label, "Live")
		hasFrame := strings.Contains(label, "Frame")
		if hasLive == hasFrame {
			t.Errorf("label %q: Live=%v Frame=%v, want exactly one", label, hasLive, hasFrame)
		}
	}
}

func TestBuildReportEmpty(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	steps := p.World().Steps()
	if got := p.BuildReport(""); got != "" {
		t.Errorf("BuildReport(\"\") = %q, want \"\"", got)
	}
	if p.World().Steps() != steps {
		t.Error("BuildReport(\"\") touched the world")
	}
}

func TestBuildReport(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	p.World().SetTime(2.5)

	got := p.BuildReport("time precision=1")
	if strings.HasPrefix(got, "\n") {
		t.Errorf("report %q keeps its leading newline", got)
	}
	if !strings.Contains(got, "2.5") {
		t.Errorf("report %q misses the time", got)
	}

	got = p.BuildReport("inventory")
	if !strings.Contains(got, "fiber 5") {
		t.Errorf("inventory report %q misses the fiber count", got)
	}
}

func TestBuildReportFailureAsText(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	got := p.BuildReport("nonsense")
	if !strings.Contains(got, "nonsense") {
		t.Errorf("failed report %q should carry the failure description", got)
	}
	got = p.BuildReport("time precision=x")
	if !strings.Contains(got, "precision") {
		t.Errorf("failed report %q should carry the failure description", got)
	}
}

func TestBuildMemo(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	if got := p.BuildMemo(0); got != "" {
		t.Errorf("BuildMemo(0) = %q, want \"\"", got)
	}
	if got := p.BuildMemo(6); got != "" {
		t.Errorf("BuildMemo(6) = %q, want \"\"", got)
	}
	if got := p.BuildMemo(-1); got != "" {
		t.Errorf("BuildMemo(-1) = %q, want \"\"", got)
	}
	if got := p.BuildMemo(1); !strings.Contains(got, "cytosim.org") {
		t.Errorf("BuildMemo(1) = %q, want the credit string", got)
	}
	for kind := 2; kind <= 5; kind++ {
		if got := p.BuildMemo(kind); got == "" {
			t.Errorf("BuildMemo(%d) is empty", kind)
		}
	}
	if got := p.BuildMemo(5); !strings.Contains(got, "style=1") {
		t.Errorf("BuildMemo(5) = %q, want the display dump", got)
	}
	if got := p.BuildMemo(4); !strings.Contains(got, "period=") {
		t.Errorf("BuildMemo(4) = %q, want the play dump", got)
	}
}

func TestBuildLabelHandleDetached(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	p.World().Handle().Detach()
	if got := p.BuildLabel(); strings.Contains(got, "Handle:") {
		t.Errorf("label %q shows a force for a detached handle", got)
	}
}

func TestDisplayParametersRoundTrip(t *testing.T) {
	p := newTestPlayer(t, 32, 32)
	p.Display().LineWidth = 3.5
	p.View().Zoom = 2

	var b strings.Builder
	p.WriteDisplayParameters(&b)

	q := newTestPlayer(t, 32, 32)
	q.ReadDisplayString(q.View(), b.String())
	if got := q.Display().LineWidth; got != 3.5 {
		t.Errorf("round-tripped line width = %g, want 3.5", got)
	}
	if got := q.View().Zoom; got != 2 {
		t.Errorf("round-tripped zoom = %g, want 2", got)
	}
}
