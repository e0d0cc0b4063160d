// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"context"
	"testing"
	"time"
)

// TestWorkerFrames tests frame stepping and counting.
func TestWorkerFrames(t *testing.T) {
	k := NewWorker(DemoWorld())

	if k.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() = %d, want 0", k.CurrentFrame())
	}

	k.SetPeriod(3)
	k.NextFrame()
	k.NextFrame()

	if k.CurrentFrame() != 2 {
		t.Errorf("CurrentFrame() = %d, want 2", k.CurrentFrame())
	}
	if got := k.World().Steps(); got != 6 {
		t.Errorf("Steps() = %d, want 6 (two frames of three steps)", got)
	}
}

// TestWorkerPrevFrame tests the index floor.
func TestWorkerPrevFrame(t *testing.T) {
	k := NewWorker(DemoWorld())

	k.NextFrame()
	k.PrevFrame()
	k.PrevFrame()

	if k.CurrentFrame() != 0 {
		t.Errorf("CurrentFrame() = %d, want 0 (floor)", k.CurrentFrame())
	}
}

// TestWorkerLockBlocksStepping tests the snapshot lock.
func TestWorkerLockBlocksStepping(t *testing.T) {
	k := NewWorker(DemoWorld())

	k.Lock()
	before := k.World().Steps()

	done := make(chan struct{})
	go func() {
		k.NextFrame()
		close(done)
	}()

	select {
	case <-done:
		t.Fatal("NextFrame completed while the lock was held")
	case <-time.After(50 * time.Millisecond):
	}
	if got := k.World().Steps(); got != before {
		t.Errorf("Steps() = %d while locked, want %d", got, before)
	}

	k.Unlock()
	<-done
	if got := k.World().Steps(); got != before+1 {
		t.Errorf("Steps() = %d after unlock, want %d", got, before+1)
	}
}

// TestWorkerRun tests the live loop lifecycle.
func TestWorkerRun(t *testing.T) {
	k := NewWorker(DemoWorld())

	if k.Alive() {
		t.Fatal("Alive() should be false before Run")
	}

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		k.Run(ctx, time.Millisecond)
		close(stopped)
	}()

	waitFor(t, "worker alive", func() bool { return k.Alive() })
	waitFor(t, "frames advancing", func() bool { return k.CurrentFrame() > 0 })

	cancel()
	<-stopped
	if k.Alive() {
		t.Error("Alive() should be false after Run returns")
	}
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}
