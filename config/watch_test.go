// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "display.txt")
	if err := os.WriteFile(path, []byte("style=1"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan string, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(text string) { got <- text })
	}()

	// Give the watcher time to register before the change.
	time.Sleep(100 * time.Millisecond)
	if err := os.WriteFile(path, []byte("style=2"), 0o644); err != nil {
		t.Fatal(err)
	}

	select {
	case text := <-got:
		if text != "style=2" {
			t.Errorf("Watch delivered %q, want %q", text, "style=2")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch delivered no change within 5s")
	}

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Watch returned %v, want context.Canceled", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not stop after cancel")
	}
}

func TestWatchMissingDir(t *testing.T) {
	ctx := context.Background()
	err := Watch(ctx, filepath.Join(t.TempDir(), "absent", "display.txt"), func(string) {})
	if err == nil {
		t.Error("Watch on a missing directory should fail")
	}
}
