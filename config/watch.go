// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch invokes fn with the file contents after every change to path,
// until ctx is canceled. The parent directory is watched so the file
// may be replaced atomically by editors. Transient read failures are
// skipped; the next change triggers again.
func Watch(ctx context.Context, path string, fn func(text string)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	path = filepath.Clean(path)
	if err := w.Add(filepath.Dir(path)); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			fn(string(data))
		case _, ok := <-w.Errors:
			if !ok {
				return nil
			}
		}
	}
}
