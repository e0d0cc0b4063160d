// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package capture

import (
	"os"
	"sync"
)

// dirMu serializes working-directory changes: the directory is
// process-wide state, so concurrent directory-scoped exports must not
// overlap.
var dirMu sync.Mutex

// InDirectory runs fn with the process working directory set to dir,
// restoring the previous directory afterward. An empty dir runs fn in
// place without touching the directory.
//
// When the previous directory cannot be determined, fn still runs in
// dir but no restoration is attempted and the process stays there.
func InDirectory(dir string, fn func() error) error {
	if dir == "" {
		return fn()
	}
	dirMu.Lock()
	defer dirMu.Unlock()

	prev, prevErr := os.Getwd()
	if err := os.Chdir(dir); err != nil {
		return err
	}
	err := fn()
	if prevErr == nil {
		if e := os.Chdir(prev); e != nil && err == nil {
			err = e
		}
	}
	return err
}
