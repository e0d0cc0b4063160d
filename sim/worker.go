// Copyright 2026 The filview Authors
// SPDX-License-Identifier: BSD-3-Clause

package sim

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Worker steps a world on its own goroutine and guards it with a lock
// for the capture paths that need a consistent snapshot.
//
// The display path reads the world without taking the lock; only
// multi-tile capture holds it across a whole frame.
type Worker struct {
	mu    sync.Mutex
	world *World

	period   int
	timeStep float32

	frame atomic.Int64
	alive atomic.Bool
}

// NewWorker wraps a world with a stopped worker stepping one step per
// frame at a hundredth of a second each.
func NewWorker(w *World) *Worker {
	return &Worker{world: w, period: 1, timeStep: 0.01}
}

// World returns the wrapped world.
func (k *Worker) World() *World {
	return k.world
}

// Lock acquires the world lock, blocking live stepping.
func (k *Worker) Lock() {
	k.mu.Lock()
}

// Unlock releases the world lock.
func (k *Worker) Unlock() {
	k.mu.Unlock()
}

// SetPeriod sets the number of steps taken per frame.
// Call before Run.
func (k *Worker) SetPeriod(n int) {
	if n > 0 {
		k.period = n
	}
}

// Period returns the number of steps taken per frame.
func (k *Worker) Period() int {
	return k.period
}

// SetTimeStep sets the simulated duration of one step.
// Call before Run.
func (k *Worker) SetTimeStep(dt float32) {
	if dt > 0 {
		k.timeStep = dt
	}
}

// Alive reports whether the worker goroutine is running.
func (k *Worker) Alive() bool {
	return k.alive.Load()
}

// Handle returns the user-controlled single of the world, or nil.
func (k *Worker) Handle() *Single {
	return k.world.Handle()
}

// CurrentFrame returns the index of the displayed frame.
func (k *Worker) CurrentFrame() int {
	return int(k.frame.Load())
}

// NextFrame advances the world by one frame under the lock.
func (k *Worker) NextFrame() {
	k.mu.Lock()
	for i := 0; i < k.period; i++ {
		k.world.Step(k.timeStep)
	}
	k.frame.Add(1)
	k.mu.Unlock()
}

// PrevFrame moves the frame index back without rewinding the world.
// The index never goes below zero.
func (k *Worker) PrevFrame() {
	for {
		n := k.frame.Load()
		if n <= 0 {
			return
		}
		if k.frame.CompareAndSwap(n, n-1) {
			return
		}
	}
}

// Run steps the world once per interval until ctx is canceled.
// The worker reports Alive while inside Run.
func (k *Worker) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 10 * time.Millisecond
	}
	k.alive.Store(true)
	defer k.alive.Store(false)

	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			k.NextFrame()
		}
	}
}
