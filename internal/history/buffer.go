// Package history implements the fixed-capacity ring buffer holding the
// most recent sensor readings fed to the forecast model.
package history

import "github.com/microwx/microwx/internal/types"

// Buffer stores the last N readings in a fixed backing array with a
// modulo-advanced head index.  It never reallocates: once full, each
// insert overwrites the oldest slot.  The buffer has a single
// sequential caller (the forecasting cycle), so it carries no locks.
type Buffer struct {
	slots  []types.Reading
	head   int
	filled bool
}

// NewBuffer returns an empty buffer with the given fixed capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{
		slots: make([]types.Reading, capacity),
	}
}

// Insert writes the reading into the next physical slot and advances
// the head.  It is O(1) and cannot fail.
func (b *Buffer) Insert(r types.Reading) {
	b.slots[b.head] = r
	b.head = (b.head + 1) % len(b.slots)
	if b.head == 0 {
		b.filled = true
	}
}

// Filled reports whether at least capacity readings have been inserted.
func (b *Buffer) Filled() bool {
	return b.filled
}

// Len returns the number of readings currently held.
func (b *Buffer) Len() int {
	if b.filled {
		return len(b.slots)
	}
	return b.head
}

// Capacity returns the fixed capacity of the buffer.
func (b *Buffer) Capacity() int {
	return len(b.slots)
}

// Snapshot returns the logical window oldest-first, regardless of where
// the readings sit physically.  Before the buffer fills, the window is
// the partially-filled prefix in insertion order; callers that require
// a full window should check Filled first.  The returned slice is a
// fresh copy.
func (b *Buffer) Snapshot() []types.Reading {
	if !b.filled {
		window := make([]types.Reading, b.head)
		copy(window, b.slots[:b.head])
		return window
	}

	n := len(b.slots)
	window := make([]types.Reading, n)
	copy(window, b.slots[b.head:])
	copy(window[n-b.head:], b.slots[:b.head])
	return window
}
