// Package intr passes values between ordinary goroutines and the interrupt
// dispatch path without taking locks in the dispatch path.
package intr

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
)

// Slot publishes a value into an interrupt context. A stored value is never
// modified afterwards, so a reader always sees either the previous or the new
// value in full. Any number of writers and readers are allowed, but writers
// racing each other are resolved in arbitrary order.
type Slot[T any] struct {
	ptr atomic.Pointer[T]
}

// Store publishes v, replacing the previous value.
func (s *Slot[T]) Store(v T) {
	s.ptr.Store(&v)
}

// Clear removes the published value.
func (s *Slot[T]) Clear() {
	s.ptr.Store(nil)
}

// Load returns the published value and whether there is one.
func (s *Slot[T]) Load() (v T, ok bool) {
	p := s.ptr.Load()
	if p == nil {
		return v, false
	}
	return *p, true
}

var ErrClosed = errors.New("intr: pending closed")

// Pending accumulates interrupt status bits raised in an interrupt context
// until a goroutine collects them with Wait. Raise never blocks.
type Pending struct {
	bits atomic.Uint32
	note chan struct{}

	done      chan struct{}
	closeOnce sync.Once
}

func NewPending() *Pending {
	return &Pending{
		note: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
}

// Raise adds mask to the pending bits and wakes up a waiting goroutine.
func (p *Pending) Raise(mask uint32) {
	if mask == 0 {
		return
	}
	p.bits.Or(mask)
	select {
	case p.note <- struct{}{}:
	default: // already notified
	}
}

// Wait blocks until bits are pending, then returns and clears them.
func (p *Pending) Wait(ctx context.Context) (uint32, error) {
	for {
		if v := p.bits.Swap(0); v != 0 {
			return v, nil
		}
		select {
		case <-p.note:
		case <-p.done:
			return 0, ErrClosed
		case <-ctx.Done():
			return 0, ctx.Err()
		}
	}
}

// Close wakes up all waiting goroutines. Subsequent calls to Wait fail with
// ErrClosed unless bits are still pending.
func (p *Pending) Close() {
	p.closeOnce.Do(func() { close(p.done) })
}
