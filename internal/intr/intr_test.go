package intr

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestSlot(t *testing.T) {
	var s Slot[func() int]
	if _, ok := s.Load(); ok {
		t.Fatal("expected empty slot")
	}

	s.Store(func() int { return 1 })
	s.Store(func() int { return 2 })
	f, ok := s.Load()
	if !ok {
		t.Fatal("expected stored value")
	}
	if got := f(); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}

	s.Clear()
	if _, ok := s.Load(); ok {
		t.Fatal("expected cleared slot")
	}
}

func TestSlotConcurrent(t *testing.T) {
	var s Slot[[2]int]
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := range 1000 {
			s.Store([2]int{i, i})
		}
	}()
	for range 1000 {
		if v, ok := s.Load(); ok && v[0] != v[1] {
			t.Fatalf("torn read %v", v)
		}
	}
	wg.Wait()
}

func TestPendingAccumulates(t *testing.T) {
	p := NewPending()
	p.Raise(0x1)
	p.Raise(0x4)
	p.Raise(0)

	got, err := p.Wait(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x5 {
		t.Fatalf("expected 0x5, got %#x", got)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	if _, err := p.Wait(ctx); !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected %v, got %v", context.DeadlineExceeded, err)
	}
}

func TestPendingWakeup(t *testing.T) {
	p := NewPending()
	result := make(chan uint32)
	go func() {
		v, _ := p.Wait(context.Background())
		result <- v
	}()

	time.Sleep(time.Millisecond)
	p.Raise(0x1)

	select {
	case v := <-result:
		if v != 0x1 {
			t.Fatalf("expected 0x1, got %#x", v)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter not woken up")
	}
}

func TestPendingClose(t *testing.T) {
	p := NewPending()
	done := make(chan error)
	go func() {
		_, err := p.Wait(context.Background())
		done <- err
	}()

	p.Close()
	p.Close()

	select {
	case err := <-done:
		if err != ErrClosed {
			t.Fatalf("expected %v, got %v", ErrClosed, err)
		}
	case <-time.After(time.Second):
		t.Fatal("waiter not woken up")
	}
}
