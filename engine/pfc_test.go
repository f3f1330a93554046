package engine_test

import (
	"errors"
	"testing"

	"github.com/clktmr/warp/engine"
	"github.com/clktmr/warp/regs"
)

func TestPerformanceCounterCount(t *testing.T) {
	e, hw, _ := newEngine(t)

	e.SetPerformanceCounterEvent(3, engine.EventPixelReadHit)
	e.SetPerformanceCounterEvent(4, engine.EventClock)
	e.EnablePerformanceCounter(3)
	e.EnablePerformanceCounter(4)

	hw.Count(engine.EventPixelReadHit, 17)
	hw.Count(engine.EventPixelRead, 100)
	hw.Count(engine.EventPixelReadHit, 5)

	if v, err := e.PerformanceCounterValue(3); err != nil || v != 22 {
		t.Fatalf("expected 22, got %d (%v)", v, err)
	}
	if v, _ := e.PerformanceCounterValue(4); v != 0 {
		t.Fatalf("expected other counter unchanged, got %d", v)
	}
}

func TestPerformanceCounterEventWhileDisabled(t *testing.T) {
	e, hw, _ := newEngine(t)

	e.SetPerformanceCounterEvent(0, engine.EventWriteBurst)
	hw.Count(engine.EventWriteBurst, 10)
	if v, _ := e.PerformanceCounterValue(0); v != 0 {
		t.Fatalf("disabled counter counted %d events", v)
	}
	if got := hw.Register(regs.PFCEventSelect(0)); got != uint32(engine.EventWriteBurst) {
		t.Fatalf("expected event %d selected, got %d", engine.EventWriteBurst, got)
	}

	e.EnablePerformanceCounter(0)
	hw.Count(engine.EventWriteBurst, 10)
	e.DisablePerformanceCounter(0)
	hw.Count(engine.EventWriteBurst, 10)
	if v, _ := e.PerformanceCounterValue(0); v != 10 {
		t.Fatalf("expected 10, got %d", v)
	}
}

func TestPerformanceCounterClear(t *testing.T) {
	e, hw, _ := newEngine(t)

	for n := range uint8(4) {
		e.SetPerformanceCounterEvent(n, engine.EventClock)
	}
	e.EnablePerformanceCounters(0xf)
	hw.Count(engine.EventClock, 1000)

	if err := e.ClearPerformanceCounter(1); err != nil {
		t.Fatal(err)
	}
	if v, _ := e.PerformanceCounterValue(1); v != 0 {
		t.Fatalf("expected 0 after clear, got %d", v)
	}
	if v, _ := e.PerformanceCounterValue(0); v != 1000 {
		t.Fatalf("expected 1000 on uncleared counter, got %d", v)
	}

	if err := e.ClearPerformanceCounters(0b1100); err != nil {
		t.Fatal(err)
	}
	for n, expected := range []uint32{1000, 0, 0, 0} {
		if v, _ := e.PerformanceCounterValue(uint8(n)); v != expected {
			t.Errorf("counter %d: expected %d, got %d", n, expected, v)
		}
	}

	// Clearing keeps counters enabled.
	if got := hw.Register(regs.PFCEnable); got != 0xf {
		t.Fatalf("expected enable mask 0xf, got %#x", got)
	}
	hw.Count(engine.EventClock, 1)
	if v, _ := e.PerformanceCounterValue(2); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
}

func TestPerformanceCounterEnableMask(t *testing.T) {
	e, hw, _ := newEngine(t)

	e.EnablePerformanceCounters(0b0101)
	e.EnablePerformanceCounter(1)
	if got := hw.Register(regs.PFCEnable); got != 0b0111 {
		t.Fatalf("expected 0b0111, got %#b", got)
	}
	e.EnablePerformanceCounters(0b1000)
	if got := hw.Register(regs.PFCEnable); got != 0b1000 {
		t.Fatalf("expected 0b1000, got %#b", got)
	}
}

func TestPerformanceCounterWraps(t *testing.T) {
	e, hw, _ := newEngine(t)
	e.SetPerformanceCounterEvent(31, engine.EventClock)
	e.EnablePerformanceCounter(31)

	hw.Count(engine.EventClock, 0xffff_ffff)
	hw.Count(engine.EventClock, 2)
	if v, _ := e.PerformanceCounterValue(31); v != 1 {
		t.Fatalf("expected wrap around to 1, got %d", v)
	}
}

func TestPerformanceCounterInvalid(t *testing.T) {
	e, hw, _ := newEngine(t, engine.WithCounters(8))

	tests := map[string]struct {
		op       func() error
		expected error
	}{
		"eventCounter": {func() error { return e.SetPerformanceCounterEvent(8, engine.EventClock) }, engine.ErrInvalidCounter},
		"eventKind":    {func() error { return e.SetPerformanceCounterEvent(0, engine.Event(engine.NumEvents)) }, engine.ErrInvalidEvent},
		"enable":       {func() error { return e.EnablePerformanceCounter(8) }, engine.ErrInvalidCounter},
		"enableMask":   {func() error { return e.EnablePerformanceCounters(0x100) }, engine.ErrInvalidCounter},
		"disable":      {func() error { return e.DisablePerformanceCounter(255) }, engine.ErrInvalidCounter},
		"clear":        {func() error { return e.ClearPerformanceCounter(8) }, engine.ErrInvalidCounter},
		"clearMask":    {func() error { return e.ClearPerformanceCounters(0x8000_0000) }, engine.ErrInvalidCounter},
		"value":        {func() error { _, err := e.PerformanceCounterValue(9); return err }, engine.ErrInvalidCounter},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			hw.ResetTrace()
			if err := tc.op(); !errors.Is(err, tc.expected) {
				t.Fatalf("expected %v, got %v", tc.expected, err)
			}
			if trace := hw.Trace(); len(trace) != 0 {
				t.Fatalf("expected no register access, got %v", trace)
			}
		})
	}
}

func TestEventString(t *testing.T) {
	tests := map[engine.Event]string{
		engine.EventCoordinatesBurstRead: "CoordinatesBurstRead",
		engine.EventClock:                "Clock",
		engine.Event(15):                 "Event(15)",
	}
	for ev, expected := range tests {
		if got := ev.String(); got != expected {
			t.Errorf("expected %q, got %q", expected, got)
		}
	}
	if engine.NumEvents != 15 {
		t.Fatalf("expected 15 events, got %d", engine.NumEvents)
	}
}
