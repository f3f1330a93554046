package engine

import (
	"fmt"

	"github.com/clktmr/warp/regs"
)

// Event is a hardware event a performance counter can count. MBI is the
// engine's memory bus interface.
type Event uint32

const (
	EventCoordinatesBurstRead  Event = iota // coordinates reader did a burst read on MBI
	EventCoordinatesWordRead                // coordinates reader read a word on MBI, once per word in a burst
	EventPrefetchMiss                       // texel scheduler prefetch missed the texture cache
	EventLineRefresh                        // texel scheduler sent a line refresh job to the texture cache
	EventCacheBurstRead                     // texture cache did a burst read on MBI
	EventCacheWordRead                      // texture cache received a word from MBI
	EventPixelRead                          // texture cache processed a pixel read
	EventPixelReadHit                       // pixel read didn't wait for a fetch
	EventPixelReadFetchWait                 // cycle waiting for a line to be fetched
	EventPixelReadRAMWait                   // cycle waiting for a repeated read RAM access
	EventJobLineReady                       // prefetch job taken without waiting for the replace count
	EventJobLineWait                        // cycle waiting for the access count to reach the replace count
	EventWriteBurst                         // write assembly did a burst write on MBI
	EventWriteWord                          // write assembly wrote a word on MBI
	EventClock                              // every clock cycle

	NumEvents int = iota
)

var eventNames = [NumEvents]string{
	"CoordinatesBurstRead",
	"CoordinatesWordRead",
	"PrefetchMiss",
	"LineRefresh",
	"CacheBurstRead",
	"CacheWordRead",
	"PixelRead",
	"PixelReadHit",
	"PixelReadFetchWait",
	"PixelReadRAMWait",
	"JobLineReady",
	"JobLineWait",
	"WriteBurst",
	"WriteWord",
	"Clock",
}

func (ev Event) String() string {
	if int(ev) < NumEvents {
		return eventNames[ev]
	}
	return fmt.Sprintf("Event(%d)", uint32(ev))
}

// Counters returns the number of performance counters.
func (e *Engine) Counters() (int, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	return e.counters, nil
}

func (e *Engine) counterMask() uint32 {
	return uint32(uint64(1)<<e.counters - 1)
}

func (e *Engine) checkCounter(n uint8) error {
	if int(n) >= e.counters {
		return fmt.Errorf("%w: %d", ErrInvalidCounter, n)
	}
	return nil
}

func (e *Engine) checkMask(mask uint32) error {
	if mask&^e.counterMask() != 0 {
		return fmt.Errorf("%w: mask %#08x", ErrInvalidCounter, mask)
	}
	return nil
}

// SetPerformanceCounterEvent selects the event counter n counts. It can be
// changed while the counter is disabled.
func (e *Engine) SetPerformanceCounterEvent(n uint8, ev Event) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkCounter(n); err != nil {
		return err
	}
	if int(ev) >= NumEvents {
		return fmt.Errorf("%w: %d", ErrInvalidEvent, uint32(ev))
	}
	e.regs.Store(regs.PFCEventSelect(n), uint32(ev))
	return nil
}

// EnablePerformanceCounters enables exactly the counters in mask, bit n
// corresponding to counter n. Counters missing from mask are disabled.
// Counter values are kept.
func (e *Engine) EnablePerformanceCounters(mask uint32) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkMask(mask); err != nil {
		return err
	}
	e.pfcEnabled = mask
	e.regs.Store(regs.PFCEnable, e.pfcEnabled)
	return nil
}

// EnablePerformanceCounter enables counter n, leaving the others as they
// are.
func (e *Engine) EnablePerformanceCounter(n uint8) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkCounter(n); err != nil {
		return err
	}
	e.pfcEnabled |= 1 << n
	e.regs.Store(regs.PFCEnable, e.pfcEnabled)
	return nil
}

// DisablePerformanceCounter disables counter n, leaving the others as they
// are.
func (e *Engine) DisablePerformanceCounter(n uint8) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkCounter(n); err != nil {
		return err
	}
	e.pfcEnabled &^= 1 << n
	e.regs.Store(regs.PFCEnable, e.pfcEnabled)
	return nil
}

// ClearPerformanceCounters resets the counters in mask to zero. Whether they
// are enabled doesn't change.
func (e *Engine) ClearPerformanceCounters(mask uint32) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkMask(mask); err != nil {
		return err
	}
	e.regs.Store(regs.PFCClear, mask)
	return nil
}

// ClearPerformanceCounter resets counter n to zero.
func (e *Engine) ClearPerformanceCounter(n uint8) error {
	if err := e.validate(); err != nil {
		return err
	}
	if err := e.checkCounter(n); err != nil {
		return err
	}
	e.regs.Store(regs.PFCClear, 1<<n)
	return nil
}

// PerformanceCounterValue returns the value of counter n. The value wraps
// around silently after 2^32 events.
func (e *Engine) PerformanceCounterValue(n uint8) (uint32, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	if err := e.checkCounter(n); err != nil {
		return 0, err
	}
	return e.regs.Load(regs.PFCValue(n)), nil
}
