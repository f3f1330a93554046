package engine

import (
	"context"
	"fmt"
	"math/bits"

	"github.com/clktmr/warp/internal/intr"
	"github.com/clktmr/warp/regs"
)

// IRQType identifies an interrupt by its bit in the interrupt registers.
type IRQType uint32

const (
	IRQWarpFinished IRQType = 1 << iota // warp finished, output image complete

	irqLast
)

const irqValid = irqLast - 1

// ISR handles an interrupt. It's called on the interrupt path and must return
// quickly without blocking.
type ISR func()

// RegisterISR sets isr as the handler of interrupt t and enables the
// interrupt. Any previously registered handler is replaced. A nil isr
// disables the interrupt and removes the handler.
func (e *Engine) RegisterISR(t IRQType, isr ISR) error {
	if err := e.validate(); err != nil {
		return err
	}
	if bits.OnesCount32(uint32(t)) != 1 || t&irqValid == 0 {
		return fmt.Errorf("%w: %#x", ErrInvalidIRQType, uint32(t))
	}

	slot := &e.isrs[bits.TrailingZeros32(uint32(t))]
	if isr == nil {
		e.irqEnabled &^= uint32(t)
		e.regs.Store(regs.IRQEnable, e.irqEnabled)
		slot.Clear()
		return nil
	}

	slot.Store(isr)
	e.irqEnabled |= uint32(t)
	e.regs.Store(regs.IRQEnable, e.irqEnabled)
	return nil
}

// Interrupt reads the pending interrupts from hardware and dispatches them.
// The platform routes the engine's interrupt line here.
func (e *Engine) Interrupt() {
	if e.validate() != nil {
		return
	}
	e.dispatch(e.regs.Load(regs.IRQStatus))
}

// Dispatch handles the interrupts set in status. The handler of each raised
// interrupt is called once, then the interrupt is acknowledged in hardware.
// Raised interrupts without handler are only acknowledged. Bits not set in
// status are left alone.
func (e *Engine) Dispatch(status uint32) error {
	if err := e.validate(); err != nil {
		return err
	}
	e.dispatch(status)
	return nil
}

func (e *Engine) dispatch(status uint32) {
	for pending := status; pending != 0; {
		bit := pending & -pending
		pending &^= bit

		if isr, ok := e.isrs[bits.TrailingZeros32(bit)].Load(); ok {
			isr()
		} else {
			Logger().Debug("unhandled interrupt", "status", bit)
		}
		e.regs.Store(regs.IRQClear, bit)
	}
	e.pending.Raise(status)
}

// Wait blocks until interrupts were dispatched since the last call to Wait
// and returns all of them. If e is closed while waiting, Wait returns
// ErrHandleInvalid.
func (e *Engine) Wait(ctx context.Context) (IRQType, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	status, err := e.pending.Wait(ctx)
	if err == intr.ErrClosed {
		return 0, ErrHandleInvalid
	}
	return IRQType(status), err
}
