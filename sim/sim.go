// Package sim simulates the register file of a warping engine, so the
// engine package can be exercised without hardware.
//
// The simulation models the side effects of register accesses: the read-only
// registers, acknowledging interrupts, the pipeline reset pulse and the
// performance counters. It doesn't warp images.
package sim

import (
	"sync"

	"github.com/clktmr/warp/engine"
	"github.com/clktmr/warp/regs"
)

// Access is a single register access.
type Access struct {
	Write bool
	Index regs.Index
	Value uint32
}

// Hardware is a simulated warping engine. It implements [regs.Window] and is
// safe for concurrent use.
type Hardware struct {
	mtx sync.Mutex

	file     regs.Memory
	revision uint32
	config   uint32

	enabled   bool
	irqStatus uint32
	resets    int
	pfcValue  [regs.NumPFCSlots]uint32

	trace []Access
	line  func()
}

// New returns a simulated engine reporting revision and config on the
// respective registers.
func New(revision, config uint32) *Hardware {
	return &Hardware{
		file:     regs.NewMemory(),
		revision: revision,
		config:   config,
	}
}

func isPFCValue(i regs.Index) bool {
	return i >= regs.PFCValueBase && int(i) < regs.WindowLen
}

func (hw *Hardware) Len() int { return regs.WindowLen }

func (hw *Hardware) Load(i regs.Index) (v uint32) {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()

	switch {
	case i == regs.HWRevision:
		v = hw.revision
	case i == regs.ConfigReg:
		v = hw.config
	case i == regs.IRQStatus:
		v = hw.irqStatus
	case isPFCValue(i):
		v = hw.pfcValue[i-regs.PFCValueBase]
	default:
		v = hw.file[i]
	}
	hw.trace = append(hw.trace, Access{Write: false, Index: i, Value: v})
	return v
}

func (hw *Hardware) Store(i regs.Index, v uint32) {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()

	hw.trace = append(hw.trace, Access{Write: true, Index: i, Value: v})

	switch {
	case i == regs.HWRevision, i == regs.IRQStatus, isPFCValue(i):
		// read-only
	case i == regs.ConfigReg:
		hw.enabled = regs.ConfigEnable.Get(v) != 0
	case i == regs.IRQClear:
		hw.irqStatus &^= v
	case i == regs.ResetPipe:
		if v&1 != 0 {
			hw.resets++
		}
	case i == regs.PFCClear:
		for n := range hw.pfcValue {
			if v&(1<<n) != 0 {
				hw.pfcValue[n] = 0
			}
		}
	default:
		hw.file[i] = v
	}
}

// Register returns the last value written to a read/write register. Unlike
// Load it doesn't show up in the trace.
func (hw *Hardware) Register(i regs.Index) uint32 {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	return hw.file[i]
}

// Enabled reports the state of the enable bit.
func (hw *Hardware) Enabled() bool {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	return hw.enabled
}

// Resets returns the number of pipeline resets.
func (hw *Hardware) Resets() int {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	return hw.resets
}

// Raise sets the interrupt status bits in mask, as the hardware does when
// e.g. a warp finished. If any of them is enabled in the interrupt enable
// register, the interrupt line is triggered, i.e. the handler requested via
// the Platform is called before Raise returns.
func (hw *Hardware) Raise(mask uint32) {
	hw.mtx.Lock()
	hw.irqStatus |= mask
	line := hw.line
	fire := hw.irqStatus&hw.file[regs.IRQEnable] != 0
	hw.mtx.Unlock()

	if fire && line != nil {
		line()
	}
}

// FinishWarp signals a finished warp.
func (hw *Hardware) FinishWarp() {
	hw.Raise(uint32(engine.IRQWarpFinished))
}

// Count lets k events of kind ev happen. Every enabled counter selecting ev
// is incremented by k, wrapping around on overflow.
func (hw *Hardware) Count(ev engine.Event, k uint32) {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()

	enabled := hw.file[regs.PFCEnable]
	for n := range hw.pfcValue {
		if enabled&(1<<n) == 0 {
			continue
		}
		if hw.file[regs.PFCEventSelect(uint8(n))] == uint32(ev) {
			hw.pfcValue[n] += k
		}
	}
}

// Trace returns all accesses since the last call to ResetTrace.
func (hw *Hardware) Trace() []Access {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	return append([]Access(nil), hw.trace...)
}

// Writes returns only the write accesses of the trace.
func (hw *Hardware) Writes() (w []Access) {
	for _, a := range hw.Trace() {
		if a.Write {
			w = append(w, a)
		}
	}
	return
}

func (hw *Hardware) ResetTrace() {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	hw.trace = nil
}

func (hw *Hardware) setLine(handler func()) {
	hw.mtx.Lock()
	defer hw.mtx.Unlock()
	hw.line = handler
}
