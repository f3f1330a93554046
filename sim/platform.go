package sim

import (
	"errors"

	"github.com/clktmr/warp/engine"
	"github.com/clktmr/warp/regs"
)

var (
	ErrNotMapped    = errors.New("sim: registers not mapped")
	ErrNoIRQ        = errors.New("sim: irq not requested")
	ErrAlreadyInUse = errors.New("sim: resource already in use")
)

// Platform provides a simulated Hardware to engine.Init. Setting MapErr or
// IRQErr makes the respective resource acquisition fail.
type Platform struct {
	HW     *Hardware
	Layout engine.Settings

	MapErr error
	IRQErr error

	mapped bool
	irq    bool
}

// NewPlatform returns a platform for hw with a typical memory layout.
func NewPlatform(hw *Hardware) *Platform {
	return &Platform{
		HW: hw,
		Layout: engine.Settings{
			Base:    0x4000_0000,
			Span:    uint64(regs.WindowLen * 4),
			MemBase: 0x3000_0000,
			MemSpan: 16 << 20,
		},
	}
}

func (p *Platform) Settings() engine.Settings { return p.Layout }

func (p *Platform) Map() (regs.Window, error) {
	if p.MapErr != nil {
		return nil, p.MapErr
	}
	if p.mapped {
		return nil, ErrAlreadyInUse
	}
	p.mapped = true
	return p.HW, nil
}

func (p *Platform) Unmap() error {
	if !p.mapped {
		return ErrNotMapped
	}
	p.mapped = false
	return nil
}

func (p *Platform) RequestIRQ(handler func()) error {
	if p.IRQErr != nil {
		return p.IRQErr
	}
	if p.irq {
		return ErrAlreadyInUse
	}
	p.irq = true
	p.HW.setLine(handler)
	return nil
}

func (p *Platform) FreeIRQ() error {
	if !p.irq {
		return ErrNoIRQ
	}
	p.irq = false
	p.HW.setLine(nil)
	return nil
}

// Mapped reports whether the register window is currently mapped.
func (p *Platform) Mapped() bool { return p.mapped }

// IRQRequested reports whether the interrupt line is currently requested.
func (p *Platform) IRQRequested() bool { return p.irq }
