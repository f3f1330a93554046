package engine

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/clktmr/warp/internal/intr"
	"github.com/clktmr/warp/regs"
)

// Config is a snapshot of the hardware configuration, taken during Init.
type Config struct {
	RevisionMajor   uint8
	RevisionMinor   uint8
	StatusRegisters bool // Status is implemented
}

// Status is the state of the last warp.
type Status struct {
	WarpFinished bool
}

// Engine is a handle to an initialized warping engine. It's only valid
// between Init and Close, a nil or closed Engine fails every operation with
// ErrHandleInvalid without touching hardware.
type Engine struct {
	live atomic.Bool

	platform Platform
	settings Settings
	regs     regs.Window

	revision uint32
	config   Config
	counters int

	// Cached values of write-only registers. Not touched by the
	// interrupt path.
	enabled    bool
	irqEnabled uint32
	pfcEnabled uint32

	isrs    [32]intr.Slot[ISR]
	pending *intr.Pending
}

// Init acquires the resources of the warping engine described by p, checks
// the hardware revision and resets the engine to a disabled state with safe
// defaults.
//
// Init fails with ErrResourceAcquisition if p can't provide the register
// window or the interrupt line, and with a *RevisionError wrapping
// ErrUnsupportedRevision if the hardware isn't supported. In both cases all
// acquired resources are released again.
func Init(p Platform, opts ...Option) (*Engine, error) {
	log := Logger()

	if p == nil {
		return nil, fmt.Errorf("%w: no platform", ErrResourceAcquisition)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.counters < 0 || o.counters > regs.NumPFCSlots {
		return nil, fmt.Errorf("%w: %d counters exceed %d slots",
			ErrInvalidCounter, o.counters, regs.NumPFCSlots)
	}

	settings := p.Settings()
	log.Info("warping engine",
		"base", fmt.Sprintf("%#08x-%#08x", settings.Base, settings.Base+settings.Span),
		"vram", fmt.Sprintf("%#08x-%#08x", settings.MemBase, settings.MemBase+settings.MemSpan))

	w, err := p.Map()
	if err != nil {
		log.Warn("mapping registers failed", "err", err)
		return nil, fmt.Errorf("%w: map registers: %w", ErrResourceAcquisition, err)
	}
	if need := int(regs.PFCValueBase) + o.counters; w.Len() < need {
		err = fmt.Errorf("%w: window holds %d registers, need %d",
			ErrResourceAcquisition, w.Len(), need)
		return nil, errors.Join(err, p.Unmap())
	}

	revision := w.Load(regs.HWRevision)
	if revision < o.minRevision || revision > o.maxRevision {
		log.Warn("unsupported hardware", "revision", fmt.Sprintf("%#08x", revision))
		err = &RevisionError{Revision: revision, Min: o.minRevision, Max: o.maxRevision}
		return nil, errors.Join(err, p.Unmap())
	}
	log.Info("found warping engine", "revision", fmt.Sprintf("%#08x", revision))

	e := &Engine{
		platform: p,
		settings: settings,
		regs:     w,
		revision: revision,
		counters: o.counters,
		pending:  intr.NewPending(),
	}
	major, minor, status := regs.UnpackConfig(w.Load(regs.ConfigReg))
	e.config = Config{RevisionMajor: major, RevisionMinor: minor, StatusRegisters: status}
	e.resetRegisters(o.stripeWidth)
	e.live.Store(true)

	if err := p.RequestIRQ(e.Interrupt); err != nil {
		e.live.Store(false)
		log.Warn("requesting irq failed", "err", err)
		err = fmt.Errorf("%w: request irq: %w", ErrResourceAcquisition, err)
		return nil, errors.Join(err, p.Unmap())
	}

	return e, nil
}

// resetRegisters puts all configuration registers into a known state with
// the engine and its interrupts disabled.
func (e *Engine) resetRegisters(stripeWidth uint8) {
	w := e.regs
	w.Store(regs.ConfigReg, regs.ConfigEnable.Set(0, 0))
	w.Store(regs.IRQEnable, 0)
	w.Store(regs.IRQClear, ^uint32(0))
	w.Store(regs.OutsideColor, 0)
	w.Store(regs.StripeWidthReg, regs.PackStripeWidth(stripeWidth))
	w.Store(regs.PFCEnable, 0)
	w.Store(regs.PFCClear, ^uint32(0))
}

// validate is the gate in front of every register access.
func (e *Engine) validate() error {
	if e == nil || !e.live.Load() {
		return ErrHandleInvalid
	}
	return nil
}

// Close disables the engine's interrupts, releases the interrupt line and
// the register window and invalidates e. Waiters blocked in Wait return
// ErrHandleInvalid.
func (e *Engine) Close() error {
	if err := e.validate(); err != nil {
		return err
	}

	e.regs.Store(regs.IRQEnable, 0)
	e.live.Store(false)
	errIRQ := e.platform.FreeIRQ()
	for i := range e.isrs {
		e.isrs[i].Clear()
	}
	e.pending.Close()
	errMap := e.platform.Unmap()

	Logger().Info("warping engine released")

	if err := errors.Join(errIRQ, errMap); err != nil {
		return fmt.Errorf("engine: close: %w", err)
	}
	return nil
}

// Config returns the configuration read during Init.
func (e *Engine) Config() (Config, error) {
	if err := e.validate(); err != nil {
		return Config{}, err
	}
	return e.config, nil
}

// Revision returns the raw hardware revision read during Init.
func (e *Engine) Revision() (uint32, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	return e.revision, nil
}

// Settings returns the memory layout reported by the platform.
func (e *Engine) Settings() (Settings, error) {
	if err := e.validate(); err != nil {
		return Settings{}, err
	}
	return e.settings, nil
}

// Status reads the current status from hardware. It fails with
// ErrNotSupported if the hardware doesn't implement status registers.
func (e *Engine) Status() (Status, error) {
	if err := e.validate(); err != nil {
		return Status{}, err
	}
	if !e.config.StatusRegisters {
		return Status{}, fmt.Errorf("%w: status registers", ErrNotSupported)
	}
	status := e.regs.Load(regs.IRQStatus)
	return Status{WarpFinished: status&uint32(IRQWarpFinished) != 0}, nil
}

// ReadRegister reads register i bypassing all translation.
func (e *Engine) ReadRegister(i regs.Index) (uint32, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	if int(i) >= e.regs.Len() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRegister, i)
	}
	return e.regs.Load(i), nil
}

// WriteRegister writes v to register i bypassing all translation. Cached
// state like Enabled isn't updated.
func (e *Engine) WriteRegister(i regs.Index, v uint32) error {
	if err := e.validate(); err != nil {
		return err
	}
	if int(i) >= e.regs.Len() {
		return fmt.Errorf("%w: %d", ErrInvalidRegister, i)
	}
	e.regs.Store(i, v)
	return nil
}
