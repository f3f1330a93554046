//go:build noos

package regs

import (
	"embedded/mmio"
	"unsafe"
)

// MMIO is a Window over memory-mapped hardware registers. It's only
// available when building for bare-metal targets with the embedded Go
// toolchain, where the platform has already mapped the window uncached at
// base.
type MMIO struct {
	regs []mmio.U32
}

// NewMMIO returns a window of span bytes starting at virtual address base.
func NewMMIO(base uintptr, span uintptr) *MMIO {
	return &MMIO{regs: unsafe.Slice((*mmio.U32)(unsafe.Pointer(base)), span/4)}
}

func (w *MMIO) Load(i Index) uint32 { return w.regs[i].Load() }

func (w *MMIO) Store(i Index, v uint32) { w.regs[i].Store(v) }

func (w *MMIO) Len() int { return len(w.regs) }
