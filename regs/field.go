package regs

import (
	"golang.org/x/exp/constraints"

	"github.com/clktmr/warp/debug"
)

// Field describes a bit field of Width bits starting at bit Shift inside a
// 32-bit register. T is the narrowest type holding the field's value.
type Field[T constraints.Unsigned] struct {
	Shift uint8
	Width uint8
}

// Mask returns the bits occupied by the field.
func (f Field[T]) Mask() uint32 {
	return uint32((uint64(1)<<f.Width - 1) << f.Shift)
}

// Get extracts the field from reg.
func (f Field[T]) Get(reg uint32) T {
	return T((reg & f.Mask()) >> f.Shift)
}

// Set returns reg with the field replaced by v. Bits of v that don't fit into
// the field are dropped.
func (f Field[T]) Set(reg uint32, v T) uint32 {
	debug.Assert(uint64(v) < uint64(1)<<f.Width, "regs: value exceeds field width")
	return reg&^f.Mask() | uint32(uint64(v)<<f.Shift)&f.Mask()
}
