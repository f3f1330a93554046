// Package regs provides access to the register window of the warping engine
// coprocessor.
//
// Registers are addressed by their 32-bit word index relative to the window
// base. The package knows the register map and how fields are packed into
// registers, but nothing about the order in which the hardware expects them
// to be programmed. That is the job of the engine package.
package regs

// Index is the word offset of a register from the window base.
type Index uint32

// Register map. Read-only registers are marked (ro), registers whose bits
// have a different meaning when written are marked (rw*).
const (
	CoordinatesAddress    Index = 0
	CoordinatesCount      Index = 1
	InputAddress          Index = 2
	InputSize             Index = 3 // width<<16 | height
	InputPitch            Index = 4 // in pixels
	InputBytePitch        Index = 5
	OutsideColor          Index = 6
	OutputAddress         Index = 7
	OutputSize            Index = 8 // width<<16 | height
	OutputPitch           Index = 9 // in pixels
	StripeWidthReg        Index = 10
	HWRevision            Index = 11 // (ro)
	ConfigReg             Index = 12 // (rw*) revision on read, enable bit on write
	IRQEnable             Index = 13
	IRQStatus             Index = 14 // (ro)
	IRQClear              Index = 15
	ResetPipe             Index = 22
	StreamBufferPixels    Index = 23 // (ro)
	PFCEnable             Index = 30
	PFCClear              Index = 31
	PFCEventSelectBase    Index = 32
	PFCValueBase          Index = 64 // (ro)
	NumPFCSlots                 = int(PFCValueBase - PFCEventSelectBase)
	WindowLen                   = int(PFCValueBase) + NumPFCSlots
)

// PFCEventSelect returns the event select register of performance counter n.
func PFCEventSelect(n uint8) Index { return PFCEventSelectBase + Index(n) }

// PFCValue returns the value register of performance counter n.
func PFCValue(n uint8) Index { return PFCValueBase + Index(n) }

// Window is a contiguous range of 32-bit registers.
//
// Implementations perform the access synchronously and don't fail. They are
// not required to be safe for concurrent use.
type Window interface {
	Load(i Index) uint32
	Store(i Index, v uint32)

	// Len returns the number of registers in the window.
	Len() int
}

// Memory is a Window backed by ordinary memory. It's useful for register
// windows which were already mapped by the caller, e.g. via mmap on a UIO
// device, and for tests.
type Memory []uint32

// NewMemory returns a zeroed Memory window large enough for the full
// register map.
func NewMemory() Memory {
	return make(Memory, WindowLen)
}

func (m Memory) Load(i Index) uint32 { return m[i] }

func (m Memory) Store(i Index, v uint32) { m[i] = v }

func (m Memory) Len() int { return len(m) }
