package engine

import "github.com/clktmr/warp/regs"

// Platform is implemented by the platform layer which discovers a warping
// engine and acquires its resources. An Engine calls Map and RequestIRQ
// during Init and releases both in Close.
type Platform interface {
	// Settings describes where the engine and its video memory live.
	Settings() Settings

	// Map makes the register window accessible.
	Map() (regs.Window, error)
	Unmap() error

	// RequestIRQ routes the engine's interrupt line to handler. The
	// handler may be called from any goroutine, but calls must not
	// overlap.
	RequestIRQ(handler func()) error
	FreeIRQ() error
}
