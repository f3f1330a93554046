// Package engine is the hardware abstraction layer of the warping engine, a
// memory-mapped coprocessor which remaps an input image into an output image
// by a list of coordinates.
//
// An [Engine] is obtained from [Init] and owns the register window of one
// coprocessor until [Engine.Close]. Its methods translate typed
// configuration into register writes, expose the status and the performance
// counters and dispatch the coprocessor's interrupt to registered handlers.
//
// # Concurrency
//
// Register access is synchronous and unlocked. A caller sharing an Engine
// between goroutines must serialize all methods except [Engine.Interrupt],
// [Engine.Dispatch] and [Engine.Wait]. Those run on the interrupt path,
// which the platform may invoke at any time. The interrupt path only reads
// state that is immutable after Init or published atomically by
// [Engine.RegisterISR]; the register writes it issues (acknowledging status
// bits) touch a register no other method writes. Handlers run on the
// interrupt path too: they must not block and must not reprogram the engine.
package engine
