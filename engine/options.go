package engine

import "github.com/clktmr/warp/regs"

// Defaults applied by Init.
const (
	DefaultMinRevision = 0x0000_0000
	DefaultMaxRevision = 0x0000_ffff
	DefaultStripeWidth = 16
	DefaultCounters    = regs.NumPFCSlots
)

// BytesPerPixel is the pixel size the engine operates on.
const BytesPerPixel = 4

type options struct {
	minRevision, maxRevision uint32
	counters                 int
	stripeWidth              uint8
}

func defaultOptions() options {
	return options{
		minRevision: DefaultMinRevision,
		maxRevision: DefaultMaxRevision,
		counters:    DefaultCounters,
		stripeWidth: DefaultStripeWidth,
	}
}

// Option configures Init.
type Option func(*options)

// WithRevisionRange sets the range of hardware revisions Init accepts.
func WithRevisionRange(min, max uint32) Option {
	return func(o *options) {
		o.minRevision, o.maxRevision = min, max
	}
}

// WithCounters sets the number of performance counters implemented by the
// hardware, at most [regs.NumPFCSlots].
func WithCounters(n int) Option {
	return func(o *options) {
		o.counters = n
	}
}

// WithStripeWidth sets the stripe width programmed by Init.
func WithStripeWidth(w uint8) Option {
	return func(o *options) {
		o.stripeWidth = w
	}
}
