package engine

import "github.com/clktmr/warp/regs"

// Addresses and counts are passed to the hardware unchanged. Alignment and
// range are the hardware's contract.

func (e *Engine) store(i regs.Index, v uint32) error {
	if err := e.validate(); err != nil {
		return err
	}
	e.regs.Store(i, v)
	return nil
}

// SetCoordinatesAddress sets the bus address of the coordinate list.
func (e *Engine) SetCoordinatesAddress(addr uint32) error {
	return e.store(regs.CoordinatesAddress, addr)
}

// SetCoordinatesCount sets the number of entries in the coordinate list.
func (e *Engine) SetCoordinatesCount(n uint32) error {
	return e.store(regs.CoordinatesCount, n)
}

func (e *Engine) SetInputImageAddress(addr uint32) error {
	return e.store(regs.InputAddress, addr)
}

func (e *Engine) SetInputImageSize(width, height uint16) error {
	return e.store(regs.InputSize, regs.PackSize(width, height))
}

// SetInputImagePitch sets the distance between two lines of the input image
// in pixels. The hardware also needs it in bytes, which is derived from
// [BytesPerPixel].
func (e *Engine) SetInputImagePitch(pitch uint16) error {
	if err := e.store(regs.InputPitch, regs.PackPitch(pitch)); err != nil {
		return err
	}
	e.regs.Store(regs.InputBytePitch, uint32(pitch)*BytesPerPixel)
	return nil
}

// SetOutsideColor sets the color of output pixels whose coordinates lie
// outside of the input image.
func (e *Engine) SetOutsideColor(color uint32) error {
	return e.store(regs.OutsideColor, color)
}

func (e *Engine) SetOutputImageAddress(addr uint32) error {
	return e.store(regs.OutputAddress, addr)
}

func (e *Engine) SetOutputImageSize(width, height uint16) error {
	return e.store(regs.OutputSize, regs.PackSize(width, height))
}

// SetOutputImagePitch sets the distance between two lines of the output
// image in pixels.
func (e *Engine) SetOutputImagePitch(pitch uint16) error {
	return e.store(regs.OutputPitch, regs.PackPitch(pitch))
}

// SetStripeWidth sets the width of the stripes the engine splits output
// lines into for pipelining.
func (e *Engine) SetStripeWidth(w uint8) error {
	return e.store(regs.StripeWidthReg, regs.PackStripeWidth(w))
}

// SetEnabled starts or stops the engine.
//
// The enabled state is remembered, but other setters don't check it. It's
// the caller's responsibility to only reprogram a stopped engine.
func (e *Engine) SetEnabled(enable bool) error {
	var bit uint8
	if enable {
		bit = 1
	}
	if err := e.store(regs.ConfigReg, regs.ConfigEnable.Set(0, bit)); err != nil {
		return err
	}
	e.enabled = enable
	return nil
}

// Enabled returns the state last set by SetEnabled.
func (e *Engine) Enabled() (bool, error) {
	if err := e.validate(); err != nil {
		return false, err
	}
	return e.enabled, nil
}

// ResetPipeline pulses the engine's pipeline reset.
func (e *Engine) ResetPipeline() error {
	if err := e.store(regs.ResetPipe, 1); err != nil {
		return err
	}
	Logger().Debug("pipeline reset")
	return nil
}

// StreamBufferPixelCount reads the number of pixels in the engine's stream
// buffer.
func (e *Engine) StreamBufferPixelCount() (uint32, error) {
	if err := e.validate(); err != nil {
		return 0, err
	}
	return e.regs.Load(regs.StreamBufferPixels), nil
}
