package regs

// Packing layouts of the multi-field registers.
//
// The placement of width and height in the size registers is a compatibility
// constant of the hardware. It's defined here and nowhere else.
var (
	SizeWidth  = Field[uint16]{Shift: 16, Width: 16}
	SizeHeight = Field[uint16]{Shift: 0, Width: 16}

	Pitch       = Field[uint16]{Shift: 0, Width: 16}
	StripeWidth = Field[uint8]{Shift: 0, Width: 8}

	// ConfigReg read access
	ConfigMinor     = Field[uint8]{Shift: 0, Width: 8}
	ConfigMajor     = Field[uint8]{Shift: 8, Width: 8}
	ConfigStatusReg = Field[uint8]{Shift: 16, Width: 1}

	// ConfigReg write access
	ConfigEnable = Field[uint8]{Shift: 0, Width: 1}
)

// PackSize packs an image size into the layout of InputSize and OutputSize.
func PackSize(width, height uint16) uint32 {
	return SizeHeight.Set(SizeWidth.Set(0, width), height)
}

// UnpackSize is the inverse of PackSize.
func UnpackSize(reg uint32) (width, height uint16) {
	return SizeWidth.Get(reg), SizeHeight.Get(reg)
}

// PackPitch zero-extends a pitch for InputPitch and OutputPitch.
func PackPitch(pitch uint16) uint32 {
	return Pitch.Set(0, pitch)
}

// PackStripeWidth zero-extends a stripe width for StripeWidthReg.
func PackStripeWidth(w uint8) uint32 {
	return StripeWidth.Set(0, w)
}

// PackConfig builds the value the hardware returns when reading ConfigReg.
func PackConfig(major, minor uint8, statusRegs bool) uint32 {
	var v uint32
	v = ConfigMajor.Set(v, major)
	v = ConfigMinor.Set(v, minor)
	if statusRegs {
		v = ConfigStatusReg.Set(v, 1)
	}
	return v
}

// UnpackConfig decodes a value read from ConfigReg.
func UnpackConfig(reg uint32) (major, minor uint8, statusRegs bool) {
	return ConfigMajor.Get(reg), ConfigMinor.Get(reg), ConfigStatusReg.Get(reg) != 0
}
