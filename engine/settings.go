package engine

import (
	"encoding/binary"
	"fmt"

	"github.com/sigurn/crc8"
)

// Settings describes the physical memory of a warping engine: its register
// window and the video memory attached to it. The engine never dereferences
// these, they are for callers which need to map the regions themselves.
type Settings struct {
	Base    uint64 // register window start address
	Span    uint64 // register window size in bytes
	MemBase uint64 // video memory start address
	MemSpan uint64 // video memory size in bytes
}

// SettingsSize is the size of the binary encoding of Settings.
const SettingsSize = 4 * 8

var settingsCRC8 = crc8.MakeTable(crc8.CRC8)

// MarshalBinary encodes s as four little endian 64-bit words in field order.
func (s Settings) MarshalBinary() ([]byte, error) {
	return s.append(make([]byte, 0, SettingsSize)), nil
}

func (s Settings) append(b []byte) []byte {
	b = binary.LittleEndian.AppendUint64(b, s.Base)
	b = binary.LittleEndian.AppendUint64(b, s.Span)
	b = binary.LittleEndian.AppendUint64(b, s.MemBase)
	b = binary.LittleEndian.AppendUint64(b, s.MemSpan)
	return b
}

func (s *Settings) UnmarshalBinary(data []byte) error {
	if len(data) != SettingsSize {
		return fmt.Errorf("engine: settings record has %d bytes, expected %d", len(data), SettingsSize)
	}
	s.Base = binary.LittleEndian.Uint64(data[0:])
	s.Span = binary.LittleEndian.Uint64(data[8:])
	s.MemBase = binary.LittleEndian.Uint64(data[16:])
	s.MemSpan = binary.LittleEndian.Uint64(data[24:])
	return nil
}

// AppendFrame appends the binary encoding of s followed by its CRC-8 to b.
func (s Settings) AppendFrame(b []byte) []byte {
	start := len(b)
	b = s.append(b)
	return append(b, crc8.Checksum(b[start:], settingsCRC8))
}

// ParseFrame decodes a frame written by AppendFrame.
func ParseFrame(frame []byte) (s Settings, err error) {
	if len(frame) != SettingsSize+1 {
		return s, fmt.Errorf("engine: settings frame has %d bytes, expected %d", len(frame), SettingsSize+1)
	}
	data, csum := frame[:SettingsSize], frame[SettingsSize]
	if got := crc8.Checksum(data, settingsCRC8); got != csum {
		return s, fmt.Errorf("%w: settings frame crc %#02x, expected %#02x", ErrChecksum, csum, got)
	}
	err = s.UnmarshalBinary(data)
	return
}
