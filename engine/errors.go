package engine

import (
	"errors"
	"fmt"
)

var (
	ErrHandleInvalid       = errors.New("engine: invalid handle")
	ErrUnsupportedRevision = errors.New("engine: unsupported hardware revision")
	ErrResourceAcquisition = errors.New("engine: resource acquisition failed")
	ErrInvalidCounter      = errors.New("engine: invalid performance counter")
	ErrInvalidEvent        = errors.New("engine: invalid performance counter event")
	ErrInvalidIRQType      = errors.New("engine: invalid interrupt type")
	ErrInvalidRegister     = errors.New("engine: register out of window")
	ErrNotSupported        = errors.New("engine: not supported by hardware")
	ErrChecksum            = errors.New("engine: checksum mismatch")
)

// RevisionError is returned by Init if the hardware reports a revision
// outside of the supported range.
type RevisionError struct {
	Revision uint32
	Min, Max uint32
}

func (e *RevisionError) Error() string {
	return fmt.Sprintf("engine: hardware revision %#08x not in [%#08x, %#08x]",
		e.Revision, e.Min, e.Max)
}

func (e *RevisionError) Unwrap() error { return ErrUnsupportedRevision }
