package gc2145

import (
	"errors"
	"fmt"
)

// Errors returned by the driver.
var (
	ErrNilBus             = errors.New("gc2145: nil bus")
	ErrEmptyProgram       = errors.New("gc2145: empty register program")
	ErrNoSuitableMode     = errors.New("gc2145: no suitable mode")
	ErrUnrecognizedDevice = errors.New("gc2145: unrecognized device")
	ErrNoPowerControl     = errors.New("gc2145: no power-down control line")
	ErrNoResetControl     = errors.New("gc2145: no reset control line")
	ErrPowerUnderflow     = errors.New("gc2145: power reference underflow")
	ErrClockRange         = errors.New("gc2145: xclk frequency out of range")
)

// TransportError reports a failed single-register bus transaction. Reg (and
// Val, for writes) identify the attempted access for diagnostics.
type TransportError struct {
	Reg    byte
	Val    byte
	IsRead bool
	cause  error
}

func (e *TransportError) Error() string {
	if e.IsRead {
		return fmt.Sprintf("gc2145: read reg 0x%02X: %v", e.Reg, e.cause)
	}
	return fmt.Sprintf("gc2145: write reg 0x%02X val 0x%02X: %v", e.Reg, e.Val, e.cause)
}

func (e *TransportError) Unwrap() error { return e.cause }

// SequenceError reports how far a register program got before a transport
// failure. Entries before Index were written; the sensor register state is
// indeterminate and recovery is a full re-application of initProgram.
type SequenceError struct {
	Index int
	cause error
}

func (e *SequenceError) Error() string {
	return fmt.Sprintf("gc2145: program aborted at entry %d: %v", e.Index, e.cause)
}

func (e *SequenceError) Unwrap() error { return e.cause }
