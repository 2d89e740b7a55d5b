package errcode

import (
	"errors"

	"camcode-go/drivers/gc2145"
)

// Code is a stable, host-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable).
const (
	OK                Code = "ok"
	Unsupported       Code = "unsupported"
	InvalidParams     Code = "invalid_params"
	InvalidPayload    Code = "invalid_payload"
	UnknownCapability Code = "unknown_capability"

	NoSuitableMode     Code = "no_suitable_mode"
	UnrecognizedDevice Code = "unrecognized_device"
	TransportFailed    Code = "transport_failed"
	SequenceAborted    Code = "sequence_aborted"
	PowerUnavailable   Code = "power_unavailable"
	PowerUnderflow     Code = "power_underflow"
	ClockRange         Code = "clock_range"
	UnknownBus         Code = "unknown_bus"
	UnknownPin         Code = "unknown_pin"

	Error Code = "error" // generic fallback
)

// Optional wrapper when we want to keep context and a cause.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	if e.Msg != "" {
		return string(e.C) + ": " + e.Msg
	}
	return string(e.C)
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	return Error
}

// MapDriverErr maps sensor driver errors to a stable Code.
func MapDriverErr(err error) Code {
	if err == nil {
		return OK
	}
	switch {
	case errors.Is(err, gc2145.ErrNoSuitableMode):
		return NoSuitableMode
	case errors.Is(err, gc2145.ErrUnrecognizedDevice):
		return UnrecognizedDevice
	case errors.Is(err, gc2145.ErrNoPowerControl), errors.Is(err, gc2145.ErrNoResetControl):
		return PowerUnavailable
	case errors.Is(err, gc2145.ErrPowerUnderflow):
		return PowerUnderflow
	case errors.Is(err, gc2145.ErrClockRange):
		return ClockRange
	case errors.Is(err, gc2145.ErrNilBus), errors.Is(err, gc2145.ErrEmptyProgram):
		return InvalidParams
	}
	var seqErr *gc2145.SequenceError
	if errors.As(err, &seqErr) {
		return SequenceAborted
	}
	var tErr *gc2145.TransportError
	if errors.As(err, &tErr) {
		return TransportFailed
	}
	return Error
}
