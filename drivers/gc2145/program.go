package gc2145

import "time"

// RegOp is one step of a register program: write Val to Reg, or, when Reg is
// the delay sentinel, pause for Val milliseconds without touching the bus.
type RegOp struct {
	Reg byte
	Val byte
}

// Program is an ordered register write sequence. Order matters: a bank select
// changes what subsequent addresses mean. Programs are immutable catalog
// data; nothing in the driver mutates them after init.
type Program []RegOp

// applyProgram runs a program through the device transport in order. It
// validates its inputs before any I/O and stops at the first write failure,
// returning a SequenceError with the failing entry index. There is no retry:
// a partially applied program leaves the sensor in an indeterminate state and
// the caller recovers by re-running initProgram.
func (d *Device) applyProgram(p Program) error {
	if d.bus == nil {
		return ErrNilBus
	}
	if len(p) == 0 {
		return ErrEmptyProgram
	}
	for i, op := range p {
		if op.Reg == regDelay {
			time.Sleep(time.Duration(op.Val) * time.Millisecond)
			continue
		}
		if err := d.writeReg(op.Reg, op.Val); err != nil {
			return &SequenceError{Index: i, cause: err}
		}
	}
	return nil
}
