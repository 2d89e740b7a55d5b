package gc2145

import (
	"errors"
	"testing"
	"time"
)

func TestApplyProgramWritesInOrder(t *testing.T) {
	d, bus, _, _ := newTestDevice()
	prog := Program{{0xfe, 0x00}, {0x17, 0x14}, {0x84, 0x02}}

	if err := d.applyProgram(prog); err != nil {
		t.Fatalf("applyProgram: %v", err)
	}
	if got := bus.writeCount(); got != len(prog) {
		t.Fatalf("write count = %d, want %d", got, len(prog))
	}
	for i, op := range prog {
		if bus.writes[i] != op {
			t.Fatalf("write[%d] = %+v, want %+v", i, bus.writes[i], op)
		}
	}
}

func TestApplyProgramStopsAtFirstFailure(t *testing.T) {
	d, bus, _, _ := newTestDevice()
	bus.failAt = 2
	prog := Program{{0x01, 0x11}, {0x02, 0x22}, {0x03, 0x33}}

	err := d.applyProgram(prog)
	var seqErr *SequenceError
	if !errors.As(err, &seqErr) {
		t.Fatalf("error = %v, want SequenceError", err)
	}
	if seqErr.Index != 1 {
		t.Fatalf("failing index = %d, want 1", seqErr.Index)
	}
	var tErr *TransportError
	if !errors.As(err, &tErr) || tErr.Reg != 0x02 || tErr.Val != 0x22 {
		t.Fatalf("cause = %v, want transport error for reg 0x02 val 0x22", err)
	}
	if got := bus.writeCount(); got != 1 {
		t.Fatalf("writes after failure = %d, want 1", got)
	}
}

func TestApplyProgramPreconditions(t *testing.T) {
	d, bus, _, _ := newTestDevice()
	if err := d.applyProgram(nil); err != ErrEmptyProgram {
		t.Fatalf("empty program error = %v, want ErrEmptyProgram", err)
	}
	if got := bus.writeCount(); got != 0 {
		t.Fatalf("writes after precondition failure = %d, want 0", got)
	}

	d.bus = nil
	if err := d.applyProgram(Program{{0x01, 0x01}}); err != ErrNilBus {
		t.Fatalf("nil bus error = %v, want ErrNilBus", err)
	}
}

func TestApplyProgramDelaySentinel(t *testing.T) {
	d, bus, _, _ := newTestDevice()
	prog := Program{{regDelay, 30}}

	start := time.Now()
	if err := d.applyProgram(prog); err != nil {
		t.Fatalf("applyProgram: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 30*time.Millisecond {
		t.Fatalf("sentinel delay lasted %v, want >= 30ms", elapsed)
	}
	if got := bus.writeCount(); got != 0 {
		t.Fatalf("sentinel entry reached the bus: %d writes", got)
	}
}
