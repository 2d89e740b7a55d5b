package gc2145

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"
)

// Compile-time check.
var _ drivers.I2C = (*fakeBus)(nil)

// fakeBus is a scripted GC2145-shaped register file. Writes are recorded in
// order and applied to a flat register map; reads come from the map. failAt
// makes the Nth write attempt (1-based) fail without recording it.
type fakeBus struct {
	mu      sync.Mutex
	regs    map[byte]byte
	writes  []RegOp
	reads   int
	failAt  int
	failErr error
}

func newFakeSensor() *fakeBus {
	return &fakeBus{regs: map[byte]byte{
		regChipIDHigh: byte(ChipID >> 8),
		regChipIDLow:  byte(ChipID & 0xFF),
	}}
}

var errBusNAK = errors.New("i2c: no ack")

func (f *fakeBus) Tx(addr uint16, w, r []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch {
	case len(w) == 2 && len(r) == 0: // register write
		if f.failAt > 0 && len(f.writes)+1 == f.failAt {
			if f.failErr != nil {
				return f.failErr
			}
			return errBusNAK
		}
		f.writes = append(f.writes, RegOp{w[0], w[1]})
		f.regs[w[0]] = w[1]
		return nil
	case len(w) == 1 && len(r) == 1: // register read
		f.reads++
		r[0] = f.regs[w[0]]
		return nil
	}
	return errBusNAK
}

func (f *fakeBus) writeCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.writes)
}

func (f *fakeBus) lastWrite() RegOp {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.writes[len(f.writes)-1]
}

// fakePin records level transitions.
type fakePin struct {
	mu     sync.Mutex
	level  bool
	sets   int
	assert int // transitions to high
}

func (p *fakePin) Set(level bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if level && !p.level {
		p.assert++
	}
	p.level = level
	p.sets++
}

func (p *fakePin) high() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// newTestDevice wires a Device to a fresh fake sensor and fake pins without
// running the Configure probe.
func newTestDevice() (*Device, *fakeBus, *fakePin, *fakePin) {
	bus := newFakeSensor()
	pwdn := &fakePin{}
	rst := &fakePin{}
	d := New(bus)
	d.pwdn = pwdn
	d.rst = rst
	return d, bus, pwdn, rst
}
