// Package sim provides an in-memory GC2145 lookalike for host-side bring-up:
// a flat register file behind a drivers.I2C transaction surface, plus
// recording control pins. Delays are real (the driver sleeps), bus traffic
// is not.
package sim

import (
	"errors"
	"sync"

	"tinygo.org/x/drivers"

	"camcode-go/drivers/gc2145"
)

var _ drivers.I2C = (*Sensor)(nil)

var errNAK = errors.New("sim: no ack")

// Sensor emulates the sensor's register file. The identity registers read
// back the real chip id unless overridden with Poke.
type Sensor struct {
	mu     sync.Mutex
	regs   map[byte]byte
	writes int
	reads  int
	// FailWrites makes every register write NAK, for fault injection.
	FailWrites bool
}

func NewSensor() *Sensor {
	return &Sensor{regs: map[byte]byte{
		0xF0: byte(gc2145.ChipID >> 8),
		0xF1: byte(gc2145.ChipID & 0xFF),
	}}
}

// Tx implements the write / write-then-read transaction shapes the driver
// issues. Anything else NAKs.
func (s *Sensor) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case len(w) == 2 && len(r) == 0:
		if s.FailWrites {
			return errNAK
		}
		s.regs[w[0]] = w[1]
		s.writes++
		return nil
	case len(w) == 1 && len(r) == 1:
		r[0] = s.regs[w[0]]
		s.reads++
		return nil
	}
	return errNAK
}

// Poke sets a register directly, bypassing the bus.
func (s *Sensor) Poke(reg, val byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.regs[reg] = val
}

// Peek reads a register directly.
func (s *Sensor) Peek(reg byte) byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.regs[reg]
}

// Writes reports how many register writes have been accepted.
func (s *Sensor) Writes() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

// Pin is a recording control line.
type Pin struct {
	mu    sync.Mutex
	level bool
}

func (p *Pin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// High reports the current line level.
func (p *Pin) High() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

// Board bundles one simulated sensor with its control lines and satisfies
// the HAL's bus/pin factories.
type Board struct {
	Sensor *Sensor
	Pwdn   *Pin
	Reset  *Pin
}

func NewBoard() *Board {
	return &Board{Sensor: NewSensor(), Pwdn: &Pin{}, Reset: &Pin{}}
}

// ByID implements hal.I2CBusFactory for the single bus "i2c0".
func (b *Board) ByID(id string) (drivers.I2C, bool) {
	if id != "i2c0" {
		return nil, false
	}
	return b.Sensor, true
}

// ByNumber implements hal.PinFactory: pin 0 is power-down, pin 1 reset.
func (b *Board) ByNumber(n int) (gc2145.Pin, bool) {
	switch n {
	case 0:
		return b.Pwdn, true
	case 1:
		return b.Reset, true
	}
	return nil, false
}
