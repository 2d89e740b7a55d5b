package gc2145

import (
	"sync"
	"time"

	"tinygo.org/x/drivers"

	"camcode-go/x/mathx"
)

// Which selects between the committed format and the negotiation scratch
// buffer in GetFormat/SetFormat.
type Which uint8

const (
	FormatActive Which = iota
	FormatTry
)

// Config wires a Device to its platform resources.
type Config struct {
	// Address defaults to the fixed 7-bit address if zero.
	Address uint16
	// PowerDown and Reset are the sensor's control lines. Both are required
	// for power sequencing; construction succeeds without them but any
	// power transition fails.
	PowerDown Pin
	Reset     Pin
	// XCLKHz is the external clock frequency. Must lie in
	// [XCLKMinHz, XCLKMaxHz]; validated in Configure.
	XCLKHz uint32
	// ClockOff releases the external clock on power-off. Optional.
	ClockOff func()
	// AllModes lifts the reference driver's commit restriction. When false
	// (the default) every committed geometry is pinned to 800x600 even
	// though all four modes are advertised; set it to allow committing any
	// catalog mode.
	AllModes bool
}

// Device is a session on one GC2145. One mutex serializes every call path
// that reaches the bus or the session state: negotiation, commit, power
// transitions, flips and state reads. Committing a mode is a long critical
// section (the base init program is ~700 writes); the sensor has a single
// control surface and a single logical owner, so nothing is gained by finer
// locking.
type Device struct {
	bus  drivers.I2C
	addr uint16

	mu         sync.Mutex
	fmt        FrameFormat // committed
	tryFmt     FrameFormat // negotiation scratch
	tried      bool
	mode       *Mode // reflects the last successfully programmed mode
	powerCount int

	pwdn     Pin
	rst      Pin
	clockOff func()
	xclkHz   uint32
	force    bool

	// Fixed transaction buffers.
	w [2]byte
	r [1]byte
}

// New creates a Device on the given bus without touching hardware. The
// session starts at the catalog defaults: UYVY, SVGA 800x600, progressive.
func New(bus drivers.I2C) *Device {
	d := &Device{bus: bus, addr: Address, force: true}
	d.setDefaultFormat()
	return d
}

func (d *Device) setDefaultFormat() {
	def := &formatCatalog[0]
	svga := &modeCatalog[ModeSVGA]
	d.fmt = FrameFormat{
		Code:       def.Code,
		Colorspace: def.Colorspace,
		Width:      svga.Width,
		Height:     svga.Height,
		Field:      FieldNone,
	}
	d.mode = svga
}

// Configure applies wiring config and verifies the chip identity. The sensor
// is power-sequenced for the probe and, on success, left powered off with a
// zero reference count. A wrong or absent chip fails with
// ErrUnrecognizedDevice.
func (d *Device) Configure(cfg Config) error {
	if d.bus == nil {
		return ErrNilBus
	}
	if cfg.Address != 0 {
		d.addr = cfg.Address
	}
	if !mathx.Between(cfg.XCLKHz, uint32(XCLKMinHz), uint32(XCLKMaxHz)) {
		return ErrClockRange
	}
	d.pwdn = cfg.PowerDown
	d.rst = cfg.Reset
	d.clockOff = cfg.ClockOff
	d.xclkHz = cfg.XCLKHz
	d.force = !cfg.AllModes

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.checkChipID()
}

// checkChipID powers the sensor on and reads both identity registers. The
// accept condition matches the reference driver: the probe fails only when
// both bytes mismatch the expected identity, not when either does.
func (d *Device) checkChipID() error {
	if err := d.powerOn(); err != nil {
		return err
	}
	hi, errH := d.readReg(regChipIDHigh)
	lo, errL := d.readReg(regChipIDLow)
	if errH != nil || errL != nil ||
		(hi != byte(ChipID>>8) && lo != byte(ChipID&0xFF)) {
		_ = d.powerOff()
		return ErrUnrecognizedDevice
	}
	return d.powerOff()
}

// tryFormatLocked is the negotiation step shared by TryFormat and SetFormat.
// It resolves the request against both catalogs and normalizes it, touching
// neither hardware nor committed state. Caller holds d.mu.
func (d *Device) tryFormatLocked(req FrameFormat) (FrameFormat, *Mode, error) {
	mode := findMode(req.Width, req.Height, true)
	if mode == nil {
		return FrameFormat{}, nil, ErrNoSuitableMode
	}
	pf := findFormat(req.Code)
	out := FrameFormat{
		Code:       pf.Code,
		Colorspace: pf.Colorspace,
		Width:      mode.Width,
		Height:     mode.Height,
		Field:      FieldNone,
	}
	return out, mode, nil
}

// TryFormat negotiates a candidate format without committing it: the
// geometry snaps to the nearest catalog mode and the code resolves through
// the format catalog (unknown codes become the default). The normalized
// result is stored in the session's try buffer and returned.
func (d *Device) TryFormat(req FrameFormat) (FrameFormat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	out, _, err := d.tryFormatLocked(req)
	if err != nil {
		return FrameFormat{}, err
	}
	d.tryFmt = out
	d.tried = true
	return out, nil
}

// SetFormat negotiates and, for FormatActive, commits: the sensor is
// programmed and the session state updated. With FormatTry it behaves like
// TryFormat. Committed state moves only after hardware programming succeeds,
// so d.fmt and d.mode always describe the last mode the sensor actually
// accepted; on error the previous committed state stands and the sensor
// registers are indeterminate until the next successful commit.
func (d *Device) SetFormat(which Which, req FrameFormat) (FrameFormat, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.force {
		// Reference behavior: the commit path pins geometry to SVGA.
		req.Width = modeCatalog[ModeSVGA].Width
		req.Height = modeCatalog[ModeSVGA].Height
	}
	out, mode, err := d.tryFormatLocked(req)
	if err != nil {
		return FrameFormat{}, err
	}
	if which == FormatTry {
		d.tryFmt = out
		d.tried = true
		return out, nil
	}
	// Commit needs a powered sensor. If nobody holds a reference yet the
	// session takes the first one itself.
	if d.powerCount == 0 {
		if err := d.powerOn(); err != nil {
			return FrameFormat{}, err
		}
		d.powerCount = 1
	}
	if err := d.paramsSet(out); err != nil {
		return FrameFormat{}, err
	}
	d.fmt = out
	d.mode = mode
	return out, nil
}

// paramsSet programs the sensor for a committed format: full base init,
// explicit return to bank 0, then the one-write format select. Caller holds
// d.mu. Any failure propagates with the failing program index.
func (d *Device) paramsSet(f FrameFormat) error {
	pf := findFormat(f.Code)
	if err := d.applyProgram(initProgram); err != nil {
		return err
	}
	if err := d.writeReg(regPageSelect, 0x00); err != nil {
		return err
	}
	return d.applyProgram(pf.selectProg)
}

// GetFormat returns a copy of the committed format, or of the try buffer
// when a negotiation has been staged and which is FormatTry. Never touches
// hardware.
func (d *Device) GetFormat(which Which) FrameFormat {
	d.mu.Lock()
	defer d.mu.Unlock()
	if which == FormatTry && d.tried {
		return d.tryFmt
	}
	return d.fmt
}

// Mode reports the last successfully programmed capture mode.
func (d *Device) Mode() Mode {
	d.mu.Lock()
	defer d.mu.Unlock()
	return *d.mode
}

// Flip settle time after rewriting the orientation register.
const flipSettle = 20 * time.Millisecond

// setFlip does the shared bank-0 read-modify-write on the orientation
// register. Both axes share one register, so the session lock covers the
// whole cycle against lost updates.
func (d *Device) setFlip(bit byte, on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if err := d.writeReg(regPageSelect, 0x00); err != nil {
		return err
	}
	var set, clear byte
	if on {
		set = bit
	} else {
		clear = bit
	}
	if err := d.updateReg(regAnalogMode, set, clear); err != nil {
		return err
	}
	time.Sleep(flipSettle)
	return nil
}

// SetVFlip mirrors the image vertically.
func (d *Device) SetVFlip(on bool) error { return d.setFlip(flipVBit, on) }

// SetHFlip mirrors the image horizontally.
func (d *Device) SetHFlip(on bool) error { return d.setFlip(flipHBit, on) }

// SetStream is accepted for interface symmetry; starting or stopping the
// stream does not reprogram the sensor.
func (d *Device) SetStream(on bool) error { return nil }

// PixelRate reports the fixed output pixel clock in Hz.
func (d *Device) PixelRate() uint32 { return PixelRateHz }

// XCLK reports the configured external clock frequency in Hz.
func (d *Device) XCLK() uint32 { return d.xclkHz }

// Addr reports the device's 7-bit bus address.
func (d *Device) Addr() uint16 { return d.addr }

// Status is a point-in-time snapshot of the session for diagnostics.
type Status struct {
	Format     FrameFormat
	Mode       ModeID
	PowerCount int
}

// GetStatus returns a consistent snapshot under the session lock.
func (d *Device) GetStatus() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	return Status{Format: d.fmt, Mode: d.mode.ID, PowerCount: d.powerCount}
}
