// Package gc2145 provides a driver for the GalaxyCore GC2145 2MP CMOS image
// sensor. It covers the control plane only: mode/format negotiation, the
// power/reset lifecycle and the register programming that commits a capture
// mode over the two-wire control bus. Pixel data leaves the sensor on its
// parallel/CSI port and never passes through this driver.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when
// both w and r are provided, without releasing the bus.
package gc2145

const (
	// 7-bit I2C address (write phase 0x78 on the wire).
	Address = 0x3C

	// 16-bit identity constant read back from regChipIDHigh/regChipIDLow.
	ChipID = 0x2145
)

// External clock limits and the fixed pixel rate.
const (
	XCLKMinHz   = 6_000_000
	XCLKMaxHz   = 48_000_000
	PixelRateHz = 120_000_000
)

// Page 0 register sub-addresses. All registers are 8-bit; regPageSelect
// switches the bank that subsequent addresses refer to, so program order is
// significant.
const (
	regOutputFormat = 0x84
	regAnalogMode   = 0x17 // bit0 hflip, bit1 vflip
	regChipIDHigh   = 0xF0
	regChipIDLow    = 0xF1
	regPadMode      = 0xF2
	regPageSelect   = 0xFE

	// regDelay is not a register: a program entry with this address inserts
	// a delay of Val milliseconds instead of a bus write.
	regDelay = 0xFF
)

// regAnalogMode flip bits.
const (
	flipHBit = 0x01
	flipVBit = 0x02
)

// Output-format register values (regOutputFormat, page 0).
const (
	outputFmtUYVY = 0x00
	outputFmtVYUY = 0x01
	outputFmtYUYV = 0x02
	outputFmtYVYU = 0x03
	outputFmtRGB  = 0x06
	outputFmtDNDD = 0x18
	outputFmtLSC  = 0x19
)
