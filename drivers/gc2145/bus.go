package gc2145

// I2C 8-bit register operations. A write is one transaction carrying
// [reg, val]; a read is the address phase followed by a repeated-start read
// of one byte. No retries here; retry policy belongs to callers.

func (d *Device) writeReg(reg, val byte) error {
	d.w[0] = reg
	d.w[1] = val
	if err := d.bus.Tx(d.addr, d.w[:2], nil); err != nil {
		return &TransportError{Reg: reg, Val: val, cause: err}
	}
	return nil
}

func (d *Device) readReg(reg byte) (byte, error) {
	d.w[0] = reg
	if err := d.bus.Tx(d.addr, d.w[:1], d.r[:1]); err != nil {
		return 0, &TransportError{Reg: reg, IsRead: true, cause: err}
	}
	return d.r[0], nil
}

// updateReg does a read-modify-write on one register: set bits in set, clear
// bits in clear. Callers that touch shared registers (regAnalogMode) must
// hold the session lock across the whole cycle.
func (d *Device) updateReg(reg, set, clear byte) error {
	cur, err := d.readReg(reg)
	if err != nil {
		return err
	}
	return d.writeReg(reg, (cur|set)&^clear)
}
