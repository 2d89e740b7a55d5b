package gc2145

import "time"

// Pin is a digital output line with active-high semantics, as driven for the
// sensor's power-down and reset inputs. Platform layers supply it (a GPIO on
// MCU targets, a gpiochip line on Linux hosts).
type Pin interface {
	Set(level bool)
}

// Minimum hold time for power-down/reset transitions, per the module's
// power-up sequence.
const pinHold = 100 * time.Microsecond

// powerEnable pulses the power-down line out of (enable) or into (disable)
// the powered-down state. The line is required: without it the sensor cannot
// be power-sequenced at all.
func (d *Device) powerEnable(enable bool) error {
	if d.pwdn == nil {
		return ErrNoPowerControl
	}
	if enable {
		d.pwdn.Set(true)
		time.Sleep(pinHold)
		d.pwdn.Set(false)
	} else {
		d.pwdn.Set(true)
	}
	time.Sleep(pinHold)
	return nil
}

// reset pulses the reset line high then low, holding each phase.
func (d *Device) reset() error {
	if d.rst == nil {
		return ErrNoResetControl
	}
	d.rst.Set(true)
	time.Sleep(pinHold)
	d.rst.Set(false)
	time.Sleep(pinHold)
	return nil
}

// powerOn runs the full power-on sequencing: enable then reset. Invoked on
// 0->1 reference transitions and before the identity check.
func (d *Device) powerOn() error {
	if err := d.powerEnable(true); err != nil {
		return err
	}
	return d.reset()
}

// powerOff asserts power-down and releases the external clock. Invoked on
// 1->0 reference transitions.
func (d *Device) powerOff() error {
	if err := d.powerEnable(false); err != nil {
		return err
	}
	if d.clockOff != nil {
		d.clockOff()
	}
	return nil
}

// SetPower adjusts the power reference count. The first user powers the
// sensor on (power-down release plus reset pulse); the last one off. The
// count never goes below zero: an unbalanced off returns ErrPowerUnderflow
// instead of being absorbed silently.
func (d *Device) SetPower(on bool) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if on {
		if d.powerCount == 0 {
			if err := d.powerOn(); err != nil {
				return err
			}
		}
		d.powerCount++
		return nil
	}
	switch d.powerCount {
	case 0:
		return ErrPowerUnderflow
	case 1:
		if err := d.powerOff(); err != nil {
			return err
		}
	}
	d.powerCount--
	return nil
}

// PowerCount reports the current reference count.
func (d *Device) PowerCount() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.powerCount
}
