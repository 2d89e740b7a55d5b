// services/hal/types.go
package hal

import (
	"tinygo.org/x/drivers"

	"camcode-go/drivers/gc2145"
	"camcode-go/types"
)

// CapInfo describes one capability's retained info document.
type CapInfo struct {
	Kind string // capability kind
	Info types.Info
}

// Adaptor owns a concrete device/driver and exposes the subdev-style
// operation groups to the host as generic control hooks. Adaptors must NOT
// spawn goroutines; callers provide the serialization they need (the sensor
// session below locks internally anyway).
type Adaptor interface {
	ID() string
	// Static capability descriptions (published as retained).
	Capabilities() []CapInfo
	// Control dispatches one operation for a capability kind.
	// Returns (nil, errcode.Unsupported) for unknown method/kind pairs.
	Control(kind, method string, payload any) (result any, err error)
}

// I2CBusFactory injects configured I²C instances by id.
type I2CBusFactory interface {
	ByID(id string) (drivers.I2C, bool)
}

// PinFactory supplies control lines by the configured number scheme.
type PinFactory interface {
	ByNumber(n int) (gc2145.Pin, bool)
}
