// services/hal/registry.go
package hal

import (
	"fmt"
	"sync"
)

// BuildInput is provided to a device builder to construct an Adaptor.
type BuildInput struct {
	Buses    I2CBusFactory
	Pins     PinFactory
	DeviceID string
	Type     string
	Params   any
}

// Builder constructs an Adaptor from config and platform factories.
// Builders talk to hardware: a sensor builder runs its attach-time identity
// probe and fails the build if the chip is absent or wrong.
type Builder interface {
	Build(in BuildInput) (Adaptor, error)
}

var (
	muBuilders sync.RWMutex
	builders   = map[string]Builder{}
)

// RegisterBuilder installs a builder for a given device type string.
// It panics on duplicate registration to catch mistakes at start-up.
func RegisterBuilder(deviceType string, b Builder) {
	muBuilders.Lock()
	defer muBuilders.Unlock()
	if deviceType == "" {
		panic("hal: empty device type for builder")
	}
	if _, exists := builders[deviceType]; exists {
		panic(fmt.Sprintf("hal: builder already registered for type %q", deviceType))
	}
	builders[deviceType] = b
}

// FindBuilder looks up a registered builder by type.
func FindBuilder(deviceType string) (Builder, bool) {
	muBuilders.RLock()
	defer muBuilders.RUnlock()
	b, ok := builders[deviceType]
	return b, ok
}
