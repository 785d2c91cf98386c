package backend

import (
	"sync"

	"github.com/gogpu/nine"
)

// DriverFactory creates a new driver instance.
type DriverFactory func() Driver

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]DriverFactory)
	// Priority order for driver selection (first available wins).
	// Native > Software (Software is the fallback).
	driverPriority = []string{BackendNative, BackendSoftware}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it will be replaced.
func Register(name string, factory DriverFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns a list of registered driver names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a driver instance by name.
// Returns nil if the driver is not registered.
func Get(name string) Driver {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// ordered returns the registered factories, priority names first.
func ordered() []DriverFactory {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]DriverFactory, 0, len(drivers))
	seen := make(map[string]bool, len(driverPriority))
	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			out = append(out, factory)
			seen[name] = true
		}
	}
	for name, factory := range drivers {
		if !seen[name] {
			out = append(out, factory)
		}
	}
	return out
}

// Default returns the best available driver based on priority.
// Priority order: native > software
// Returns nil if no drivers are registered.
func Default() Driver {
	for _, factory := range ordered() {
		if d := factory(); d != nil {
			return d
		}
	}
	return nil
}

// MustDefault returns the default driver or panics.
func MustDefault() Driver {
	d := Default()
	if d == nil {
		panic("backend: no driver available")
	}
	return d
}

// InitDefault initializes the best driver whose Init succeeds, falling
// back down the priority list.
func InitDefault() (Driver, error) {
	for _, factory := range ordered() {
		d := factory()
		if d == nil {
			continue
		}
		if err := d.Init(); err != nil {
			nine.Logger().Debug("backend: driver unavailable", "driver", d.Name(), "error", err)
			continue
		}
		nine.Logger().Info("backend: driver selected", "driver", d.Name())
		return d, nil
	}
	return nil, ErrBackendNotAvailable
}
