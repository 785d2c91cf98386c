package nine

import (
	"sync"
	"sync/atomic"

	"github.com/gogpu/nine/d3d9"
)

// DeviceID names a live device. Resources hold a DeviceID instead of a
// pointer so that a resource outliving its device reports InvalidDevice
// rather than touching freed state.
type DeviceID uint64

// devices maps live device IDs to devices.
var devices = struct {
	mu     sync.RWMutex
	nextID atomic.Uint64
	table  map[DeviceID]*Device
}{table: make(map[DeviceID]*Device)}

func registerDevice(d *Device) DeviceID {
	id := DeviceID(devices.nextID.Add(1))
	devices.mu.Lock()
	devices.table[id] = d
	devices.mu.Unlock()
	return id
}

func unregisterDevice(id DeviceID) {
	devices.mu.Lock()
	delete(devices.table, id)
	devices.mu.Unlock()
}

// lookupDevice returns the device for id, or InvalidDevice once it has been
// released.
func lookupDevice(id DeviceID) (*Device, error) {
	devices.mu.RLock()
	d, ok := devices.table[id]
	devices.mu.RUnlock()
	if !ok {
		return nil, d3d9.InvalidDevice
	}
	return d, nil
}
