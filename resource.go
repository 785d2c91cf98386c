package nine

import (
	"github.com/gogpu/nine/d3d9"
	"github.com/gogpu/nine/internal/state"
)

// Resource is implemented by every object created by a Device that has a
// memory pool: surfaces, textures and buffers.
type Resource interface {
	Device() (*Device, error)
	Type() d3d9.ResourceType
	SetPriority(p uint32) uint32
	Priority() uint32
	PreLoad()
	SetPrivateData(g d3d9.GUID, data []byte) error
	PrivateData(g d3d9.GUID) ([]byte, error)
	FreePrivateData(g d3d9.GUID) error
	AddRef() uint32
	Release() uint32
}

// resource carries the state shared by all resources. It is embedded by
// the concrete types, which supply destroy.
type resource struct {
	dev      DeviceID
	rtype    d3d9.ResourceType
	refs     uint32
	priority uint32
	private  map[d3d9.GUID][]byte

	// owner receives the reference count of surfaces that live inside a
	// texture or swap chain.
	owner   state.Shared
	destroy func()
}

func newResource(dev DeviceID, t d3d9.ResourceType) resource {
	return resource{dev: dev, rtype: t, refs: 1}
}

// Device returns the device that created the resource, or InvalidDevice
// once that device has been released.
func (r *resource) Device() (*Device, error) { return lookupDevice(r.dev) }

// Type returns the resource type.
func (r *resource) Type() d3d9.ResourceType { return r.rtype }

// SetPriority sets the eviction priority and returns the previous one.
func (r *resource) SetPriority(p uint32) uint32 {
	old := r.priority
	r.priority = p
	return old
}

// Priority returns the eviction priority.
func (r *resource) Priority() uint32 { return r.priority }

// PreLoad is accepted and ignored: modern drivers manage residency.
func (r *resource) PreLoad() {
	Logger().Info("nine: resource preloading is not implemented", "type", r.rtype)
}

// SetPrivateData stores a copy of data under g.
func (r *resource) SetPrivateData(g d3d9.GUID, data []byte) error {
	if r.private == nil {
		r.private = make(map[d3d9.GUID][]byte)
	}
	r.private[g] = append([]byte(nil), data...)
	return nil
}

// PrivateData returns a copy of the data stored under g.
func (r *resource) PrivateData(g d3d9.GUID) ([]byte, error) {
	data, ok := r.private[g]
	if !ok {
		return nil, d3d9.NotFound
	}
	return append([]byte(nil), data...), nil
}

// FreePrivateData removes the data stored under g.
func (r *resource) FreePrivateData(g d3d9.GUID) error {
	if _, ok := r.private[g]; !ok {
		return d3d9.NotFound
	}
	delete(r.private, g)
	return nil
}

// AddRef increments the reference count and returns the new count.
func (r *resource) AddRef() uint32 {
	if r.owner != nil {
		return r.owner.AddRef()
	}
	r.refs++
	return r.refs
}

// Release decrements the reference count. The last release destroys the
// modern objects behind the resource.
func (r *resource) Release() uint32 {
	if r.owner != nil {
		return r.owner.Release()
	}
	if r.refs == 0 {
		return 0
	}
	r.refs--
	if r.refs == 0 && r.destroy != nil {
		r.destroy()
		r.destroy = nil
	}
	return r.refs
}
