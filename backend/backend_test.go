package backend

import (
	"errors"
	"testing"

	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/soft"
)

func TestSoftwareDriverName(t *testing.T) {
	d := NewSoftwareDriver(soft.Options{})
	if d.Name() != "software" {
		t.Errorf("Name() = %q, want %q", d.Name(), "software")
	}
}

func TestSoftwareDriverInit(t *testing.T) {
	d := NewSoftwareDriver(soft.Options{Description: "Test Adapter"})
	if d.Factory() != nil {
		t.Error("Factory() should be nil before Init")
	}
	if err := d.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer d.Close()

	adapters, err := d.Factory().Adapters()
	if err != nil {
		t.Fatalf("Adapters() error = %v", err)
	}
	if len(adapters) != 1 {
		t.Fatalf("Adapters() = %d, want 1", len(adapters))
	}
	if got := len(adapters[0].Desc().Description); got != len("Test Adapter") {
		t.Errorf("description length = %d", got)
	}
}

func TestRegistryRegisterAndGet(t *testing.T) {
	// Software driver is auto-registered via init()
	if !IsRegistered("software") {
		t.Error("software driver should be auto-registered")
	}

	d := Get("software")
	if d == nil {
		t.Fatal("Get(software) returned nil")
	}
	if d.Name() != "software" {
		t.Errorf("Get(software).Name() = %q, want %q", d.Name(), "software")
	}
}

func TestRegistryGetUnregistered(t *testing.T) {
	if d := Get("nonexistent"); d != nil {
		t.Error("Get(nonexistent) should return nil")
	}
}

func TestRegistryAvailable(t *testing.T) {
	found := false
	for _, name := range Available() {
		if name == "software" {
			found = true
			break
		}
	}
	if !found {
		t.Error("Available() should include 'software'")
	}
}

func TestRegistryMustDefault(t *testing.T) {
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("MustDefault() panicked: %v", r)
		}
	}()
	if d := MustDefault(); d == nil {
		t.Error("MustDefault() returned nil")
	}
}

type failingDriver struct{}

func (failingDriver) Name() string           { return BackendNative }
func (failingDriver) Init() error            { return ErrBackendNotAvailable }
func (failingDriver) Factory() d3d11.Factory { return nil }
func (failingDriver) Close()                 {}

func TestRegistryInitDefaultFallsBack(t *testing.T) {
	Register(BackendNative, func() Driver { return failingDriver{} })
	defer Unregister(BackendNative)

	if d := Default(); d.Name() != BackendNative {
		t.Errorf("Default() = %q, want %q", d.Name(), BackendNative)
	}
	d, err := InitDefault()
	if err != nil {
		t.Fatalf("InitDefault() error = %v", err)
	}
	defer d.Close()
	if d.Name() != BackendSoftware {
		t.Errorf("InitDefault() = %q, want %q", d.Name(), BackendSoftware)
	}
	if d.Factory() == nil {
		t.Error("driver from InitDefault() has no factory")
	}
}

func TestRegistryInitDefaultNone(t *testing.T) {
	registryMu.Lock()
	saved := drivers
	drivers = map[string]DriverFactory{"broken": func() Driver { return failingDriver{} }}
	registryMu.Unlock()
	defer func() {
		registryMu.Lock()
		drivers = saved
		registryMu.Unlock()
	}()

	if _, err := InitDefault(); !errors.Is(err, ErrBackendNotAvailable) {
		t.Errorf("InitDefault() error = %v, want ErrBackendNotAvailable", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	Register("test-driver", func() Driver { return &SoftwareDriver{} })
	if !IsRegistered("test-driver") {
		t.Error("test-driver should be registered")
	}
	Unregister("test-driver")
	if IsRegistered("test-driver") {
		t.Error("test-driver should be unregistered")
	}
}
