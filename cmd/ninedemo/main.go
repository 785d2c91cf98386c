// Command ninedemo reports what the legacy API sees on the selected driver,
// then creates a device, fills an offscreen surface through a lock and
// saves it as a PNG.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/nine"
	"github.com/gogpu/nine/backend"
	_ "github.com/gogpu/nine/backend/native"
	"github.com/gogpu/nine/d3d11"
	"github.com/gogpu/nine/d3d11/soft"
	"github.com/gogpu/nine/d3d9"
)

var checkedFormats = []struct {
	name string
	f    d3d9.Format
}{
	{"A8R8G8B8", d3d9.FmtA8R8G8B8},
	{"X8R8G8B8", d3d9.FmtX8R8G8B8},
	{"R5G6B5", d3d9.FmtR5G6B5},
	{"A16B16G16R16F", d3d9.FmtA16B16G16R16F},
	{"DXT1", d3d9.FmtDXT1},
	{"DXT5", d3d9.FmtDXT5},
	{"D24S8", d3d9.FmtD24S8},
	{"D16", d3d9.FmtD16},
}

func main() {
	var (
		width   = flag.Uint("width", 800, "back buffer width")
		height  = flag.Uint("height", 600, "back buffer height")
		driver  = flag.String("backend", "", "driver name (default: best available)")
		frames  = flag.Int("frames", 3, "frames to present")
		output  = flag.String("output", "ninedemo.png", "output file")
		verbose = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	nine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	drv, err := openDriver(*driver)
	if err != nil {
		log.Fatalf("Failed to open driver: %v", err)
	}
	defer drv.Close()

	ctx, err := nine.NewContext(drv.Factory())
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer ctx.Release()

	for i := range ctx.AdapterCount() {
		report(ctx, i)
	}

	window := &soft.Window{Width: uint32(*width), Height: uint32(*height)}
	pp := &d3d9.PresentParameters{
		Windowed:               true,
		SwapEffect:             d3d9.SwapEffectDiscard,
		EnableAutoDepthStencil: true,
		AutoDepthStencilFormat: d3d9.FmtD24S8,
		PresentationInterval:   d3d9.PresentIntervalImmediate,
	}
	dev, err := ctx.CreateDevice(0, d3d9.DevTypeHAL, window, d3d9.CreateHardwareVertexProcessing, pp)
	if err != nil {
		log.Fatalf("Failed to create device: %v", err)
	}
	defer dev.Release()
	fmt.Printf("device: %dx%d %v, %d back buffer(s)\n", pp.BackBufferWidth, pp.BackBufferHeight, pp.BackBufferFormat, pp.BackBufferCount)

	for range *frames {
		if err := dev.Present(nil, nil, nil, nil); err != nil {
			log.Fatalf("Present failed: %v", err)
		}
	}
	fmt.Printf("presented %d frame(s)\n", window.Presented)

	if err := saveGradient(dev, pp.BackBufferWidth, pp.BackBufferHeight, *output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Surface saved to %s (%dx%d)\n", *output, pp.BackBufferWidth, pp.BackBufferHeight)
}

func openDriver(name string) (backend.Driver, error) {
	if name == "" {
		return backend.InitDefault()
	}
	d := backend.Get(name)
	if d == nil {
		return nil, fmt.Errorf("%w: %q (available: %v)", backend.ErrBackendNotAvailable, name, backend.Available())
	}
	if err := d.Init(); err != nil {
		return nil, err
	}
	return d, nil
}

func report(ctx *nine.Context, i uint32) {
	id, err := ctx.AdapterIdentifier(i)
	if err != nil {
		log.Printf("adapter %d: %v", i, err)
		return
	}
	fmt.Printf("adapter %d: %s [%s] vendor %#04x device %#04x\n", i, id.Description, id.DeviceName, id.VendorID, id.DeviceID)

	if mode, err := ctx.AdapterDisplayMode(i); err == nil {
		fmt.Printf("  display mode: %dx%d@%d, %d modes\n", mode.Width, mode.Height, mode.RefreshRate,
			ctx.AdapterModeCount(i, d3d9.FmtX8R8G8B8))
	} else {
		fmt.Printf("  display mode: %v\n", err)
	}

	for _, cf := range checkedFormats {
		fmt.Printf("  %-14s texture:%-5v rt:%-5v ds:%-5v msaa4:%v\n", cf.name,
			supported(ctx, i, 0, d3d9.RTypeTexture, cf.f),
			supported(ctx, i, d3d9.UsageRenderTarget, d3d9.RTypeSurface, cf.f),
			supported(ctx, i, d3d9.UsageDepthStencil, d3d9.RTypeSurface, cf.f),
			multisampled(ctx, i, cf.f))
	}
}

func supported(ctx *nine.Context, i uint32, u d3d9.Usage, rt d3d9.ResourceType, f d3d9.Format) bool {
	return ctx.CheckDeviceFormat(i, d3d9.DevTypeHAL, d3d9.FmtX8R8G8B8, u, rt, f) == nil
}

func multisampled(ctx *nine.Context, i uint32, f d3d9.Format) bool {
	_, err := ctx.CheckDeviceMultiSampleType(i, d3d9.DevTypeHAL, f, true, d3d9.Multisample4Samples)
	return err == nil
}

// saveGradient fills a system memory surface through a lock, reads it back
// and writes it to path.
func saveGradient(dev *nine.Device, w, h uint32, path string) error {
	s, err := dev.CreateOffscreenPlainSurface(w, h, d3d9.FmtA8R8G8B8, d3d9.PoolSystemMem, false)
	if err != nil {
		return err
	}
	defer s.Release()

	lr, err := s.LockRect(nil, 0)
	if err != nil {
		return err
	}
	for y := range h {
		row := lr.Bits[y*uint32(lr.Pitch):]
		for x := range w {
			// B, G, R, A
			row[4*x+0] = byte(255 * y / h)
			row[4*x+1] = byte(255 * x / w)
			row[4*x+2] = 0x80
			row[4*x+3] = 0xFF
		}
	}
	if err := s.UnlockRect(); err != nil {
		return err
	}

	lr, err = s.LockRect(nil, d3d9.LockReadOnly)
	if err != nil {
		return err
	}
	img := soft.Image(d3d11.FormatB8G8R8A8Unorm, w, h, uint32(lr.Pitch), lr.Bits)
	if err := s.UnlockRect(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
