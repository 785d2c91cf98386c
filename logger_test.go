package nine

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/gogpu/nine/d3d11/soft"
	"github.com/gogpu/nine/d3d9"
)

// captureLogs routes the package logger into a buffer for the duration of
// the test.
func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	return &buf
}

func TestNopHandler(t *testing.T) {
	h := nopHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if h.Enabled(context.Background(), level) {
			t.Errorf("nopHandler.Enabled(%v) = true, want false", level)
		}
	}
	if err := h.Handle(context.Background(), slog.Record{}); err != nil {
		t.Errorf("nopHandler.Handle() = %v", err)
	}
	if _, ok := h.WithAttrs(nil).(nopHandler); !ok {
		t.Error("WithAttrs() left the nop handler")
	}
	if _, ok := h.WithGroup("g").(nopHandler); !ok {
		t.Error("WithGroup() left the nop handler")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestDeviceLifecycleLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelInfo)
	d, _ := newTestDevice(t, nil)
	d.Release()

	out := buf.String()
	for _, want := range []string{"nine: context created", "nine: device created", "nine: device released"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output lacks %q:\n%s", want, out)
		}
	}
}

func TestRejectedCallsLogged(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)
	d, _ := newTestDevice(t, nil)
	buf.Reset()

	d.SetRenderState(3, 0)
	if !strings.Contains(buf.String(), "nine: invalid call") {
		t.Errorf("invalid render state not logged:\n%s", buf.String())
	}

	buf.Reset()
	d.DrawPrimitive(d3d9.PTTriangleList, 0, 1)
	if !strings.Contains(buf.String(), "nine: not available") || !strings.Contains(buf.String(), "op=DrawPrimitive") {
		t.Errorf("unavailable draw not logged:\n%s", buf.String())
	}
}

func TestWarningsFilteredByLevel(t *testing.T) {
	buf := captureLogs(t, slog.LevelError)
	pp := d3d9.PresentParameters{BackBufferWidth: 8, BackBufferHeight: 8, SwapEffect: 9}
	if _, err := normalizePresentParameters(&pp, &soft.Window{Width: 8, Height: 8}); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("warning leaked past an error-level logger:\n%s", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			Logger().Debug("nine: concurrent read")
		}()
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				SetLogger(nil)
			} else {
				SetLogger(slog.Default())
			}
		}()
	}
	wg.Wait()
	if Logger() == nil {
		t.Error("Logger() = nil")
	}
}
