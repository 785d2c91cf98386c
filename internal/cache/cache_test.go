package cache

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestLoadFillsOnce(t *testing.T) {
	c := New[int, string](0)
	calls := 0
	fill := func() (string, error) {
		calls++
		return "v", nil
	}
	for range 3 {
		v, err := c.Load(1, fill)
		if v != "v" || err != nil {
			t.Fatalf("Load() = %q, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestLoadKeepsErrors(t *testing.T) {
	c := New[int, int](0)
	boom := errors.New("boom")
	calls := 0
	for range 2 {
		_, err := c.Load(7, func() (int, error) {
			calls++
			return 0, boom
		})
		if !errors.Is(err, boom) {
			t.Fatalf("Load() error = %v, want %v", err, boom)
		}
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestEviction(t *testing.T) {
	c := New[int, int](2)
	val := func(v int) func() (int, error) {
		return func() (int, error) { return v, nil }
	}
	c.Load(1, val(1))
	c.Load(2, val(2))
	c.Load(1, val(1)) // touch 1 so 2 is oldest
	c.Load(3, val(3))

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Peek(2); ok {
		t.Error("least recently used entry survived")
	}
	for _, k := range []int{1, 3} {
		if v, ok := c.Peek(k); !ok || v != k {
			t.Errorf("Peek(%d) = %d, %v", k, v, ok)
		}
	}
}

func TestReset(t *testing.T) {
	c := New[string, int](0)
	c.Load("a", func() (int, error) { return 1, nil })
	c.Reset()
	if c.Len() != 0 {
		t.Errorf("Len() after Reset = %d", c.Len())
	}
	v, _ := c.Load("a", func() (int, error) { return 2, nil })
	if v != 2 {
		t.Errorf("Load() after Reset = %d, want refill", v)
	}
}

func TestConcurrentLoad(t *testing.T) {
	c := New[int, int](0)
	var calls atomic.Int32
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for k := range 8 {
				c.Load(k, func() (int, error) {
					calls.Add(1)
					return k * k, nil
				})
			}
		}()
	}
	wg.Wait()
	if calls.Load() != 8 {
		t.Errorf("fill called %d times, want 8", calls.Load())
	}
}
