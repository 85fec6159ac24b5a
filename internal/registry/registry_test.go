package registry

import (
	"sync"
	"testing"
)

func TestRegisterAndResolve(t *testing.T) {
	r := New[int]()
	r.Register("a", 1)
	r.Register("a", 2)
	v, ok := r.Resolve("a")
	if !ok || v != 2 {
		t.Fatalf("expected latest value 2, got %d (ok=%v)", v, ok)
	}
	if _, ok := r.Resolve("missing"); ok {
		t.Fatal("expected missing id to fail")
	}
}

func TestZeroValueRegistry(t *testing.T) {
	var r Registry[string]
	r.Register("x", "y")
	if v, _ := r.Resolve("x"); v != "y" {
		t.Fatalf("expected y, got %q", v)
	}
}

func TestConcurrentRegister(t *testing.T) {
	r := New[int]()
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r.Register(string(rune('a'+i)), i)
		}(i)
	}
	wg.Wait()
	if r.Len() != 32 {
		t.Fatalf("expected 32 entries, got %d", r.Len())
	}
}
