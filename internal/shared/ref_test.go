package shared

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestRef_ZeroValue(t *testing.T) {
	var r Ref[*int]
	if r.Valid() {
		t.Error("zero Ref reported Valid")
	}
	if r.Value() != nil {
		t.Error("zero Ref returned non-nil value")
	}
	if r.Release() {
		t.Error("zero Ref Release reported true")
	}
	if r.Retain().Valid() {
		t.Error("Retain on zero Ref returned valid Ref")
	}
}

func TestRef_CopySharesPayload(t *testing.T) {
	v := 1
	r := New(&v, nil)
	c := r
	*c.Value() = 2
	if *r.Value() != 2 {
		t.Errorf("copy does not share payload: got %d", *r.Value())
	}
	if r.Count() != 1 {
		t.Errorf("plain copy changed count to %d", r.Count())
	}
}

func TestRef_ReleaseRunsOnce(t *testing.T) {
	var released int
	r := New("payload", func(s string) {
		if s != "payload" {
			t.Errorf("release got %q", s)
		}
		released++
	})

	r2 := r.Retain()
	if r.Count() != 2 {
		t.Fatalf("Count() = %d after Retain, want 2", r.Count())
	}

	if r2.Release() {
		t.Error("first Release reported last reference")
	}
	if released != 0 {
		t.Fatal("release ran while a reference remained")
	}
	if !r.Release() {
		t.Error("final Release did not report last reference")
	}
	if released != 1 {
		t.Fatalf("release ran %d times, want 1", released)
	}

	// Extra releases and retains after the payload is gone are inert
	if r.Release() {
		t.Error("Release after zero reported true")
	}
	if r.Retain().Valid() {
		t.Error("Retain after release returned a valid Ref")
	}
	if released != 1 {
		t.Errorf("release ran %d times, want 1", released)
	}
}

func TestRef_ConcurrentRetainRelease(t *testing.T) {
	var released atomic.Int32
	r := New(struct{}{}, func(struct{}) { released.Add(1) })

	const n = 64
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c := r.Retain()
			c.Release()
		}()
	}
	wg.Wait()

	if released.Load() != 0 {
		t.Fatal("payload released while the original reference is held")
	}
	r.Release()
	if released.Load() != 1 {
		t.Errorf("release ran %d times, want 1", released.Load())
	}
}

func TestRef_Same(t *testing.T) {
	a := New(1, nil)
	b := New(1, nil)

	if !a.Same(a.Retain()) {
		t.Error("a retained Ref should share the payload")
	}
	if a.Same(b) {
		t.Error("separately created Refs should not be the same")
	}
	if !(Ref[int]{}).Same(Ref[int]{}) {
		t.Error("empty Refs should compare the same")
	}
}
