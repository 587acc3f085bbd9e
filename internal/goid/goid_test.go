package goid

import (
	"sync"
	"testing"
)

func TestGet_Stable(t *testing.T) {
	a := Get()
	b := Get()
	if a == 0 {
		t.Fatal("Get() returned 0 on the test goroutine")
	}
	if a != b {
		t.Errorf("Get() = %d then %d on the same goroutine", a, b)
	}
}

func TestGet_DistinctGoroutines(t *testing.T) {
	const n = 8
	ids := make([]uint64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ids[i] = Get()
		}(i)
	}
	wg.Wait()

	seen := make(map[uint64]bool, n)
	for _, id := range ids {
		if id == 0 {
			t.Fatal("Get() returned 0 on a spawned goroutine")
		}
		if seen[id] {
			t.Errorf("goroutine id %d seen twice", id)
		}
		seen[id] = true
	}
}

func BenchmarkGet(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = Get()
	}
}
