package cache

import (
	"fmt"
	"sync"
	"testing"
)

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](4)

	if _, ok := c.Get("a"); ok {
		t.Fatal("empty cache should miss")
	}

	c.Set("a", 1)
	got, ok := c.Get("a")
	if !ok || got != 1 {
		t.Fatalf("Get(a) = %v, %v; want 1, true", got, ok)
	}

	// Overwrite.
	c.Set("a", 2)
	if got, _ := c.Get("a"); got != 2 {
		t.Fatalf("Get(a) after overwrite = %v, want 2", got)
	}
	if c.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", c.Len())
	}
}

func TestCacheEviction(t *testing.T) {
	c := New[int, string](2)

	c.Set(1, "one")
	c.Set(2, "two")
	c.Set(3, "three") // evicts 1, the least recently used

	if _, ok := c.Get(1); ok {
		t.Error("oldest entry should be evicted")
	}
	if _, ok := c.Get(2); !ok {
		t.Error("entry 2 should survive")
	}
	if _, ok := c.Get(3); !ok {
		t.Error("entry 3 should survive")
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheLRUOrder(t *testing.T) {
	c := New[int, string](2)

	c.Set(1, "one")
	c.Set(2, "two")

	// Touch 1 so 2 becomes the eviction candidate.
	if _, ok := c.Get(1); !ok {
		t.Fatal("entry 1 missing")
	}
	c.Set(3, "three")

	if _, ok := c.Get(2); ok {
		t.Error("entry 2 should be evicted after entry 1 was touched")
	}
	if _, ok := c.Get(1); !ok {
		t.Error("recently used entry 1 should survive")
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](4)

	calls := 0
	create := func() int {
		calls++
		return 42
	}

	if got := c.GetOrCreate("k", create); got != 42 {
		t.Fatalf("GetOrCreate = %v, want 42", got)
	}
	if got := c.GetOrCreate("k", create); got != 42 {
		t.Fatalf("GetOrCreate = %v, want 42", got)
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	if !c.Delete("a") {
		t.Error("Delete should report removal")
	}
	if c.Delete("a") {
		t.Error("second Delete should report absence")
	}
	if _, ok := c.Get("a"); ok {
		t.Error("deleted entry should miss")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", c.Len())
	}
	if _, ok := c.Get("a"); ok {
		t.Error("cleared entry should miss")
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)

	c.Get("a")       // hit
	c.Get("missing") // miss

	stats := c.Stats()
	if stats.Hits != 1 || stats.Misses != 1 {
		t.Errorf("hits = %d, misses = %d; want 1, 1", stats.Hits, stats.Misses)
	}
	if stats.HitRate != 0.5 {
		t.Errorf("HitRate = %v, want 0.5", stats.HitRate)
	}
	if stats.Capacity != 4 {
		t.Errorf("Capacity = %d, want 4", stats.Capacity)
	}

	c.ResetStats()
	stats = c.Stats()
	if stats.Hits != 0 || stats.Misses != 0 || stats.Evictions != 0 {
		t.Errorf("stats after reset = %+v", stats)
	}
}

func TestCacheDefaultCapacity(t *testing.T) {
	c := New[string, int](0)
	if c.Capacity() != DefaultCapacity {
		t.Errorf("Capacity() = %d, want %d", c.Capacity(), DefaultCapacity)
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	c := New[int, int](64)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				k := (seed*31 + i) % 100
				c.Set(k, k)
				c.Get(k)
				c.GetOrCreate(k+100, func() int { return k })
			}
		}(g)
	}
	wg.Wait()

	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

func TestLRUList(t *testing.T) {
	l := newLRUList[string]()

	if _, ok := l.RemoveOldest(); ok {
		t.Fatal("empty list should have no oldest")
	}

	a := l.PushFront("a")
	_ = l.PushFront("b")
	c := l.PushFront("c")

	if l.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", l.Len())
	}

	// a is the oldest.
	l.MoveToFront(a)
	if key, _ := l.RemoveOldest(); key != "b" {
		t.Errorf("oldest after move = %q, want b", key)
	}

	l.Remove(c)
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
	if key, _ := l.RemoveOldest(); key != "a" {
		t.Errorf("remaining key = %q, want a", key)
	}
}

func ExampleCache() {
	c := New[string, string](8)
	c.Set("theme", "default")

	if v, ok := c.Get("theme"); ok {
		fmt.Println(v)
	}
	// Output: default
}
