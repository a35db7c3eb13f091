package cache

import (
	"testing"
	"time"
)

func TestLRUCacheEvictsOldest(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	if _, ok := c.Get("a"); ok {
		t.Error("oldest entry should be evicted at capacity")
	}
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Errorf("Get(c) = %d, %v", v, ok)
	}
	if c.Size() != 2 {
		t.Errorf("Size = %d, want 2", c.Size())
	}
}

func TestLRUCacheGetRefreshesRecency(t *testing.T) {
	c := NewLRUCache[int](2, time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Get("a")
	c.Set("c", 3)

	if _, ok := c.Get("a"); !ok {
		t.Error("recently read entry was evicted")
	}
	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}
}

func TestLRUCacheTTL(t *testing.T) {
	c := NewLRUCache[string](10, 10*time.Millisecond)
	c.Set("k", "v")
	time.Sleep(20 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Error("expired entry returned from Get")
	}
}

func TestCleanExpired(t *testing.T) {
	c := NewLRUCache[string](10, 10*time.Millisecond)
	c.Set("a", "1")
	c.Set("b", "2")
	time.Sleep(20 * time.Millisecond)
	c.Set("c", "3")

	if removed := c.CleanExpired(); removed != 2 {
		t.Errorf("CleanExpired = %d, want 2", removed)
	}
	if c.Size() != 1 {
		t.Errorf("Size = %d, want 1", c.Size())
	}
}

func TestManagerSweeps(t *testing.T) {
	swept := make(chan int, 1)
	m := NewManager(func(removed int) {
		select {
		case swept <- removed:
		default:
		}
	})

	c := NewLRUCache[string](10, time.Millisecond)
	m.Register(c)
	c.Set("a", "1")
	time.Sleep(5 * time.Millisecond)

	m.StartCleanup(5 * time.Millisecond)
	defer m.Stop()

	select {
	case removed := <-swept:
		if removed != 1 {
			t.Errorf("sweep removed %d, want 1", removed)
		}
	case <-time.After(time.Second):
		t.Fatal("sweep never ran")
	}
}

func TestManagerStopWithoutStart(t *testing.T) {
	m := NewManager(nil)

	done := make(chan struct{})
	go func() {
		m.Stop()
		m.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a manager that never started")
	}
}

func TestManagerStopTwice(t *testing.T) {
	m := NewManager(nil)
	m.StartCleanup(time.Minute)

	m.Stop()
	m.Stop()
}
