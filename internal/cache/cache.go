// Package cache provides a bounded in-memory store with TTL expiry and a
// manager that sweeps registered caches in the background.
package cache

import (
	"sync"
	"time"
)

// Cache is the read/write surface shared by cache implementations.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
	Size() int
}

// Cleaner is implemented by caches that can purge expired entries.
type Cleaner interface {
	CleanExpired() int
}

// Manager periodically sweeps expired entries from registered caches.
type Manager struct {
	caches  []Cleaner
	stop    chan struct{}
	done    chan struct{}
	onSweep func(removed int)

	started  bool
	stopOnce sync.Once
}

// NewManager creates a manager with no registered caches. onSweep, if not
// nil, is called after each sweep with the number of removed entries.
func NewManager(onSweep func(removed int)) *Manager {
	return &Manager{
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		onSweep: onSweep,
	}
}

// Register adds a cache to the sweep rotation. Not safe to call after
// StartCleanup.
func (m *Manager) Register(c Cleaner) {
	m.caches = append(m.caches, c)
}

// StartCleanup begins sweeping every interval until Stop is called. Not safe
// to call concurrently with Stop.
func (m *Manager) StartCleanup(interval time.Duration) {
	m.started = true
	go m.run(interval)
}

func (m *Manager) run(interval time.Duration) {
	defer close(m.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			removed := 0
			for _, c := range m.caches {
				removed += c.CleanExpired()
			}
			if m.onSweep != nil {
				m.onSweep(removed)
			}
		case <-m.stop:
			return
		}
	}
}

// Stop ends the sweep loop and waits for it to exit. A manager that never
// started, or one already stopped, returns immediately.
func (m *Manager) Stop() {
	if !m.started {
		return
	}
	m.stopOnce.Do(func() { close(m.stop) })
	<-m.done
}
