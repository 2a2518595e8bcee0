// Package lock guards appointment transitions against duplicate in-flight
// submissions (a double-clicked "complete" must not run twice).
package lock

import (
	"context"
	"sync"
	"time"
)

type Locker interface {
	// Acquire takes the named lock. It does not block: a held lock returns
	// false immediately. ttl bounds how long a crashed holder can keep it.
	Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	Release(ctx context.Context, key string) error
}

// Memory is a process-local Locker, used when no redis is configured and
// by tests. Sufficient for a single instance; multi-instance deployments
// should configure REDIS_URL.
type Memory struct {
	mu    sync.Mutex
	held  map[string]time.Time
	clock func() time.Time
}

func NewMemory() *Memory {
	return &Memory{
		held:  make(map[string]time.Time),
		clock: time.Now,
	}
}

func (m *Memory) Acquire(_ context.Context, key string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	if expiry, ok := m.held[key]; ok && now.Before(expiry) {
		return false, nil
	}

	m.held[key] = now.Add(ttl)
	return true, nil
}

func (m *Memory) Release(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.held, key)
	return nil
}

var _ Locker = (*Memory)(nil)
