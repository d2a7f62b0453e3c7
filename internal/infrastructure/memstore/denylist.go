// Package memstore provides the process-local token denylist. It is the
// single-instance fallback; multi-instance deployments should use the
// redisstore variant so revocations survive restarts and cross processes.
package memstore

import (
	"context"
	"sync"
	"time"
)

// Denylist is a mutex-guarded set of revoked token values. Entries are
// dropped lazily once their TTL elapses.
type Denylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
}

func NewDenylist() *Denylist {
	return &Denylist{entries: make(map[string]time.Time)}
}

func (d *Denylist) Add(_ context.Context, token string, ttl time.Duration) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[token] = time.Now().Add(ttl)
	d.sweepLocked()
	return nil
}

func (d *Denylist) Contains(_ context.Context, token string) (bool, error) {
	d.mu.RLock()
	expiry, ok := d.entries[token]
	d.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		d.mu.Lock()
		delete(d.entries, token)
		d.mu.Unlock()
		return false, nil
	}
	return true, nil
}

// sweepLocked drops expired entries. Called with the write lock held.
func (d *Denylist) sweepLocked() {
	now := time.Now()
	for token, expiry := range d.entries {
		if now.After(expiry) {
			delete(d.entries, token)
		}
	}
}
