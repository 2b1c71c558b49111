package cache

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/bolbol-az/bolbol/internal/pkg/clock"
)

type memoryEntry struct {
	value     string
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// Memory is an in-process Cache used by tests and local development.
//
// Expired entries are dropped lazily on access. The clock is injectable so
// tests can advance time deterministically.
type Memory struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	clock   clock.Clocker
}

// NewMemory creates an in-memory cache reading time from clk.
func NewMemory(clk clock.Clocker) *Memory {
	if clk == nil {
		clk = clock.New()
	}
	return &Memory{
		entries: make(map[string]memoryEntry),
		clock:   clk,
	}
}

// Get returns the value stored under key, or ErrMiss.
func (m *Memory) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok {
		return "", ErrMiss
	}
	if entry.expired(m.clock.Now()) {
		delete(m.entries, key)
		return "", ErrMiss
	}
	return entry.value, nil
}

// Set stores value under key with the given TTL.
func (m *Memory) Set(_ context.Context, key, value string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries[key] = m.newEntry(value, ttl)
	return nil
}

// SetNX stores value under key only when the key does not exist.
func (m *Memory) SetNX(_ context.Context, key, value string, ttl time.Duration) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if entry, ok := m.entries[key]; ok && !entry.expired(m.clock.Now()) {
		return false, nil
	}

	m.entries[key] = m.newEntry(value, ttl)
	return true, nil
}

// Delete removes key.
func (m *Memory) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.entries, key)
	return nil
}

// Incr increments the integer under key, restarting the ttl window on every
// increment.
func (m *Memory) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if ok && entry.expired(m.clock.Now()) {
		ok = false
	}

	if !ok {
		m.entries[key] = m.newEntry("1", ttl)
		return 1, nil
	}

	val, err := strconv.ParseInt(entry.value, 10, 64)
	if err != nil {
		return 0, err
	}

	val++
	m.entries[key] = m.newEntry(strconv.FormatInt(val, 10), ttl)
	return val, nil
}

// TTL reports the remaining lifetime of key. It returns false when the key
// does not exist or has no expiry.
func (m *Memory) TTL(key string) (time.Duration, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	entry, ok := m.entries[key]
	if !ok || entry.expiresAt.IsZero() || entry.expired(m.clock.Now()) {
		return 0, false
	}
	return entry.expiresAt.Sub(m.clock.Now()), true
}

func (m *Memory) newEntry(value string, ttl time.Duration) memoryEntry {
	entry := memoryEntry{value: value}
	if ttl > 0 {
		entry.expiresAt = m.clock.Now().Add(ttl)
	}
	return entry
}
