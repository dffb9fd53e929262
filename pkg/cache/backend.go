package cache

import (
	"context"
	"path"
	"sync"
	"time"
)

// Backend is the storage mechanism a Cache delegates to. Splitting policy
// (key normalization, TTL computation, metrics, fail-closed semantics —
// all in Cache) from mechanism (Backend) follows the teacher's
// MaskingService/pattern-compilation separation in pkg/masking.
type Backend interface {
	Get(ctx context.Context, key string) (value []byte, found bool, err error)
	// Set stores value under key. ttl <= 0 means "store without expiry".
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	// DeleteMatching removes every key matching a path.Match-style glob
	// pattern (e.g. "lucide:cache:fixtures/by_id:*").
	DeleteMatching(ctx context.Context, pattern string) error
	Flush(ctx context.Context) error
	Close() error
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time // zero means no expiry
}

func (e memoryEntry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// MemoryBackend is a sharded in-process Backend with a background janitor
// goroutine that reclaims expired entries. It is the default backend for
// tests and single-process deployments.
const shardCount = 32

type memoryShard struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type MemoryBackend struct {
	shards [shardCount]*memoryShard

	stopJanitor chan struct{}
	janitorOnce sync.Once
}

// NewMemoryBackend constructs a MemoryBackend and starts its janitor
// goroutine, which sweeps expired entries every interval. Pass 0 to
// disable the background sweep (expired entries are still skipped on
// read, just not proactively reclaimed).
func NewMemoryBackend(janitorInterval time.Duration) *MemoryBackend {
	b := &MemoryBackend{stopJanitor: make(chan struct{})}
	for i := range b.shards {
		b.shards[i] = &memoryShard{entries: make(map[string]memoryEntry)}
	}
	if janitorInterval > 0 {
		go b.runJanitor(janitorInterval)
	}
	return b
}

func (b *MemoryBackend) shardFor(key string) *memoryShard {
	var h uint32 = 2166136261
	for i := 0; i < len(key); i++ {
		h ^= uint32(key[i])
		h *= 16777619
	}
	return b.shards[h%shardCount]
}

func (b *MemoryBackend) Get(_ context.Context, key string) ([]byte, bool, error) {
	s := b.shardFor(key)
	s.mu.RLock()
	defer s.mu.RUnlock()
	entry, ok := s.entries[key]
	if !ok || entry.expired(time.Now()) {
		return nil, false, nil
	}
	out := make([]byte, len(entry.value))
	copy(out, entry.value)
	return out, true, nil
}

func (b *MemoryBackend) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	s := b.shardFor(key)
	var expiresAt time.Time
	if ttl > 0 {
		expiresAt = time.Now().Add(ttl)
	}
	stored := make([]byte, len(value))
	copy(stored, value)
	s.mu.Lock()
	s.entries[key] = memoryEntry{value: stored, expiresAt: expiresAt}
	s.mu.Unlock()
	return nil
}

func (b *MemoryBackend) Delete(_ context.Context, key string) error {
	s := b.shardFor(key)
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
	return nil
}

func (b *MemoryBackend) DeleteMatching(_ context.Context, pattern string) error {
	for _, s := range b.shards {
		s.mu.Lock()
		for k := range s.entries {
			if ok, _ := path.Match(pattern, k); ok {
				delete(s.entries, k)
			}
		}
		s.mu.Unlock()
	}
	return nil
}

func (b *MemoryBackend) Flush(_ context.Context) error {
	for _, s := range b.shards {
		s.mu.Lock()
		s.entries = make(map[string]memoryEntry)
		s.mu.Unlock()
	}
	return nil
}

func (b *MemoryBackend) Close() error {
	b.janitorOnce.Do(func() { close(b.stopJanitor) })
	return nil
}

func (b *MemoryBackend) runJanitor(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			now := time.Now()
			for _, s := range b.shards {
				s.mu.Lock()
				for k, e := range s.entries {
					if e.expired(now) {
						delete(s.entries, k)
					}
				}
				s.mu.Unlock()
			}
		case <-b.stopJanitor:
			return
		}
	}
}
