package config

// CacheBackend selects the storage mechanism behind pkg/cache.Cache.
type CacheBackend string

const (
	// CacheBackendMemory uses an in-process sharded map (default, no
	// external dependency).
	CacheBackendMemory CacheBackend = "memory"
	// CacheBackendRedis shares cached responses across processes.
	CacheBackendRedis CacheBackend = "redis"
)

// IsValid reports whether b is a recognized backend (empty string is
// valid — it resolves to CacheBackendMemory at merge time).
func (b CacheBackend) IsValid() bool {
	switch b {
	case "", CacheBackendMemory, CacheBackendRedis:
		return true
	default:
		return false
	}
}
