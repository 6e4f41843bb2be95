package mem

import (
	"sync"
	"sync/atomic"
	"time"
)

// QueryCache is the injected get/put capability the POI source uses
// instead of ambient global state. Entries expire after their TTL.
type QueryCache interface {
	Get(key string) (string, bool)
	Put(key string, value string, ttl time.Duration)

	// Requests returns the monotonic count of cache misses recorded via
	// CountRequest, i.e. upstream calls actually made.
	Requests() int64
	CountRequest() int64
}

type entry struct {
	value     string
	expiresAt time.Time
}

type QueryCacheStore struct {
	mu       sync.RWMutex
	data     map[string]entry
	requests atomic.Int64
}

func NewQueryCache() *QueryCacheStore {
	return &QueryCacheStore{
		data: make(map[string]entry),
	}
}

func (s *QueryCacheStore) Get(key string) (string, bool) {
	s.mu.RLock()
	e, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		s.mu.Lock()
		delete(s.data, key)
		s.mu.Unlock()
		return "", false
	}
	return e.value, true
}

func (s *QueryCacheStore) Put(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *QueryCacheStore) Requests() int64 {
	return s.requests.Load()
}

func (s *QueryCacheStore) CountRequest() int64 {
	return s.requests.Add(1)
}
