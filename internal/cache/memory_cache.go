package cache

import (
	"sync"
	"time"
)

var _ Cache = (*MemoryCache)(nil)

// MemoryCache is a map-backed Cache without expiry, used in tests.
type MemoryCache struct {
	cache map[string][]byte
	mutex sync.Mutex
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		cache: make(map[string][]byte),
	}
}

func (mc *MemoryCache) Get(key []byte) ([]byte, bool) {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	if val, ok := mc.cache[string(key)]; ok {
		return val, true
	}
	return nil, false
}

func (mc *MemoryCache) Set(key, value []byte, _ time.Duration) error {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.cache[string(key)] = append([]byte(nil), value...)
	return nil
}

func (mc *MemoryCache) Clear() {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	mc.cache = make(map[string][]byte)
}

func (mc *MemoryCache) EntryCount() int64 {
	mc.mutex.Lock()
	defer mc.mutex.Unlock()

	return int64(len(mc.cache))
}
