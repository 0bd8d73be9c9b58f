package cache

import (
	"errors"
	"fmt"
	"time"

	"github.com/coocood/freecache"
)

var _ Cache = (*FreeCache)(nil)

const megabyte = 1024 * 1024

// minimum size enforced by freecache itself
const minSizeBytes = 512 * 1024

type FreeCache struct {
	mainCache *freecache.Cache
}

// NewFreeCache creates an in-memory cache of sizeMB megabytes.
func NewFreeCache(sizeMB int) (*FreeCache, error) {
	size := sizeMB * megabyte
	if size < minSizeBytes {
		return nil, fmt.Errorf("cache size must be at least %d bytes, got %d", minSizeBytes, size)
	}
	return &FreeCache{
		mainCache: freecache.NewCache(size),
	}, nil
}

func (fc *FreeCache) Get(key []byte) ([]byte, bool) {
	value, err := fc.mainCache.Get(key)
	if err != nil {
		// freecache.ErrNotFound is the only expected error here
		return nil, false
	}
	return value, true
}

// Set stores the value. A zero ttl never expires.
func (fc *FreeCache) Set(key, value []byte, ttl time.Duration) error {
	if err := fc.mainCache.Set(key, value, int(ttl.Seconds())); err != nil {
		if errors.Is(err, freecache.ErrLargeEntry) || errors.Is(err, freecache.ErrLargeKey) {
			return fmt.Errorf("entry too large: %w", err)
		}
		return err
	}
	return nil
}

func (fc *FreeCache) Clear() {
	fc.mainCache.Clear()
}

func (fc *FreeCache) EntryCount() int64 {
	return fc.mainCache.EntryCount()
}
