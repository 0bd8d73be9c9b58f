package cache

import "time"

// Cache stores opaque byte values under byte keys.
type Cache interface {
	Get(key []byte) ([]byte, bool)
	Set(key, value []byte, ttl time.Duration) error
	Clear()
	EntryCount() int64
}
