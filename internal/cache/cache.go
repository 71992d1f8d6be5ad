// Package cache holds rendered lookup results for the web layer. Fetched
// article pages are never cached: every lookup hits the wikis fresh.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-value store with per-entry TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// Key derives a stable cache key from a lookup word
func Key(word string) string {
	hash := sha256.Sum256([]byte(word))
	return "slowko:v1:" + hex.EncodeToString(hash[:])
}
