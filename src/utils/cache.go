package utils

import (
	"sync"
	"time"
)

// Cache holds a single value that expires after a duration or once its origin changes.
type Cache[T any] struct {
	value      T
	cachedAt   time.Time
	expiration time.Time
	mutex      sync.RWMutex
}

func NewCache[T any]() *Cache[T] {
	return &Cache[T]{}
}

// Set stores value for duration. A non-positive duration keeps it until cleared or stale.
func (c *Cache[T]) Set(value T, duration time.Duration) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.value = value
	c.cachedAt = time.Now()
	if duration > 0 {
		c.expiration = c.cachedAt.Add(duration)
	} else {
		c.expiration = time.Time{}
	}
}

// Get returns the cached value unless it expired or was cached before changedAt, the last
// time its origin changed.
func (c *Cache[T]) Get(changedAt time.Time) (T, bool) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	var zero T
	if c.cachedAt.IsZero() {
		return zero, false
	}
	if !c.expiration.IsZero() && time.Now().After(c.expiration) {
		return zero, false
	}
	if c.cachedAt.Before(changedAt) {
		return zero, false
	}
	return c.value, true
}

func (c *Cache[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	var zero T
	c.value = zero
	c.cachedAt = time.Time{}
	c.expiration = time.Time{}
}
