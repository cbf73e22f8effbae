package redisclient

import (
	"context"
	"sync"
)

type memoryDayLocker struct {
	mu   sync.Mutex
	held map[string]bool
}

// NewMemoryDayLocker returns a process-local Locker for deployments without Redis.
// Like the Redis locker it fails fast instead of waiting for a held day.
func NewMemoryDayLocker() Locker {
	return &memoryDayLocker{held: make(map[string]bool)}
}

func (l *memoryDayLocker) WithDayLock(ctx context.Context, day string, fn func(ctx context.Context) error) error {
	key := lockKey(day)

	l.mu.Lock()
	if l.held[key] {
		l.mu.Unlock()
		return ErrLockNotAcquired
	}
	l.held[key] = true
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.held, key)
		l.mu.Unlock()
	}()

	return fn(ctx)
}
