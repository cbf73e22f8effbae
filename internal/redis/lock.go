package redisclient

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrLockNotAcquired = errors.New("day lock not acquired")

const releaseTimeout = 2 * time.Second

// Locker serializes bookings for one calendar day. Implementations fail fast
// with ErrLockNotAcquired instead of waiting for a held day.
type Locker interface {
	WithDayLock(ctx context.Context, day string, fn func(ctx context.Context) error) error
}

type redisDayLocker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDayLocker shares day locks across every process using client.
// ttl bounds both the key lifetime and the time fn may run.
func NewRedisDayLocker(client *redis.Client, ttl time.Duration) Locker {
	return &redisDayLocker{client: client, ttl: ttl}
}

func lockKey(day string) string {
	return "lock:day:" + day
}

func (l *redisDayLocker) WithDayLock(ctx context.Context, day string, fn func(ctx context.Context) error) error {
	key := lockKey(day)
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	switch {
	case err != nil:
		return fmt.Errorf("acquire %s: %w", key, err)
	case !acquired:
		return ErrLockNotAcquired
	}

	// The holder's ctx may already be cancelled when fn returns.
	defer func() {
		relCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), releaseTimeout)
		defer cancel()
		_ = compareAndDelete.Run(relCtx, l.client, []string{key}, token).Err()
	}()

	fnCtx, cancel := context.WithTimeout(ctx, l.ttl)
	defer cancel()

	return fn(fnCtx)
}

// compareAndDelete removes KEYS[1] only while it still holds ARGV[1], so an
// expired holder cannot drop a lock that was re-acquired by someone else.
var compareAndDelete = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`)
