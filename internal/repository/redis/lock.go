package redis

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const LockPrefix = "lock:"

var ErrLockNotHeld = errors.New("lock not held")

// 仅当值仍为本实例令牌时才删除，避免误删他人续上的锁
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// DistLock 基于 SET NX PX 的单 key 分布式锁
type DistLock struct {
	rdb   redis.Cmdable
	key   string
	ttl   time.Duration
	token string
}

// NewDistLock rdb 为空时使用全局 Client
func NewDistLock(rdb redis.Cmdable, name string, ttl time.Duration) *DistLock {
	if rdb == nil {
		rdb = Client
	}
	return &DistLock{rdb: rdb, key: LockPrefix + name, ttl: ttl}
}

// Acquire 抢到锁返回 true；已被占用返回 false 且不报错
func (l *DistLock) Acquire(ctx context.Context) (bool, error) {
	token := uuid.NewString()
	ok, err := l.rdb.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return false, err
	}
	if ok {
		l.token = token
	}
	return ok, nil
}

func (l *DistLock) Release(ctx context.Context) error {
	if l.token == "" {
		return ErrLockNotHeld
	}
	n, err := releaseScript.Run(ctx, l.rdb, []string{l.key}, l.token).Int()
	l.token = ""
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrLockNotHeld
	}
	return nil
}
