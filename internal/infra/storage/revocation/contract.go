package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCmdable подмножество команд redis.Client, используемое хранилищем
type RedisCmdable interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Exists(ctx context.Context, keys ...string) *redis.IntCmd
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}
